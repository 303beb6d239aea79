package httpnotify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"github.com/llehouerou/statusmodal/internal/notifier"
	"github.com/llehouerou/statusmodal/internal/status"
)

type recordingSurface struct {
	mu    sync.Mutex
	shown []status.Descriptor
}

func (r *recordingSurface) Show(d status.Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown = append(r.shown, d)
}

func (r *recordingSurface) all() []status.Descriptor {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]status.Descriptor(nil), r.shown...)
}

func (r *recordingSurface) last() status.Descriptor {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.shown) == 0 {
		return status.Descriptor{}
	}
	return r.shown[len(r.shown)-1]
}

func newTestHandler(t *testing.T) (*Handler, *recordingSurface) {
	t.Helper()
	surface := &recordingSurface{}
	return New(notifier.New(surface, nil), nil, Config{}), surface
}

// newTestServer serves a small API with one route per scenario.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/items", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "42"})
	}).Methods(http.MethodPost)
	r.HandleFunc("/items", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}).Methods(http.MethodGet)
	r.HandleFunc("/status/{code:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
		code, _ := strconv.Atoi(mux.Vars(r)["code"])
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		if body := r.URL.Query().Get("body"); body != "" {
			_, _ = w.Write([]byte(body))
		}
	})
	r.HandleFunc("/agent", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.UserAgent()))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}
