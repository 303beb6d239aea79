package httpnotify

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/statusmodal/internal/status"
)

func response(code int, body string) *http.Response {
	rec := httptest.NewRecorder()
	rec.WriteHeader(code)
	_, _ = rec.WriteString(body)
	return rec.Result()
}

func TestHandleResponseSuccess(t *testing.T) {
	h, surface := newTestHandler(t)
	resp := response(http.StatusCreated, `{"id":1}`)

	got, err := h.HandleResponse(resp)

	require.NoError(t, err)
	assert.Same(t, resp, got)
	require.Len(t, surface.all(), 1)
	assert.Equal(t, status.Classify(201), surface.last())
	assert.Equal(t, status.Success, surface.last().Category)
}

func TestHandleResponseUnknownSuccess(t *testing.T) {
	h, surface := newTestHandler(t)

	_, err := h.HandleResponse(response(203, ""))

	require.NoError(t, err)
	assert.Equal(t, status.Default(status.Success), surface.last())
}

func TestHandleResponseErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		code int
		body string
		want string
	}{
		{"error field", 500, `{"error":"db down"}`, "db down"},
		{"message field", 409, `{"message":"name taken"}`, "name taken"},
		{"message wins over error", 422, `{"message":"bad name","error":"invalid"}`, "bad name"},
		{"nested error message", 400, `{"error":{"message":"missing field"}}`, "missing field"},
		{"no message field", 404, `{"detail":"nope"}`, status.Classify(404).Message},
		{"blank message", 404, `{"message":"  "}`, status.Classify(404).Message},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, surface := newTestHandler(t)

			_, err := h.HandleResponse(response(tt.code, tt.body))

			var serr *StatusError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tt.code, serr.Code)
			assert.Equal(t, tt.want, serr.Message)
			assert.NotErrorIs(t, err, ErrUnparseableBody)

			require.Len(t, surface.all(), 1)
			assert.Equal(t, status.Error, surface.last().Category)
			assert.Equal(t, status.Classify(tt.code).Title, surface.last().Title)
			assert.Equal(t, tt.want, surface.last().Message)
		})
	}
}

func TestHandleResponseUnparseableBody(t *testing.T) {
	h, surface := newTestHandler(t)

	_, err := h.HandleResponse(response(503, "<html>maintenance</html>"))

	require.ErrorIs(t, err, ErrUnparseableBody)
	code, ok := ResponseStatus(err)
	assert.True(t, ok)
	assert.Equal(t, 503, code)
	assert.Equal(t, status.Classify(503), surface.last())
}

func TestHandleResponseEmptyBody(t *testing.T) {
	h, surface := newTestHandler(t)

	_, err := h.HandleResponse(response(502, ""))

	require.ErrorIs(t, err, ErrUnparseableBody)
	assert.Equal(t, status.Classify(502), surface.last())
}

func TestHandleResponseRedirect(t *testing.T) {
	h, surface := newTestHandler(t)

	_, err := h.HandleResponse(response(302, ""))

	require.Error(t, err)
	assert.Equal(t, status.Info, surface.last().Category)
	assert.Equal(t, "Found", surface.last().Title)
}

func TestHandleResponseBodyStillReadable(t *testing.T) {
	h, _ := newTestHandler(t)

	resp, err := h.HandleResponse(response(500, `{"error":"db down"}`))
	require.Error(t, err)

	body, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)
	assert.JSONEq(t, `{"error":"db down"}`, string(body))
}

func TestHandleResponseLargeErrorBody(t *testing.T) {
	h, surface := newTestHandler(t)
	payload := `{"error":"db down","trace":"` + strings.Repeat("x", 2*maxBodySize) + `"}`

	resp, err := h.HandleResponse(response(500, payload))

	var serr *StatusError
	require.ErrorAs(t, err, &serr)
	assert.NotErrorIs(t, err, ErrUnparseableBody)
	assert.Equal(t, "db down", serr.Message)
	assert.Equal(t, "db down", surface.last().Message)

	body, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)
	assert.Len(t, body, len(payload))
	assert.Equal(t, payload, string(body))
	assert.NoError(t, resp.Body.Close())
}

func TestHandleResponseLargeBodyWithoutMessage(t *testing.T) {
	h, surface := newTestHandler(t)
	payload := `{"trace":"` + strings.Repeat("x", 2*maxBodySize) + `","error":"too late"}`

	_, err := h.HandleResponse(response(500, payload))

	require.ErrorIs(t, err, ErrUnparseableBody)
	assert.Equal(t, status.Classify(500), surface.last())
}

func TestHandleResponseMalformedJSON(t *testing.T) {
	h, surface := newTestHandler(t)

	_, err := h.HandleResponse(response(500, `{"error":"db down"`))

	require.ErrorIs(t, err, ErrUnparseableBody)
	assert.Equal(t, status.Classify(500), surface.last())
}

func TestHandleErrorNil(t *testing.T) {
	h, surface := newTestHandler(t)

	assert.Equal(t, status.Descriptor{}, h.HandleError(nil))
	assert.Empty(t, surface.all())
}

func TestHandleErrorWithoutResponse(t *testing.T) {
	h, surface := newTestHandler(t)

	got := h.HandleError(errors.New("connection refused"))

	assert.Equal(t, status.Network(), got)
	assert.Equal(t, status.Network(), surface.last())
}

func TestHandleErrorStatusError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantTitle string
		wantMsg   string
	}{
		{
			name:      "code and message",
			err:       &StatusError{Code: 404, Message: "no such user"},
			wantTitle: "Not Found",
			wantMsg:   "no such user",
		},
		{
			name:      "missing code",
			err:       &StatusError{Message: "boom"},
			wantTitle: "Internal Server Error",
			wantMsg:   "boom",
		},
		{
			name:      "message from body",
			err:       &StatusError{Code: 500, Body: []byte(`{"error":"db down"}`)},
			wantTitle: "Internal Server Error",
			wantMsg:   "db down",
		},
		{
			name:      "canned message",
			err:       &StatusError{Code: 503},
			wantTitle: "Service Unavailable",
			wantMsg:   status.Classify(503).Message,
		},
		{
			name:      "wrapped",
			err:       errors.Join(errors.New("sync"), &StatusError{Code: 401}),
			wantTitle: "Unauthorized",
			wantMsg:   status.Classify(401).Message,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, surface := newTestHandler(t)

			got := h.HandleError(tt.err)

			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantMsg, got.Message)
			assert.Equal(t, status.Error, got.Category)
			assert.Equal(t, got, surface.last())
		})
	}
}

func TestStatusErrorMessage(t *testing.T) {
	assert.Equal(t, "500 Internal Server Error: db down", (&StatusError{Code: 500, Message: "db down"}).Error())
	assert.Equal(t, "404 Not Found", (&StatusError{Code: 404}).Error())
	assert.True(t, strings.HasPrefix((&StatusError{Code: 799}).Error(), "799 unexpected status"))
}

func TestResponseStatusWithoutResponse(t *testing.T) {
	_, ok := ResponseStatus(errors.New("plain"))
	assert.False(t, ok)
}

func TestHandled(t *testing.T) {
	assert.True(t, Handled(&StatusError{Code: 500}))
	assert.True(t, Handled(fmt.Errorf("wrapped: %w", &TransportError{Err: io.EOF})))
	assert.False(t, Handled(errors.New("create request: bad method")))
	assert.False(t, Handled(nil))
}
