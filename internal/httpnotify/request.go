package httpnotify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/llehouerou/statusmodal/internal/status"
)

// Do sends req and notifies the outcome.
//
// Exactly one notification is shown per call. Status errors are returned as
// *StatusError along with the response; transport failures are returned as
// *TransportError after showing the network error notification.
func (h *Handler) Do(req *http.Request) (*http.Response, error) {
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", h.userAgent)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		terr := &TransportError{Method: req.Method, URL: req.URL.Redacted(), Err: err}
		h.HandleError(terr)
		return nil, terr
	}

	h.logger.Debug("response received",
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
		zap.Int("status", resp.StatusCode),
	)
	resp, err = h.HandleResponse(resp)
	if err != nil {
		h.logger.Error("request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.Redacted()),
			zap.Error(err),
		)
	}
	return resp, err
}

// Request builds a request for method and url and sends it with Do.
func (h *Handler) Request(ctx context.Context, method, url string, body io.Reader) (*http.Response, error) {
	return h.RequestWith(ctx, method, url, body, "")
}

// RequestWith is Request with an explicit Content-Type for body.
func (h *Handler) RequestWith(ctx context.Context, method, url string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return h.Do(req)
}

// Get sends a GET request to url.
func (h *Handler) Get(ctx context.Context, url string) (*http.Response, error) {
	return h.Request(ctx, http.MethodGet, url, http.NoBody)
}

// PostJSON sends v as a JSON body to url.
func (h *Handler) PostJSON(ctx context.Context, url string, v any) (*http.Response, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	return h.RequestWith(ctx, http.MethodPost, url, bytes.NewReader(payload), "application/json")
}

// CheckStatus converts a non-2xx response into a *StatusError without
// notifying anyone. The message is taken from the JSON body when present.
// Use it for calls handled by the caller; errors it returns can be handed to
// a Listener or to HandleError later.
func CheckStatus(resp *http.Response) error {
	if status.IsSuccess(resp.StatusCode) {
		return nil
	}
	return newStatusError(resp)
}
