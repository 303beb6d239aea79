// Package httpnotify wraps HTTP calls so that their outcome is shown as a
// status notification.
package httpnotify

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/statusmodal/internal/notifier"
	"github.com/llehouerou/statusmodal/internal/status"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "statusmodal/1.0 (https://github.com/llehouerou/statusmodal)"
)

// Config configures a Handler. Zero values use the defaults.
type Config struct {
	Client    *http.Client  // used as-is when set
	Timeout   time.Duration // timeout of the default client
	UserAgent string
}

// Handler performs requests and notifies their outcome.
type Handler struct {
	httpClient *http.Client
	userAgent  string
	notifier   *notifier.Notifier
	logger     *zap.Logger
}

// New creates a Handler notifying through n. A nil logger disables logging.
func New(n *notifier.Notifier, logger *zap.Logger, cfg Config) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	client := cfg.Client
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Handler{
		httpClient: client,
		userAgent:  userAgent,
		notifier:   n,
		logger:     logger,
	}
}

// Client returns the HTTP client used by Do. Requests sent with it directly
// are not notified.
func (h *Handler) Client() *http.Client {
	return h.httpClient
}

// HandleResponse notifies the outcome of a completed response.
//
// A 2xx response is shown with its canned descriptor and returned as-is.
// Any other status is shown with the message found in the JSON body
// ("message" or "error"), or the canned message when the body has none or
// cannot be parsed, and returned with a *StatusError. Only the first MiB of
// the body is buffered for the message lookup, so fields past it are ignored.
// The whole body stays readable and must still be closed by the caller.
func (h *Handler) HandleResponse(resp *http.Response) (*http.Response, error) {
	code := resp.StatusCode
	if status.IsSuccess(code) {
		h.notifier.NotifyStatus(code, "")
		return resp, nil
	}

	serr := newStatusError(resp)
	serr.Message = h.notifier.NotifyStatus(code, serr.Message).Message
	return resp, serr
}

// HandleError logs err and notifies it.
//
// Errors carrying response information (*StatusError) are shown with their
// status code (500 when missing) and message. Anything else is treated as a
// connectivity failure and shown as status.Network().
func (h *Handler) HandleError(err error) status.Descriptor {
	if err == nil {
		return status.Descriptor{}
	}
	h.logger.Error("request failed", zap.Error(err))

	var serr *StatusError
	if !errors.As(err, &serr) {
		return h.notifier.NotifyDescriptor(status.Network())
	}

	code := serr.Code
	if code == 0 {
		code = http.StatusInternalServerError
	}
	message := serr.Message
	if message == "" {
		message, _ = payloadMessage(serr.Body, len(serr.Body) > maxBodySize)
	}
	return h.notifier.NotifyStatus(code, message)
}
