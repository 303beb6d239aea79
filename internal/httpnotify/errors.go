package httpnotify

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnparseableBody is matched by a StatusError whose response body could
// not be read as a JSON object.
var ErrUnparseableBody = errors.New("response body is not structured data")

// StatusError is returned for responses outside the 2xx range.
// It carries the response information the error handler needs.
type StatusError struct {
	Code    int    // HTTP status code, 0 if unknown
	Message string // Resolved message shown to the user
	Body    []byte // Raw response body
	Err     error  // ErrUnparseableBody (possibly wrapping a read error) or nil
}

func (e *StatusError) Error() string {
	text := http.StatusText(e.Code)
	if text == "" {
		text = "unexpected status"
	}
	if e.Message == "" {
		return fmt.Sprintf("%d %s", e.Code, text)
	}
	return fmt.Sprintf("%d %s: %s", e.Code, text, e.Message)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// TransportError is returned when a request produced no response at all.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ResponseStatus reports the status code embedded in err, if any.
func ResponseStatus(err error) (int, bool) {
	var serr *StatusError
	if errors.As(err, &serr) {
		return serr.Code, true
	}
	return 0, false
}

// Handled reports whether err was already notified by a Handler, which is the
// case for status and transport errors returned by Do.
func Handled(err error) bool {
	var serr *StatusError
	var terr *TransportError
	return errors.As(err, &serr) || errors.As(err, &terr)
}
