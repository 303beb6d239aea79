package app

import (
	"time"
)

// Result describes a finished request.
type Result struct {
	Method  string
	URL     string
	Status  int   // 0 when no response arrived
	Size    int64 // response body size in bytes
	Elapsed time.Duration
	Err     error
}

// Failed reports whether the request ended with an error.
func (r Result) Failed() bool {
	return r.Err != nil
}

// RequestDoneMsg is sent when a request finished, successfully or not.
// The notification itself arrives separately through the surface.
type RequestDoneMsg struct {
	Result Result
}
