// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"fmt"

	"github.com/llehouerou/statusmodal/internal/status"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Startup
	OpConfigLoad  Op = "load configuration"
	OpCatalogLoad Op = "load descriptor catalog"
	OpLogOpen     Op = "open log file"

	// Requests
	OpRequestBuild Op = "build request"
	OpRequestSend  Op = "send request"
	OpBodyRead     Op = "read response body"

	// Surfaces
	OpDesktopConnect Op = "connect to desktop notifications"
	OpUIStart        Op = "start interface"

	// Descriptors
	OpDescriptorLookup Op = "find descriptor"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Descriptor wraps a local failure into an error notification.
// The title is the generic error title; the message is Format(op, err).
func Descriptor(op Op, err error) status.Descriptor {
	d := status.Default(status.Error)
	if err == nil {
		return d
	}
	return d.WithMessage(Format(op, err))
}
