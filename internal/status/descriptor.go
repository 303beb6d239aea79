// Package status classifies HTTP status codes into notification descriptors.
package status

import "strings"

// Category selects the visual style of a notification.
// Exactly one category is active on a surface at a time.
type Category int

const (
	Error Category = iota
	Success
	Info
)

// Categories lists every category in display order.
var Categories = []Category{Success, Info, Error}

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case Success:
		return "success"
	case Info:
		return "info"
	case Error:
		return "error"
	}
	return "error"
}

// ParseCategory parses a category name. Unknown names map to Error.
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "success":
		return Success, true
	case "info":
		return Info, true
	case "error":
		return Error, true
	}
	return Error, false
}

// Descriptor drives the appearance of a single notification.
type Descriptor struct {
	Title    string   // Heading, rendered after the icon glyph
	Message  string   // Body text (optional, supports simple markup)
	Category Category // success, info or error
	Icon     string   // Symbolic icon name, see package icons
}

// WithMessage returns a copy of d with its message replaced.
func (d Descriptor) WithMessage(msg string) Descriptor {
	d.Message = msg
	return d
}

// Target is what a notification is built from: either a status code or a
// fully custom descriptor.
type Target interface {
	isTarget()
}

// StatusCode targets the canned descriptor for Code.
// A non-empty Override replaces the canned message.
type StatusCode struct {
	Code     int
	Override string
}

// Custom targets a caller-supplied descriptor, used verbatim.
type Custom struct {
	Descriptor Descriptor
}

func (StatusCode) isTarget() {}
func (Custom) isTarget()     {}

// Resolve builds the descriptor a target stands for.
func Resolve(t Target) Descriptor {
	switch t := t.(type) {
	case StatusCode:
		d := Classify(t.Code)
		if t.Override != "" {
			d = d.WithMessage(t.Override)
		}
		return d
	case Custom:
		return t.Descriptor
	}
	return Default(Error)
}
