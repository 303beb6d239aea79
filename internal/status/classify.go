package status

// Classify returns the descriptor for an HTTP status code.
// Known codes get their canned entry; unknown codes fall back by range,
// and anything below 200 is treated as an error.
func Classify(code int) Descriptor {
	if d, ok := Lookup(code); ok {
		return d
	}
	return Default(CategoryOf(code))
}

// CategoryOf returns the range-based category of a status code.
func CategoryOf(code int) Category {
	switch {
	case code >= 200 && code < 300:
		return Success
	case code >= 300 && code < 400:
		return Info
	default:
		return Error
	}
}

// IsSuccess reports whether code is in the 2xx range.
func IsSuccess(code int) bool {
	return code >= 200 && code < 300
}
