package status

import "slices"

// Icon names shared by the canned descriptors.
const (
	IconCheck     = "check-circle"
	IconInfo      = "info-circle"
	IconRedirect  = "arrow-right"
	IconWarning   = "exclamation-triangle"
	IconError     = "times-circle"
	IconLock      = "lock"
	IconBan       = "ban"
	IconSearch    = "search"
	IconClock     = "clock"
	IconHourglass = "hourglass"
	IconServer    = "server"
	IconWifiOff   = "wifi-off"
)

// table holds the canned descriptor for every known status code.
var table = map[int]Descriptor{
	// 2xx
	200: {Title: "OK", Message: "The request completed successfully.", Category: Success, Icon: IconCheck},
	201: {Title: "Created", Message: "The resource was created successfully.", Category: Success, Icon: IconCheck},
	202: {Title: "Accepted", Message: "The request was accepted and is being processed.", Category: Success, Icon: IconCheck},
	204: {Title: "No Content", Message: "The request succeeded with nothing to return.", Category: Success, Icon: IconCheck},

	// 3xx
	300: {Title: "Multiple Choices", Message: "The resource has several representations to choose from.", Category: Info, Icon: IconInfo},
	301: {Title: "Moved Permanently", Message: "The resource has moved to a new permanent location.", Category: Info, Icon: IconRedirect},
	302: {Title: "Found", Message: "The resource is temporarily available at another location.", Category: Info, Icon: IconRedirect},
	304: {Title: "Not Modified", Message: "The resource has not changed since it was last requested.", Category: Info, Icon: IconInfo},
	307: {Title: "Temporary Redirect", Message: "The request was temporarily redirected to another location.", Category: Info, Icon: IconRedirect},
	308: {Title: "Permanent Redirect", Message: "The request was permanently redirected to another location.", Category: Info, Icon: IconRedirect},

	// 4xx
	400: {Title: "Bad Request", Message: "The request could not be understood by the server.", Category: Error, Icon: IconWarning},
	401: {Title: "Unauthorized", Message: "You need to sign in to access this resource.", Category: Error, Icon: IconLock},
	403: {Title: "Forbidden", Message: "You do not have permission to access this resource.", Category: Error, Icon: IconBan},
	404: {Title: "Not Found", Message: "The requested resource could not be found.", Category: Error, Icon: IconSearch},
	405: {Title: "Method Not Allowed", Message: "This action is not allowed on the requested resource.", Category: Error, Icon: IconBan},
	408: {Title: "Request Timeout", Message: "The server timed out waiting for the request.", Category: Error, Icon: IconClock},
	409: {Title: "Conflict", Message: "The request conflicts with the current state of the resource.", Category: Error, Icon: IconWarning},
	422: {Title: "Unprocessable Entity", Message: "The submitted data failed validation.", Category: Error, Icon: IconWarning},
	429: {Title: "Too Many Requests", Message: "Too many requests were sent. Please wait and try again.", Category: Error, Icon: IconHourglass},

	// 5xx
	500: {Title: "Internal Server Error", Message: "The server encountered an unexpected error.", Category: Error, Icon: IconServer},
	501: {Title: "Not Implemented", Message: "The server does not support this functionality.", Category: Error, Icon: IconServer},
	502: {Title: "Bad Gateway", Message: "The server received an invalid response from an upstream server.", Category: Error, Icon: IconServer},
	503: {Title: "Service Unavailable", Message: "The service is temporarily unavailable. Please try again later.", Category: Error, Icon: IconServer},
	504: {Title: "Gateway Timeout", Message: "The server did not receive a timely response from an upstream server.", Category: Error, Icon: IconClock},
}

// defaults are used for codes missing from the table.
var defaults = map[Category]Descriptor{
	Success: {Title: "Success", Message: "The operation completed successfully.", Category: Success, Icon: IconCheck},
	Info:    {Title: "Information", Message: "The request was redirected.", Category: Info, Icon: IconInfo},
	Error:   {Title: "Error", Message: "An unexpected error occurred.", Category: Error, Icon: IconError},
}

// networkError is shown when a request fails without any response.
var networkError = Descriptor{
	Title:    "Network Error",
	Message:  "Unable to reach the server. Check your connection and try again.",
	Category: Error,
	Icon:     IconWifiOff,
}

// Lookup returns the canned descriptor for code, if the code is known.
func Lookup(code int) (Descriptor, bool) {
	d, ok := table[code]
	return d, ok
}

// Default returns the fallback descriptor for a category.
func Default(c Category) Descriptor {
	if d, ok := defaults[c]; ok {
		return d
	}
	return defaults[Error]
}

// Network returns the descriptor for a request that got no response.
func Network() Descriptor {
	return networkError
}

// Codes returns the known status codes in ascending order.
func Codes() []int {
	codes := make([]int, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}
