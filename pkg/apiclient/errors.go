package apiclient

import "errors"

var (
	// ErrMissingBaseURL is returned when the client is constructed or used
	// without a configured base URL. It is raised synchronously, before any
	// network I/O.
	ErrMissingBaseURL = errors.New("apiclient: base URL is not configured")

	// ErrRequestFailed wraps transport-level failures (connection refused,
	// timeouts, malformed URLs).
	ErrRequestFailed = errors.New("apiclient: request failed")

	// ErrDecodeResponse wraps failures to decode a successful response body.
	ErrDecodeResponse = errors.New("apiclient: failed to decode response")
)

// APIError represents a non-2xx response from the backend. The message is
// taken from the response body's "message" field when present, otherwise the
// caller-supplied fallback is used.
type APIError struct {
	StatusCode int
	Message    string
}

// Error returns the server-provided message verbatim so callers can surface
// it to users without unwrapping.
func (e *APIError) Error() string {
	return e.Message
}
