// Package errors classifies failed calls so the request helper can pick a log
// level, a metrics outcome and a human-readable message for the envelope.
package errors

import "fmt"

// ErrorCategory says which side of the wire a failure came from.
type ErrorCategory int

const (
	// ClientError covers 4xx answers: the request was understood and refused.
	ClientError ErrorCategory = iota

	// ServerError covers 5xx answers and any other non-2xx status.
	ServerError

	// NetworkError covers failures with no HTTP answer at all (dial, TLS, timeout).
	NetworkError
)

// String returns the label used in logs and metrics.
func (c ErrorCategory) String() string {
	switch c {
	case ClientError:
		return "client_error"
	case ServerError:
		return "server_error"
	case NetworkError:
		return "network_error"
	default:
		return fmt.Sprintf("unknown(%d)", int(c))
	}
}

// ClassifiedError wraps a failure with its category and HTTP metadata.
type ClassifiedError struct {
	Category   ErrorCategory
	StatusCode int    // HTTP status code (0 for network errors)
	Detail     string // backend detail or status text
	Underlying error
}

// Error renders the message placed in the envelope's error field.
func (e *ClassifiedError) Error() string {
	if e.Category == NetworkError {
		if e.Underlying == nil || e.Underlying.Error() == "" {
			return "Network error"
		}
		return e.Underlying.Error()
	}
	detail := e.Detail
	if detail == "" {
		detail = "Request failed"
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, detail)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *ClassifiedError) Unwrap() error {
	return e.Underlying
}

// IsNetwork reports whether err is a classified transport failure.
func IsNetwork(err error) bool {
	if classified, ok := err.(*ClassifiedError); ok {
		return classified.Category == NetworkError
	}
	return false
}
