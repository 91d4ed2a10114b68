package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// NewHTTPError classifies a non-2xx answer. The detail is taken from the
// FastAPI error body ({"detail": "..."}) when there is one, otherwise from the
// standard status text.
func NewHTTPError(statusCode int, body []byte, operation string) *ClassifiedError {
	return &ClassifiedError{
		Category:   getHTTPErrorCategory(statusCode),
		StatusCode: statusCode,
		Detail:     detailFromBody(statusCode, body),
		Underlying: fmt.Errorf("%s failed: HTTP %d", operation, statusCode),
	}
}

// NewNetworkError classifies a transport-level failure.
func NewNetworkError(err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   NetworkError,
		Underlying: err,
	}
}

func getHTTPErrorCategory(statusCode int) ErrorCategory {
	if statusCode >= 400 && statusCode < 500 {
		return ClientError
	}
	return ServerError
}

// detailFromBody extracts a string "detail" field. FastAPI validation errors
// carry a list there instead; those fall back to the status text.
func detailFromBody(statusCode int, body []byte) string {
	var fe struct {
		Detail json.RawMessage `json:"detail"`
	}
	if len(body) > 0 && json.Unmarshal(body, &fe) == nil && len(fe.Detail) > 0 {
		var s string
		if json.Unmarshal(fe.Detail, &s) == nil && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return http.StatusText(statusCode)
}
