package types

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ------------------------------
// Request options
// ------------------------------

// RequestOptions describes one call to the request helper. The zero value is a
// GET without body or extra headers.
type RequestOptions struct {
	Method  string
	Data    any
	Headers map[string]string
}

// ErrUnsupportedMethod is returned for methods outside GET/POST/PUT/DELETE.
var ErrUnsupportedMethod = errors.New("unsupported method")

// NormalizeMethod upper-cases m, maps "" to GET and rejects anything the
// backend does not speak.
func NormalizeMethod(m string) (string, error) {
	if m == "" {
		return http.MethodGet, nil
	}
	switch up := strings.ToUpper(m); up {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
		return up, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedMethod, m)
}
