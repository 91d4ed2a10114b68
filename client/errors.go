package client

import (
	"errors"

	"github.com/clacky-ai/uniapp-fastapi-mysql-starter/client/internal/types"
)

// ErrInvalidTimeout is returned by New when WithHTTPTimeout gets a non-positive value.
var ErrInvalidTimeout = errors.New("http timeout must be > 0")

// Re-export so callers can match the reason behind a rejected RequestOptions.Method.
var ErrUnsupportedMethod = types.ErrUnsupportedMethod
