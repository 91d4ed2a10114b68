package client

// Construction-time options for New. Per-call headers live in call_options.go.

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the bearer-token wrapper is installed, so
// transport-related options (like debug logging) end up underneath it.
type Option func(*Client) error

// WithLocation sets the page location used to resolve the base URL.
func WithLocation(loc Location) Option {
	return func(c *Client) error {
		c.location = &loc
		return nil
	}
}

// WithBaseURL bypasses host inspection and uses baseURL as the prefix for
// every path. An empty value keeps paths relative, which only makes sense when
// something else (a proxying transport) completes the URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		c.baseURL = strings.TrimRight(baseURL, "/")
		c.baseURLSet = true
		return nil
	}
}

// WithHTTPClient bases the client on a shallow copy of hc, so later options
// never touch the caller's client. A zero Timeout becomes DefaultTimeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		cp := *hc
		c.http = &cp
		if c.http.Timeout == 0 {
			c.http.Timeout = DefaultTimeout
		}
		return nil
	}
}

// WithHTTPTimeout sets the per-request timeout. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("%w: %s", ErrInvalidTimeout, d)
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// dumped to the debug log when enabled is true.
//
// Do not enable this in production: dumps include headers and bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithBearerToken adds "Authorization: Bearer <token>" to requests that do not
// already carry an Authorization header.
func WithBearerToken(token string) Option {
	return func(c *Client) error {
		c.token = token
		return nil
	}
}
