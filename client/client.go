// Package client is a Go SDK for the blog/shop backend. Every call resolves to
// a Response envelope; failures are reported in it rather than as Go errors.
package client

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/clacky-ai/uniapp-fastapi-mysql-starter/client/internal/api"
)

// DefaultTimeout bounds every request unless WithHTTPTimeout says otherwise.
const DefaultTimeout = 10 * time.Second

// DefaultPageLimit is the page size used by list calls without an explicit limit.
const DefaultPageLimit = api.DefaultLimit

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the backend API. It holds no mutable state after New
// returns and is safe for concurrent use.
type Client struct {
	baseURL    string
	baseURLSet bool
	origin     string // where relative paths land when baseURL is empty
	location   *Location
	token      string

	http *http.Client
	rest *resty.Client
}

// New constructs a Client. Without WithBaseURL the base URL is resolved once
// from the location given by WithLocation (or its absence).
func New(opts ...Option) (*Client, error) {
	c := &Client{
		http: &http.Client{Timeout: DefaultTimeout},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if !c.baseURLSet {
		c.baseURL = ResolveBaseURL(c.location)
	}
	if c.baseURL == "" && c.location != nil {
		c.origin = c.location.Origin()
	}
	if c.token != "" {
		c.wrapTransportWithToken()
	}

	c.rest = resty.NewWithClient(c.http).SetLogger(restyLogger{})

	log.Debug().Str("base_url", c.baseURL).Dur("timeout", c.http.Timeout).Msg("api client ready")
	return c, nil
}

// BaseURL returns the prefix prepended to every API path.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) backend() api.Backend {
	prefix := c.baseURL
	if prefix == "" {
		prefix = c.origin
	}
	return api.Backend{Rest: c.rest, BaseURL: prefix, Observe: observeRequest}
}

// wrapTransportWithToken installs the bearer-token transport above any
// transport configured by options.
func (c *Client) wrapTransportWithToken() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &bearerTransport{
		base:  baseTransport,
		token: c.token,
	}
}

// bearerTransport adds an Authorization header unless the request has one.
type bearerTransport struct {
	base  http.RoundTripper
	token string
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Authorization") != "" {
		return t.base.RoundTrip(req)
	}
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// Request helper
// --------------------------------------------------------------------

// Request performs one call against path (appended to the base URL) and
// always returns an envelope; failures are reported in it, never as a Go
// error or a panic. A nil opts is a GET.
func (c *Client) Request(ctx context.Context, path string, opts *RequestOptions) *RawResponse {
	return api.Do(ctx, c.backend(), path, opts)
}

// Do is Request followed by decoding the body into T.
func Do[T any](ctx context.Context, c *Client, path string, opts *RequestOptions) *Response[T] {
	return api.Into[T](c.Request(ctx, path, opts))
}

// Decode converts a raw envelope into a typed one. See Do.
func Decode[T any](raw *RawResponse) *Response[T] {
	return api.Into[T](raw)
}
