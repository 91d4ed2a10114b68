package client

// CallOption adds caller-supplied headers to a single endpoint call.
type CallOption func(headers map[string]string)

// WithHeader sets one header for the call.
func WithHeader(key, value string) CallOption {
	return func(h map[string]string) { h[key] = value }
}

// WithHeaders sets several headers for the call.
func WithHeaders(headers map[string]string) CallOption {
	return func(h map[string]string) {
		for k, v := range headers {
			h[k] = v
		}
	}
}

// WithBearer sets "Authorization: Bearer <token>" for the call.
func WithBearer(token string) CallOption {
	return WithHeader("Authorization", "Bearer "+token)
}

func headersOf(opts []CallOption) map[string]string {
	if len(opts) == 0 {
		return nil
	}
	h := make(map[string]string, len(opts))
	for _, o := range opts {
		o(h)
	}
	return h
}
