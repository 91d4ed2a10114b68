package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/clacky-ai/uniapp-fastapi-mysql-starter/client/internal/types"
)

// ContentTypeForm is the body type of the OAuth2 password login.
const ContentTypeForm = "application/x-www-form-urlencoded"

// Login exchanges credentials for a bearer token. The backend reads an OAuth2
// password form, so the body is form-encoded rather than JSON.
func Login(ctx context.Context, b Backend, req types.LoginRequest, headers map[string]string) *types.Response[types.Token] {
	form := url.Values{}
	form.Set("username", req.Username)
	form.Set("password", req.Password)

	h := map[string]string{"Content-Type": ContentTypeForm}
	for k, v := range headers {
		if http.CanonicalHeaderKey(k) == "Content-Type" {
			delete(h, "Content-Type")
		}
		h[k] = v
	}
	return call[types.Token](ctx, b, http.MethodPost, "/api/v1/auth/login", form.Encode(), h)
}

// TestToken returns the user owning the bearer token in headers.
func TestToken(ctx context.Context, b Backend, headers map[string]string) *types.Response[types.User] {
	return call[types.User](ctx, b, http.MethodPost, "/api/v1/auth/test-token", nil, headers)
}
