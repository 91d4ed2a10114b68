package api

import (
	"context"
	"net/http"

	"github.com/clacky-ai/uniapp-fastapi-mysql-starter/client/internal/types"
)

const usersPath = "/api/v1/users/"

// Register creates a new user account.
func Register(ctx context.Context, b Backend, req types.RegisterRequest, headers map[string]string) *types.Response[types.User] {
	return call[types.User](ctx, b, http.MethodPost, usersPath, req, headers)
}

// GetProfile returns the authenticated user.
func GetProfile(ctx context.Context, b Backend, headers map[string]string) *types.Response[types.User] {
	return call[types.User](ctx, b, http.MethodGet, usersPath+"me", nil, headers)
}

// UpdateProfile changes the authenticated user's fields.
func UpdateProfile(ctx context.Context, b Backend, req types.UserUpdate, headers map[string]string) *types.Response[types.User] {
	return call[types.User](ctx, b, http.MethodPut, usersPath+"me", req, headers)
}

// ListUsers returns one page of users.
func ListUsers(ctx context.Context, b Backend, page *types.Page, headers map[string]string) *types.Response[[]types.User] {
	return call[[]types.User](ctx, b, http.MethodGet, usersPath+pageQuery(page, nil), nil, headers)
}

// GetUser returns a user by ID.
func GetUser(ctx context.Context, b Backend, id int, headers map[string]string) *types.Response[types.User] {
	return call[types.User](ctx, b, http.MethodGet, idPath(usersPath, id), nil, headers)
}
