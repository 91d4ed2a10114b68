package api

import (
	"context"
	"net/http"

	"github.com/clacky-ai/uniapp-fastapi-mysql-starter/client/internal/types"
)

const postsPath = "/api/v1/posts/"

// ListPosts returns one page of all posts.
func ListPosts(ctx context.Context, b Backend, page *types.Page, headers map[string]string) *types.Response[[]types.Post] {
	return call[[]types.Post](ctx, b, http.MethodGet, postsPath+pageQuery(page, nil), nil, headers)
}

// ListPublishedPosts returns one page of published posts.
func ListPublishedPosts(ctx context.Context, b Backend, page *types.Page, headers map[string]string) *types.Response[[]types.Post] {
	return call[[]types.Post](ctx, b, http.MethodGet, postsPath+"published"+pageQuery(page, nil), nil, headers)
}

// ListMyPosts returns one page of the authenticated user's posts.
func ListMyPosts(ctx context.Context, b Backend, page *types.Page, headers map[string]string) *types.Response[[]types.Post] {
	return call[[]types.Post](ctx, b, http.MethodGet, postsPath+"my"+pageQuery(page, nil), nil, headers)
}

// GetPost returns a post by ID.
func GetPost(ctx context.Context, b Backend, id int, headers map[string]string) *types.Response[types.Post] {
	return call[types.Post](ctx, b, http.MethodGet, idPath(postsPath, id), nil, headers)
}

// CreatePost creates a post owned by the authenticated user.
func CreatePost(ctx context.Context, b Backend, req types.PostCreate, headers map[string]string) *types.Response[types.Post] {
	return call[types.Post](ctx, b, http.MethodPost, postsPath, req, headers)
}

// UpdatePost changes a post's fields.
func UpdatePost(ctx context.Context, b Backend, id int, req types.PostUpdate, headers map[string]string) *types.Response[types.Post] {
	return call[types.Post](ctx, b, http.MethodPut, idPath(postsPath, id), req, headers)
}

// DeletePost removes a post. The backend answers with a confirmation message.
func DeletePost(ctx context.Context, b Backend, id int, headers map[string]string) *types.Response[types.MessageResponse] {
	return call[types.MessageResponse](ctx, b, http.MethodDelete, idPath(postsPath, id), nil, headers)
}
