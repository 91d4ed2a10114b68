package client

import (
	"context"

	"github.com/clacky-ai/uniapp-fastapi-mysql-starter/client/internal/api"
)

// --------------------------------------------------------------------
// Auth and users - delegated to internal/api
// --------------------------------------------------------------------

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, req LoginRequest, opts ...CallOption) *Response[Token] {
	return api.Login(ctx, c.backend(), req, headersOf(opts))
}

// TestToken returns the user that owns the bearer token sent with the call.
func (c *Client) TestToken(ctx context.Context, opts ...CallOption) *Response[User] {
	return api.TestToken(ctx, c.backend(), headersOf(opts))
}

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, req RegisterRequest, opts ...CallOption) *Response[User] {
	return api.Register(ctx, c.backend(), req, headersOf(opts))
}

// GetProfile returns the authenticated user.
func (c *Client) GetProfile(ctx context.Context, opts ...CallOption) *Response[User] {
	return api.GetProfile(ctx, c.backend(), headersOf(opts))
}

// UpdateProfile changes the authenticated user's fields.
func (c *Client) UpdateProfile(ctx context.Context, req UserUpdate, opts ...CallOption) *Response[User] {
	return api.UpdateProfile(ctx, c.backend(), req, headersOf(opts))
}

// ListUsers returns one page of users. A nil page means skip 0, limit 10.
func (c *Client) ListUsers(ctx context.Context, page *Page, opts ...CallOption) *Response[[]User] {
	return api.ListUsers(ctx, c.backend(), page, headersOf(opts))
}

// GetUser returns a user by ID.
func (c *Client) GetUser(ctx context.Context, id int, opts ...CallOption) *Response[User] {
	return api.GetUser(ctx, c.backend(), id, headersOf(opts))
}

// --------------------------------------------------------------------
// Posts
// --------------------------------------------------------------------

// ListPosts returns one page of all posts.
func (c *Client) ListPosts(ctx context.Context, page *Page, opts ...CallOption) *Response[[]Post] {
	return api.ListPosts(ctx, c.backend(), page, headersOf(opts))
}

// ListPublishedPosts returns one page of published posts.
func (c *Client) ListPublishedPosts(ctx context.Context, page *Page, opts ...CallOption) *Response[[]Post] {
	return api.ListPublishedPosts(ctx, c.backend(), page, headersOf(opts))
}

// ListMyPosts returns one page of the authenticated user's posts.
func (c *Client) ListMyPosts(ctx context.Context, page *Page, opts ...CallOption) *Response[[]Post] {
	return api.ListMyPosts(ctx, c.backend(), page, headersOf(opts))
}

// GetPost returns a post by ID.
func (c *Client) GetPost(ctx context.Context, id int, opts ...CallOption) *Response[Post] {
	return api.GetPost(ctx, c.backend(), id, headersOf(opts))
}

// CreatePost creates a post.
func (c *Client) CreatePost(ctx context.Context, req PostCreate, opts ...CallOption) *Response[Post] {
	return api.CreatePost(ctx, c.backend(), req, headersOf(opts))
}

// UpdatePost changes a post.
func (c *Client) UpdatePost(ctx context.Context, id int, req PostUpdate, opts ...CallOption) *Response[Post] {
	return api.UpdatePost(ctx, c.backend(), id, req, headersOf(opts))
}

// DeletePost removes a post.
func (c *Client) DeletePost(ctx context.Context, id int, opts ...CallOption) *Response[MessageResponse] {
	return api.DeletePost(ctx, c.backend(), id, headersOf(opts))
}

// --------------------------------------------------------------------
// Products and categories
// --------------------------------------------------------------------

// ListProducts returns one page of products; filter may be nil.
func (c *Client) ListProducts(ctx context.Context, page *Page, filter *ProductFilter, opts ...CallOption) *Response[[]Product] {
	return api.ListProducts(ctx, c.backend(), page, filter, headersOf(opts))
}

func (c *Client) GetProduct(ctx context.Context, id int, opts ...CallOption) *Response[Product] {
	return api.GetProduct(ctx, c.backend(), id, headersOf(opts))
}

func (c *Client) CreateProduct(ctx context.Context, req ProductCreate, opts ...CallOption) *Response[Product] {
	return api.CreateProduct(ctx, c.backend(), req, headersOf(opts))
}

func (c *Client) UpdateProduct(ctx context.Context, id int, req ProductUpdate, opts ...CallOption) *Response[Product] {
	return api.UpdateProduct(ctx, c.backend(), id, req, headersOf(opts))
}

func (c *Client) DeleteProduct(ctx context.Context, id int, opts ...CallOption) *Response[Product] {
	return api.DeleteProduct(ctx, c.backend(), id, headersOf(opts))
}

// ListCategories returns categories; filter may be nil.
func (c *Client) ListCategories(ctx context.Context, page *Page, filter *CategoryFilter, opts ...CallOption) *Response[[]Category] {
	return api.ListCategories(ctx, c.backend(), page, filter, headersOf(opts))
}

func (c *Client) GetCategory(ctx context.Context, id int, opts ...CallOption) *Response[Category] {
	return api.GetCategory(ctx, c.backend(), id, headersOf(opts))
}

func (c *Client) CreateCategory(ctx context.Context, req CategoryCreate, opts ...CallOption) *Response[Category] {
	return api.CreateCategory(ctx, c.backend(), req, headersOf(opts))
}

func (c *Client) UpdateCategory(ctx context.Context, id int, req CategoryUpdate, opts ...CallOption) *Response[Category] {
	return api.UpdateCategory(ctx, c.backend(), id, req, headersOf(opts))
}

func (c *Client) DeleteCategory(ctx context.Context, id int, opts ...CallOption) *Response[Category] {
	return api.DeleteCategory(ctx, c.backend(), id, headersOf(opts))
}

// --------------------------------------------------------------------
// Orders and stats
// --------------------------------------------------------------------

// ListOrders returns one page of orders; filter may be nil.
func (c *Client) ListOrders(ctx context.Context, page *Page, filter *OrderFilter, opts ...CallOption) *Response[[]Order] {
	return api.ListOrders(ctx, c.backend(), page, filter, headersOf(opts))
}

func (c *Client) GetOrder(ctx context.Context, id int, opts ...CallOption) *Response[Order] {
	return api.GetOrder(ctx, c.backend(), id, headersOf(opts))
}

func (c *Client) CreateOrder(ctx context.Context, req OrderCreate, opts ...CallOption) *Response[Order] {
	return api.CreateOrder(ctx, c.backend(), req, headersOf(opts))
}

func (c *Client) UpdateOrder(ctx context.Context, id int, req OrderUpdate, opts ...CallOption) *Response[Order] {
	return api.UpdateOrder(ctx, c.backend(), id, req, headersOf(opts))
}

func (c *Client) DeleteOrder(ctx context.Context, id int, opts ...CallOption) *Response[Order] {
	return api.DeleteOrder(ctx, c.backend(), id, headersOf(opts))
}

// DashboardStats returns the system-wide counters.
func (c *Client) DashboardStats(ctx context.Context, opts ...CallOption) *Response[DashboardStats] {
	return api.DashboardStats(ctx, c.backend(), headersOf(opts))
}
