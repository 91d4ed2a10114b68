package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/clacky-ai/uniapp-fastapi-mysql-starter/client/internal/types"
)

const ordersPath = "/api/v1/orders/"

// ListOrders returns one page of orders. Non-admin callers only see their own.
func ListOrders(ctx context.Context, b Backend, page *types.Page, filter *types.OrderFilter, headers map[string]string) *types.Response[[]types.Order] {
	var extra url.Values
	if filter != nil && filter.Status != "" {
		extra = url.Values{"status": {string(filter.Status)}}
	}
	return call[[]types.Order](ctx, b, http.MethodGet, ordersPath+pageQuery(page, extra), nil, headers)
}

// GetOrder returns an order by ID.
func GetOrder(ctx context.Context, b Backend, id int, headers map[string]string) *types.Response[types.Order] {
	return call[types.Order](ctx, b, http.MethodGet, idPath(ordersPath, id), nil, headers)
}

// CreateOrder places an order for the authenticated user.
func CreateOrder(ctx context.Context, b Backend, req types.OrderCreate, headers map[string]string) *types.Response[types.Order] {
	return call[types.Order](ctx, b, http.MethodPost, ordersPath, req, headers)
}

// UpdateOrder changes an order's status or shipping address.
func UpdateOrder(ctx context.Context, b Backend, id int, req types.OrderUpdate, headers map[string]string) *types.Response[types.Order] {
	return call[types.Order](ctx, b, http.MethodPut, idPath(ordersPath, id), req, headers)
}

// DeleteOrder removes an order and returns the deleted record.
func DeleteOrder(ctx context.Context, b Backend, id int, headers map[string]string) *types.Response[types.Order] {
	return call[types.Order](ctx, b, http.MethodDelete, idPath(ordersPath, id), nil, headers)
}
