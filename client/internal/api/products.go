package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/clacky-ai/uniapp-fastapi-mysql-starter/client/internal/types"
)

const productsPath = "/api/v1/products/"

// ListProducts returns one page of products, optionally narrowed by filter.
func ListProducts(ctx context.Context, b Backend, page *types.Page, filter *types.ProductFilter, headers map[string]string) *types.Response[[]types.Product] {
	return call[[]types.Product](ctx, b, http.MethodGet, productsPath+pageQuery(page, productValues(filter)), nil, headers)
}

// GetProduct returns a product by ID.
func GetProduct(ctx context.Context, b Backend, id int, headers map[string]string) *types.Response[types.Product] {
	return call[types.Product](ctx, b, http.MethodGet, idPath(productsPath, id), nil, headers)
}

// CreateProduct adds a product (admin only on the backend).
func CreateProduct(ctx context.Context, b Backend, req types.ProductCreate, headers map[string]string) *types.Response[types.Product] {
	return call[types.Product](ctx, b, http.MethodPost, productsPath, req, headers)
}

// UpdateProduct changes a product's fields.
func UpdateProduct(ctx context.Context, b Backend, id int, req types.ProductUpdate, headers map[string]string) *types.Response[types.Product] {
	return call[types.Product](ctx, b, http.MethodPut, idPath(productsPath, id), req, headers)
}

// DeleteProduct removes a product and returns the deleted record.
func DeleteProduct(ctx context.Context, b Backend, id int, headers map[string]string) *types.Response[types.Product] {
	return call[types.Product](ctx, b, http.MethodDelete, idPath(productsPath, id), nil, headers)
}

func productValues(f *types.ProductFilter) url.Values {
	if f == nil {
		return nil
	}
	v := url.Values{}
	if f.CategoryID != nil {
		v.Set("category_id", strconv.Itoa(*f.CategoryID))
	}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.ActiveOnly != nil {
		v.Set("active_only", strconv.FormatBool(*f.ActiveOnly))
	}
	return v
}
