package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/clacky-ai/uniapp-fastapi-mysql-starter/client/internal/types"
)

const categoriesPath = "/api/v1/categories/"

// ListCategories returns categories, optionally narrowed by filter.
func ListCategories(ctx context.Context, b Backend, page *types.Page, filter *types.CategoryFilter, headers map[string]string) *types.Response[[]types.Category] {
	return call[[]types.Category](ctx, b, http.MethodGet, categoriesPath+pageQuery(page, categoryValues(filter)), nil, headers)
}

// GetCategory returns a category by ID.
func GetCategory(ctx context.Context, b Backend, id int, headers map[string]string) *types.Response[types.Category] {
	return call[types.Category](ctx, b, http.MethodGet, idPath(categoriesPath, id), nil, headers)
}

// CreateCategory adds a category.
func CreateCategory(ctx context.Context, b Backend, req types.CategoryCreate, headers map[string]string) *types.Response[types.Category] {
	return call[types.Category](ctx, b, http.MethodPost, categoriesPath, req, headers)
}

// UpdateCategory changes a category's fields.
func UpdateCategory(ctx context.Context, b Backend, id int, req types.CategoryUpdate, headers map[string]string) *types.Response[types.Category] {
	return call[types.Category](ctx, b, http.MethodPut, idPath(categoriesPath, id), req, headers)
}

// DeleteCategory removes a category and returns the deleted record.
func DeleteCategory(ctx context.Context, b Backend, id int, headers map[string]string) *types.Response[types.Category] {
	return call[types.Category](ctx, b, http.MethodDelete, idPath(categoriesPath, id), nil, headers)
}

func categoryValues(f *types.CategoryFilter) url.Values {
	if f == nil {
		return nil
	}
	v := url.Values{}
	if f.ParentID != nil {
		v.Set("parent_id", strconv.Itoa(*f.ParentID))
	}
	if f.ActiveOnly != nil {
		v.Set("active_only", strconv.FormatBool(*f.ActiveOnly))
	}
	return v
}
