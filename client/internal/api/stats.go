package api

import (
	"context"
	"net/http"

	"github.com/clacky-ai/uniapp-fastapi-mysql-starter/client/internal/types"
)

// DashboardStats returns the system-wide counters.
func DashboardStats(ctx context.Context, b Backend, headers map[string]string) *types.Response[types.DashboardStats] {
	return call[types.DashboardStats](ctx, b, http.MethodGet, "/api/v1/stats/dashboard", nil, headers)
}
