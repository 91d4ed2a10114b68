package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/clacky-ai/uniapp-fastapi-mysql-starter/client/internal/types"
)

// DefaultLimit is the page size used when a list call does not specify one.
const DefaultLimit = 10

// ObserveFunc receives one record per finished call (outcome is "success" or
// an error category label).
type ObserveFunc func(method, outcome string, elapsed time.Duration)

// Backend bundles what every endpoint call needs: the transport, the resolved
// base URL prefix and an optional observer for metrics.
type Backend struct {
	Rest    *resty.Client
	BaseURL string
	Observe ObserveFunc
}

// Into decodes the raw envelope's data into T. Success is carried over
// unchanged: a 2xx body that does not decode leaves Data nil and explains why
// in Message.
func Into[T any](raw *types.RawResponse) *types.Response[T] {
	out := &types.Response[T]{
		Success: raw.Success,
		Message: raw.Message,
		Error:   raw.Error,
		Status:  raw.Status,
	}
	if !raw.Success || raw.Data == nil {
		return out
	}
	var v T
	if err := json.Unmarshal(*raw.Data, &v); err != nil {
		out.Message = fmt.Sprintf("decode response: %v", err)
		return out
	}
	out.Data = &v
	return out
}

// call runs the helper and decodes the result in one step.
func call[T any](ctx context.Context, b Backend, method, path string, data any, headers map[string]string) *types.Response[T] {
	return Into[T](Do(ctx, b, path, &types.RequestOptions{Method: method, Data: data, Headers: headers}))
}

// pageQuery renders "?skip=<s>&limit=<l>" followed by any extra filters.
// Missing or non-positive values fall back to skip 0 and limit DefaultLimit.
func pageQuery(p *types.Page, extra url.Values) string {
	skip, limit := 0, DefaultLimit
	if p != nil {
		if p.Skip > 0 {
			skip = p.Skip
		}
		if p.Limit > 0 {
			limit = p.Limit
		}
	}
	q := "?skip=" + strconv.Itoa(skip) + "&limit=" + strconv.Itoa(limit)
	if len(extra) > 0 {
		q += "&" + extra.Encode()
	}
	return q
}

func idPath(prefix string, id int) string {
	return prefix + strconv.Itoa(id)
}
