package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/clacky-ai/uniapp-fastapi-mysql-starter/client/internal/types"
)

func TestDo_SuccessWrapsRawBody(t *testing.T) {
	t.Parallel()
	b, rec := stubBackend(t, http.StatusOK, `{"total_users":3,"message":"ok"}`)
	got := Do(context.Background(), b, "/api/v1/stats/dashboard", nil)
	if !got.Success || got.Error != "" || got.Status != http.StatusOK {
		t.Fatalf("unexpected envelope: %+v", got)
	}
	if got.Data == nil || string(*got.Data) != `{"total_users":3,"message":"ok"}` {
		t.Fatalf("data not passed through: %v", got.Data)
	}
	if got.Message != "ok" {
		t.Fatalf("message = %q", got.Message)
	}
	if rec.get().method != http.MethodGet || rec.get().uri != "/api/v1/stats/dashboard" {
		t.Fatalf("backend saw %s %s", rec.get().method, rec.get().uri)
	}
	if len(rec.get().body) != 0 {
		t.Fatalf("GET carried a body: %q", rec.get().body)
	}
}

func TestDo_SuccessIffStatus2xx(t *testing.T) {
	t.Parallel()
	for _, status := range []int{200, 201, 202, 204, 299, 300, 400, 401, 403, 404, 422, 500, 502, 503} {
		b, _ := stubBackend(t, status, `{}`)
		got := Do(context.Background(), b, "/x", &types.RequestOptions{})
		want := status >= 200 && status < 300
		if got.Success != want {
			t.Fatalf("status %d: success=%v want %v", status, got.Success, want)
		}
		if got.Success && got.Error != "" {
			t.Fatalf("status %d: success with error %q", status, got.Error)
		}
		if !got.Success && (got.Data != nil || got.Error == "") {
			t.Fatalf("status %d: failure envelope broken: %+v", status, got)
		}
		if got.Status != status {
			t.Fatalf("status %d: recorded %d", status, got.Status)
		}
	}
}

func TestDo_404ErrorMentionsStatus(t *testing.T) {
	t.Parallel()
	b, _ := stubBackend(t, http.StatusNotFound, `{"detail":"post not found"}`)
	got := Do(context.Background(), b, "/api/v1/posts/9", nil)
	if got.Success || !strings.Contains(got.Error, "404") {
		t.Fatalf("unexpected envelope: %+v", got)
	}
	if got.Error != "HTTP 404: post not found" {
		t.Fatalf("error = %q", got.Error)
	}
}

func TestDo_NetworkFailure(t *testing.T) {
	t.Parallel()
	b := Backend{Rest: resty.NewWithClient(&http.Client{Transport: &errRT{}}), BaseURL: "http://backend.invalid"}
	got := Do(context.Background(), b, "/api/v1/users/me", nil)
	if got.Success || got.Data != nil || got.Status != 0 {
		t.Fatalf("unexpected envelope: %+v", got)
	}
	if !strings.Contains(got.Error, "boom") {
		t.Fatalf("error = %q", got.Error)
	}
}

func TestDo_Timeout(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	b := Backend{Rest: resty.NewWithClient(&http.Client{Timeout: 50 * time.Millisecond}), BaseURL: srv.URL}
	got := Do(context.Background(), b, "/slow", nil)
	if got.Success || got.Error == "" || got.Status != 0 {
		t.Fatalf("expected timeout failure, got %+v", got)
	}
}

func TestDo_UnsupportedMethodNeverHitsNetwork(t *testing.T) {
	t.Parallel()
	b, rec := stubBackend(t, http.StatusOK, `{}`)
	got := Do(context.Background(), b, "/x", &types.RequestOptions{Method: "PATCH"})
	if got.Success || !strings.Contains(got.Error, "unsupported method") {
		t.Fatalf("unexpected envelope: %+v", got)
	}
	if rec.get().calls != 0 {
		t.Fatalf("backend called %d times", rec.get().calls)
	}
}

func TestDo_NilTransport(t *testing.T) {
	t.Parallel()
	got := Do(context.Background(), Backend{BaseURL: "http://x"}, "/x", nil)
	if got.Success || got.Error == "" {
		t.Fatalf("unexpected envelope: %+v", got)
	}
}

func TestDo_HeaderMerge(t *testing.T) {
	t.Parallel()
	b, rec := stubBackend(t, http.StatusOK, `{}`)
	Do(context.Background(), b, "/x", &types.RequestOptions{Headers: map[string]string{"Authorization": "Bearer t0k"}})
	if rec.get().header.Get("Content-Type") != "application/json" || rec.get().header.Get("Authorization") != "Bearer t0k" {
		t.Fatalf("headers not merged: %v", rec.get().header)
	}

	b, rec = stubBackend(t, http.StatusOK, `{}`)
	Do(context.Background(), b, "/x", &types.RequestOptions{Method: "POST", Data: "a=1", Headers: map[string]string{"content-type": "application/x-www-form-urlencoded"}})
	if got := rec.get().header.Values("Content-Type"); len(got) != 1 || got[0] != "application/x-www-form-urlencoded" {
		t.Fatalf("caller content type should win: %v", got)
	}
	if string(rec.get().body) != "a=1" {
		t.Fatalf("body = %q", rec.get().body)
	}
}

func TestMergeHeaders(t *testing.T) {
	t.Parallel()
	got := MergeHeaders(nil)
	if len(got) != 1 || got["Content-Type"] != ContentTypeJSON {
		t.Fatalf("defaults: %v", got)
	}
	got = MergeHeaders(map[string]string{"x-trace": "1", "CONTENT-TYPE": "text/plain"})
	if len(got) != 2 || got["Content-Type"] != "text/plain" || got["X-Trace"] != "1" {
		t.Fatalf("merged: %v", got)
	}
}

func TestMergeHeaders_CollidingKeysResolveInSortedOrder(t *testing.T) {
	t.Parallel()
	in := map[string]string{"Content-Type": "upper", "content-type": "lower", "CONTENT-TYPE": "shout"}
	for i := 0; i < 50; i++ {
		if got := MergeHeaders(in)["Content-Type"]; got != "lower" {
			t.Fatalf("iteration %d: Content-Type = %q, want the last key in sorted order", i, got)
		}
	}
}

func TestDo_BodyEncoding(t *testing.T) {
	t.Parallel()
	b, rec := stubBackend(t, http.StatusCreated, `{"id":1}`)
	Do(context.Background(), b, "/api/v1/posts/", &types.RequestOptions{Method: "POST"})
	if string(rec.get().body) != "{}" {
		t.Fatalf("nil data should send {}, got %q", rec.get().body)
	}

	b, rec = stubBackend(t, http.StatusOK, `{"id":1}`)
	Do(context.Background(), b, "/api/v1/posts/1", &types.RequestOptions{Method: "put", Data: types.PostCreate{Title: "hi"}})
	if rec.get().method != http.MethodPut || string(rec.get().body) != `{"title":"hi","is_published":false}` {
		t.Fatalf("backend saw %s %q", rec.get().method, rec.get().body)
	}

	b, rec = stubBackend(t, http.StatusOK, `{}`)
	got := Do(context.Background(), b, "/x", &types.RequestOptions{Method: "POST", Data: make(chan int)})
	if got.Success || !strings.Contains(got.Error, "encode request body") || rec.get().calls != 0 {
		t.Fatalf("unencodable body: %+v calls=%d", got, rec.get().calls)
	}
}

func TestDo_GetDataBecomesQuery(t *testing.T) {
	t.Parallel()
	b, rec := stubBackend(t, http.StatusOK, `[]`)
	Do(context.Background(), b, "/api/v1/products/", &types.RequestOptions{Data: map[string]string{"search": "tea"}})
	if rec.get().uri != "/api/v1/products/?search=tea" {
		t.Fatalf("uri = %q", rec.get().uri)
	}
	b, rec = stubBackend(t, http.StatusOK, `[]`)
	Do(context.Background(), b, "/p", &types.RequestOptions{Data: url.Values{"a": {"1"}}})
	if rec.get().uri != "/p?a=1" {
		t.Fatalf("uri = %q", rec.get().uri)
	}
}

func TestDo_NonJSONAndEmptyBodies(t *testing.T) {
	t.Parallel()
	b, _ := stubBackend(t, http.StatusOK, `plain text`)
	got := Do(context.Background(), b, "/x", nil)
	if !got.Success || string(*got.Data) != `"plain text"` {
		t.Fatalf("non-JSON body: %+v", got)
	}
	if _, err := json.Marshal(got); err != nil {
		t.Fatalf("envelope not encodable: %v", err)
	}

	b, _ = stubBackend(t, http.StatusNoContent, ``)
	got = Do(context.Background(), b, "/x", &types.RequestOptions{Method: "DELETE"})
	if !got.Success || string(*got.Data) != "null" {
		t.Fatalf("empty body: %+v", got)
	}
}

func TestInto_DecodeFailureKeepsSuccess(t *testing.T) {
	t.Parallel()
	data := json.RawMessage(`{"id":"not-a-number"}`)
	got := Into[types.Post](&types.RawResponse{Success: true, Data: &data, Status: 200})
	if !got.Success || got.Data != nil || !strings.Contains(got.Message, "decode response") {
		t.Fatalf("unexpected: %+v", got)
	}
	failed := Into[types.Post](types.Failure[json.RawMessage](500, "HTTP 500: boom"))
	if failed.Success || failed.Data != nil || failed.Error != "HTTP 500: boom" || failed.Status != 500 {
		t.Fatalf("unexpected: %+v", failed)
	}
}

func TestPageQuery(t *testing.T) {
	t.Parallel()
	cases := []struct {
		page  *types.Page
		extra url.Values
		want  string
	}{
		{nil, nil, "?skip=0&limit=10"},
		{&types.Page{}, nil, "?skip=0&limit=10"},
		{&types.Page{Skip: 20, Limit: 5}, nil, "?skip=20&limit=5"},
		{&types.Page{Skip: -3, Limit: -1}, nil, "?skip=0&limit=10"},
		{nil, url.Values{"status": {"paid"}}, "?skip=0&limit=10&status=paid"},
	}
	for _, c := range cases {
		if got := pageQuery(c.page, c.extra); got != c.want {
			t.Fatalf("pageQuery(%+v, %v) = %q want %q", c.page, c.extra, got, c.want)
		}
	}
}
