package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	method, uri, auth, body string
}

// stubAPI answers like the backend for the handful of routes the CLI tests touch.
func stubAPI(t *testing.T) (*httptest.Server, func() []call) {
	t.Helper()
	var (
		mu    sync.Mutex
		calls []call
	)
	mux := http.NewServeMux()
	record := func(r *http.Request) string {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		calls = append(calls, call{r.Method, r.URL.RequestURI(), r.Header.Get("Authorization"), string(b)})
		mu.Unlock()
		return string(b)
	}
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		body := record(r)
		// Reads the OAuth2 password form like the backend does.
		if r.Header.Get("Content-Type") != "application/x-www-form-urlencoded" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		form, err := url.ParseQuery(body)
		if err != nil || form.Get("username") == "" || form.Get("password") == "" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1", "token_type": "bearer"})
	})
	mux.HandleFunc("/api/v1/posts/", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/posts/":
			_, _ = w.Write([]byte(`[{"id":1,"title":"hello","author_id":1}]`))
		case r.Method == http.MethodPost:
			_, _ = w.Write([]byte(`{"id":2,"title":"new","author_id":1}`))
		case r.Method == http.MethodDelete:
			_, _ = w.Write([]byte(`{"message":"deleted"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"post not found"}`))
		}
	})
	mux.HandleFunc("/api/v1/stats/dashboard", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		_, _ = w.Write([]byte(`{"total_users":2,"active_users":1,"total_posts":3,"published_posts":1,"system_status":"running"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, func() []call {
		mu.Lock()
		defer mu.Unlock()
		return append([]call(nil), calls...)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCLI_LoginListCreateDelete(t *testing.T) {
	srv, calls := stubAPI(t)
	t.Setenv("UNIBLOG_BASE_URL", srv.URL)

	out, err := execute(t, "login", "--username", "ada", "--password", "pw")
	require.NoError(t, err)
	var login struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &login))
	assert.True(t, login.Success)
	assert.Equal(t, "tok-1", login.Data.AccessToken)

	out, err = execute(t, "--token", "tok-1", "posts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "hello"`)

	_, err = execute(t, "--token", "tok-1", "posts", "create", "--data", `{"title":"new","is_published":true}`)
	require.NoError(t, err)

	out, err = execute(t, "posts", "delete", "2")
	require.NoError(t, err)
	assert.Contains(t, out, `"message": "deleted"`)

	got := calls()
	require.Len(t, got, 4)
	assert.Equal(t, call{"POST", "/api/v1/auth/login", "", "password=pw&username=ada"}, got[0])
	assert.Equal(t, "/api/v1/posts/?skip=0&limit=10", got[1].uri)
	assert.Equal(t, "Bearer tok-1", got[1].auth)
	assert.JSONEq(t, `{"title":"new","is_published":true}`, got[2].body)
	assert.Equal(t, "DELETE", got[3].method)
	assert.Equal(t, "/api/v1/posts/2", got[3].uri)
}

func TestCLI_FailureEnvelopeExitsNonZero(t *testing.T) {
	srv, _ := stubAPI(t)
	t.Setenv("UNIBLOG_BASE_URL", srv.URL)

	out, err := execute(t, "posts", "get", "99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, out, `"success": false`)
}

func TestCLI_StatsAndPagination(t *testing.T) {
	srv, calls := stubAPI(t)
	t.Setenv("UNIBLOG_BASE_URL", srv.URL)

	out, err := execute(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, `"system_status": "running"`)

	_, err = execute(t, "posts", "list", "--skip", "20", "--limit", "5")
	require.NoError(t, err)
	got := calls()
	require.Len(t, got, 2)
	assert.Equal(t, "/api/v1/posts/?skip=20&limit=5", got[1].uri)
}

func TestCLI_InputValidation(t *testing.T) {
	t.Setenv("UNIBLOG_BASE_URL", "http://127.0.0.1:1")

	_, err := execute(t, "posts", "get", "abc")
	assert.Error(t, err)

	_, err = execute(t, "posts", "create")
	assert.ErrorContains(t, err, "--data is required")

	_, err = execute(t, "posts", "create", "--data", "{not json")
	assert.ErrorContains(t, err, "invalid --data")
}
