package api

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// seen is what the stub backend observed on its last request.
type seen struct {
	method string
	uri    string
	header http.Header
	body   []byte
	calls  int
}

type recorded struct {
	mu   sync.Mutex
	last seen
}

func (r *recorded) get() seen {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// stubBackend starts a server answering every request with status and body,
// and returns a Backend pointed at it.
func stubBackend(t *testing.T, status int, body string) (Backend, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.last.method = r.Method
		rec.last.uri = r.URL.RequestURI()
		rec.last.header = r.Header.Clone()
		rec.last.body = buf
		rec.last.calls++
		rec.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return Backend{Rest: resty.NewWithClient(&http.Client{Timeout: 5 * time.Second}), BaseURL: srv.URL}, rec
}
