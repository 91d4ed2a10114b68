package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("UNIBLOG_DEBUG", "true")
	c, err := New()
	require.NoError(t, err)
	_, ok := c.http.Transport.(*debugTransport)
	assert.True(t, ok, "expected debugTransport to be installed when UNIBLOG_DEBUG=true")
}

func TestDebugTransport_ErrorPath(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	c, err := New(WithHTTPClient(&http.Client{Transport: rt}), WithDebugLogging(true), WithBaseURL("http://example.com"))
	require.NoError(t, err)
	got := c.Request(context.Background(), "/x", nil)
	assert.False(t, got.Success)
	assert.Contains(t, got.Error, "deadline exceeded")
}
