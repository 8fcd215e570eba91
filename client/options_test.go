package client

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Reksit/Hack4.0/client/session"
)

func TestWithHTTPTimeoutAndDebugLogging(t *testing.T) {
	c, err := New("http://example.com", session.NewMemoryStore(), WithHTTPTimeout(5*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, c.rest.GetClient().Timeout)

	_, err = New("http://example.com", session.NewMemoryStore(), WithHTTPTimeout(0))
	assert.Error(t, err, "non-positive timeout must be rejected")

	// debug logging wraps the injected transport
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})
	c2, err := New("http://example.com", session.NewMemoryStore(), WithTransport(rt), WithDebugLogging(true))
	require.NoError(t, err)
	dt, ok := c2.rest.GetClient().Transport.(*debugTransport)
	require.True(t, ok, "expected debugTransport to wrap the injected transport")

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", strings.NewReader(""))
	_, err = dt.RoundTrip(req)
	require.NoError(t, err)
	assert.True(t, called, "base transport not invoked")
}

func TestNew_Validation(t *testing.T) {
	_, err := New("", session.NewMemoryStore())
	assert.Error(t, err)
	_, err = New("http://example.com", nil)
	assert.Error(t, err)
	_, err = New("http://example.com", session.NewMemoryStore(), WithNotifier(nil))
	assert.Error(t, err)
	_, err = New("http://example.com", session.NewMemoryStore(), WithLoginPath(""))
	assert.Error(t, err)
	_, err = New("http://example.com", session.NewMemoryStore(), WithTransport(nil))
	assert.Error(t, err)
	_, err = New("http://example.com", session.NewMemoryStore(), WithHeader("", "x"))
	assert.Error(t, err)
}

func TestNew_Defaults(t *testing.T) {
	c, err := New(DefaultBaseURL, session.NewMemoryStore())
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
	assert.Equal(t, "application/json", c.rest.Header.Get("Content-Type"))
	assert.Equal(t, defaultTimeout, c.rest.GetClient().Timeout)
	assert.Equal(t, session.DefaultLoginPath, c.loginPath)
	_, isLog := c.notifier.(session.LogNotifier)
	assert.True(t, isLog, "default notifier logs")
}

func TestWithHeader_SentOnEveryRequest(t *testing.T) {
	var got string
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		got = r.Header.Get("X-Client")
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Header: make(http.Header), Request: r}, nil
	})
	c, err := New("http://example.com", session.NewMemoryStore(), WithTransport(rt), WithHeader("X-Client", "campusctl"))
	require.NoError(t, err)
	_, err = c.Alumni().RejectRequest(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "campusctl", got)
}

func TestCloseIdempotent(t *testing.T) {
	c, err := New("http://example.com", session.NewMemoryStore())
	require.NoError(t, err)
	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
}

// idleTrackingTransport counts CloseIdleConnections calls.
type idleTrackingTransport struct {
	roundTripFunc
	closed atomic.Int32
}

func (t *idleTrackingTransport) CloseIdleConnections() { t.closed.Add(1) }

func TestClose_ReleasesConnectionsThroughDebugTransport(t *testing.T) {
	rt := &idleTrackingTransport{roundTripFunc: func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Header: make(http.Header), Request: r}, nil
	}}
	c, err := New("http://example.com", session.NewMemoryStore(), WithTransport(rt), WithDebugLogging(true))
	require.NoError(t, err)
	_, wrapped := c.rest.GetClient().Transport.(*debugTransport)
	require.True(t, wrapped)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.Equal(t, int32(1), rt.closed.Load())
}
