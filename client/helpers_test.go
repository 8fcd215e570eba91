package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Reksit/Hack4.0/client/session"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// notifyRecorder counts SessionExpired calls.
type notifyRecorder struct {
	mu    sync.Mutex
	paths []string
}

func (n *notifyRecorder) SessionExpired(_ context.Context, loginPath string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, loginPath)
}

func (n *notifyRecorder) calls() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.paths...)
}

// failingStore fails every operation.
type failingStore struct{ err error }

func (f failingStore) Get(string) (string, bool, error) { return "", false, f.err }
func (f failingStore) Set(string, string) error         { return f.err }
func (f failingStore) Delete(...string) error           { return f.err }

func newTestClient(t *testing.T, baseURL string, store session.Store, opts ...Option) (*Client, *notifyRecorder) {
	t.Helper()
	rec := &notifyRecorder{}
	c, err := New(baseURL, store, append([]Option{WithNotifier(rec)}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, rec
}

// statusServer answers every request with status; the returned func reports
// the last Authorization header it saw.
func statusServer(t *testing.T, status int, body string) (*httptest.Server, func() string) {
	t.Helper()
	var mu sync.Mutex
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		auth = r.Header.Get("Authorization")
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, func() string {
		mu.Lock()
		defer mu.Unlock()
		return auth
	}
}
