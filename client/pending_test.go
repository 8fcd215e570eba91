package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Reksit/Hack4.0/client/session"
)

func TestGo_ConcurrentCallsAreIndependent(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/assessments/ok/status":
			<-release
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"ACTIVE"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(srv.Close)
	var once sync.Once
	unblock := func() { once.Do(func() { close(release) }) }
	t.Cleanup(unblock)
	c, _ := newTestClient(t, srv.URL, session.NewMemoryStore())
	ctx := context.Background()

	slow := Go(ctx, func(ctx context.Context) (*AssessmentStatus, error) {
		return c.Assessments().GetStatus(ctx, "ok")
	})
	failing := Go(ctx, func(ctx context.Context) (*AssessmentStatus, error) {
		return c.Assessments().GetStatus(ctx, "broken")
	})

	_, err := failing.Await(ctx)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, StatusCode(err))

	select {
	case <-slow.Done():
		t.Fatal("slow call must still be in flight")
	default:
	}
	unblock()

	st, err := slow.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", st.Status)
}

func TestPending_AwaitContextExpires(t *testing.T) {
	t.Parallel()
	block := make(chan struct{})
	defer close(block)
	p := Go(context.Background(), func(context.Context) (int, error) {
		<-block
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := p.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGo_NilFunc(t *testing.T) {
	t.Parallel()
	p := Go[int](context.Background(), nil)
	_, err := p.Await(context.Background())
	assert.True(t, errors.Is(err, ErrNilJobFunc))
}
