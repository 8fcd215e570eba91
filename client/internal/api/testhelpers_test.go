package api

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-resty/resty/v2"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// newRC points a bare resty client (no client-level hooks) at srv.
func newRC(srv *httptest.Server) *resty.Client {
	return resty.New().SetBaseURL(srv.URL).SetHeader("Content-Type", "application/json")
}

// failingRC is a resty client whose transport always fails.
func failingRC() *resty.Client {
	return resty.New().SetBaseURL("http://example.com").SetTransport(&errRT{})
}

// captured records the parts of a request the endpoint table cares about.
type captured struct {
	method   string
	path     string
	rawQuery string
	body     string
}

// recordingServer answers every request with status and payload and stores
// the last request it saw in *got.
func recordingServer(got *captured, status int, payload string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		*got = captured{method: r.Method, path: r.URL.EscapedPath(), rawQuery: r.URL.RawQuery, body: string(b)}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(payload))
	}))
}

func httptestServer(t interface{ Cleanup(func()) }, h http.Handler) *httptest.Server {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}
