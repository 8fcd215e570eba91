package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Reksit/Hack4.0/client/session"
)

// Option configures a Client during construction in New.
//
// Options are applied before the request/response hooks are registered, so
// transport-related options (like debug logging) sit underneath them.
// Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout bounds the total time spent on a single HTTP request
// (connection, TLS handshake, redirects and reading the response).
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.rest.SetTimeout(d)
		return nil
	}
}

// WithTransport replaces the underlying http.RoundTripper. Options applied
// after it (e.g. WithDebugLogging) wrap the new transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) error {
		if rt == nil {
			return fmt.Errorf("transport cannot be nil")
		}
		c.rest.SetTransport(rt)
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments: dumps include the
// Authorization header and request bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if !enabled {
			return nil
		}
		if _, already := c.rest.GetClient().Transport.(*debugTransport); already {
			return nil
		}
		base := c.rest.GetClient().Transport
		if base == nil {
			base = http.DefaultTransport
		}
		c.rest.SetTransport(&debugTransport{base: base})
		return nil
	}
}

// WithNotifier sets who is told when the backend answers 401.
// Defaults to a session.LogNotifier.
func WithNotifier(n session.Notifier) Option {
	return func(c *Client) error {
		if n == nil {
			return fmt.Errorf("notifier cannot be nil")
		}
		c.notifier = n
		return nil
	}
}

// WithLoginPath sets the path handed to the Notifier on 401.
// Defaults to session.DefaultLoginPath.
func WithLoginPath(path string) Option {
	return func(c *Client) error {
		if path == "" {
			return fmt.Errorf("login path cannot be empty")
		}
		c.loginPath = path
		return nil
	}
}

// WithLogger sets the logger used by the client and its default notifier.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = l
		return nil
	}
}

// WithHeader adds a header sent on every request.
func WithHeader(key, value string) Option {
	return func(c *Client) error {
		if key == "" {
			return fmt.Errorf("header key cannot be empty")
		}
		c.rest.SetHeader(key, value)
		return nil
	}
}
