package client

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Reksit/Hack4.0/client/session"
)

// DefaultBaseURL is the backend root used by local development setups.
const DefaultBaseURL = "http://localhost:8080/api"

const defaultTimeout = 30 * time.Second

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is the facade over the campus backend. Every request carries the
// session token (when one is stored); every 401 clears the session and
// notifies the configured Notifier before the error reaches the caller.
//
// A Client is safe for concurrent use.
type Client struct {
	rest      *resty.Client
	store     session.Store
	notifier  session.Notifier
	loginPath string
	log       zerolog.Logger

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for baseURL that reads the session token from store.
// Additional options can be provided via functional arguments.
func New(baseURL string, store session.Store, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("baseURL cannot be empty")
	}
	if store == nil {
		return nil, errors.New("session store cannot be nil")
	}

	c := &Client{
		rest: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json").
			SetTimeout(defaultTimeout),
		store:     store,
		loginPath: session.DefaultLoginPath,
		log:       log.Logger,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.notifier == nil {
		c.notifier = session.LogNotifier{Logger: c.log}
	}

	c.rest.SetLogger(restyLogger{logger: c.log})
	c.rest.OnBeforeRequest(c.authorize)
	c.rest.OnAfterResponse(c.checkResponse)
	c.rest.OnError(c.logTransportError)

	return c, nil
}

// BaseURL returns the backend root every endpoint path is resolved against.
func (c *Client) BaseURL() string { return c.rest.BaseURL }

// Close releases idle connections. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	c.rest.GetClient().CloseIdleConnections()
	return nil
}

// --------------------------------------------------------------------
// Endpoint groups
// --------------------------------------------------------------------

// Auth groups registration and login endpoints.
func (c *Client) Auth() AuthAPI { return AuthAPI{c: c} }

// Alumni groups the alumni approval workflow.
func (c *Client) Alumni() AlumniAPI { return AlumniAPI{c: c} }

// Assessments groups assessment authoring, submission and results.
func (c *Client) Assessments() AssessmentAPI { return AssessmentAPI{c: c} }

// Chat groups direct messaging and user search.
func (c *Client) Chat() ChatAPI { return ChatAPI{c: c} }

// AI groups the AI generation endpoints.
func (c *Client) AI() AIAPI { return AIAPI{c: c} }

// restyLogger routes resty's internal messages through zerolog.
type restyLogger struct {
	logger zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) { l.logger.Error().Msgf(format, v...) }
func (l restyLogger) Warnf(format string, v ...interface{})  { l.logger.Warn().Msgf(format, v...) }
func (l restyLogger) Debugf(format string, v ...interface{}) { l.logger.Debug().Msgf(format, v...) }
