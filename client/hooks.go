package client

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	apierrors "github.com/Reksit/Hack4.0/client/internal/errors"
	"github.com/Reksit/Hack4.0/client/session"
)

const requestIDHeader = "X-Request-ID"

// authorize attaches the stored session token to an outgoing request.
// It never fails: a store that cannot be read is treated as "no token".
func (c *Client) authorize(_ *resty.Client, r *resty.Request) error {
	token, ok, err := c.store.Get(session.TokenKey)
	if err != nil {
		c.log.Warn().Err(err).Str("url", r.URL).Msg("read session token; sending request unauthenticated")
	} else if ok && token != "" {
		r.SetHeader("Authorization", "Bearer "+token)
	}
	if r.Header.Get(requestIDHeader) == "" {
		r.SetHeader(requestIDHeader, uuid.NewString())
	}
	return nil
}

// checkResponse turns every non-2xx response into an *APIError. A 401 also
// clears the stored session and notifies before the error is returned.
func (c *Client) checkResponse(_ *resty.Client, resp *resty.Response) error {
	req := resp.Request
	requestsTotal.WithLabelValues(req.Method, strconv.Itoa(resp.StatusCode())).Inc()
	if resp.IsSuccess() {
		return nil
	}
	apiErr := apierrors.NewHTTPError(req.Method, req.URL, resp.StatusCode(), resp.String())
	if resp.StatusCode() == http.StatusUnauthorized {
		c.expireSession(req)
	}
	return apiErr
}

// expireSession removes the token and user record, then tells the notifier.
// A failing store is logged; the notifier still runs.
func (c *Client) expireSession(req *resty.Request) {
	sessionsExpiredTotal.Inc()
	if err := session.Clear(c.store); err != nil {
		c.log.Error().Err(err).Msg("clear session after 401")
	}
	c.log.Info().Str("method", req.Method).Str("url", req.URL).Str("login_path", c.loginPath).Msg("session rejected by backend")
	c.notifier.SessionExpired(req.Context(), c.loginPath)
}

// logTransportError records failures that produced no HTTP response.
// Response-carrying errors were already handled by checkResponse.
func (c *Client) logTransportError(req *resty.Request, err error) {
	var respErr *resty.ResponseError
	if errors.As(err, &respErr) {
		return
	}
	transportErrorsTotal.WithLabelValues(req.Method).Inc()
	c.log.Debug().Err(err).Str("method", req.Method).Str("url", req.URL).Msg("request failed without response")
}
