package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport dumps every request and response at debug level.
//
// Enable it with WithDebugLogging(true), or set CAMPUS_DEBUG=true or
// DEBUG=true in the environment. Dumps include the Authorization header and
// full bodies, so keep it out of production.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// CloseIdleConnections forwards to the wrapped transport so Client.Close
// still releases connections with debug logging on.
func (dt *debugTransport) CloseIdleConnections() {
	type closeIdler interface{ CloseIdleConnections() }
	if ci, ok := dt.base.(closeIdler); ok {
		ci.CloseIdleConnections()
	}
}

// debugLoggingRequested reports whether CAMPUS_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("CAMPUS_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
