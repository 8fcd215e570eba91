// Package errors describes failed backend calls for the client SDK.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Category groups HTTP failures the way callers usually branch on them.
type Category int

const (
	// Unauthorized is a 401: the session token is missing, expired or invalid.
	Unauthorized Category = iota
	// ClientError is any other 4xx.
	ClientError
	// ServerError is a 5xx.
	ServerError
	// Unexpected covers non-2xx codes outside 4xx/5xx (e.g. an unfollowed 3xx).
	Unexpected
)

// String returns a human-readable representation of the category.
func (c Category) String() string {
	switch c {
	case Unauthorized:
		return "Unauthorized"
	case ClientError:
		return "ClientError"
	case ServerError:
		return "ServerError"
	case Unexpected:
		return "Unexpected"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// APIError is returned for every response outside the 2xx range.
type APIError struct {
	Category   Category
	Method     string
	URL        string
	StatusCode int
	Body       string // raw response body, for debugging
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s %s: HTTP %d", e.Category, e.Method, e.URL, e.StatusCode)
}

// IsUnauthorized reports whether err carries a 401 response.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.Category == Unauthorized
	}
	return false
}

// StatusCode returns the HTTP status carried by err, or 0 when err did not
// come from a response (transport failure, validation, cancellation).
func StatusCode(err error) int {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
