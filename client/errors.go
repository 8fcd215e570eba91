package client

import (
	apierrors "github.com/Reksit/Hack4.0/client/internal/errors"
	"github.com/Reksit/Hack4.0/client/internal/job"
	"github.com/Reksit/Hack4.0/client/internal/types"
)

// APIError is returned for every non-2xx response.
type APIError = apierrors.APIError

// ErrInvalidRequest is wrapped by request validation failures; such calls
// never reach the network.
var ErrInvalidRequest = types.ErrInvalidRequest

// ErrNilJobFunc is returned by Pending.Await when Go was handed a nil function.
var ErrNilJobFunc = job.ErrNilJobFunc

// IsUnauthorized reports whether err carries a 401 response. By the time the
// caller sees it, the stored session has already been cleared.
func IsUnauthorized(err error) bool { return apierrors.IsUnauthorized(err) }

// StatusCode returns the HTTP status carried by err, or 0 if err was not
// produced by a backend response.
func StatusCode(err error) int { return apierrors.StatusCode(err) }
