package classy

import (
	"errors"

	interrors "github.com/searpent/classy-sdk-go/internal/errors"
)

// Configuration errors returned by New.
var (
	ErrMissingSource   = errors.New("classy: source (organization name) is required")
	ErrMissingAPIURL   = errors.New("classy: api url not configured (WithAPIURL or CLASSY_API_URL)")
	ErrMissingAPIToken = errors.New("classy: api token not configured (WithAPIToken or CLASSY_API_TOKEN)")
)

// StatusError is re-exported so callers can inspect failed API responses
// (status code and body) without importing internal packages.
type StatusError = interrors.StatusError

// AsStatusError extracts a *StatusError from err's chain, if any.
func AsStatusError(err error) (*StatusError, bool) { return interrors.AsStatusError(err) }

// IsStatus reports whether err carries the given HTTP status code.
func IsStatus(err error, code int) bool { return interrors.IsStatus(err, code) }

// IsNotFound reports whether err is a 404 response from the API.
func IsNotFound(err error) bool { return interrors.IsNotFound(err) }
