// Package errors provides the error types surfaced by the client SDK.
// The API is the authority on failures: every non-success response is
// reported to the caller with its status and body, never retried.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError reports a non-success HTTP response from the Classy API.
type StatusError struct {
	Op         string // failing operation, e.g. "create case"
	StatusCode int    // HTTP status returned by the API
	Body       string // response body, useful for debugging
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
}

// AsStatusError extracts a *StatusError from err's chain, if any.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsStatus reports whether err carries the given HTTP status code.
func IsStatus(err error, code int) bool {
	se, ok := AsStatusError(err)
	return ok && se.StatusCode == code
}

// IsNotFound reports whether err is a 404 response from the API.
func IsNotFound(err error) bool { return IsStatus(err, http.StatusNotFound) }
