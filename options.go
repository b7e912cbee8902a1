package classy

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the authorization transport wrapper is
// installed, so transport-related options (like debug logging) end up
// underneath the API-key wrapper. Options must be deterministic and
// side-effect free.
type Option func(*Client) error

// WithAPIURL sets the API base URL explicitly, overriding the
// CLASSY_API_URL environment variable.
func WithAPIURL(u string) Option {
	return func(c *Client) error {
		if u == "" {
			return fmt.Errorf("api url must not be empty")
		}
		c.baseURL = u
		return nil
	}
}

// WithAPIToken sets the API token explicitly, overriding the
// CLASSY_API_TOKEN environment variable.
func WithAPIToken(token string) Option {
	return func(c *Client) error {
		if token == "" {
			return fmt.Errorf("api token must not be empty")
		}
		c.apiToken = token
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request (including connection, TLS handshake, redirects, and reading the
// response). The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the http.Client used by the SDK. The client's
// transport will still be wrapped to attach the API token.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// The debug transport is installed beneath the API-key wrapper; logs are
// emitted before the request is forwarded to the next transport.
// Do not enable this option in production environments as it increases
// verbosity and may include headers and method/URL metadata in logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}
