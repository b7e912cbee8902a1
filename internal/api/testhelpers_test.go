package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// capture records the request the mock server received.
type capture struct {
	method string
	path   string
	query  url.Values
	header http.Header
	body   map[string]any
}

// captureServer returns a server that records each request into got and
// replies with the given status and payload.
func captureServer(got *capture, status int, payload string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.query = r.URL.Query()
		got.header = r.Header.Clone()
		got.body = nil
		if r.Body != nil {
			var m map[string]any
			if err := json.NewDecoder(r.Body).Decode(&m); err == nil {
				got.body = m
			}
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(payload))
	}))
}
