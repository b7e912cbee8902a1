// Package api holds the request functions behind the public client
// methods. Each remote resource (cases, exports, inspections) gets its own
// file; all of them build requests through the shared core below.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/searpent/classy-sdk-go/internal/errors"
)

// Resource path roots on the Classy API.
const (
	casesPath       = "cases"
	exportsPath     = "exports"
	inspectionsPath = "inspections"
)

// endpoint joins the base URL and path segments, tolerating stray slashes.
func endpoint(baseURL string, parts ...string) string {
	segs := make([]string, 0, len(parts)+1)
	segs = append(segs, strings.TrimRight(baseURL, "/"))
	for _, p := range parts {
		segs = append(segs, strings.Trim(p, "/"))
	}
	return strings.Join(segs, "/")
}

// do issues one API request and returns the raw response body.
//
// A non-nil body is serialized as JSON; query is appended to the URL when
// present. Non-2xx statuses are returned as *errors.StatusError carrying the
// response body. The authentication header is added by the client's
// transport, never here.
func do(ctx context.Context, httpClient *http.Client, op, method, rawURL string, query url.Values, body any) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		payload = bytes.NewReader(buf)
	}
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &errors.StatusError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(data)),
		}
	}
	return data, nil
}

// orNewCorrelationID returns id, or a fresh UUID when the caller left it
// empty, so every mutating request stays traceable server-side.
func orNewCorrelationID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
