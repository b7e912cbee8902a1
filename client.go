// Package classy is a Go client for the Searpent Classy case-management
// API. A Client is bound to one organization (source) and translates each
// method call into a single authenticated HTTP request; pagination,
// deletion scheduling and export generation are owned by the remote
// service.
package classy

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/searpent/classy-sdk-go/internal/api"
	"github.com/searpent/classy-sdk-go/internal/types"
)

const defaultTimeout = 30 * time.Second

// Client issues authenticated requests against the Classy API.
// Configuration is resolved once in New and never mutated afterwards, so a
// Client is safe for concurrent use.
type Client struct {
	source   string
	baseURL  string
	apiToken string
	http     *http.Client
}

// New constructs a Client for the given source (organization name,
// e.g. "dev.cz"). The API URL and token come from options, falling back to
// the CLASSY_API_URL and CLASSY_API_TOKEN environment variables; explicit
// options win. Missing configuration fails here, never at first call.
func New(source string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(source) == "" {
		return nil, ErrMissingSource
	}

	c := &Client{
		source: source,
		http:   &http.Client{Timeout: defaultTimeout},
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

	if c.baseURL == "" || c.apiToken == "" {
		env, err := resolveEnv()
		if err != nil {
			return nil, err
		}
		if c.baseURL == "" {
			c.baseURL = env.APIURL
		}
		if c.apiToken == "" {
			c.apiToken = env.APIToken
		}
	}
	if c.baseURL == "" {
		return nil, ErrMissingAPIURL
	}
	if c.apiToken == "" {
		return nil, ErrMissingAPIToken
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")

	// Wrap the transport so every request carries the token and is counted.
	c.wrapTransport()

	return c, nil
}

// Source returns the organization name the client is bound to.
func (c *Client) Source() string { return c.source }

// BaseURL returns the resolved API base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// wrapTransport layers the metrics and API-key transports over whatever
// transport is configured (including the debug transport installed by
// options), so the token is attached outermost.
func (c *Client) wrapTransport() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &apiKeyTransport{
		base:     &metricsTransport{base: base},
		apiToken: c.apiToken,
	}
}

// apiKeyTransport adds the x-api-key header the Classy API authenticates
// with to every outbound request.
type apiKeyTransport struct {
	base     http.RoundTripper
	apiToken string
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone to avoid mutating the caller's request.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("x-api-key", t.apiToken)
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// Case operations - delegated to internal/api
// --------------------------------------------------------------------

// ListCases retrieves cases created within [from, to].
func (c *Client) ListCases(ctx context.Context, from, to time.Time) (json.RawMessage, error) {
	return api.ListCases(ctx, c.http, c.baseURL, c.source, from, to)
}

// GetCase retrieves one case by its Classy id.
func (c *Client) GetCase(ctx context.Context, caseID string) (json.RawMessage, error) {
	return api.GetCase(ctx, c.http, c.baseURL, caseID, false)
}

// GetCaseWithPhotos retrieves one case including its attached photos.
func (c *Client) GetCaseWithPhotos(ctx context.Context, caseID string) (json.RawMessage, error) {
	return api.GetCase(ctx, c.http, c.baseURL, caseID, true)
}

// CreateCase creates a new case; the API assigns and returns the case id.
func (c *Client) CreateCase(ctx context.Context, req CreateCaseRequest) (json.RawMessage, error) {
	return api.CreateCase(ctx, c.http, c.baseURL, c.source, req)
}

// UpdateCase renames the case as displayed in the Classy interface.
func (c *Client) UpdateCase(ctx context.Context, caseID string, req UpdateCaseRequest) (json.RawMessage, error) {
	return api.UpdateCase(ctx, c.http, c.baseURL, caseID, req)
}

// DeleteCase marks the case for deletion after the server-defined grace
// period. An empty correlationID is replaced by a generated UUID.
func (c *Client) DeleteCase(ctx context.Context, caseID, correlationID string) error {
	return api.DeleteCase(ctx, c.http, c.baseURL, caseID, correlationID)
}

// CancelDeleteCase removes the "to be deleted" mark from the case.
func (c *Client) CancelDeleteCase(ctx context.Context, caseID, correlationID string) error {
	return api.CancelDeleteCase(ctx, c.http, c.baseURL, caseID, correlationID)
}

// PostponeDeleteCase moves the case deletion timepoint to ttl. The actual
// deletion remains the API's business rule and may lag the requested time.
func (c *Client) PostponeDeleteCase(ctx context.Context, caseID string, ttl time.Time) (json.RawMessage, error) {
	return api.PostponeDeleteCase(ctx, c.http, c.baseURL, caseID, ttl)
}

// --------------------------------------------------------------------
// Upload operations - delegated to internal/api
// --------------------------------------------------------------------

// UploadPhoto attaches a base64-encoded photo to the case.
func (c *Client) UploadPhoto(ctx context.Context, caseID string, req UploadPhotoRequest) (json.RawMessage, error) {
	return api.UploadPhoto(ctx, c.http, c.baseURL, c.source, caseID, req)
}

// UploadPhotoFromFile reads the file at path, base64-encodes it and
// delegates to UploadPhoto. Any PhotoBase64 set on req is overwritten.
func (c *Client) UploadPhotoFromFile(ctx context.Context, caseID, path string, req UploadPhotoRequest) (json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read photo file: %w", err)
	}
	req.PhotoBase64 = base64.StdEncoding.EncodeToString(data)
	return c.UploadPhoto(ctx, caseID, req)
}

// UploadPDF attaches a base64-encoded PDF to the case. The filename must
// carry the .pdf extension.
func (c *Client) UploadPDF(ctx context.Context, caseID string, req UploadPDFRequest) (json.RawMessage, error) {
	return api.UploadPDF(ctx, c.http, c.baseURL, c.source, caseID, req)
}

// UploadPDFFromFile reads the PDF at path, base64-encodes it and delegates
// to UploadPDF. Both path and req.Filename must end with .pdf.
func (c *Client) UploadPDFFromFile(ctx context.Context, caseID, path string, req UploadPDFRequest) (json.RawMessage, error) {
	if err := types.ValidatePDFFilename(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pdf file: %w", err)
	}
	req.PDFBase64 = base64.StdEncoding.EncodeToString(data)
	return c.UploadPDF(ctx, caseID, req)
}

// --------------------------------------------------------------------
// Export operations - delegated to internal/api
// --------------------------------------------------------------------

// ListExports retrieves exports of the given type (ExportTypeRegular or
// ExportTypeCustom). Zero time bounds are omitted from the query; the API
// then limits the result to exports younger than 90 days.
func (c *Client) ListExports(ctx context.Context, exportType string, from, to time.Time) (json.RawMessage, error) {
	return api.ListExports(ctx, c.http, c.baseURL, c.source, exportType, from, to)
}

// GetExport retrieves one export's metadata.
func (c *Client) GetExport(ctx context.Context, exportID string) (json.RawMessage, error) {
	return api.GetExport(ctx, c.http, c.baseURL, exportID)
}

// GetExportCSV retrieves the export's CSV artifact.
func (c *Client) GetExportCSV(ctx context.Context, exportID string) ([]byte, error) {
	return api.GetExportCSV(ctx, c.http, c.baseURL, exportID)
}

// SaveExportCSV downloads the export CSV and writes it to path. An empty
// path defaults to searpent-classy-<source>-<exportID>.csv in the working
// directory.
func (c *Client) SaveExportCSV(ctx context.Context, exportID, path string) error {
	data, err := c.GetExportCSV(ctx, exportID)
	if err != nil {
		return err
	}
	if path == "" {
		path = fmt.Sprintf("searpent-classy-%s-%s.csv", c.source, exportID)
	}
	return os.WriteFile(path, data, 0o644)
}

// GetExportDownloadURL resolves the CSV download URL for the export.
func (c *Client) GetExportDownloadURL(ctx context.Context, exportID string) (string, error) {
	return api.GetExportDownloadURL(ctx, c.http, c.baseURL, exportID)
}

// --------------------------------------------------------------------
// Inspection operations - delegated to internal/api
// --------------------------------------------------------------------

// ListInspections retrieves inspections, optionally bounded by [from, to].
// Zero time bounds are omitted; the API then limits the result to
// inspections younger than 90 days.
func (c *Client) ListInspections(ctx context.Context, from, to time.Time) (json.RawMessage, error) {
	return api.ListInspections(ctx, c.http, c.baseURL, c.source, from, to)
}

// GetInspection retrieves one inspection by its Classy id.
func (c *Client) GetInspection(ctx context.Context, inspectionID string) (json.RawMessage, error) {
	return api.GetInspection(ctx, c.http, c.baseURL, inspectionID, false)
}

// GetInspectionWithPhotos retrieves one inspection including its photos.
func (c *Client) GetInspectionWithPhotos(ctx context.Context, inspectionID string) (json.RawMessage, error) {
	return api.GetInspection(ctx, c.http, c.baseURL, inspectionID, true)
}

// CreateInspection creates a new inspection. When req.Phone is set the API
// sends an SMS invitation; req.SendAt schedules it and requires Phone.
func (c *Client) CreateInspection(ctx context.Context, req CreateInspectionRequest) (json.RawMessage, error) {
	return api.CreateInspection(ctx, c.http, c.baseURL, c.source, req)
}

// DeleteInspection marks the inspection for deletion after the
// server-defined grace period.
func (c *Client) DeleteInspection(ctx context.Context, inspectionID, correlationID string) error {
	return api.DeleteInspection(ctx, c.http, c.baseURL, inspectionID, correlationID)
}

// CancelDeleteInspection removes the "to be deleted" mark from the
// inspection.
func (c *Client) CancelDeleteInspection(ctx context.Context, inspectionID, correlationID string) error {
	return api.CancelDeleteInspection(ctx, c.http, c.baseURL, inspectionID, correlationID)
}

// PostponeDeleteInspection moves the inspection deletion timepoint to ttl.
func (c *Client) PostponeDeleteInspection(ctx context.Context, inspectionID string, ttl time.Time) (json.RawMessage, error) {
	return api.PostponeDeleteInspection(ctx, c.http, c.baseURL, inspectionID, ttl)
}
