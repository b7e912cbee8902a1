package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/searpent/classy-sdk-go/internal/types"
)

// ListExports retrieves exports of the given type ("regular" or "custom").
// Zero time bounds are omitted; the API then returns only exports younger
// than 90 days.
func ListExports(ctx context.Context, httpClient *http.Client, baseURL, source, exportType string, from, to time.Time) (json.RawMessage, error) {
	if exportType != types.ExportTypeRegular && exportType != types.ExportTypeCustom {
		return nil, fmt.Errorf("export type must be %q or %q, got %q", types.ExportTypeRegular, types.ExportTypeCustom, exportType)
	}
	q := url.Values{}
	q.Set("source", source)
	q.Set("type", exportType)
	if !from.IsZero() {
		q.Set("from", types.FormatTime(from))
	}
	if !to.IsZero() {
		q.Set("to", types.FormatTime(to))
	}
	data, err := do(ctx, httpClient, "list exports", http.MethodGet, endpoint(baseURL, exportsPath), q, nil)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

// GetExport retrieves one export's metadata.
func GetExport(ctx context.Context, httpClient *http.Client, baseURL, exportID string) (json.RawMessage, error) {
	if err := types.ValidateIDPresent(exportID, "exportId"); err != nil {
		return nil, err
	}
	data, err := do(ctx, httpClient, "get export", http.MethodGet, endpoint(baseURL, exportsPath, exportID), nil, nil)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

// GetExportCSV retrieves the export's CSV artifact as raw bytes.
func GetExportCSV(ctx context.Context, httpClient *http.Client, baseURL, exportID string) ([]byte, error) {
	if err := types.ValidateIDPresent(exportID, "exportId"); err != nil {
		return nil, err
	}
	return do(ctx, httpClient, "get export csv", http.MethodGet, endpoint(baseURL, exportsPath, exportID, "download"), nil, nil)
}

// GetExportDownloadURL resolves the CSV download URL from the export
// metadata payload.
func GetExportDownloadURL(ctx context.Context, httpClient *http.Client, baseURL, exportID string) (string, error) {
	data, err := GetExport(ctx, httpClient, baseURL, exportID)
	if err != nil {
		return "", err
	}
	var dl types.ExportDownload
	if err := json.Unmarshal(data, &dl); err != nil {
		return "", err
	}
	return dl.URL, nil
}
