package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/searpent/classy-sdk-go/internal/types"
)

// ListCases retrieves cases created within [from, to] for the source.
func ListCases(ctx context.Context, httpClient *http.Client, baseURL, source string, from, to time.Time) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("from", types.FormatTime(from))
	q.Set("to", types.FormatTime(to))
	q.Set("source", source)
	data, err := do(ctx, httpClient, "list cases", http.MethodGet, endpoint(baseURL, casesPath), q, nil)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

// GetCase retrieves one case, optionally with its attached photos.
func GetCase(ctx context.Context, httpClient *http.Client, baseURL, caseID string, withPhotos bool) (json.RawMessage, error) {
	if err := types.ValidateIDPresent(caseID, "caseId"); err != nil {
		return nil, err
	}
	var q url.Values
	if withPhotos {
		q = url.Values{"withPhotos": []string{"true"}}
	}
	data, err := do(ctx, httpClient, "get case", http.MethodGet, endpoint(baseURL, casesPath, caseID), q, nil)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

type createCasePayload struct {
	Name     string                `json:"name"`
	Source   string                `json:"source"`
	Metadata []types.MetadataField `json:"metadata,omitempty"`
}

// CreateCase creates a new case under the caller-chosen name; the API
// responds with its own case id.
func CreateCase(ctx context.Context, httpClient *http.Client, baseURL, source string, req types.CreateCaseRequest) (json.RawMessage, error) {
	if err := types.ValidateIDPresent(req.Name, "name"); err != nil {
		return nil, err
	}
	body := createCasePayload{Name: req.Name, Source: source, Metadata: req.Metadata}
	data, err := do(ctx, httpClient, "create case", http.MethodPost, endpoint(baseURL, casesPath), nil, body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

type updateCasePayload struct {
	Name          string `json:"name"`
	CorrelationID string `json:"correlation_id"`
}

// UpdateCase renames the case as displayed in the Classy interface.
func UpdateCase(ctx context.Context, httpClient *http.Client, baseURL, caseID string, req types.UpdateCaseRequest) (json.RawMessage, error) {
	if err := types.ValidateIDPresent(caseID, "caseId"); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(req.Name, "name"); err != nil {
		return nil, err
	}
	body := updateCasePayload{Name: req.Name, CorrelationID: orNewCorrelationID(req.CorrelationID)}
	data, err := do(ctx, httpClient, "update case", http.MethodPatch, endpoint(baseURL, casesPath, caseID), nil, body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

type correlationPayload struct {
	CorrelationID string `json:"correlation_id"`
}

// DeleteCase marks the case for server-side deletion. The deletion
// schedule is the API's business rule, not modeled here.
func DeleteCase(ctx context.Context, httpClient *http.Client, baseURL, caseID, correlationID string) error {
	if err := types.ValidateIDPresent(caseID, "caseId"); err != nil {
		return err
	}
	body := correlationPayload{CorrelationID: orNewCorrelationID(correlationID)}
	_, err := do(ctx, httpClient, "delete case", http.MethodPost, endpoint(baseURL, casesPath, caseID, "delete"), nil, body)
	return err
}

// CancelDeleteCase removes the "to be deleted" mark from the case.
func CancelDeleteCase(ctx context.Context, httpClient *http.Client, baseURL, caseID, correlationID string) error {
	if err := types.ValidateIDPresent(caseID, "caseId"); err != nil {
		return err
	}
	body := correlationPayload{CorrelationID: orNewCorrelationID(correlationID)}
	_, err := do(ctx, httpClient, "cancel delete case", http.MethodPost, endpoint(baseURL, casesPath, caseID, "cancel-delete"), nil, body)
	return err
}

type ttlPayload struct {
	TTL string `json:"ttl"`
}

// PostponeDeleteCase moves the case deletion timepoint to ttl.
func PostponeDeleteCase(ctx context.Context, httpClient *http.Client, baseURL, caseID string, ttl time.Time) (json.RawMessage, error) {
	if err := types.ValidateIDPresent(caseID, "caseId"); err != nil {
		return nil, err
	}
	body := ttlPayload{TTL: types.FormatTime(ttl)}
	data, err := do(ctx, httpClient, "postpone delete case", http.MethodPatch, endpoint(baseURL, casesPath, caseID), nil, body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}
