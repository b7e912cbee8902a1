package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/searpent/classy-sdk-go/internal/types"
)

// ListInspections retrieves inspections for the source. Zero time bounds
// are omitted; the API then returns only inspections younger than 90 days.
func ListInspections(ctx context.Context, httpClient *http.Client, baseURL, source string, from, to time.Time) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("source", source)
	if !from.IsZero() {
		q.Set("from", types.FormatTime(from))
	}
	if !to.IsZero() {
		q.Set("to", types.FormatTime(to))
	}
	data, err := do(ctx, httpClient, "list inspections", http.MethodGet, endpoint(baseURL, inspectionsPath), q, nil)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

// GetInspection retrieves one inspection, optionally with its photos.
func GetInspection(ctx context.Context, httpClient *http.Client, baseURL, inspectionID string, withPhotos bool) (json.RawMessage, error) {
	if err := types.ValidateIDPresent(inspectionID, "inspectionId"); err != nil {
		return nil, err
	}
	var q url.Values
	if withPhotos {
		q = url.Values{"withPhotos": []string{"true"}}
	}
	data, err := do(ctx, httpClient, "get inspection", http.MethodGet, endpoint(baseURL, inspectionsPath, inspectionID), q, nil)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

type createInspectionPayload struct {
	Name              string                `json:"name"`
	Source            string                `json:"source"`
	RequiredFields    []types.RequiredField `json:"requiredFields"`
	Phone             string                `json:"phone,omitempty"`
	InvitationMessage string                `json:"invitationMessage,omitempty"`
	SendAt            string                `json:"sendAt,omitempty"`
	Metadata          []types.MetadataField `json:"metadata,omitempty"`
}

// CreateInspection creates a new inspection. When a phone number is set the
// API sends an SMS invitation, optionally scheduled via SendAt.
func CreateInspection(ctx context.Context, httpClient *http.Client, baseURL, source string, req types.CreateInspectionRequest) (json.RawMessage, error) {
	if err := types.ValidateInspectionRequest(req); err != nil {
		return nil, err
	}
	body := createInspectionPayload{
		Name:              req.Name,
		Source:            source,
		RequiredFields:    req.RequiredFields,
		Phone:             req.Phone,
		InvitationMessage: req.InvitationMessage,
		Metadata:          req.Metadata,
	}
	if !req.SendAt.IsZero() {
		body.SendAt = types.FormatTime(req.SendAt)
	}
	data, err := do(ctx, httpClient, "create inspection", http.MethodPost, endpoint(baseURL, inspectionsPath), nil, body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

// DeleteInspection marks the inspection for server-side deletion.
func DeleteInspection(ctx context.Context, httpClient *http.Client, baseURL, inspectionID, correlationID string) error {
	if err := types.ValidateIDPresent(inspectionID, "inspectionId"); err != nil {
		return err
	}
	body := correlationPayload{CorrelationID: orNewCorrelationID(correlationID)}
	_, err := do(ctx, httpClient, "delete inspection", http.MethodPost, endpoint(baseURL, inspectionsPath, inspectionID, "delete"), nil, body)
	return err
}

// CancelDeleteInspection removes the "to be deleted" mark from the inspection.
func CancelDeleteInspection(ctx context.Context, httpClient *http.Client, baseURL, inspectionID, correlationID string) error {
	if err := types.ValidateIDPresent(inspectionID, "inspectionId"); err != nil {
		return err
	}
	body := correlationPayload{CorrelationID: orNewCorrelationID(correlationID)}
	_, err := do(ctx, httpClient, "cancel delete inspection", http.MethodPost, endpoint(baseURL, inspectionsPath, inspectionID, "cancel-delete"), nil, body)
	return err
}

// PostponeDeleteInspection moves the inspection deletion timepoint to ttl.
func PostponeDeleteInspection(ctx context.Context, httpClient *http.Client, baseURL, inspectionID string, ttl time.Time) (json.RawMessage, error) {
	if err := types.ValidateIDPresent(inspectionID, "inspectionId"); err != nil {
		return nil, err
	}
	body := ttlPayload{TTL: types.FormatTime(ttl)}
	data, err := do(ctx, httpClient, "postpone delete inspection", http.MethodPatch, endpoint(baseURL, inspectionsPath, inspectionID), nil, body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}
