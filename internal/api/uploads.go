package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/searpent/classy-sdk-go/internal/types"
)

// uploadPayload is the wire shape shared by photo and PDF uploads; the API
// reuses the photo field names for PDFs.
type uploadPayload struct {
	Photo         string                `json:"photo"`
	PhotoID       string                `json:"photo_id"`
	Filename      string                `json:"filename"`
	Source        string                `json:"source"`
	CorrelationID string                `json:"correlation_id"`
	Metadata      []types.MetadataField `json:"metadata,omitempty"`
}

// UploadPhoto attaches a base64-encoded photo to the case.
func UploadPhoto(ctx context.Context, httpClient *http.Client, baseURL, source, caseID string, req types.UploadPhotoRequest) (json.RawMessage, error) {
	if err := types.ValidateIDPresent(caseID, "caseId"); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(req.PhotoBase64, "photo"); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(req.Filename, "filename"); err != nil {
		return nil, err
	}
	body := uploadPayload{
		Photo:         req.PhotoBase64,
		PhotoID:       req.PhotoID,
		Filename:      req.Filename,
		Source:        source,
		CorrelationID: orNewCorrelationID(req.CorrelationID),
		Metadata:      req.Metadata,
	}
	data, err := do(ctx, httpClient, "upload photo", http.MethodPatch, endpoint(baseURL, casesPath, caseID, "upload"), nil, body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

// UploadPDF attaches a base64-encoded PDF to the case. The filename must
// carry the .pdf extension.
func UploadPDF(ctx context.Context, httpClient *http.Client, baseURL, source, caseID string, req types.UploadPDFRequest) (json.RawMessage, error) {
	if err := types.ValidateIDPresent(caseID, "caseId"); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(req.PDFBase64, "pdf"); err != nil {
		return nil, err
	}
	if err := types.ValidatePDFFilename(req.Filename); err != nil {
		return nil, err
	}
	body := uploadPayload{
		Photo:         req.PDFBase64,
		PhotoID:       req.PDFID,
		Filename:      req.Filename,
		Source:        source,
		CorrelationID: orNewCorrelationID(req.CorrelationID),
		Metadata:      req.Metadata,
	}
	data, err := do(ctx, httpClient, "upload pdf", http.MethodPatch, endpoint(baseURL, casesPath, caseID, "pdf", "upload"), nil, body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}
