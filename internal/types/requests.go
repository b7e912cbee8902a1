package types

import "time"

// ------------------------------
// Request Types
// ------------------------------

// MetadataField is one key/value pair of user-supplied metadata attached
// to a case, inspection or upload.
type MetadataField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// RequiredField is one insurer-specific field an inspection must collect.
type RequiredField struct {
	FieldID      string `json:"fieldId"`
	RequiredText string `json:"requiredText"`
}

// CreateCaseRequest holds parameters for a new case. The organization
// source is supplied by the client configuration, not the caller.
type CreateCaseRequest struct {
	Name     string
	Metadata []MetadataField
}

// UpdateCaseRequest holds parameters for renaming a case. An empty
// CorrelationID is replaced by a generated UUID before the request is sent.
type UpdateCaseRequest struct {
	Name          string
	CorrelationID string
}

// UploadPhotoRequest holds parameters for a base64 photo upload.
type UploadPhotoRequest struct {
	PhotoBase64   string
	Filename      string
	PhotoID       string
	CorrelationID string
	Metadata      []MetadataField
}

// UploadPDFRequest holds parameters for a base64 PDF upload. Filename must
// carry the .pdf extension.
type UploadPDFRequest struct {
	PDFBase64     string
	Filename      string
	PDFID         string
	CorrelationID string
	Metadata      []MetadataField
}

// CreateInspectionRequest holds parameters for a new inspection.
//
// Phone, InvitationMessage and SendAt control the SMS invitation: SendAt
// requires Phone, and InvitationMessage must contain the %s placeholder the
// API replaces with the inspection URL. A zero SendAt means "send now".
type CreateInspectionRequest struct {
	Name              string
	RequiredFields    []RequiredField
	Phone             string
	InvitationMessage string
	SendAt            time.Time
	Metadata          []MetadataField
}
