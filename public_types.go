package classy

import "github.com/searpent/classy-sdk-go/internal/types"

// Public type aliases so SDK consumers can import only the classy package.
// Requests
type (
	CreateCaseRequest       = types.CreateCaseRequest
	UpdateCaseRequest       = types.UpdateCaseRequest
	UploadPhotoRequest      = types.UploadPhotoRequest
	UploadPDFRequest        = types.UploadPDFRequest
	CreateInspectionRequest = types.CreateInspectionRequest

	// Shared field shapes
	MetadataField = types.MetadataField
	RequiredField = types.RequiredField

	// Responses
	ExportDownload = types.ExportDownload
)

// Export types accepted by ListExports.
const (
	ExportTypeRegular = types.ExportTypeRegular
	ExportTypeCustom  = types.ExportTypeCustom
)

// Errors re-exported in errors.go
