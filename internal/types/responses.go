package types

// ------------------------------
// Response Types
// ------------------------------

// Cases, inspections and exports are server-owned records; the SDK returns
// their payloads verbatim (json.RawMessage at the call sites) and only
// decodes the few fields it consumes itself.

// ExportDownload mirrors the subset of the export payload the SDK reads to
// resolve a CSV download URL.
type ExportDownload struct {
	URL string `json:"url"`
}

// Export type accepted by the exports list endpoint.
const (
	ExportTypeRegular = "regular"
	ExportTypeCustom  = "custom"
)
