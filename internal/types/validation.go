package types

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ------------------------------
// Client-side validation
// ------------------------------

// Validation here is limited to what the API cannot diagnose for the
// caller: absent identifiers, upload filename extensions and the SMS
// invitation contract. Everything else is the server's authority.

// ValidateIDPresent rejects empty identifiers before a request is built.
func ValidateIDPresent(id, field string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	return nil
}

// ValidatePDFFilename requires the .pdf extension on name.
func ValidatePDFFilename(name string) error {
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return fmt.Errorf("filename %q must end with .pdf extension", name)
	}
	return nil
}

// ValidateInspectionRequest enforces the SMS invitation contract before
// CreateInspection issues a request.
func ValidateInspectionRequest(req CreateInspectionRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("inspection name must not be empty")
	}
	if len(req.RequiredFields) == 0 {
		return fmt.Errorf("at least one required field must be supplied")
	}
	for _, f := range req.RequiredFields {
		if f.FieldID == "" || f.RequiredText == "" {
			return fmt.Errorf("required fields must carry fieldId and requiredText")
		}
	}
	if !req.SendAt.IsZero() && req.Phone == "" {
		return fmt.Errorf("sendAt requires a phone number")
	}
	if req.InvitationMessage != "" && !strings.Contains(req.InvitationMessage, "%s") {
		return fmt.Errorf("invitation message must contain the %%s placeholder")
	}
	return nil
}

// FormatTime renders t in the API's ISO-8601 millisecond form,
// e.g. 2021-09-01T13:00:00.000Z.
func FormatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
