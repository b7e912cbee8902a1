package types

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	t.Parallel()
	got := FormatTime(time.Date(2021, 9, 1, 13, 0, 0, 0, time.UTC))
	if got != "2021-09-01T13:00:00.000Z" {
		t.Fatalf("unexpected format: %q", got)
	}
	// Non-UTC input is normalized to UTC.
	loc := time.FixedZone("CET", 3600)
	got = FormatTime(time.Date(2021, 9, 1, 14, 30, 0, 500e6, loc))
	if got != "2021-09-01T13:30:00.500Z" {
		t.Fatalf("unexpected format: %q", got)
	}
}

func TestValidateIDPresent(t *testing.T) {
	t.Parallel()
	if err := ValidateIDPresent("c1", "caseId"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateIDPresent("  ", "caseId"); err == nil {
		t.Fatal("expected error for blank id")
	}
}

func TestValidatePDFFilename(t *testing.T) {
	t.Parallel()
	if err := ValidatePDFFilename("report.pdf"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidatePDFFilename("report.PDF"); err != nil {
		t.Fatalf("extension check must be case-insensitive: %v", err)
	}
	if err := ValidatePDFFilename("report.txt"); err == nil {
		t.Fatal("expected error for non-pdf filename")
	}
	if err := ValidatePDFFilename("report"); err == nil {
		t.Fatal("expected error for missing extension")
	}
}

func TestValidateInspectionRequest(t *testing.T) {
	t.Parallel()
	valid := CreateInspectionRequest{
		Name:           "n",
		RequiredFields: []RequiredField{{FieldID: "f", RequiredText: "t"}},
	}
	if err := ValidateInspectionRequest(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := valid
	bad.Name = ""
	if err := ValidateInspectionRequest(bad); err == nil {
		t.Fatal("expected error for empty name")
	}

	bad = valid
	bad.RequiredFields = nil
	if err := ValidateInspectionRequest(bad); err == nil {
		t.Fatal("expected error for missing required fields")
	}

	bad = valid
	bad.RequiredFields = []RequiredField{{FieldID: "f"}}
	if err := ValidateInspectionRequest(bad); err == nil {
		t.Fatal("expected error for incomplete required field")
	}

	bad = valid
	bad.SendAt = time.Now().Add(2 * time.Hour)
	if err := ValidateInspectionRequest(bad); err == nil {
		t.Fatal("expected error for sendAt without phone")
	}
	bad.Phone = "+420123456789"
	if err := ValidateInspectionRequest(bad); err != nil {
		t.Fatalf("sendAt with phone must pass: %v", err)
	}

	bad = valid
	bad.InvitationMessage = "no placeholder"
	if err := ValidateInspectionRequest(bad); err == nil {
		t.Fatalf("expected error for message without %%s")
	}
}
