package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestStatusError_Error(t *testing.T) {
	t.Parallel()
	se := &StatusError{Op: "get case", StatusCode: 404, Body: `{"error":"missing"}`}
	want := `get case: status 404: {"error":"missing"}`
	if se.Error() != want {
		t.Fatalf("unexpected message: %q", se.Error())
	}
	se = &StatusError{Op: "delete case", StatusCode: 500}
	if se.Error() != "delete case: status 500" {
		t.Fatalf("unexpected message: %q", se.Error())
	}
}

func TestAsStatusError_Wrapped(t *testing.T) {
	t.Parallel()
	inner := &StatusError{Op: "get export", StatusCode: http.StatusNotFound}
	wrapped := fmt.Errorf("fetch report: %w", inner)

	se, ok := AsStatusError(wrapped)
	if !ok || se.StatusCode != http.StatusNotFound {
		t.Fatalf("StatusError not found in chain: %v %v", se, ok)
	}
	if !IsNotFound(wrapped) {
		t.Fatal("IsNotFound must see through wrapping")
	}
	if IsStatus(wrapped, http.StatusForbidden) {
		t.Fatal("IsStatus matched wrong code")
	}
	if _, ok := AsStatusError(fmt.Errorf("plain")); ok {
		t.Fatal("plain error must not match")
	}
}
