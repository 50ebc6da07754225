package money

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Unwrap(t *testing.T) {
	err := errMismatch("add", USD, EUR)
	if !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("errors.Is(%v, ErrCurrencyMismatch) = false", err)
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("errors.As failed for %v", err)
	}
	if e.Op != "add" {
		t.Errorf("Op = %q, want %q", e.Op, "add")
	}
}

func TestError_Message(t *testing.T) {
	err := errNeedsRounding("divide", "3")
	msg := err.Error()
	for _, want := range []string{"divide", "2 and 5"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %q", msg, want)
		}
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("errors.As failed")
	}
	if e.Suggestion == "" || e.Example == "" {
		t.Errorf("error carries no remediation: %+v", e)
	}
}
