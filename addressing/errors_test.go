package addressing

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	plain := &Error{Op: "compute_agent_address", Kind: KindInvalidInput, Message: "bad identifier"}
	want := "addressing: compute_agent_address (invalid_input): bad identifier"
	if plain.Error() != want {
		t.Errorf("Error() = %q, want %q", plain.Error(), want)
	}

	cause := errors.New("capability down")
	wrapped := &Error{Op: "compute_agent_address", Kind: KindHashError, Message: "hash capability failed", Err: cause}
	want = "addressing: compute_agent_address (hash_error): hash capability failed: capability down"
	if wrapped.Error() != want {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), want)
	}
	if !errors.Is(wrapped, cause) {
		t.Errorf("wrapped cause not reachable through Unwrap")
	}
}

func TestErrorIsMatchesByKindAndOp(t *testing.T) {
	err := &Error{Op: "compute_contract_address", Kind: KindInvalidInput, Message: "bad"}

	tests := []struct {
		name   string
		target error
		want   bool
	}{
		{"same kind, any op", &Error{Kind: KindInvalidInput}, true},
		{"same kind and op", &Error{Kind: KindInvalidInput, Op: "compute_contract_address"}, true},
		{"same op, any kind", &Error{Op: "compute_contract_address"}, true},
		{"different kind", &Error{Kind: KindHashError}, false},
		{"different op", &Error{Kind: KindInvalidInput, Op: "compute_agent_address"}, false},
		{"empty target", &Error{}, false},
		{"unrelated error", errors.New("invalid_input"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(err, tt.target); got != tt.want {
				t.Errorf("errors.Is(err, %v) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestKindPredicatesTraverseWrapping(t *testing.T) {
	invalid := invalidInputf("parse_hex", "odd digits")
	hashErr := hashErrorf("compute_org_address", errors.New("down"), "hash capability failed")

	if !IsInvalidInput(invalid) || IsHashError(invalid) {
		t.Errorf("predicates misclassified %v", invalid)
	}
	if !IsHashError(hashErr) || IsInvalidInput(hashErr) {
		t.Errorf("predicates misclassified %v", hashErr)
	}

	deep := fmt.Errorf("loading contract: %w", invalid)
	if !IsInvalidInput(deep) {
		t.Errorf("IsInvalidInput did not traverse wrapping: %v", deep)
	}

	if IsInvalidInput(nil) || IsHashError(nil) {
		t.Errorf("predicates matched nil")
	}
	if IsInvalidInput(errors.New("plain")) {
		t.Errorf("predicate matched a non-addressing error")
	}
}

func TestErrorLogValue(t *testing.T) {
	err := hashErrorf("compute_agent_address", errors.New("down"), "hash capability failed")

	value := err.LogValue()
	if value.Kind() != slog.KindGroup {
		t.Fatalf("LogValue kind = %v, want group", value.Kind())
	}

	got := map[string]string{}
	for _, attr := range value.Group() {
		got[attr.Key] = attr.Value.String()
	}
	if got["kind"] != KindHashError {
		t.Errorf("kind attr = %q, want %q", got["kind"], KindHashError)
	}
	if got["op"] != "compute_agent_address" {
		t.Errorf("op attr = %q", got["op"])
	}
	if got["cause"] != "down" {
		t.Errorf("cause attr = %q, want %q", got["cause"], "down")
	}
}
