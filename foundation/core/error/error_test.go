// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity, code based
//              matching and JSON output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-15 v0.2.0: Tests for Is, Sentinel and HasCode through wrapped chains

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap structured error",
			err:     New("transcoding failed").WithCode(CodeEncodingError),
			message: "Encode",
			wantMsg: "Encode: transcoding failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			if mdwErr, ok := tt.err.(*Error); ok {
				if wrapped.Code() != mdwErr.Code() {
					t.Errorf("Code() = %v, want %v", wrapped.Code(), mdwErr.Code())
				}
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	original := errors.New("root cause")
	middle := Wrap(original, "middle layer")
	top := Wrap(middle, "top layer")

	expected := "top layer: middle layer: root cause"
	if top.Error() != expected {
		t.Errorf("Error() = %q, want %q", top.Error(), expected)
	}

	if !errors.Is(top, original) {
		t.Error("errors.Is(top, original) = false; want true")
	}

	if top.RootCause() != original {
		t.Errorf("RootCause() = %v, want %v", top.RootCause(), original)
	}
}

func TestWrapChainTruncation(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("layer %d", i))
	}

	mdwErr := err.(*Error)
	if depth := getErrorChainDepth(mdwErr); depth > MaxErrorChainDepth {
		t.Errorf("chain depth = %d; want <= %d", depth, MaxErrorChainDepth)
	}
	if !strings.Contains(mdwErr.Error(), "chain truncated") && mdwErr.RootCause() == nil {
		t.Error("expected truncated chain marker")
	}
}

func TestIsMatchesCode(t *testing.T) {
	sentinel := Sentinel(CodeInvalidInput, "invalid input")

	err := New("pad type must be left, right or both").WithCode(CodeInvalidInput)
	if !errors.Is(err, sentinel) {
		t.Error("errors.Is(err, sentinel) = false; want true")
	}

	wrapped := fmt.Errorf("calling Pad: %w", err)
	if !errors.Is(wrapped, sentinel) {
		t.Error("errors.Is through fmt wrap = false; want true")
	}

	other := New("out of range").WithCode(CodeValueOutOfRange)
	if errors.Is(other, sentinel) {
		t.Error("errors.Is(other, sentinel) = true; want false")
	}

	unknownA := New("a")
	unknownB := New("b")
	if errors.Is(unknownA, unknownB) {
		t.Error("errors with CodeUnknown must not match each other")
	}
}

func TestSentinelHasNoStack(t *testing.T) {
	s := Sentinel(CodeImmutable, "immutable")
	if len(s.StackTrace()) != 0 {
		t.Errorf("Sentinel stack = %d frames; want 0", len(s.StackTrace()))
	}
	if s.Severity() != SeverityHigh {
		t.Errorf("Sentinel severity = %v; want %v", s.Severity(), SeverityHigh)
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	err := New("x").WithCode(CodeBackendError)
	if err.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v; want %v", err.Severity(), SeverityHigh)
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit Severity() = %v; want %v", explicit.Severity(), SeverityCritical)
	}
}

func TestDetails(t *testing.T) {
	err := New("bad").
		WithDetail("value", 42).
		WithDetails(map[string]interface{}{"kind": "int", "operation": "Add"})

	details := err.Details()
	if len(details) != 3 {
		t.Fatalf("len(Details()) = %d; want 3", len(details))
	}

	details["value"] = 0
	if v, _ := err.Detail("value"); v != 42 {
		t.Errorf("Details() must return a copy, got %v", v)
	}
}

func TestHasCode(t *testing.T) {
	inner := New("mac mismatch").WithCode(CodeCryptoError)
	outer := Wrap(inner, "Decrypt").WithCode(CodeBackendError)

	if !HasCode(outer, CodeBackendError) {
		t.Error("HasCode(outer, CodeBackendError) = false")
	}
	if !HasCode(outer, CodeCryptoError) {
		t.Error("HasCode(outer, CodeCryptoError) = false")
	}
	if HasCode(errors.New("plain"), CodeCryptoError) {
		t.Error("HasCode(plain) = true")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode(plain) != CodeUnknown")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("boom"), "Hash").
		WithCode(CodeBackendError).
		WithOperation("Hash").
		WithDetail("algorithm", "whirlpool")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jerr)
	}

	if decoded["code"] != string(CodeBackendError) {
		t.Errorf("code = %v; want %v", decoded["code"], CodeBackendError)
	}
	if decoded["operation"] != "Hash" {
		t.Errorf("operation = %v; want Hash", decoded["operation"])
	}
	if decoded["cause"] != "boom" {
		t.Errorf("cause = %v; want boom", decoded["cause"])
	}
}

func TestString(t *testing.T) {
	err := New("bad").WithCode(CodeInvalidInput).WithOperation("Chunk").WithDetail("b", 2).WithDetail("a", 1)
	s := err.String()

	for _, want := range []string{"Error: bad", "Code: INVALID_INPUT", "Operation: Chunk", "Details: {a=1, b=2}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}
}
