// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for error code validation and categorization.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive code tests
// - 2026-10-15 v0.2.0: Updated for string value codes

package error

import "testing"

func TestCodeIsValid(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want bool
	}{
		{"known code", CodeInvalidInput, true},
		{"immutable", CodeImmutable, true},
		{"unknown code", Code("INVALID_CODE"), false},
		{"empty code", Code(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.want {
				t.Errorf("Code.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeInvalidInput, "validation"},
		{CodeValueOutOfRange, "validation"},
		{CodeTypeMismatch, "validation"},
		{CodeImmutable, "value"},
		{CodeBackendError, "backend"},
		{CodeCryptoError, "backend"},
		{CodeInvalidConfig, "configuration"},
		{CodeUnknown, "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Code.Category() = %v, want %v", got, tt.want)
			}
			if tt.code.IsBackend() != (tt.want == "backend") {
				t.Errorf("Code.IsBackend() mismatch for %v", tt.code)
			}
		})
	}
}
