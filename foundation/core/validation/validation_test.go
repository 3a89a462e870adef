// File: validation_test.go
// Title: Core Validation Framework Tests
// Description: Tests for results, chains, conditional validators and the
//              generic Required and Length validators.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15

package validation

import (
	"context"
	"strings"
	"testing"

	mdwerror "github.com/msto63/stringy/foundation/core/error"
)

type named string

func (n named) String() string { return string(n) }

func failing(code string) Validator {
	return ValidatorFunc(func(value interface{}) ValidationResult {
		return NewValidationError(code, code+" failed")
	})
}

func passing() Validator {
	return ValidatorFunc(func(value interface{}) ValidationResult {
		return NewValidationResult()
	})
}

func TestValidationResult(t *testing.T) {
	t.Run("NewValidationResult creates valid result", func(t *testing.T) {
		result := NewValidationResult()
		if !result.Valid || len(result.Errors) != 0 {
			t.Errorf("NewValidationResult() = %v; want valid without errors", result)
		}
		if result.ToError() != nil {
			t.Error("ToError() on a valid result should be nil")
		}
	})

	t.Run("AddError invalidates result", func(t *testing.T) {
		result := NewValidationResult()
		result.AddError(CodeRequired, "first error")
		result.AddError(CodeFormat, "second error")

		if result.Valid {
			t.Error("Expected invalid result after adding errors")
		}
		if first := result.FirstError(); first == nil || first.Message != "first error" {
			t.Errorf("FirstError() = %v; want first error", first)
		}
		if !result.HasError(CodeFormat) || result.HasError(CodeEmail) {
			t.Errorf("HasError() mismatch for codes %v", result.ErrorCodes())
		}
	})

	t.Run("ToError converts to structured error", func(t *testing.T) {
		result := NewValidationErrorWithField(CodeEmail, "email", "invalid email", "invalid@")
		err := result.ToError()

		if err == nil {
			t.Fatal("Expected error")
		}
		if !strings.Contains(err.Error(), "invalid email") {
			t.Errorf("Error should contain message: %s", err.Error())
		}
		if !mdwerror.HasCode(err, mdwerror.Code(CodeEmail)) {
			t.Errorf("ToError() code = %v; want %s", mdwerror.GetCode(err), CodeEmail)
		}
	})

	t.Run("Combine merges errors", func(t *testing.T) {
		combined := Combine(NewValidationResult(), NewValidationError(CodeLength, "a"), NewValidationError(CodeType, "b"))
		if combined.Valid || len(combined.Errors) != 2 {
			t.Errorf("Combine() = %v; want two errors", combined)
		}
	})
}

func TestValidatorChain(t *testing.T) {
	t.Run("collects all errors", func(t *testing.T) {
		chain := NewValidatorChain("test").
			Add(failing(CodeFormat)).
			Add(passing()).
			Add(failing(CodeLength))

		result := chain.Validate("x")
		if result.Valid || len(result.Errors) != 2 {
			t.Fatalf("Validate() = %v; want two errors", result)
		}
		if result.Context["validatorChain"] != "test" {
			t.Errorf("Validate() context = %v; want chain name", result.Context)
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		chain := NewValidatorChain().
			StopOnFirstError(true).
			Add(failing(CodeFormat)).
			Add(failing(CodeLength))

		result := chain.Validate("x")
		if len(result.Errors) != 1 || result.Errors[0].Code != CodeFormat {
			t.Errorf("Validate() = %v; want only the first error", result)
		}
		if result.Context["executedValidators"] != 1 {
			t.Errorf("executedValidators = %v; want 1", result.Context["executedValidators"])
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result := NewValidatorChain().Add(passing()).ValidateWithContext(ctx, "x")
		if !result.HasError(CodeCanceled) {
			t.Errorf("ValidateWithContext() = %v; want %s", result, CodeCanceled)
		}
	})

	t.Run("context reaches validators", func(t *testing.T) {
		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "seen")
		var got interface{}
		chain := NewValidatorChain().Add(ContextValidatorFunc(func(ctx context.Context, value interface{}) ValidationResult {
			got = ctx.Value(key{})
			return NewValidationResult()
		}))
		chain.ValidateWithContext(ctx, "x")
		if got != "seen" {
			t.Errorf("validator saw context value %v; want seen", got)
		}
	})

	if s := NewValidatorChain().AddFunc(func(interface{}) ValidationResult { return NewValidationResult() }).String(); !strings.Contains(s, "validators: 1") {
		t.Errorf("String() = %q", s)
	}
}

func TestConditionalValidator(t *testing.T) {
	skipped := When(false, failing(CodeEmailDNS), "dns")
	if result := skipped.Validate("x"); !result.Valid {
		t.Errorf("disabled validator should pass, got %v", result)
	}

	active := When(true, failing(CodeEmailDNS), "dns")
	result := active.Validate("x")
	if result.Valid || result.Context["conditionalValidator"] != "dns" {
		t.Errorf("enabled validator = %v; want failure tagged with its name", result)
	}

	byValue := NewConditionalValidator(func(v interface{}) bool { return v == "check" }, failing(CodeFormat))
	if !byValue.Validate("skip").Valid || byValue.Validate("check").Valid {
		t.Error("condition on the value is not honoured")
	}
}

func TestRequiredAndLength(t *testing.T) {
	tests := []struct {
		name     string
		v        Validator
		value    interface{}
		expected string
	}{
		{"required nil", Required("f"), nil, CodeRequired},
		{"required empty", Required("f"), "", CodeRequired},
		{"required empty slice", Required("f"), []string{}, CodeRequired},
		{"required stringer", Required("f"), named("x"), ""},
		{"length ok", Length("f", 1, 3), "fòô", ""},
		{"length short", Length("f", 2, 3), "f", CodeLength},
		{"length long", Length("f", 0, 2), "fòô", CodeLength},
		{"length unbounded", Length("f", 0, -1), strings.Repeat("x", 100), ""},
		{"length bad type", Length("f", 0, 1), 42, CodeType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Validate(tt.value)
			if tt.expected == "" {
				if !result.Valid {
					t.Errorf("Validate(%v) = %v; want valid", tt.value, result)
				}
				return
			}
			if !result.HasError(tt.expected) {
				t.Errorf("Validate(%v) = %v; want %s", tt.value, result, tt.expected)
			}
		})
	}
}
