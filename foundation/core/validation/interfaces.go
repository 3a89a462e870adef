// File: interfaces.go
// Title: Core Validation Interfaces and Types
// Description: Defines the validator interfaces, result types and error codes
//              shared by the concrete validators in utils/validationx.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation interfaces implementation
// - 2026-10-15 v0.2.0: Context aware validator functions, codes reduced to text checks

package validation

import (
	"context"
	"fmt"
	"strings"

	mdwerror "github.com/msto63/stringy/foundation/core/error"
)

// Standard validation error codes
const (
	CodeRequired = "VALIDATION_REQUIRED" // Value is required but missing
	CodeFormat   = "VALIDATION_FORMAT"   // Invalid format
	CodeLength   = "VALIDATION_LENGTH"   // Length outside bounds
	CodeType     = "VALIDATION_TYPE"     // Value has the wrong type
	CodeCanceled = "VALIDATION_CANCELED" // Context ended before validation finished

	CodeEmail       = "VALIDATION_EMAIL"        // Email address syntax
	CodeEmailDomain = "VALIDATION_EMAIL_DOMAIN" // Example, typo or disposable domain
	CodeEmailDNS    = "VALIDATION_EMAIL_DNS"    // Domain does not resolve to a mail host
)

// Validator defines the interface for all validation functions
type Validator interface {
	// Validate performs validation on a value and returns structured result
	Validate(value interface{}) ValidationResult

	// ValidateWithContext performs validation with context for cancellation
	ValidateWithContext(ctx context.Context, value interface{}) ValidationResult
}

// ValidatorFunc is a function type that implements the Validator interface
type ValidatorFunc func(value interface{}) ValidationResult

// Validate implements the Validator interface for ValidatorFunc
func (f ValidatorFunc) Validate(value interface{}) ValidationResult {
	return f(value)
}

// ValidateWithContext ignores ctx; use ContextValidatorFunc for blocking checks
func (f ValidatorFunc) ValidateWithContext(_ context.Context, value interface{}) ValidationResult {
	return f(value)
}

// ContextValidatorFunc implements Validator for checks that block on I/O
type ContextValidatorFunc func(ctx context.Context, value interface{}) ValidationResult

// Validate runs the check with a background context
func (f ContextValidatorFunc) Validate(value interface{}) ValidationResult {
	return f(context.Background(), value)
}

// ValidateWithContext implements the Validator interface
func (f ContextValidatorFunc) ValidateWithContext(ctx context.Context, value interface{}) ValidationResult {
	return f(ctx, value)
}

// ValidationResult represents the result of a validation operation
type ValidationResult struct {
	Valid   bool                   `json:"valid"`             // Whether validation passed
	Errors  []ValidationError      `json:"errors,omitempty"`  // Detailed error information
	Context map[string]interface{} `json:"context,omitempty"` // Additional context data
}

// ValidationError represents a single validation error
type ValidationError struct {
	Code     string                 `json:"code"`               // Standardized error code
	Field    string                 `json:"field,omitempty"`    // Field name being validated
	Message  string                 `json:"message"`            // Human-readable error message
	Value    interface{}            `json:"value,omitempty"`    // Actual value that failed validation
	Context  map[string]interface{} `json:"context,omitempty"`  // Additional error context
	Expected interface{}            `json:"expected,omitempty"` // Expected value or format
}

// NewValidationResult creates a successful validation result
func NewValidationResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// NewValidationError creates a failed validation result with a single error
func NewValidationError(code, message string) ValidationResult {
	return ValidationResult{
		Valid: false,
		Errors: []ValidationError{
			{
				Code:    code,
				Message: message,
			},
		},
	}
}

// NewValidationErrorWithField creates a validation error for a specific field
func NewValidationErrorWithField(code, field, message string, value interface{}) ValidationResult {
	return ValidationResult{
		Valid: false,
		Errors: []ValidationError{
			{
				Code:    code,
				Field:   field,
				Message: message,
				Value:   value,
			},
		},
	}
}

// AddError adds an error to an existing validation result
func (r *ValidationResult) AddError(code, message string) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{
		Code:    code,
		Message: message,
	})
	return r
}

// WithContext adds context information to the validation result
func (r *ValidationResult) WithContext(key string, value interface{}) *ValidationResult {
	if r.Context == nil {
		r.Context = make(map[string]interface{})
	}
	r.Context[key] = value
	return r
}

// FirstError returns the first validation error, or nil if validation passed
func (r ValidationResult) FirstError() *ValidationError {
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// ErrorMessages returns all error messages as a slice of strings
func (r ValidationResult) ErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = err.Message
	}
	return messages
}

// ErrorCodes returns all error codes as a slice of strings
func (r ValidationResult) ErrorCodes() []string {
	codes := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		codes[i] = err.Code
	}
	return codes
}

// HasError checks if the result contains a specific error code
func (r ValidationResult) HasError(code string) bool {
	for _, err := range r.Errors {
		if err.Code == code {
			return true
		}
	}
	return false
}

// ToError converts the validation result to a structured error.
// Returns nil if validation passed.
func (r ValidationResult) ToError() error {
	if r.Valid {
		return nil
	}

	if len(r.Errors) == 0 {
		return mdwerror.New("validation failed").
			WithCode(mdwerror.CodeValidationFailed)
	}

	firstError := r.Errors[0]
	err := mdwerror.New(firstError.Message).
		WithCode(mdwerror.Code(firstError.Code))

	if firstError.Field != "" {
		err = err.WithDetail("field", firstError.Field)
	}
	if firstError.Value != nil {
		err = err.WithDetail("value", firstError.Value)
	}
	if firstError.Expected != nil {
		err = err.WithDetail("expected", firstError.Expected)
	}
	for key, value := range firstError.Context {
		err = err.WithDetail(key, value)
	}

	if len(r.Errors) > 1 {
		err = err.WithDetail("totalErrors", len(r.Errors))
		err = err.WithDetail("allMessages", r.ErrorMessages())
	}

	return err
}

// String returns a human-readable representation of the validation result
func (r ValidationResult) String() string {
	if r.Valid {
		return "ValidationResult{valid: true}"
	}

	parts := []string{"ValidationResult{valid: false"}
	if len(r.Errors) > 0 {
		parts = append(parts, fmt.Sprintf("errors: %d", len(r.Errors)))
		parts = append(parts, fmt.Sprintf("first: %s", r.Errors[0].Message))
		if r.Errors[0].Field != "" {
			parts = append(parts, fmt.Sprintf("field: %s", r.Errors[0].Field))
		}
	}

	return strings.Join(parts, ", ") + "}"
}

// Combine merges multiple validation results into a single result
func Combine(results ...ValidationResult) ValidationResult {
	combined := NewValidationResult()

	for _, result := range results {
		if !result.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, result.Errors...)
		}

		for key, value := range result.Context {
			combined.WithContext(key, value)
		}
	}

	return combined
}
