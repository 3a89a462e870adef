// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes reported by the string value, the collection
//              and the backend collaborators.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-15 v0.2.0: Replaced platform codes with string value codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Argument validation
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeTypeMismatch     Code = "TYPE_MISMATCH"
	CodeValidationFailed Code = "VALIDATION_FAILED"

	// Value semantics
	CodeImmutable Code = "IMMUTABLE_VALUE"

	// Collaborators
	CodeBackendError  Code = "BACKEND_ERROR"
	CodeEncodingError Code = "ENCODING_ERROR"
	CodeCryptoError   Code = "CRYPTO_ERROR"
	CodeNetworkError  Code = "NETWORK_ERROR"
	CodeTimeout       Code = "TIMEOUT"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal,
		CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange, CodeTypeMismatch, CodeValidationFailed,
		CodeImmutable,
		CodeBackendError, CodeEncodingError, CodeCryptoError, CodeNetworkError, CodeTimeout,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange, CodeTypeMismatch, CodeValidationFailed:
		return "validation"
	case CodeImmutable:
		return "value"
	case CodeBackendError, CodeEncodingError, CodeCryptoError, CodeNetworkError, CodeTimeout:
		return "backend"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// IsBackend reports whether the code belongs to a collaborator failure.
// Encoding, crypto and network codes refine CodeBackendError.
func (c Code) IsBackend() bool {
	return c.Category() == "backend"
}
