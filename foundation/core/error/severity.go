// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable prioritization when
//              errors are logged or reported by the CLI.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-15 v0.2.0: Severity mapping for string value codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller mistake such as a bad argument
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects a single operation
	SeverityMedium

	// SeverityHigh indicates a failing collaborator or a contract violation
	SeverityHigh

	// SeverityCritical indicates a broken installation (missing tables, bad config)
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should be surfaced loudly
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInvalidConfig, CodeConfigError:
		return SeverityCritical

	case CodeImmutable, CodeBackendError, CodeCryptoError, CodeInternal:
		return SeverityHigh

	case CodeEncodingError, CodeNetworkError, CodeTimeout, CodeTypeMismatch:
		return SeverityMedium

	case CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange, CodeValidationFailed:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
