// File: doc.go
// Title: Core Validation Framework Package Documentation
// Description: Validator interfaces, structured results and the chain
//              orchestration used by the concrete validators in
//              utils/validationx.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework implementation
// - 2026-10-15 v0.2.0: Trimmed to the components used by the email check

/*
Package validation provides the validation framework infrastructure.

Core components:
  - Validator, ValidatorFunc and ContextValidatorFunc
  - ValidationResult and ValidationError for structured reporting
  - ValidatorChain for running steps in order
  - ConditionalValidator and When for optional steps
  - Required and Length as generic building blocks

# Chains

	chain := validation.NewValidatorChain("email").
		StopOnFirstError(true).
		Add(validation.Required("email")).
		Add(validation.When(checkDNS, dnsValidator, "dns"))

	result := chain.ValidateWithContext(ctx, "user@example.org")
	if !result.Valid {
		return result.ToError()
	}

A chain checks its context before each step. When the context is done the
chain stops and reports CodeCanceled.

# Results

ValidationResult.ToError converts a failed result into a structured
*mdwerror.Error whose code is the validation code of the first error.
*/
package validation
