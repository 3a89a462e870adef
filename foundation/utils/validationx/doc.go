// Package validationx implements the email address check used by stringy.
//
// Package: validationx
// Title: Email Address Validation
// Description: Concrete validators built on the core validation framework:
//              address syntax, example and typo domains, disposable mail
//              providers and a DNS lookup of the mail host.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive validation utilities
// - 2025-01-26 v0.2.0: Refactored to use core validation framework with standardized error codes
// - 2026-10-15 v0.3.0: Reduced to the email check, added domain lists and DNS step
//
// # Email Chain
//
// EmailChain assembles a validation.ValidatorChain from EmailOptions. The
// syntax step always runs; the domain and DNS steps are ConditionalValidators
// switched by the options:
//
//	chain := validationx.EmailChain(validationx.EmailOptions{
//		ExampleDomainCheck:   true,
//		TypoInDomainCheck:    true,
//		TemporaryDomainCheck: true,
//	})
//	result := chain.Validate("user@gmial.com")
//	// result.Valid == false, result.HasError(validation.CodeEmailDomain)
//
// IsEmail and IsEmailContext wrap the chain for boolean use. The DNS step
// honours the caller's context and additionally bounds each lookup with
// EmailOptions.DNSTimeout.
//
// Domains are converted with IDNA before the label checks, so
// internationalized domain names such as "müller.de" are accepted.
package validationx
