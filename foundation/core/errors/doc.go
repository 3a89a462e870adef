// Package errors provides shared error construction helpers for the stringy modules.
//
// Package: errors
// Title: Standardized Error Construction
// Description: Builders and convenience constructors that turn a module name,
//              an operation and the offending value into a structured *mdwerror.Error
//              with a consistent code, message and detail set.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-15 v0.2.0: Constructors for type mismatch, immutability and backend failures
//
// Every error built here carries the details "module" and "operation", so
// ExtractModule and ExtractOperation work on any of them:
//
//   err := errors.InvalidInput(errors.ModuleStringy, "Chunk", 0, "length >= 1")
//   errors.ExtractOperation(err) // "Chunk"
package errors
