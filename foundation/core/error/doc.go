// Package error provides the structured error type used across stringy.
//
// Package: error
// Title: Stringy Error Handling Framework
// Description: Structured errors with codes, severities, details, wrapped causes and
//              captured stack traces. Every failure reported by the string value, the
//              collection and the backends is an *Error carrying one of the codes
//              defined in codes.go.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-15 v0.2.0: Reduced code set to string value failures, code based Is matching
//
// Usage:
//   import mdwerror "github.com/msto63/stringy/foundation/core/error"
//
//   err := mdwerror.New("chunk length must be positive").
//     WithCode(mdwerror.CodeInvalidInput).
//     WithOperation("Chunk").
//     WithDetail("length", 0)
//
//   if mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
//     // handle invalid arguments
//   }
package error
