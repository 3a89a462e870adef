// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx is the static facade of the stringy module.
//              Every function takes a plain Go string, wraps it in a
//              stringy.Stringy and returns plain results.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-15 v0.3.0: Rewritten as the facade over stringy.Stringy

// Package stringx provides the stringy operations as free functions over
// plain strings.
//
// Overview
//
// Code that does not want to hold stringy.Stringy values calls the same
// operations here with the text as first argument. Each function builds a
// value with stringy.New, applies one method and converts the result back:
// Stringy results become string, []Stringy becomes []string and collection
// results stay *stringy.Collection. Fallible operations return the same
// *mdwerror.Error values as the methods, so errors.Is against the stringy
// sentinels works unchanged.
//
// Lengths and positions are counted in Unicode codepoints. Only Length,
// Encode and SetInternalEncoding take an encoding name; every other function
// treats its input as UTF-8.
//
// Architecture
//
// The package is organized into functional groups:
//
//   - Construction, encoding and indexed access (stringx.go)
//   - Prefixes, suffixes and substrings (affix.go)
//   - Case mapping and naming conventions (case.go)
//   - Search, comparison and predicates (search.go)
//   - Whitespace, wrapping, replacement and splitting (transform.go)
//   - Encoders, HTML cleanup, digests and encryption (codec.go)
//   - Random content (random.go)
//
// Usage Examples
//
// Unicode-aware access:
//
//	stringx.Count("fòôbàř")   // 6
//	stringx.At("fòôbàř", -1)  // "ř"
//	stringx.Truncate("これは日本語のテキストです", 8, "...")
//	// Result: "これは日本..."
//
// Naming conventions:
//
//	stringx.SnakeCase("Fòô Bàř")           // "fòô_bàř"
//	stringx.Camelize("camel-case_string")  // "camelCaseString"
//	stringx.Slugify("Fòô & Bàř")           // "foo-and-bar"
//
// Fallible operations:
//
//	pieces, err := stringx.Split("a1b22c", `\d+`)
//	if err != nil {
//	    return err // BACKEND_ERROR for an invalid pattern
//	}
//
// Validation:
//
//	if err := stringx.ValidateLength(name, 1, 64); err != nil {
//	    return err // VALIDATION_FAILED
//	}
//
// Error Handling
//
// Functions that cannot fail return plain values. Functions that can fail
// return (result, error) where the error is an *mdwerror.Error carrying the
// module name, operation and offending input in its details.
//
// Thread Safety
//
// All functions are stateless and safe for concurrent use.
package stringx
