// Package stringy provides an immutable, encoding tagged Unicode string value
// with a fluent API, and a homogeneous collection of such values.
//
// Package: stringy
// Title: Immutable Unicode String Values
// Description: The Stringy value type with its transformations (case, case
//              styles, affixes, extraction, search, padding, wrapping, codecs,
//              hashes, predicates) and the Collection type that only ever
//              holds Stringy values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
//
// A Stringy holds its text and a normalized encoding name. Every method has a
// value receiver and returns a fresh value, so a Stringy can be shared between
// goroutines without coordination. Indexing, lengths and offsets count
// codepoints, never bytes; negative indices count from the end.
//
// Basic usage:
//
//	s := stringy.New("  fòô   bàř  ")
//	s.CollapseWhitespace().ToUpperCase().String() // "FÒÔ BÀŘ"
//	s.Trim().Slugify().String()                   // "foo-bar"
//
//	c := stringy.CollectionFromStrings("fòôbàř", "lall", "öäü")
//	c.Implode("+")                                // "fòôbàř+lall+öäü"
//
// Fallible operations return a *mdwerror.Error. The sentinels ErrInvalidInput,
// ErrOutOfRange, ErrImmutable, ErrTypeMismatch and ErrBackend match them with
// errors.Is:
//
//	if _, err := s.Chunk(0); errors.Is(err, stringy.ErrInvalidInput) {
//		// ...
//	}
//
// The Unicode and ASCII backends are built lazily on first use. SetLogger
// routes their diagnostics, and those of the email check, to a mdwlog.Logger.
package stringy
