// Package asciix is the ASCII backend behind the stringy value type.
//
// Package: asciix
// Title: ASCII Transliteration and Slugs
// Description: Language aware folding of Unicode text to ASCII, strict and
//              lenient transliteration, URL slugs and normalization of the
//              typographic punctuation produced by word processors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
//
// Replacement tables are merged per language on first use and are read-only
// afterwards. Language codes accept both "de_AT" and "de-AT" spellings and
// fall back to the base language, then to the generic table.
//
// Basic usage:
//
//	asciix.ToASCII("Düsseldorf", "de", true)              // "Duesseldorf"
//	asciix.Slugify("Fòô & Bàř", asciix.SlugOptions{})     // "foo-and-bar"
//	asciix.Tidy("“Quoted” – text…")                      // "\"Quoted\" - text..."
package asciix
