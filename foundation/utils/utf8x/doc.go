// Package utf8x is the Unicode backend behind the stringy value type.
//
// Package: utf8x
// Title: Unicode Primitives
// Description: Codepoint indexed substring and search, language aware case
//              mapping, character classification, encoding normalization and
//              transcoding, HTML and URL codecs, word wrapping, similarity,
//              grapheme clusters and random string generation. All functions
//              take and return UTF-8 Go strings and index by codepoint.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
//
// Tables and compiled expressions are built once on first use by Default and
// are read-only afterwards, so every function is safe for concurrent use.
package utf8x
