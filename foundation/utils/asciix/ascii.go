// File: ascii.go
// Title: ASCII Folding and Transliteration
// Description: Language aware conversion of Unicode text to its closest
//              ASCII form and the strict/lenient transliteration variant that
//              substitutes a marker for anything left over.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package asciix

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// DefaultLanguage is used when no language is given
const DefaultLanguage = "en"

// ToASCII folds s to ASCII using the replacement table of lang on top of the
// generic table. Characters without an ASCII equivalent are removed when
// removeUnsupported is set and kept otherwise.
func ToASCII(s, lang string, removeUnsupported bool) string {
	if isASCII(s) {
		return s
	}
	b := Default()
	r := b.replacer(lang)

	s = r.Replace(norm.NFC.String(s))
	s = b.generic.Replace(fold(s, false))

	if removeUnsupported {
		s = dropNonASCII(s, "")
	}
	return s
}

// Transliterate folds s to ASCII without language rules and replaces every
// remaining non-ASCII codepoint with unknown. Strict mode decomposes with
// compatibility mappings first, turning ligatures and superscripts into
// their plain letters.
func Transliterate(s string, strict bool, unknown string) string {
	if isASCII(s) {
		return s
	}
	b := Default()
	s = b.generic.Replace(norm.NFC.String(s))
	s = b.generic.Replace(fold(s, strict))
	return dropNonASCII(s, unknown)
}

// IsASCII reports whether s consists of 7-bit characters only
func IsASCII(s string) bool {
	return isASCII(s)
}

func dropNonASCII(s, replacement string) string {
	if isASCII(s) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r < utf8.RuneSelf {
			sb.WriteRune(r)
			continue
		}
		sb.WriteString(replacement)
	}
	return sb.String()
}
