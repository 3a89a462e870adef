// File: classify.go
// Title: Character Classification
// Description: Whole-string predicates over Unicode categories. Empty input
//              satisfies the "consists only of" predicates.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package utf8x

import (
	"strings"
	"unicode"
)

func allRunes(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

func anyRune(s string, pred func(rune) bool) bool {
	return strings.IndexFunc(s, pred) >= 0
}

// IsAlpha reports whether s contains only letters
func IsAlpha(s string) bool {
	return allRunes(s, unicode.IsLetter)
}

// IsAlphanumeric reports whether s contains only letters and digits
func IsAlphanumeric(s string) bool {
	return allRunes(s, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsNumber(r) })
}

// IsHexadecimal reports whether s contains only hexadecimal digits
func IsHexadecimal(s string) bool {
	return allRunes(s, func(r rune) bool {
		return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
	})
}

// IsLowerCase reports whether s contains only lowercase letters
func IsLowerCase(s string) bool {
	return allRunes(s, unicode.IsLower)
}

// IsUpperCase reports whether s contains only uppercase letters
func IsUpperCase(s string) bool {
	return allRunes(s, unicode.IsUpper)
}

// HasLowerCase reports whether s contains at least one lowercase letter
func HasLowerCase(s string) bool {
	return anyRune(s, unicode.IsLower)
}

// HasUpperCase reports whether s contains at least one uppercase letter
func HasUpperCase(s string) bool {
	return anyRune(s, unicode.IsUpper)
}

// IsPunctuation reports whether s contains only punctuation
func IsPunctuation(s string) bool {
	return allRunes(s, unicode.IsPunct)
}

// IsBlank reports whether s is empty or contains only whitespace
func IsBlank(s string) bool {
	return Default().reBlank.MatchString(s)
}

// IsPrintable reports whether s contains no control characters other than
// tab, line feed and carriage return
func IsPrintable(s string) bool {
	return allRunes(s, func(r rune) bool {
		if r == '\t' || r == '\n' || r == '\r' {
			return true
		}
		return !unicode.IsControl(r) && r != unicode.ReplacementChar
	})
}

// IsNumeric reports whether s is a decimal number with optional sign,
// fraction and exponent, surrounded by optional ASCII whitespace
func IsNumeric(s string) bool {
	return Default().reNumeric.MatchString(s)
}

// IsWordChar reports whether r belongs to a word: a letter, a combining
// mark or one of the extra characters
func IsWordChar(r rune, extra string) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.M, r) || strings.ContainsRune(extra, r)
}
