// File: case.go
// Title: Case Mapping
// Description: Language aware upper, lower and title casing built on
//              golang.org/x/text/cases, plus codepoint preserving variants.
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
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tag parses a language code such as "tr", "az" or "de_AT". Unknown or empty
// codes yield language.Und.
func Tag(lang string) language.Tag {
	if lang == "" {
		return language.Und
	}
	tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}

// ToLower lowercases s. With keepLength every codepoint maps to exactly one
// codepoint; otherwise the full CLDR mapping for lang applies.
func ToLower(s, lang string, keepLength bool) string {
	if keepLength {
		return strings.Map(lowerKeep, s)
	}
	return cases.Lower(Tag(lang)).String(s)
}

// ToUpper uppercases s. The full mapping turns "ß" into "SS"; with keepLength
// it becomes "ẞ" instead.
func ToUpper(s, lang string, keepLength bool) string {
	if keepLength {
		return strings.Map(upperKeep, s)
	}
	return cases.Upper(Tag(lang)).String(s)
}

func lowerKeep(r rune) rune {
	return unicode.ToLower(r)
}

func upperKeep(r rune) rune {
	if r == 'ß' {
		return 'ẞ'
	}
	return unicode.ToUpper(r)
}

// UpperFirst uppercases the first codepoint of s
func UpperFirst(s, lang string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return ToUpper(string(r), lang, false) + s[size:]
}

// LowerFirst lowercases the first codepoint of s
func LowerFirst(s, lang string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return ToLower(string(r), lang, false) + s[size:]
}

// SwapCase inverts the case of every codepoint
func SwapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return upperKeep(r)
		default:
			return r
		}
	}, s)
}

// Title converts s to title case: the first letter of each word upper, the
// rest lower
func Title(s, lang string) string {
	return cases.Title(Tag(lang)).String(s)
}

// TitleWord uppercases the first codepoint of word and lowercases the rest
func TitleWord(word, lang string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return word
	}
	return ToUpper(string(r), lang, false) + ToLower(word[size:], lang, false)
}

// UpperWords uppercases the first codepoint of each space separated word
// and leaves the rest untouched
func UpperWords(s, lang string) string {
	var b strings.Builder
	b.Grow(len(s))
	atStart := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			atStart = true
			b.WriteRune(r)
			continue
		}
		if atStart {
			b.WriteString(ToUpper(string(r), lang, false))
			atStart = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// EqualFold reports whether a and b are equal after uppercase folding
func EqualFold(a, b string) bool {
	return ToUpper(a, "", false) == ToUpper(b, "", false)
}
