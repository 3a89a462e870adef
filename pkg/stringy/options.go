// File: options.go
// Title: Operation Options
// Description: Option structs for operations with several optional arguments.
//              The zero value of every struct selects the documented defaults.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package stringy

import (
	"github.com/msto63/stringy/foundation/utils/asciix"
	"github.com/msto63/stringy/foundation/utils/validationx"
)

// CaseOptions controls case mapping
type CaseOptions struct {
	// Language is a BCP 47 tag selecting special casing rules, e.g. "tr",
	// "az", "el" or "lt"
	Language string
	// KeepLength maps codepoint by codepoint so the length never changes
	// ("ß" uppercases to "ẞ" instead of "SS")
	KeepLength bool
}

// TitleizeOptions controls Titleize
type TitleizeOptions struct {
	// Ignore lists words that are left exactly as they are
	Ignore []string
	// WordChars are extra characters that separate words besides whitespace
	WordChars string
	Language  string
}

// SlugOptions controls Slugify. Defaults: separator "-", language "en",
// extra symbols spelled out, lowercase output.
type SlugOptions = asciix.SlugOptions

// URLifyOptions controls URLify
type URLifyOptions struct {
	Separator    string
	Language     string
	Replacements map[string]string
	KeepCase     bool
}

// ASCIIOptions controls ToASCII
type ASCIIOptions struct {
	// Language selects the replacement table, default "en"
	Language string
	// KeepUnsupported keeps characters without an ASCII replacement
	KeepUnsupported bool
}

// TransliterateOptions controls ToTransliterate
type TransliterateOptions struct {
	// Strict also decomposes compatibility characters such as ligatures
	Strict bool
	// Unknown replaces characters without a transliteration, default "?"
	Unknown string
	// DropUnknown removes those characters instead
	DropUnknown bool
}

// WrapOptions controls LineWrap and LineWrapAfterWord
type WrapOptions struct {
	// Break is inserted between wrapped lines, default "\n"
	Break string
	// SkipFinalBreak omits the break after the last line
	SkipFinalBreak bool
	// Delimiter splits the input into lines that are wrapped one by one,
	// default "\n"
	Delimiter string
}

// EmailOptions selects the optional email checks
type EmailOptions = validationx.EmailOptions

// option returns the first element of opts or the zero value
func option[T any](opts []T) T {
	var zero T
	if len(opts) == 0 {
		return zero
	}
	return opts[0]
}
