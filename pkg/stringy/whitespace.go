// File: whitespace.go
// Title: Whitespace, Padding, Wrapping and Truncation
// Description: Trimming and collapsing whitespace, tab conversion, padding to
//              a length, word wrapping and the truncation family.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package stringy

import (
	mdwerrors "github.com/msto63/stringy/foundation/core/errors"
	"github.com/msto63/stringy/foundation/utils/utf8x"
)

// Pad types accepted by Pad
const (
	PadLeft  = "left"
	PadRight = "right"
	PadBoth  = "both"
)

// DefaultTabLength is the number of spaces per tab in ToSpaces and ToTabs
const DefaultTabLength = 4

func optChars(chars []string) string {
	if len(chars) > 0 {
		return chars[0]
	}
	return ""
}

// Trim removes whitespace, or the given characters, from both ends
func (s Stringy) Trim(chars ...string) Stringy {
	return s.derive(utf8x.Trim(s.str, optChars(chars)))
}

// TrimLeft removes whitespace, or the given characters, from the start
func (s Stringy) TrimLeft(chars ...string) Stringy {
	return s.derive(utf8x.TrimLeft(s.str, optChars(chars)))
}

// TrimRight removes whitespace, or the given characters, from the end
func (s Stringy) TrimRight(chars ...string) Stringy {
	return s.derive(utf8x.TrimRight(s.str, optChars(chars)))
}

// StripWhitespace removes all whitespace
func (s Stringy) StripWhitespace() Stringy {
	return s.derive(utf8x.StripWhitespace(s.str))
}

// CollapseWhitespace trims the text and reduces inner whitespace runs to one
// space
func (s Stringy) CollapseWhitespace() Stringy {
	return s.derive(utf8x.CollapseWhitespace(s.str))
}

func tabLength(n []int) int {
	if len(n) > 0 {
		return n[0]
	}
	return DefaultTabLength
}

// ToSpaces replaces each tab with tabLength spaces, default 4
func (s Stringy) ToSpaces(tabLen ...int) Stringy {
	return s.derive(utf8x.TabsToSpaces(s.str, tabLength(tabLen)))
}

// ToTabs replaces each run of tabLength spaces with a tab, default 4
func (s Stringy) ToTabs(tabLen ...int) Stringy {
	return s.derive(utf8x.SpacesToTabs(s.str, tabLength(tabLen)))
}

// Pad pads the text to length codepoints with padStr on the side given by
// padType (PadLeft, PadRight or PadBoth). padStr defaults to a space and
// padType to PadRight; other types fail with ErrInvalidInput.
func (s Stringy) Pad(length int, padStr string, padType ...string) (Stringy, error) {
	kind := PadRight
	if len(padType) > 0 {
		kind = padType[0]
	}
	if padStr == "" {
		padStr = " "
	}
	switch kind {
	case PadLeft:
		return s.PadLeft(length, padStr), nil
	case PadRight:
		return s.PadRight(length, padStr), nil
	case PadBoth:
		return s.PadBoth(length, padStr), nil
	}
	return Stringy{}, mdwerrors.StringyInvalidInput("Pad", kind, "pad type left, right or both")
}

// padding returns n codepoints of pad repeated
func padding(pad string, n int) string {
	if n <= 0 || pad == "" {
		return ""
	}
	runes := []rune(pad)
	out := make([]rune, n)
	for i := range out {
		out[i] = runes[i%len(runes)]
	}
	return string(out)
}

func optPad(padStr []string) string {
	if len(padStr) > 0 && padStr[0] != "" {
		return padStr[0]
	}
	return " "
}

// PadLeft pads the start of the text to length codepoints
func (s Stringy) PadLeft(length int, padStr ...string) Stringy {
	diff := length - utf8x.Len(s.str)
	return s.derive(padding(optPad(padStr), diff) + s.str)
}

// PadRight pads the end of the text to length codepoints
func (s Stringy) PadRight(length int, padStr ...string) Stringy {
	diff := length - utf8x.Len(s.str)
	return s.derive(s.str + padding(optPad(padStr), diff))
}

// PadBoth pads both ends to length codepoints; an odd remainder goes right
func (s Stringy) PadBoth(length int, padStr ...string) Stringy {
	diff := length - utf8x.Len(s.str)
	if diff <= 0 {
		return s
	}
	pad := optPad(padStr)
	return s.derive(padding(pad, diff/2) + s.str + padding(pad, diff-diff/2))
}

func wrapDefaults(opts []WrapOptions) WrapOptions {
	o := option(opts)
	if o.Break == "" {
		o.Break = "\n"
	}
	return o
}

// LineWrap wraps every line at limit codepoints, cutting words longer than
// the limit. A break is appended after the last line unless SkipFinalBreak
// is set.
func (s Stringy) LineWrap(limit int, opts ...WrapOptions) Stringy {
	o := wrapDefaults(opts)
	return s.derive(utf8x.WordWrapPerLine(s.str, limit, o.Break, true, !o.SkipFinalBreak, o.Delimiter))
}

// LineWrapAfterWord is LineWrap without cutting words
func (s Stringy) LineWrapAfterWord(limit int, opts ...WrapOptions) Stringy {
	o := wrapDefaults(opts)
	return s.derive(utf8x.WordWrapPerLine(s.str, limit, o.Break, false, !o.SkipFinalBreak, o.Delimiter))
}

func optBreak(brk []string) string {
	if len(brk) > 0 && brk[0] != "" {
		return brk[0]
	}
	return "\n"
}

// HardWrap wraps at width, cutting long words, without a final break
func (s Stringy) HardWrap(width int, brk ...string) Stringy {
	return s.LineWrap(width, WrapOptions{Break: optBreak(brk), SkipFinalBreak: true})
}

// SoftWrap wraps at width without cutting words or adding a final break
func (s Stringy) SoftWrap(width int, brk ...string) Stringy {
	return s.LineWrapAfterWord(width, WrapOptions{Break: optBreak(brk), SkipFinalBreak: true})
}

func optSuffix(suffix []string, def string) string {
	if len(suffix) > 0 {
		return suffix[0]
	}
	return def
}

// ShortenAfterWord shortens the text to at most length codepoints at a word
// boundary and appends addOn, default "…", when text was removed
func (s Stringy) ShortenAfterWord(length int, addOn ...string) Stringy {
	return s.derive(utf8x.LimitAfterWord(s.str, length, optSuffix(addOn, "…")))
}

// Truncate cuts the text to length codepoints including the suffix
func (s Stringy) Truncate(length int, suffix ...string) Stringy {
	return s.derive(utf8x.Truncate(s.str, length, optSuffix(suffix, "")))
}

// SafeTruncate truncates without splitting words. A text that is a single
// word is cut anyway unless keepSingleWord is false.
func (s Stringy) SafeTruncate(length int, suffix string, keepSingleWord ...bool) Stringy {
	keep := len(keepSingleWord) == 0 || keepSingleWord[0]
	return s.derive(utf8x.SafeTruncate(s.str, length, suffix, keep))
}

// ExtractText returns an excerpt of about length codepoints around the first
// occurrence of search, marking skipped text with replacer (default "…").
// A length of zero or less uses half of the text.
func (s Stringy) ExtractText(search string, length int, replacer ...string) Stringy {
	return s.derive(utf8x.Excerpt(s.str, search, length, optSuffix(replacer, "…")))
}
