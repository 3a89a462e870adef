// File: transform.go
// Title: Whitespace, Wrapping and Replacement Facade
// Description: Free functions for trimming, padding, wrapping, truncation,
//              replacement, splitting and formatting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package stringx

import "github.com/msto63/stringy/pkg/stringy"

// WrapOptions controls LineWrap and LineWrapAfterWord
type WrapOptions = stringy.WrapOptions

// ===============================
// Whitespace and padding
// ===============================

// Trim removes chars, whitespace by default, from both ends
func Trim(s string, chars ...string) string {
	return stringy.New(s).Trim(chars...).String()
}

// TrimLeft removes chars, whitespace by default, from the start
func TrimLeft(s string, chars ...string) string {
	return stringy.New(s).TrimLeft(chars...).String()
}

// TrimRight removes chars, whitespace by default, from the end
func TrimRight(s string, chars ...string) string {
	return stringy.New(s).TrimRight(chars...).String()
}

// StripWhitespace removes all whitespace
func StripWhitespace(s string) string {
	return stringy.New(s).StripWhitespace().String()
}

// CollapseWhitespace trims s and reduces inner whitespace runs to one space
func CollapseWhitespace(s string) string {
	return stringy.New(s).CollapseWhitespace().String()
}

// ToSpaces replaces tabs with tabLen spaces, default 4
func ToSpaces(s string, tabLen ...int) string {
	return stringy.New(s).ToSpaces(tabLen...).String()
}

// ToTabs replaces runs of tabLen spaces with tabs, default 4
func ToTabs(s string, tabLen ...int) string {
	return stringy.New(s).ToTabs(tabLen...).String()
}

// Pad pads s to length codepoints on the side named by padType ("left",
// "right" or "both")
func Pad(s string, length int, padStr string, padType ...string) (string, error) {
	return textOf(stringy.New(s).Pad(length, padStr, padType...))
}

// PadLeft pads s on the left to length codepoints
func PadLeft(s string, length int, padStr ...string) string {
	return stringy.New(s).PadLeft(length, padStr...).String()
}

// PadRight pads s on the right to length codepoints
func PadRight(s string, length int, padStr ...string) string {
	return stringy.New(s).PadRight(length, padStr...).String()
}

// PadBoth centers s within length codepoints
func PadBoth(s string, length int, padStr ...string) string {
	return stringy.New(s).PadBoth(length, padStr...).String()
}

// ===============================
// Wrapping and truncation
// ===============================

// LineWrap breaks every line of s after limit codepoints
func LineWrap(s string, limit int, opts ...WrapOptions) string {
	return stringy.New(s).LineWrap(limit, opts...).String()
}

// LineWrapAfterWord breaks every line of s at word boundaries
func LineWrapAfterWord(s string, limit int, opts ...WrapOptions) string {
	return stringy.New(s).LineWrapAfterWord(limit, opts...).String()
}

// HardWrap wraps s at width codepoints, cutting long words
func HardWrap(s string, width int, brk ...string) string {
	return stringy.New(s).HardWrap(width, brk...).String()
}

// SoftWrap wraps s at width codepoints without cutting words
func SoftWrap(s string, width int, brk ...string) string {
	return stringy.New(s).SoftWrap(width, brk...).String()
}

// ShortenAfterWord cuts s at the last word boundary before length and adds
// addOn, "…" by default
func ShortenAfterWord(s string, length int, addOn ...string) string {
	return stringy.New(s).ShortenAfterWord(length, addOn...).String()
}

// Truncate cuts s to length codepoints including the suffix.
// This function is Unicode-aware and will not break multi-byte characters.
func Truncate(s string, length int, suffix ...string) string {
	return stringy.New(s).Truncate(length, suffix...).String()
}

// SafeTruncate truncates s without splitting words
func SafeTruncate(s string, length int, suffix string, keepSingleWord ...bool) string {
	return stringy.New(s).SafeTruncate(length, suffix, keepSingleWord...).String()
}

// ExtractText returns an excerpt of about length codepoints around search
func ExtractText(s, search string, length int, replacer ...string) string {
	return stringy.New(s).ExtractText(search, length, replacer...).String()
}

// ===============================
// Replacement
// ===============================

// Replace replaces every search with replacement
func Replace(s, search, replacement string, caseSensitive ...bool) string {
	return stringy.New(s).Replace(search, replacement, caseSensitive...).String()
}

// ReplaceAll replaces every one of search with replacement
func ReplaceAll(s string, search []string, replacement string, caseSensitive ...bool) string {
	return stringy.New(s).ReplaceAll(search, replacement, caseSensitive...).String()
}

// ReplaceEach replaces search[i] with replacements[i]
func ReplaceEach(s string, search, replacements []string, caseSensitive ...bool) string {
	return stringy.New(s).ReplaceEach(search, replacements, caseSensitive...).String()
}

// ReplaceFirst replaces the first search
func ReplaceFirst(s, search, replacement string) string {
	return stringy.New(s).ReplaceFirst(search, replacement).String()
}

// ReplaceLast replaces the last search
func ReplaceLast(s, search, replacement string) string {
	return stringy.New(s).ReplaceLast(search, replacement).String()
}

// ReplaceBeginning replaces search when s starts with it
func ReplaceBeginning(s, search, replacement string) string {
	return stringy.New(s).ReplaceBeginning(search, replacement).String()
}

// ReplaceEnding replaces search when s ends with it
func ReplaceEnding(s, search, replacement string) string {
	return stringy.New(s).ReplaceEnding(search, replacement).String()
}

// RegexReplace replaces the matches of pattern. options holds modifier
// letters such as "i" and "s".
func RegexReplace(s, pattern, replacement, options string, delimiter ...string) (string, error) {
	return textOf(stringy.New(s).RegexReplace(pattern, replacement, options, delimiter...))
}

// Strip removes every occurrence of the search strings
func Strip(s string, search ...string) string {
	return stringy.New(s).Strip(search...).String()
}

// ===============================
// Splitting
// ===============================

// Split splits s on a regular expression. A positive limit caps the number
// of pieces.
func Split(s, pattern string, limit ...int) ([]string, error) {
	pieces, err := stringy.New(s).Split(pattern, limit...)
	if err != nil {
		return nil, err
	}
	return texts(pieces), nil
}

// SplitCollection is Split returning a collection
func SplitCollection(s, pattern string, limit ...int) (*stringy.Collection, error) {
	return stringy.New(s).SplitCollection(pattern, limit...)
}

// Explode splits s on a literal delimiter
func Explode(s, delimiter string, limit ...int) []string {
	return texts(stringy.New(s).Explode(delimiter, limit...))
}

// ExplodeCollection is Explode returning a collection
func ExplodeCollection(s, delimiter string, limit ...int) *stringy.Collection {
	return stringy.New(s).ExplodeCollection(delimiter, limit...)
}

// Lines splits s on "\n", "\r\n" and "\r"
func Lines(s string) []string {
	return texts(stringy.New(s).Lines())
}

// LinesCollection is Lines returning a collection
func LinesCollection(s string) *stringy.Collection {
	return stringy.New(s).LinesCollection()
}

// Words splits s into words and the text between them
func Words(s, extraChars string, removeEmpty bool, minLen ...int) []string {
	return texts(stringy.New(s).Words(extraChars, removeEmpty, minLen...))
}

// WordsCollection is Words returning a collection
func WordsCollection(s, extraChars string, removeEmpty bool, minLen ...int) *stringy.Collection {
	return stringy.New(s).WordsCollection(extraChars, removeEmpty, minLen...)
}

// ===============================
// Formatting
// ===============================

// Format expands printf verbs and %:name parameters in s
func Format(s string, args ...any) string {
	return stringy.New(s).Format(args...).String()
}

// Reverse reverses the codepoints of s
func Reverse(s string) string {
	return stringy.New(s).Reverse().String()
}
