// File: affix.go
// Title: Affix and Extraction Facade
// Description: Free functions that add or remove text at the edges of a
//              string and extract substrings by position or separator.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package stringx

import "github.com/msto63/stringy/pkg/stringy"

// Append adds the suffixes in order
func Append(s string, suffix ...string) string {
	return stringy.New(s).Append(suffix...).String()
}

// Prepend adds the prefixes in front of s, keeping their order
func Prepend(s string, prefix ...string) string {
	return stringy.New(s).Prepend(prefix...).String()
}

// AppendStringy appends values and collections
func AppendStringy(s string, parts ...stringy.Part) string {
	return stringy.New(s).AppendStringy(parts...).String()
}

// PrependStringy prepends values and collections
func PrependStringy(s string, parts ...stringy.Part) string {
	return stringy.New(s).PrependStringy(parts...).String()
}

// EnsureLeft makes sure s starts with substring
func EnsureLeft(s, substring string) string {
	return stringy.New(s).EnsureLeft(substring).String()
}

// EnsureRight makes sure s ends with substring
func EnsureRight(s, substring string) string {
	return stringy.New(s).EnsureRight(substring).String()
}

// RemoveLeft removes a leading substring
func RemoveLeft(s, substring string) string {
	return stringy.New(s).RemoveLeft(substring).String()
}

// RemoveRight removes a trailing substring
func RemoveRight(s, substring string) string {
	return stringy.New(s).RemoveRight(substring).String()
}

// Surround puts substring on both sides of s
func Surround(s, substring string) string {
	return stringy.New(s).Surround(substring).String()
}

// Wrap is an alias for Surround
func Wrap(s, substring string) string {
	return stringy.New(s).Wrap(substring).String()
}

// Repeat concatenates multiplier copies of s
func Repeat(s string, multiplier int) string {
	return stringy.New(s).Repeat(multiplier).String()
}

// Insert places substring at a codepoint index
func Insert(s, substring string, index int) string {
	return stringy.New(s).Insert(substring, index).String()
}

// Substr returns length codepoints from start. A negative start counts from
// the end; without length the rest is returned.
func Substr(s string, start int, length ...int) string {
	return stringy.New(s).Substr(start, length...).String()
}

// Substring is an alias for Substr
func Substring(s string, start int, length ...int) string {
	return stringy.New(s).Substring(start, length...).String()
}

// Slice returns the codepoints from start up to, not including, end
func Slice(s string, start int, end ...int) string {
	return stringy.New(s).Slice(start, end...).String()
}

// First returns the first n codepoints
func First(s string, n int) string {
	return stringy.New(s).First(n).String()
}

// Last returns the last n codepoints
func Last(s string, n int) string {
	return stringy.New(s).Last(n).String()
}

// Before returns the text before the first separator, "" when absent
func Before(s, separator string) string {
	return stringy.New(s).Before(separator).String()
}

// After splits s on separator and joins all pieces but the first with a
// space
func After(s, separator string) string {
	return stringy.New(s).After(separator).String()
}

// BeforeFirst returns the text before the first separator, "" when absent
func BeforeFirst(s, separator string) string {
	return stringy.New(s).BeforeFirst(separator).String()
}

// BeforeFirstIgnoreCase is BeforeFirst with case folding
func BeforeFirstIgnoreCase(s, separator string) string {
	return stringy.New(s).BeforeFirstIgnoreCase(separator).String()
}

// BeforeLast returns the text before the last separator
func BeforeLast(s, separator string) string {
	return stringy.New(s).BeforeLast(separator).String()
}

// BeforeLastIgnoreCase is BeforeLast with case folding
func BeforeLastIgnoreCase(s, separator string) string {
	return stringy.New(s).BeforeLastIgnoreCase(separator).String()
}

// AfterFirst returns the text after the first separator
func AfterFirst(s, separator string) string {
	return stringy.New(s).AfterFirst(separator).String()
}

// AfterFirstIgnoreCase is AfterFirst with case folding
func AfterFirstIgnoreCase(s, separator string) string {
	return stringy.New(s).AfterFirstIgnoreCase(separator).String()
}

// AfterLast returns the text after the last separator
func AfterLast(s, separator string) string {
	return stringy.New(s).AfterLast(separator).String()
}

// AfterLastIgnoreCase is AfterLast with case folding
func AfterLastIgnoreCase(s, separator string) string {
	return stringy.New(s).AfterLastIgnoreCase(separator).String()
}

// Between returns the text between start and end
func Between(s, start, end string, offset ...int) string {
	return stringy.New(s).Between(start, end, offset...).String()
}

// SubstringOf returns the text from needle on, or before it
func SubstringOf(s, needle string, beforeNeedle ...bool) string {
	return stringy.New(s).SubstringOf(needle, beforeNeedle...).String()
}

// SubstringOfIgnoreCase is SubstringOf with case folding
func SubstringOfIgnoreCase(s, needle string, beforeNeedle ...bool) string {
	return stringy.New(s).SubstringOfIgnoreCase(needle, beforeNeedle...).String()
}

// LastSubstringOf is SubstringOf anchored at the last needle
func LastSubstringOf(s, needle string, beforeNeedle ...bool) string {
	return stringy.New(s).LastSubstringOf(needle, beforeNeedle...).String()
}

// LastSubstringOfIgnoreCase is LastSubstringOf with case folding
func LastSubstringOfIgnoreCase(s, needle string, beforeNeedle ...bool) string {
	return stringy.New(s).LastSubstringOfIgnoreCase(needle, beforeNeedle...).String()
}

// Nth returns every step-th codepoint starting at offset
func Nth(s string, step int, offset ...int) string {
	return stringy.New(s).Nth(step, offset...).String()
}
