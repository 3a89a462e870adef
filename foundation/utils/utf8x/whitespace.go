// File: whitespace.go
// Title: Trimming and Whitespace
// Description: Trimming with optional character sets, whitespace collapsing
//              and removal, and tab/space conversion.
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

// isTrimmable is the default trim set: whitespace, separators and other
// (control, format, private use) characters
func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || unicode.In(r, unicode.Z, unicode.C)
}

// Trim removes chars from both ends of s, or whitespace when chars is empty
func Trim(s, chars string) string {
	if chars == "" {
		return strings.TrimFunc(s, isTrimmable)
	}
	return strings.Trim(s, chars)
}

// TrimLeft removes chars from the start of s, or whitespace when chars is empty
func TrimLeft(s, chars string) string {
	if chars == "" {
		return strings.TrimLeftFunc(s, isTrimmable)
	}
	return strings.TrimLeft(s, chars)
}

// TrimRight removes chars from the end of s, or whitespace when chars is empty
func TrimRight(s, chars string) string {
	if chars == "" {
		return strings.TrimRightFunc(s, isTrimmable)
	}
	return strings.TrimRight(s, chars)
}

// CollapseWhitespace trims s and replaces every whitespace run with one space
func CollapseWhitespace(s string) string {
	return Default().reWhitespace.ReplaceAllLiteralString(Trim(s, ""), " ")
}

// StripWhitespace removes all whitespace including Unicode separators
func StripWhitespace(s string) string {
	return Default().reWhitespace.ReplaceAllLiteralString(s, "")
}

// SplitLines splits s on "\r\n", "\r" and "\n". Empty input yields one empty line.
func SplitLines(s string) []string {
	return Default().reLineBreak.Split(s, -1)
}

// TabsToSpaces replaces each tab with tabLength spaces
func TabsToSpaces(s string, tabLength int) string {
	return strings.ReplaceAll(s, "\t", Repeat(" ", tabLength))
}

// SpacesToTabs replaces each run of tabLength spaces with a tab
func SpacesToTabs(s string, tabLength int) string {
	if tabLength <= 0 {
		return s
	}
	return strings.ReplaceAll(s, Repeat(" ", tabLength), "\t")
}
