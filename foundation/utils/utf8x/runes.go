// File: runes.go
// Title: Codepoint Primitives
// Description: Length, substring, search and slicing by codepoint index.
//              Negative positions count from the end of the string.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Case insensitive search on strcase simple case folding

package utf8x

import (
	"strings"
	"unicode/utf8"

	"github.com/charlievieth/strcase"
)

// Len returns the number of codepoints in s
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// Chars splits s into single codepoint strings
func Chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Substr returns length codepoints of s starting at start. A negative start
// counts from the end; a negative length leaves that many codepoints off the
// end. Without length the rest of the string is returned.
func Substr(s string, start int, length ...int) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	n := len(runes)

	if start < 0 {
		start = max(n+start, 0)
	}
	if start > n {
		return ""
	}

	end := n
	if len(length) > 0 {
		l := length[0]
		if l < 0 {
			end = n + l
		} else {
			end = min(start+l, n)
		}
	}
	if end <= start {
		return ""
	}
	return string(runes[start:end])
}

// Slice returns the codepoints from start up to, but excluding, end. Both
// bounds accept negative values counting from the end. Without end the rest
// of the string is returned.
func Slice(s string, start int, end ...int) string {
	if len(end) == 0 {
		return Substr(s, start)
	}
	n := Len(s)
	e := end[0]
	if e < 0 {
		e = n + e
	}
	if start < 0 {
		start = max(n+start, 0)
	}
	if e <= start {
		return ""
	}
	return Substr(s, start, e-start)
}

// At returns the codepoint at index i (negative counts from the end)
func At(s string, i int) (string, bool) {
	runes := []rune(s)
	if i < 0 {
		i += len(runes)
	}
	if i < 0 || i >= len(runes) {
		return "", false
	}
	return string(runes[i]), true
}

// Reverse reverses s codepoint by codepoint
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// ChunkSplit splits s into pieces of at most size codepoints
func ChunkSplit(s string, size int) []string {
	if s == "" || size < 1 {
		return nil
	}
	runes := []rune(s)
	out := make([]string, 0, (len(runes)+size-1)/size)
	for i := 0; i < len(runes); i += size {
		out = append(out, string(runes[i:min(i+size, len(runes))]))
	}
	return out
}

// byteOffset returns the byte position of codepoint index i, clamped to len(s)
func byteOffset(s string, i int) int {
	for pos := range s {
		if i == 0 {
			return pos
		}
		i--
	}
	return len(s)
}

func index(s, substr string, ignoreCase bool) int {
	if ignoreCase {
		return strcase.Index(s, substr)
	}
	return strings.Index(s, substr)
}

func lastIndex(s, substr string, ignoreCase bool) int {
	if ignoreCase {
		return strcase.LastIndex(s, substr)
	}
	return strings.LastIndex(s, substr)
}

// IndexOf returns the codepoint index of the first needle at or after offset,
// or -1. A negative offset counts from the end.
func IndexOf(haystack, needle string, offset int, ignoreCase bool) int {
	length := Len(haystack)
	if offset < 0 {
		offset += length
	}
	if offset < 0 || offset > length {
		return -1
	}
	rest := haystack[byteOffset(haystack, offset):]
	idx := index(rest, needle, ignoreCase)
	if idx < 0 {
		return -1
	}
	return offset + utf8.RuneCountInString(rest[:idx])
}

// LastIndexOf returns the codepoint index of the last needle, or -1. A positive
// offset requires the match to start at or after it; a negative offset
// requires the match to start at or before len+offset.
func LastIndexOf(haystack, needle string, offset int, ignoreCase bool) int {
	length := Len(haystack)
	from, upTo := 0, length
	if offset >= 0 {
		if offset > length {
			return -1
		}
		from = offset
	} else {
		if -offset > length {
			return -1
		}
		upTo = length + offset
	}
	// simple case folding maps rune to rune, so a match spans Len(needle) codepoints
	window := haystack[byteOffset(haystack, from):byteOffset(haystack, min(upTo+Len(needle), length))]
	idx := lastIndex(window, needle, ignoreCase)
	if idx < 0 {
		return -1
	}
	return from + utf8.RuneCountInString(window[:idx])
}

// Contains reports whether needle occurs in haystack
func Contains(haystack, needle string, caseSensitive bool) bool {
	if caseSensitive {
		return strings.Contains(haystack, needle)
	}
	return strcase.Contains(haystack, needle)
}

// HasPrefix reports whether s begins with prefix
func HasPrefix(s, prefix string, caseSensitive bool) bool {
	if caseSensitive {
		return strings.HasPrefix(s, prefix)
	}
	return strcase.HasPrefix(s, prefix)
}

// HasSuffix reports whether s ends with suffix
func HasSuffix(s, suffix string, caseSensitive bool) bool {
	if caseSensitive {
		return strings.HasSuffix(s, suffix)
	}
	return strcase.HasSuffix(s, suffix)
}

// Count returns the number of non-overlapping occurrences of needle. An empty
// needle counts zero.
func Count(haystack, needle string, caseSensitive bool) int {
	if needle == "" {
		return 0
	}
	if caseSensitive {
		return strings.Count(haystack, needle)
	}
	return strcase.Count(haystack, needle)
}

// SplitOnce finds the first (or last) occurrence of sep and returns the parts
// before and after it. found is false when sep is empty or absent.
func SplitOnce(s, sep string, last, ignoreCase bool) (before, after string, found bool) {
	if sep == "" || s == "" {
		return "", "", false
	}
	var idx int
	if last {
		idx = LastIndexOf(s, sep, 0, ignoreCase)
	} else {
		idx = IndexOf(s, sep, 0, ignoreCase)
	}
	if idx < 0 {
		return "", "", false
	}
	at := byteOffset(s, idx)
	end := at + byteOffset(s[at:], Len(sep))
	return s[:at], s[end:], true
}

// Insert places sub at codepoint index; an index past the end leaves s unchanged
func Insert(s, sub string, index int) string {
	runes := []rune(s)
	if index < 0 || index > len(runes) {
		return s
	}
	return string(runes[:index]) + sub + string(runes[index:])
}

// Repeat returns n copies of s; n <= 0 yields the empty string
func Repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}
