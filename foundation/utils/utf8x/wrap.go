// File: wrap.go
// Title: Wrapping and Truncation
// Description: Codepoint aware word wrapping (optionally per line), word safe
//              truncation and excerpt extraction around a search term.
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
)

// WordWrap breaks s at spaces so that no line exceeds width codepoints. With
// cut, words longer than width are split as well. Existing occurrences of brk
// reset the line length.
func WordWrap(s string, width int, brk string, cut bool) string {
	text := []rune(s)
	br := []rune(brk)
	if len(text) == 0 || len(br) == 0 || (width == 0 && cut) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/max(width, 1)*len(brk))
	lastStart, lastSpace := 0, 0
	current := 0
	for ; current < len(text); current++ {
		switch {
		case text[current] == br[0] && current+len(br) < len(text) && runesEqualAt(text, br, current):
			b.WriteString(string(text[lastStart : current+len(br)]))
			current += len(br) - 1
			lastStart = current + 1
			lastSpace = lastStart
		case text[current] == ' ':
			if current-lastStart >= width {
				b.WriteString(string(text[lastStart:current]))
				b.WriteString(brk)
				lastStart = current + 1
			}
			lastSpace = current
		case current-lastStart >= width && cut && lastStart >= lastSpace:
			b.WriteString(string(text[lastStart:current]))
			b.WriteString(brk)
			lastStart = current
			lastSpace = current
		case current-lastStart >= width && lastStart < lastSpace:
			b.WriteString(string(text[lastStart:lastSpace]))
			b.WriteString(brk)
			lastSpace++
			lastStart = lastSpace
		}
	}
	if lastStart != current {
		b.WriteString(string(text[lastStart:current]))
	}
	return b.String()
}

// WordWrapPerLine wraps every line of s separately. Lines are found with
// delimiter, or with any line break when delimiter is empty, and joined again
// with delimiter (or "\n"). finalBreak appends brk to the result.
func WordWrapPerLine(s string, width int, brk string, cut, finalBreak bool, delimiter string) string {
	var lines []string
	joiner := delimiter
	if delimiter == "" {
		lines = SplitLines(s)
		joiner = "\n"
	} else {
		lines = strings.Split(s, delimiter)
	}
	for i, line := range lines {
		lines[i] = WordWrap(line, width, brk, cut)
	}
	out := strings.Join(lines, joiner)
	if finalBreak {
		out += brk
	}
	return out
}

// LimitAfterWord shortens s to at most length codepoints without splitting a
// word and appends addOn when anything was removed
func LimitAfterWord(s string, length int, addOn string) string {
	if s == "" || length <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	if runes[length-1] == ' ' {
		return string(runes[:length-1]) + addOn
	}
	cut := string(runes[:length])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		return cut[:i] + addOn
	}
	return string(runes[:length-1]) + addOn
}

// Truncate cuts s to length codepoints including suffix
func Truncate(s string, length int, suffix string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	if length >= len(runes) {
		return s
	}
	keep := max(length-Len(suffix), 0)
	return string(runes[:keep]) + suffix
}

// SafeTruncate cuts s to length codepoints including suffix without
// splitting the last word. A single word longer than the limit is cut
// anyway when keepSingleWord is set and dropped otherwise.
func SafeTruncate(s string, length int, suffix string, keepSingleWord bool) string {
	runes := []rune(s)
	if length >= len(runes) {
		return s
	}
	length -= Len(suffix)
	if length <= 0 {
		return suffix
	}
	truncated := runes[:length]
	if IndexOf(s, " ", length-1, false) != length {
		lastSpace := -1
		for i := len(truncated) - 1; i >= 0; i-- {
			if truncated[i] == ' ' {
				lastSpace = i
				break
			}
		}
		switch {
		case lastSpace >= 0:
			truncated = truncated[:lastSpace]
		case !keepSingleWord:
			truncated = nil
		}
	}
	return string(truncated) + suffix
}

const excerptTrimChars = "\t\r\n -_()!~?=+/*\\,.:;\"'[]{}`&"

// nextBreak returns the codepoint index of the nearest space or dot at or
// after offset, or -1
func nextBreak(s string, offset int) int {
	space := IndexOf(s, " ", offset, false)
	dot := IndexOf(s, ".", offset, false)
	switch {
	case space < 0:
		return dot
	case dot < 0:
		return space
	default:
		return min(space, dot)
	}
}

// Excerpt extracts about length codepoints of s around the first case
// insensitive occurrence of search and marks skipped text with replacer.
// A length of zero or less uses half of the text.
func Excerpt(s, search string, length int, replacer string) string {
	if s == "" {
		return ""
	}
	total := Len(s)
	if length <= 0 {
		length = (total + 1) / 2
	}

	if search == "" {
		end := min(length-1, total)
		if pos := nextBreak(s, max(end, 0)); pos > 0 {
			return strings.TrimRight(Substr(s, 0, pos), excerptTrimChars) + replacer
		}
		return s
	}

	wordPos := IndexOf(s, search, 0, true)
	halfSide := wordPos - length/2 + Len(search)/2

	posStart := 0
	if halfSide > 0 {
		half := Substr(s, 0, halfSide)
		posStart = max(LastIndexOf(half, " ", 0, false), LastIndexOf(half, ".", 0, false), 0)
	}

	if wordPos > 0 && halfSide > 0 {
		offset := min(posStart+length-1, total)
		posEnd := nextBreak(s, offset)
		if posEnd > 0 {
			posEnd -= posStart
		}
		if posEnd <= 0 {
			return replacer + strings.TrimLeft(Substr(s, posStart), excerptTrimChars)
		}
		return replacer + strings.Trim(Substr(s, posStart, posEnd), excerptTrimChars) + replacer
	}

	offset := min(length-1, total)
	if posEnd := nextBreak(s, max(offset, 0)); posEnd > 0 {
		return strings.TrimRight(Substr(s, 0, posEnd), excerptTrimChars) + replacer
	}
	return s
}
