// File: extract.go
// Title: Substring Extraction
// Description: Positional extraction (substr, slice, first, last, nth) and
//              extraction relative to separators and needles.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package stringy

import (
	"strings"

	"github.com/msto63/stringy/foundation/utils/utf8x"
)

// Substr returns length codepoints starting at start. A negative start counts
// from the end. Without length the rest of the text is returned.
func (s Stringy) Substr(start int, length ...int) Stringy {
	return s.derive(utf8x.Substr(s.str, start, length...))
}

// Substring is an alias for Substr
func (s Stringy) Substring(start int, length ...int) Stringy {
	return s.Substr(start, length...)
}

// Slice returns the codepoints from start up to, but excluding, end
func (s Stringy) Slice(start int, end ...int) Stringy {
	return s.derive(utf8x.Slice(s.str, start, end...))
}

// First returns the first n codepoints; n <= 0 yields the empty value
func (s Stringy) First(n int) Stringy {
	if n <= 0 {
		return s.derive("")
	}
	return s.derive(utf8x.Substr(s.str, 0, n))
}

// Last returns the last n codepoints; n <= 0 yields the empty value
func (s Stringy) Last(n int) Stringy {
	if n <= 0 {
		return s.derive("")
	}
	return s.derive(utf8x.Substr(s.str, -n))
}

// Before returns the text preceding the first occurrence of separator, or the
// empty value when separator does not occur
func (s Stringy) Before(separator string) Stringy {
	if separator == "" {
		return s.derive("")
	}
	before, _, found := strings.Cut(s.str, separator)
	if !found {
		return s.derive("")
	}
	return s.derive(before)
}

// After splits the text on separator, drops the first piece and joins the
// remaining pieces with a single space
func (s Stringy) After(separator string) Stringy {
	if separator == "" {
		return s.derive("")
	}
	pieces := strings.Split(s.str, separator)
	return s.derive(strings.Join(pieces[1:], " "))
}

func (s Stringy) splitOnce(separator string, last, ignoreCase, wantAfter bool) Stringy {
	before, after, found := utf8x.SplitOnce(s.str, separator, last, ignoreCase)
	switch {
	case !found:
		return s.derive("")
	case wantAfter:
		return s.derive(after)
	default:
		return s.derive(before)
	}
}

// BeforeFirst returns the text before the first separator, or empty
func (s Stringy) BeforeFirst(separator string) Stringy {
	return s.splitOnce(separator, false, false, false)
}

// BeforeFirstIgnoreCase is BeforeFirst with case insensitive matching
func (s Stringy) BeforeFirstIgnoreCase(separator string) Stringy {
	return s.splitOnce(separator, false, true, false)
}

// BeforeLast returns the text before the last separator, or empty
func (s Stringy) BeforeLast(separator string) Stringy {
	return s.splitOnce(separator, true, false, false)
}

// BeforeLastIgnoreCase is BeforeLast with case insensitive matching
func (s Stringy) BeforeLastIgnoreCase(separator string) Stringy {
	return s.splitOnce(separator, true, true, false)
}

// AfterFirst returns the text after the first separator, or empty
func (s Stringy) AfterFirst(separator string) Stringy {
	return s.splitOnce(separator, false, false, true)
}

// AfterFirstIgnoreCase is AfterFirst with case insensitive matching
func (s Stringy) AfterFirstIgnoreCase(separator string) Stringy {
	return s.splitOnce(separator, false, true, true)
}

// AfterLast returns the text after the last separator, or empty
func (s Stringy) AfterLast(separator string) Stringy {
	return s.splitOnce(separator, true, false, true)
}

// AfterLastIgnoreCase is AfterLast with case insensitive matching
func (s Stringy) AfterLastIgnoreCase(separator string) Stringy {
	return s.splitOnce(separator, true, true, true)
}

// Between returns the text between the first start found at or after offset
// and the next end. Missing delimiters yield the empty value.
func (s Stringy) Between(start, end string, offset ...int) Stringy {
	from := 0
	if len(offset) > 0 {
		from = offset[0]
	}
	startIndex := utf8x.IndexOf(s.str, start, from, false)
	if startIndex < 0 {
		return s.derive("")
	}
	substrIndex := startIndex + utf8x.Len(start)
	endIndex := utf8x.IndexOf(s.str, end, substrIndex, false)
	if endIndex < 0 || endIndex == substrIndex {
		return s.derive("")
	}
	return s.derive(utf8x.Substr(s.str, substrIndex, endIndex-substrIndex))
}

func (s Stringy) substringOf(needle string, last, ignoreCase bool, beforeNeedle []bool) Stringy {
	if needle == "" || s.str == "" {
		return s.derive("")
	}
	var idx int
	if last {
		idx = utf8x.LastIndexOf(s.str, needle, 0, ignoreCase)
	} else {
		idx = utf8x.IndexOf(s.str, needle, 0, ignoreCase)
	}
	if idx < 0 {
		return s.derive("")
	}
	if len(beforeNeedle) > 0 && beforeNeedle[0] {
		return s.derive(utf8x.Substr(s.str, 0, idx))
	}
	return s.derive(utf8x.Substr(s.str, idx))
}

// SubstringOf returns the text from the first needle to the end. With
// beforeNeedle it returns the text up to that needle instead.
func (s Stringy) SubstringOf(needle string, beforeNeedle ...bool) Stringy {
	return s.substringOf(needle, false, false, beforeNeedle)
}

// SubstringOfIgnoreCase is SubstringOf with case insensitive matching
func (s Stringy) SubstringOfIgnoreCase(needle string, beforeNeedle ...bool) Stringy {
	return s.substringOf(needle, false, true, beforeNeedle)
}

// LastSubstringOf is SubstringOf anchored at the last needle
func (s Stringy) LastSubstringOf(needle string, beforeNeedle ...bool) Stringy {
	return s.substringOf(needle, true, false, beforeNeedle)
}

// LastSubstringOfIgnoreCase is LastSubstringOf with case insensitive matching
func (s Stringy) LastSubstringOfIgnoreCase(needle string, beforeNeedle ...bool) Stringy {
	return s.substringOf(needle, true, true, beforeNeedle)
}

// Nth returns the codepoints at offset, offset+step, offset+2*step and so on.
// A step below one yields the empty value.
func (s Stringy) Nth(step int, offset ...int) Stringy {
	if step < 1 {
		return s.derive("")
	}
	from := 0
	if len(offset) > 0 {
		from = offset[0]
	}
	runes := []rune(utf8x.Substr(s.str, from))
	var b strings.Builder
	for i := 0; i < len(runes); i += step {
		b.WriteRune(runes[i])
	}
	return s.derive(b.String())
}
