// File: search.go
// Title: Search and Equality
// Description: Index lookups, containment and affix predicates, wildcard
//              matching, occurrence counting and the variadic equality checks.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package stringy

import (
	"fmt"

	mdwerrors "github.com/msto63/stringy/foundation/core/errors"
	"github.com/msto63/stringy/foundation/utils/utf8x"
)

func optOffset(offset []int) int {
	if len(offset) > 0 {
		return offset[0]
	}
	return 0
}

// caseSensitive reads the optional trailing flag, which defaults to true
func caseSensitive(flag []bool) bool {
	return len(flag) == 0 || flag[0]
}

// IndexOf returns the codepoint index of the first needle at or after offset,
// or -1 when there is none
func (s Stringy) IndexOf(needle string, offset ...int) int {
	return utf8x.IndexOf(s.str, needle, optOffset(offset), false)
}

// IndexOfIgnoreCase is IndexOf with case insensitive matching
func (s Stringy) IndexOfIgnoreCase(needle string, offset ...int) int {
	return utf8x.IndexOf(s.str, needle, optOffset(offset), true)
}

// IndexOfLast returns the codepoint index of the last needle, or -1
func (s Stringy) IndexOfLast(needle string, offset ...int) int {
	return utf8x.LastIndexOf(s.str, needle, optOffset(offset), false)
}

// IndexOfLastIgnoreCase is IndexOfLast with case insensitive matching
func (s Stringy) IndexOfLastIgnoreCase(needle string, offset ...int) int {
	return utf8x.LastIndexOf(s.str, needle, optOffset(offset), true)
}

// Contains reports whether needle occurs in the text
func (s Stringy) Contains(needle string, cs ...bool) bool {
	return utf8x.Contains(s.str, needle, caseSensitive(cs))
}

// ContainsAll reports whether every needle occurs. An empty list is false.
func (s Stringy) ContainsAll(needles []string, cs ...bool) bool {
	if len(needles) == 0 {
		return false
	}
	for _, n := range needles {
		if !utf8x.Contains(s.str, n, caseSensitive(cs)) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether at least one needle occurs
func (s Stringy) ContainsAny(needles []string, cs ...bool) bool {
	for _, n := range needles {
		if utf8x.Contains(s.str, n, caseSensitive(cs)) {
			return true
		}
	}
	return false
}

// StartsWith reports whether the text begins with substring
func (s Stringy) StartsWith(substring string, cs ...bool) bool {
	return utf8x.HasPrefix(s.str, substring, caseSensitive(cs))
}

// StartsWithAny reports whether the text begins with one of substrings
func (s Stringy) StartsWithAny(substrings []string, cs ...bool) bool {
	for _, sub := range substrings {
		if utf8x.HasPrefix(s.str, sub, caseSensitive(cs)) {
			return true
		}
	}
	return false
}

// EndsWith reports whether the text ends with substring
func (s Stringy) EndsWith(substring string, cs ...bool) bool {
	return utf8x.HasSuffix(s.str, substring, caseSensitive(cs))
}

// EndsWithAny reports whether the text ends with one of substrings
func (s Stringy) EndsWithAny(substrings []string, cs ...bool) bool {
	for _, sub := range substrings {
		if utf8x.HasSuffix(s.str, sub, caseSensitive(cs)) {
			return true
		}
	}
	return false
}

// Is matches the whole text against pattern, where "*" matches any run of
// characters and everything else is literal
func (s Stringy) Is(pattern string) bool {
	return utf8x.Wildcard(s.str, pattern)
}

// In reports whether the text occurs in other
func (s Stringy) In(other string, cs ...bool) bool {
	return utf8x.Contains(other, s.str, caseSensitive(cs))
}

// CountSubstr returns the number of non-overlapping occurrences of substring
func (s Stringy) CountSubstr(substring string, cs ...bool) int {
	return utf8x.Count(s.str, substring, caseSensitive(cs))
}

// equalityText converts an equality argument to text. Only texts, values and
// numeric or boolean scalars are accepted.
func equalityText(operation string, value any) (string, error) {
	switch v := value.(type) {
	case string, Stringy, *Stringy, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		str, _ := stringOf(v)
		return str, nil
	}
	return "", mdwerrors.StringyInvalidInput(operation, fmt.Sprintf("%v", value), "int|float|string|Stringy").
		WithDetail("kind", mdwerrors.KindOf(value))
}

// IsEquals is an alias for IsEqualsCaseSensitive
func (s Stringy) IsEquals(values ...any) (bool, error) {
	return s.isEquals("IsEquals", values)
}

// IsEqualsCaseSensitive reports whether every argument has exactly the text of
// the value. Arguments other than texts, values and scalars fail with
// ErrInvalidInput.
func (s Stringy) IsEqualsCaseSensitive(values ...any) (bool, error) {
	return s.isEquals("IsEqualsCaseSensitive", values)
}

func (s Stringy) isEquals(operation string, values []any) (bool, error) {
	for _, v := range values {
		str, err := equalityText(operation, v)
		if err != nil {
			return false, err
		}
		if str != s.str {
			return false, nil
		}
	}
	return true, nil
}

// IsEqualsCaseInsensitive reports whether every argument equals the value
// after uppercase folding
func (s Stringy) IsEqualsCaseInsensitive(values ...any) (bool, error) {
	for _, v := range values {
		str, err := equalityText("IsEqualsCaseInsensitive", v)
		if err != nil {
			return false, err
		}
		if !utf8x.EqualFold(str, s.str) {
			return false, nil
		}
	}
	return true, nil
}

// MatchCaseSensitive is an alias for IsEqualsCaseSensitive
func (s Stringy) MatchCaseSensitive(values ...any) (bool, error) {
	return s.IsEqualsCaseSensitive(values...)
}

// MatchCaseInsensitive is an alias for IsEqualsCaseInsensitive
func (s Stringy) MatchCaseInsensitive(values ...any) (bool, error) {
	return s.IsEqualsCaseInsensitive(values...)
}
