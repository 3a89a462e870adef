// File: replace.go
// Title: Replacement
// Description: Literal replacement with case sensitivity variants, pairwise
//              and positional replacement, regular expression replacement and
//              stripping.
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
	"unicode"
	"unicode/utf8"

	mdwerrors "github.com/msto63/stringy/foundation/core/errors"
	"github.com/msto63/stringy/foundation/utils/utf8x"
)

// DefaultRegexDelimiter is the pattern delimiter assumed by RegexReplace
const DefaultRegexDelimiter = "/"

func replaceText(str, search, replacement string, cs bool) string {
	if cs {
		if search == "" {
			return str
		}
		return strings.ReplaceAll(str, search, replacement)
	}
	return utf8x.ReplaceFold(str, search, replacement)
}

// Replace replaces every occurrence of search. An empty text with an empty
// search yields replacement.
func (s Stringy) Replace(search, replacement string, cs ...bool) Stringy {
	if search == "" && replacement == "" {
		return s
	}
	if s.str == "" && search == "" {
		return s.derive(replacement)
	}
	return s.derive(replaceText(s.str, search, replacement, caseSensitive(cs)))
}

// ReplaceAll replaces every occurrence of each search term with replacement,
// one term after the other
func (s Stringy) ReplaceAll(search []string, replacement string, cs ...bool) Stringy {
	str := s.str
	for _, term := range search {
		str = replaceText(str, term, replacement, caseSensitive(cs))
	}
	return s.derive(str)
}

// ReplaceEach replaces search[i] with replacements[i]. Search terms without
// a matching replacement are removed.
func (s Stringy) ReplaceEach(search, replacements []string, cs ...bool) Stringy {
	str := s.str
	for i, term := range search {
		replacement := ""
		if i < len(replacements) {
			replacement = replacements[i]
		}
		str = replaceText(str, term, replacement, caseSensitive(cs))
	}
	return s.derive(str)
}

// ReplaceFirst replaces the first occurrence of search
func (s Stringy) ReplaceFirst(search, replacement string) Stringy {
	if search == "" {
		return s
	}
	return s.derive(strings.Replace(s.str, search, replacement, 1))
}

// ReplaceLast replaces the last occurrence of search
func (s Stringy) ReplaceLast(search, replacement string) Stringy {
	i := strings.LastIndex(s.str, search)
	if search == "" || i < 0 {
		return s
	}
	return s.derive(s.str[:i] + replacement + s.str[i+len(search):])
}

// ReplaceBeginning replaces search at the start of the text. An empty
// search prepends replacement.
func (s Stringy) ReplaceBeginning(search, replacement string) Stringy {
	if search == "" {
		return s.derive(replacement + s.str)
	}
	if rest, ok := strings.CutPrefix(s.str, search); ok {
		return s.derive(replacement + rest)
	}
	return s
}

// ReplaceEnding replaces search at the end of the text. An empty search
// appends replacement.
func (s Stringy) ReplaceEnding(search, replacement string) Stringy {
	if search == "" {
		return s.derive(s.str + replacement)
	}
	if rest, ok := strings.CutSuffix(s.str, search); ok {
		return s.derive(rest + replacement)
	}
	return s
}

// RegexReplace replaces matches of pattern. options holds single letter
// modifiers ("i", "m", "s", "U"); replacement may reference groups as
// $1 or \1. delimiter is the character that would enclose the pattern and
// may appear escaped inside it; it must be a single non-alphanumeric,
// non-whitespace character other than a backslash.
func (s Stringy) RegexReplace(pattern, replacement string, options string, delimiter ...string) (Stringy, error) {
	delim := DefaultRegexDelimiter
	if len(delimiter) > 0 && delimiter[0] != "" {
		delim = delimiter[0]
	}
	if r, size := utf8.DecodeRuneInString(delim); size != len(delim) || r == '\\' ||
		unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
		return Stringy{}, mdwerrors.StringyInvalidInput("RegexReplace", delim, "single non-alphanumeric delimiter")
	}
	out, err := utf8x.RegexReplace(s.str, pattern, replacement, options)
	if err != nil {
		return Stringy{}, backendError("RegexReplace", err).WithDetail("pattern", pattern)
	}
	return s.derive(out), nil
}

// Strip removes every occurrence of each search term
func (s Stringy) Strip(search ...string) Stringy {
	return s.ReplaceAll(search, "")
}
