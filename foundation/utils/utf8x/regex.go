// File: regex.go
// Title: Regular Expression Helpers
// Description: Pattern compilation with PHP style modifier letters, regex
//              splitting with a piece limit, wildcard matching, word splitting
//              that keeps delimiters and case insensitive literal replacement.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: ReplaceFold matches with strcase

package utf8x

import (
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/charlievieth/strcase"
	mdwerror "github.com/msto63/stringy/foundation/core/error"
	mdwerrors "github.com/msto63/stringy/foundation/core/errors"
)

// Compile compiles pattern with modifier letters: i (case insensitive),
// m (multi line), s (dot matches newline) and U (ungreedy). Other letters
// are ignored.
func Compile(pattern, modifiers string) (*regexp.Regexp, error) {
	var flags strings.Builder
	for _, m := range modifiers {
		if strings.ContainsRune("imsU", m) && !strings.ContainsRune(flags.String(), m) {
			flags.WriteRune(m)
		}
	}
	expr := pattern
	if flags.Len() > 0 {
		expr = "(?" + flags.String() + ")" + pattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleUtf8x).
			Operation("Compile").
			Message("invalid regular expression").
			Cause(err).
			Code(mdwerror.CodeInvalidFormat).
			Detail("pattern", pattern).
			Build()
	}
	return re, nil
}

var reBackref = regexp.MustCompile(`\\(\d+)|\$(\d+)|\$\{(\d+)\}`)

// expandTemplate converts "\1", "$1" and "${1}" references to the braced
// form understood by regexp.Expand and escapes every other "$"
func expandTemplate(replacement string) string {
	var b strings.Builder
	last := 0
	for _, m := range reBackref.FindAllStringSubmatchIndex(replacement, -1) {
		b.WriteString(strings.ReplaceAll(replacement[last:m[0]], "$", "$$"))
		var group string
		for k := 2; k < len(m); k += 2 {
			if m[k] >= 0 {
				group = replacement[m[k]:m[k+1]]
				break
			}
		}
		b.WriteString("${" + group + "}")
		last = m[1]
	}
	b.WriteString(strings.ReplaceAll(replacement[last:], "$", "$$"))
	return b.String()
}

// RegexReplace replaces every match of pattern in s. The replacement may
// reference groups as "\1", "$1" or "${1}".
func RegexReplace(s, pattern, replacement, modifiers string) (string, error) {
	re, err := Compile(pattern, modifiers)
	if err != nil {
		return "", err
	}
	return re.ReplaceAllString(s, expandTemplate(replacement)), nil
}

// SplitPattern splits s around matches of pattern. A positive limit returns at
// most that many leading pieces and drops the rest; a negative limit returns
// all pieces; zero returns none.
func SplitPattern(s, pattern string, limit int) ([]string, error) {
	if s == "" || limit == 0 {
		return []string{}, nil
	}
	if pattern == "" {
		return []string{s}, nil
	}
	re, err := Compile(pattern, "")
	if err != nil {
		return nil, err
	}
	if limit < 0 {
		return re.Split(s, -1), nil
	}
	pieces := re.Split(s, limit+1)
	if len(pieces) > limit {
		pieces = pieces[:limit]
	}
	return pieces, nil
}

// Wildcard reports whether s matches pattern in full, where "*" matches any
// run of characters
func Wildcard(s, pattern string) bool {
	if s == pattern {
		return true
	}
	parts := strings.Split(pattern, "*")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	re, err := regexp.Compile(`^` + strings.Join(parts, ".*") + `\z`)
	if err != nil {
		return false
	}
	return re.MatchString(s)
}

var wordPatterns sync.Map

// charClass escapes the characters of extra for use inside a bracket expression
func charClass(extra string) string {
	var b strings.Builder
	for _, r := range extra {
		if strings.ContainsRune(`\-]^[`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func wordPattern(extra string) *regexp.Regexp {
	if re, ok := wordPatterns.Load(extra); ok {
		return re.(*regexp.Regexp)
	}
	class := `[\pL` + charClass(extra) + `]`
	re := regexp.MustCompile(class + `+(?:[\p{Pd}’']` + class + `+)*`)
	wordPatterns.Store(extra, re)
	return re
}

// Words splits s into words and the text between them, keeping both in order
// so that joining the result yields s. Letters, the characters of extra and
// inner hyphens or apostrophes form words. removeEmpty drops blank pieces;
// pieces of minLen codepoints or fewer are dropped when minLen is positive.
func Words(s, extra string, removeEmpty bool, minLen int) []string {
	if s == "" {
		if removeEmpty {
			return []string{}
		}
		return []string{""}
	}
	var pieces []string
	last := 0
	for _, m := range wordPattern(extra).FindAllStringIndex(s, -1) {
		pieces = append(pieces, s[last:m[0]], s[m[0]:m[1]])
		last = m[1]
	}
	pieces = append(pieces, s[last:])

	if !removeEmpty && minLen <= 0 {
		return pieces
	}
	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if removeEmpty && IsBlank(p) {
			continue
		}
		if minLen > 0 && utf8.RuneCountInString(p) <= minLen {
			continue
		}
		out = append(out, p)
	}
	return out
}

// WordList returns only the words of s, as found by Words
func WordList(s, extra string) []string {
	return wordPattern(extra).FindAllString(s, -1)
}

// ReplaceFold replaces every case insensitive occurrence of search
func ReplaceFold(s, search, replacement string) string {
	if search == "" || s == "" {
		return s
	}
	n := Len(search)
	var b strings.Builder
	b.Grow(len(s))
	for {
		i := strcase.Index(s, search)
		if i < 0 {
			break
		}
		end := i + byteOffset(s[i:], n)
		b.WriteString(s[:i])
		b.WriteString(replacement)
		s = s[end:]
	}
	b.WriteString(s)
	return b.String()
}
