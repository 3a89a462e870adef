// File: slug.go
// Title: URL Slugs
// Description: Builds lowercase, separator joined ASCII slugs from arbitrary
//              text with per-language symbol names and caller replacements.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package asciix

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// DefaultSeparator joins slug words unless another separator is given
const DefaultSeparator = "-"

// URLMaxLength bounds the result of URLify in codepoints
const URLMaxLength = 200

// SlugOptions controls Slugify. The zero value produces a lowercase slug
// joined by "-" with English symbol names.
type SlugOptions struct {
	Separator        string
	Language         string
	Replacements     map[string]string
	SkipExtraSymbols bool
	KeepCase         bool
	Transliterate    bool
}

type slugRule struct {
	invalid *regexp.Regexp
	runs    *regexp.Regexp
}

func (b *Backend) slugRule(sep string) *slugRule {
	if r, ok := b.slugRules.Load(sep); ok {
		return r.(*slugRule)
	}
	quoted := regexp.QuoteMeta(sep)
	rule := &slugRule{
		invalid: regexp.MustCompile(`[^a-zA-Z\d\s\-_` + quoted + `]`),
		runs:    regexp.MustCompile(`(?:[\-_\s]` + orEmpty(quoted) + `)+`),
	}
	actual, _ := b.slugRules.LoadOrStore(sep, rule)
	return actual.(*slugRule)
}

func orEmpty(quoted string) string {
	if quoted == "" {
		return ""
	}
	return "|" + quoted
}

// Slugify converts s to a slug suitable for URL paths
func Slugify(s string, opts SlugOptions) string {
	sep := opts.Separator
	if sep == "" {
		sep = DefaultSeparator
	}
	lang := cmp.Or(opts.Language, DefaultLanguage)
	if s == "" {
		return ""
	}

	s = applyReplacements(s, opts.Replacements)
	if !opts.SkipExtraSymbols {
		s = replaceSymbols(s, lang)
	}
	if opts.Transliterate {
		s = Transliterate(s, false, "")
	} else {
		s = ToASCII(s, lang, true)
	}
	s = strings.ReplaceAll(s, "@", sep)

	rule := Default().slugRule(sep)
	s = rule.invalid.ReplaceAllString(s, "")
	if !opts.KeepCase {
		s = strings.ToLower(s)
	}
	s = rule.runs.ReplaceAllLiteralString(s, sep)
	return trimSeparator(s, sep)
}

// URLify builds a slug for use in URLs without symbol names. The result is
// cut at a separator so it stays within URLMaxLength.
func URLify(s, sep, lang string, replacements map[string]string, lower bool) string {
	if sep == "" {
		sep = DefaultSeparator
	}
	slug := Slugify(s, SlugOptions{
		Separator:        sep,
		Language:         lang,
		Replacements:     replacements,
		SkipExtraSymbols: true,
		KeepCase:         !lower,
	})
	if utf8.RuneCountInString(slug) <= URLMaxLength {
		return slug
	}
	cut := slug[:URLMaxLength]
	if i := strings.LastIndex(cut, sep); i > 0 {
		cut = cut[:i]
	}
	return trimSeparator(cut, sep)
}

// applyReplacements substitutes caller supplied pairs, longest search first
func applyReplacements(s string, replacements map[string]string) string {
	if len(replacements) == 0 {
		return s
	}
	keys := make([]string, 0, len(replacements))
	for k := range replacements {
		if k != "" {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	for _, k := range keys {
		s = strings.ReplaceAll(s, k, replacements[k])
	}
	return s
}

// replaceSymbols spells out &, @, % and friends in the given language
func replaceSymbols(s, lang string) string {
	key := strings.ReplaceAll(strings.ToLower(lang), "-", "_")
	symbols, ok := slugSymbols[key]
	if !ok {
		symbols, ok = slugSymbols[strings.SplitN(key, "_", 2)[0]]
	}
	if !ok {
		symbols = slugSymbols[DefaultLanguage]
	}
	for symbol, word := range symbols {
		s = strings.ReplaceAll(s, symbol, " "+word+" ")
	}
	return s
}

func trimSeparator(s, sep string) string {
	for sep != "" && strings.HasPrefix(s, sep) {
		s = s[len(sep):]
	}
	for sep != "" && strings.HasSuffix(s, sep) {
		s = s[:len(s)-len(sep)]
	}
	return s
}
