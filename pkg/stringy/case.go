// File: case.go
// Title: Case Transformations and Case Styles
// Description: Language aware case mapping, title casing for headings and
//              personal names, and the camel, studly, snake, kebab and
//              delimited case styles.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package stringy

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/msto63/stringy/foundation/utils/utf8x"
)

var (
	reCamelSeparator = regexp.MustCompile(`[-_\s]+(.)?`)
	reCamelDigits    = regexp.MustCompile(`\p{N}+(.)?`)
	reLeadingDashes  = regexp.MustCompile(`^[-_]+`)
	reDelimiters     = regexp.MustCompile(`[\-_\s]+`)
	reSnakeRuns      = regexp.MustCompile(`_+`)
	reNonSpace       = regexp.MustCompile(`\S+`)
)

// smallWords stay lowercase inside a human readable title
var smallWords = []string{
	"a", "an", "and", "as", "at", "but", "by", "en", "for", "if", "in",
	"of", "on", "or", "the", "to", "v", "v.", "via", "vs", "vs.",
}

// nameParticles stay lowercase inside a personal name
var nameParticles = map[string]bool{
	"ab": true, "af": true, "al": true, "ap": true, "bin": true, "bint": true,
	"da": true, "de": true, "del": true, "della": true, "den": true, "der": true,
	"di": true, "dit": true, "dos": true, "du": true, "ibn": true, "la": true,
	"le": true, "ten": true, "ter": true, "van": true, "von": true, "y": true,
	"zu": true,
}

// ToLowerCase lowercases the text
func (s Stringy) ToLowerCase(opts ...CaseOptions) Stringy {
	o := option(opts)
	return s.derive(utf8x.ToLower(s.str, o.Language, o.KeepLength))
}

// ToUpperCase uppercases the text. Without KeepLength "ß" becomes "SS".
func (s Stringy) ToUpperCase(opts ...CaseOptions) Stringy {
	o := option(opts)
	return s.derive(utf8x.ToUpper(s.str, o.Language, o.KeepLength))
}

// LowerCaseFirst lowercases the first codepoint
func (s Stringy) LowerCaseFirst(opts ...CaseOptions) Stringy {
	return s.derive(utf8x.LowerFirst(s.str, option(opts).Language))
}

// UpperCaseFirst uppercases the first codepoint
func (s Stringy) UpperCaseFirst(opts ...CaseOptions) Stringy {
	return s.derive(utf8x.UpperFirst(s.str, option(opts).Language))
}

// SwapCase inverts the case of every codepoint
func (s Stringy) SwapCase() Stringy {
	return s.derive(utf8x.SwapCase(s.str))
}

// ToTitleCase uppercases the first letter of every word and lowercases the rest
func (s Stringy) ToTitleCase(opts ...CaseOptions) Stringy {
	return s.derive(utf8x.Title(s.str, option(opts).Language))
}

// Titleize capitalizes every word. Words are separated by whitespace and the
// characters of WordChars; words in Ignore are left untouched.
func (s Stringy) Titleize(opts ...TitleizeOptions) Stringy {
	o := option(opts)
	isSeparator := func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(o.WordChars, r)
	}

	var b strings.Builder
	b.Grow(len(s.str))
	rest := s.str
	for rest != "" {
		end := strings.IndexFunc(rest, isSeparator)
		if end == 0 {
			_, size := utf8.DecodeRuneInString(rest)
			b.WriteString(rest[:size])
			rest = rest[size:]
			continue
		}
		if end < 0 {
			end = len(rest)
		}
		word := rest[:end]
		if slices.Contains(o.Ignore, word) {
			b.WriteString(word)
		} else {
			b.WriteString(utf8x.TitleWord(word, o.Language))
		}
		rest = rest[end:]
	}
	return s.derive(b.String())
}

// TitleizeForHumans title cases the text for headlines: small words such as
// "of" or "the" stay lowercase unless they open or close the title or follow
// a colon. Words with inner capitals or dots ("iPhone", "example.com") are
// kept. ignore adds words to the small word list.
func (s Stringy) TitleizeForHumans(ignore ...string) Stringy {
	small := make(map[string]bool, len(smallWords)+len(ignore))
	for _, w := range smallWords {
		small[w] = true
	}
	for _, w := range ignore {
		small[strings.ToLower(w)] = true
	}

	text := utf8x.Trim(s.str, "")
	spans := reNonSpace.FindAllStringIndex(text, -1)
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for i, span := range spans {
		b.WriteString(text[last:span[0]])
		word := text[span[0]:span[1]]
		opensClause := i == 0 || strings.HasSuffix(text[spans[i-1][0]:spans[i-1][1]], ":")
		closes := i == len(spans)-1
		b.WriteString(humanWord(word, small, opensClause || closes))
		last = span[1]
	}
	b.WriteString(text[last:])
	return s.derive(b.String())
}

func humanWord(word string, small map[string]bool, edge bool) string {
	lead := strings.IndexFunc(word, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) })
	if lead < 0 {
		return word
	}
	prefix, core := word[:lead], word[lead:]
	bare := strings.TrimRightFunc(core, unicode.IsPunct)

	switch {
	case hasInnerUpper(bare) || strings.ContainsAny(strings.TrimSuffix(bare, "."), ".@/"):
		return word
	case small[strings.ToLower(bare)] || small[strings.ToLower(core)]:
		if edge {
			return prefix + utf8x.UpperFirst(strings.ToLower(core), "")
		}
		return prefix + strings.ToLower(core)
	}

	parts := strings.Split(core, "-")
	for i, p := range parts {
		if i > 0 && small[strings.ToLower(p)] {
			parts[i] = strings.ToLower(p)
			continue
		}
		parts[i] = utf8x.UpperFirst(p, "")
	}
	return prefix + strings.Join(parts, "-")
}

func hasInnerUpper(word string) bool {
	for i, r := range word {
		if i > 0 && unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// CapitalizePersonalName capitalizes the parts of a personal name, including
// hyphenated parts, "Mc" and "O'" prefixes. Name particles such as "van" or
// "de" stay lowercase unless they open the name.
func (s Stringy) CapitalizePersonalName() Stringy {
	name := utf8x.CollapseWhitespace(s.str)
	words := strings.Split(name, " ")
	for i, w := range words {
		parts := strings.Split(w, "-")
		for j, p := range parts {
			parts[j] = capitalizeNamePart(p, i == 0 && j == 0)
		}
		words[i] = strings.Join(parts, "-")
	}
	return s.derive(strings.Join(words, " "))
}

func capitalizeNamePart(part string, first bool) string {
	lower := utf8x.ToLower(part, "", false)
	if !first && nameParticles[lower] {
		return lower
	}
	if rest, ok := strings.CutPrefix(lower, "mc"); ok && rest != "" {
		return "Mc" + utf8x.UpperFirst(rest, "")
	}
	if i := strings.IndexAny(lower, "'’"); i > 0 && i < len(lower)-1 && utf8x.Len(lower[:i]) == 1 {
		_, size := utf8.DecodeRuneInString(lower[i:])
		return utf8x.UpperFirst(lower[:i], "") + lower[i:i+size] + utf8x.UpperFirst(lower[i+size:], "")
	}
	return utf8x.UpperFirst(lower, "")
}

// replaceSubmatch replaces every match of re with the result of fn, which
// receives the full match and the first group
func replaceSubmatch(re *regexp.Regexp, str string, fn func(match, group string) string) string {
	var b strings.Builder
	last := 0
	for _, m := range re.FindAllStringSubmatchIndex(str, -1) {
		b.WriteString(str[last:m[0]])
		group := ""
		if m[2] >= 0 {
			group = str[m[2]:m[3]]
		}
		b.WriteString(fn(str[m[0]:m[1]], group))
		last = m[1]
	}
	b.WriteString(str[last:])
	return b.String()
}

// Camelize converts the text to camelCase: separators (spaces, "-", "_") are
// removed and the following character uppercased, as is the character after
// a run of digits
func (s Stringy) Camelize() Stringy {
	str := utf8x.LowerFirst(utf8x.Trim(s.str, ""), "")
	str = reLeadingDashes.ReplaceAllString(str, "")
	str = replaceSubmatch(reCamelSeparator, str, func(_, group string) string {
		return utf8x.ToUpper(group, "", false)
	})
	str = replaceSubmatch(reCamelDigits, str, func(match, _ string) string {
		return utf8x.ToUpper(match, "", false)
	})
	return s.derive(str)
}

// UpperCamelize is Camelize with an uppercase first character
func (s Stringy) UpperCamelize() Stringy {
	return s.derive(utf8x.UpperFirst(s.Camelize().str, ""))
}

// wordPieces returns the non-blank word pieces of the text
func (s Stringy) wordPieces() []string {
	return utf8x.Words(s.str, "", true, 0)
}

// StudlyCase uppercases the first character of every word and joins them
func (s Stringy) StudlyCase() Stringy {
	words := s.wordPieces()
	for i, w := range words {
		words[i] = utf8x.UpperFirst(w, "")
	}
	return s.derive(strings.Join(words, ""))
}

// PascalCase is an alias for StudlyCase
func (s Stringy) PascalCase() Stringy {
	return s.StudlyCase()
}

func (s Stringy) joinLowerWords(sep string) Stringy {
	words := s.wordPieces()
	for i, w := range words {
		words[i] = utf8x.ToLower(w, "", false)
	}
	return s.derive(strings.Join(words, sep))
}

// SnakeCase lowercases the words and joins them with "_"
func (s Stringy) SnakeCase() Stringy {
	return s.joinLowerWords("_")
}

// KebabCase lowercases the words and joins them with "-"
func (s Stringy) KebabCase() Stringy {
	return s.joinLowerWords("-")
}

// Snakeize converts camel case and spaced text to snake_case. Digits become
// separate segments.
func (s Stringy) Snakeize() Stringy {
	if s.str == "" {
		return s
	}
	str := strings.ReplaceAll(utf8x.CollapseWhitespace(s.str), "-", "_")

	var b strings.Builder
	b.Grow(len(str) + 8)
	for _, r := range str {
		switch {
		case unicode.IsDigit(r):
			b.WriteByte('_')
			b.WriteRune(r)
			b.WriteByte('_')
		case unicode.IsUpper(r):
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}
	str = reSnakeRuns.ReplaceAllString(b.String(), "_")
	return s.derive(strings.Trim(str, "_ "))
}

// Delimit lowercases the text, splits camel case humps and replaces runs of
// spaces, "-" and "_" with delimiter
func (s Stringy) Delimit(delimiter string) Stringy {
	str := utf8x.Trim(s.str, "")
	var b strings.Builder
	b.Grow(len(str) + 8)
	prevWord := false
	for _, r := range str {
		if prevWord && unicode.IsUpper(r) {
			b.WriteByte('-')
		}
		b.WriteRune(r)
		prevWord = unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
	}
	str = utf8x.ToLower(b.String(), "", false)
	return s.derive(reDelimiters.ReplaceAllLiteralString(str, delimiter))
}

// Dasherize is Delimit with "-"
func (s Stringy) Dasherize() Stringy {
	return s.Delimit("-")
}

// Underscored is Delimit with "_"
func (s Stringy) Underscored() Stringy {
	return s.Delimit("_")
}

// Humanize removes "_id", turns underscores into spaces and capitalizes the
// first character
func (s Stringy) Humanize() Stringy {
	str := strings.NewReplacer("_id", "", "_", " ").Replace(s.str)
	return s.derive(utf8x.UpperFirst(utf8x.Trim(str, ""), ""))
}
