// File: html.go
// Title: HTML Codecs and Tag Handling
// Description: Entity encoding and decoding with quote handling flags, special
//              character escaping, tag stripping with allowable tags on top of
//              the golang.org/x/net/html tokenizer, and break/tag cleanup.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package utf8x

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	mdwlog "github.com/msto63/stringy/foundation/core/log"
)

// QuoteMode selects which quote characters the HTML codecs convert
type QuoteMode int

const (
	// QuotesDouble converts double quotes and leaves single quotes alone
	QuotesDouble QuoteMode = iota
	// QuotesBoth converts double and single quotes
	QuotesBoth
	// QuotesNone leaves both quote characters unconverted
	QuotesNone
)

var latin1Entities = [...]string{
	"nbsp", "iexcl", "cent", "pound", "curren", "yen", "brvbar", "sect",
	"uml", "copy", "ordf", "laquo", "not", "shy", "reg", "macr",
	"deg", "plusmn", "sup2", "sup3", "acute", "micro", "para", "middot",
	"cedil", "sup1", "ordm", "raquo", "frac14", "frac12", "frac34", "iquest",
	"Agrave", "Aacute", "Acirc", "Atilde", "Auml", "Aring", "AElig", "Ccedil",
	"Egrave", "Eacute", "Ecirc", "Euml", "Igrave", "Iacute", "Icirc", "Iuml",
	"ETH", "Ntilde", "Ograve", "Oacute", "Ocirc", "Otilde", "Ouml", "times",
	"Oslash", "Ugrave", "Uacute", "Ucirc", "Uuml", "Yacute", "THORN", "szlig",
	"agrave", "aacute", "acirc", "atilde", "auml", "aring", "aelig", "ccedil",
	"egrave", "eacute", "ecirc", "euml", "igrave", "iacute", "icirc", "iuml",
	"eth", "ntilde", "ograve", "oacute", "ocirc", "otilde", "ouml", "divide",
	"oslash", "ugrave", "uacute", "ucirc", "uuml", "yacute", "thorn", "yuml",
}

func buildEntityTable() map[rune]string {
	table := make(map[rune]string, len(latin1Entities)+16)
	for i, name := range latin1Entities {
		table[rune(0xA0+i)] = name
	}
	for r, name := range map[rune]string{
		'Œ': "OElig", 'œ': "oelig", 'Š': "Scaron", 'š': "scaron", 'Ÿ': "Yuml",
		'ƒ': "fnof", 'ˆ': "circ", '˜': "tilde", '–': "ndash", '—': "mdash",
		'‘': "lsquo", '’': "rsquo", '‚': "sbquo", '“': "ldquo", '”': "rdquo",
		'„': "bdquo", '†': "dagger", '‡': "Dagger", '•': "bull", '…': "hellip",
		'‰': "permil", '‹': "lsaquo", '›': "rsaquo", '€': "euro", '™': "trade",
	} {
		table[r] = name
	}
	return table
}

// HTMLEncode converts every applicable character to an HTML entity. Characters
// without a named entity outside ASCII become numeric entities.
func HTMLEncode(s string, mode QuoteMode) string {
	entities := Default().entityByRune
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for _, r := range s {
		switch {
		case r == '&':
			b.WriteString("&amp;")
		case r == '<':
			b.WriteString("&lt;")
		case r == '>':
			b.WriteString("&gt;")
		case r == '"' && mode != QuotesNone:
			b.WriteString("&quot;")
		case r == '\'' && mode == QuotesBoth:
			b.WriteString("&#039;")
		case r < utf8.RuneSelf:
			b.WriteRune(r)
		default:
			if name, ok := entities[r]; ok {
				b.WriteString("&" + name + ";")
			} else {
				fmt.Fprintf(&b, "&#%d;", r)
			}
		}
	}
	return b.String()
}

var reEntity = regexp.MustCompile(`&(?:#[0-9]+|#[xX][0-9A-Fa-f]+|[A-Za-z][A-Za-z0-9]*);`)

func isSingleQuoteEntity(e string) bool {
	switch strings.ToLower(e) {
	case "&#39;", "&#039;", "&#x27;", "&apos;":
		return true
	}
	return false
}

func isDoubleQuoteEntity(e string) bool {
	switch strings.ToLower(e) {
	case "&#34;", "&#034;", "&#x22;", "&quot;":
		return true
	}
	return false
}

// HTMLDecode converts HTML entities back to characters. Nested encodings such
// as "&amp;lt;" are decoded until the text is stable.
func HTMLDecode(s string, mode QuoteMode) string {
	if !strings.Contains(s, "&") {
		return s
	}
	for {
		decoded := reEntity.ReplaceAllStringFunc(s, func(e string) string {
			if mode != QuotesBoth && isSingleQuoteEntity(e) {
				return e
			}
			if mode == QuotesNone && isDoubleQuoteEntity(e) {
				return e
			}
			return html.UnescapeString(e)
		})
		if decoded == s {
			return decoded
		}
		s = decoded
	}
}

// Escape converts the HTML special characters including both quotes
func Escape(s string) string {
	return strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#039;",
	).Replace(s)
}

// allowedTags parses a list such as "<p><a>" into tag names
func allowedTags(allowable string) map[string]bool {
	tags := map[string]bool{}
	for _, part := range strings.Split(allowable, "<") {
		name := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(part), ">"))
		name = strings.TrimPrefix(name, "/")
		if name != "" {
			tags[strings.ToLower(name)] = true
		}
	}
	return tags
}

// StripTags removes HTML and PHP-style markup, keeping tags whose names appear
// in allowable. Comments and doctypes are always removed.
func StripTags(s, allowable string) string {
	if !strings.ContainsAny(s, "<>") {
		return s
	}
	allowed := allowedTags(allowable)
	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	b.Grow(len(s))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				log().Debug("html tokenizer stopped early", mdwlog.Err(z.Err()))
			}
			return b.String()
		case html.TextToken:
			b.Write(z.Raw())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			raw := string(z.Raw())
			name, _ := z.TagName()
			if allowed[strings.ToLower(string(name))] {
				b.WriteString(raw)
			}
		}
	}
}

// IsHTML reports whether s contains at least one tag
func IsHTML(s string) bool {
	if s == "" {
		return false
	}
	return Default().reHTMLTag.MatchString(s)
}

// RemoveHTMLBreak replaces line breaks and <br> tags with replacement. A
// "\r\n" pair counts as one break.
func RemoveHTMLBreak(s, replacement string) string {
	return Default().reHTMLBreak.ReplaceAllLiteralString(s, replacement)
}

// StripEmptyTags removes element pairs that contain only whitespace
func StripEmptyTags(s string) string {
	return Default().reEmptyTag.ReplaceAllLiteralString(s, "")
}

// StripMediaQueries removes CSS @media blocks
func StripMediaQueries(s string) string {
	return Default().reMediaQuery.ReplaceAllLiteralString(s, "")
}
