// File: codec.go
// Title: Codecs, Slugs and Markup Cleanup
// Description: Base64, hex escape, URL and HTML codecs, ASCII folding,
//              transliteration and slugs, UTF-8 repair, and the removal of
//              markup, line breaks and cross-site scripting payloads.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Hex escapes through utf8x

package stringy

import (
	"cmp"
	"encoding/base64"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/msto63/stringy/foundation/utils/asciix"
	"github.com/msto63/stringy/foundation/utils/utf8x"
)

// QuoteMode selects which quotes the HTML codecs convert
type QuoteMode = utf8x.QuoteMode

// Quote modes for HTMLEncode and HTMLDecode
const (
	QuotesDouble = utf8x.QuotesDouble
	QuotesBoth   = utf8x.QuotesBoth
	QuotesNone   = utf8x.QuotesNone
)

var xssPolicy = sync.OnceValue(func() *bluemonday.Policy {
	log().Debug("xss policy initialized")
	return bluemonday.UGCPolicy()
})

// Base64Encode encodes the text with standard padded base64
func (s Stringy) Base64Encode() Stringy {
	return s.derive(base64.StdEncoding.EncodeToString([]byte(s.str)))
}

// Base64Decode decodes standard base64. Invalid input yields the empty value.
func (s Stringy) Base64Decode() Stringy {
	out, err := base64.StdEncoding.Strict().DecodeString(s.str)
	if err != nil {
		return s.derive("")
	}
	return s.derive(string(out))
}

// HexEncode writes every codepoint as \x followed by at least four lowercase
// hex digits
func (s Stringy) HexEncode() Stringy {
	return s.derive(utf8x.HexEscape(s.str))
}

// HexDecode replaces \x escapes with the codepoints they name
func (s Stringy) HexDecode() Stringy {
	return s.derive(utf8x.HexUnescape(s.str))
}

// URLEncode encodes the text for a query string, spaces as "+"
func (s Stringy) URLEncode() Stringy {
	return s.derive(utf8x.URLEncode(s.str))
}

// URLEncodeRaw percent-encodes the text as a path segment, spaces as "%20"
func (s Stringy) URLEncodeRaw() Stringy {
	return s.derive(utf8x.URLEncodeRaw(s.str))
}

// URLDecode reverses URLEncode
func (s Stringy) URLDecode() Stringy {
	return s.derive(utf8x.URLDecode(s.str))
}

// URLDecodeRaw reverses URLEncodeRaw
func (s Stringy) URLDecodeRaw() Stringy {
	return s.derive(utf8x.URLDecodeRaw(s.str))
}

// URLDecodeMulti decodes repeatedly until the text is stable, including
// %uXXXX escapes
func (s Stringy) URLDecodeMulti() Stringy {
	return s.derive(utf8x.URLDecodeMulti(s.str))
}

// URLDecodeRawMulti is URLDecodeMulti keeping "+" as is
func (s Stringy) URLDecodeRawMulti() Stringy {
	return s.derive(utf8x.URLDecodeRawMulti(s.str))
}

// HTMLEncode converts every character with a named or numeric entity.
// The quote mode defaults to QuotesDouble.
func (s Stringy) HTMLEncode(mode ...QuoteMode) Stringy {
	return s.derive(utf8x.HTMLEncode(s.str, option(mode)))
}

// HTMLDecode converts entities back to characters
func (s Stringy) HTMLDecode(mode ...QuoteMode) Stringy {
	return s.derive(utf8x.HTMLDecode(s.str, option(mode)))
}

// Escape converts the HTML special characters, both quotes included
func (s Stringy) Escape() Stringy {
	return s.derive(utf8x.Escape(s.str))
}

// Slugify converts the text into a URL slug
func (s Stringy) Slugify(opts ...SlugOptions) Stringy {
	return s.derive(asciix.Slugify(s.str, option(opts)))
}

// URLify builds a slug of at most 200 codepoints without spelling out symbols
func (s Stringy) URLify(opts ...URLifyOptions) Stringy {
	o := option(opts)
	return s.derive(asciix.URLify(s.str, o.Separator, cmp.Or(o.Language, asciix.DefaultLanguage), o.Replacements, !o.KeepCase))
}

// ToASCII folds the text to ASCII with the rules of the given language
func (s Stringy) ToASCII(opts ...ASCIIOptions) Stringy {
	o := option(opts)
	return s.derive(asciix.ToASCII(s.str, cmp.Or(o.Language, asciix.DefaultLanguage), !o.KeepUnsupported))
}

// ToTransliterate folds the text to ASCII without language rules. Characters
// without a transliteration become "?" unless configured otherwise.
func (s Stringy) ToTransliterate(opts ...TransliterateOptions) Stringy {
	o := option(opts)
	unknown := cmp.Or(o.Unknown, "?")
	if o.DropUnknown {
		unknown = ""
	}
	return s.derive(asciix.Transliterate(s.str, o.Strict, unknown))
}

// Tidy replaces the smart quotes, dashes and ellipsis of word processors
// with their ASCII forms
func (s Stringy) Tidy() Stringy {
	return s.derive(asciix.Tidy(s.str))
}

// Utf8ify repairs invalid or doubly encoded UTF-8 and strips the byte order
// mark and control characters
func (s Stringy) Utf8ify() Stringy {
	return s.derive(utf8x.Utf8ify(s.str))
}

// RemoveHTML strips tags except those listed in allowableTags ("<b><i>")
func (s Stringy) RemoveHTML(allowableTags ...string) Stringy {
	return s.derive(utf8x.StripTags(s.str, optChars(allowableTags)))
}

// RemoveHTMLBreak replaces line breaks and <br> tags with replacement
func (s Stringy) RemoveHTMLBreak(replacement ...string) Stringy {
	return s.derive(utf8x.RemoveHTMLBreak(s.str, optChars(replacement)))
}

// NewLineToHTMLBreak replaces line breaks with "<br>"
func (s Stringy) NewLineToHTMLBreak() Stringy {
	return s.RemoveHTMLBreak("<br>")
}

// RemoveXSS sanitizes the text with a policy for user generated content
func (s Stringy) RemoveXSS() Stringy {
	return s.derive(xssPolicy().Sanitize(s.str))
}

// StripeCSSMediaQueries removes @media blocks from a style sheet
func (s Stringy) StripeCSSMediaQueries() Stringy {
	return s.derive(utf8x.StripMediaQueries(s.str))
}

// StripeEmptyHTMLTags removes elements without content
func (s Stringy) StripeEmptyHTMLTags() Stringy {
	return s.derive(utf8x.StripEmptyTags(s.str))
}
