// File: url.go
// Title: URL Codecs
// Description: Form and raw percent encoding compatible with the common web
//              conventions, lenient decoders that keep malformed escapes,
//              repeated decoding for doubly encoded input, and \x escapes.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: HexEscape and HexUnescape

package utf8x

import (
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

// URLEncode encodes s for a query component: spaces become "+" and every
// byte outside [A-Za-z0-9-_.] is percent encoded
func URLEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "~", "%7E")
}

// URLEncodeRaw percent encodes s following RFC 3986: spaces become "%20" and
// "~" stays literal
func URLEncodeRaw(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// URLDecode decodes percent escapes and "+" as space. Malformed escapes are
// kept as they are.
func URLDecode(s string) string {
	return percentDecode(s, true)
}

// URLDecodeRaw decodes percent escapes; "+" stays literal
func URLDecodeRaw(s string) string {
	return percentDecode(s, false)
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func percentDecode(s string, plusAsSpace bool) string {
	if !strings.ContainsAny(s, "%+") {
		return s
	}
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '%' && i+2 < len(s):
			hi, ok1 := unhex(s[i+1])
			lo, ok2 := unhex(s[i+2])
			if ok1 && ok2 {
				out = append(out, hi<<4|lo)
				i += 2
				continue
			}
			out = append(out, c)
		case c == '+' && plusAsSpace:
			out = append(out, ' ')
		default:
			out = append(out, c)
		}
	}
	return string(out)
}

// decodePercentU turns the non-standard "%uXXXX" escapes into characters
func decodePercentU(s string) string {
	if !strings.Contains(s, "%u") {
		return s
	}
	return Default().rePercentU.ReplaceAllStringFunc(s, func(m string) string {
		n, err := strconv.ParseUint(m[2:], 16, 32)
		if err != nil {
			return m
		}
		return string(rune(n))
	})
}

// URLDecodeMulti decodes "%uXXXX" escapes, HTML entities and percent escapes
// repeatedly until the text no longer changes
func URLDecodeMulti(s string) string {
	return multiDecode(s, true)
}

// URLDecodeRawMulti is URLDecodeMulti without treating "+" as space
func URLDecodeRawMulti(s string) string {
	return multiDecode(s, false)
}

func multiDecode(s string, plusAsSpace bool) string {
	s = decodePercentU(s)
	for {
		decoded := Repair(percentDecode(HTMLDecode(s, QuotesBoth), plusAsSpace))
		if decoded == s {
			return decoded
		}
		s = decoded
	}
}

// HexEscape writes every codepoint as \x followed by at least four lowercase
// hex digits
func HexEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 6)
	for _, r := range s {
		b.WriteString(`\x`)
		hex := strconv.FormatInt(int64(r), 16)
		for range 4 - len(hex) {
			b.WriteByte('0')
		}
		b.WriteString(hex)
	}
	return b.String()
}

// HexUnescape replaces \x escapes with the codepoints they name. Escapes
// that name no valid codepoint are kept.
func HexUnescape(s string) string {
	return Default().reHexEscape.ReplaceAllStringFunc(s, func(m string) string {
		cp, err := strconv.ParseUint(m[2:], 16, 32)
		if err != nil || !utf8.ValidRune(rune(cp)) {
			return m
		}
		return string(rune(cp))
	})
}
