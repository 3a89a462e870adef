// File: encoding.go
// Title: Encoding Names and Transcoding
// Description: Normalizes encoding names to their canonical spelling and
//              converts text between encodings with golang.org/x/text.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Encode in one pass for stateful encodings, ASCIICompatible

package utf8x

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"

	mdwerror "github.com/msto63/stringy/foundation/core/error"
	mdwerrors "github.com/msto63/stringy/foundation/core/errors"
	mdwlog "github.com/msto63/stringy/foundation/core/log"
)

// Canonical encoding names
const (
	UTF8  = "UTF-8"
	ASCII = "ASCII"
)

var encodingsByName = map[string]encoding.Encoding{
	UTF8:           nil,
	ASCII:          nil,
	"UTF-16":       unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	"UTF-16BE":     unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"UTF-16LE":     unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"ISO-8859-1":   charmap.ISO8859_1,
	"ISO-8859-2":   charmap.ISO8859_2,
	"ISO-8859-3":   charmap.ISO8859_3,
	"ISO-8859-4":   charmap.ISO8859_4,
	"ISO-8859-5":   charmap.ISO8859_5,
	"ISO-8859-6":   charmap.ISO8859_6,
	"ISO-8859-7":   charmap.ISO8859_7,
	"ISO-8859-8":   charmap.ISO8859_8,
	"ISO-8859-9":   charmap.ISO8859_9,
	"ISO-8859-10":  charmap.ISO8859_10,
	"ISO-8859-13":  charmap.ISO8859_13,
	"ISO-8859-14":  charmap.ISO8859_14,
	"ISO-8859-15":  charmap.ISO8859_15,
	"ISO-8859-16":  charmap.ISO8859_16,
	"WINDOWS-874":  charmap.Windows874,
	"WINDOWS-1250": charmap.Windows1250,
	"WINDOWS-1251": charmap.Windows1251,
	"WINDOWS-1252": charmap.Windows1252,
	"WINDOWS-1253": charmap.Windows1253,
	"WINDOWS-1254": charmap.Windows1254,
	"WINDOWS-1255": charmap.Windows1255,
	"WINDOWS-1256": charmap.Windows1256,
	"WINDOWS-1257": charmap.Windows1257,
	"WINDOWS-1258": charmap.Windows1258,
	"KOI8-R":       charmap.KOI8R,
	"KOI8-U":       charmap.KOI8U,
	"CP437":        charmap.CodePage437,
	"CP850":        charmap.CodePage850,
	"CP852":        charmap.CodePage852,
	"CP866":        charmap.CodePage866,
	"MACINTOSH":    charmap.Macintosh,
	"SHIFT_JIS":    japanese.ShiftJIS,
	"EUC-JP":       japanese.EUCJP,
	"ISO-2022-JP":  japanese.ISO2022JP,
	"EUC-KR":       korean.EUCKR,
	"GB18030":      simplifiedchinese.GB18030,
	"GBK":          simplifiedchinese.GBK,
	"HZ-GB-2312":   simplifiedchinese.HZGB2312,
	"BIG5":         traditionalchinese.Big5,
}

func buildEncodingAliases() map[string]string {
	aliases := map[string]string{
		"UTF8":      UTF8,
		"US-ASCII":  ASCII,
		"LATIN1":    "ISO-8859-1",
		"LATIN-1":   "ISO-8859-1",
		"LATIN2":    "ISO-8859-2",
		"LATIN9":    "ISO-8859-15",
		"CP1250":    "WINDOWS-1250",
		"CP1251":    "WINDOWS-1251",
		"CP1252":    "WINDOWS-1252",
		"CP1253":    "WINDOWS-1253",
		"CP1254":    "WINDOWS-1254",
		"CP1255":    "WINDOWS-1255",
		"CP1256":    "WINDOWS-1256",
		"CP1257":    "WINDOWS-1257",
		"CP1258":    "WINDOWS-1258",
		"SJIS":      "SHIFT_JIS",
		"SHIFT-JIS": "SHIFT_JIS",
		"EUCJP":     "EUC-JP",
		"EUCKR":     "EUC-KR",
		"BIG-5":     "BIG5",
		"CP936":     "GBK",
		"UTF16":     "UTF-16",
		"UCS-2":     "UTF-16",
	}
	for name := range encodingsByName {
		aliases[name] = name
	}
	return aliases
}

func encodingKey(name string) string {
	return strings.ToUpper(strings.NewReplacer(" ", "-").Replace(strings.TrimSpace(name)))
}

// NormalizeEncoding returns the canonical spelling of an encoding name.
// Empty and unknown names fall back to UTF-8.
func NormalizeEncoding(name string) string {
	if name == "" {
		return UTF8
	}
	key := encodingKey(name)
	if canonical, ok := Default().encodings[key]; ok {
		return canonical
	}
	if canonical, ok := Default().encodings[strings.ReplaceAll(key, "_", "-")]; ok {
		return canonical
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		if mime, err := ianaindex.MIME.Name(enc); err == nil {
			if canonical, ok := Default().encodings[encodingKey(mime)]; ok {
				return canonical
			}
		}
	}
	log().Warn("unknown encoding, falling back to UTF-8", mdwlog.String("encoding", name))
	return UTF8
}

// IsKnownEncoding reports whether name resolves without falling back
func IsKnownEncoding(name string) bool {
	key := encodingKey(name)
	if _, ok := Default().encodings[key]; ok {
		return true
	}
	enc, err := ianaindex.IANA.Encoding(name)
	return err == nil && enc != nil
}

// DetectEncoding guesses the encoding of raw bytes
func DetectEncoding(s string) string {
	if utf8.ValidString(s) {
		if isASCII(s) {
			return ASCII
		}
		return UTF8
	}
	_, name, _ := charset.DetermineEncoding([]byte(s), "")
	return NormalizeEncoding(name)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// Convert transcodes s from one encoding to another. With autoDetect the
// source encoding is guessed from the bytes. Codepoints the target cannot
// represent become "?".
func Convert(s, from, to string, autoDetect bool) (string, error) {
	to = NormalizeEncoding(to)
	if autoDetect {
		from = DetectEncoding(s)
	} else {
		from = NormalizeEncoding(from)
	}
	if s == "" || from == to || (from == ASCII && to == UTF8) {
		return s, nil
	}

	decoded, err := toUTF8(s, from)
	if err != nil {
		return "", mdwerrors.NewErrorBuilder(mdwerrors.ModuleUtf8x).
			Operation("Convert").
			Message("decoding failed").
			Cause(err).
			Code(mdwerror.CodeEncodingError).
			Detail("from", from).
			Build()
	}
	return fromUTF8(decoded, to), nil
}

func toUTF8(s, from string) (string, error) {
	switch from {
	case UTF8:
		return strings.ToValidUTF8(s, string(utf8.RuneError)), nil
	case ASCII:
		return strings.Map(func(r rune) rune {
			if r >= utf8.RuneSelf {
				return '?'
			}
			return r
		}, s), nil
	}
	out, err := encodingsByName[from].NewDecoder().String(s)
	if err != nil {
		return "", err
	}
	return out, nil
}

func fromUTF8(s, to string) string {
	switch to {
	case UTF8:
		return s
	case ASCII:
		return strings.Map(func(r rune) rune {
			if r >= utf8.RuneSelf {
				return '?'
			}
			return r
		}, s)
	}

	enc := encodingsByName[to]
	if out, err := enc.NewEncoder().String(s); err == nil {
		return out
	}

	// Stateful encoders (BOMs, ISO-2022 escapes) need the whole text in
	// one pass: replace unsupported runes first.
	check := enc.NewEncoder()
	var buf strings.Builder
	buf.Grow(len(s))
	for _, r := range s {
		if _, err := check.String(string(r)); err != nil {
			buf.WriteByte('?')
			continue
		}
		buf.WriteRune(r)
	}
	out, err := enc.NewEncoder().String(buf.String())
	if err != nil {
		return buf.String()
	}
	return out
}

// ASCIICompatible reports whether ASCII bytes mean the same characters
// under the encoding. UTF-16 and the 7-bit escape encodings do not.
func ASCIICompatible(name string) bool {
	switch NormalizeEncoding(name) {
	case "UTF-16", "UTF-16BE", "UTF-16LE", "ISO-2022-JP", "HZ-GB-2312":
		return false
	}
	return true
}
