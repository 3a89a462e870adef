// File: fix.go
// Title: UTF-8 Repair
// Description: Repairs byte sequences that are not valid UTF-8 by reading the
//              offending bytes as Windows-1252, undoes simple double encoding
//              and removes byte order marks and control characters.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package utf8x

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const bom = "\uFEFF"

// Repair returns s unchanged when it is valid UTF-8. Otherwise every byte
// that does not start a valid sequence is decoded as Windows-1252.
func Repair(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			b.WriteRune(charmap.Windows1252.DecodeByte(s[i]))
			i++
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

// isMojibakeRune reports whether r is a character that appears when UTF-8
// bytes are misread as Windows-1252
func isMojibakeRune(r rune) bool {
	if r >= 0x80 && r <= 0xFF {
		return true
	}
	_, ok := charmap.Windows1252.EncodeRune(r)
	return ok && r > 0xFF
}

// fixDoubleEncoded finds runs of Windows-1252 lookalike characters and
// replaces each run that re-encodes to valid multi-byte UTF-8
func fixDoubleEncoded(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(runes); {
		if !isMojibakeRune(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		raw := make([]byte, 0, 8)
		for j < len(runes) && isMojibakeRune(runes[j]) {
			c, _ := charmap.Windows1252.EncodeRune(runes[j])
			raw = append(raw, c)
			j++
		}
		if j-i >= 2 && utf8.Valid(raw) && utf8.RuneCount(raw) < j-i {
			b.Write(raw)
		} else {
			b.WriteString(string(runes[i:j]))
		}
		i = j
	}
	return b.String()
}

// Utf8ify turns arbitrary bytes into clean UTF-8: invalid sequences are
// repaired, double encoded characters restored, byte order marks and control
// characters other than tab and line breaks removed.
func Utf8ify(s string) string {
	if s == "" {
		return s
	}
	s = Repair(s)
	s = strings.ReplaceAll(s, bom, "")
	s = fixDoubleEncoded(s)
	return Default().reControl.ReplaceAllLiteralString(s, "")
}
