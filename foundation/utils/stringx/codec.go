// File: codec.go
// Title: Codec, Markup and Hashing Facade
// Description: Free functions for base64, hex, URL and HTML codecs, ASCII
//              folding and slugs, markup cleanup, digests and encryption.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package stringx

import "github.com/msto63/stringy/pkg/stringy"

// Option types of the codec functions
type (
	QuoteMode            = stringy.QuoteMode
	SlugOptions          = stringy.SlugOptions
	URLifyOptions        = stringy.URLifyOptions
	ASCIIOptions         = stringy.ASCIIOptions
	TransliterateOptions = stringy.TransliterateOptions
)

// Base64Encode encodes s with padded standard base64
func Base64Encode(s string) string {
	return stringy.New(s).Base64Encode().String()
}

// Base64Decode decodes standard base64, "" on invalid input
func Base64Decode(s string) string {
	return stringy.New(s).Base64Decode().String()
}

// HexEncode writes every codepoint as a \x escape
func HexEncode(s string) string {
	return stringy.New(s).HexEncode().String()
}

// HexDecode replaces \x escapes with their codepoints
func HexDecode(s string) string {
	return stringy.New(s).HexDecode().String()
}

// URLEncode encodes s for a query string
func URLEncode(s string) string {
	return stringy.New(s).URLEncode().String()
}

// URLEncodeRaw encodes s as a path segment
func URLEncodeRaw(s string) string {
	return stringy.New(s).URLEncodeRaw().String()
}

// URLDecode reverses URLEncode
func URLDecode(s string) string {
	return stringy.New(s).URLDecode().String()
}

// URLDecodeRaw reverses URLEncodeRaw
func URLDecodeRaw(s string) string {
	return stringy.New(s).URLDecodeRaw().String()
}

// URLDecodeMulti decodes until the text is stable
func URLDecodeMulti(s string) string {
	return stringy.New(s).URLDecodeMulti().String()
}

// URLDecodeRawMulti is URLDecodeMulti keeping "+"
func URLDecodeRawMulti(s string) string {
	return stringy.New(s).URLDecodeRawMulti().String()
}

// HTMLEncode converts characters to HTML entities
func HTMLEncode(s string, mode ...QuoteMode) string {
	return stringy.New(s).HTMLEncode(mode...).String()
}

// HTMLDecode converts HTML entities to characters
func HTMLDecode(s string, mode ...QuoteMode) string {
	return stringy.New(s).HTMLDecode(mode...).String()
}

// Escape converts the HTML special characters
func Escape(s string) string {
	return stringy.New(s).Escape().String()
}

// Slugify converts s into a URL slug
func Slugify(s string, opts ...SlugOptions) string {
	return stringy.New(s).Slugify(opts...).String()
}

// URLify converts s into a length limited URL slug
func URLify(s string, opts ...URLifyOptions) string {
	return stringy.New(s).URLify(opts...).String()
}

// ToASCII folds s to ASCII with language rules
func ToASCII(s string, opts ...ASCIIOptions) string {
	return stringy.New(s).ToASCII(opts...).String()
}

// ToTransliterate folds s to ASCII without language rules
func ToTransliterate(s string, opts ...TransliterateOptions) string {
	return stringy.New(s).ToTransliterate(opts...).String()
}

// Tidy replaces smart quotes, dashes and ellipsis with ASCII
func Tidy(s string) string {
	return stringy.New(s).Tidy().String()
}

// Utf8ify repairs broken UTF-8
func Utf8ify(s string) string {
	return stringy.New(s).Utf8ify().String()
}

// RemoveHTML strips tags except allowableTags
func RemoveHTML(s string, allowableTags ...string) string {
	return stringy.New(s).RemoveHTML(allowableTags...).String()
}

// RemoveHTMLBreak replaces line breaks and <br> tags
func RemoveHTMLBreak(s string, replacement ...string) string {
	return stringy.New(s).RemoveHTMLBreak(replacement...).String()
}

// NewLineToHTMLBreak replaces line breaks with "<br>"
func NewLineToHTMLBreak(s string) string {
	return stringy.New(s).NewLineToHTMLBreak().String()
}

// RemoveXSS sanitizes s for display
func RemoveXSS(s string) string {
	return stringy.New(s).RemoveXSS().String()
}

// StripeCSSMediaQueries removes @media blocks
func StripeCSSMediaQueries(s string) string {
	return stringy.New(s).StripeCSSMediaQueries().String()
}

// StripeEmptyHTMLTags removes elements without content
func StripeEmptyHTMLTags(s string) string {
	return stringy.New(s).StripeEmptyHTMLTags().String()
}

// CRC32 returns the IEEE checksum of s
func CRC32(s string) uint32 {
	return stringy.New(s).CRC32()
}

// MD5 returns the hex MD5 digest of s
func MD5(s string) string {
	return stringy.New(s).MD5().String()
}

// SHA1 returns the hex SHA-1 digest of s
func SHA1(s string) string {
	return stringy.New(s).SHA1().String()
}

// SHA256 returns the hex SHA-256 digest of s
func SHA256(s string) string {
	return stringy.New(s).SHA256().String()
}

// SHA512 returns the hex SHA-512 digest of s
func SHA512(s string) string {
	return stringy.New(s).SHA512().String()
}

// Hash returns the hex digest of s under the named algorithm
func Hash(s, algorithm string) (string, error) {
	return textOf(stringy.New(s).Hash(algorithm))
}

// Crypt hashes s with a crypt(3) style salt
func Crypt(s, salt string) (string, error) {
	return textOf(stringy.New(s).Crypt(salt))
}

// Bcrypt hashes s with bcrypt
func Bcrypt(s string, cost ...int) (string, error) {
	return textOf(stringy.New(s).Bcrypt(cost...))
}

// Encrypt encrypts s with a password
func Encrypt(s, password string) (string, error) {
	return textOf(stringy.New(s).Encrypt(password))
}

// Decrypt reverses Encrypt
func Decrypt(s, password string) (string, error) {
	return textOf(stringy.New(s).Decrypt(password))
}
