// File: random.go
// Title: Random Content Facade
// Description: Free functions that append random strings, passwords and
//              unique identifiers, and shuffle codepoints. Randomness comes
//              from crypto/rand through the Unicode backend.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with secure random generation
// - 2026-10-15 v0.2.0: Delegates to stringy.Stringy, alphabets are codepoint based

package stringx

import "github.com/msto63/stringy/pkg/stringy"

const (
	// Character sets for random string generation
	LettersLowercase = "abcdefghijklmnopqrstuvwxyz"
	LettersUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Letters          = LettersLowercase + LettersUppercase
	Digits           = "0123456789"
	Alphanumeric     = Letters + Digits

	// Safe characters for URLs and filenames
	URLSafe = Alphanumeric + "-_"

	// Human-readable characters (excluding visually similar characters like 0, O, l, 1)
	HumanReadable = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// RandomString generates a random string of length codepoints drawn from
// charset, Alphanumeric when empty
func RandomString(length int, charset string) (string, error) {
	if length <= 0 {
		return "", nil
	}
	return AppendRandomString("", length, charset)
}

// RandomHex generates a random lowercase hexadecimal string
func RandomHex(length int) (string, error) {
	return RandomString(length, "0123456789abcdef")
}

// AppendRandomString appends length random codepoints drawn from alphabet
func AppendRandomString(s string, length int, alphabet ...string) (string, error) {
	return textOf(stringy.New(s).AppendRandomString(length, alphabet...))
}

// AppendPassword appends a random password of length codepoints
func AppendPassword(s string, length int) (string, error) {
	return textOf(stringy.New(s).AppendPassword(length))
}

// AppendUniqueIdentifier appends a random identifier mixed with extra,
// MD5 hashed unless md5 is false
func AppendUniqueIdentifier(s, extra string, md5 ...bool) string {
	return stringy.New(s).AppendUniqueIdentifier(extra, md5...).String()
}

// Shuffle returns the codepoints of s in random order
func Shuffle(s string) string {
	return stringy.New(s).Shuffle().String()
}
