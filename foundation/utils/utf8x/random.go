// File: random.go
// Title: Random String Generation
// Description: Cryptographically secure random strings over arbitrary Unicode
//              alphabets, password generation and codepoint shuffling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with secure random generation
// - 2026-10-15 v0.2.0: Moved to utf8x, alphabets are codepoint based

package utf8x

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
)

const (
	// Character sets for random string generation
	LettersLowercase = "abcdefghijklmnopqrstuvwxyz"
	LettersUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Letters          = LettersLowercase + LettersUppercase
	Digits           = "0123456789"
	Alphanumeric     = Letters + Digits

	// PasswordAlphabet excludes characters that are easily confused when
	// read aloud or typed (0/O, 1/l/I, 5/S)
	PasswordAlphabet = "2346789bcdfghjkmnpqrtvwxyzBCDFGHJKLMNPQRTVWXYZ!?_#"
)

// RandomString generates a cryptographically secure random string of length
// codepoints drawn from alphabet. An empty alphabet defaults to Alphanumeric.
func RandomString(length int, alphabet string) (string, error) {
	if length <= 0 {
		return "", nil
	}

	if alphabet == "" {
		alphabet = Alphanumeric
	}

	chars := []rune(alphabet)
	result := make([]rune, length)
	charsLen := big.NewInt(int64(len(chars)))

	for i := 0; i < length; i++ {
		randomIndex, err := rand.Int(rand.Reader, charsLen)
		if err != nil {
			return "", err
		}
		result[i] = chars[randomIndex.Int64()]
	}

	return string(result), nil
}

// RandomPassword generates a password of length codepoints from PasswordAlphabet
func RandomPassword(length int) (string, error) {
	return RandomString(length, PasswordAlphabet)
}

// Shuffle returns the codepoints of s in random order
func Shuffle(s string) string {
	runes := []rune(s)
	mrand.Shuffle(len(runes), func(i, j int) {
		runes[i], runes[j] = runes[j], runes[i]
	})
	return string(runes)
}
