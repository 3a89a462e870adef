// File: search.go
// Title: Search and Predicate Facade
// Description: Free functions for index lookup, containment, equality,
//              character class predicates, format checks and similarity.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package stringx

import (
	"context"

	"github.com/msto63/stringy/pkg/stringy"
)

// EmailOptions enables the optional steps of IsEmail
type EmailOptions = stringy.EmailOptions

// ===============================
// Search
// ===============================

// IndexOf returns the codepoint index of needle at or after offset, or -1
func IndexOf(s, needle string, offset ...int) int {
	return stringy.New(s).IndexOf(needle, offset...)
}

// IndexOfIgnoreCase is IndexOf with case folding
func IndexOfIgnoreCase(s, needle string, offset ...int) int {
	return stringy.New(s).IndexOfIgnoreCase(needle, offset...)
}

// IndexOfLast returns the codepoint index of the last needle, or -1
func IndexOfLast(s, needle string, offset ...int) int {
	return stringy.New(s).IndexOfLast(needle, offset...)
}

// IndexOfLastIgnoreCase is IndexOfLast with case folding
func IndexOfLastIgnoreCase(s, needle string, offset ...int) int {
	return stringy.New(s).IndexOfLastIgnoreCase(needle, offset...)
}

// Contains reports whether needle occurs in s, case sensitive by default
func Contains(s, needle string, caseSensitive ...bool) bool {
	return stringy.New(s).Contains(needle, caseSensitive...)
}

// ContainsIgnoreCase returns true if substr is within s, ignoring case
func ContainsIgnoreCase(s, substr string) bool {
	return Contains(s, substr, false)
}

// ContainsAll reports whether every needle occurs. An empty list is false.
func ContainsAll(s string, needles []string, caseSensitive ...bool) bool {
	return stringy.New(s).ContainsAll(needles, caseSensitive...)
}

// ContainsAny reports whether at least one needle occurs
func ContainsAny(s string, needles []string, caseSensitive ...bool) bool {
	return stringy.New(s).ContainsAny(needles, caseSensitive...)
}

// StartsWith reports whether s begins with substring
func StartsWith(s, substring string, caseSensitive ...bool) bool {
	return stringy.New(s).StartsWith(substring, caseSensitive...)
}

// StartsWithAny reports whether s begins with one of substrings
func StartsWithAny(s string, substrings []string, caseSensitive ...bool) bool {
	return stringy.New(s).StartsWithAny(substrings, caseSensitive...)
}

// EndsWith reports whether s ends with substring
func EndsWith(s, substring string, caseSensitive ...bool) bool {
	return stringy.New(s).EndsWith(substring, caseSensitive...)
}

// EndsWithAny reports whether s ends with one of substrings
func EndsWithAny(s string, substrings []string, caseSensitive ...bool) bool {
	return stringy.New(s).EndsWithAny(substrings, caseSensitive...)
}

// Is matches s against a pattern in which "*" stands for any text
func Is(s, pattern string) bool {
	return stringy.New(s).Is(pattern)
}

// In reports whether s occurs in other
func In(s, other string, caseSensitive ...bool) bool {
	return stringy.New(s).In(other, caseSensitive...)
}

// CountSubstr counts the non-overlapping occurrences of substring
func CountSubstr(s, substring string, caseSensitive ...bool) int {
	return stringy.New(s).CountSubstr(substring, caseSensitive...)
}

// IsEquals reports whether every value has exactly the text of s
func IsEquals(s string, values ...any) (bool, error) {
	return stringy.New(s).IsEquals(values...)
}

// IsEqualsCaseSensitive is an alias for IsEquals
func IsEqualsCaseSensitive(s string, values ...any) (bool, error) {
	return stringy.New(s).IsEqualsCaseSensitive(values...)
}

// IsEqualsCaseInsensitive is IsEquals after case folding
func IsEqualsCaseInsensitive(s string, values ...any) (bool, error) {
	return stringy.New(s).IsEqualsCaseInsensitive(values...)
}

// MatchCaseSensitive is an alias for IsEqualsCaseSensitive
func MatchCaseSensitive(s string, values ...any) (bool, error) {
	return stringy.New(s).MatchCaseSensitive(values...)
}

// MatchCaseInsensitive is an alias for IsEqualsCaseInsensitive
func MatchCaseInsensitive(s string, values ...any) (bool, error) {
	return stringy.New(s).MatchCaseInsensitive(values...)
}

// ===============================
// Predicates
// ===============================

// IsEmpty returns true if the string is empty (length 0)
func IsEmpty(s string) bool {
	return stringy.New(s).IsEmpty()
}

// IsNotEmpty returns true if the string is not empty
func IsNotEmpty(s string) bool {
	return stringy.New(s).IsNotEmpty()
}

// IsBlank returns true if the string is empty or contains only whitespace.
// This is more comprehensive than IsEmpty and commonly needed in validation.
func IsBlank(s string) bool {
	return stringy.New(s).IsBlank()
}

// IsWhitespace is an alias for IsBlank
func IsWhitespace(s string) bool {
	return stringy.New(s).IsWhitespace()
}

// IsAlpha reports whether s consists of letters only
func IsAlpha(s string) bool {
	return stringy.New(s).IsAlpha()
}

// IsAlphanumeric reports whether s consists of letters and digits only
func IsAlphanumeric(s string) bool {
	return stringy.New(s).IsAlphanumeric()
}

// IsHexadecimal reports whether s consists of hex digits only
func IsHexadecimal(s string) bool {
	return stringy.New(s).IsHexadecimal()
}

// IsLowerCase reports whether s consists of lowercase letters only
func IsLowerCase(s string) bool {
	return stringy.New(s).IsLowerCase()
}

// IsUpperCase reports whether s consists of uppercase letters only
func IsUpperCase(s string) bool {
	return stringy.New(s).IsUpperCase()
}

// HasLowerCase reports whether s contains a lowercase letter
func HasLowerCase(s string) bool {
	return stringy.New(s).HasLowerCase()
}

// HasUpperCase reports whether s contains an uppercase letter
func HasUpperCase(s string) bool {
	return stringy.New(s).HasUpperCase()
}

// IsPunctuation reports whether s consists of punctuation only
func IsPunctuation(s string) bool {
	return stringy.New(s).IsPunctuation()
}

// IsPrintable reports whether s has no control characters besides tab and
// line breaks
func IsPrintable(s string) bool {
	return stringy.New(s).IsPrintable()
}

// IsNumeric reports whether s is a decimal number
func IsNumeric(s string) bool {
	return stringy.New(s).IsNumeric()
}

// IsHTML reports whether s contains a tag
func IsHTML(s string) bool {
	return stringy.New(s).IsHTML()
}

// IsSerialized reports whether s is PHP serialized data
func IsSerialized(s string) bool {
	return stringy.New(s).IsSerialized()
}

// IsBase64 reports whether s is padded standard base64
func IsBase64(s string, emptyValid ...bool) bool {
	return stringy.New(s).IsBase64(emptyValid...)
}

// IsJSON reports whether s is a JSON document
func IsJSON(s string, onlyStructured ...bool) bool {
	return stringy.New(s).IsJSON(onlyStructured...)
}

// IsEmail reports whether s is an email address
func IsEmail(s string, opts ...EmailOptions) bool {
	return stringy.New(s).IsEmail(opts...)
}

// IsEmailContext is IsEmail with a context for the DNS check
func IsEmailContext(ctx context.Context, s string, opts ...EmailOptions) bool {
	return stringy.New(s).IsEmailContext(ctx, opts...)
}

// ToBoolean interprets s as a boolean
func ToBoolean(s string) bool {
	return stringy.New(s).ToBoolean()
}

// ===============================
// Similarity
// ===============================

// Similarity returns how similar s and other are, in percent
func Similarity(s, other string) float64 {
	return stringy.New(s).Similarity(other)
}

// IsSimilar reports whether Similarity reaches minPercent, default 80
func IsSimilar(s, other string, minPercent ...float64) bool {
	return stringy.New(s).IsSimilar(other, minPercent...)
}

// LongestCommonPrefix returns the longest prefix of s and other
func LongestCommonPrefix(s, other string) string {
	return stringy.New(s).LongestCommonPrefix(other).String()
}

// LongestCommonSuffix returns the longest suffix of s and other
func LongestCommonSuffix(s, other string) string {
	return stringy.New(s).LongestCommonSuffix(other).String()
}

// LongestCommonSubstring returns the first longest run shared by s and other
func LongestCommonSubstring(s, other string) string {
	return stringy.New(s).LongestCommonSubstring(other).String()
}
