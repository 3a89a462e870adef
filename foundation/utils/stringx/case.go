// File: case.go
// Title: Case Conversion Facade
// Description: Free functions for case mapping, titles and the naming
//              conventions (camelCase, snake_case, kebab-case and friends).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2026-10-15 v0.2.0: Delegates to stringy.Stringy with language aware mapping

package stringx

import "github.com/msto63/stringy/pkg/stringy"

// CaseOptions selects the language and the length preserving mode of the
// case mapping functions
type CaseOptions = stringy.CaseOptions

// TitleizeOptions controls Titleize
type TitleizeOptions = stringy.TitleizeOptions

// ToLowerCase lowercases s
func ToLowerCase(s string, opts ...CaseOptions) string {
	return stringy.New(s).ToLowerCase(opts...).String()
}

// ToUpperCase uppercases s. "ß" becomes "SS" unless the length is kept.
func ToUpperCase(s string, opts ...CaseOptions) string {
	return stringy.New(s).ToUpperCase(opts...).String()
}

// LowerCaseFirst lowercases the first codepoint
func LowerCaseFirst(s string, opts ...CaseOptions) string {
	return stringy.New(s).LowerCaseFirst(opts...).String()
}

// UpperCaseFirst uppercases the first codepoint
func UpperCaseFirst(s string, opts ...CaseOptions) string {
	return stringy.New(s).UpperCaseFirst(opts...).String()
}

// SwapCase inverts the case of every codepoint
func SwapCase(s string) string {
	return stringy.New(s).SwapCase().String()
}

// ToTitleCase capitalizes every word
func ToTitleCase(s string, opts ...CaseOptions) string {
	return stringy.New(s).ToTitleCase(opts...).String()
}

// Titleize capitalizes every word except the ignored ones
func Titleize(s string, opts ...TitleizeOptions) string {
	return stringy.New(s).Titleize(opts...).String()
}

// TitleizeForHumans capitalizes a headline, keeping small words lowercase
func TitleizeForHumans(s string, ignore ...string) string {
	return stringy.New(s).TitleizeForHumans(ignore...).String()
}

// CapitalizePersonalName capitalizes names, honouring particles and
// prefixes such as "van", "de" and "Mc"
func CapitalizePersonalName(s string) string {
	return stringy.New(s).CapitalizePersonalName().String()
}

// Camelize converts s to camelCase.
// Example: "my_variable-name" -> "myVariableName"
func Camelize(s string) string {
	return stringy.New(s).Camelize().String()
}

// UpperCamelize converts s to UpperCamelCase
func UpperCamelize(s string) string {
	return stringy.New(s).UpperCamelize().String()
}

// StudlyCase is an alias for UpperCamelize
func StudlyCase(s string) string {
	return stringy.New(s).StudlyCase().String()
}

// PascalCase is an alias for UpperCamelize
func PascalCase(s string) string {
	return stringy.New(s).PascalCase().String()
}

// SnakeCase lowercases the words of s and joins them with "_"
func SnakeCase(s string) string {
	return stringy.New(s).SnakeCase().String()
}

// KebabCase lowercases the words of s and joins them with "-"
func KebabCase(s string) string {
	return stringy.New(s).KebabCase().String()
}

// Snakeize converts camelCase and separated words to snake_case.
// Example: "MyVariableName" -> "my_variable_name"
func Snakeize(s string) string {
	return stringy.New(s).Snakeize().String()
}

// Delimit lowercases s and separates its words with delimiter
func Delimit(s, delimiter string) string {
	return stringy.New(s).Delimit(delimiter).String()
}

// Dasherize is Delimit with "-"
func Dasherize(s string) string {
	return stringy.New(s).Dasherize().String()
}

// Underscored is Delimit with "_"
func Underscored(s string) string {
	return stringy.New(s).Underscored().String()
}

// Humanize turns an identifier into a sentence: "_id" suffixes and
// underscores go, the first letter is uppercased
func Humanize(s string) string {
	return stringy.New(s).Humanize().String()
}
