// File: predicates.go
// Title: Predicates and Comparisons
// Description: Character class and structural predicates, email validation,
//              boolean conversion, similarity and common affixes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package stringy

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/msto63/stringy/foundation/utils/utf8x"
	"github.com/msto63/stringy/foundation/utils/validationx"
)

// DefaultSimilarityPercent is the threshold used by IsSimilar
const DefaultSimilarityPercent = 80.0

// IsAlpha reports whether the text consists of letters only. The empty text
// qualifies, as it does for the other character class predicates.
func (s Stringy) IsAlpha() bool {
	return utf8x.IsAlpha(s.str)
}

// IsAlphanumeric reports whether the text consists of letters and digits
func (s Stringy) IsAlphanumeric() bool {
	return utf8x.IsAlphanumeric(s.str)
}

// IsHexadecimal reports whether the text consists of hex digits
func (s Stringy) IsHexadecimal() bool {
	return utf8x.IsHexadecimal(s.str)
}

// IsLowerCase reports whether the text consists of lowercase letters
func (s Stringy) IsLowerCase() bool {
	return utf8x.IsLowerCase(s.str)
}

// IsUpperCase reports whether the text consists of uppercase letters
func (s Stringy) IsUpperCase() bool {
	return utf8x.IsUpperCase(s.str)
}

// HasLowerCase reports whether the text contains a lowercase letter
func (s Stringy) HasLowerCase() bool {
	return utf8x.HasLowerCase(s.str)
}

// HasUpperCase reports whether the text contains an uppercase letter
func (s Stringy) HasUpperCase() bool {
	return utf8x.HasUpperCase(s.str)
}

// IsPunctuation reports whether the text consists of punctuation
func (s Stringy) IsPunctuation() bool {
	return utf8x.IsPunctuation(s.str)
}

// IsPrintable reports whether the text has no control characters
func (s Stringy) IsPrintable() bool {
	return utf8x.IsPrintable(s.str)
}

// IsNumeric reports whether the text is a decimal number
func (s Stringy) IsNumeric() bool {
	return utf8x.IsNumeric(s.str)
}

// IsBlank reports whether the text is empty or whitespace only
func (s Stringy) IsBlank() bool {
	return utf8x.IsBlank(s.str)
}

// IsWhitespace is an alias for IsBlank
func (s Stringy) IsWhitespace() bool {
	return s.IsBlank()
}

// IsEmpty reports whether the text has no characters
func (s Stringy) IsEmpty() bool {
	return s.str == ""
}

// IsNotEmpty reports whether the text has at least one character
func (s Stringy) IsNotEmpty() bool {
	return s.str != ""
}

// IsHTML reports whether the text contains markup
func (s Stringy) IsHTML() bool {
	return utf8x.IsHTML(s.str)
}

// IsSerialized reports whether the text is PHP serialized data
func (s Stringy) IsSerialized() bool {
	return utf8x.IsSerialized(s.str)
}

// IsBase64 reports whether the text is canonical padded base64. The empty
// text counts as valid unless emptyValid is false.
func (s Stringy) IsBase64(emptyValid ...bool) bool {
	if s.str == "" {
		return len(emptyValid) == 0 || emptyValid[0]
	}
	decoded, err := base64.StdEncoding.Strict().DecodeString(s.str)
	if err != nil {
		return false
	}
	return base64.StdEncoding.EncodeToString(decoded) == s.str
}

// IsJSON reports whether the text is valid JSON. With onlyStructured only
// objects and arrays count. The empty text is never valid.
func (s Stringy) IsJSON(onlyStructured ...bool) bool {
	trimmed := strings.TrimSpace(s.str)
	if trimmed == "" || !json.Valid([]byte(trimmed)) {
		return false
	}
	if len(onlyStructured) > 0 && onlyStructured[0] {
		return trimmed[0] == '{' || trimmed[0] == '['
	}
	return true
}

// IsEmail reports whether the text is an email address. The options enable
// the example, typo, temporary domain and DNS checks.
func (s Stringy) IsEmail(opts ...EmailOptions) bool {
	return validationx.IsEmail(s.str, option(opts))
}

// IsEmailContext is IsEmail with a caller supplied context for the DNS check
func (s Stringy) IsEmailContext(ctx context.Context, opts ...EmailOptions) bool {
	return validationx.IsEmailContext(ctx, s.str, option(opts))
}

// ToBoolean interprets the text as a boolean. "true", "1", "on" and "yes" are
// true, "false", "0", "off" and "no" false, case insensitively. Numbers are
// true when positive; any other non-blank text is true.
func (s Stringy) ToBoolean() bool {
	switch strings.ToLower(s.str) {
	case "true", "1", "on", "yes":
		return true
	case "false", "0", "off", "no":
		return false
	}
	if utf8x.IsNumeric(s.str) {
		f, err := strconv.ParseFloat(strings.TrimSpace(s.str), 64)
		return err == nil && f > 0
	}
	trimmed := utf8x.Trim(s.str, "")
	return trimmed != "" && trimmed != "0"
}

// Similarity returns how similar the texts are, in percent
func (s Stringy) Similarity(other string) float64 {
	return utf8x.Similarity(s.str, other)
}

// IsSimilar reports whether Similarity reaches minPercent, default 80
func (s Stringy) IsSimilar(other string, minPercent ...float64) bool {
	threshold := DefaultSimilarityPercent
	if len(minPercent) > 0 {
		threshold = minPercent[0]
	}
	return s.Similarity(other) >= threshold
}

// LongestCommonPrefix returns the longest prefix shared with other
func (s Stringy) LongestCommonPrefix(other string) Stringy {
	return s.derive(utf8x.LongestCommonPrefix(s.str, other))
}

// LongestCommonSuffix returns the longest suffix shared with other
func (s Stringy) LongestCommonSuffix(other string) Stringy {
	return s.derive(utf8x.LongestCommonSuffix(s.str, other))
}

// LongestCommonSubstring returns the longest substring shared with other,
// the first one found when several have the same length
func (s Stringy) LongestCommonSubstring(other string) Stringy {
	return s.derive(utf8x.LongestCommonSubstring(s.str, other))
}
