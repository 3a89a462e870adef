// File: stringx.go
// Title: Core Facade Functions
// Description: Free functions over raw strings for construction, encoding,
//              length and indexed access, plus the validation and default
//              helpers shared by the foundation packages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-15 v0.2.0: Rebuilt as the static facade over stringy.Stringy

package stringx

import (
	"fmt"
	"iter"

	mdwerrors "github.com/msto63/stringy/foundation/core/errors"
	"github.com/msto63/stringy/pkg/stringy"
)

// texts lowers a sequence of values to raw strings
func texts(values []stringy.Stringy) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

// textOf lowers the result of a fallible operation
func textOf(value stringy.Stringy, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return value.String(), nil
}

// ===============================
// Construction and encoding
// ===============================

// Create converts a scalar, a stringy.Stringy or a fmt.Stringer to text
func Create(value any) (string, error) {
	return textOf(stringy.Create(value))
}

// Length returns the number of codepoints of s held in encoding
func Length(s, encoding string) int {
	return stringy.New(s, encoding).Length()
}

// Count is Length for UTF-8 text
func Count(s string) int {
	return stringy.New(s).Count()
}

// Encode transcodes s from UTF-8 into encoding. With autoDetect the source
// encoding is detected first.
func Encode(s, encoding string, autoDetect ...bool) (string, error) {
	return textOf(stringy.New(s).Encode(encoding, autoDetect...))
}

// SetInternalEncoding returns the normalized name under which s would be
// held in encoding. Unknown names fall back to UTF-8.
func SetInternalEncoding(s, encoding string) string {
	return stringy.New(s).SetInternalEncoding(encoding).Encoding()
}

// JSONSerialize returns s as it is used for JSON output
func JSONSerialize(s string) string {
	return stringy.New(s).JSONSerialize()
}

// ===============================
// Indexed access
// ===============================

// At returns the codepoint at index, negative indexes counting from the end.
// Out of range indexes yield "".
func At(s string, index int) string {
	return stringy.New(s).At(index).String()
}

// OffsetExists reports whether index addresses a codepoint of s
func OffsetExists(s string, index int) bool {
	return stringy.New(s).OffsetExists(index)
}

// OffsetGet returns the codepoint at index or an OutOfRange error
func OffsetGet(s string, index int) (string, error) {
	return stringy.New(s).OffsetGet(index)
}

// TryCharAt returns the codepoint at index and whether it exists
func TryCharAt(s string, index int) (string, bool) {
	return stringy.New(s).TryCharAt(index)
}

// Chars splits s into codepoints
func Chars(s string) []string {
	return stringy.New(s).Chars()
}

// Iterator yields the codepoints of s in order
func Iterator(s string) iter.Seq[string] {
	return stringy.New(s).Iterator()
}

// Chunk splits s into pieces of length codepoints, default 1
func Chunk(s string, length ...int) ([]string, error) {
	pieces, err := stringy.New(s).Chunk(length...)
	if err != nil {
		return nil, err
	}
	return texts(pieces), nil
}

// ChunkCollection is Chunk returning a collection
func ChunkCollection(s string, length ...int) (*stringy.Collection, error) {
	return stringy.New(s).ChunkCollection(length...)
}

// Graphemes splits s into extended grapheme clusters
func Graphemes(s string) []string {
	return stringy.New(s).Graphemes()
}

// GraphemeCount returns the number of extended grapheme clusters in s
func GraphemeCount(s string) int {
	return stringy.New(s).GraphemeCount()
}

// ===============================
// Validation and defaults
// ===============================

// IsNotBlank is the inverse of IsBlank
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// FirstNonEmpty returns the first non-empty string from the provided strings.
// This is useful for providing default values in a chain.
func FirstNonEmpty(values ...string) string {
	for _, s := range values {
		if IsNotEmpty(s) {
			return s
		}
	}
	return ""
}

// FirstNonBlank returns the first non-blank string from the provided strings
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// ValidateRequired validates that a string is not empty
func ValidateRequired(s string) error {
	if IsEmpty(s) {
		return mdwerrors.ValidationFailed(mdwerrors.ModuleStringx, "value", s, "non-empty string required")
	}
	return nil
}

// ValidateNotBlank validates that a string is not blank
func ValidateNotBlank(s string) error {
	if IsBlank(s) {
		return mdwerrors.ValidationFailed(mdwerrors.ModuleStringx, "value", s, "non-blank string required")
	}
	return nil
}

// ValidateLength validates that a string has between minLen and maxLen
// codepoints. A bound of 0 is not checked.
func ValidateLength(s string, minLen, maxLen int) error {
	length := Count(s)

	if minLen > 0 && length < minLen {
		return mdwerrors.ValidationFailed(mdwerrors.ModuleStringx, "length", length,
			fmt.Sprintf("at least %d characters required", minLen))
	}

	if maxLen > 0 && length > maxLen {
		return mdwerrors.ValidationFailed(mdwerrors.ModuleStringx, "length", length,
			fmt.Sprintf("at most %d characters allowed", maxLen))
	}

	return nil
}

// TruncateWithValidation truncates s, rejecting a negative length
func TruncateWithValidation(s string, maxLen int, ellipsis string) (string, error) {
	if maxLen < 0 {
		return "", mdwerrors.InvalidInput(mdwerrors.ModuleStringx, "TruncateWithValidation", maxLen, "non-negative length")
	}
	return Truncate(s, maxLen, ellipsis), nil
}

// MustTruncate truncates a string, panicking on invalid input
func MustTruncate(s string, maxLen int, ellipsis string) string {
	result, err := TruncateWithValidation(s, maxLen, ellipsis)
	if err != nil {
		panic(err)
	}
	return result
}

// FromDefault returns s if not empty, otherwise defaultValue
func FromDefault(s, defaultValue string) string {
	if IsEmpty(s) {
		return defaultValue
	}
	return s
}

// FromBlankDefault returns s if not blank, otherwise defaultValue
func FromBlankDefault(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}
