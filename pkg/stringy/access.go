// File: access.go
// Title: Indexed Character Access
// Description: Codepoint reads by index, the bounds check and the always
//              failing write paths, plus character, chunk and grapheme
//              sequences.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Read codepoints through the decoded text for non UTF-8 encodings

package stringy

import (
	"iter"

	mdwerrors "github.com/msto63/stringy/foundation/core/errors"
	"github.com/msto63/stringy/foundation/utils/utf8x"
)

// At returns the codepoint at index as a value. Out of range indices yield
// the empty value.
func (s Stringy) At(index int) Stringy {
	char, _ := utf8x.At(s.utf8Text(), index)
	return s.derive(s.fromUTF8(char))
}

// OffsetExists reports whether a codepoint exists at offset
func (s Stringy) OffsetExists(offset int) bool {
	length := s.Length()
	if offset >= 0 {
		return length > offset
	}
	return length >= -offset
}

// OffsetGet returns the codepoint at offset, as UTF-8, or fails with
// ErrOutOfRange
func (s Stringy) OffsetGet(offset int) (string, error) {
	char, ok := utf8x.At(s.utf8Text(), offset)
	if !ok {
		return "", mdwerrors.StringyOutOfRange("OffsetGet", offset, s.Length())
	}
	return char, nil
}

// OffsetSet always fails with ErrImmutable
func (s Stringy) OffsetSet(offset int, _ string) error {
	return mdwerrors.StringyImmutable("OffsetSet", offset)
}

// OffsetUnset always fails with ErrImmutable
func (s Stringy) OffsetUnset(offset int) error {
	return mdwerrors.StringyImmutable("OffsetUnset", offset)
}

// TryCharAt returns the codepoint at index and whether it exists
func (s Stringy) TryCharAt(index int) (string, bool) {
	return utf8x.At(s.utf8Text(), index)
}

// MustCharAt returns the codepoint at index and panics with the
// ErrOutOfRange error when there is none
func (s Stringy) MustCharAt(index int) string {
	char, err := s.OffsetGet(index)
	if err != nil {
		panic(err)
	}
	return char
}

// Chars returns the codepoints as single character strings
func (s Stringy) Chars() []string {
	return utf8x.Chars(s.utf8Text())
}

// Iterator yields the codepoints in order, like Chars
func (s Stringy) Iterator() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, r := range s.utf8Text() {
			if !yield(string(r)) {
				return
			}
		}
	}
}

// Chunk splits the text into values of at most length codepoints. A length
// below one fails with ErrInvalidInput; empty text yields no chunks.
func (s Stringy) Chunk(length ...int) ([]Stringy, error) {
	size := 1
	if len(length) > 0 {
		size = length[0]
	}
	if size < 1 {
		return nil, mdwerrors.StringyInvalidInput("Chunk", size, "chunk length greater than zero")
	}
	chunks := utf8x.ChunkSplit(s.utf8Text(), size)
	for i, chunk := range chunks {
		chunks[i] = s.fromUTF8(chunk)
	}
	return s.lift(chunks), nil
}

// ChunkCollection is Chunk returning a Collection
func (s Stringy) ChunkCollection(length ...int) (*Collection, error) {
	chunks, err := s.Chunk(length...)
	if err != nil {
		return nil, err
	}
	return NewCollection(chunks...), nil
}

// Graphemes returns the extended grapheme clusters of the text
func (s Stringy) Graphemes() []string {
	return utf8x.Graphemes(s.utf8Text())
}

// GraphemeCount returns the number of extended grapheme clusters
func (s Stringy) GraphemeCount() int {
	return utf8x.GraphemeCount(s.utf8Text())
}

// lift turns raw pieces into values carrying the receiver's encoding
func (s Stringy) lift(pieces []string) []Stringy {
	out := make([]Stringy, len(pieces))
	for i, p := range pieces {
		out[i] = s.derive(p)
	}
	return out
}
