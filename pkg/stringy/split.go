// File: split.go
// Title: Splitting
// Description: Regex and literal splitting, line and word splitting, each
//              with a Collection returning twin.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package stringy

import (
	"strings"

	"github.com/msto63/stringy/foundation/utils/utf8x"
)

// Split splits the text around matches of the regular expression pattern.
// A positive limit keeps at most that many leading pieces; without limit all
// pieces are returned. Empty text yields no pieces.
func (s Stringy) Split(pattern string, limit ...int) ([]Stringy, error) {
	if s.str == "" {
		return []Stringy{}, nil
	}
	n := -1
	if len(limit) > 0 {
		n = limit[0]
	}
	pieces, err := utf8x.SplitPattern(s.str, pattern, n)
	if err != nil {
		return nil, backendError("Split", err).WithDetail("pattern", pattern)
	}
	return s.lift(pieces), nil
}

// SplitCollection is Split returning a Collection
func (s Stringy) SplitCollection(pattern string, limit ...int) (*Collection, error) {
	pieces, err := s.Split(pattern, limit...)
	if err != nil {
		return nil, err
	}
	return NewCollection(pieces...), nil
}

// Explode splits the text on the literal delimiter. A positive limit returns
// at most limit pieces, the last holding the rest; a negative limit drops
// that many pieces from the end; zero counts as one. Empty text yields no
// pieces and an empty delimiter yields the whole text.
func (s Stringy) Explode(delimiter string, limit ...int) []Stringy {
	if s.str == "" {
		return []Stringy{}
	}
	if delimiter == "" {
		return []Stringy{s}
	}
	if len(limit) == 0 {
		return s.lift(strings.Split(s.str, delimiter))
	}
	n := limit[0]
	switch {
	case n > 0:
		return s.lift(strings.SplitN(s.str, delimiter, n))
	case n == 0:
		return []Stringy{s}
	}
	pieces := strings.Split(s.str, delimiter)
	if -n >= len(pieces) {
		return []Stringy{}
	}
	return s.lift(pieces[:len(pieces)+n])
}

// ExplodeCollection is Explode returning a Collection
func (s Stringy) ExplodeCollection(delimiter string, limit ...int) *Collection {
	return NewCollection(s.Explode(delimiter, limit...)...)
}

// Lines splits the text on "\r\n", "\r" and "\n". Empty text yields one
// empty line.
func (s Stringy) Lines() []Stringy {
	return s.lift(utf8x.SplitLines(s.str))
}

// LinesCollection is Lines returning a Collection
func (s Stringy) LinesCollection() *Collection {
	return NewCollection(s.Lines()...)
}

// Words splits the text into words and the text between them. extraChars are
// treated as letters; removeEmpty drops blank pieces and a positive minLen
// drops pieces of minLen codepoints or fewer.
func (s Stringy) Words(extraChars string, removeEmpty bool, minLen ...int) []Stringy {
	n := 0
	if len(minLen) > 0 {
		n = minLen[0]
	}
	return s.lift(utf8x.Words(s.str, extraChars, removeEmpty, n))
}

// WordsCollection is Words returning a Collection
func (s Stringy) WordsCollection(extraChars string, removeEmpty bool, minLen ...int) *Collection {
	return NewCollection(s.Words(extraChars, removeEmpty, minLen...)...)
}
