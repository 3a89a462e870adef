// File: benchmark_test.go
// Title: Performance Benchmarks for Stringy Operations
// Description: Benchmarks for construction, codepoint access, case mapping,
//              searching, splitting and collection building.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial benchmark implementation

package stringy

import (
	"strings"
	"testing"
)

var benchText = strings.Repeat("Fòô bàř, the quick brown fox. ", 20)

func BenchmarkNew(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = New(benchText)
	}
}

func BenchmarkLength(b *testing.B) {
	s := New(benchText)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Length()
	}
}

func BenchmarkAt(b *testing.B) {
	s := New(benchText)
	n := s.Length()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.At(i % n)
	}
}

func BenchmarkToUpperCase(b *testing.B) {
	s := New(benchText)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.ToUpperCase()
	}
}

func BenchmarkSnakeCase(b *testing.B) {
	s := New("Fòô Bàř camelCaseText with-dashes")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.SnakeCase()
	}
}

func BenchmarkIndexOfIgnoreCase(b *testing.B) {
	s := New(benchText + "NEEDLE")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.IndexOfIgnoreCase("needle")
	}
}

func BenchmarkExplode(b *testing.B) {
	s := New(benchText)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Explode(",")
	}
}

func BenchmarkSlugify(b *testing.B) {
	s := New("Using strings like fòô bàř & more")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Slugify()
	}
}

func BenchmarkFormat(b *testing.B) {
	s := New("%:name has %d apples and %s")
	named := map[string]any{"name": "Lars"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Format(named, i, "pears")
	}
}

func BenchmarkCollectionAppend(b *testing.B) {
	items := []Part{Text("fòô"), New("bàř"), Text("baz")}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := NewCollection()
		for j := 0; j < 10; j++ {
			c.Append(items...)
		}
		_ = c.Implode(",")
	}
}
