// File: search_test.go
// Title: Unit Tests for Search, Predicates and Formatting
// Description: Tests for index lookup, containment, wildcards, equality
//              checks, boolean predicates, similarity and Format.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial test implementation
// - 2026-10-16 v0.1.1: Format with scalar texts and typed named maps

package stringy

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestIndexOf(t *testing.T) {
	s := New("fòôbàřbàř")
	tests := []struct {
		name     string
		got      int
		expected int
	}{
		{"IndexOf", s.IndexOf("b"), 3},
		{"IndexOf offset", s.IndexOf("b", 4), 6},
		{"IndexOf missing", s.IndexOf("x"), -1},
		{"IndexOf multibyte", s.IndexOf("àř"), 4},
		{"IndexOfIgnoreCase", s.IndexOfIgnoreCase("BÀ"), 3},
		{"IndexOfLast", s.IndexOfLast("b"), 6},
		{"IndexOfLast missing", s.IndexOfLast("x"), -1},
		{"IndexOfLastIgnoreCase", s.IndexOfLastIgnoreCase("B"), 6},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s = %d; want %d", tt.name, tt.got, tt.expected)
		}
	}
}

func TestContains(t *testing.T) {
	s := New("fòô bàř")
	tests := []struct {
		name     string
		got      bool
		expected bool
	}{
		{"Contains", s.Contains("ô b"), true},
		{"Contains case sensitive", s.Contains("ÔB"), false},
		{"Contains case insensitive", s.Contains("Ô B", false), true},
		{"ContainsAll", s.ContainsAll([]string{"fòô", "bàř"}), true},
		{"ContainsAll partial", s.ContainsAll([]string{"fòô", "x"}), false},
		{"ContainsAll empty list", s.ContainsAll(nil), false},
		{"ContainsAny", s.ContainsAny([]string{"x", "bàř"}), true},
		{"ContainsAny none", s.ContainsAny([]string{"x", "y"}), false},
		{"StartsWith", s.StartsWith("fòô"), true},
		{"StartsWith case insensitive", s.StartsWith("FÒÔ", false), true},
		{"StartsWith miss", s.StartsWith("bàř"), false},
		{"StartsWithAny", s.StartsWithAny([]string{"x", "fò"}), true},
		{"EndsWith", s.EndsWith("bàř"), true},
		{"EndsWith case insensitive", s.EndsWith("BÀŘ", false), true},
		{"EndsWithAny", s.EndsWithAny([]string{"x", "y"}), false},
		{"Is wildcard", s.Is("fòô*"), true},
		{"Is wildcard middle", s.Is("f*ř"), true},
		{"Is anchored", s.Is("*fòô"), false},
		{"Is exact", s.Is("fòô bàř"), true},
		{"In", New("bàř").In("fòô bàř baz"), true},
		{"In case insensitive", New("BÀŘ").In("fòô bàř", false), true},
		{"In miss", New("x").In("fòô"), false},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s = %v; want %v", tt.name, tt.got, tt.expected)
		}
	}
}

func TestCountSubstr(t *testing.T) {
	s := New("fòô FÒÔ fòô")
	if got := s.CountSubstr("fòô"); got != 2 {
		t.Errorf("CountSubstr = %d; want 2", got)
	}
	if got := s.CountSubstr("fòô", false); got != 3 {
		t.Errorf("CountSubstr case insensitive = %d; want 3", got)
	}
	if got := New("aaaa").CountSubstr("aa"); got != 2 {
		t.Errorf("CountSubstr overlapping = %d; want 2", got)
	}
}

func TestIsEquals(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		args     []any
		expected bool
	}{
		{"string", "fòô", []any{"fòô"}, true},
		{"value", "fòô", []any{New("fòô")}, true},
		{"several", "fòô", []any{"fòô", New("fòô")}, true},
		{"one differs", "fòô", []any{"fòô", "bàř"}, false},
		{"case differs", "fòô", []any{"FÒÔ"}, false},
		{"int", "5", []any{5}, true},
		{"float", "1.5", []any{1.5}, true},
		{"bool", "1", []any{true}, true},
		{"no arguments", "fòô", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.value)
			for _, fn := range []func(...any) (bool, error){s.IsEquals, s.IsEqualsCaseSensitive, s.MatchCaseSensitive} {
				got, err := fn(tt.args...)
				if err != nil {
					t.Fatalf("error = %v", err)
				}
				if got != tt.expected {
					t.Errorf("IsEquals(%v) = %v; want %v", tt.args, got, tt.expected)
				}
			}
		})
	}

	if ok, err := New("fòô").IsEqualsCaseInsensitive("FÒÔ", New("Fòô")); err != nil || !ok {
		t.Errorf("IsEqualsCaseInsensitive = %v, %v; want true", ok, err)
	}
	if ok, _ := New("fòô").MatchCaseInsensitive("bàř"); ok {
		t.Error("MatchCaseInsensitive(bàř) = true; want false")
	}

	for _, arg := range []any{[]string{"fòô"}, map[string]string{}, struct{}{}, nil} {
		if _, err := New("fòô").IsEquals(arg); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("IsEquals(%#v) error = %v; want ErrInvalidInput", arg, err)
		}
		if _, err := New("fòô").IsEqualsCaseInsensitive(arg); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("IsEqualsCaseInsensitive(%#v) error = %v; want ErrInvalidInput", arg, err)
		}
	}
}

func TestCharacterPredicates(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(Stringy) bool
		input    string
		expected bool
	}{
		{"IsAlpha", Stringy.IsAlpha, "fòôbàř", true},
		{"IsAlpha digit", Stringy.IsAlpha, "fòô1", false},
		{"IsAlphanumeric", Stringy.IsAlphanumeric, "fòô1", true},
		{"IsAlphanumeric space", Stringy.IsAlphanumeric, "fòô 1", false},
		{"IsHexadecimal", Stringy.IsHexadecimal, "abcDEF09", true},
		{"IsHexadecimal miss", Stringy.IsHexadecimal, "abg", false},
		{"IsLowerCase", Stringy.IsLowerCase, "fòôbàř", true},
		{"IsLowerCase mixed", Stringy.IsLowerCase, "fòôBàř", false},
		{"IsUpperCase", Stringy.IsUpperCase, "FÒÔBÀŘ", true},
		{"HasLowerCase", Stringy.HasLowerCase, "FÒÔbÀŘ", true},
		{"HasUpperCase", Stringy.HasUpperCase, "fòôbàř", false},
		{"IsPunctuation", Stringy.IsPunctuation, "!?.,", true},
		{"IsPunctuation letter", Stringy.IsPunctuation, "!a", false},
		{"IsPrintable", Stringy.IsPrintable, "fòô\tbàř\n", true},
		{"IsPrintable control", Stringy.IsPrintable, "fòô\x07", false},
		{"IsNumeric", Stringy.IsNumeric, "-12.5e3", true},
		{"IsNumeric text", Stringy.IsNumeric, "12a", false},
		{"IsBlank", Stringy.IsBlank, " \t\n", true},
		{"IsBlank content", Stringy.IsBlank, " a ", false},
		{"IsWhitespace", Stringy.IsWhitespace, "", true},
		{"IsEmpty", Stringy.IsEmpty, "", true},
		{"IsEmpty space", Stringy.IsEmpty, " ", false},
		{"IsNotEmpty", Stringy.IsNotEmpty, " ", true},
		{"IsHTML", Stringy.IsHTML, "<b>fòô</b>", true},
		{"IsHTML plain", Stringy.IsHTML, "fòô < bàř", false},
		{"IsSerialized string", Stringy.IsSerialized, `s:3:"foo";`, true},
		{"IsSerialized int", Stringy.IsSerialized, "i:5;", true},
		{"IsSerialized plain", Stringy.IsSerialized, "foo", false},
		{"IsBase64", func(s Stringy) bool { return s.IsBase64() }, "Zm9vYmFy", true},
		{"IsBase64 empty", func(s Stringy) bool { return s.IsBase64() }, "", true},
		{"IsBase64 empty not valid", func(s Stringy) bool { return s.IsBase64(false) }, "", false},
		{"IsBase64 bad char", func(s Stringy) bool { return s.IsBase64() }, "Zm9v!", false},
		{"IsBase64 unpadded", func(s Stringy) bool { return s.IsBase64() }, "Zm9", false},
		{"IsJSON object", func(s Stringy) bool { return s.IsJSON() }, `{"a": [1, 2]}`, true},
		{"IsJSON scalar", func(s Stringy) bool { return s.IsJSON() }, `"fòô"`, true},
		{"IsJSON scalar structured only", func(s Stringy) bool { return s.IsJSON(true) }, `123`, false},
		{"IsJSON array structured only", func(s Stringy) bool { return s.IsJSON(true) }, ` [1] `, true},
		{"IsJSON empty", func(s Stringy) bool { return s.IsJSON() }, "", false},
		{"IsJSON broken", func(s Stringy) bool { return s.IsJSON() }, "{", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(New(tt.input)); got != tt.expected {
				t.Errorf("%s(%q) = %v; want %v", tt.name, tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     []EmailOptions
		expected bool
	}{
		{"valid", "lars@moelleken.org", nil, true},
		{"no at", "lars.moelleken.org", nil, false},
		{"example allowed", "user@example.com", nil, true},
		{"example rejected", "user@example.com", []EmailOptions{{ExampleDomainCheck: true}}, false},
		{"empty", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.input).IsEmail(tt.opts...); got != tt.expected {
				t.Errorf("IsEmail(%q) = %v; want %v", tt.input, got, tt.expected)
			}
			if got := New(tt.input).IsEmailContext(t.Context(), tt.opts...); got != tt.expected {
				t.Errorf("IsEmailContext(%q) = %v; want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToBoolean(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true}, {"TRUE", true}, {"1", true}, {"on", true}, {"yes", true},
		{"false", false}, {"0", false}, {"off", false}, {"No", false},
		{"", false}, {"   ", false},
		{"2.5", true}, {"-1", false}, {"0.0", false},
		{"lall", true},
	}

	for _, tt := range tests {
		if got := New(tt.input).ToBoolean(); got != tt.expected {
			t.Errorf("ToBoolean(%q) = %v; want %v", tt.input, got, tt.expected)
		}
	}
}

func TestSimilarity(t *testing.T) {
	if got := New("World").Similarity("Word"); math.Abs(got-800.0/9) > 1e-9 {
		t.Errorf("Similarity(World, Word) = %v; want %v", got, 800.0/9)
	}
	if got := New("fòô").Similarity("fòô"); got != 100 {
		t.Errorf("Similarity of equal texts = %v; want 100", got)
	}
	if !New("World").IsSimilar("Word") {
		t.Error("IsSimilar(World, Word) = false; want true")
	}
	if New("Hello").IsSimilar("World") {
		t.Error("IsSimilar(Hello, World) = true; want false")
	}
	if got := New("Hello").Similarity("World"); got != 20 {
		t.Errorf("Similarity(Hello, World) = %v; want 20", got)
	}
	if !New("Hello").IsSimilar("World", 20) {
		t.Error("IsSimilar(Hello, World, 20) = false; want true")
	}
}

func TestLongestCommon(t *testing.T) {
	s := New("fòôbàř")
	if got := s.LongestCommonPrefix("fòôbar").String(); got != "fòôb" {
		t.Errorf("LongestCommonPrefix = %q; want fòôb", got)
	}
	if got := s.LongestCommonSuffix("xbàř").String(); got != "bàř" {
		t.Errorf("LongestCommonSuffix = %q; want bàř", got)
	}
	if got := s.LongestCommonSubstring("xxôbàyy").String(); got != "ôbà" {
		t.Errorf("LongestCommonSubstring = %q; want ôbà", got)
	}
	if got := s.LongestCommonPrefix("").String(); got != "" {
		t.Errorf("LongestCommonPrefix with empty = %q", got)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		args     []any
		expected string
	}{
		{"named", "There are %:count monkeys in the %:location",
			[]any{map[string]any{"count": 5, "location": "tree"}}, "There are 5 monkeys in the tree"},
		{"longer names first", "%:name and %:names",
			[]any{map[string]any{"name": "x", "names": "y"}}, "x and y"},
		{"positional", "%s and %d", []any{"fòô", 3}, "fòô and 3"},
		{"argument indexes", "%2$s %1$s", []any{"a", "b"}, "b a"},
		{"mixed", "%:who has %d apples", []any{map[string]any{"who": "Lars"}, 3}, "Lars has 3 apples"},
		{"leftover marker", "100%: done", nil, "100%: done"},
		{"unknown name", "%:missing", []any{map[string]any{"other": 1}}, "%:missing"},
		{"plain", "fòô", nil, "fòô"},
		{"number as text", "%s apples", []any{5}, "5 apples"},
		{"float as text", "%s", []any{1.5}, "1.5"},
		{"width on text", "[%5s]", []any{42}, "[   42]"},
		{"numeric text as integer", "%03d", []any{"7"}, "007"},
		{"integer as float", "%.1f", []any{2}, "2.0"},
		{"string valued map", "Hi %:name", []any{map[string]string{"name": "Bob"}}, "Hi Bob"},
		{"int valued map", "%:n items", []any{map[string]int{"n": 3}}, "3 items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.format).Format(tt.args...).String(); got != tt.expected {
				t.Errorf("Format(%q) = %q; want %q", tt.format, got, tt.expected)
			}
		})
	}
}

func TestReverseAndShuffle(t *testing.T) {
	if got := New("fòôbàř").Reverse().String(); got != "řàbôòf" {
		t.Errorf("Reverse = %q; want řàbôòf", got)
	}

	s := New("fòôbàř")
	shuffled := s.Shuffle()
	if shuffled.Length() != s.Length() {
		t.Fatalf("Shuffle changed the length to %d", shuffled.Length())
	}
	want, got := s.Chars(), shuffled.Chars()
	slices.Sort(want)
	slices.Sort(got)
	if !slices.Equal(want, got) {
		t.Errorf("Shuffle changed the characters: %q", shuffled.String())
	}
}
