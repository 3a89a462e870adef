// File: text_test.go
// Title: Unit Tests for Wrapping, Similarity and Text Helpers
// Description: Tests for word wrapping, truncation, excerpts, similarity,
//              common affixes, serialized data detection and whitespace helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial test implementation

package utf8x

import (
	"math"
	"reflect"
	"testing"
)

func TestWordWrap(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		cut      bool
		expected string
	}{
		{"break at spaces", "The quick brown fox", 10, true, "The quick\nbrown fox"},
		{"cut long word", "A very long woooooooooooord.", 8, true, "A very\nlong\nwooooooo\nooooord."},
		{"keep long word", "A very long woooooooooooord.", 8, false, "A very\nlong\nwoooooooooooord."},
		{"short text", "short", 10, false, "short"},
		{"empty", "", 10, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordWrap(tt.input, tt.width, "\n", tt.cut); got != tt.expected {
				t.Errorf("WordWrap(%q, %d) = %q; want %q", tt.input, tt.width, got, tt.expected)
			}
		})
	}
}

func TestWordWrapPerLine(t *testing.T) {
	got := WordWrapPerLine("ab cd\nef gh", 2, "\n", false, false, "")
	if got != "ab\ncd\nef\ngh" {
		t.Errorf("WordWrapPerLine() = %q; want %q", got, "ab\ncd\nef\ngh")
	}
	got = WordWrapPerLine("ab cd", 2, "<br>", false, true, "")
	if got != "ab<br>cd<br>" {
		t.Errorf("WordWrapPerLine() with final break = %q; want %q", got, "ab<br>cd<br>")
	}
}

func TestTruncation(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"Truncate", Truncate("Test foo bar", 7, "..."), "Test..."},
		{"Truncate longer limit", Truncate("Test", 10, "..."), "Test"},
		{"Truncate multi-byte", Truncate("fòôbàř", 4, ""), "fòôb"},
		{"SafeTruncate word boundary", SafeTruncate("Test foo bar", 7, "", true), "Test"},
		{"SafeTruncate full", SafeTruncate("Test foo bar", 12, "", true), "Test foo bar"},
		{"SafeTruncate before last word", SafeTruncate("Test foo bar", 11, "", true), "Test foo"},
		{"SafeTruncate suffix", SafeTruncate("Test foo bar", 10, "...", true), "Test..."},
		{"SafeTruncate single word kept", SafeTruncate("Testfoobar", 4, "", true), "Test"},
		{"SafeTruncate single word dropped", SafeTruncate("Testfoobar", 4, "", false), ""},
		{"LimitAfterWord", LimitAfterWord("Hello world foo", 8, "…"), "Hello…"},
		{"LimitAfterWord short", LimitAfterWord("Hello", 8, "…"), "Hello"},
		{"LimitAfterWord space at limit", LimitAfterWord("Hello world", 6, "…"), "Hello…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %q; want %q", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestExcerpt(t *testing.T) {
	text := "This is only a Fork of Stringy, take a look at the new features."
	if got := Excerpt(text, "Stringy", 15, "…"); got != "…Fork of Stringy…" {
		t.Errorf("Excerpt() = %q; want %q", got, "…Fork of Stringy…")
	}
	if got := Excerpt(text, "", 10, "…"); got != "This is only…" {
		t.Errorf("Excerpt() without search = %q; want %q", got, "This is only…")
	}
	if got := Excerpt("", "x", 10, "…"); got != "" {
		t.Errorf("Excerpt(\"\") = %q", got)
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b     string
		expected float64
	}{
		{"World", "Word", 800.0 / 9.0},
		{"fòôbàř", "fòôbàř", 100},
		{"abc", "xyz", 0},
		{"", "", 0},
	}

	for _, tt := range tests {
		if got := Similarity(tt.a, tt.b); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("Similarity(%q, %q) = %v; want %v", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestLongestCommon(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"prefix", LongestCommonPrefix("fòôbar", "fòôbaz"), "fòôba"},
		{"prefix none", LongestCommonPrefix("abc", "xbc"), ""},
		{"suffix", LongestCommonSuffix("fòôbàř", "xbàř"), "bàř"},
		{"substring", LongestCommonSubstring("foobar", "bazbar"), "bar"},
		{"substring first longest", LongestCommonSubstring("fòô bàř", "bàř fòô"), "fòô"},
		{"substring empty", LongestCommonSubstring("", "abc"), ""},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s = %q; want %q", tt.name, tt.got, tt.expected)
		}
	}
}

func TestIsSerialized(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{`a:1:{s:3:"foo";s:3:"bar";}`, true},
		{`b:0;`, true},
		{`N;`, true},
		{`i:-12;`, true},
		{`d:0.5;`, true},
		{`s:5:"hello";`, true},
		{`s:4:"hello";`, false},
		{`O:8:"stdClass":1:{s:1:"a";i:1;}`, true},
		{`a:2:{i:0;s:1:"a";}`, false},
		{`i:1;trailing`, false},
		{`foo`, false},
		{``, false},
	}

	for _, tt := range tests {
		if got := IsSerialized(tt.input); got != tt.expected {
			t.Errorf("IsSerialized(%q) = %v; want %v", tt.input, got, tt.expected)
		}
	}
}

func TestWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"CollapseWhitespace", CollapseWhitespace("  foo   bar  "), "foo bar"},
		{"CollapseWhitespace unicode", CollapseWhitespace("foo 　bar"), "foo bar"},
		{"StripWhitespace", StripWhitespace(" a b\tc\n"), "abc"},
		{"Trim default", Trim("  fòô 　", ""), "fòô"},
		{"Trim chars", Trim("xxaxx", "x"), "a"},
		{"TrimLeft", TrimLeft("  a  ", ""), "a  "},
		{"TrimRight chars", TrimRight("a--", "-"), "a"},
		{"TabsToSpaces", TabsToSpaces("\ta", 2), "  a"},
		{"SpacesToTabs", SpacesToTabs("    a", 4), "\ta"},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s = %q; want %q", tt.name, tt.got, tt.expected)
		}
	}

	if got := SplitLines(""); !reflect.DeepEqual(got, []string{""}) {
		t.Errorf("SplitLines(\"\") = %q; want one empty line", got)
	}
	if got := SplitLines("a\r\nb\rc\nd"); !reflect.DeepEqual(got, []string{"a", "b", "c", "d"}) {
		t.Errorf("SplitLines() = %q", got)
	}
}

func TestGraphemes(t *testing.T) {
	s := "éx🇩🇪"
	if got := GraphemeCount(s); got != 3 {
		t.Errorf("GraphemeCount(%q) = %d; want 3", s, got)
	}
	if got := Graphemes(s); !reflect.DeepEqual(got, []string{"é", "x", "🇩🇪"}) {
		t.Errorf("Graphemes(%q) = %q", s, got)
	}
}
