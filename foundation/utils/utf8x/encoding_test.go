// File: encoding_test.go
// Title: Unit Tests for Encodings, Regex Helpers and Repair
// Description: Tests for encoding name normalization, transcoding, regex
//              based replacement and splitting, word splitting, UTF-8 repair
//              and random string generation.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial test implementation
// - 2026-10-16 v0.1.1: UTF-16 and ISO-2022-JP round trips

package utf8x

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	mdwerror "github.com/msto63/stringy/foundation/core/error"
)

func TestNormalizeEncoding(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "UTF-8"},
		{"utf8", "UTF-8"},
		{"UTF-8", "UTF-8"},
		{"latin1", "ISO-8859-1"},
		{"iso_8859-1", "ISO-8859-1"},
		{"cp1252", "WINDOWS-1252"},
		{"Shift_JIS", "SHIFT_JIS"},
		{"us-ascii", "ASCII"},
		{"bogus-encoding", "UTF-8"},
	}

	for _, tt := range tests {
		if got := NormalizeEncoding(tt.input); got != tt.expected {
			t.Errorf("NormalizeEncoding(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}

	if IsKnownEncoding("bogus-encoding") || !IsKnownEncoding("latin1") {
		t.Error("IsKnownEncoding() reports the wrong result")
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		from, to string
		expected string
	}{
		{"utf-8 to latin-1", "é", "UTF-8", "ISO-8859-1", "\xe9"},
		{"latin-1 to utf-8", "\xe9", "ISO-8859-1", "UTF-8", "é"},
		{"unsupported codepoint", "a日", "UTF-8", "ISO-8859-1", "a?"},
		{"to ascii", "fòô", "UTF-8", "ASCII", "f??"},
		{"same encoding", "fòô", "UTF-8", "utf8", "fòô"},
		{"windows-1252 euro", "€", "UTF-8", "cp1252", "\x80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.input, tt.from, tt.to, false)
			if err != nil {
				t.Fatalf("Convert() unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Convert(%q, %s, %s) = %q; want %q", tt.input, tt.from, tt.to, got, tt.expected)
			}
		})
	}
}

func TestConvertStatefulEncodings(t *testing.T) {
	encoded, err := Convert("ab", UTF8, "UTF-16", false)
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}
	if encoded != "\xfe\xff\x00a\x00b" {
		t.Errorf("Convert(ab, UTF-16) = % x; want a single byte order mark", encoded)
	}

	for _, name := range []string{"UTF-16", "UCS-2", "UTF-16LE", "ISO-2022-JP"} {
		t.Run(name, func(t *testing.T) {
			for _, input := range []string{"ab", "fòô bàř", "日本語テキスト"} {
				encoded, err := Convert(input, UTF8, name, false)
				if err != nil {
					t.Fatalf("Convert(%q, %s) unexpected error: %v", input, name, err)
				}
				decoded, err := Convert(encoded, name, UTF8, false)
				if err != nil {
					t.Fatalf("Convert(back from %s) unexpected error: %v", name, err)
				}
				if name == "ISO-2022-JP" && input == "fòô bàř" {
					input = "f?? b??"
				}
				if decoded != input {
					t.Errorf("round trip through %s = %q; want %q", name, decoded, input)
				}
			}
		})
	}

	if ASCIICompatible("UTF-16BE") || !ASCIICompatible("latin1") {
		t.Error("ASCIICompatible() reports the wrong result")
	}
}

func TestDetectEncoding(t *testing.T) {
	if got := DetectEncoding("abc"); got != ASCII {
		t.Errorf("DetectEncoding(ascii) = %q; want %q", got, ASCII)
	}
	if got := DetectEncoding("fòô"); got != UTF8 {
		t.Errorf("DetectEncoding(utf-8) = %q; want %q", got, UTF8)
	}
}

func TestRegexReplace(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		pattern     string
		replacement string
		modifiers   string
		expected    string
	}{
		{"multi-byte class", "fòô bàř", "f[òô]+", "bar", "", "bar bàř"},
		{"backslash reference", "Hello", "(l+)", `<\1>`, "", "He<ll>o"},
		{"dollar reference", "Hello", "(l+)", "<$1>x", "", "He<ll>xo"},
		{"literal dollar", "cost", "cost", "5$", "", "5$"},
		{"case insensitive", "FOO foo", "foo", "x", "i", "x x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RegexReplace(tt.input, tt.pattern, tt.replacement, tt.modifiers)
			if err != nil {
				t.Fatalf("RegexReplace() unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("RegexReplace(%q, %q, %q) = %q; want %q", tt.input, tt.pattern, tt.replacement, got, tt.expected)
			}
		})
	}

	_, err := RegexReplace("x", "(", "", "")
	if err == nil || !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
		t.Errorf("RegexReplace() with a broken pattern = %v; want INVALID_FORMAT", err)
	}
	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) || mdwErr.Operation() != "Compile" {
		t.Errorf("RegexReplace() error should carry the operation, got %v", err)
	}
}

func TestSplitPattern(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		pattern  string
		limit    int
		expected []string
	}{
		{"all pieces", "a,b,c", ",", -1, []string{"a", "b", "c"}},
		{"limit", "a,b,c", ",", 2, []string{"a", "b"}},
		{"limit above count", "a,b", ",", 5, []string{"a", "b"}},
		{"zero limit", "a,b,c", ",", 0, []string{}},
		{"empty input", "", ",", -1, []string{}},
		{"empty pattern", "abc", "", -1, []string{"abc"}},
		{"regex", "a1b22c", `\d+`, -1, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitPattern(tt.input, tt.pattern, tt.limit)
			if err != nil {
				t.Fatalf("SplitPattern() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitPattern(%q, %q, %d) = %q; want %q", tt.input, tt.pattern, tt.limit, got, tt.expected)
			}
		})
	}
}

func TestWildcard(t *testing.T) {
	tests := []struct {
		input    string
		pattern  string
		expected bool
	}{
		{"foobar", "foo*", true},
		{"foobar", "*bar", true},
		{"foobar", "f*r", true},
		{"foobar", "baz*", false},
		{"foo.bar", "foo.*", true},
		{"fooxbar", "foo.bar", false},
		{"*", "*", true},
	}

	for _, tt := range tests {
		if got := Wildcard(tt.input, tt.pattern); got != tt.expected {
			t.Errorf("Wildcard(%q, %q) = %v; want %v", tt.input, tt.pattern, got, tt.expected)
		}
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		extra       string
		removeEmpty bool
		minLen      int
		expected    []string
	}{
		{"with delimiters", "Hello world", "", false, 0, []string{"", "Hello", " ", "world", ""}},
		{"remove empty", "Hello world", "", true, 0, []string{"Hello", "world"}},
		{"apostrophe", "it's fine", "", true, 0, []string{"it's", "fine"}},
		{"extra chars", "foo_bar baz", "_", true, 0, []string{"foo_bar", "baz"}},
		{"min length", "a bb ccc", "", true, 2, []string{"ccc"}},
		{"empty input", "", "", false, 0, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.input, tt.extra, tt.removeEmpty, tt.minLen)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Words(%q) = %q; want %q", tt.input, got, tt.expected)
			}
			if !tt.removeEmpty && tt.minLen == 0 && strings.Join(got, "") != tt.input {
				t.Errorf("Words(%q) pieces do not rejoin to the input", tt.input)
			}
		})
	}
}

func TestReplaceFold(t *testing.T) {
	if got := ReplaceFold("FÒÔ fòô bar", "fòô", "x"); got != "x x bar" {
		t.Errorf("ReplaceFold() = %q; want %q", got, "x x bar")
	}
	if got := ReplaceFold("abc", "", "x"); got != "abc" {
		t.Errorf("ReplaceFold() with empty search = %q", got)
	}
}

func TestRepair(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(string) string
		input    string
		expected string
	}{
		{"Repair valid", Repair, "fòô", "fòô"},
		{"Repair latin-1 byte", Repair, "a\xe9b", "aéb"},
		{"Utf8ify bom and control", Utf8ify, "\uFEFFabc\x00", "abc"},
		{"Utf8ify double encoded", Utf8ify, "Ã¼ber", "über"},
		{"Utf8ify keeps text", Utf8ify, "Düsseldorf\n", "Düsseldorf\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.input); got != tt.expected {
				t.Errorf("%s(%q) = %q; want %q", tt.name, tt.input, got, tt.expected)
			}
		})
	}
}

func TestRandomString(t *testing.T) {
	got, err := RandomString(12, "äöü")
	if err != nil {
		t.Fatalf("RandomString() unexpected error: %v", err)
	}
	if Len(got) != 12 {
		t.Errorf("RandomString() length = %d; want 12", Len(got))
	}
	for _, r := range got {
		if !strings.ContainsRune("äöü", r) {
			t.Errorf("RandomString() produced %q outside the alphabet", r)
		}
	}

	if got, _ := RandomString(0, ""); got != "" {
		t.Errorf("RandomString(0) = %q; want empty", got)
	}

	pw, err := RandomPassword(16)
	if err != nil || Len(pw) != 16 {
		t.Errorf("RandomPassword(16) = %q, %v", pw, err)
	}
}

func TestShuffle(t *testing.T) {
	in := "fòôbàř"
	out := Shuffle(in)
	if Len(out) != Len(in) {
		t.Fatalf("Shuffle() changed the length: %q", out)
	}
	for _, r := range in {
		if strings.Count(out, string(r)) != strings.Count(in, string(r)) {
			t.Errorf("Shuffle() lost codepoint %q", r)
		}
	}
}
