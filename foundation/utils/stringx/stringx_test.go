// File: stringx_test.go
// Title: Unit Tests for the StringX Facade
// Description: Unit tests for construction, encoding, indexed access,
//              search, predicates, transformation, codecs and the
//              validation helpers. Facade results are compared against the
//              value methods they delegate to.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-15 v0.2.0: Facade tests

package stringx

import (
	"errors"
	"slices"
	"testing"

	mdwerror "github.com/msto63/stringy/foundation/core/error"
	"github.com/msto63/stringy/pkg/stringy"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"string", "fòô", "fòô"},
		{"int", 42, "42"},
		{"float", 1.5, "1.5"},
		{"bool", true, "1"},
		{"value", stringy.New("bàř"), "bàř"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Create(tt.input)
			if err != nil {
				t.Fatalf("Create(%v) error = %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("Create(%v) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}

	if _, err := Create([]string{"x"}); !errors.Is(err, stringy.ErrInvalidInput) {
		t.Errorf("Create(slice) error = %v; want ErrInvalidInput", err)
	}
}

func TestEncodingFunctions(t *testing.T) {
	if got := Length("fòô", ""); got != 3 {
		t.Errorf("Length(fòô, \"\") = %d; want 3", got)
	}
	if got := Length("\xe0\xe9", "latin1"); got != 2 {
		t.Errorf("Length(latin1 bytes) = %d; want 2", got)
	}
	if got := Count("こんにちは"); got != 5 {
		t.Errorf("Count() = %d; want 5", got)
	}

	latin, err := Encode("fòô", "ISO-8859-1")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if latin != "f\xf2\xf4" {
		t.Errorf("Encode(fòô, ISO-8859-1) = %q; want %q", latin, "f\xf2\xf4")
	}
	if got := Length(latin, "ISO-8859-1"); got != 3 {
		t.Errorf("Length(encoded) = %d; want 3", got)
	}

	if got := SetInternalEncoding("x", "latin1"); got != "ISO-8859-1" {
		t.Errorf("SetInternalEncoding(latin1) = %q; want ISO-8859-1", got)
	}
	if got := SetInternalEncoding("x", "no-such-charset"); got != stringy.DefaultEncoding {
		t.Errorf("SetInternalEncoding(unknown) = %q; want %q", got, stringy.DefaultEncoding)
	}
}

func TestIndexedAccess(t *testing.T) {
	s := "fòôbàř"

	if got := At(s, 1); got != "ò" {
		t.Errorf("At(1) = %q; want ò", got)
	}
	if got := At(s, -1); got != "ř" {
		t.Errorf("At(-1) = %q; want ř", got)
	}
	if got := At(s, 10); got != "" {
		t.Errorf("At(10) = %q; want empty", got)
	}
	if !OffsetExists(s, 5) || OffsetExists(s, 6) {
		t.Error("OffsetExists() reports the wrong bounds")
	}
	if _, err := OffsetGet(s, 6); !errors.Is(err, stringy.ErrOutOfRange) {
		t.Errorf("OffsetGet(6) error = %v; want ErrOutOfRange", err)
	}
	if got, ok := TryCharAt(s, 3); !ok || got != "b" {
		t.Errorf("TryCharAt(3) = %q, %v; want b, true", got, ok)
	}

	var collected []string
	for c := range Iterator(s) {
		collected = append(collected, c)
	}
	if !slices.Equal(collected, Chars(s)) {
		t.Errorf("Iterator() = %q; want %q", collected, Chars(s))
	}

	chunks, err := Chunk(s, 4)
	if err != nil {
		t.Fatalf("Chunk() error = %v", err)
	}
	if !slices.Equal(chunks, []string{"fòôb", "àř"}) {
		t.Errorf("Chunk(4) = %q", chunks)
	}
	if got := GraphemeCount("éx"); got != 2 {
		t.Errorf("GraphemeCount() = %d; want 2", got)
	}
}

// TestFacadeParity checks that every facade function returns the text of
// the value method it wraps
func TestFacadeParity(t *testing.T) {
	const input = "  Fòô bàř <b>Baz</b>, fòô!  "
	v := stringy.New(input)

	tests := []struct {
		name   string
		facade string
		method stringy.Stringy
	}{
		{"Trim", Trim(input), v.Trim()},
		{"CollapseWhitespace", CollapseWhitespace(input), v.CollapseWhitespace()},
		{"StripWhitespace", StripWhitespace(input), v.StripWhitespace()},
		{"ToUpperCase", ToUpperCase(input), v.ToUpperCase()},
		{"SnakeCase", SnakeCase(input), v.SnakeCase()},
		{"Slugify", Slugify(input), v.Slugify()},
		{"ToASCII", ToASCII(input), v.ToASCII()},
		{"RemoveHTML", RemoveHTML(input), v.RemoveHTML()},
		{"Escape", Escape(input), v.Escape()},
		{"HTMLEncode", HTMLEncode(input), v.HTMLEncode()},
		{"URLEncode", URLEncode(input), v.URLEncode()},
		{"Base64Encode", Base64Encode(input), v.Base64Encode()},
		{"HexEncode", HexEncode(input), v.HexEncode()},
		{"MD5", MD5(input), v.MD5()},
		{"SHA256", SHA256(input), v.SHA256()},
		{"Reverse", Reverse(input), v.Reverse()},
		{"Substr", Substr(input, 2, 3), v.Substr(2, 3)},
		{"Between", Between(input, "<b>", "</b>"), v.Between("<b>", "</b>")},
		{"AfterLast", AfterLast(input, ","), v.AfterLast(",")},
		{"Replace", Replace(input, "fòô", "x", false), v.Replace("fòô", "x", false)},
		{"PadBoth", PadBoth(input, 40, "*"), v.PadBoth(40, "*")},
		{"Truncate", Truncate(input, 10, "…"), v.Truncate(10, "…")},
		{"SafeTruncate", SafeTruncate(input, 12, "…"), v.SafeTruncate(12, "…")},
		{"LineWrapAfterWord", LineWrapAfterWord(input, 8), v.LineWrapAfterWord(8)},
		{"EnsureRight", EnsureRight(input, "!"), v.EnsureRight("!")},
		{"Nth", Nth(input, 2), v.Nth(2)},
		{"Tidy", Tidy(input), v.Tidy()},
		{"LongestCommonPrefix", LongestCommonPrefix(input, "  Fòx"), v.LongestCommonPrefix("  Fòx")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.facade != tt.method.String() {
				t.Errorf("%s() = %q; method gives %q", tt.name, tt.facade, tt.method.String())
			}
		})
	}

	if IndexOf(input, "bàř") != v.IndexOf("bàř") || CountSubstr(input, "fòô", false) != v.CountSubstr("fòô", false) {
		t.Error("search results differ from the value methods")
	}
	if IsHTML(input) != v.IsHTML() || IsBlank(input) != v.IsBlank() || ToBoolean(input) != v.ToBoolean() {
		t.Error("predicates differ from the value methods")
	}
	if CRC32(input) != v.CRC32() || Similarity(input, "fòô") != v.Similarity("fòô") {
		t.Error("numeric results differ from the value methods")
	}
}

func TestSplitters(t *testing.T) {
	if got := Explode("a,b,,c", ","); !slices.Equal(got, []string{"a", "b", "", "c"}) {
		t.Errorf("Explode() = %q", got)
	}
	if got := Lines("a\r\nb\nc"); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Lines() = %q", got)
	}

	pieces, err := Split("fòô1bàř22baz", `\d+`)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if !slices.Equal(pieces, []string{"fòô", "bàř", "baz"}) {
		t.Errorf("Split() = %q", pieces)
	}
	if _, err := Split("x", `(`); !errors.Is(err, stringy.ErrBackend) {
		t.Errorf("Split(bad pattern) error = %v; want ErrBackend", err)
	}

	c := ExplodeCollection("a b c", " ")
	if c.Count() != 3 || c.Implode("+") != "a+b+c" {
		t.Errorf("ExplodeCollection() = %q", c.ToStrings())
	}
}

func TestFallibleFunctions(t *testing.T) {
	if _, err := Pad("x", 5, " ", "center"); !errors.Is(err, stringy.ErrInvalidInput) {
		t.Errorf("Pad(center) error = %v; want ErrInvalidInput", err)
	}
	padded, err := Pad("x", 3, "-", "left")
	if err != nil || padded != "--x" {
		t.Errorf("Pad(left) = %q, %v; want --x", padded, err)
	}

	replaced, err := RegexReplace("fòô bàř", `b(.)`, `[$1]`, "")
	if err != nil || replaced != "fòô [à]ř" {
		t.Errorf("RegexReplace() = %q, %v", replaced, err)
	}

	if _, err := Hash("x", "unknown"); !errors.Is(err, stringy.ErrBackend) {
		t.Errorf("Hash(unknown) error = %v; want ErrBackend", err)
	}

	ok, err := IsEqualsCaseInsensitive("FÒÔ", "fòô", stringy.New("Fòô"))
	if err != nil || !ok {
		t.Errorf("IsEqualsCaseInsensitive() = %v, %v; want true", ok, err)
	}
}

func TestFormat(t *testing.T) {
	result := Format("%:name has %d apples", map[string]any{"name": "Lars"}, 3)
	if result != "Lars has 3 apples" {
		t.Errorf("Format() = %q; want %q", result, "Lars has 3 apples")
	}
}

func TestFirstNonEmptyAndBlank(t *testing.T) {
	tests := []struct {
		name          string
		input         []string
		expectedEmpty string
		expectedBlank string
	}{
		{"no arguments", nil, "", ""},
		{"all empty", []string{"", ""}, "", ""},
		{"whitespace first", []string{"", "  ", "x"}, "  ", "x"},
		{"value first", []string{"a", "b"}, "a", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstNonEmpty(tt.input...); got != tt.expectedEmpty {
				t.Errorf("FirstNonEmpty(%q) = %q; want %q", tt.input, got, tt.expectedEmpty)
			}
			if got := FirstNonBlank(tt.input...); got != tt.expectedBlank {
				t.Errorf("FirstNonBlank(%q) = %q; want %q", tt.input, got, tt.expectedBlank)
			}
		})
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"required ok", ValidateRequired("x"), false},
		{"required empty", ValidateRequired(""), true},
		{"not blank ok", ValidateNotBlank(" x "), false},
		{"not blank spaces", ValidateNotBlank(" \t"), true},
		{"length ok", ValidateLength("fòô", 1, 3), false},
		{"length too short", ValidateLength("fòô", 4, 0), true},
		{"length too long", ValidateLength("fòôbàř", 0, 5), true},
		{"length unbounded", ValidateLength("", 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if (tt.err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", tt.err, tt.wantErr)
			}
			if tt.err == nil {
				return
			}
			var e *mdwerror.Error
			if !errors.As(tt.err, &e) || e.Code() != mdwerror.CodeValidationFailed {
				t.Errorf("error = %v; want a VALIDATION_FAILED error", tt.err)
			}
		})
	}
}

func TestTruncateWithValidation(t *testing.T) {
	result, err := TruncateWithValidation("fòôbàř", 4, "…")
	if err != nil || result != "fòô…" {
		t.Errorf("TruncateWithValidation() = %q, %v; want fòô…", result, err)
	}

	if _, err := TruncateWithValidation("x", -1, ""); err == nil {
		t.Error("TruncateWithValidation(-1) should fail")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustTruncate(-1) should panic")
		}
	}()
	MustTruncate("x", -1, "")
}

func TestDefaults(t *testing.T) {
	if got := FromDefault("", "d"); got != "d" {
		t.Errorf("FromDefault(\"\") = %q; want d", got)
	}
	if got := FromDefault(" ", "d"); got != " " {
		t.Errorf("FromDefault(\" \") = %q; want a space", got)
	}
	if got := FromBlankDefault(" ", "d"); got != "d" {
		t.Errorf("FromBlankDefault(\" \") = %q; want d", got)
	}
	if !IsNotBlank("x") || IsNotBlank("\n") {
		t.Error("IsNotBlank() is wrong")
	}
}
