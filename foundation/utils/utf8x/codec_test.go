// File: codec_test.go
// Title: Unit Tests for HTML and URL Codecs
// Description: Tests for entity encoding and decoding with quote modes, tag
//              stripping, break removal and the URL encoders and decoders.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial test implementation
// - 2026-10-16 v0.1.1: Hex escapes

package utf8x

import "testing"

func TestHTMLEncode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		mode     QuoteMode
		expected string
	}{
		{"markup and latin-1", `<a href="x">é</a>`, QuotesDouble, "&lt;a href=&quot;x&quot;&gt;&eacute;&lt;/a&gt;"},
		{"single quote kept", "it's", QuotesDouble, "it's"},
		{"single quote encoded", "it's", QuotesBoth, "it&#039;s"},
		{"no quotes", `"x"`, QuotesNone, `"x"`},
		{"numeric fallback", "日", QuotesDouble, "&#26085;"},
		{"euro sign", "5€", QuotesDouble, "5&euro;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTMLEncode(tt.input, tt.mode); got != tt.expected {
				t.Errorf("HTMLEncode(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestHTMLDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		mode     QuoteMode
		expected string
	}{
		{"nested entities", "&lt;b&gt; &amp;amp; &eacute;", QuotesDouble, "<b> & é"},
		{"single quote kept", "&#039;", QuotesDouble, "&#039;"},
		{"single quote decoded", "&#039;", QuotesBoth, "'"},
		{"double quote kept", "&quot;", QuotesNone, "&quot;"},
		{"numeric", "&#26085;&#x65E5;", QuotesDouble, "日日"},
		{"plain text", "no entities", QuotesDouble, "no entities"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTMLDecode(tt.input, tt.mode); got != tt.expected {
				t.Errorf("HTMLDecode(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestHTMLRoundTrip(t *testing.T) {
	inputs := []string{"", "fòôbàř", `<p class="x">Tom & 'Jerry'</p>`, "日本語 €"}
	for _, in := range inputs {
		if got := HTMLDecode(HTMLEncode(in, QuotesBoth), QuotesBoth); got != in {
			t.Errorf("HTMLDecode(HTMLEncode(%q)) = %q", in, got)
		}
	}
}

func TestEscape(t *testing.T) {
	got := Escape(`<a href='x'>"&"</a>`)
	want := "&lt;a href=&#039;x&#039;&gt;&quot;&amp;&quot;&lt;/a&gt;"
	if got != want {
		t.Errorf("Escape() = %q; want %q", got, want)
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		allowable string
		expected  string
	}{
		{"all tags", "<p>Hello <b>World</b></p>", "", "Hello World"},
		{"allowable", "<p>Hello <b>World</b></p>", "<b>", "Hello <b>World</b>"},
		{"comment", "a<!-- hidden -->b", "", "ab"},
		{"self closing", "line<br/>break", "<br>", "line<br/>break"},
		{"no markup", "plain", "", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripTags(tt.input, tt.allowable); got != tt.expected {
				t.Errorf("StripTags(%q, %q) = %q; want %q", tt.input, tt.allowable, got, tt.expected)
			}
		})
	}
}

func TestHTMLHelpers(t *testing.T) {
	if !IsHTML("<b>x</b>") || IsHTML("a < b") || IsHTML("") {
		t.Error("IsHTML detection is wrong")
	}
	if got := RemoveHTMLBreak("a\r\nb<br/>c\nd<BR>e", " "); got != "a b c d e" {
		t.Errorf("RemoveHTMLBreak() = %q; want %q", got, "a b c d e")
	}
	if got := StripEmptyTags("<p></p><b>x</b><i> </i>"); got != "<b>x</b>" {
		t.Errorf("StripEmptyTags() = %q; want %q", got, "<b>x</b>")
	}
	css := "body { color: red; } @media (max-width: 600px) { body { color: blue; } }"
	if got := StripMediaQueries(css); got != "body { color: red; } " {
		t.Errorf("StripMediaQueries() = %q", got)
	}
}

func TestURLEncode(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(string) string
		input    string
		expected string
	}{
		{"URLEncode", URLEncode, "a b&c~", "a+b%26c%7E"},
		{"URLEncode multi-byte", URLEncode, "fòô", "f%C3%B2%C3%B4"},
		{"URLEncodeRaw", URLEncodeRaw, "a b~+", "a%20b~%2B"},
		{"URLDecode", URLDecode, "a+b%26c", "a b&c"},
		{"URLDecode malformed", URLDecode, "100%", "100%"},
		{"URLDecode bad hex", URLDecode, "%zz", "%zz"},
		{"URLDecodeRaw", URLDecodeRaw, "a+b%20c", "a+b c"},
		{"URLDecodeMulti", URLDecodeMulti, "%253Cb%253E", "<b>"},
		{"URLDecodeMulti percent u", URLDecodeMulti, "caf%u00e9", "café"},
		{"URLDecodeRawMulti", URLDecodeRawMulti, "a+b%2520c", "a+b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.input); got != tt.expected {
				t.Errorf("%s(%q) = %q; want %q", tt.name, tt.input, got, tt.expected)
			}
		})
	}
}

func TestURLRoundTrip(t *testing.T) {
	inputs := []string{"", "fòô bàř", "a+b=c&d", "~user/path?q=1"}
	for _, in := range inputs {
		if got := URLDecode(URLEncode(in)); got != in {
			t.Errorf("URLDecode(URLEncode(%q)) = %q", in, got)
		}
		if got := URLDecodeRaw(URLEncodeRaw(in)); got != in {
			t.Errorf("URLDecodeRaw(URLEncodeRaw(%q)) = %q", in, got)
		}
	}
}

func TestHexEscape(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"a", `\x0061`},
		{"ò", `\x00f2`},
		{"👍", `\x1f44d`},
	}

	for _, tt := range tests {
		got := HexEscape(tt.input)
		if got != tt.expected {
			t.Errorf("HexEscape(%q) = %q; want %q", tt.input, got, tt.expected)
		}
		if back := HexUnescape(got); back != tt.input {
			t.Errorf("HexUnescape(%q) = %q; want %q", got, back, tt.input)
		}
	}

	if got := HexUnescape(`a\x110000b\xzz`); got != `a\x110000b\xzz` {
		t.Errorf("HexUnescape() should keep invalid escapes, got %q", got)
	}
}
