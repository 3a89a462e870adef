// File: example_test.go
// Title: Example Tests for StringX Package Documentation
// Description: Executable examples that serve as both documentation and tests.
//              These examples demonstrate typical usage patterns and appear
//              in the generated documentation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial example implementation
// - 2026-10-15 v0.2.0: Examples for the Unicode facade

package stringx_test

import (
	"fmt"

	mdwstringx "github.com/msto63/stringy/foundation/utils/stringx"
)

func ExampleIsEmpty() {
	fmt.Println(mdwstringx.IsEmpty(""))
	fmt.Println(mdwstringx.IsEmpty("hello"))
	fmt.Println(mdwstringx.IsEmpty(" "))
	// Output:
	// true
	// false
	// false
}

func ExampleIsBlank() {
	fmt.Println(mdwstringx.IsBlank(""))
	fmt.Println(mdwstringx.IsBlank("   "))
	fmt.Println(mdwstringx.IsBlank("hello"))
	fmt.Println(mdwstringx.IsBlank(" hello "))
	// Output:
	// true
	// true
	// false
	// false
}

func ExampleTruncate() {
	text := "This is a long text that needs to be truncated"

	fmt.Println(mdwstringx.Truncate(text, 20, "..."))
	fmt.Println(mdwstringx.Truncate(text, 50, "..."))
	fmt.Println(mdwstringx.Truncate("short", 10, "..."))
	// Output:
	// This is a long te...
	// This is a long text that needs to be truncated
	// short
}

func ExampleTruncate_unicode() {
	text := "これは日本語のテキストです"

	fmt.Println(mdwstringx.Truncate(text, 8, "..."))
	// Output:
	// これは日本...
}

func ExampleCount() {
	fmt.Println(mdwstringx.Count("fòôbàř"))
	fmt.Println(len("fòôbàř"))
	// Output:
	// 6
	// 9
}

func ExampleAt() {
	fmt.Println(mdwstringx.At("fòôbàř", 1))
	fmt.Println(mdwstringx.At("fòôbàř", -1))
	// Output:
	// ò
	// ř
}

func ExampleSnakeCase() {
	fmt.Println(mdwstringx.SnakeCase("Fòô Bàř"))
	fmt.Println(mdwstringx.Camelize("camel-case_string"))
	fmt.Println(mdwstringx.Dasherize("fooBar"))
	// Output:
	// fòô_bàř
	// camelCaseString
	// foo-bar
}

func ExampleSlugify() {
	fmt.Println(mdwstringx.Slugify("Using strings like fòô bàř"))
	fmt.Println(mdwstringx.Slugify("Fòô Bàř", mdwstringx.SlugOptions{Separator: "_"}))
	// Output:
	// using-strings-like-foo-bar
	// foo_bar
}

func ExampleBetween() {
	fmt.Println(mdwstringx.Between("{fòô} and {bàř}", "{", "}"))
	fmt.Println(mdwstringx.Between("{fòô} and {bàř}", "{", "}", 1))
	// Output:
	// fòô
	// bàř
}

func ExampleIndexOf() {
	fmt.Println(mdwstringx.IndexOf("fòôbàř", "b"))
	fmt.Println(mdwstringx.IndexOf("fòôbàř", "x"))
	// Output:
	// 3
	// -1
}

func ExampleExplode() {
	fmt.Printf("%q\n", mdwstringx.Explode("a,b,c", ","))
	fmt.Printf("%q\n", mdwstringx.Explode("a,b,c", ",", 2))
	// Output:
	// ["a" "b" "c"]
	// ["a" "b,c"]
}

func ExampleFormat() {
	fmt.Println(mdwstringx.Format("%:name has %d apples", map[string]any{"name": "Lars"}, 3))
	// Output:
	// Lars has 3 apples
}

func ExampleFirstNonBlank() {
	fmt.Printf("%q\n", mdwstringx.FirstNonBlank("", "  ", "value"))
	fmt.Printf("%q\n", mdwstringx.FirstNonEmpty("", "  ", "value"))
	// Output:
	// "value"
	// "  "
}

func ExampleValidateLength() {
	fmt.Println(mdwstringx.ValidateLength("fòô", 1, 5) == nil)
	fmt.Println(mdwstringx.ValidateLength("fòô", 5, 0) == nil)
	// Output:
	// true
	// false
}
