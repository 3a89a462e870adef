// File: example_test.go
// Title: Error Module Examples
// Description: Example usage patterns for the structured error type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive examples
// - 2026-10-15 v0.2.0: Examples for string value failures

package error

import (
	"errors"
	"fmt"
)

func ExampleNew() {
	err := New("chunk length must be at least 1").
		WithCode(CodeInvalidInput).
		WithOperation("Chunk").
		WithDetail("length", 0)

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Severity:", err.Severity())

	// Output:
	// Error: chunk length must be at least 1
	// Code: INVALID_INPUT
	// Severity: low
}

func ExampleWrap() {
	cause := errors.New("cipher: message authentication failed")

	err := Wrap(cause, "decrypt failed").
		WithCode(CodeBackendError).
		WithOperation("Decrypt")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())

	// Output:
	// Error: decrypt failed: cipher: message authentication failed
	// Code: BACKEND_ERROR
}

func ExampleSentinel() {
	errImmutable := Sentinel(CodeImmutable, "value is immutable")

	err := New("cannot assign index 2").WithCode(CodeImmutable)
	fmt.Println(errors.Is(err, errImmutable))

	// Output:
	// true
}
