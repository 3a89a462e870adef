// File: common.go
// Title: Validation Framework Utilities
// Description: Helpers shared by concrete validators: value to text
//              conversion, emptiness checks and the required validator.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework utilities
// - 2026-10-15 v0.2.0: Added StringOf and Required, numeric conversion removed

package validation

import (
	"fmt"
	"reflect"
	"unicode/utf8"
)

// StringOf returns the text of strings and fmt.Stringer values
func StringOf(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

// GetValueLength returns the length of strings, slices, arrays, or maps.
// Strings are measured in codepoints. Returns -1 for unsupported types.
func GetValueLength(value interface{}) int {
	if value == nil {
		return 0
	}
	if s, ok := StringOf(value); ok {
		return utf8.RuneCountInString(s)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len()
	default:
		return -1
	}
}

// IsNilOrEmpty checks if a value is nil or considered empty based on its type
func IsNilOrEmpty(value interface{}) bool {
	if value == nil {
		return true
	}
	if s, ok := StringOf(value); ok {
		return s == ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Required fails for nil and empty values
func Required(field string) Validator {
	return ValidatorFunc(func(value interface{}) ValidationResult {
		if IsNilOrEmpty(value) {
			return NewValidationErrorWithField(CodeRequired, field, field+" is required", value)
		}
		return NewValidationResult()
	})
}

// Length fails when the value is shorter than minLen or longer than maxLen.
// A negative maxLen disables the upper bound.
func Length(field string, minLen, maxLen int) Validator {
	return ValidatorFunc(func(value interface{}) ValidationResult {
		n := GetValueLength(value)
		if n < 0 {
			return NewValidationErrorWithField(CodeType, field, field+" has no length", value)
		}
		if n < minLen || (maxLen >= 0 && n > maxLen) {
			result := NewValidationErrorWithField(CodeLength, field,
				fmt.Sprintf("%s length %d outside %d..%d", field, n, minLen, maxLen), value)
			result.Errors[0].Expected = [2]int{minLen, maxLen}
			return result
		}
		return NewValidationResult()
	})
}
