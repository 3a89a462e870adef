// File: standards.go
// Title: Error Standards for Stringy Modules
// Description: Module identifiers and per-module convenience constructors so that
//              every package reports failures with the same shape.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-15 v0.2.0: Module set reduced to the string value stack

package errors

import (
	"fmt"
	"reflect"

	mdwerror "github.com/msto63/stringy/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringy     = "stringy"
	ModuleCollection  = "collection"
	ModuleStringx     = "stringx"
	ModuleUtf8x       = "utf8x"
	ModuleAsciix      = "asciix"
	ModuleCryptox     = "cryptox"
	ModuleValidationx = "validationx"
	ModuleConfig      = "config"
	ModuleCLI         = "cli"
)

// KindOf describes the dynamic kind of a value for error messages
func KindOf(value interface{}) string {
	if value == nil {
		return "nil"
	}
	t := reflect.TypeOf(value)
	if t.Kind() == reflect.Ptr || t.Kind() == reflect.Struct {
		return t.String()
	}
	return t.Kind().String()
}

// IsModuleError checks whether err was built for the given module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}

// StringyImmutable reports an attempted in-place modification of a string value
func StringyImmutable(operation string, offset int) *mdwerror.Error {
	return Immutable(ModuleStringy, operation, offset)
}

// StringyOutOfRange reports a character read past either end of a value
func StringyOutOfRange(operation string, offset, length int) *mdwerror.Error {
	return OutOfRange(ModuleStringy, operation, offset, -length, length-1)
}

// StringyInvalidInput reports a precondition violation on a value method
func StringyInvalidInput(operation string, input interface{}, expected string) *mdwerror.Error {
	return InvalidInput(ModuleStringy, operation, input, expected)
}

// CollectionTypeMismatch reports a non-value insertion into a collection
func CollectionTypeMismatch(operation string, value interface{}) *mdwerror.Error {
	return TypeMismatch(ModuleCollection, operation, value, "stringy.Stringy")
}

// BackendFailure wraps a collaborator failure, keeping its diagnostic as the cause
func BackendFailure(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s backend failure", module, operation)).
		Cause(cause).
		Code(mdwerror.CodeBackendError).
		Severity(mdwerror.SeverityHigh).
		Build()
}
