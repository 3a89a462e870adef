// File: errors.go
// Title: Error Sentinels and Logging
// Description: Comparison targets for the error kinds a Stringy or Collection
//              operation can return, and the logger hook shared with the
//              backends.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package stringy

import (
	"sync/atomic"

	mdwerror "github.com/msto63/stringy/foundation/core/error"
	mdwerrors "github.com/msto63/stringy/foundation/core/errors"
	mdwlog "github.com/msto63/stringy/foundation/core/log"
	"github.com/msto63/stringy/foundation/utils/asciix"
	"github.com/msto63/stringy/foundation/utils/utf8x"
	"github.com/msto63/stringy/foundation/utils/validationx"
)

// Sentinels for errors.Is. Matching is by error code.
var (
	ErrInvalidInput = mdwerror.Sentinel(mdwerror.CodeInvalidInput, "invalid input")
	ErrOutOfRange   = mdwerror.Sentinel(mdwerror.CodeValueOutOfRange, "offset out of range")
	ErrImmutable    = mdwerror.Sentinel(mdwerror.CodeImmutable, "value is immutable")
	ErrTypeMismatch = mdwerror.Sentinel(mdwerror.CodeTypeMismatch, "type mismatch")
	ErrBackend      = mdwerror.Sentinel(mdwerror.CodeBackendError, "backend failure")
)

var logger atomic.Pointer[mdwlog.Logger]

func init() {
	logger.Store(mdwlog.Discard().WithName("stringy"))
}

// SetLogger installs l for this package and the Unicode, ASCII and email
// backends. A nil logger discards everything.
func SetLogger(l *mdwlog.Logger) {
	if l == nil {
		l = mdwlog.Discard()
	}
	logger.Store(l.WithName("stringy"))
	utf8x.SetLogger(l)
	asciix.SetLogger(l)
	validationx.SetLogger(l)
}

func log() *mdwlog.Logger {
	return logger.Load()
}

// backendError wraps a collaborator failure for operation
func backendError(operation string, cause error) *mdwerror.Error {
	log().Debug("backend failure", mdwlog.String("operation", operation), mdwlog.Err(cause))
	return mdwerrors.BackendFailure(mdwerrors.ModuleStringy, operation, cause)
}
