// File: backend.go
// Title: Unicode Backend Singleton
// Description: Lazily built, read-only state shared by all utf8x functions:
//              compiled expressions, the HTML entity tables and the encoding
//              alias table.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Drop the unused trim expression

package utf8x

import (
	"regexp"
	"sync"
	"sync/atomic"

	mdwlog "github.com/msto63/stringy/foundation/core/log"
)

// Backend holds the precomputed tables. Obtain it with Default.
type Backend struct {
	reLineBreak  *regexp.Regexp
	reHTMLBreak  *regexp.Regexp
	reHTMLTag    *regexp.Regexp
	reEmptyTag   *regexp.Regexp
	reMediaQuery *regexp.Regexp
	reWhitespace *regexp.Regexp
	reBlank      *regexp.Regexp
	reNumeric    *regexp.Regexp
	reHexEscape  *regexp.Regexp
	rePercentU   *regexp.Regexp
	reControl    *regexp.Regexp

	entityByRune map[rune]string
	encodings    map[string]string
}

var (
	defaultBackend *Backend
	backendOnce    sync.Once

	logger atomic.Pointer[mdwlog.Logger]
)

func init() {
	logger.Store(mdwlog.Discard().WithName("utf8x"))
}

// SetLogger installs the logger used for backend diagnostics
func SetLogger(l *mdwlog.Logger) {
	if l == nil {
		l = mdwlog.Discard()
	}
	logger.Store(l.WithName("utf8x"))
}

func log() *mdwlog.Logger {
	return logger.Load()
}

// Default returns the process wide backend, building it on first use
func Default() *Backend {
	backendOnce.Do(func() {
		defaultBackend = newBackend()
		log().Debug("unicode backend initialized", mdwlog.Fields{
			"entities":  len(defaultBackend.entityByRune),
			"encodings": len(defaultBackend.encodings),
		})
	})
	return defaultBackend
}

func newBackend() *Backend {
	b := &Backend{
		reLineBreak:  regexp.MustCompile(`\r\n|\r|\n`),
		reHTMLBreak:  regexp.MustCompile(`(?i)\r\n|\r|\n|<br\s*/?>`),
		reHTMLTag:    regexp.MustCompile(`(?i)<(?:[a-z][a-z0-9-]*|!--|/[a-z][a-z0-9-]*)[^>]*>`),
		reEmptyTag:   regexp.MustCompile(`<[^/>]*>\s*</[^>]*>`),
		reMediaQuery: regexp.MustCompile(`(?is)@media\s+(?:only\s)?(?:[\s{(]|screen|all)\s?[^{]+\{.*?\}\s*\}\s*`),
		reWhitespace: regexp.MustCompile(`[\s\p{Z}]+`),
		reBlank:      regexp.MustCompile(`^[\s\p{Z}]*$`),
		reNumeric:    regexp.MustCompile(`^[ \t\n\r\v\f]*[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?[ \t\n\r\v\f]*$`),
		reHexEscape:  regexp.MustCompile(`\\x([0-9A-Fa-f]+)`),
		rePercentU:   regexp.MustCompile(`%u([0-9a-fA-F]{3,4})`),
		reControl:    regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`),
	}
	b.entityByRune = buildEntityTable()
	b.encodings = buildEncodingAliases()
	return b
}
