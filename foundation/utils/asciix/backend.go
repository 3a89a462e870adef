// File: backend.go
// Title: ASCII Backend Singleton
// Description: Lazily built replacement tables shared by all asciix
//              functions. Per-language replacers are merged over the generic
//              table on first use and cached.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package asciix

import (
	"cmp"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	mdwlog "github.com/msto63/stringy/foundation/core/log"
)

// Backend holds the merged replacement tables. Obtain it with Default.
type Backend struct {
	generic   *strings.Replacer
	languages sync.Map // normalized language key -> *strings.Replacer
	slugRules sync.Map // separator -> *slugRule
}

var (
	defaultBackend *Backend
	backendOnce    sync.Once

	logger atomic.Pointer[mdwlog.Logger]

	foldPool = sync.Pool{
		New: func() any {
			return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		},
	}
	strictPool = sync.Pool{
		New: func() any {
			return transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		},
	}
)

func init() {
	logger.Store(mdwlog.Discard().WithName("asciix"))
}

// SetLogger installs the logger used for backend diagnostics
func SetLogger(l *mdwlog.Logger) {
	if l == nil {
		l = mdwlog.Discard()
	}
	logger.Store(l.WithName("asciix"))
}

func log() *mdwlog.Logger {
	return logger.Load()
}

// Default returns the process wide backend, building it on first use
func Default() *Backend {
	backendOnce.Do(func() {
		defaultBackend = &Backend{generic: newReplacer(genericChars, nil)}
		log().Debug("ascii backend initialized", mdwlog.Fields{
			"generic":   len(genericChars),
			"languages": len(languageChars),
		})
	})
	return defaultBackend
}

// newReplacer merges override over base and orders the pairs longest key
// first so multi-character keys win over their prefixes.
func newReplacer(base, override map[string]string) *strings.Replacer {
	merged := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(utf8.RuneCountInString(b), utf8.RuneCountInString(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, merged[k])
	}
	return strings.NewReplacer(pairs...)
}

// languageKey normalizes "de-AT", "DE_at" and friends to "de_at" and resolves
// it to a key with a replacement table, or "" when only the generic table applies.
func languageKey(lang string) string {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(lang)), "-", "_")
	if key == "" {
		return ""
	}
	for _, candidate := range []string{key, strings.SplitN(key, "_", 2)[0]} {
		if alias, ok := languageAliases[candidate]; ok {
			candidate = alias
		}
		if _, ok := languageChars[candidate]; ok {
			return candidate
		}
	}
	return ""
}

// replacer returns the generic table merged with the table of lang
func (b *Backend) replacer(lang string) *strings.Replacer {
	key := languageKey(lang)
	if key == "" {
		return b.generic
	}
	if r, ok := b.languages.Load(key); ok {
		return r.(*strings.Replacer)
	}
	r := newReplacer(genericChars, languageChars[key])
	actual, _ := b.languages.LoadOrStore(key, r)
	log().Trace("language table merged", mdwlog.String("language", key))
	return actual.(*strings.Replacer)
}

// fold removes combining marks after canonical (or compatibility, when
// strict is set) decomposition.
func fold(s string, strict bool) string {
	pool := &foldPool
	if strict {
		pool = &strictPool
	}
	t := pool.Get().(transform.Transformer)
	defer pool.Put(t)
	t.Reset()

	out, _, err := transform.String(t, s)
	if err != nil {
		log().Debug("fold failed, keeping input", mdwlog.Err(err))
		return s
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
