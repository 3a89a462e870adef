// File: serialized.go
// Title: Serialized Data Detection
// Description: Recognizes values in the PHP serialize wire format by parsing
//              the complete input: scalars, strings with byte lengths, arrays,
//              objects, custom objects, enums and references.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package utf8x

import (
	"strconv"
	"strings"
)

// IsSerialized reports whether s is exactly one serialized value
func IsSerialized(s string) bool {
	if s == "" {
		return false
	}
	p := &serialParser{in: s}
	return p.value() && p.pos == len(s)
}

type serialParser struct {
	in  string
	pos int
}

func (p *serialParser) expect(lit string) bool {
	if !strings.HasPrefix(p.in[p.pos:], lit) {
		return false
	}
	p.pos += len(lit)
	return true
}

// until returns the text up to the terminator and consumes both
func (p *serialParser) until(term byte) (string, bool) {
	i := strings.IndexByte(p.in[p.pos:], term)
	if i < 0 {
		return "", false
	}
	out := p.in[p.pos : p.pos+i]
	p.pos += i + 1
	return out, true
}

func (p *serialParser) count(term byte) (int, bool) {
	raw, ok := p.until(term)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	return n, err == nil && n >= 0
}

// quoted reads `"<n bytes>"` where n was given by the caller
func (p *serialParser) quoted(n int) bool {
	if !p.expect(`"`) || p.pos+n > len(p.in) {
		return false
	}
	p.pos += n
	return p.expect(`"`)
}

func (p *serialParser) value() bool {
	if p.pos+2 > len(p.in) {
		return false
	}
	kind := p.in[p.pos]
	if kind == 'N' {
		return p.expect("N;")
	}
	p.pos++
	if !p.expect(":") {
		return false
	}
	switch kind {
	case 'b':
		raw, ok := p.until(';')
		return ok && (raw == "0" || raw == "1")
	case 'i', 'r', 'R':
		raw, ok := p.until(';')
		_, err := strconv.ParseInt(raw, 10, 64)
		return ok && err == nil
	case 'd':
		raw, ok := p.until(';')
		if !ok {
			return false
		}
		switch raw {
		case "INF", "-INF", "NAN":
			return true
		}
		_, err := strconv.ParseFloat(raw, 64)
		return err == nil
	case 's', 'E':
		n, ok := p.count(':')
		return ok && p.quoted(n) && p.expect(";")
	case 'a':
		n, ok := p.count(':')
		return ok && p.members(n)
	case 'O':
		n, ok := p.count(':')
		if !ok || !p.quoted(n) || !p.expect(":") {
			return false
		}
		members, ok := p.count(':')
		return ok && p.members(members)
	case 'C':
		n, ok := p.count(':')
		if !ok || !p.quoted(n) || !p.expect(":") {
			return false
		}
		size, ok := p.count(':')
		if !ok || !p.expect("{") || p.pos+size > len(p.in) {
			return false
		}
		p.pos += size
		return p.expect("}")
	}
	return false
}

// members parses `{key value ...}` with n pairs. Keys must be integers or
// strings.
func (p *serialParser) members(n int) bool {
	if !p.expect("{") {
		return false
	}
	for i := 0; i < n; i++ {
		if p.pos >= len(p.in) {
			return false
		}
		if k := p.in[p.pos]; k != 's' && k != 'i' {
			return false
		}
		if !p.value() || !p.value() {
			return false
		}
	}
	return p.expect("}")
}
