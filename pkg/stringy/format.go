// File: format.go
// Title: Formatting and Reordering
// Description: printf style formatting with named %:name parameters, and
//              codepoint reversal and shuffling.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Scalars under %s, numeric texts under number verbs, named maps of any value type

package stringy

import (
	"fmt"
	"maps"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	mdwlog "github.com/msto63/stringy/foundation/core/log"
	"github.com/msto63/stringy/foundation/utils/utf8x"
)

// rePositional matches printf argument indexes written as %2$s
var rePositional = regexp.MustCompile(`%(\d+)\$`)

// Format expands printf style verbs with args. Map arguments with string
// keys supply named parameters: every %:name is replaced by the value stored
// under name before the verbs are expanded, longer names first. A %: left
// over is printed literally. Argument indexes may be written as %[2]s or %2$s.
// Scalars print as text under %s, and numeric texts are accepted by the
// integer and float verbs.
//
//	New("There are %:count monkeys").Format(map[string]int{"count": 5})
//	New("%s and %s").Format("this", "that")
func (s Stringy) Format(args ...any) Stringy {
	str := s.str
	positional := make([]any, 0, len(args))
	for _, arg := range args {
		named, ok := namedParams(arg)
		if !ok {
			positional = append(positional, formatArg{arg})
			continue
		}
		str = replaceNamed(str, named)
	}

	str = strings.ReplaceAll(str, "%:", "%%:")
	str = rePositional.ReplaceAllString(str, "%[$1]")
	if len(positional) == 0 && !strings.Contains(str, "%") {
		return s.derive(str)
	}
	log().Trace("format", mdwlog.Int("args", len(positional)))
	return s.derive(fmt.Sprintf(str, positional...))
}

// namedParams converts any map with string keys to named parameters
func namedParams(arg any) (map[string]any, bool) {
	if named, ok := arg.(map[string]any); ok {
		return named, true
	}
	v := reflect.ValueOf(arg)
	if v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	named := make(map[string]any, v.Len())
	for iter := v.MapRange(); iter.Next(); {
		named[iter.Key().String()] = iter.Value().Interface()
	}
	return named, true
}

// formatArg adapts a positional argument to the verb it is printed with
type formatArg struct {
	value any
}

func (a formatArg) Format(f fmt.State, verb rune) {
	value := a.value
	switch verb {
	case 's', 'q':
		if text, ok := stringOf(value); ok {
			value = text
		}
	case 'd', 'b', 'o', 'x', 'X', 'c':
		if text, ok := value.(string); ok {
			if n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64); err == nil {
				value = n
			}
		}
	case 'e', 'E', 'f', 'F', 'g', 'G':
		switch v := value.(type) {
		case string:
			if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				value = n
			}
		case int:
			value = float64(v)
		case int64:
			value = float64(v)
		}
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), value)
}

func replaceNamed(str string, named map[string]any) string {
	names := slices.SortedFunc(maps.Keys(named), func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})
	for _, name := range names {
		value, ok := stringOf(named[name])
		if !ok {
			value = fmt.Sprint(named[name])
		}
		str = strings.ReplaceAll(str, "%:"+name, value)
	}
	return str
}

// Reverse reverses the order of the codepoints
func (s Stringy) Reverse() Stringy {
	return s.derive(utf8x.Reverse(s.str))
}

// Shuffle returns the codepoints in random order
func (s Stringy) Shuffle() Stringy {
	return s.derive(utf8x.Shuffle(s.str))
}
