// File: stringy.go
// Title: Stringy Value Type
// Description: The immutable (text, encoding) pair, its constructors, the
//              encoding tag operations and text conversion.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Decode only ASCII compatible encodings by shortcut, fromUTF8

package stringy

import (
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf8"

	mdwerrors "github.com/msto63/stringy/foundation/core/errors"
	mdwlog "github.com/msto63/stringy/foundation/core/log"
	"github.com/msto63/stringy/foundation/utils/utf8x"
)

// DefaultEncoding is the tag of values created without an explicit encoding
const DefaultEncoding = utf8x.UTF8

// Stringy is an immutable string value tagged with its encoding. The zero
// value is the empty UTF-8 string.
type Stringy struct {
	str      string
	encoding string
}

// New creates a value from s. The optional encoding is normalized; empty and
// unknown names become UTF-8.
func New(s string, encoding ...string) Stringy {
	return Stringy{str: s, encoding: normalizeEncoding(encoding)}
}

// Create creates a value from any scalar, a Stringy, a fmt.Stringer or a byte
// slice. nil becomes the empty string. Other types fail with ErrInvalidInput.
func Create(value any, encoding ...string) (Stringy, error) {
	str, ok := stringOf(value)
	if !ok {
		return Stringy{}, mdwerrors.StringyInvalidInput("Create", value, "scalar, Stringy or fmt.Stringer").
			WithDetail("kind", mdwerrors.KindOf(value))
	}
	return New(str, encoding...), nil
}

// MustCreate is like Create but panics on error
func MustCreate(value any, encoding ...string) Stringy {
	s, err := Create(value, encoding...)
	if err != nil {
		panic(err)
	}
	return s
}

func normalizeEncoding(encoding []string) string {
	if len(encoding) == 0 || encoding[0] == "" || encoding[0] == DefaultEncoding {
		return DefaultEncoding
	}
	return utf8x.NormalizeEncoding(encoding[0])
}

// stringOf converts the accepted dynamic types to text
func stringOf(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case Stringy:
		return v.str, true
	case *Stringy:
		if v == nil {
			return "", true
		}
		return v.str, true
	case []byte:
		return string(v), true
	case rune:
		return strconv.FormatInt(int64(v), 10), true
	case bool:
		if v {
			return "1", true
		}
		return "", true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}

// String returns the text
func (s Stringy) String() string {
	return s.str
}

// JSONSerialize returns the text, as it is used for JSON output
func (s Stringy) JSONSerialize() string {
	return s.str
}

// MarshalJSON encodes the value as a JSON string
func (s Stringy) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.str)
}

// MarshalText implements encoding.TextMarshaler
func (s Stringy) MarshalText() ([]byte, error) {
	return []byte(s.str), nil
}

// Encoding returns the normalized encoding name
func (s Stringy) Encoding() string {
	if s.encoding == "" {
		return DefaultEncoding
	}
	return s.encoding
}

// SetInternalEncoding returns the same bytes tagged with another encoding
func (s Stringy) SetInternalEncoding(encoding string) Stringy {
	return New(s.str, encoding)
}

// Encode transcodes the text to encoding. With autoDetect the source encoding
// is guessed from the bytes instead of taken from the tag.
func (s Stringy) Encode(encoding string, autoDetect ...bool) (Stringy, error) {
	detect := len(autoDetect) > 0 && autoDetect[0]
	out, err := utf8x.Convert(s.str, s.Encoding(), encoding, detect)
	if err != nil {
		return Stringy{}, backendError("Encode", err).
			WithDetail("from", s.Encoding()).
			WithDetail("to", encoding)
	}
	log().Trace("text transcoded", mdwlog.Fields{"from": s.Encoding(), "to": encoding})
	return New(out, encoding), nil
}

// derive returns a value with text str and the receiver's encoding
func (s Stringy) derive(str string) Stringy {
	return Stringy{str: str, encoding: s.Encoding()}
}

// utf8Text returns the text decoded to UTF-8 for encodings other than UTF-8
func (s Stringy) utf8Text() string {
	enc := s.Encoding()
	if enc == utf8x.UTF8 || enc == utf8x.ASCII || (isASCII(s.str) && utf8x.ASCIICompatible(enc)) {
		return s.str
	}
	out, err := utf8x.Convert(s.str, enc, utf8x.UTF8, false)
	if err != nil {
		return s.str
	}
	return out
}

// fromUTF8 converts UTF-8 text back to the value's encoding
func (s Stringy) fromUTF8(str string) string {
	enc := s.Encoding()
	if enc == utf8x.UTF8 || enc == utf8x.ASCII {
		return str
	}
	out, err := utf8x.Convert(str, utf8x.UTF8, enc, false)
	if err != nil {
		return str
	}
	return out
}

func isASCII(str string) bool {
	for i := 0; i < len(str); i++ {
		if str[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// Length returns the number of characters under the value's encoding
func (s Stringy) Length() int {
	return utf8x.Len(s.utf8Text())
}

// Count is an alias for Length
func (s Stringy) Count() int {
	return s.Length()
}

// Equals reports byte equality of the two texts
func (s Stringy) Equals(other Stringy) bool {
	return s.str == other.str
}
