// File: affix.go
// Title: Affix Manipulation
// Description: Appending, prepending, ensuring and removing affixes,
//              surrounding, repeating, inserting, and appending generated
//              random or unique text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package stringy

import (
	"strings"

	"github.com/google/uuid"

	mdwerrors "github.com/msto63/stringy/foundation/core/errors"
	"github.com/msto63/stringy/foundation/utils/cryptox"
	"github.com/msto63/stringy/foundation/utils/utf8x"
)

// Append concatenates the suffixes to the text in argument order
func (s Stringy) Append(suffix ...string) Stringy {
	return s.derive(s.str + strings.Join(suffix, ""))
}

// Prepend places the prefixes, concatenated in argument order, before the text
func (s Stringy) Prepend(prefix ...string) Stringy {
	return s.derive(strings.Join(prefix, "") + s.str)
}

// AppendStringy appends values, raw texts or whole collections. A collection
// contributes its items joined without separator.
func (s Stringy) AppendStringy(parts ...Part) Stringy {
	return s.derive(s.str + joinParts(parts))
}

// PrependStringy is the prepending counterpart of AppendStringy
func (s Stringy) PrependStringy(parts ...Part) Stringy {
	return s.derive(joinParts(parts) + s.str)
}

func joinParts(parts []Part) string {
	var b strings.Builder
	for _, p := range parts {
		if p == nil {
			continue
		}
		b.WriteString(p.text())
	}
	return b.String()
}

// EnsureLeft prepends substring unless the text already starts with it
func (s Stringy) EnsureLeft(substring string) Stringy {
	if strings.HasPrefix(s.str, substring) {
		return s
	}
	return s.derive(substring + s.str)
}

// EnsureRight appends substring unless the text already ends with it
func (s Stringy) EnsureRight(substring string) Stringy {
	if strings.HasSuffix(s.str, substring) {
		return s
	}
	return s.derive(s.str + substring)
}

// RemoveLeft strips substring from the start of the text if present
func (s Stringy) RemoveLeft(substring string) Stringy {
	return s.derive(strings.TrimPrefix(s.str, substring))
}

// RemoveRight strips substring from the end of the text if present
func (s Stringy) RemoveRight(substring string) Stringy {
	return s.derive(strings.TrimSuffix(s.str, substring))
}

// Surround places substring on both sides of the text
func (s Stringy) Surround(substring string) Stringy {
	return s.derive(substring + s.str + substring)
}

// Wrap is an alias for Surround
func (s Stringy) Wrap(substring string) Stringy {
	return s.Surround(substring)
}

// Repeat returns multiplier copies of the text; zero or less yields empty
func (s Stringy) Repeat(multiplier int) Stringy {
	return s.derive(utf8x.Repeat(s.str, multiplier))
}

// Insert places substring at codepoint index. An index outside the text
// returns the value unchanged.
func (s Stringy) Insert(substring string, index int) Stringy {
	return s.derive(utf8x.Insert(s.str, substring, index))
}

// AppendRandomString appends length random codepoints drawn from alphabet,
// which defaults to ASCII letters and digits
func (s Stringy) AppendRandomString(length int, alphabet ...string) (Stringy, error) {
	if length < 1 {
		return Stringy{}, mdwerrors.StringyInvalidInput("AppendRandomString", length, "length greater than zero")
	}
	chars := utf8x.Alphanumeric
	if len(alphabet) > 0 && alphabet[0] != "" {
		chars = alphabet[0]
	}
	random, err := utf8x.RandomString(length, chars)
	if err != nil {
		return Stringy{}, backendError("AppendRandomString", err)
	}
	return s.Append(random), nil
}

// AppendPassword appends a random password of length codepoints drawn from
// an alphabet without easily confused characters
func (s Stringy) AppendPassword(length int) (Stringy, error) {
	if length < 1 {
		return Stringy{}, mdwerrors.StringyInvalidInput("AppendPassword", length, "length greater than zero")
	}
	return s.AppendRandomString(length, utf8x.PasswordAlphabet)
}

// AppendUniqueIdentifier appends a random UUID mixed with extra. With md5,
// the default, the identifier is the hex MD5 digest of that material.
func (s Stringy) AppendUniqueIdentifier(extra string, md5 ...bool) Stringy {
	id := uuid.NewString() + extra
	if len(md5) == 0 || md5[0] {
		id = cryptox.MD5(id)
	}
	return s.Append(id)
}
