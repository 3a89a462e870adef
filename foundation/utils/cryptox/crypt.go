// File: crypt.go
// Title: Password Hashes
// Description: crypt(3) compatible SHA-256 and SHA-512 password hashes and
//              bcrypt hashes in the $2y$ format.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: SHA-crypt on github.com/GehirnInc/crypt

package cryptox

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/GehirnInc/crypt"
	"github.com/GehirnInc/crypt/sha256_crypt"
	"github.com/GehirnInc/crypt/sha512_crypt"
	"golang.org/x/crypto/bcrypt"

	mdwerror "github.com/msto63/stringy/foundation/core/error"
	mdwerrors "github.com/msto63/stringy/foundation/core/errors"
)

const (
	shaCryptRoundsMin = 1000
	shaCryptRoundsMax = 999999999
	shaCryptSaltMax   = 16
)

func backendError(operation, message string, cause error) *mdwerror.Error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleCryptox).
		Operation(operation).
		Message(message).
		Cause(cause).
		Code(mdwerror.CodeBackendError).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// Crypt hashes data with the scheme selected by salt: "$5$" for SHA-256
// crypt, "$6$" for SHA-512 crypt and "$2y$", "$2a$" or "$2b$" for bcrypt.
// Passing a complete bcrypt hash as salt returns it unchanged when data
// matches, so Crypt(password, stored) == stored verifies a password.
func Crypt(data, salt string) (string, error) {
	switch {
	case strings.HasPrefix(salt, "$5$"):
		return shaCrypt(sha256_crypt.New(), data, salt[3:], "$5$")
	case strings.HasPrefix(salt, "$6$"):
		return shaCrypt(sha512_crypt.New(), data, salt[3:], "$6$")
	case strings.HasPrefix(salt, "$2y$"), strings.HasPrefix(salt, "$2a$"), strings.HasPrefix(salt, "$2b$"):
		return bcryptCrypt(data, salt)
	}
	return "", backendError("Crypt", fmt.Sprintf("unsupported salt format %q", salt), nil)
}

func bcryptCrypt(data, salt string) (string, error) {
	if len(salt) == 60 && bcrypt.CompareHashAndPassword([]byte(salt), []byte(data)) == nil {
		return salt, nil
	}
	cost := bcrypt.DefaultCost
	if len(salt) >= 7 && salt[6] == '$' {
		parsed, err := strconv.Atoi(salt[4:6])
		if err != nil {
			return "", backendError("Crypt", "invalid bcrypt cost", err)
		}
		cost = parsed
	}
	return Bcrypt(data, cost)
}

// Bcrypt returns a bcrypt hash of data in the $2y$ format. A cost of zero
// selects the library default.
func Bcrypt(data string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return "", backendError("Bcrypt", fmt.Sprintf("bcrypt cost %d outside %d..%d", cost, bcrypt.MinCost, bcrypt.MaxCost), nil)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(data), cost)
	if err != nil {
		return "", backendError("Bcrypt", "bcrypt hashing failed", err)
	}
	return "$2y$" + string(hashed[4:]), nil
}

// shaCrypt hashes key with the SHA-crypt scheme by Ulrich Drepper. The
// setting is normalized first: rounds are clamped to the allowed range and
// the salt is cut to 16 characters, ending at the first "$".
func shaCrypt(crypter crypt.Crypter, key, setting, magic string) (string, error) {
	var rounds string
	if rest, ok := strings.CutPrefix(setting, "rounds="); ok {
		value, after, found := strings.Cut(rest, "$")
		n, err := strconv.Atoi(value)
		if !found || err != nil {
			return "", backendError("Crypt", "invalid rounds specification", err)
		}
		rounds = "rounds=" + strconv.Itoa(min(max(n, shaCryptRoundsMin), shaCryptRoundsMax)) + "$"
		setting = after
	}
	salt, _, _ := strings.Cut(setting, "$")
	if len(salt) > shaCryptSaltMax {
		salt = salt[:shaCryptSaltMax]
	}

	hashed, err := crypter.Generate([]byte(key), []byte(magic+rounds+salt))
	if err != nil {
		return "", backendError("Crypt", "SHA-crypt hashing failed", err)
	}
	digest := hashed[strings.LastIndexByte(hashed, '$')+1:]
	return magic + rounds + salt + "$" + digest, nil
}
