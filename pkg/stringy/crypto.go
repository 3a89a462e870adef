// File: crypto.go
// Title: Hashes and Encryption
// Description: Checksums and digests of the text, password hashing and
//              password based authenticated encryption.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package stringy

import (
	"github.com/msto63/stringy/foundation/utils/cryptox"
)

// CRC32 returns the IEEE CRC-32 checksum of the text
func (s Stringy) CRC32() uint32 {
	return cryptox.CRC32(s.str)
}

// MD5 returns the hex MD5 digest
func (s Stringy) MD5() Stringy {
	return s.derive(cryptox.MD5(s.str))
}

// SHA1 returns the hex SHA-1 digest
func (s Stringy) SHA1() Stringy {
	return s.derive(cryptox.SHA1(s.str))
}

// SHA256 returns the hex SHA-256 digest
func (s Stringy) SHA256() Stringy {
	return s.derive(cryptox.SHA256(s.str))
}

// SHA512 returns the hex SHA-512 digest
func (s Stringy) SHA512() Stringy {
	return s.derive(cryptox.SHA512(s.str))
}

// Hash returns the hex digest under the named algorithm. Unknown names fail
// with ErrBackend.
func (s Stringy) Hash(algorithm string) (Stringy, error) {
	sum, err := cryptox.Hash(algorithm, s.str)
	if err != nil {
		return Stringy{}, backendError("Hash", err).WithDetail("algorithm", algorithm)
	}
	return s.derive(sum), nil
}

// Crypt hashes the text with a crypt(3) style salt: "$5$" and "$6$" select
// SHA-crypt, "$2y$" bcrypt
func (s Stringy) Crypt(salt string) (Stringy, error) {
	out, err := cryptox.Crypt(s.str, salt)
	if err != nil {
		return Stringy{}, backendError("Crypt", err)
	}
	return s.derive(out), nil
}

// Bcrypt hashes the text with bcrypt at the given cost, default 10
func (s Stringy) Bcrypt(cost ...int) (Stringy, error) {
	out, err := cryptox.Bcrypt(s.str, option(cost))
	if err != nil {
		return Stringy{}, backendError("Bcrypt", err)
	}
	return s.derive(out), nil
}

// Encrypt encrypts the text with a key derived from password. The result is
// hex encoded.
func (s Stringy) Encrypt(password string) (Stringy, error) {
	out, err := cryptox.Encrypt(s.str, password)
	if err != nil {
		return Stringy{}, backendError("Encrypt", err)
	}
	return s.derive(out), nil
}

// Decrypt reverses Encrypt. Malformed input and a wrong password fail with
// ErrBackend.
func (s Stringy) Decrypt(password string) (Stringy, error) {
	out, err := cryptox.Decrypt(s.str, password)
	if err != nil {
		return Stringy{}, backendError("Decrypt", err)
	}
	return s.derive(out), nil
}
