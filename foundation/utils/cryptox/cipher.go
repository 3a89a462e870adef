// File: cipher.go
// Title: Password Based Encryption
// Description: Authenticated encryption of text under a password. Keys are
//              derived with Argon2id, the payload is sealed with
//              XChaCha20-Poly1305 and the result is hex encoded.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package cryptox

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// Argon2id parameters. Changing them breaks existing ciphertexts.
const (
	saltSize      = 16
	argonTime     = 1
	argonMemory   = 64 * 1024
	argonThreads  = 4
	cipherVersion = 0x01
)

var errCiphertextShort = errors.New("ciphertext too short")

func deriveKey(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, chacha20poly1305.KeySize)
}

// Encrypt seals data under password. The hex result holds a version byte,
// the salt, the nonce and the sealed payload.
func Encrypt(data, password string) (string, error) {
	salt := make([]byte, saltSize)
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(salt); err != nil {
		return "", backendError("Encrypt", "reading random salt failed", err)
	}
	if _, err := rand.Read(nonce); err != nil {
		return "", backendError("Encrypt", "reading random nonce failed", err)
	}

	aead, err := chacha20poly1305.NewX(deriveKey(password, salt))
	if err != nil {
		return "", backendError("Encrypt", "cipher setup failed", err)
	}

	header := make([]byte, 0, 1+saltSize+len(nonce))
	header = append(header, cipherVersion)
	header = append(header, salt...)
	header = append(header, nonce...)

	sealed := aead.Seal(header, nonce, []byte(data), header[:1+saltSize])
	return hex.EncodeToString(sealed), nil
}

// Decrypt opens a value produced by Encrypt. Malformed input, a wrong
// password and tampered data all fail with BACKEND_ERROR.
func Decrypt(data, password string) (string, error) {
	raw, err := hex.DecodeString(data)
	if err != nil {
		return "", backendError("Decrypt", "ciphertext is not hex encoded", err)
	}
	headerSize := 1 + saltSize + chacha20poly1305.NonceSizeX
	if len(raw) < headerSize+chacha20poly1305.Overhead {
		return "", backendError("Decrypt", "malformed ciphertext", errCiphertextShort)
	}
	if raw[0] != cipherVersion {
		return "", backendError("Decrypt", fmt.Sprintf("unsupported ciphertext version %d", raw[0]), nil)
	}

	salt := raw[1 : 1+saltSize]
	nonce := raw[1+saltSize : headerSize]
	aead, err := chacha20poly1305.NewX(deriveKey(password, salt))
	if err != nil {
		return "", backendError("Decrypt", "cipher setup failed", err)
	}

	plain, err := aead.Open(nil, nonce, raw[headerSize:], raw[:1+saltSize])
	if err != nil {
		return "", backendError("Decrypt", "authentication failed", err)
	}
	return string(plain), nil
}
