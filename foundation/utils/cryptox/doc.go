// Package cryptox provides digests, password hashing and password based
// encryption for the stringy value type.
//
// Package: cryptox
// Title: Cryptographic Helpers
// Description: Hex digests selected by algorithm name, SHA-crypt and bcrypt
//              password hashes, and authenticated encryption keyed by a
//              password through Argon2id.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation, digest helpers taken over from filex
//
// Failures are reported as *mdwerror.Error values with code BACKEND_ERROR and
// the underlying library error as cause.
//
// Basic usage:
//
//	sum, _ := cryptox.Hash("sha256", "fòôbàř")
//	hash, _ := cryptox.Bcrypt("secret", 0)
//	sealed, _ := cryptox.Encrypt("payload", "password")
//	plain, _ := cryptox.Decrypt(sealed, "password")
package cryptox
