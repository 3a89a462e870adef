// File: hash.go
// Title: Digests by Algorithm Name
// Description: Maps algorithm names to hash constructors and returns
//              lowercase hex digests of text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package cryptox

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/adler32"
	"hash/crc32"
	"hash/fnv"
	"slices"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

var hashes = map[string]func() hash.Hash{
	"md4":        md4.New,
	"md5":        md5.New,
	"sha1":       sha1.New,
	"sha224":     sha256.New224,
	"sha256":     sha256.New,
	"sha384":     sha512.New384,
	"sha512":     sha512.New,
	"sha512/224": sha512.New512_224,
	"sha512/256": sha512.New512_256,
	"sha3-224":   func() hash.Hash { return sha3.New224() },
	"sha3-256":   func() hash.Hash { return sha3.New256() },
	"sha3-384":   func() hash.Hash { return sha3.New384() },
	"sha3-512":   func() hash.Hash { return sha3.New512() },
	"ripemd160":  ripemd160.New,
	"blake2b-256": func() hash.Hash {
		h, _ := blake2b.New256(nil)
		return h
	},
	"blake2b-512": func() hash.Hash {
		h, _ := blake2b.New512(nil)
		return h
	},
	"blake2s-256": func() hash.Hash {
		h, _ := blake2s.New256(nil)
		return h
	},
	"crc32":   func() hash.Hash { return crc32.NewIEEE() },
	"crc32b":  func() hash.Hash { return crc32.NewIEEE() },
	"crc32c":  func() hash.Hash { return crc32.New(castagnoli) },
	"adler32": func() hash.Hash { return adler32.New() },
	"fnv132":  func() hash.Hash { return fnv.New32() },
	"fnv1a32": func() hash.Hash { return fnv.New32a() },
	"fnv164":  func() hash.Hash { return fnv.New64() },
	"fnv1a64": func() hash.Hash { return fnv.New64a() },
}

// Algorithms returns the supported algorithm names in sorted order
func Algorithms() []string {
	names := make([]string, 0, len(hashes))
	for name := range hashes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Hash returns the lowercase hex digest of data. Algorithm names are case
// insensitive.
func Hash(algorithm, data string) (string, error) {
	newHash, ok := hashes[strings.ToLower(strings.TrimSpace(algorithm))]
	if !ok {
		return "", backendError("Hash", fmt.Sprintf("unknown hashing algorithm %q", algorithm), nil).
			WithDetail("algorithm", algorithm)
	}
	h := newHash()
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// MD5 returns the hex MD5 digest of data
func MD5(data string) string {
	sum := md5.Sum([]byte(data))
	return hex.EncodeToString(sum[:])
}

// SHA1 returns the hex SHA-1 digest of data
func SHA1(data string) string {
	sum := sha1.Sum([]byte(data))
	return hex.EncodeToString(sum[:])
}

// SHA256 returns the hex SHA-256 digest of data
func SHA256(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

// SHA512 returns the hex SHA-512 digest of data
func SHA512(data string) string {
	sum := sha512.Sum512([]byte(data))
	return hex.EncodeToString(sum[:])
}

// CRC32 returns the IEEE checksum of data
func CRC32(data string) uint32 {
	return crc32.ChecksumIEEE([]byte(data))
}
