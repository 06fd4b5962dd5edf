// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

// Argon2id work factors. Changing any of them changes every digest and
// invalidates all stored passwords.
const (
	argonTime    uint32 = 2
	argonMemory  uint32 = 19 * 1024
	argonThreads uint8  = 1
	argonKeyLen  uint32 = 32
)

// HashPassword derives the password digest of an account.
//
// The digest is Argon2id over the password, salted with the SHA-256 of the
// user name, so the same password gives different digests for different
// accounts while the function stays deterministic. The result is a 64
// character lowercase hex string.
//
// Example usage:
//
//	digest := utils.HashPassword("alice", "secret")
func HashPassword(userName, password string) string {
	salt := sha256.Sum256([]byte(userName))
	key := argon2.IDKey([]byte(password), salt[:], argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(key)
}

// ContentDigest returns the hex-encoded SHA-256 of a blob payload.
func ContentDigest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
