// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the server-side password hashing primitives.
//
// Stored hashes are self-describing bcrypt strings: algorithm version, cost
// and a random 128-bit salt are encoded in the hash itself, so verification
// needs nothing but the stored value.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against them.
type PasswordHasher interface {
	// Hash returns a fresh salted hash of password. Two calls with the same
	// input return different strings.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A malformed hash is a
	// mismatch, never a panic.
	Verify(password, hash string) bool
}
