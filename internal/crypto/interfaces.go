// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the envelope-encryption core of go-pass-vault.
//
// # Envelope format
//
// Every ciphertext produced by [Manager.Encrypt] is framed as
//
//	cipher_output ‖ u32_le(cipher_id)
//
// The trailing four little-endian bytes identify the cipher that produced
// the output, so the default algorithm can be upgraded without touching
// rows already on disk: old envelopes keep decrypting under their original
// id, new writes use the current default.
//
// # Key derivation
//
// Keys are never taken from the caller directly. [Manager.Encrypt] and
// [Manager.Decrypt] accept a (password, salt) pair and derive a
// cipher-key-sized key with Argon2id. The same derivation serves both the
// login password (wrapping a user's Credential) and a Credential's data
// key (encrypting vault fields), which keeps every key decision in this
// package.
//
// # Credential
//
// A [Credential] is a user's 64-byte long-lived secret: a 32-byte data key
// followed by a 32-byte salt. The login password only ever unwraps it; the
// Credential itself never rotates for the lifetime of the account.
package crypto

// Encryptor is a single registered authenticated cipher. Implementations
// must be stateless and safe for concurrent use; the [Manager] shares one
// instance across all requests.
type Encryptor interface {
	// ID returns the stable 32-bit identifier appended to every envelope
	// produced by this cipher. Ids must never be reused across algorithms.
	ID() uint32

	// KeySize returns the key length in bytes expected by Encrypt and
	// Decrypt.
	KeySize() int

	// Encrypt seals plaintext under key and returns the cipher output,
	// including whatever nonce or tag framing the algorithm needs to
	// decrypt it later. Returns [ErrInvalidKey] if key has the wrong length.
	Encrypt(plaintext, key []byte) ([]byte, error)

	// Decrypt reverses Encrypt. Returns [ErrInvalidKey] for a wrong-length
	// key, [ErrMalformedCiphertext] if data is too short to contain the
	// cipher's framing, and [ErrBadCiphertext] if authentication fails.
	Decrypt(data, key []byte) ([]byte, error)
}
