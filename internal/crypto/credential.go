// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// CredentialSize is the total length of a serialized [Credential]:
// a 32-byte data key followed by a 32-byte salt.
const CredentialSize = 64

const credentialDataKeySize = 32

// Credential is a user's long-lived 64-byte secret. The data key half
// encrypts vault fields; the salt half feeds the KDF alongside it. The
// Credential is generated once at account creation and never rotates —
// password changes only re-wrap it.
//
// Plaintext Credentials exist only for the duration of a request. Call
// [Credential.Destroy] when done.
type Credential struct {
	b []byte
}

// GenerateCredential draws 64 cryptographically random bytes and returns
// them as a fresh [Credential].
func GenerateCredential() (*Credential, error) {
	b, err := utils.RandomBytes(CredentialSize)
	if err != nil {
		return nil, err
	}
	return &Credential{b: b}, nil
}

// CredentialFromBytes wraps an unwrapped 64-byte secret in a [Credential].
// The slice is retained, not copied, so the caller must not reuse it.
// Returns [ErrInvalidCredential] for any other length.
func CredentialFromBytes(b []byte) (*Credential, error) {
	if len(b) != CredentialSize {
		return nil, ErrInvalidCredential
	}
	return &Credential{b: b}, nil
}

// DataKey returns the first 32 bytes: the key under which the owner's
// vault fields are encrypted.
func (c *Credential) DataKey() []byte {
	return c.b[:credentialDataKeySize]
}

// Salt returns the last 32 bytes: the KDF salt paired with the data key.
func (c *Credential) Salt() []byte {
	return c.b[credentialDataKeySize:]
}

// Bytes returns the full 64-byte serialization (data key ‖ salt) used when
// wrapping the Credential under a login password or a token credential.
func (c *Credential) Bytes() []byte {
	return c.b
}

// Destroy overwrites the secret in place. The Credential must not be used
// afterwards.
func (c *Credential) Destroy() {
	Zero(c.b)
}
