// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// encryptorIDSize is the length of the little-endian cipher id trailing
// every envelope.
const encryptorIDSize = 4

// Manager is the cipher registry and envelope codec. It maps 32-bit cipher
// ids to [Encryptor] implementations, derives keys from (password, salt)
// pairs with Argon2id, and frames every ciphertext with the producing
// cipher's id.
//
// A Manager is immutable after construction and safe for concurrent use by
// all request goroutines.
type Manager struct {
	// defaultID selects the encryptor used for all new writes. Decryption
	// always follows the id stored in the envelope instead.
	defaultID  uint32
	encryptors map[uint32]Encryptor

	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target without touching call sites.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewManager constructs a [Manager] from the given encryptors. The first
// encryptor becomes the default for new writes.
//
// Argon2id runs with t=2, m=19 MiB, p=1, matching the cost the vault's
// rows were written under.
//
// Returns [ErrNoEncryptors] if the list is empty and [ErrDuplicateCipherID]
// if two encryptors claim the same id.
func NewManager(encryptors ...Encryptor) (*Manager, error) {
	if len(encryptors) == 0 {
		return nil, ErrNoEncryptors
	}

	m := &Manager{
		defaultID:    encryptors[0].ID(),
		encryptors:   make(map[uint32]Encryptor, len(encryptors)),
		argonTime:    2,
		argonMemory:  19 * 1024, // 19 MiB
		argonThreads: 1,
	}
	for _, e := range encryptors {
		if _, ok := m.encryptors[e.ID()]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateCipherID, e.ID())
		}
		m.encryptors[e.ID()] = e
	}

	return m, nil
}

// Encrypt derives a key from (password, salt), seals data with the default
// cipher, and appends the cipher id:
//
//	envelope = cipher_output ‖ u32_le(cipher_id)
//
// Returns an error if the cipher rejects the derived key or fails to seal.
func (m *Manager) Encrypt(data, password, salt []byte) ([]byte, error) {
	encryptor := m.encryptors[m.defaultID]

	key := m.deriveKey(password, salt, encryptor.KeySize())
	defer Zero(key)

	out, err := encryptor.Encrypt(data, key)
	if err != nil {
		return nil, err
	}

	return binary.LittleEndian.AppendUint32(out, encryptor.ID()), nil
}

// Decrypt reads the trailing cipher id of data, looks up the matching
// encryptor, derives the key from (password, salt), and opens the
// remainder.
//
// Returns [ErrMalformedCiphertext] if data is shorter than the id,
// [ErrUnknownCipher] if the id is not registered, and whatever the cipher
// reports otherwise (typically [ErrBadCiphertext] for a wrong password).
func (m *Manager) Decrypt(data, password, salt []byte) ([]byte, error) {
	if len(data) < encryptorIDSize {
		return nil, ErrMalformedCiphertext
	}

	id := binary.LittleEndian.Uint32(data[len(data)-encryptorIDSize:])
	encryptor, ok := m.encryptors[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCipher, id)
	}

	key := m.deriveKey(password, salt, encryptor.KeySize())
	defer Zero(key)

	return encryptor.Decrypt(data[:len(data)-encryptorIDSize], key)
}

// deriveKey stretches (password, salt) into a size-byte key with Argon2id.
// Deterministic for fixed inputs; zero-length inputs are permitted.
func (m *Manager) deriveKey(password, salt []byte, size int) []byte {
	return argon2.IDKey(password, salt, m.argonTime, m.argonMemory, m.argonThreads, uint32(size))
}

// Zero overwrites b so key material does not linger on the heap after use.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
