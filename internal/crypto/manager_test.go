package crypto

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(AES256GCM{})
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}
	return m
}

func TestManager_EncryptDecryptRoundTrip(t *testing.T) {
	m := newTestManager(t)

	plaintext := []byte("foobar")
	envelope, err := m.Encrypt(plaintext, []byte("12345678"), []byte("87654321"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	got, err := m.Decrypt(envelope, []byte("12345678"), []byte("87654321"))
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip = %q, want %q", got, plaintext)
	}
}

func TestManager_EnvelopeCarriesTrailingCipherID(t *testing.T) {
	m := newTestManager(t)

	envelope, err := m.Encrypt([]byte("data"), []byte("pw"), []byte("salt"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	id := binary.LittleEndian.Uint32(envelope[len(envelope)-4:])
	if id != aesGCMID {
		t.Fatalf("trailing cipher id = %d, want %d", id, aesGCMID)
	}
}

func TestManager_DecryptWrongPassword(t *testing.T) {
	m := newTestManager(t)

	envelope, err := m.Encrypt([]byte("data"), []byte("right"), []byte("salt"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if _, err := m.Decrypt(envelope, []byte("wrong"), []byte("salt")); !errors.Is(err, ErrBadCiphertext) {
		t.Fatalf("expected ErrBadCiphertext, got %v", err)
	}
}

func TestManager_DecryptWrongSalt(t *testing.T) {
	m := newTestManager(t)

	envelope, err := m.Encrypt([]byte("data"), []byte("pw"), []byte("salt-a"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if _, err := m.Decrypt(envelope, []byte("pw"), []byte("salt-b")); !errors.Is(err, ErrBadCiphertext) {
		t.Fatalf("expected ErrBadCiphertext, got %v", err)
	}
}

func TestManager_DecryptUnknownCipherID(t *testing.T) {
	m := newTestManager(t)

	envelope, err := m.Encrypt([]byte("data"), []byte("pw"), []byte("salt"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	// Swap the trailing id for one that is not registered.
	binary.LittleEndian.PutUint32(envelope[len(envelope)-4:], 0xdeadbeef)

	if _, err := m.Decrypt(envelope, []byte("pw"), []byte("salt")); !errors.Is(err, ErrUnknownCipher) {
		t.Fatalf("expected ErrUnknownCipher, got %v", err)
	}
}

func TestManager_DecryptTruncatedEnvelope(t *testing.T) {
	m := newTestManager(t)

	for _, n := range []int{0, 1, 2, 3} {
		if _, err := m.Decrypt(make([]byte, n), []byte("pw"), []byte("salt")); !errors.Is(err, ErrMalformedCiphertext) {
			t.Fatalf("len %d: expected ErrMalformedCiphertext, got %v", n, err)
		}
	}
}

func TestManager_EmptyPasswordAndSaltPermitted(t *testing.T) {
	m := newTestManager(t)

	envelope, err := m.Encrypt([]byte("data"), nil, nil)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	got, err := m.Decrypt(envelope, nil, nil)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if !bytes.Equal(got, []byte("data")) {
		t.Fatalf("round trip with empty inputs failed")
	}
}

func TestManager_DeriveKeyDeterministic(t *testing.T) {
	m := newTestManager(t)

	k1 := m.deriveKey([]byte("pw"), []byte("salt"), 32)
	k2 := m.deriveKey([]byte("pw"), []byte("salt"), 32)
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected identical keys for identical inputs")
	}
	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
}

func TestNewManager_NoEncryptors(t *testing.T) {
	if _, err := NewManager(); !errors.Is(err, ErrNoEncryptors) {
		t.Fatalf("expected ErrNoEncryptors, got %v", err)
	}
}

func TestNewManager_DuplicateID(t *testing.T) {
	if _, err := NewManager(AES256GCM{}, AES256GCM{}); !errors.Is(err, ErrDuplicateCipherID) {
		t.Fatalf("expected ErrDuplicateCipherID, got %v", err)
	}
}
