package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestGenerateCredential_LengthAndRandomness(t *testing.T) {
	c1, err := GenerateCredential()
	if err != nil {
		t.Fatalf("GenerateCredential error: %v", err)
	}
	c2, err := GenerateCredential()
	if err != nil {
		t.Fatalf("GenerateCredential error: %v", err)
	}

	if len(c1.Bytes()) != CredentialSize {
		t.Fatalf("credential length = %d, want %d", len(c1.Bytes()), CredentialSize)
	}
	if bytes.Equal(c1.Bytes(), c2.Bytes()) {
		t.Fatalf("expected credentials to differ, but they are equal")
	}
}

func TestCredential_DataKeyAndSaltSplit(t *testing.T) {
	raw := make([]byte, CredentialSize)
	for i := range raw {
		raw[i] = byte(i)
	}

	c, err := CredentialFromBytes(raw)
	if err != nil {
		t.Fatalf("CredentialFromBytes error: %v", err)
	}

	if len(c.DataKey()) != 32 || len(c.Salt()) != 32 {
		t.Fatalf("split lengths = %d/%d, want 32/32", len(c.DataKey()), len(c.Salt()))
	}
	if !bytes.Equal(c.DataKey(), raw[:32]) {
		t.Fatalf("data key is not the first 32 bytes")
	}
	if !bytes.Equal(c.Salt(), raw[32:]) {
		t.Fatalf("salt is not the last 32 bytes")
	}
}

func TestCredentialFromBytes_WrongLength(t *testing.T) {
	for _, n := range []int{0, 32, 63, 65} {
		if _, err := CredentialFromBytes(make([]byte, n)); !errors.Is(err, ErrInvalidCredential) {
			t.Fatalf("len %d: expected ErrInvalidCredential, got %v", n, err)
		}
	}
}

func TestCredential_Destroy(t *testing.T) {
	c, err := GenerateCredential()
	if err != nil {
		t.Fatalf("GenerateCredential error: %v", err)
	}

	c.Destroy()

	if !bytes.Equal(c.Bytes(), make([]byte, CredentialSize)) {
		t.Fatalf("expected credential bytes to be zeroed after Destroy")
	}
}

func TestCredential_WrapUnwrapRoundTrip(t *testing.T) {
	m := newTestManager(t)

	c, err := GenerateCredential()
	if err != nil {
		t.Fatalf("GenerateCredential error: %v", err)
	}

	salt := bytes.Repeat([]byte{0xAB}, 32)
	wrapped, err := m.Encrypt(c.Bytes(), []byte("login password"), salt)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	plain, err := m.Decrypt(wrapped, []byte("login password"), salt)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	got, err := CredentialFromBytes(plain)
	if err != nil {
		t.Fatalf("CredentialFromBytes error: %v", err)
	}
	if !bytes.Equal(got.Bytes(), c.Bytes()) {
		t.Fatalf("unwrapped credential differs from original")
	}

	if _, err := m.Decrypt(wrapped, []byte("wrong password"), salt); !errors.Is(err, ErrBadCiphertext) {
		t.Fatalf("expected ErrBadCiphertext for wrong password, got %v", err)
	}
}
