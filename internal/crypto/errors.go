package crypto

import "errors"

// Sentinel errors returned by the envelope layer. Callers should match
// them with [errors.Is]; all of them indicate data or key problems, never
// transient conditions.
var (
	// ErrUnknownCipher is returned when an envelope's trailing cipher id
	// does not match any registered encryptor.
	ErrUnknownCipher = errors.New("unknown cipher id")

	// ErrMalformedCiphertext is returned when an input is structurally too
	// short to be an envelope or a cipher output (missing id or nonce).
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrBadCiphertext is returned when authenticated decryption fails,
	// i.e. the key is wrong or the ciphertext was tampered with.
	ErrBadCiphertext = errors.New("ciphertext authentication failed")

	// ErrInvalidKey is returned when a key of the wrong length is supplied
	// to a cipher.
	ErrInvalidKey = errors.New("invalid key length")

	// ErrInvalidCredential is returned when credential material of the
	// wrong length is supplied to [CredentialFromBytes].
	ErrInvalidCredential = errors.New("invalid credential length")

	// ErrNoEncryptors is returned by [NewManager] when no encryptor is
	// registered.
	ErrNoEncryptors = errors.New("no encryptors registered")

	// ErrDuplicateCipherID is returned by [NewManager] when two encryptors
	// claim the same id.
	ErrDuplicateCipherID = errors.New("duplicate cipher id")
)
