// Package models defines the persistence row types and wire DTOs shared
// by the store, service, and handler layers.
package models

// User is the persisted account row. All credential material in it is
// opaque to the server: Credential is an envelope ciphertext that only the
// login password can open.
type User struct {
	// UserID is the store-assigned monotonic identifier.
	UserID int64 `json:"-"`

	// Username is the unique login name. Plaintext; used only for lookup.
	Username string `json:"-"`

	// Salt is the 32-byte KDF salt drawn at account creation. Replaced on
	// every password change. Independent of the salt half inside the
	// wrapped Credential.
	Salt []byte `json:"-"`

	// Credential is the user's 64-byte Credential wrapped under a key
	// derived from the login password and Salt.
	Credential []byte `json:"-"`

	// Suspend throttles logins. Values below the attempt limit count
	// consecutive failures; values at or above it are a Unix-second unlock
	// timestamp. A successful login resets it to zero.
	Suspend int64 `json:"-"`

	// CreatedAt is the Unix-second creation timestamp.
	CreatedAt int64 `json:"-"`
}

// TableName returns the name of the database table associated with the
// User model.
func (u User) TableName() string {
	return "user"
}
