package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// AuthService owns the credential lifecycle: account creation, login with
// throttling, session token minting and validation, and password rotation.
type AuthService interface {
	// CreateUser registers a new account. It generates a fresh 64-byte
	// Credential, wraps it under a key derived from the login password and
	// a new 32-byte salt, and performs a conditional insert.
	//
	// Returns [ErrInvalidDataProvided] for an empty username or password
	// and [store.ErrUserAlreadyExists] (wrapped) when the username is
	// taken. On success the returned User carries the plaintext Credential
	// for the remainder of this request.
	CreateUser(ctx context.Context, username, password string) (*User, error)

	// Login authenticates by unwrapping the stored credential with the
	// supplied password.
	//
	// Returns [ErrLoginSuspended] while the account is throttled and
	// [ErrBadCredentials] for an unknown username or wrong password
	// (indistinguishable to the caller). Five consecutive failures suspend
	// the account for five minutes; a success resets the counter.
	Login(ctx context.Context, username, password string) (*User, error)

	// CreateToken mints a session for an authenticated user: it wraps the
	// user's Credential under a fresh 64-byte token credential, persists
	// the wrapped blob, and returns the client-held token string carrying
	// the unwrapping material, the row id, and the binding tag.
	CreateToken(ctx context.Context, user *User) (string, error)

	// FindUser validates a token string and reconstructs the session's
	// User, refreshing the token's idle-timeout anchor.
	//
	// Returns [ErrInvalidToken] for any token that fails to decode, match
	// its row, pass the binding tag, or beat the idle timeout.
	FindUser(ctx context.Context, token string) (*User, error)

	// ChangePassword verifies oldPassword and re-wraps the user's
	// unchanged Credential under a fresh salt and newPassword. Existing
	// records and non-expired tokens keep working.
	//
	// Returns [ErrBadCredentials] if oldPassword does not open the stored
	// credential and [ErrInvalidDataProvided] for empty passwords.
	ChangePassword(ctx context.Context, user *User, oldPassword, newPassword string) error

	// Logout deletes the session row referenced by the token string,
	// invalidating every copy of it. Returns [ErrInvalidToken] if the
	// string does not decode or bind to a live row.
	Logout(ctx context.Context, token string) error
}

// PasswordService manages vault entries on behalf of an authenticated
// user. Every secret field is an independent envelope ciphertext under the
// owner's Credential; the owner scope is enforced in the storage
// predicates.
type PasswordService interface {
	// List returns the plaintext projections of the user's entries, newest
	// update first.
	List(ctx context.Context, user *User) ([]models.PasswordListItem, error)

	// View decrypts a single entry. Returns (nil, nil) when no entry
	// matches (id, user.ID); absence and another owner's id are
	// indistinguishable.
	View(ctx context.Context, user *User, id int64) (*models.PasswordView, error)

	// Create encrypts the secret fields with fresh nonces and inserts a
	// new entry.
	Create(ctx context.Context, user *User, create models.PasswordCreate) error

	// Update re-encrypts all secret fields (nonces always differ between
	// writes) and rewrites the row matching (id, user.ID).
	Update(ctx context.Context, user *User, id int64, update models.PasswordUpdate) error

	// Delete removes the entry matching (id, user.ID).
	Delete(ctx context.Context, user *User, id int64) error
}
