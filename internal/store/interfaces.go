// Package store provides data-access abstractions and repository
// implementations for persisting and querying application domain objects
// (users, tokens, vault entries) in the SQLite database.
//
// It defines repository interfaces, concrete implementations, prepared
// query text, and the sentinel errors used across the storage layer.
package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// UserRepository is the data-access contract for the "user" table.
type UserRepository interface {
	// CreateUser persists a new account with a conditional insert: if the
	// username is already taken the statement is a no-op and
	// [ErrUserAlreadyExists] is returned. On success the returned user
	// carries the store-assigned UserID.
	//
	// The insert is a single statement, so two concurrent creators of the
	// same username cannot both succeed.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindByUsername returns the account row for the given username, or
	// [ErrUserNotFound].
	FindByUsername(ctx context.Context, username string) (models.User, error)

	// FindByID returns the account row for the given id, or
	// [ErrUserNotFound].
	FindByID(ctx context.Context, id int64) (models.User, error)

	// UpdateSuspend writes the login-throttle state for the given account.
	UpdateSuspend(ctx context.Context, id int64, suspend int64) error

	// UpdateCredential replaces the KDF salt and wrapped credential of an
	// account. Used by password rotation; the plaintext Credential inside
	// the envelope is unchanged.
	UpdateCredential(ctx context.Context, id int64, salt, credential []byte) error
}

// TokenRepository is the data-access contract for the "token" table.
type TokenRepository interface {
	// CreateToken persists a new session row and returns it with the
	// store-assigned TokenID.
	CreateToken(ctx context.Context, token models.Token) (models.Token, error)

	// FindByID returns the session row for the given id, or
	// [ErrTokenNotFound].
	FindByID(ctx context.Context, id int64) (models.Token, error)

	// UpdateLastActive refreshes a session's idle-timeout anchor. The
	// refresh is advisory; concurrent validations may coalesce writes.
	UpdateLastActive(ctx context.Context, id int64, lastActive int64) error

	// Delete removes a session row. Removing the row invalidates every
	// outstanding token string bound to it.
	Delete(ctx context.Context, id int64) error

	// DeleteIdleBefore removes all session rows whose LastActive is at or
	// before cutoff and reports how many were deleted.
	DeleteIdleBefore(ctx context.Context, cutoff int64) (int64, error)
}

// PasswordRepository is the data-access contract for the "password" table.
//
// Every read and mutation is scoped by (id, user_id) in the SQL predicate
// itself; no higher layer re-checks ownership.
type PasswordRepository interface {
	// List returns the plaintext projections of all entries owned by
	// userID, newest update first.
	List(ctx context.Context, userID int64) ([]models.PasswordListItem, error)

	// Find returns the entry row matching (id, userID), or
	// [ErrPasswordNotFound].
	Find(ctx context.Context, id, userID int64) (models.Password, error)

	// Create persists a new entry row.
	Create(ctx context.Context, password models.Password) error

	// Update replaces name, all three ciphertext fields, and UpdatedAt of
	// the row matching (password.ID, password.UserID). A non-matching id
	// is a no-op.
	Update(ctx context.Context, password models.Password) error

	// Delete removes the row matching (id, userID). A non-matching id is a
	// no-op.
	Delete(ctx context.Context, id, userID int64) error
}
