// Package adapter provides the Go client for the go-pass-vault JSON-RPC
// surface. It is consumed by the vaultctl command-line client and usable
// by any Go program that talks to a running server.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// ServerAdapter is the client-side view of the server's RPC method table.
// All methods are safe for concurrent use.
type ServerAdapter interface {
	// Login authenticates and returns the session token string.
	Login(ctx context.Context, username, password string) (string, error)

	// CreateUser registers a new account. Fails if the server runs with
	// user creation disabled.
	CreateUser(ctx context.Context, username, password string) error

	// ChangePassword rotates the login password for the session's account.
	ChangePassword(ctx context.Context, token, oldPassword, newPassword string) error

	// Logout revokes the session server-side.
	Logout(ctx context.Context, token string) error

	// ListPasswords returns the plaintext projections of the session
	// user's entries.
	ListPasswords(ctx context.Context, token string) ([]models.PasswordListItem, error)

	// ViewPassword fetches and returns one decrypted entry, or nil if no
	// entry with that id belongs to the session user.
	ViewPassword(ctx context.Context, token string, id int64) (*models.PasswordView, error)

	// CreatePassword stores a new entry.
	CreatePassword(ctx context.Context, token string, create models.PasswordCreate) error

	// UpdatePassword replaces an existing entry's fields.
	UpdatePassword(ctx context.Context, token string, id int64, update models.PasswordUpdate) error

	// DeletePassword removes an entry.
	DeletePassword(ctx context.Context, token string, id int64) error
}
