package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Storages groups all repository implementations behind one constructor.
// It is built once at startup and injected into the service layer.
type Storages struct {
	UserRepository     UserRepository
	TokenRepository    TokenRepository
	PasswordRepository PasswordRepository

	db *DB
}

// NewStorages opens the SQLite database under cfg.DataDir, applies pending
// migrations, and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		TokenRepository:    NewTokenRepository(db, log),
		PasswordRepository: NewPasswordRepository(db, log),
		db:                 db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
