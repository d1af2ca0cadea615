// Package migrations manages database schema migrations for the
// application. It uses the goose migration library with embedded SQL
// files, ensuring that all migration files are compiled into the binary
// and applied automatically at startup without requiring external file
// access.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// embedMigrations holds all *.sql migration files embedded into the binary
// at compile time via the go:embed directive.
//
//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all pending database migrations using the goose library.
//
// It configures goose to use the embedded filesystem and the sqlite3
// dialect, then runs all unapplied migrations in ascending order. Intended
// to be called once at application startup, before the database is used by
// any other component.
func Migrate(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
