// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

// DB is the database wrapper shared by all repositories.
//
// It embeds *sql.DB to expose the standard database/sql API while carrying
// the structured logger used for diagnostics of database operations. It is
// the root dependency for the repository layer and migration execution.
type DB struct {
	// DB is the underlying SQL connection pool.
	*sql.DB

	// logger is used for structured logging of database-related events.
	logger *logger.Logger
}

// Migrate executes all pending database schema migrations.
//
// It delegates to the migrations package, applying unapplied migration
// files in order. Called once during application startup, before any
// repository uses the connection.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
