// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// databaseFileName is the single database file kept inside the data
// directory.
const databaseFileName = "database"

// NewConnectSQLite opens the SQLite database file inside cfg.DataDir,
// creating the directory if it does not yet exist, and verifies
// reachability with a ping.
//
// Returns an error if the data directory cannot be created, the driver
// fails to open, or the ping fails.
func NewConnectSQLite(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("data_dir", cfg.DataDir).Msg("error creating data directory")
		return nil, fmt.Errorf("error creating data directory: %w", err)
	}

	dsn := filepath.Join(cfg.DataDir, databaseFileName)
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("dsn", dsn).Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}
