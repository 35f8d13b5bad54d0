// Copyright (c) 2026 VanCommunity. All rights reserved.
// Author: Francesca993 (VanCommunity)

// Package sqlite opens the embedded, file-backed database used by the
// single-node Catalog Store. It relies on the pure Go modernc driver, so the
// binary keeps building without CGO.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)
)

const pingTimeout = 2 * time.Second

// Open creates the parent directory of path if needed and opens the database
// with foreign keys and a busy timeout enabled.
//
// SQLite allows a single writer; the pool is capped at one connection so
// conditional updates are serialized by database/sql instead of failing with
// SQLITE_BUSY.
func Open(ctx context.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: failed to create database directory: %w", err)
		}
	}

	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := Ping(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("sqlite_database_opened", slog.String("path", path))

	return db, nil
}

// Ping verifies that the database file is reachable.
func Ping(ctx context.Context, db *sql.DB) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("sqlite: ping failed: %w", err)
	}

	return nil
}
