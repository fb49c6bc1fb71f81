// Package db provides PostgreSQL storage for extraction runs, their segment
// results and the resulting resume records.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// schemaStatements create the extraction tables. They are idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS extractions (
		id            UUID PRIMARY KEY,
		document_name TEXT NOT NULL DEFAULT '',
		format        TEXT NOT NULL DEFAULT '',
		fingerprint   TEXT NOT NULL DEFAULT '',
		backend       TEXT NOT NULL DEFAULT '',
		status        TEXT NOT NULL,
		record        JSONB,
		error_code    TEXT,
		error_message TEXT,
		duration_ms   INTEGER,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		completed_at  TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS extractions_fingerprint_idx ON extractions (fingerprint, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS extraction_segments (
		extraction_id UUID NOT NULL REFERENCES extractions (id) ON DELETE CASCADE,
		segment_id    TEXT NOT NULL,
		position      INTEGER NOT NULL,
		label         TEXT NOT NULL DEFAULT '',
		label_score   DOUBLE PRECISION NOT NULL DEFAULT 0,
		classified    BOOLEAN NOT NULL,
		skipped       BOOLEAN NOT NULL,
		result        JSONB NOT NULL,
		PRIMARY KEY (extraction_id, segment_id)
	)`,
	`CREATE TABLE IF NOT EXISTS extraction_steps (
		id            BIGSERIAL PRIMARY KEY,
		extraction_id UUID NOT NULL REFERENCES extractions (id) ON DELETE CASCADE,
		step          TEXT NOT NULL,
		category      TEXT NOT NULL DEFAULT '',
		message       TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates the extraction tables if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

// nullIfEmpty returns nil for empty strings so they are stored as NULL.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
