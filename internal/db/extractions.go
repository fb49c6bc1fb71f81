package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-extractor/internal/types"
)

const extractionColumns = `id, document_name, format, fingerprint, backend, status, record,
	error_code, error_message, duration_ms, created_at, completed_at`

// CreateExtraction creates a running extraction and returns its ID
func (db *DB) CreateExtraction(ctx context.Context, input *ExtractionInput) (uuid.UUID, error) {
	id := input.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	_, err := db.pool.Exec(ctx,
		`INSERT INTO extractions (id, document_name, format, fingerprint, backend, status)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, input.DocumentName, input.Format, input.Fingerprint, input.Backend, StatusRunning,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create extraction: %w", err)
	}
	return id, nil
}

// CompleteExtraction stores the record of a finished extraction
func (db *DB) CompleteExtraction(ctx context.Context, id uuid.UUID, record *types.ResumeRecord, duration time.Duration) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	result, err := db.pool.Exec(ctx,
		`UPDATE extractions
		 SET status = $1, record = $2, duration_ms = $3, completed_at = NOW()
		 WHERE id = $4`,
		StatusCompleted, recordJSON, int(duration.Milliseconds()), id,
	)
	if err != nil {
		return fmt.Errorf("failed to complete extraction: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("extraction not found: %s", id)
	}
	return nil
}

// FailExtraction marks an extraction as failed with an error code
func (db *DB) FailExtraction(ctx context.Context, id uuid.UUID, code, message string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE extractions
		 SET status = $1, error_code = $2, error_message = $3, completed_at = NOW()
		 WHERE id = $4`,
		StatusFailed, code, nullIfEmpty(message), id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark extraction failed: %w", err)
	}
	return nil
}

// SaveExtraction stores a completed extraction with its segment results in
// one transaction and returns its ID.
func (db *DB) SaveExtraction(ctx context.Context, input *ExtractionInput, record *types.ResumeRecord, segments []*types.SegmentResult, duration time.Duration) (uuid.UUID, error) {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id := input.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO extractions (id, document_name, format, fingerprint, backend, status, record, duration_ms, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())`,
		id, input.DocumentName, input.Format, input.Fingerprint, input.Backend,
		StatusCompleted, recordJSON, int(duration.Milliseconds()),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert extraction: %w", err)
	}

	if err := insertSegments(ctx, tx, id, segments); err != nil {
		return uuid.Nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit extraction: %w", err)
	}
	return id, nil
}

// GetExtraction retrieves an extraction by ID. It returns nil when none exists.
func (db *DB) GetExtraction(ctx context.Context, id uuid.UUID) (*Extraction, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+extractionColumns+` FROM extractions WHERE id = $1`, id)
	e, err := scanExtraction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get extraction: %w", err)
	}
	return e, nil
}

// FindByFingerprint returns the latest completed extraction of a document,
// or nil when the document was never extracted.
func (db *DB) FindByFingerprint(ctx context.Context, fingerprint string) (*Extraction, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+extractionColumns+` FROM extractions
		 WHERE fingerprint = $1 AND status = $2
		 ORDER BY created_at DESC LIMIT 1`,
		fingerprint, StatusCompleted,
	)
	e, err := scanExtraction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find extraction: %w", err)
	}
	return e, nil
}

// ListExtractions retrieves recent extractions with optional filters
func (db *DB) ListExtractions(ctx context.Context, filters ExtractionFilters) ([]Extraction, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT ` + extractionColumns + ` FROM extractions WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}
	if filters.Fingerprint != "" {
		query += fmt.Sprintf(" AND fingerprint = $%d", argNum)
		args = append(args, filters.Fingerprint)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list extractions: %w", err)
	}
	defer rows.Close()

	var out []Extraction
	for rows.Next() {
		e, err := scanExtraction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan extraction: %w", err)
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// DeleteExtraction deletes an extraction and its segments and steps (via cascade)
func (db *DB) DeleteExtraction(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM extractions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete extraction: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("extraction not found: %s", id)
	}
	return nil
}

func scanExtraction(row pgx.Row) (*Extraction, error) {
	var e Extraction
	var recordJSON []byte
	err := row.Scan(&e.ID, &e.DocumentName, &e.Format, &e.Fingerprint, &e.Backend, &e.Status,
		&recordJSON, &e.ErrorCode, &e.ErrorMessage, &e.DurationMs, &e.CreatedAt, &e.CompletedAt)
	if err != nil {
		return nil, err
	}
	if len(recordJSON) > 0 {
		e.Record = types.NewResumeRecord()
		if err := json.Unmarshal(recordJSON, e.Record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}
	}
	return &e, nil
}
