package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-extractor/internal/types"
)

// -----------------------------------------------------------------------------
// Segment results and pipeline steps
// -----------------------------------------------------------------------------

// SaveSegmentResults stores the per-segment results of an extraction,
// replacing rows of segments already stored.
func (db *DB) SaveSegmentResults(ctx context.Context, extractionID uuid.UUID, segments []*types.SegmentResult) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := insertSegments(ctx, tx, extractionID, segments); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit segment results: %w", err)
	}
	return nil
}

func insertSegments(ctx context.Context, tx pgx.Tx, extractionID uuid.UUID, segments []*types.SegmentResult) error {
	batch := &pgx.Batch{}
	for _, s := range segments {
		if s == nil {
			continue
		}
		resultJSON, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("failed to marshal segment %s: %w", s.SegmentID, err)
		}
		batch.Queue(
			`INSERT INTO extraction_segments
			     (extraction_id, segment_id, position, label, label_score, classified, skipped, result)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (extraction_id, segment_id) DO UPDATE SET
			     position = $3, label = $4, label_score = $5, classified = $6, skipped = $7, result = $8`,
			extractionID, s.SegmentID, s.Position, string(s.Label), s.LabelScore, s.Classified, s.Skipped, resultJSON,
		)
	}
	if batch.Len() == 0 {
		return nil
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert segment results: %w", err)
	}
	return nil
}

// ListSegmentResults retrieves the segment results of an extraction in
// position order
func (db *DB) ListSegmentResults(ctx context.Context, extractionID uuid.UUID) ([]SegmentRow, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT segment_id, position, label, label_score, classified, skipped, result
		 FROM extraction_segments
		 WHERE extraction_id = $1
		 ORDER BY position, segment_id`,
		extractionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list segment results: %w", err)
	}
	defer rows.Close()

	var out []SegmentRow
	for rows.Next() {
		var r SegmentRow
		var resultJSON []byte
		if err := rows.Scan(&r.SegmentID, &r.Position, &r.Label, &r.LabelScore, &r.Classified, &r.Skipped, &resultJSON); err != nil {
			return nil, fmt.Errorf("failed to scan segment result: %w", err)
		}
		if err := json.Unmarshal(resultJSON, &r.Result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal segment result: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// RecordStep appends a pipeline progress event to an extraction
func (db *DB) RecordStep(ctx context.Context, extractionID uuid.UUID, step, category, message string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO extraction_steps (extraction_id, step, category, message)
		 VALUES ($1, $2, $3, $4)`,
		extractionID, step, category, message,
	)
	if err != nil {
		return fmt.Errorf("failed to record step %s: %w", step, err)
	}
	return nil
}

// ListSteps retrieves the recorded steps of an extraction in order
func (db *DB) ListSteps(ctx context.Context, extractionID uuid.UUID) ([]StepRow, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT step, category, message, created_at
		 FROM extraction_steps WHERE extraction_id = $1 ORDER BY id`,
		extractionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}
	defer rows.Close()

	var out []StepRow
	for rows.Next() {
		var s StepRow
		if err := rows.Scan(&s.Step, &s.Category, &s.Message, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan step: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
