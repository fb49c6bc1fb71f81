package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-extractor/internal/types"
)

// Extraction status constants
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Extraction is one stored extraction run.
type Extraction struct {
	ID           uuid.UUID           `json:"id"`
	DocumentName string              `json:"document_name"`
	Format       string              `json:"format"`
	Fingerprint  string              `json:"fingerprint"`
	Backend      string              `json:"backend"`
	Status       string              `json:"status"`
	Record       *types.ResumeRecord `json:"record,omitempty"`
	ErrorCode    *string             `json:"error_code,omitempty"`
	ErrorMessage *string             `json:"error_message,omitempty"`
	DurationMs   *int                `json:"duration_ms,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	CompletedAt  *time.Time          `json:"completed_at,omitempty"`
}

// ExtractionInput describes the document an extraction runs on.
type ExtractionInput struct {
	// ID is the pipeline run id; uuid.Nil lets the store pick one.
	ID           uuid.UUID
	DocumentName string
	Format       string
	Fingerprint  string
	Backend      string
}

// SegmentRow is the stored result of one segment.
type SegmentRow struct {
	SegmentID  string              `json:"segment_id"`
	Position   int                 `json:"position"`
	Label      string              `json:"label"`
	LabelScore float64             `json:"label_score"`
	Classified bool                `json:"classified"`
	Skipped    bool                `json:"skipped"`
	Result     types.SegmentResult `json:"result"`
}

// StepRow is one recorded pipeline progress event.
type StepRow struct {
	Step      string    `json:"step"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ExtractionFilters holds optional filters for listing extractions
type ExtractionFilters struct {
	Status      string
	Fingerprint string
	Limit       int
}
