//go:build integration
// +build integration

package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/types"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test")
	}
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := Connect(ctx, dbURL)
	if err != nil {
		t.Skipf("Skipping integration test: failed to connect to DB: %v", err)
	}
	require.NoError(t, db.EnsureSchema(ctx))
	t.Cleanup(db.Close)
	return db
}

func sampleRecord() *types.ResumeRecord {
	rec := types.NewResumeRecord()
	rec.Candidate.Name = "John Smith"
	rec.Skills = []string{"Go", "Python"}
	rec.Experience = append(rec.Experience, types.ExperienceRecord{JobTitle: "Software Engineer", Company: "ABC Technologies"})
	return rec
}

func TestSaveAndGetExtraction_Integration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	fingerprint := "fp-" + uuid.NewString()
	segments := []*types.SegmentResult{
		{SegmentID: "b", Position: 1, Text: "Python", Label: types.LabelSkills, LabelScore: 1, Classified: true},
		{SegmentID: "a", Position: 0, Text: " ", Skipped: true},
	}
	id, err := db.SaveExtraction(ctx, &ExtractionInput{
		DocumentName: "cv.txt",
		Format:       "text",
		Fingerprint:  fingerprint,
		Backend:      "rules",
	}, sampleRecord(), segments, 1500*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.DeleteExtraction(context.Background(), id) })

	got, err := db.GetExtraction(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, StatusCompleted, got.Status)
	assert.Equal(t, "cv.txt", got.DocumentName)
	require.NotNil(t, got.Record)
	assert.Equal(t, "John Smith", got.Record.Candidate.Name)
	assert.Equal(t, []string{"Go", "Python"}, got.Record.Skills)
	require.NotNil(t, got.DurationMs)
	assert.Equal(t, 1500, *got.DurationMs)
	assert.NotNil(t, got.CompletedAt)

	rows, err := db.ListSegmentResults(ctx, id)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0].SegmentID)
	assert.True(t, rows[0].Skipped)
	assert.Equal(t, "Skills", rows[1].Label)
	assert.Equal(t, "Python", rows[1].Result.Text)

	found, err := db.FindByFingerprint(ctx, fingerprint)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, id, found.ID)

	list, err := db.ListExtractions(ctx, ExtractionFilters{Fingerprint: fingerprint})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestExtractionLifecycle_Integration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	runID := uuid.New()
	id, err := db.CreateExtraction(ctx, &ExtractionInput{ID: runID, DocumentName: "cv.pdf", Format: "pdf"})
	require.NoError(t, err)
	assert.Equal(t, runID, id)
	t.Cleanup(func() { _ = db.DeleteExtraction(context.Background(), id) })

	require.NoError(t, db.RecordStep(ctx, id, "classify", "segment", "Classifying segments..."))
	require.NoError(t, db.RecordStep(ctx, id, "build", "record", "Record built"))
	steps, err := db.ListSteps(ctx, id)
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "classify", steps[0].Step)

	running, err := db.GetExtraction(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, running.Status)
	assert.Nil(t, running.Record)

	require.NoError(t, db.CompleteExtraction(ctx, id, sampleRecord(), time.Second))
	done, err := db.GetExtraction(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, done.Status)
	require.NotNil(t, done.Record)
	assert.Len(t, done.Record.Experience, 1)

	require.NoError(t, db.SaveSegmentResults(ctx, id, []*types.SegmentResult{{SegmentID: "x", Position: 0, Text: "t"}}))
	rows, err := db.ListSegmentResults(ctx, id)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestFailExtraction_Integration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	id, err := db.CreateExtraction(ctx, &ExtractionInput{DocumentName: "broken.pdf"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.DeleteExtraction(context.Background(), id) })

	require.NoError(t, db.FailExtraction(ctx, id, "unreadable_document", "text extraction failed"))
	got, err := db.GetExtraction(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, got.Status)
	require.NotNil(t, got.ErrorCode)
	assert.Equal(t, "unreadable_document", *got.ErrorCode)
}

func TestMissingExtraction_Integration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	got, err := db.GetExtraction(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)

	found, err := db.FindByFingerprint(ctx, "never-seen-"+uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.Error(t, db.DeleteExtraction(ctx, uuid.New()))
	assert.Error(t, db.CompleteExtraction(ctx, uuid.New(), sampleRecord(), 0))
}
