// Package pipeline provides the high-level orchestration of resume extraction:
// classify and extract every segment, then aggregate and build the record.
package pipeline

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-extractor/internal/classify"
	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/extract"
	"github.com/jonathan/resume-extractor/internal/models"
	"github.com/jonathan/resume-extractor/internal/pipeline/steps"
	"github.com/jonathan/resume-extractor/internal/record"
	"github.com/jonathan/resume-extractor/internal/types"
)

// ErrNoRegistry is returned by New when no model registry is given.
var ErrNoRegistry = errors.New("pipeline: model registry is required")

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for running the pipeline
type Options struct {
	// Parallelism bounds concurrent segment extraction. Zero or one runs
	// segments sequentially.
	Parallelism int
	OnProgress  ProgressCallback
	// Now is the clock used for date plausibility checks.
	Now func() time.Time
}

// Result is the full outcome of one run.
type Result struct {
	RunID    uuid.UUID              `json:"run_id"`
	Segments []*types.SegmentResult `json:"segments"`
	Record   *types.ResumeRecord    `json:"record"`
	Pools    *record.Pools          `json:"-"`
	Duration time.Duration          `json:"duration"`
}

// Pipeline turns segments into a resume record. It keeps no per-run state,
// so one Pipeline may serve concurrent runs.
type Pipeline struct {
	classifier *classify.Classifier
	extractors *extract.Set
	builder    *record.Builder
	opts       Options
	logger     zerolog.Logger
}

// New creates a pipeline over the models in registry. A nil profile selects
// the default profile.
func New(registry *models.Registry, profile *config.Profile, logger zerolog.Logger, opts Options) (*Pipeline, error) {
	if registry == nil {
		return nil, ErrNoRegistry
	}
	if profile == nil {
		profile = config.DefaultProfile()
	}
	extractOpts := extract.OptionsFromProfile(profile)
	if opts.Now != nil {
		extractOpts.Now = opts.Now
	}
	return &Pipeline{
		classifier: classify.New(registry, profile, logger),
		extractors: extract.NewSet(registry, extractOpts, logger),
		builder:    record.NewBuilder(profile.Thresholds, logger),
		opts:       opts,
		logger:     logger,
	}, nil
}

// Run extracts the resume record from segments. The record is always
// structurally complete; the only error is cancellation of ctx.
func (p *Pipeline) Run(ctx context.Context, segments []types.Segment) (*types.ResumeRecord, error) {
	res, err := p.RunDetailed(ctx, segments)
	if err != nil {
		return nil, err
	}
	return res.Record, nil
}

// RunDetailed is Run that also returns the per-segment results and the
// aggregated candidate pools.
func (p *Pipeline) RunDetailed(ctx context.Context, segments []types.Segment) (*Result, error) {
	start := time.Now()
	runID := uuid.New()
	emit := p.emitter(runID)
	tracker := steps.NewTracker()
	logger := p.logger.With().Str("run_id", runID.String()).Logger()

	if err := tracker.Begin(steps.StepClassify); err != nil {
		return nil, err
	}
	emit(steps.StepClassify, "Classifying segments...", len(segments))

	results := make([]*types.SegmentResult, len(segments))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(p.opts.Parallelism, 1))
	for i, seg := range segments {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = p.RunSegment(gctx, seg)
			emit(steps.StepExtract, "Segment extracted", segmentSummary(results[i]))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Warn().Err(err).Msg("run cancelled")
		return nil, err
	}
	// Classification and extraction interleave per segment; both finish together.
	tracker.Complete(steps.StepClassify)
	if err := tracker.Begin(steps.StepExtract); err != nil {
		return nil, err
	}
	tracker.Complete(steps.StepExtract)

	if err := tracker.Begin(steps.StepAggregate); err != nil {
		return nil, err
	}
	emit(steps.StepAggregate, "Aggregating candidates...", nil)
	tracker.Complete(steps.StepAggregate)

	if err := tracker.Begin(steps.StepBuild); err != nil {
		return nil, err
	}
	rec, pools := p.builder.BuildWithPools(results)
	tracker.Complete(steps.StepBuild)
	emit(steps.StepBuild, "Record built", rec)

	elapsed := time.Since(start)
	logger.Info().
		Int("segments", len(segments)).
		Int("experience", len(rec.Experience)).
		Int("education", len(rec.Education)).
		Int("skills", len(rec.Skills)).
		Dur("elapsed", elapsed).
		Msg("extraction finished")

	return &Result{RunID: runID, Segments: results, Record: rec, Pools: pools, Duration: elapsed}, nil
}

// RunSegment classifies and extracts one segment. It never fails: a segment
// without a usable label comes back unclassified and blank segments come back
// skipped.
func (p *Pipeline) RunSegment(ctx context.Context, seg types.Segment) *types.SegmentResult {
	if seg.ID == "" {
		seg.ID = uuid.NewString()
	}
	res := &types.SegmentResult{SegmentID: seg.ID, Position: seg.Position, Text: seg.Text}

	cls, err := p.classifier.Classify(ctx, seg)
	switch {
	case err != nil:
		p.logger.Info().
			Err(err).
			Str("segment_id", seg.ID).
			Msg("segment not classified, keeping as free text")
		return res
	case cls.Skipped:
		res.Skipped = true
		return res
	}
	res.Label = cls.Label
	res.LabelScore = cls.Score
	res.Classified = true

	p.extractors.Extract(ctx, res)
	return res
}

// emitter returns a progress function that serializes callback invocations.
func (p *Pipeline) emitter(runID uuid.UUID) func(step, message string, content any) {
	if p.opts.OnProgress == nil {
		return func(string, string, any) {}
	}
	var mu sync.Mutex
	return func(step, message string, content any) {
		mu.Lock()
		defer mu.Unlock()
		p.opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: steps.Category(step),
			Message:  message,
			RunID:    runID.String(),
			Content:  content,
		})
	}
}

// SegmentSummary is the progress payload of an extracted segment.
type SegmentSummary struct {
	SegmentID string      `json:"segment_id"`
	Label     types.Label `json:"label"`
	Skipped   bool        `json:"skipped"`
	Errors    []string    `json:"errors,omitempty"`
}

func segmentSummary(r *types.SegmentResult) SegmentSummary {
	return SegmentSummary{SegmentID: r.SegmentID, Label: r.Label, Skipped: r.Skipped, Errors: r.Errors}
}
