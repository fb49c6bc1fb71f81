// Package classify assigns canonical section labels to segments. The label
// it returns routes every downstream extractor.
package classify

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/models"
	"github.com/jonathan/resume-extractor/internal/textutil"
	"github.com/jonathan/resume-extractor/internal/types"
)

// Label sources.
const (
	SourceSegment    = "segment"
	SourceClassifier = "classifier"
)

// Result is the routing decision for one segment.
type Result struct {
	Label types.Label
	Score float64
	// Source tells whether the label came from the segment source or the model.
	Source string
	// Skipped is set for blank segments, which are never classified.
	Skipped bool
}

// Classifier routes segments through the model classifier of a registry.
type Classifier struct {
	registry *models.Registry
	labels   map[types.Label]bool
	minScore float64
	trust    bool
	logger   zerolog.Logger
}

// New creates a classifier for the profile vocabulary.
func New(registry *models.Registry, profile *config.Profile, logger zerolog.Logger) *Classifier {
	if profile == nil {
		profile = config.DefaultProfile()
	}
	labels := make(map[types.Label]bool)
	for _, l := range profile.LabelSet() {
		labels[l] = true
	}
	return &Classifier{
		registry: registry,
		labels:   labels,
		minScore: profile.Thresholds.ClassifierMinScore,
		trust:    profile.TrustSourceLabels,
		logger:   logger,
	}
}

// Classify returns the canonical label of seg. Blank segments are reported
// as skipped without calling the model. A label carried by the segment is
// trusted when the profile allows it. Model failures and unusable answers are
// returned as errors; the caller keeps such segments out of structured
// extraction.
func (c *Classifier) Classify(ctx context.Context, seg types.Segment) (res Result, err error) {
	if seg.IsBlank() {
		return Result{Skipped: true}, nil
	}
	if c.trust {
		if label, ok := seg.HintLabel(); ok && c.labels[label] {
			return Result{Label: label, Score: 1, Source: SourceSegment}, nil
		}
	}

	defer func() {
		if r := recover(); r != nil {
			res, err = Result{}, &Error{SegmentID: seg.ID, Cause: fmt.Errorf("panic: %v", r)}
		}
	}()

	model, err := c.registry.Classifier(ctx)
	if err != nil {
		return Result{}, &Error{SegmentID: seg.ID, Cause: err}
	}
	pred, err := model.Classify(ctx, textutil.CleanText(seg.Text))
	if err != nil {
		return Result{}, &Error{SegmentID: seg.ID, Cause: err}
	}

	label, ok := types.ParseLabel(pred.Label)
	if !ok || !c.labels[label] {
		return Result{}, &Error{SegmentID: seg.ID, Cause: fmt.Errorf("%w: label %q", ErrNoUsableLabel, pred.Label)}
	}
	if math.IsNaN(pred.Score) || pred.Score < c.minScore {
		return Result{}, &Error{SegmentID: seg.ID, Cause: fmt.Errorf("%w: %s scored %.2f", ErrNoUsableLabel, label, pred.Score)}
	}

	c.logger.Debug().
		Str("segment_id", seg.ID).
		Str("label", label.String()).
		Float64("score", pred.Score).
		Msg("segment classified")
	return Result{Label: label, Score: pred.Score, Source: SourceClassifier}, nil
}
