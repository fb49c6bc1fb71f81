// Package models defines the contracts of the classification, entity and skill
// models consumed by the extraction pipeline, a registry that loads them
// lazily, and the rule-based and Gemini backends.
package models

import (
	"context"

	"github.com/jonathan/resume-extractor/internal/types"
)

// Classification is a classifier prediction. Label is the raw model output
// and may not be canonical.
type Classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classifier assigns a section label to segment text.
type Classifier interface {
	Classify(ctx context.Context, text string) (Classification, error)
}

// EntityRecognizer predicts typed spans in text. Only entities with one of
// labels and a score of at least threshold are returned.
type EntityRecognizer interface {
	PredictEntities(ctx context.Context, text string, labels []types.EntityLabel, threshold float64) ([]types.Entity, error)
}

// SkillMatch is one skill found by an annotator.
type SkillMatch struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
	Start int     `json:"start"`
	End   int     `json:"end"`
}

// SkillAnnotation is the output of a skill annotator: exact vocabulary hits
// and scored partial matches.
type SkillAnnotation struct {
	FullMatches []SkillMatch `json:"full_matches"`
	NgramScored []SkillMatch `json:"ngram_scored"`
}

// SkillAnnotator finds skills in text.
type SkillAnnotator interface {
	Annotate(ctx context.Context, text string) (SkillAnnotation, error)
}

// ClassifierFunc adapts a function to Classifier.
type ClassifierFunc func(ctx context.Context, text string) (Classification, error)

// Classify calls f.
func (f ClassifierFunc) Classify(ctx context.Context, text string) (Classification, error) {
	return f(ctx, text)
}

// RecognizerFunc adapts a function to EntityRecognizer.
type RecognizerFunc func(ctx context.Context, text string, labels []types.EntityLabel, threshold float64) ([]types.Entity, error)

// PredictEntities calls f.
func (f RecognizerFunc) PredictEntities(ctx context.Context, text string, labels []types.EntityLabel, threshold float64) ([]types.Entity, error) {
	return f(ctx, text, labels, threshold)
}

// AnnotatorFunc adapts a function to SkillAnnotator.
type AnnotatorFunc func(ctx context.Context, text string) (SkillAnnotation, error)

// Annotate calls f.
func (f AnnotatorFunc) Annotate(ctx context.Context, text string) (SkillAnnotation, error) {
	return f(ctx, text)
}
