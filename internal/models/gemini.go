package models

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/llm"
	"github.com/jonathan/resume-extractor/internal/prompts"
	"github.com/jonathan/resume-extractor/internal/types"
)

// BackendGemini names the Gemini backend.
const BackendGemini = "gemini"

// GeminiLoader returns a Loader that connects to Gemini with apiKey.
func GeminiLoader(profile *config.Profile, llmConfig *llm.Config, apiKey string) Loader {
	return func(ctx context.Context) (*Handles, error) {
		client, err := llm.NewClient(ctx, llmConfig, apiKey)
		if err != nil {
			return nil, err
		}
		h := NewLLMHandles(client, profile)
		h.closer = client.Close
		return h, nil
	}
}

// NewLLMHandles builds handles backed by client.
func NewLLMHandles(client llm.Client, profile *config.Profile) *Handles {
	return &Handles{
		Classifier: NewLLMClassifier(client, profile),
		Recognizer: &LLMRecognizer{client: client},
		Annotator:  &LLMAnnotator{client: client},
		Backend:    BackendGemini,
	}
}

// LLMClassifier classifies segments zero-shot against the label descriptions.
type LLMClassifier struct {
	client      llm.Client
	description string
}

// NewLLMClassifier builds a classifier for the profile vocabulary.
func NewLLMClassifier(client llm.Client, profile *config.Profile) *LLMClassifier {
	if profile == nil {
		profile = config.DefaultProfile()
	}
	items := make([]string, 0, len(profile.Labels))
	for _, l := range profile.Labels {
		item := l.Name
		if l.Description != "" {
			item += ": " + l.Description
		}
		items = append(items, item)
	}
	desc := prompts.Format(prompts.MustGet(prompts.ModelsFile, prompts.KeyClassifySegment), map[string]string{
		"Labels": prompts.BulletList(items),
	})
	return &LLMClassifier{client: client, description: desc}
}

// Classify implements Classifier.
func (c *LLMClassifier) Classify(ctx context.Context, text string) (Classification, error) {
	prompt := llm.BuildExtractionPrompt(llm.SegmentLabelSchema(c.description), text)
	raw, err := c.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return Classification{}, err
	}
	var out Classification
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &out); err != nil {
		return Classification{}, &ResponseError{Model: "classifier", Message: "invalid JSON", Cause: err}
	}
	out.Score = clamp01(out.Score)
	return out, nil
}

// LLMRecognizer predicts entities with an LLM and re-anchors the returned
// spans on the input text.
type LLMRecognizer struct {
	client llm.Client
}

type llmEntities struct {
	Entities []struct {
		Text  string  `json:"text"`
		Label string  `json:"label"`
		Score float64 `json:"score"`
		Start int     `json:"start"`
		End   int     `json:"end"`
	} `json:"entities"`
}

// PredictEntities implements EntityRecognizer.
func (r *LLMRecognizer) PredictEntities(ctx context.Context, text string, labels []types.EntityLabel, threshold float64) ([]types.Entity, error) {
	names := make([]string, 0, len(labels))
	want := make(map[types.EntityLabel]bool, len(labels))
	for _, l := range labels {
		names = append(names, string(l))
		want[l] = true
	}
	desc := prompts.Format(prompts.MustGet(prompts.ModelsFile, prompts.KeyExtractEntities), map[string]string{
		"Labels":    prompts.BulletList(names),
		"Threshold": strconv.FormatFloat(threshold, 'f', 2, 64),
	})

	raw, err := r.client.GenerateJSON(ctx, llm.BuildExtractionPrompt(llm.EntitiesSchema(desc), text), llm.TierStandard)
	if err != nil {
		return nil, err
	}
	var resp llmEntities
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &resp); err != nil {
		return nil, &ResponseError{Model: "recognizer", Message: "invalid JSON", Cause: err}
	}

	var out []types.Entity
	for _, e := range resp.Entities {
		label, ok := types.ParseEntityLabel(e.Label)
		if !ok || !want[label] {
			continue
		}
		score := clamp01(e.Score)
		if score < threshold {
			continue
		}
		start, end, ok := anchor(text, e.Text, e.Start, e.End)
		if !ok {
			continue
		}
		out = append(out, types.Entity{Text: text[start:end], Label: label, Score: score, Start: start, End: end})
	}
	return out, nil
}

// LLMAnnotator finds skills with an LLM.
type LLMAnnotator struct {
	client llm.Client
}

// Annotate implements SkillAnnotator.
func (a *LLMAnnotator) Annotate(ctx context.Context, text string) (SkillAnnotation, error) {
	desc := prompts.MustGet(prompts.ModelsFile, prompts.KeyAnnotateSkills)
	raw, err := a.client.GenerateJSON(ctx, llm.BuildExtractionPrompt(llm.SkillAnnotationSchema(desc), text), llm.TierLite)
	if err != nil {
		return SkillAnnotation{}, err
	}
	var ann SkillAnnotation
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &ann); err != nil {
		return SkillAnnotation{}, &ResponseError{Model: "annotator", Message: "invalid JSON", Cause: err}
	}
	ann.FullMatches = anchorSkills(text, ann.FullMatches, 1)
	ann.NgramScored = anchorSkills(text, ann.NgramScored, 0)
	return ann, nil
}

func anchorSkills(text string, in []SkillMatch, fixedScore float64) []SkillMatch {
	out := make([]SkillMatch, 0, len(in))
	for _, m := range in {
		start, end, ok := anchor(text, m.Text, m.Start, m.End)
		if !ok {
			continue
		}
		m.Start, m.End = start, end
		if fixedScore > 0 {
			m.Score = fixedScore
		}
		m.Score = clamp01(m.Score)
		out = append(out, m)
	}
	return out
}

// anchor returns the byte span of want in text. Model offsets are trusted when
// they point at want; otherwise the first case-insensitive occurrence is used.
func anchor(text, want string, start, end int) (int, int, bool) {
	want = strings.TrimSpace(want)
	if want == "" {
		return 0, 0, false
	}
	if start >= 0 && end <= len(text) && start < end && strings.EqualFold(text[start:end], want) {
		return start, end, true
	}
	idx := strings.Index(strings.ToLower(text), strings.ToLower(want))
	if idx < 0 {
		return 0, 0, false
	}
	return idx, idx + len(want), true
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// String describes the handles for logs.
func (h *Handles) String() string {
	return fmt.Sprintf("models(%s)", h.Backend)
}
