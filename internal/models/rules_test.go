package models

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/types"
)

func TestRuleClassifier(t *testing.T) {
	c := NewRuleClassifier(config.DefaultProfile())
	ctx := context.Background()

	tests := []struct {
		name string
		text string
		want types.Label
	}{
		{"heading wins", "EDUCATION\nSomething else entirely", types.LabelEducation},
		{"work experience heading", "Work Experience:\nDid things", types.LabelExperience},
		{"education keywords", "Bachelor of Science, University of Malaya, CGPA 3.8", types.LabelEducation},
		{"contact keywords", "john@x.com | Phone: +60123456789", types.LabelPersonalInfo},
		{"skill list", "Python, Docker, Kubernetes, PostgreSQL", types.LabelSkills},
		{"certification keywords", "AWS Certified Solutions Architect certification", types.LabelCertifications},
		{"experience keywords", "Software Engineer at ABC. Worked on backend; led a team", types.LabelExperience},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Classify(ctx, tt.text)
			require.NoError(t, err)
			assert.Equal(t, string(tt.want), got.Label)
			assert.Greater(t, got.Score, 0.0)
			assert.LessOrEqual(t, got.Score, 1.0)
		})
	}
}

func TestRuleClassifier_NoHits(t *testing.T) {
	c := NewRuleClassifier(nil)
	got, err := c.Classify(context.Background(), "lorem ipsum dolor")
	require.NoError(t, err)
	assert.Empty(t, got.Label)
	assert.Zero(t, got.Score)
}

func TestRuleClassifier_HeadingOutsideVocabulary(t *testing.T) {
	p := config.DefaultProfile()
	p.Labels = p.Labels[:1] // PersonalInfo only
	c := NewRuleClassifier(p)
	got, err := c.Classify(context.Background(), "Skills\nemail me")
	require.NoError(t, err)
	assert.Equal(t, string(types.LabelPersonalInfo), got.Label)
}

func entityTexts(es []types.Entity, label types.EntityLabel) []string {
	var out []string
	for _, e := range es {
		if e.Label == label {
			out = append(out, e.Text)
		}
	}
	return out
}

func TestRuleRecognizer(t *testing.T) {
	r := NewRuleRecognizer()
	text := "Software Engineer ABC Technologies 2019 - 2021, Kuala Lumpur. Python and Go. Fluent in English."
	ents, err := r.PredictEntities(context.Background(), text, types.EntityLabels(), 0.5)
	require.NoError(t, err)

	assert.Contains(t, entityTexts(ents, types.EntityOrganization), "Software Engineer ABC Technologies")
	assert.Equal(t, []string{"Kuala Lumpur"}, entityTexts(ents, types.EntityLocation))
	assert.Equal(t, []string{"Python", "Go"}, entityTexts(ents, types.EntitySkill))
	assert.Equal(t, []string{"English"}, entityTexts(ents, types.EntityLanguage))
	assert.Empty(t, entityTexts(ents, types.EntityPerson))

	for i := 1; i < len(ents); i++ {
		assert.LessOrEqual(t, ents[i-1].Start, ents[i].Start)
	}
}

func TestRuleRecognizer_Institutions(t *testing.T) {
	r := NewRuleRecognizer()
	ctx := context.Background()
	labels := []types.EntityLabel{types.EntityOrganization}

	for text, want := range map[string]string{
		"Graduated from University of Malaya in 2018": "University of Malaya",
		"Multimedia University, Cyberjaya":            "Multimedia University",
		"Universiti Teknologi Malaysia":               "Universiti Teknologi Malaysia",
	} {
		ents, err := r.PredictEntities(ctx, text, labels, 0)
		require.NoError(t, err)
		require.NotEmpty(t, ents, text)
		assert.Equal(t, want, ents[0].Text)
		assert.Equal(t, want, text[ents[0].Start:ents[0].End])
	}
}

func TestRuleRecognizer_FiltersLabelsAndThreshold(t *testing.T) {
	r := NewRuleRecognizer()
	ents, err := r.PredictEntities(context.Background(), "Python in Singapore", []types.EntityLabel{types.EntitySkill}, 0.5)
	require.NoError(t, err)
	require.Len(t, ents, 1)
	assert.Equal(t, types.EntitySkill, ents[0].Label)

	ents, err = r.PredictEntities(context.Background(), "Python in Singapore", types.EntityLabels(), 0.95)
	require.NoError(t, err)
	assert.Empty(t, ents)
}

func TestRuleAnnotator(t *testing.T) {
	a := NewRuleAnnotator()
	ann, err := a.Annotate(context.Background(), "Skilled in Python, Dockr and Kubernetes")
	require.NoError(t, err)

	var full []string
	for _, m := range ann.FullMatches {
		full = append(full, m.Text)
		assert.Equal(t, 1.0, m.Score)
	}
	assert.Equal(t, []string{"Python", "Kubernetes"}, full)

	require.Len(t, ann.NgramScored, 1)
	assert.Equal(t, "Docker", ann.NgramScored[0].Text)
	assert.InDelta(t, 0.909, ann.NgramScored[0].Score, 0.01)
}

func TestRulesLoader(t *testing.T) {
	reg := NewRegistry(BackendRules, RulesLoader(config.DefaultProfile()))
	h, err := reg.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, BackendRules, h.Backend)
	assert.NotNil(t, h.Classifier)
	assert.NotNil(t, h.Recognizer)
	assert.NotNil(t, h.Annotator)
}
