package extract

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/models"
	"github.com/jonathan/resume-extractor/internal/types"
)

func testOptions() Options {
	opts := OptionsFromProfile(config.DefaultProfile())
	opts.Now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	return opts
}

func newRulesSet(t *testing.T) *Set {
	t.Helper()
	h, err := models.RulesLoader(config.DefaultProfile())(context.Background())
	require.NoError(t, err)
	return NewSet(models.NewStaticRegistry(h), testOptions(), zerolog.Nop())
}

func segmentResult(text string, label types.Label) *types.SegmentResult {
	return &types.SegmentResult{SegmentID: "seg-1", Text: text, Label: label, LabelScore: 1, Classified: true}
}

func TestExtract_PersonalInfo(t *testing.T) {
	set := newRulesSet(t)
	res := segmentResult("John Smith\njohn@x.com\n+60123456789\nKuala Lumpur", types.LabelPersonalInfo)

	set.Extract(context.Background(), res)

	require.Len(t, res.Names, 1)
	assert.Equal(t, "John Smith", res.Names[0].Text)
	require.Len(t, res.Emails, 1)
	assert.Equal(t, "john@x.com", res.Emails[0].Text)
	require.Len(t, res.Phones, 1)
	assert.Equal(t, "+60123456789", res.Phones[0].Text)
	require.NotEmpty(t, res.Locations)
	assert.Equal(t, "Kuala Lumpur", res.Locations[0].Text)
	assert.Empty(t, res.Errors)
}

func TestExtract_Experience(t *testing.T) {
	set := newRulesSet(t)
	res := segmentResult("Software Engineer ABC Technologies 2019 - 2021 Built backend services.", types.LabelExperience)

	set.Extract(context.Background(), res)

	require.Len(t, res.Experience, 1)
	block := res.Experience[0]
	require.NotEmpty(t, block.Titles)
	assert.Equal(t, "Software Engineer", block.Titles[0].Text)
	require.NotEmpty(t, block.Companies)
	assert.Contains(t, block.Companies[0].Text, "ABC Technologies")
	require.NotEmpty(t, block.Dates)
	assert.Equal(t, "2019", block.Dates[0].Start)
	assert.Equal(t, "2021", block.Dates[0].End)
	assert.Equal(t, "Built backend services.", block.Description)

	assert.Empty(t, res.Emails)
	assert.Empty(t, res.Names)
	assert.Empty(t, res.Degrees)
}

func TestExtract_ContactFilteredOutsidePersonalInfo(t *testing.T) {
	set := newRulesSet(t)
	res := segmentResult("Contact me at john@x.com or +60123456789 for Python work", types.LabelSummary)

	set.Extract(context.Background(), res)

	assert.Empty(t, res.Emails)
	assert.Empty(t, res.Phones)
	assert.NotEmpty(t, res.Skills)
}

func TestExtract_Education(t *testing.T) {
	set := newRulesSet(t)
	res := segmentResult("Bachelor of Computer Science\nUniversity of Malaya\n2015 - 2019\nBSc Computer Science", types.LabelEducation)

	set.Extract(context.Background(), res)

	require.Len(t, res.Degrees, 1)
	assert.Equal(t, "Bachelor of Computer Science", res.Degrees[0].Text)
	require.NotEmpty(t, res.Institutions)
	assert.Equal(t, "University of Malaya", res.Institutions[0].Text)
	assert.Empty(t, res.JobTitles)
	assert.Empty(t, res.Experience)
}

func TestExtract_SkipsUnclassified(t *testing.T) {
	set := newRulesSet(t)
	res := &types.SegmentResult{SegmentID: "s", Text: "john@x.com", Classified: false}

	set.Extract(context.Background(), res)

	assert.Empty(t, res.Emails)
	assert.Empty(t, res.Errors)
}

func TestExtract_ModelFailureDegradesOneExtractor(t *testing.T) {
	h := &models.Handles{
		Annotator: models.AnnotatorFunc(func(context.Context, string) (models.SkillAnnotation, error) {
			return models.SkillAnnotation{}, errors.New("inference failed")
		}),
	}
	set := NewSet(models.NewStaticRegistry(h), testOptions(), zerolog.Nop())
	res := segmentResult("John Smith\njohn@x.com", types.LabelPersonalInfo)

	set.Extract(context.Background(), res)

	assert.Contains(t, res.Errors, "entities")
	assert.Contains(t, res.Errors, "skill")
	assert.Empty(t, res.Skills)
	require.Len(t, res.Emails, 1)
	require.Len(t, res.Names, 1)
	assert.Equal(t, "John Smith", res.Names[0].Text)
}

func TestExtract_RecoversPanics(t *testing.T) {
	h := &models.Handles{
		Recognizer: models.RecognizerFunc(func(context.Context, string, []types.EntityLabel, float64) ([]types.Entity, error) {
			return nil, nil
		}),
		Annotator: models.AnnotatorFunc(func(context.Context, string) (models.SkillAnnotation, error) {
			panic("boom")
		}),
	}
	set := NewSet(models.NewStaticRegistry(h), testOptions(), zerolog.Nop())
	res := segmentResult("Python and Go", types.LabelSkills)

	assert.NotPanics(t, func() { set.Extract(context.Background(), res) })
	assert.Equal(t, []string{"skill"}, res.Errors)
}

func TestExtract_BadEntityOffsetsAreIgnored(t *testing.T) {
	h := &models.Handles{
		Recognizer: models.RecognizerFunc(func(context.Context, string, []types.EntityLabel, float64) ([]types.Entity, error) {
			return []types.Entity{{Text: "Acme Corp", Label: types.EntityOrganization, Score: 0.9, Start: 40, End: 400}}, nil
		}),
		Annotator: models.NewRuleAnnotator(),
	}
	set := NewSet(models.NewStaticRegistry(h), testOptions(), zerolog.Nop())
	res := segmentResult("Software Engineer Acme Corp 2019 - 2020", types.LabelExperience)

	set.Extract(context.Background(), res)

	assert.Empty(t, res.Errors)
	require.Len(t, res.Experience, 1)
	require.NotEmpty(t, res.Experience[0].Companies)
	assert.Equal(t, "Acme Corp", res.Experience[0].Companies[0].Text)
}

func TestEntityLabels(t *testing.T) {
	assert.Contains(t, EntityLabels(types.LabelPersonalInfo), types.EntityPerson)
	assert.Contains(t, EntityLabels(types.LabelEducation), types.EntityDegree)
	assert.Contains(t, EntityLabels(types.LabelInternships), types.EntityJobTitle)
	assert.Contains(t, EntityLabels(types.LabelProjects), types.EntityProject)
	assert.NotContains(t, EntityLabels(types.LabelSkills), types.EntityPerson)
}
