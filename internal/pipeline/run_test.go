package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/models"
	"github.com/jonathan/resume-extractor/internal/pipeline/steps"
	"github.com/jonathan/resume-extractor/internal/types"
)

func fixedNow() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

func newRulesPipeline(t *testing.T, opts Options) *Pipeline {
	t.Helper()
	profile := config.DefaultProfile()
	registry := models.NewRegistry(config.BackendRules, models.RulesLoader(profile))
	if opts.Now == nil {
		opts.Now = fixedNow
	}
	p, err := New(registry, profile, zerolog.Nop(), opts)
	require.NoError(t, err)
	return p
}

func seg(id, label, text string, pos int) types.Segment {
	return types.Segment{ID: id, Label: label, Text: text, Position: pos}
}

func TestNew_RequiresRegistry(t *testing.T) {
	_, err := New(nil, nil, zerolog.Nop(), Options{})
	assert.ErrorIs(t, err, ErrNoRegistry)
}

func TestRun_PersonalInfo(t *testing.T) {
	p := newRulesPipeline(t, Options{})
	rec, err := p.Run(context.Background(), []types.Segment{
		seg("s1", "PersonalInfo", "John Smith\njohn@x.com\n+60123456789\nKuala Lumpur", 0),
	})
	require.NoError(t, err)
	assert.Equal(t, types.CandidateInfo{
		Name:     "John Smith",
		Email:    "john@x.com",
		Phone:    "+60123456789",
		Location: "Kuala Lumpur",
	}, rec.Candidate)
}

func TestRun_Experience(t *testing.T) {
	p := newRulesPipeline(t, Options{})
	rec, err := p.Run(context.Background(), []types.Segment{
		seg("s1", "Experience", "Software Engineer ABC Technologies 2019 - 2021 Built backend services.", 0),
	})
	require.NoError(t, err)
	require.Len(t, rec.Experience, 1)
	e := rec.Experience[0]
	assert.Equal(t, "Software Engineer", e.JobTitle)
	assert.Contains(t, e.Company, "ABC Technologies")
	assert.Equal(t, "2019", e.StartDate)
	assert.Equal(t, "2021", e.EndDate)
	assert.NotContains(t, e.Description, "Software Engineer")
	assert.NotContains(t, e.Description, "ABC Technologies")
	assert.NotContains(t, e.Description, "2019")
}

func TestRun_SkillsDedupAcrossSegments(t *testing.T) {
	p := newRulesPipeline(t, Options{Parallelism: 2})
	rec, err := p.Run(context.Background(), []types.Segment{
		seg("s1", "Skills", "Python", 0),
		seg("s2", "Skills", "python ", 1),
	})
	require.NoError(t, err)
	require.Len(t, rec.Skills, 1)
	assert.True(t, strings.EqualFold("Python", rec.Skills[0]))
}

func TestRun_WhitespaceSegment(t *testing.T) {
	p := newRulesPipeline(t, Options{})
	res, err := p.RunDetailed(context.Background(), []types.Segment{seg("blank", "Skills", " \n\t ", 0)})
	require.NoError(t, err)
	require.Len(t, res.Segments, 1)
	assert.True(t, res.Segments[0].Skipped)
	assert.True(t, res.Record.IsEmpty())
	assert.Empty(t, res.Record.UnclassifiedText)
}

func TestRun_EmptyInput(t *testing.T) {
	p := newRulesPipeline(t, Options{})
	rec, err := p.Run(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.True(t, rec.IsEmpty())
	assert.NotNil(t, rec.Experience)
}

func TestRun_UnclassifiedFallsBackToFreeText(t *testing.T) {
	p := newRulesPipeline(t, Options{})
	rec, err := p.Run(context.Background(), []types.Segment{seg("s1", "", "lorem ipsum dolor", 0)})
	require.NoError(t, err)
	assert.Equal(t, []string{"lorem ipsum dolor"}, rec.UnclassifiedText)
	assert.Empty(t, rec.Skills)
}

func TestRun_FullResume(t *testing.T) {
	p := newRulesPipeline(t, Options{Parallelism: 4})
	segments := []types.Segment{
		seg("edu", "Education", "Bachelor of Computer Science\nUniversity of Malaya\n2015 - 2019", 2),
		seg("info", "PersonalInfo", "Jane Doe\njane@example.com", 0),
		seg("sum", "Summary", "Backend engineer who likes distributed systems.", 1),
		seg("exp", "Experience", "Software Engineer ABC Technologies 2019 - 2021 Built backend services in Go.", 3),
		seg("skills", "Skills", "Python, Docker, Kubernetes", 4),
	}
	res, err := p.RunDetailed(context.Background(), segments)
	require.NoError(t, err)

	rec := res.Record
	assert.Equal(t, "Jane Doe", rec.Candidate.Name)
	assert.Equal(t, "jane@example.com", rec.Candidate.Email)
	assert.Equal(t, "Backend engineer who likes distributed systems.", rec.Summary)
	require.Len(t, rec.Education, 1)
	assert.Equal(t, "Bachelor of Computer Science", rec.Education[0].Degree)
	assert.Equal(t, "University of Malaya", rec.Education[0].Institution)
	assert.Equal(t, "2015", rec.Education[0].StartDate)
	assert.Equal(t, "2019", rec.Education[0].EndDate)
	require.Len(t, rec.Experience, 1)
	assert.Subset(t, rec.Skills, []string{"Python", "Docker", "Kubernetes"})

	// Results keep input order regardless of parallelism.
	for i, s := range segments {
		assert.Equal(t, s.ID, res.Segments[i].SegmentID)
	}
	assert.NotEqual(t, res.RunID.String(), "")
}

func TestRun_ProgressEvents(t *testing.T) {
	var mu sync.Mutex
	var events []ProgressEvent
	p := newRulesPipeline(t, Options{Parallelism: 3, OnProgress: func(e ProgressEvent) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, e)
	}})

	_, err := p.Run(context.Background(), []types.Segment{
		seg("a", "Skills", "Python", 0),
		seg("b", "Skills", "Go", 1),
		seg("c", "Summary", "Hello", 2),
	})
	require.NoError(t, err)

	counts := map[string]int{}
	for _, e := range events {
		counts[e.Step]++
		assert.NotEmpty(t, e.RunID)
		assert.Equal(t, steps.Category(e.Step), e.Category)
	}
	assert.Equal(t, 1, counts[steps.StepClassify])
	assert.Equal(t, 3, counts[steps.StepExtract])
	assert.Equal(t, 1, counts[steps.StepAggregate])
	assert.Equal(t, 1, counts[steps.StepBuild])
	assert.Equal(t, steps.StepBuild, events[len(events)-1].Step)
}

func TestRun_Cancelled(t *testing.T) {
	p := newRulesPipeline(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Run(ctx, []types.Segment{seg("a", "Skills", "Python", 0)})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_ModelLoadFailureDegrades(t *testing.T) {
	var loads atomic.Int32
	registry := models.NewRegistry("broken", func(context.Context) (*models.Handles, error) {
		loads.Add(1)
		return nil, errors.New("weights missing")
	})
	p, err := New(registry, nil, zerolog.Nop(), Options{Now: fixedNow})
	require.NoError(t, err)

	rec, err := p.Run(context.Background(), []types.Segment{
		seg("a", "PersonalInfo", "John Smith\njohn@x.com", 0),
		seg("b", "", "untitled text", 1),
	})
	require.NoError(t, err)
	assert.Equal(t, "john@x.com", rec.Candidate.Email)
	assert.Equal(t, "John Smith", rec.Candidate.Name)
	assert.Equal(t, []string{"untitled text"}, rec.UnclassifiedText)
	assert.Positive(t, loads.Load())
}

func TestRunSegment(t *testing.T) {
	p := newRulesPipeline(t, Options{})
	res := p.RunSegment(context.Background(), types.Segment{Label: "Skills", Text: "Python, Go"})
	assert.NotEmpty(t, res.SegmentID)
	assert.True(t, res.Classified)
	assert.Equal(t, types.LabelSkills, res.Label)
	assert.Equal(t, 1.0, res.LabelScore)
	assert.NotEmpty(t, res.Skills)
}

func TestRun_ConcurrentRunsShareRegistry(t *testing.T) {
	p := newRulesPipeline(t, Options{Parallelism: 2})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, err := p.Run(context.Background(), []types.Segment{
				seg(fmt.Sprintf("s%d", i), "Skills", "Python, Docker", 0),
			})
			assert.NoError(t, err)
			assert.Len(t, rec.Skills, 2)
		}()
	}
	wg.Wait()
}
