package extract

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/lexicon"
	"github.com/jonathan/resume-extractor/internal/models"
	"github.com/jonathan/resume-extractor/internal/textutil"
	"github.com/jonathan/resume-extractor/internal/types"
)

// Options tunes the extractor set.
type Options struct {
	Thresholds    config.Thresholds
	DefaultRegion string
	Now           func() time.Time
}

// OptionsFromProfile returns the options carried by a profile.
func OptionsFromProfile(p *config.Profile) Options {
	if p == nil {
		p = config.DefaultProfile()
	}
	return Options{Thresholds: p.Thresholds, DefaultRegion: p.DefaultRegion, Now: time.Now}
}

// Set runs every extractor allowed for a segment's label. Extractors are
// independent: a failing extractor leaves its fields empty and the others run.
type Set struct {
	registry *models.Registry
	opts     Options
	logger   zerolog.Logger
}

// NewSet creates an extractor set backed by the models in registry.
func NewSet(registry *models.Registry, opts Options, logger zerolog.Logger) *Set {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Set{registry: registry, opts: opts, logger: logger}
}

// EntityLabels returns the entity labels requested from the recognizer for a
// segment label.
func EntityLabels(label types.Label) []types.EntityLabel {
	labels := []types.EntityLabel{types.EntitySkill, types.EntityLanguage, types.EntityLocation, types.EntityCertification}
	switch {
	case label == types.LabelPersonalInfo:
		labels = append(labels, types.EntityPerson)
	case label == types.LabelEducation:
		labels = append(labels, types.EntityOrganization, types.EntityDegree, types.EntityDate)
	case label.IsExperienceLike():
		labels = append(labels, types.EntityOrganization, types.EntityJobTitle, types.EntityDate)
	case label.IsActivityLike():
		labels = append(labels, types.EntityActivity, types.EntityProject, types.EntityAward, types.EntityOrganization)
	}
	return labels
}

// Extract fills the field results of res. Segments that are skipped or
// unclassified are left untouched.
func (s *Set) Extract(ctx context.Context, res *types.SegmentResult) {
	if !res.Structured() {
		return
	}
	text, label := res.Text, res.Label
	th := s.opts.Thresholds

	var entities []types.Entity
	s.run(res, "entities", func() error {
		rec, err := s.registry.Recognizer(ctx)
		if err != nil {
			return err
		}
		found, err := rec.PredictEntities(ctx, text, EntityLabels(label), th.NERThreshold)
		if err != nil {
			return err
		}
		entities = found
		return nil
	})

	s.run(res, "email", func() error {
		found := Emails(text)
		if Kept(types.FieldEmail, label) {
			res.Emails = found
		}
		return nil
	})
	s.run(res, "phone", func() error {
		found := Phones(text, s.opts.DefaultRegion)
		if Kept(types.FieldPhone, label) {
			res.Phones = found
		}
		return nil
	})
	s.run(res, "date", func() error {
		dates := DateRanges(text)
		if label == types.LabelPersonalInfo {
			dates = PlausibleYears(dates, th.MinPlausibleYear, s.opts.Now())
		}
		res.Dates = dates
		return nil
	})
	s.run(res, "location", func() error {
		res.Locations = Locations(entities)
		return nil
	})
	s.run(res, "language", func() error {
		res.Languages = Languages(entities)
		return nil
	})
	s.run(res, "skill", func() error {
		ann, err := s.annotate(ctx, text)
		if err != nil {
			return err
		}
		res.Skills = Skills(ann, entities)
		return nil
	})
	s.run(res, "certification", func() error {
		res.Certifications = s.certifications(text, label, entities)
		return nil
	})

	if Allowed(types.FieldName, label) {
		s.run(res, "name", func() error {
			res.Names = names(text, entities)
			return nil
		})
	}
	if Allowed(types.FieldDegree, label) {
		s.run(res, "degree", func() error {
			res.Degrees = s.degrees(text, entities)
			return nil
		})
	}
	if Allowed(types.FieldInstitution, label) {
		s.run(res, "institution", func() error {
			res.Institutions = institutions(text, res.Degrees, entities)
			return nil
		})
	}
	if Allowed(types.FieldJobTitle, label) {
		s.run(res, "job_title", func() error {
			res.JobTitles = JobTitles(text, th.TitleHeaderLines)
			return nil
		})
		s.run(res, "experience", func() error {
			res.Experience = s.experience(text, entities)
			if Allowed(types.FieldCompany, label) {
				res.Companies = blockCompanies(res.Experience)
			}
			return nil
		})
	}
	if label.IsActivityLike() {
		s.run(res, "activity", func() error {
			for _, span := range SplitActivities(text) {
				res.Activities = append(res.Activities, ActivityBlock(text, span, entities))
			}
			return nil
		})
	}
}

func (s *Set) annotate(ctx context.Context, text string) (models.SkillAnnotation, error) {
	ann, err := s.registry.Annotator(ctx)
	if err != nil {
		return models.SkillAnnotation{}, err
	}
	return ann.Annotate(ctx, text)
}

// run calls one extractor, converting errors and panics into an empty result.
func (s *Set) run(res *types.SegmentResult, name string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			s.fail(res, &ExtractorError{Extractor: name, SegmentID: res.SegmentID, Cause: fmt.Errorf("panic: %v", r)})
		}
	}()
	if err := fn(); err != nil {
		s.fail(res, &ExtractorError{Extractor: name, SegmentID: res.SegmentID, Cause: err})
	}
}

func (s *Set) fail(res *types.SegmentResult, err *ExtractorError) {
	s.logger.Warn().
		Err(err.Cause).
		Str("extractor", err.Extractor).
		Str("segment_id", err.SegmentID).
		Str("label", res.Label.String()).
		Msg("extractor failed, using empty result")
	res.Errors = append(res.Errors, err.Extractor)
}

func names(text string, entities []types.Entity) []types.Candidate {
	var out []types.Candidate
	for _, e := range types.FilterEntities(entities, types.EntityPerson) {
		out = append(out, types.Candidate{
			Field:  types.FieldName,
			Text:   textutil.TitleCase(textutil.CollapseSpace(e.Text)),
			Score:  e.Score,
			Start:  e.Start,
			End:    e.End,
			Source: "ner",
		})
	}
	if len(out) > 0 {
		return out
	}
	if c, ok := NameFromHeader(text); ok {
		out = append(out, c)
	}
	return out
}

func (s *Set) degrees(text string, entities []types.Entity) []types.DegreeCandidate {
	th := s.opts.Thresholds
	found := FindDegrees(text, th.PrefixContextWindow)
	for _, e := range types.FilterEntities(entities, types.EntityDegree) {
		d := ParseDegree(e.Text, th.PrefixContextWindow)
		d.Score = max(d.Score, e.Score)
		d.Start, d.End, d.Source = e.Start, e.End, "ner"
		found = append(found, d)
	}
	return DedupDegrees(found, th.FuzzyThreshold)
}

func institutions(text string, degrees []types.DegreeCandidate, entities []types.Entity) []types.Candidate {
	found := Institutions(text, degrees)
	cut := make([][2]int, 0, len(degrees))
	for _, d := range degrees {
		cut = append(cut, [2]int{d.Start, d.End})
	}
	for _, c := range OrgEntities(text, entities, types.FieldInstitution, cut) {
		if lexicon.HasInstitutionWord(c.Text) && !overlapsCandidates(found, c.Start, c.End) {
			found = append(found, c)
		}
	}
	return found
}

func (s *Set) experience(text string, entities []types.Entity) []types.ExperienceBlock {
	th := s.opts.Thresholds
	titles := FindTitles(text)
	for _, e := range types.FilterEntities(entities, types.EntityJobTitle) {
		if ValidTitle(e.Text) && !overlapsCandidates(titles, e.Start, e.End) {
			titles = append(titles, types.Candidate{Field: types.FieldJobTitle, Text: e.Text, Score: e.Score, Start: e.Start, End: e.End})
		}
	}
	var blocks []types.ExperienceBlock
	for _, span := range SplitExperience(text, titles, th.SplitYearWindow) {
		blocks = append(blocks, ExperienceBlock(text, span, entities, th.TitleHeaderLines))
	}
	return blocks
}

func blockCompanies(blocks []types.ExperienceBlock) []types.Candidate {
	var out []types.Candidate
	for _, b := range blocks {
		out = append(out, b.Companies...)
	}
	return out
}

func (s *Set) certifications(text string, label types.Label, entities []types.Entity) []types.CertificationRecord {
	out := Certifications(text, label == types.LabelCertifications)
	seen := make(map[string]bool, len(out))
	for _, c := range out {
		seen[textutil.Key(c.Title)] = true
	}
	for _, e := range types.FilterEntities(entities, types.EntityCertification) {
		title := textutil.TrimPunct(textutil.CollapseSpace(e.Text))
		if key := textutil.Key(title); !seen[key] && len(title) >= 3 {
			seen[key] = true
			out = append(out, types.CertificationRecord{Title: title, Issuer: issuerOf(title)})
		}
	}
	return out
}
