// Package record merges per-segment extraction results into the final
// resume record.
package record

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-extractor/internal/aggregate"
	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/extract"
	"github.com/jonathan/resume-extractor/internal/lexicon"
	"github.com/jonathan/resume-extractor/internal/textutil"
	"github.com/jonathan/resume-extractor/internal/types"
)

// Pools are the candidate sets aggregated across all segments.
type Pools struct {
	Skills    *aggregate.CandidateSet
	Languages *aggregate.CandidateSet
	Degrees   *aggregate.CandidateSet
	JobTitles *aggregate.CandidateSet
}

// Builder assembles resume records. It holds no per-run state.
type Builder struct {
	thresholds config.Thresholds
	logger     zerolog.Logger
}

// NewBuilder creates a builder using the aggregation thresholds.
func NewBuilder(thresholds config.Thresholds, logger zerolog.Logger) *Builder {
	return &Builder{thresholds: thresholds, logger: logger}
}

func (b *Builder) gates(allow func(string) bool) aggregate.Gates {
	return aggregate.Gates{MinLen: b.thresholds.CandidateMinLen, MaxLen: b.thresholds.CandidateMaxLen, Allow: allow}
}

// Pool aggregates the skill, language, degree and job title candidates of
// every structured segment. Degrees and titles get a fuzzy pass on top of the
// exact-key merge.
func (b *Builder) Pool(results []*types.SegmentResult) *Pools {
	p := &Pools{
		Skills:    aggregate.NewCandidateSet(b.gates(lexicon.IsKnownSkill)),
		Languages: aggregate.NewCandidateSet(b.gates(isKnownLanguage)),
		Degrees:   aggregate.NewCandidateSet(b.gates(nil)),
		JobTitles: aggregate.NewCandidateSet(b.gates(nil)),
	}
	for _, r := range sorted(results) {
		if !r.Structured() {
			continue
		}
		for _, c := range r.Skills {
			p.Skills.UpdateBest(c.Text, c.Score)
		}
		for _, c := range r.Languages {
			p.Languages.UpdateBest(c.Text, c.Score)
		}
		for _, d := range r.Degrees {
			p.Degrees.UpdateBest(d.Text, d.Score)
		}
		for _, blk := range r.Experience {
			for _, c := range blk.Titles {
				p.JobTitles.UpdateBest(c.Text, c.Score)
			}
		}
	}
	p.Degrees.DedupFuzzy(b.thresholds.FuzzyThreshold)
	p.JobTitles.DedupFuzzy(b.thresholds.FuzzyThreshold)
	return p
}

func isKnownLanguage(s string) bool {
	_, ok := lexicon.Languages().Lookup(s)
	return ok
}

// Build merges the segment results into one record. The record is always
// structurally complete; missing values are empty.
func (b *Builder) Build(results []*types.SegmentResult) *types.ResumeRecord {
	rec, _ := b.BuildWithPools(results)
	return rec
}

// BuildWithPools is Build that also returns the aggregated candidate pools.
func (b *Builder) BuildWithPools(results []*types.SegmentResult) (*types.ResumeRecord, *Pools) {
	ordered := sorted(results)
	pools := b.Pool(ordered)
	skills := newExclusion(pools.Skills.Texts())

	rec := types.NewResumeRecord()
	rec.Skills = append(rec.Skills, pools.Skills.Texts()...)
	rec.Languages = append(rec.Languages, pools.Languages.Texts()...)
	rec.Candidate = candidateInfo(ordered, skills)

	var summary []string
	for _, r := range ordered {
		switch {
		case r.Skipped:
			continue
		case !r.Classified:
			if t := strings.TrimSpace(r.Text); t != "" {
				rec.UnclassifiedText = append(rec.UnclassifiedText, t)
			}
			continue
		}

		switch {
		case r.Label == types.LabelSummary:
			if t := textutil.CollapseSpace(r.Text); t != "" {
				summary = append(summary, t)
			}
		case r.Label == types.LabelEducation:
			rec.Education = append(rec.Education, education(r, skills))
		case r.Label.IsExperienceLike():
			for _, blk := range r.Experience {
				if e, ok := experience(blk, skills); ok {
					rec.Experience = append(rec.Experience, e)
				}
			}
		case r.Label.IsActivityLike():
			for _, blk := range r.Activities {
				if a, ok := activity(blk); ok {
					rec.Activities = append(rec.Activities, a)
				}
			}
		}
		rec.Certifications = appendCertifications(rec.Certifications, r.Certifications)
	}
	rec.Summary = strings.Join(summary, "\n\n")

	b.logger.Debug().
		Int("segments", len(ordered)).
		Int("education", len(rec.Education)).
		Int("experience", len(rec.Experience)).
		Int("skills", len(rec.Skills)).
		Int("certifications", len(rec.Certifications)).
		Int("activities", len(rec.Activities)).
		Msg("record built")
	return rec, pools
}

func sorted(results []*types.SegmentResult) []*types.SegmentResult {
	out := make([]*types.SegmentResult, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// exclusion is the set of skill keys that may not fill identity,
// education or experience fields.
type exclusion map[string]bool

func newExclusion(skills []string) exclusion {
	ex := make(exclusion, len(skills))
	for _, s := range skills {
		ex[textutil.Key(s)] = true
	}
	return ex
}

func (ex exclusion) has(s string) bool {
	return ex[textutil.Key(s)] || lexicon.IsKnownSkill(s)
}

// best returns the highest scored candidate that is not a skill.
func (ex exclusion) best(cands []types.Candidate) (types.Candidate, bool) {
	var kept []types.Candidate
	for _, c := range cands {
		if strings.TrimSpace(c.Text) != "" && !ex.has(c.Text) {
			kept = append(kept, c)
		}
	}
	return types.BestCandidate(kept)
}

// candidateInfo picks the owner identity from PersonalInfo segments: the
// first email and phone, the longest name and the first location.
func candidateInfo(results []*types.SegmentResult, skills exclusion) types.CandidateInfo {
	var info types.CandidateInfo
	for _, r := range results {
		if !r.Structured() || r.Label != types.LabelPersonalInfo {
			continue
		}
		if info.Email == "" && len(r.Emails) > 0 {
			info.Email = r.Emails[0].Text
		}
		if info.Phone == "" && len(r.Phones) > 0 {
			info.Phone = r.Phones[0].Text
		}
		for _, n := range r.Names {
			if !skills.has(n.Text) && utf8.RuneCountInString(n.Text) > utf8.RuneCountInString(info.Name) {
				info.Name = n.Text
			}
		}
		if info.Location == "" && len(r.Locations) > 0 {
			info.Location = r.Locations[0].Text
		}
	}
	return info
}

func education(r *types.SegmentResult, skills exclusion) types.EducationRecord {
	var rec types.EducationRecord
	var cut [][2]int

	if d, ok := bestDegree(r.Degrees); ok {
		rec.Degree = d.Text
		rec.Major = d.Major
		cut = append(cut, [2]int{d.Start, d.End})
	}
	if c, ok := skills.best(r.Institutions); ok {
		rec.Institution = c.Text
		cut = append(cut, [2]int{c.Start, c.End})
	}
	if len(r.Locations) > 0 {
		rec.Location = r.Locations[0].Text
	}
	for _, c := range r.Locations {
		cut = append(cut, [2]int{c.Start, c.End})
	}
	if d, ok := extract.FirstRange(r.Dates); ok {
		if d.Single {
			rec.EndDate = d.Start
		} else {
			rec.StartDate, rec.EndDate = d.Start, d.End
		}
	}
	for _, d := range r.Dates {
		cut = append(cut, [2]int{d.Pos, d.EndPos})
	}
	rec.Description = dropHeading(extract.Description(r.Text, 0, cut))
	return rec
}

func bestDegree(ds []types.DegreeCandidate) (types.DegreeCandidate, bool) {
	if len(ds) == 0 {
		return types.DegreeCandidate{}, false
	}
	best := ds[0]
	for _, d := range ds[1:] {
		if d.Score > best.Score {
			best = d
		}
	}
	return best, true
}

// experience builds the record of one job block. Blocks without a usable
// title yield no record.
func experience(blk types.ExperienceBlock, skills exclusion) (types.ExperienceRecord, bool) {
	title, ok := skills.best(blk.Titles)
	if !ok {
		return types.ExperienceRecord{}, false
	}
	rec := types.ExperienceRecord{JobTitle: title.Text, Description: blk.Description}
	if c, ok := skills.best(blk.Companies); ok {
		rec.Company = c.Text
	}
	if len(blk.Locations) > 0 {
		rec.Location = blk.Locations[0].Text
	}
	if d, ok := extract.FirstRange(blk.Dates); ok {
		rec.StartDate, rec.EndDate = d.Start, d.End
	}
	return rec, true
}

// activity builds the record of one activity block. Without a predicted
// title the first description line stands in for it.
func activity(blk types.ActivityBlock) (types.ActivityRecord, bool) {
	lines := textutil.Lines(blk.Description)
	var rec types.ActivityRecord
	if c, ok := types.BestCandidate(blk.Titles); ok {
		rec.Title = c.Text
	} else if len(lines) > 0 {
		rec.Title, lines = lines[0], lines[1:]
	}
	if rec.Title == "" {
		return rec, false
	}
	rec.Description = textutil.SentenceCase(strings.Join(lines, " "))
	if c, ok := types.BestCandidate(blk.Organizations); ok {
		rec.Organization = c.Text
	}
	if len(blk.Locations) > 0 {
		rec.Location = blk.Locations[0].Text
	}
	if d, ok := extract.FirstRange(blk.Dates); ok {
		rec.StartDate, rec.EndDate = d.Start, d.End
	}
	return rec, true
}

// appendCertifications concatenates certifications, folding repeats of the
// same title into the first occurrence.
func appendCertifications(out, add []types.CertificationRecord) []types.CertificationRecord {
	for _, c := range add {
		dup := false
		for i := range out {
			if textutil.Key(out[i].Title) != textutil.Key(c.Title) {
				continue
			}
			dup = true
			if out[i].Date == "" {
				out[i].Date = c.Date
			}
			if out[i].Issuer == "" {
				out[i].Issuer = c.Issuer
			}
			break
		}
		if !dup {
			out = append(out, c)
		}
	}
	return out
}

// dropHeading removes a leading section heading from a description.
func dropHeading(desc string) string {
	words := strings.Fields(desc)
	i := 0
	for i < len(words) && lexicon.IsSectionWord(words[i]) {
		i++
	}
	if i == 0 {
		return desc
	}
	return textutil.SentenceCase(strings.Join(words[i:], " "))
}
