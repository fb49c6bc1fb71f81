package models

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/fuzzy"
	"github.com/jonathan/resume-extractor/internal/lexicon"
	"github.com/jonathan/resume-extractor/internal/types"
)

// BackendRules names the lexicon backend.
const BackendRules = "rules"

// RulesLoader returns a Loader for the lexicon backend configured by profile.
func RulesLoader(profile *config.Profile) Loader {
	return func(_ context.Context) (*Handles, error) {
		return &Handles{
			Classifier: NewRuleClassifier(profile),
			Recognizer: NewRuleRecognizer(),
			Annotator:  NewRuleAnnotator(),
			Backend:    BackendRules,
		}, nil
	}
}

// --- Classifier ---

type keywordRule struct {
	label    types.Label
	patterns []*regexp.Regexp
}

// RuleClassifier scores labels by keyword hits from the profile vocabulary.
// A heading on the first line that names a label wins outright.
type RuleClassifier struct {
	rules []keywordRule
}

const (
	headingScore   = 0.95
	maxKeywordHits = 3
	skillHitWeight = 0.5
)

// NewRuleClassifier builds a classifier from the profile label vocabulary.
func NewRuleClassifier(profile *config.Profile) *RuleClassifier {
	if profile == nil {
		profile = config.DefaultProfile()
	}
	c := &RuleClassifier{}
	for _, spec := range profile.Labels {
		label, ok := types.ParseLabel(spec.Name)
		if !ok {
			continue
		}
		rule := keywordRule{label: label}
		for _, kw := range spec.Keywords {
			rule.patterns = append(rule.patterns, keywordPattern(kw))
		}
		c.rules = append(c.rules, rule)
	}
	return c
}

func keywordPattern(kw string) *regexp.Regexp {
	q := regexp.QuoteMeta(strings.ToLower(kw))
	if kw != "" && isWordByte(kw[0]) {
		q = `\b` + q
	}
	if kw != "" && isWordByte(kw[len(kw)-1]) {
		q += `\b`
	}
	return regexp.MustCompile(q)
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// Classify returns the best label and its share of all keyword hits.
// Text without any hit yields an empty label with score 0.
func (c *RuleClassifier) Classify(_ context.Context, text string) (Classification, error) {
	if first := firstLine(text); first != "" && len(strings.Fields(first)) <= 4 {
		if label, ok := types.ParseLabel(first); ok && c.knows(label) {
			return Classification{Label: string(label), Score: headingScore}, nil
		}
	}

	lower := strings.ToLower(text)
	hits := make(map[types.Label]float64, len(c.rules))
	total := 0.0
	for _, rule := range c.rules {
		n := 0.0
		for _, p := range rule.patterns {
			n += float64(min(len(p.FindAllStringIndex(lower, -1)), maxKeywordHits))
		}
		if rule.label == types.LabelSkills {
			n += skillHitWeight * float64(len(lexicon.Skills().FindAll(text)))
		}
		hits[rule.label] = n
		total += n
	}
	if total == 0 {
		return Classification{}, nil
	}

	best := types.LabelUnknown
	for _, rule := range c.rules {
		if best == types.LabelUnknown || hits[rule.label] > hits[best] {
			best = rule.label
		}
	}
	return Classification{Label: string(best), Score: hits[best] / (total + 1)}, nil
}

func (c *RuleClassifier) knows(label types.Label) bool {
	for _, r := range c.rules {
		if r.label == label {
			return true
		}
	}
	return false
}

func firstLine(text string) string {
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			return l
		}
	}
	return ""
}

// --- Entity recognizer ---

// Rule entity scores.
const (
	scoreLexicon     = 0.9
	scorePlace       = 0.85
	scoreInstitution = 0.85
	scoreCompany     = 0.8
)

// RuleRecognizer finds skills, languages, places and organizations with
// lexicons and suffix patterns. It never predicts persons; the name
// heuristic covers that.
type RuleRecognizer struct {
	company     *regexp.Regexp
	institution *regexp.Regexp
}

// NewRuleRecognizer builds the recognizer.
func NewRuleRecognizer() *RuleRecognizer {
	return &RuleRecognizer{
		company:     lexicon.CompanyPattern(),
		institution: lexicon.InstitutionPattern(),
	}
}

// PredictEntities implements EntityRecognizer.
func (r *RuleRecognizer) PredictEntities(_ context.Context, text string, labels []types.EntityLabel, threshold float64) ([]types.Entity, error) {
	want := make(map[types.EntityLabel]bool, len(labels))
	for _, l := range labels {
		want[l] = true
	}

	var out []types.Entity
	add := func(label types.EntityLabel, txt string, score float64, start, end int) {
		if !want[label] || score < threshold {
			return
		}
		out = append(out, types.Entity{Text: strings.TrimSpace(txt), Label: label, Score: score, Start: start, End: end})
	}

	if want[types.EntitySkill] {
		for _, m := range lexicon.Skills().FindAll(text) {
			add(types.EntitySkill, m.Canonical, scoreLexicon, m.Start, m.End)
		}
	}
	if want[types.EntityLanguage] {
		for _, m := range lexicon.Languages().FindAll(text) {
			add(types.EntityLanguage, m.Canonical, scoreLexicon, m.Start, m.End)
		}
	}
	if want[types.EntityLocation] {
		for _, m := range lexicon.Places().FindAll(text) {
			add(types.EntityLocation, m.Text, scorePlace, m.Start, m.End)
		}
	}
	if want[types.EntityOrganization] {
		taken := make([][2]int, 0)
		for _, loc := range r.institution.FindAllStringIndex(text, -1) {
			start, end := trimSpan(text, loc[0], loc[1])
			add(types.EntityOrganization, text[start:end], scoreInstitution, start, end)
			taken = append(taken, [2]int{start, end})
		}
		for _, loc := range r.company.FindAllStringIndex(text, -1) {
			start, end := trimSpan(text, loc[0], loc[1])
			if overlaps(taken, start, end) {
				continue
			}
			add(types.EntityOrganization, text[start:end], scoreCompany, start, end)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out, nil
}

func trimSpan(text string, start, end int) (int, int) {
	for start < end && (text[start] == ' ' || text[start] == '\t') {
		start++
	}
	for end > start && strings.ContainsRune(" \t,;", rune(text[end-1])) {
		end--
	}
	return start, end
}

func overlaps(spans [][2]int, start, end int) bool {
	for _, s := range spans {
		if start < s[1] && s[0] < end {
			return true
		}
	}
	return false
}

// --- Skill annotator ---

// RuleAnnotator reports lexicon skills as full matches and near-miss
// spellings of known skills as scored n-grams.
type RuleAnnotator struct {
	names     []string
	threshold float64
}

// NewRuleAnnotator builds the annotator.
func NewRuleAnnotator() *RuleAnnotator {
	return &RuleAnnotator{names: lexicon.Skills().Canonicals(), threshold: 88}
}

var reWordish = regexp.MustCompile(`\b[A-Z][A-Za-z0-9+#.\-]{3,}`)

// Annotate implements SkillAnnotator.
func (a *RuleAnnotator) Annotate(_ context.Context, text string) (SkillAnnotation, error) {
	ann := SkillAnnotation{FullMatches: []SkillMatch{}, NgramScored: []SkillMatch{}}
	matched := make([][2]int, 0)
	for _, m := range lexicon.Skills().FindAll(text) {
		ann.FullMatches = append(ann.FullMatches, SkillMatch{Text: m.Canonical, Score: 1, Start: m.Start, End: m.End})
		matched = append(matched, [2]int{m.Start, m.End})
	}

	for _, loc := range reWordish.FindAllStringIndex(text, -1) {
		if overlaps(matched, loc[0], loc[1]) {
			continue
		}
		word := strings.TrimRight(text[loc[0]:loc[1]], ".-")
		if lexicon.IsSectionWord(word) {
			continue
		}
		best, bestScore := "", 0.0
		for _, name := range a.names {
			if len(name) < 4 || strings.Contains(name, " ") {
				continue
			}
			if s := fuzzy.TokenSortRatio(word, name); s > bestScore {
				best, bestScore = name, s
			}
		}
		if bestScore >= a.threshold && bestScore < 100 {
			ann.NgramScored = append(ann.NgramScored, SkillMatch{Text: best, Score: bestScore / 100, Start: loc[0], End: loc[0] + len(word)})
		}
	}
	return ann, nil
}
