package extract

import (
	"github.com/jonathan/resume-extractor/internal/lexicon"
	"github.com/jonathan/resume-extractor/internal/models"
	"github.com/jonathan/resume-extractor/internal/textutil"
	"github.com/jonathan/resume-extractor/internal/types"
)

// Skills merges annotator matches and skill entities into candidates, one per
// normalization key, keeping the best score and the first position.
func Skills(ann models.SkillAnnotation, entities []types.Entity) []types.Candidate {
	var out []types.Candidate
	index := make(map[string]int)
	add := func(text string, score float64, start, end int, source string) {
		name := lexicon.NormalizeSkillName(text)
		key := textutil.Key(name)
		if key == "" {
			return
		}
		if i, ok := index[key]; ok {
			if score > out[i].Score {
				out[i].Score = score
				out[i].Source = source
			}
			return
		}
		index[key] = len(out)
		out = append(out, types.Candidate{
			Field: types.FieldSkill, Text: name, Score: score, Start: start, End: end, Source: source,
		})
	}

	for _, m := range ann.FullMatches {
		add(m.Text, m.Score, m.Start, m.End, "annotator")
	}
	for _, m := range ann.NgramScored {
		add(m.Text, m.Score, m.Start, m.End, "annotator:ngram")
	}
	for _, e := range types.FilterEntities(entities, types.EntitySkill) {
		add(e.Text, e.Score, e.Start, e.End, "ner")
	}
	return out
}

// Languages returns the spoken languages among entities, one per key.
func Languages(entities []types.Entity) []types.Candidate {
	var out []types.Candidate
	seen := make(map[string]bool)
	for _, e := range types.FilterEntities(entities, types.EntityLanguage) {
		name := textutil.TitleCase(textutil.CollapseSpace(e.Text))
		if canonical, ok := lexicon.Languages().Lookup(name); ok {
			name = canonical
		}
		key := textutil.Key(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, types.Candidate{
			Field: types.FieldLanguage, Text: name, Score: e.Score, Start: e.Start, End: e.End, Source: "ner",
		})
	}
	return out
}

// Locations returns the location entities as candidates, one per key.
func Locations(entities []types.Entity) []types.Candidate {
	var out []types.Candidate
	seen := make(map[string]bool)
	for _, e := range types.FilterEntities(entities, types.EntityLocation) {
		c := locationCandidate(e)
		if key := textutil.Key(c.Text); !seen[key] {
			seen[key] = true
			out = append(out, c)
		}
	}
	return out
}
