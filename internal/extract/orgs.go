package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-extractor/internal/lexicon"
	"github.com/jonathan/resume-extractor/internal/textutil"
	"github.com/jonathan/resume-extractor/internal/types"
)

// Organization scores.
const (
	scoreInstitution     = 0.85
	scoreCompanyFallback = 0.6
)

var reCompanyRun = regexp.MustCompile(`^[ \t]*(?:(?:at|@|\||,|-|–|—)[ \t]*)*((?:[A-Z][A-Za-z0-9&'.\-]*)(?:[ \t]+(?:(?:of|and|&)[ \t]+)?[A-Z][A-Za-z0-9&'.\-]*){0,4})`)

// Institutions applies the institution-word heuristic to text. Degree spans
// are blanked first so a degree never runs into the institution name.
func Institutions(text string, degrees []types.DegreeCandidate) []types.Candidate {
	spans := make([][2]int, 0, len(degrees))
	for _, d := range degrees {
		spans = append(spans, [2]int{d.Start, d.End})
	}
	masked := blank(text, spans)

	var out []types.Candidate
	for _, loc := range lexicon.InstitutionPattern().FindAllStringIndex(masked, -1) {
		start, end := trimSpace(masked, loc[0], loc[1])
		name := strings.TrimRight(masked[start:end], ",.;:")
		if name == "" || !lexicon.HasInstitutionWord(name) || len(strings.Fields(name)) < 2 {
			continue
		}
		out = append(out, types.Candidate{
			Field:  types.FieldInstitution,
			Text:   textutil.TitleCase(name),
			Score:  scoreInstitution,
			Start:  start,
			End:    start + len(name),
			Source: "pattern",
		})
	}
	return out
}

// OrgEntities converts organization entities to candidates of field. Parts
// of an entity that overlap one of the cut spans are trimmed away; entities
// left empty are dropped.
func OrgEntities(text string, entities []types.Entity, field types.Field, cut [][2]int) []types.Candidate {
	var out []types.Candidate
	for _, e := range types.FilterEntities(entities, types.EntityOrganization) {
		start, end, ok := trimOverlap(e.Start, e.End, cut)
		if !ok || start < 0 || end > len(text) {
			continue
		}
		start, end = trimSpace(text, start, end)
		name := textutil.TrimPunct(text[start:end])
		if len(name) < 2 {
			continue
		}
		out = append(out, types.Candidate{
			Field:  field,
			Text:   name,
			Score:  e.Score,
			Start:  start,
			End:    end,
			Source: "ner",
		})
	}
	return out
}

// CompanyAfter returns the capitalized run that follows a job title, e.g.
// "ABC Sdn Bhd" in "Engineer at ABC Sdn Bhd". Trailing place names are dropped.
func CompanyAfter(text string, titleEnd int) (types.Candidate, bool) {
	if titleEnd >= len(text) {
		return types.Candidate{}, false
	}
	line := text[titleEnd:]
	if nl := strings.IndexByte(line, '\n'); nl >= 0 {
		line = line[:nl]
	}
	m := reCompanyRun.FindStringSubmatchIndex(line)
	if m == nil {
		return types.Candidate{}, false
	}
	name := stripTrailingPlaces(line[m[2]:m[3]])
	name = strings.TrimRight(name, ",.;:-")
	if len(name) < 2 || isPlace(name) || lexicon.IsKnownSkill(name) || len(FindTitles(name)) > 0 {
		return types.Candidate{}, false
	}
	start := titleEnd + m[2]
	return types.Candidate{
		Field:  types.FieldCompany,
		Text:   name,
		Score:  scoreCompanyFallback,
		Start:  start,
		End:    start + len(name),
		Source: "heuristic",
	}, true
}

func isPlace(s string) bool {
	_, ok := lexicon.Places().Lookup(s)
	return ok
}

func stripTrailingPlaces(s string) string {
	for _, m := range lexicon.Places().FindAll(s) {
		if strings.TrimSpace(s[m.End:]) == "" && m.Start > 0 {
			return strings.TrimSpace(strings.TrimRight(s[:m.Start], " \t,"))
		}
	}
	return s
}

// trimOverlap shrinks [start, end) so that it no longer overlaps any cut span.
// A span fully covered by a cut is reported as not ok.
func trimOverlap(start, end int, cut [][2]int) (int, int, bool) {
	for _, c := range cut {
		if start >= c[1] || c[0] >= end {
			continue
		}
		switch {
		case c[0] <= start && c[1] >= end:
			return 0, 0, false
		case c[0] <= start:
			start = c[1]
		case c[1] >= end:
			end = c[0]
		default:
			// cut in the middle; keep the longer side
			if c[0]-start >= end-c[1] {
				end = c[0]
			} else {
				start = c[1]
			}
		}
	}
	return start, end, start < end
}

func trimSpace(text string, start, end int) (int, int) {
	for start < end && strings.ContainsRune(" \t\n,;:|-", rune(text[start])) {
		start++
	}
	for end > start && strings.ContainsRune(" \t\n,;:|", rune(text[end-1])) {
		end--
	}
	return start, end
}

// blank replaces the given byte spans with spaces, preserving offsets.
func blank(text string, spans [][2]int) string {
	if len(spans) == 0 {
		return text
	}
	b := []byte(text)
	for _, s := range spans {
		for i := max(s[0], 0); i < min(s[1], len(b)); i++ {
			if b[i] != '\n' {
				b[i] = ' '
			}
		}
	}
	return string(b)
}
