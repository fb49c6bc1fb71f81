package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-extractor/internal/textutil"
	"github.com/jonathan/resume-extractor/internal/types"
)

var reLeadingSeparators = regexp.MustCompile(`^(?:\s*(?:at|@|\||,|-|–|—|:)\s+|\s*[@|,\-–—:]\s*)+`)

// Span is a byte range of a segment.
type Span struct {
	Start int
	End   int
}

// SplitExperience cuts an experience segment into job entries. A cut is made
// before a title that is followed by a four-digit year within window bytes
// (and before the next title), unless the text after the title starts with
// "and". Text before the first entry stays with it.
func SplitExperience(text string, titles []types.Candidate, window int) []Span {
	sorted := append([]types.Candidate(nil), titles...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var spans []Span
	last := 0
	for i, t := range sorted {
		if !entryHead(text, sorted, i, window) {
			continue
		}
		if t.Start > last && titleWithin(sorted, last, t.Start) {
			spans = append(spans, Span{Start: last, End: t.Start})
			last = t.Start
		}
	}
	return append(spans, Span{Start: last, End: len(text)})
}

func entryHead(text string, titles []types.Candidate, i, window int) bool {
	t := titles[i]
	after := strings.ToLower(strings.TrimLeft(text[t.End:], " \t"))
	if after == "and" || strings.HasPrefix(after, "and ") {
		return false
	}
	limit := window
	if i+1 < len(titles) && titles[i+1].Start > t.End {
		limit = min(limit, titles[i+1].Start-t.End)
	}
	return HasYearWithin(text, t.End, limit)
}

func titleWithin(titles []types.Candidate, start, end int) bool {
	for _, t := range titles {
		if t.Start >= start && t.Start < end {
			return true
		}
	}
	return false
}

// ExperienceBlock re-extracts the fields of one job entry. entities are the
// segment-level predictions; only those inside span are used.
func ExperienceBlock(text string, span Span, entities []types.Entity, headerLines int) types.ExperienceBlock {
	body := text[span.Start:span.End]
	block := types.ExperienceBlock{Text: strings.TrimSpace(body), Start: span.Start, End: span.End}

	for _, t := range JobTitles(body, headerLines) {
		block.Titles = append(block.Titles, shift(t, span.Start))
	}
	inside := entitiesIn(entities, span)
	for _, e := range types.FilterEntities(inside, types.EntityJobTitle) {
		if ValidTitle(e.Text) && !overlapsCandidates(block.Titles, e.Start, e.End) {
			block.Titles = append(block.Titles, types.Candidate{
				Field: types.FieldJobTitle, Text: textutil.TitleCase(e.Text), Score: e.Score,
				Start: e.Start, End: e.End, Source: "ner",
			})
		}
	}

	titleSpans := candidateSpans(block.Titles)
	block.Companies = OrgEntities(text, inside, types.FieldCompany, titleSpans)
	if len(block.Companies) == 0 && len(block.Titles) > 0 {
		if c, ok := CompanyAfter(text[:span.End], block.Titles[0].End); ok {
			block.Companies = append(block.Companies, c)
		}
	}

	for _, e := range types.FilterEntities(inside, types.EntityLocation) {
		if overlapsCandidates(block.Companies, e.Start, e.End) {
			continue
		}
		block.Locations = append(block.Locations, locationCandidate(e))
	}

	for _, d := range DateRanges(body) {
		d.Pos += span.Start
		d.EndPos += span.Start
		block.Dates = append(block.Dates, d)
	}

	cut := append(titleSpans, candidateSpans(block.Companies)...)
	cut = append(cut, candidateSpans(block.Locations)...)
	for _, d := range block.Dates {
		cut = append(cut, [2]int{d.Pos, d.EndPos})
	}
	block.Description = Description(text[:span.End], span.Start, cut)
	return block
}

// Description returns text[from:] with the cut spans removed, leading
// separators dropped and sentence casing applied.
func Description(text string, from int, cut [][2]int) string {
	desc := blank(text, cut)[from:]
	var lines []string
	for _, l := range strings.Split(desc, "\n") {
		l = reLeadingSeparators.ReplaceAllString(textutil.StripBullet(l), "")
		if l = textutil.CollapseSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	desc = textutil.TrimPunct(strings.Join(lines, " "))
	return textutil.SentenceCase(desc)
}

func locationCandidate(e types.Entity) types.Candidate {
	return types.Candidate{
		Field:  types.FieldLocation,
		Text:   textutil.TitleCase(textutil.CollapseSpace(e.Text)),
		Score:  e.Score,
		Start:  e.Start,
		End:    e.End,
		Source: "ner",
	}
}

func entitiesIn(entities []types.Entity, span Span) []types.Entity {
	var out []types.Entity
	for _, e := range entities {
		if e.Start >= span.Start && e.End <= span.End {
			out = append(out, e)
		}
	}
	return out
}

func candidateSpans(cands []types.Candidate) [][2]int {
	out := make([][2]int, 0, len(cands))
	for _, c := range cands {
		out = append(out, [2]int{c.Start, c.End})
	}
	return out
}

func overlapsCandidates(cands []types.Candidate, start, end int) bool {
	for _, c := range cands {
		if start < c.End && c.Start < end {
			return true
		}
	}
	return false
}

func shift(c types.Candidate, by int) types.Candidate {
	c.Start += by
	c.End += by
	return c
}
