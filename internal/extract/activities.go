package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-extractor/internal/textutil"
	"github.com/jonathan/resume-extractor/internal/types"
)

var (
	reBlankLine   = regexp.MustCompile(`\n[ \t]*\n`)
	reBulletStart = regexp.MustCompile(`^\s*(?:[•●▪■◦‣∙·*\-–—]+|\d{1,2}[.)])\s+`)
)

var activityEntityLabels = []types.EntityLabel{types.EntityActivity, types.EntityProject, types.EntityAward}

// SplitActivities cuts an activity-like segment into items. Items are
// separated by blank lines; a single block of bulleted lines yields one item
// per bullet. A leading heading line naming a section is skipped.
func SplitActivities(text string) []Span {
	start := 0
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		if _, ok := types.ParseLabel(text[:nl]); ok {
			start = nl + 1
		}
	} else if _, ok := types.ParseLabel(text); ok {
		return nil
	}

	var spans []Span
	prev := start
	for _, loc := range reBlankLine.FindAllStringIndex(text[start:], -1) {
		spans = appendSpan(spans, text, prev, start+loc[0])
		prev = start + loc[1]
	}
	spans = appendSpan(spans, text, prev, len(text))

	if len(spans) == 1 {
		if bullets := bulletSpans(text, spans[0]); len(bullets) > 1 {
			return bullets
		}
	}
	return spans
}

func appendSpan(spans []Span, text string, start, end int) []Span {
	if strings.TrimSpace(text[start:end]) == "" {
		return spans
	}
	return append(spans, Span{Start: start, End: end})
}

// bulletSpans splits a block into one span per bullet line, provided every
// line is bulleted.
func bulletSpans(text string, block Span) []Span {
	var spans []Span
	pos := block.Start
	for _, line := range strings.SplitAfter(text[block.Start:block.End], "\n") {
		if strings.TrimSpace(line) != "" {
			if !reBulletStart.MatchString(line) {
				return nil
			}
			spans = append(spans, Span{Start: pos, End: pos + len(strings.TrimRight(line, "\n"))})
		}
		pos += len(line)
	}
	return spans
}

// ActivityBlock extracts the fields of one activity item from the
// segment-level entities inside span.
func ActivityBlock(text string, span Span, entities []types.Entity) types.ActivityBlock {
	body := text[span.Start:span.End]
	block := types.ActivityBlock{Text: strings.TrimSpace(body)}
	inside := entitiesIn(entities, span)

	for _, label := range activityEntityLabels {
		for _, e := range types.FilterEntities(inside, label) {
			if overlapsCandidates(block.Titles, e.Start, e.End) {
				continue
			}
			block.Titles = append(block.Titles, types.Candidate{
				Field: types.FieldActivity, Text: textutil.TrimPunct(e.Text), Score: e.Score,
				Start: e.Start, End: e.End, Source: "ner",
			})
		}
	}
	block.Organizations = OrgEntities(text, inside, types.FieldCompany, candidateSpans(block.Titles))
	for _, e := range types.FilterEntities(inside, types.EntityLocation) {
		if !overlapsCandidates(block.Organizations, e.Start, e.End) {
			block.Locations = append(block.Locations, locationCandidate(e))
		}
	}
	for _, d := range DateRanges(body) {
		d.Pos += span.Start
		d.EndPos += span.Start
		block.Dates = append(block.Dates, d)
	}

	cut := candidateSpans(block.Titles)
	for _, d := range block.Dates {
		cut = append(cut, [2]int{d.Pos, d.EndPos})
	}
	block.Description = activityDescription(text[:span.End], span.Start, cut)
	return block
}

// activityDescription keeps one cleaned line per source line so the first
// line can serve as a pseudo-title.
func activityDescription(text string, from int, cut [][2]int) string {
	var lines []string
	for _, l := range strings.Split(blank(text, cut)[from:], "\n") {
		l = textutil.TrimPunct(textutil.CollapseSpace(textutil.StripBullet(l)))
		if l != "" {
			lines = append(lines, l)
		}
	}
	return strings.Join(lines, "\n")
}
