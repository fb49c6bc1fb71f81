package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-extractor/internal/lexicon"
	"github.com/jonathan/resume-extractor/internal/textutil"
	"github.com/jonathan/resume-extractor/internal/types"
)

const (
	scoreHeaderName = 0.6
	nameHeaderLines = 2
	nameMinWords    = 2
	nameMaxWords    = 4
)

var (
	reNameToken = regexp.MustCompile(`[^\s|,;•·/()]+|[|,;•·/()]`)
	reDigits    = regexp.MustCompile(`\S*\d\S*`)
)

// NameFromHeader finds the owner's name in the first two lines of text when
// no model predicted one. Titles, places, emails, phone numbers and digits
// are stripped first; the first run of two to four capitalized words that
// are not section words wins.
func NameFromHeader(text string) (types.Candidate, bool) {
	lines := textutil.Lines(text)
	if len(lines) > nameHeaderLines {
		lines = lines[:nameHeaderLines]
	}
	for _, line := range lines {
		if name, ok := nameInLine(line); ok {
			return types.Candidate{
				Field:  types.FieldName,
				Text:   name,
				Score:  scoreHeaderName,
				Start:  strings.Index(text, line),
				End:    strings.Index(text, line) + len(line),
				Source: "heuristic",
			}, true
		}
	}
	return types.Candidate{}, false
}

func nameInLine(line string) (string, bool) {
	line = reEmail.ReplaceAllString(line, " | ")
	line = rePhone.ReplaceAllString(line, " | ")
	var cuts []string
	for _, t := range FindTitles(line) {
		cuts = append(cuts, line[t.Start:t.End])
	}
	for _, p := range lexicon.Places().FindAll(line) {
		cuts = append(cuts, p.Text)
	}
	for _, c := range cuts {
		line = strings.Replace(line, c, " | ", 1)
	}
	line = reDigits.ReplaceAllString(line, " | ")

	var run []string
	flush := func() (string, bool) {
		defer func() { run = run[:0] }()
		if len(run) < nameMinWords || len(run) > nameMaxWords {
			return "", false
		}
		return textutil.TitleCase(strings.Join(run, " ")), true
	}
	for _, tok := range reNameToken.FindAllString(line, -1) {
		if nameWord(tok) {
			run = append(run, tok)
			continue
		}
		if name, ok := flush(); ok {
			return name, true
		}
	}
	return flush()
}

func nameWord(tok string) bool {
	if !textutil.IsCapitalized(tok) || lexicon.IsSectionWord(tok) {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) && r != '\'' && r != '-' && r != '.' {
			return false
		}
	}
	return true
}
