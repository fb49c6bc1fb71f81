package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-extractor/internal/lexicon"
	"github.com/jonathan/resume-extractor/internal/textutil"
	"github.com/jonathan/resume-extractor/internal/types"
)

// Title scores.
const (
	scoreTitle           = 0.85
	scoreSingleWordTitle = 0.7
)

var (
	reTitle = buildTitlePattern()

	titleBlacklist = lowerSet(lexicon.TitleBlacklist)
	singleWord     = lowerSet(lexicon.SingleWordTitles)
	titleJoiners   = map[string]bool{"of": true, "and": true, "&": true}
)

func buildTitlePattern() *regexp.Regexp {
	alt := func(words []string) string {
		sorted := append([]string(nil), words...)
		sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
		quoted := make([]string, len(sorted))
		for i, w := range sorted {
			quoted[i] = strings.ReplaceAll(regexp.QuoteMeta(w), " ", `[ \t]+`)
		}
		return strings.Join(quoted, "|")
	}
	return regexp.MustCompile(
		`\b(?:(?i:` + alt(lexicon.TitleModifiers) + `)[ \t]+){0,4}(?i:` + alt(lexicon.TitleHeads) + `)\b` +
			`(?:[ \t]+of[ \t]+[A-Z][A-Za-z&]*(?:[ \t]+(?:(?:and|&)[ \t]+)?[A-Z][A-Za-z&]*){0,3})?`)
}

func lowerSet(words []string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[strings.ToLower(w)] = true
	}
	return m
}

// FindTitles returns job titles matched by the title lexicon anywhere in text.
// Every word must be capitalized, no word of the match or the word before it
// may be blacklisted, and one-word titles must be in the single-word list.
func FindTitles(text string) []types.Candidate {
	var out []types.Candidate
	for _, loc := range reTitle.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		words := strings.Fields(raw)
		if !titleWordsOK(words) || titleBlacklist[strings.ToLower(wordBefore(text, loc[0]))] {
			continue
		}
		score := scoreTitle
		if len(words) == 1 {
			if !singleWord[strings.ToLower(words[0])] {
				continue
			}
			score = scoreSingleWordTitle
		}
		out = append(out, types.Candidate{
			Field:  types.FieldJobTitle,
			Text:   textutil.TitleCase(strings.Join(words, " ")),
			Score:  score,
			Start:  loc[0],
			End:    loc[1],
			Source: "lexicon",
		})
	}
	return out
}

// JobTitles returns the titles found in the first headerLines lines of text.
func JobTitles(text string, headerLines int) []types.Candidate {
	return FindTitles(text[:textutil.HeadLines(text, headerLines)])
}

// ValidTitle applies the capitalization and blacklist filters to a title
// predicted by a model.
func ValidTitle(title string) bool {
	words := strings.Fields(title)
	if len(words) == 0 {
		return false
	}
	if len(words) == 1 && !singleWord[strings.ToLower(words[0])] {
		return false
	}
	return titleWordsOK(words)
}

func titleWordsOK(words []string) bool {
	for _, w := range words {
		lw := strings.ToLower(w)
		if titleBlacklist[lw] {
			return false
		}
		if !titleJoiners[lw] && !textutil.IsCapitalized(w) {
			return false
		}
	}
	return true
}

// wordBefore returns the word that ends just before pos on the same line.
func wordBefore(text string, pos int) string {
	i := pos
	for i > 0 && (text[i-1] == ' ' || text[i-1] == '\t') {
		i--
	}
	j := i
	for j > 0 && text[j-1] != ' ' && text[j-1] != '\t' && text[j-1] != '\n' {
		j--
	}
	return strings.Trim(text[j:i], ",.;:")
}
