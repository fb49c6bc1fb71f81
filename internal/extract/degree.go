package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-extractor/internal/fuzzy"
	"github.com/jonathan/resume-extractor/internal/lexicon"
	"github.com/jonathan/resume-extractor/internal/types"
)

// Canonical degree prefixes.
const (
	DegreeBachelor   = "Bachelor of"
	DegreeMaster     = "Master of"
	DegreeDoctorate  = "PhD in"
	DegreeDiploma    = "Diploma in"
	DegreeAssociate  = "Associate of"
	DegreeFoundation = "Foundation in"
)

const (
	majorWord    = `[A-Z][A-Za-z&'\-]*`
	majorPattern = `(` + majorWord + `(?:[ \t]+(?:(?:and|of|&)[ \t]+)?` + majorWord + `){0,7})`
	honours      = `(?:[ \t]*\((?i:hons?\.?|honours)\))?`
	broadField   = `(?:(?:Science|Arts|Engineering|Technology|Commerce|Applied Science)` + honours + `[ \t]+(?:in[ \t]+)?)?`
)

// degreeStrategy is one entry of the ordered degree pattern table. Group 1
// is the degree marker and the last group the major.
type degreeStrategy struct {
	name  string
	re    *regexp.Regexp
	score float64
	// level maps the marker to a canonical prefix; an empty result defers to
	// the context window.
	level func(marker string) string
	// major supplies a default major when the pattern allows none.
	major func(marker string) string
}

var degreeStrategies = []degreeStrategy{
	{
		name: "full",
		re: regexp.MustCompile(`(?i:\b(advanced diploma|bachelor(?:'?s)?|master(?:'?s)?|doctor(?:ate)?|ph\.?d\.?|diploma|associate(?:'?s)?|foundation))` +
			honours + `(?:[ \t]+(?i:degree))?(?:[ \t]+(?i:of|in))?[ \t]+` + broadField + majorPattern),
		score: 0.9,
		level: prefixLevel,
	},
	{
		name: "abbreviation",
		re: regexp.MustCompile(`\b(B\.?Sc|B\.?Eng|B\.?Tech|B\.?Com|B\.?A\.?Sc|BBA|BIT|BCS|M\.?Sc|M\.?Eng|M\.?Tech|M\.?Phil|MBA|Ph\.?D|DPhil)\.?` +
			honours + `(?:[ \t]+(?:in|of))?[ \t]+` + majorPattern),
		score: 0.8,
		level: abbreviationLevel,
	},
	{
		name:  "short-abbreviation",
		re:    regexp.MustCompile(`\b(BS|BA|MS|MA|B\.S\.|B\.A\.|M\.S\.|M\.A\.)[ \t]+(?:in|of)[ \t]+` + majorPattern),
		score: 0.8,
		level: abbreviationLevel,
	},
	{
		name:  "business-abbreviation",
		re:    regexp.MustCompile(`\b(MBA|BBA)\b()`),
		score: 0.8,
		level: abbreviationLevel,
		major: func(string) string { return "Business Administration" },
	},
	{
		name:  "field-only",
		re:    regexp.MustCompile(`(?i:\b(major(?:ing|ed)?|degree|speciali[sz]ation|concentration))(?:[ \t]+(?i:in)|[ \t]*:)[ \t]*` + majorPattern),
		score: 0.7,
		level: func(string) string { return "" },
	},
}

// scoreNoPrefix is the score of a field-only match whose level could not be inferred.
const scoreNoPrefix = 0.6

var (
	reContextLevel = regexp.MustCompile(`(?i)\b(advanced diploma|bachelor|master|doctor|ph\.?d|diploma|associate|foundation|b\.?sc|b\.?eng|b\.?tech|b\.?com|bba|m\.?sc|m\.?eng|m\.?tech|mba)\b`)

	majorStopWords = func() map[string]bool {
		m := map[string]bool{
			"faculty": true, "department": true, "gpa": true, "cgpa": true, "class": true,
			"first": true, "second": true, "upper": true, "lower": true, "honours": true,
			"hons": true, "with": true, "graduated": true, "expected": true, "dean's": true,
		}
		for _, w := range lexicon.InstitutionWords {
			m[strings.ToLower(w)] = true
		}
		return m
	}()

	majorConnectors = map[string]bool{"and": true, "of": true, "&": true}
)

func prefixLevel(marker string) string {
	m := strings.ToLower(strings.ReplaceAll(marker, ".", ""))
	switch {
	case strings.HasPrefix(m, "advanced diploma"), strings.HasPrefix(m, "diploma"):
		return DegreeDiploma
	case strings.HasPrefix(m, "bachelor"):
		return DegreeBachelor
	case strings.HasPrefix(m, "master"):
		return DegreeMaster
	case strings.HasPrefix(m, "doctor"), m == "phd", m == "dphil":
		return DegreeDoctorate
	case strings.HasPrefix(m, "associate"):
		return DegreeAssociate
	case strings.HasPrefix(m, "foundation"):
		return DegreeFoundation
	}
	return ""
}

func abbreviationLevel(marker string) string {
	m := strings.ToLower(strings.ReplaceAll(marker, ".", ""))
	switch {
	case m == "phd" || m == "dphil":
		return DegreeDoctorate
	case m == "mba" || strings.HasPrefix(m, "m"):
		return DegreeMaster
	case strings.HasPrefix(m, "b"):
		return DegreeBachelor
	}
	return prefixLevel(marker)
}

// inferLevel looks for a degree marker within window bytes around pos.
func inferLevel(text string, pos, window int) string {
	start := max(pos-window, 0)
	end := min(pos+window, len(text))
	for _, m := range reContextLevel.FindAllStringSubmatch(text[start:end], -1) {
		if lvl := abbreviationLevel(m[1]); lvl != "" {
			return lvl
		}
	}
	return ""
}

// cleanMajor cuts a captured major at the first stop word, keeps at most six
// words and drops dangling connectors.
func cleanMajor(raw string) string {
	words := strings.Fields(raw)
	var out []string
	for _, w := range words {
		if majorStopWords[strings.ToLower(strings.Trim(w, ",.;:"))] || len(out) == 6 {
			break
		}
		out = append(out, w)
	}
	for len(out) > 0 && majorConnectors[strings.ToLower(out[len(out)-1])] {
		out = out[:len(out)-1]
	}
	return strings.TrimRight(strings.Join(out, " "), ",.;:")
}

// DegreeDisplay joins a degree prefix and a major, e.g. "Bachelor of Computer Science".
func DegreeDisplay(degree, major string) string {
	switch {
	case degree == "":
		return major
	case major == "":
		return strings.TrimSuffix(strings.TrimSuffix(degree, " of"), " in")
	}
	return degree + " " + major
}

// FindDegrees runs the degree strategy table over text in priority order.
// Matches overlapping a higher-priority match are skipped. window is the
// context used to infer a missing degree prefix.
func FindDegrees(text string, window int) []types.DegreeCandidate {
	var out []types.DegreeCandidate
	var taken [][2]int
	for _, st := range degreeStrategies {
		for _, m := range st.re.FindAllStringSubmatchIndex(text, -1) {
			if overlapsAny(taken, m[0], m[1]) {
				continue
			}
			marker := text[m[2]:m[3]]
			last := len(m) - 2
			major := ""
			if m[last] >= 0 {
				major = cleanMajor(text[m[last]:m[last+1]])
			}
			if major == "" && st.major != nil {
				major = st.major(marker)
			}
			if major == "" || lexicon.IsSectionWord(major) {
				continue
			}

			score := st.score
			level := st.level(marker)
			if level == "" {
				level = inferLevel(text, m[0], window)
				if level == "" {
					score = scoreNoPrefix
				}
			}

			end := m[1]
			if m[last] >= 0 && major != "" {
				if idx := strings.Index(text[m[last]:m[last+1]], major); idx >= 0 {
					end = m[last] + idx + len(major)
				}
			}
			out = append(out, types.DegreeCandidate{
				Candidate: types.Candidate{
					Field:  types.FieldDegree,
					Text:   DegreeDisplay(level, major),
					Score:  score,
					Start:  m[0],
					End:    end,
					Source: "pattern:" + st.name,
				},
				Degree: level,
				Major:  major,
			})
			taken = append(taken, [2]int{m[0], end})
		}
	}
	return out
}

// ParseDegree interprets a degree string predicted by a model. Strings the
// pattern table cannot read are kept as a bare major.
func ParseDegree(s string, window int) types.DegreeCandidate {
	if found := FindDegrees(s, window); len(found) > 0 {
		return found[0]
	}
	major := strings.TrimSpace(s)
	return types.DegreeCandidate{
		Candidate: types.Candidate{Field: types.FieldDegree, Text: major},
		Major:     major,
	}
}

// DedupDegrees collapses near-duplicate degrees whose display forms have a
// token-sort ratio of at least threshold. The survivor of each group is the
// highest scored, then the longest; output keeps text order.
func DedupDegrees(cands []types.DegreeCandidate, threshold float64) []types.DegreeCandidate {
	items := make([]fuzzy.Item, len(cands))
	for i, c := range cands {
		items[i] = fuzzy.Item{Key: c.Text, Score: c.Score, Pos: i}
	}
	keep := fuzzy.Dedup(items, threshold)
	out := make([]types.DegreeCandidate, 0, len(keep))
	for _, i := range keep {
		out = append(out, cands[i])
	}
	return out
}

// Degrees finds and deduplicates the degrees in text.
func Degrees(text string, window int, threshold float64) []types.DegreeCandidate {
	return DedupDegrees(FindDegrees(text, window), threshold)
}

func overlapsAny(spans [][2]int, start, end int) bool {
	for _, s := range spans {
		if start < s[1] && s[0] < end {
			return true
		}
	}
	return false
}
