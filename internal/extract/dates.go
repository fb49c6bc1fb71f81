package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/jonathan/resume-extractor/internal/types"
)

// Ongoing is the normalized end of a range that has not finished.
const Ongoing = "Present"

const (
	monthPattern = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?`
	yearPattern  = `(?:19|20)\d{2}\b`
	datePattern  = `(?:` + monthPattern + `[ \t,]*` + yearPattern +
		`|(?:0?[1-9]|1[0-2])[/.\-]` + yearPattern +
		`|(?:19|20)\d{2}[/.\-](?:0?[1-9]|1[0-2])\b` +
		`|` + yearPattern + `)`
	ongoingPattern = `(?:present|current|now|today|ongoing|date)\b`
)

var (
	reDateRange = regexp.MustCompile(`(?i)\b(` + datePattern + `)\s*(?:-|–|—|~|to|until|till)\s*(` + datePattern + `|` + ongoingPattern + `)`)
	reDate      = regexp.MustCompile(`(?i)\b` + datePattern)
	reYear      = regexp.MustCompile(`\b` + yearPattern)

	reMonthYear = regexp.MustCompile(`(?i)^(` + monthPattern + `)[ \t,]*((?:19|20)\d{2})$`)
	reNumMonth  = regexp.MustCompile(`^(0?[1-9]|1[0-2])[/.\-]((?:19|20)\d{2})$`)
	reYearMonth = regexp.MustCompile(`^((?:19|20)\d{2})[/.\-](0?[1-9]|1[0-2])$`)
	reYearOnly  = regexp.MustCompile(`^((?:19|20)\d{2})$`)
	reOngoing   = regexp.MustCompile(`(?i)^` + ongoingPattern + `$`)
)

var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// NormalizeDate converts a date string to "YYYY", "YYYY-MM" or Present.
// Formats outside the resume patterns are parsed with dateparse at month
// precision. The second return value is false when raw is not a date.
func NormalizeDate(raw string) (string, bool) {
	s := strings.TrimSpace(strings.Trim(raw, "()[],;."))
	switch {
	case s == "":
		return "", false
	case reOngoing.MatchString(s):
		return Ongoing, true
	}
	if m := reMonthYear.FindStringSubmatch(s); m != nil {
		month := monthNumbers[strings.ToLower(m[1])[:3]]
		return fmt.Sprintf("%s-%02d", m[2], month), true
	}
	if m := reNumMonth.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%s-%02d", m[2], month), true
	}
	if m := reYearMonth.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("%s-%02d", m[1], month), true
	}
	if m := reYearOnly.FindStringSubmatch(s); m != nil {
		return m[1], true
	}
	t, err := dateparse.ParseAny(s)
	if err != nil || t.Year() < 1900 {
		return "", false
	}
	return t.Format("2006-01"), true
}

// DateRanges returns every date range in text followed by the standalone
// dates that are not part of a range, each group in text order.
func DateRanges(text string) []types.DateRange {
	var out []types.DateRange
	var taken [][2]int
	for _, m := range reDateRange.FindAllStringSubmatchIndex(text, -1) {
		start, _ := NormalizeDate(text[m[2]:m[3]])
		end, _ := NormalizeDate(text[m[4]:m[5]])
		if start == "" || end == "" {
			continue
		}
		out = append(out, types.DateRange{
			Start:   start,
			End:     end,
			Raw:     text[m[0]:m[1]],
			Ongoing: end == Ongoing,
			Pos:     m[0],
			EndPos:  m[1],
		})
		taken = append(taken, [2]int{m[0], m[1]})
	}
	for _, loc := range reDate.FindAllStringIndex(text, -1) {
		if insideAny(taken, loc[0], loc[1]) {
			continue
		}
		d, ok := NormalizeDate(text[loc[0]:loc[1]])
		if !ok {
			continue
		}
		out = append(out, types.DateRange{
			Start:  d,
			Raw:    text[loc[0]:loc[1]],
			Single: true,
			Pos:    loc[0],
			EndPos: loc[1],
		})
	}
	return out
}

// FirstRange returns the first two-sided range, or else the first single date.
func FirstRange(dates []types.DateRange) (types.DateRange, bool) {
	for _, d := range dates {
		if !d.Single {
			return d, true
		}
	}
	if len(dates) > 0 {
		return dates[0], true
	}
	return types.DateRange{}, false
}

// PlausibleYears keeps only dates whose years fall in [minYear, now].
// Used for personal details, where only birth or graduation years make sense.
func PlausibleYears(dates []types.DateRange, minYear int, now time.Time) []types.DateRange {
	var out []types.DateRange
	for _, d := range dates {
		start, end := d.Years()
		if !yearOK(start, minYear, now) {
			continue
		}
		if end != 0 && !yearOK(end, minYear, now) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func yearOK(y, minYear int, now time.Time) bool {
	return y >= minYear && y <= now.Year()
}

// HasYearWithin reports whether a four-digit year starts within window bytes of from.
func HasYearWithin(text string, from, window int) bool {
	if from >= len(text) {
		return false
	}
	end := min(from+window, len(text))
	return reYear.MatchString(text[from:end])
}

func insideAny(spans [][2]int, start, end int) bool {
	for _, s := range spans {
		if start >= s[0] && end <= s[1] {
			return true
		}
	}
	return false
}
