package extract

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/jonathan/resume-extractor/internal/types"
)

// Contact scores.
const (
	scoreEmail         = 1.0
	scorePhoneValid    = 0.95
	scorePhoneFallback = 0.6
)

var (
	reEmail = regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)
	rePhone = regexp.MustCompile(`\+?\(?\d[\d \t().\-]{7,}\d`)
)

// Emails returns the email addresses in text.
func Emails(text string) []types.Candidate {
	var out []types.Candidate
	for _, loc := range reEmail.FindAllStringIndex(text, -1) {
		out = append(out, types.Candidate{
			Field:  types.FieldEmail,
			Text:   text[loc[0]:loc[1]],
			Score:  scoreEmail,
			Start:  loc[0],
			End:    loc[1],
			Source: "regex",
		})
	}
	return out
}

// Phones returns phone numbers in text. Numbers that parse for region are
// formatted as E.164; others keep their digits and a leading plus.
// Date ranges and short digit runs are rejected.
func Phones(text, region string) []types.Candidate {
	var out []types.Candidate
	for _, loc := range rePhone.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		digits := countDigits(raw)
		if digits < 9 || digits > 15 || len(DateRanges(raw)) > 0 {
			continue
		}
		value, score := normalizePhone(raw, region)
		out = append(out, types.Candidate{
			Field:  types.FieldPhone,
			Text:   value,
			Score:  score,
			Start:  loc[0],
			End:    loc[1],
			Source: "regex",
		})
	}
	return out
}

func normalizePhone(raw, region string) (string, float64) {
	if num, err := phonenumbers.Parse(raw, region); err == nil && phonenumbers.IsValidNumber(num) {
		return phonenumbers.Format(num, phonenumbers.E164), scorePhoneValid
	}
	var sb strings.Builder
	for i, r := range strings.TrimSpace(raw) {
		if (r == '+' && i == 0) || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return sb.String(), scorePhoneFallback
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
