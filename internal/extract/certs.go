package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-extractor/internal/lexicon"
	"github.com/jonathan/resume-extractor/internal/textutil"
	"github.com/jonathan/resume-extractor/internal/types"
)

var (
	reCertKeyword = regexp.MustCompile(`(?i)certif|licen[cs]e|credential`)
	reCertChunk   = regexp.MustCompile(`[,;|]`)
	reYearToken   = regexp.MustCompile(`^(?:(?:0?[1-9]|1[0-2])[/.\-])?(?:19|20)\d{2}$`)
	reMonthToken  = regexp.MustCompile(`(?i)^` + monthPattern + `,?$`)

	// certDateLeads are words that introduce a date and are not part of the title.
	certDateLeads = map[string]bool{
		"issued": true, "obtained": true, "completed": true, "awarded": true, "expires": true,
		"expiry": true, "valid": true, "until": true, "since": true, "in": true, "on": true,
		"date": true, "year": true,
	}
)

// Certifications scans text for certification entries. With full set the
// whole text is a certification list; otherwise only the chunks of lines that
// mention a certification keyword are read. Each chunk is tokenized forward
// and split into (title, date) pairs at every year token; a trailing title
// without a date is kept with an empty date, and a line holding only a date
// completes the previous undated title.
func Certifications(text string, full bool) []types.CertificationRecord {
	var out []types.CertificationRecord
	for _, line := range textutil.Lines(text) {
		line = textutil.StripBullet(line)
		chunks := []string{line}
		if !full {
			if !reCertKeyword.MatchString(line) {
				continue
			}
			chunks = chunks[:0]
			for _, c := range reCertChunk.Split(line, -1) {
				if reCertKeyword.MatchString(c) {
					chunks = append(chunks, c)
				}
			}
		}
		for _, chunk := range chunks {
			out = splitCertChunk(chunk, out)
		}
	}
	return out
}

func splitCertChunk(chunk string, out []types.CertificationRecord) []types.CertificationRecord {
	var title []string
	emit := func(date string) {
		t := certTitle(title)
		title = title[:0]
		switch {
		case t != "":
			out = append(out, types.CertificationRecord{Title: t, Issuer: issuerOf(t), Date: date})
		case date != "" && len(out) > 0 && out[len(out)-1].Date == "":
			out[len(out)-1].Date = date
		}
	}

	for _, tok := range strings.Fields(chunk) {
		bare := strings.Trim(tok, "()[],.;:")
		if !reYearToken.MatchString(bare) {
			title = append(title, tok)
			continue
		}
		raw := bare
		if n := len(title); n > 0 && reMonthToken.MatchString(title[n-1]) {
			raw = strings.TrimRight(title[n-1], ",") + " " + bare
			title = title[:n-1]
		}
		date, _ := NormalizeDate(raw)
		emit(date)
	}
	if len(title) > 0 {
		emit("")
	}
	return out
}

// certTitle joins title tokens, dropping date lead words and separators at
// the end and titles made only of section words.
func certTitle(tokens []string) string {
	for len(tokens) > 0 {
		last := strings.ToLower(strings.Trim(tokens[len(tokens)-1], "()[],.;:-–—|"))
		if last != "" && !certDateLeads[last] {
			break
		}
		tokens = tokens[:len(tokens)-1]
	}
	t := textutil.TrimPunct(strings.Join(tokens, " "))
	if len(t) < 3 {
		return ""
	}
	for _, w := range strings.Fields(t) {
		if !lexicon.IsSectionWord(w) {
			return t
		}
	}
	return ""
}

func issuerOf(title string) string {
	if m := lexicon.Issuers().FindAll(title); len(m) > 0 {
		return m[0].Canonical
	}
	return ""
}
