// Package lexicon holds the controlled vocabularies used by the rule-based
// models and extractors: skills, spoken languages, places, organizations,
// job titles and section headings.
package lexicon

import (
	"sort"
	"strings"
	"unicode"
)

// Term is a lexicon entry.
type Term struct {
	Canonical string
	// CaseSensitive terms only match when the surface form equals the
	// canonical form or is all upper case (e.g. "Go", "R", "C").
	CaseSensitive bool
}

// Match is a lexicon hit. Start and End are byte offsets into the scanned text.
type Match struct {
	Text      string
	Canonical string
	Start     int
	End       int
}

// Matcher finds lexicon terms of up to maxWords tokens in free text.
type Matcher struct {
	terms    map[string]Term
	maxWords int
}

// NewMatcher builds a matcher from alias to canonical mappings. Aliases are
// matched case-insensitively except for the names listed in caseSensitive.
func NewMatcher(aliases map[string]string, caseSensitive ...string) *Matcher {
	cs := make(map[string]bool, len(caseSensitive))
	for _, c := range caseSensitive {
		cs[strings.ToLower(c)] = true
	}
	m := &Matcher{terms: make(map[string]Term, len(aliases)), maxWords: 1}
	for alias, canonical := range aliases {
		key := termKey(alias)
		if key == "" {
			continue
		}
		m.terms[key] = Term{Canonical: canonical, CaseSensitive: cs[key]}
		if n := len(strings.Fields(key)); n > m.maxWords {
			m.maxWords = n
		}
	}
	return m
}

func termKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Lookup returns the canonical form of s when s is exactly a known term.
func (m *Matcher) Lookup(s string) (string, bool) {
	t, ok := m.terms[termKey(s)]
	if !ok {
		return "", false
	}
	if t.CaseSensitive && !caseOK(strings.TrimSpace(s), t.Canonical) {
		return "", false
	}
	return t.Canonical, true
}

// Canonicals returns every canonical form, sorted and unique.
func (m *Matcher) Canonicals() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range m.terms {
		if !seen[t.Canonical] {
			seen[t.Canonical] = true
			out = append(out, t.Canonical)
		}
	}
	sort.Strings(out)
	return out
}

// FindAll scans text left to right and returns the longest term match at
// each position. Matches never overlap.
func (m *Matcher) FindAll(text string) []Match {
	toks := m.tokenize(text)
	var out []Match
	for i := 0; i < len(toks); {
		matched := 0
		for n := min(m.maxWords, len(toks)-i); n >= 1; n-- {
			parts := make([]string, n)
			for k := 0; k < n; k++ {
				parts[k] = strings.ToLower(toks[i+k].text)
			}
			t, ok := m.terms[strings.Join(parts, " ")]
			if !ok {
				continue
			}
			start, end := toks[i].start, toks[i+n-1].end
			surface := text[start:end]
			if t.CaseSensitive && !caseOK(surface, t.Canonical) {
				continue
			}
			out = append(out, Match{Text: surface, Canonical: t.Canonical, Start: start, End: end})
			matched = n
			break
		}
		if matched > 0 {
			i += matched
		} else {
			i++
		}
	}
	return out
}

func caseOK(surface, canonical string) bool {
	return surface == canonical || (surface == strings.ToUpper(surface) && surface != strings.ToLower(surface))
}

type token struct {
	text       string
	start, end int
}

func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("+#.-/'", r)
}

// tokenize splits text into word tokens, trimming sentence punctuation.
// Slash-joined tokens such as "Python/Django" are split unless the whole
// token is a term ("CI/CD").
func (m *Matcher) tokenize(text string) []token {
	var toks []token
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		toks = append(toks, m.splitSlash(trimToken(text, start, end))...)
		start = -1
	}
	for i, r := range text {
		if isTokenRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(text))
	return toks
}

func trimToken(text string, start, end int) token {
	for start < end && strings.ContainsRune("-/'.", rune(text[start])) {
		// keep a leading dot for names such as ".NET"
		if text[start] == '.' && end-start > 1 && isLetterByte(text[start+1]) {
			break
		}
		start++
	}
	for end > start && strings.ContainsRune("-/'.", rune(text[end-1])) {
		end--
	}
	return token{text: text[start:end], start: start, end: end}
}

func isLetterByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func (m *Matcher) splitSlash(t token) []token {
	if t.text == "" {
		return nil
	}
	if !strings.Contains(t.text, "/") {
		return []token{t}
	}
	if _, ok := m.terms[strings.ToLower(t.text)]; ok {
		return []token{t}
	}
	var out []token
	off := t.start
	for _, part := range strings.Split(t.text, "/") {
		if part != "" {
			out = append(out, trimToken(part, 0, len(part)).shift(off))
		}
		off += len(part) + 1
	}
	return out
}

func (t token) shift(off int) token {
	t.start += off
	t.end += off
	return t
}
