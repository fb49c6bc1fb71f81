// Package aggregate collects candidate values across segments and keeps the
// highest-confidence variant per normalized key.
package aggregate

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-extractor/internal/fuzzy"
	"github.com/jonathan/resume-extractor/internal/textutil"
)

// Default validity gates.
const (
	DefaultMinLen = 3
	DefaultMaxLen = 60
)

// Entry is the retained variant for one normalized key.
type Entry struct {
	Key   string  `json:"key"`
	Text  string  `json:"text"`
	Score float64 `json:"score"`
	// Seq is the insertion order of the key; it never changes once assigned.
	Seq int `json:"seq"`
}

// Gates controls which candidates a set accepts.
type Gates struct {
	MinLen int
	MaxLen int
	// Allow admits values that would fail the gates, e.g. short skill names
	// such as "Go" or all-caps acronyms such as "AWS".
	Allow func(text string) bool
}

// CandidateSet maps normalized keys to the best variant seen.
// No two entries share a key. A CandidateSet is not safe for concurrent use.
type CandidateSet struct {
	gates   Gates
	entries map[string]*Entry
	next    int
}

// NewCandidateSet creates an empty set. Zero gate lengths fall back to the defaults.
func NewCandidateSet(gates Gates) *CandidateSet {
	if gates.MinLen <= 0 {
		gates.MinLen = DefaultMinLen
	}
	if gates.MaxLen <= 0 {
		gates.MaxLen = DefaultMaxLen
	}
	return &CandidateSet{gates: gates, entries: make(map[string]*Entry)}
}

// Valid reports whether text passes the validity gates: length within
// [MinLen, MaxLen] runes and not a single all-caps token.
func (s *CandidateSet) Valid(text string) bool {
	text = textutil.CollapseSpace(text)
	if text == "" {
		return false
	}
	if s.gates.Allow != nil && s.gates.Allow(text) {
		return true
	}
	n := utf8.RuneCountInString(text)
	if n < s.gates.MinLen || n > s.gates.MaxLen {
		return false
	}
	return !textutil.IsAllCapsToken(text)
}

// UpdateBest offers a candidate to the set. It is accepted only when it passes
// the gates and either its key is new or its score is strictly higher than
// the retained one. It reports whether the set changed.
func (s *CandidateSet) UpdateBest(text string, score float64) bool {
	text = textutil.CollapseSpace(text)
	if !s.Valid(text) {
		return false
	}
	key := textutil.Key(text)
	if cur, ok := s.entries[key]; ok {
		if score <= cur.Score {
			return false
		}
		cur.Text = text
		cur.Score = score
		return true
	}
	s.entries[key] = &Entry{Key: key, Text: text, Score: score, Seq: s.next}
	s.next++
	return true
}

// Len returns the number of distinct keys.
func (s *CandidateSet) Len() int {
	return len(s.entries)
}

// Get returns the retained entry for the key of text.
func (s *CandidateSet) Get(text string) (Entry, bool) {
	e, ok := s.entries[textutil.Key(text)]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Contains reports whether a variant of text is retained.
func (s *CandidateSet) Contains(text string) bool {
	_, ok := s.entries[textutil.Key(text)]
	return ok
}

// Entries returns the retained entries in insertion order.
func (s *CandidateSet) Entries() []Entry {
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}

// Texts returns the retained surface forms in insertion order.
func (s *CandidateSet) Texts() []string {
	entries := s.Entries()
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Text)
	}
	return out
}

// Scores returns a key to score snapshot.
func (s *CandidateSet) Scores() map[string]float64 {
	out := make(map[string]float64, len(s.entries))
	for k, e := range s.entries {
		out[k] = e.Score
	}
	return out
}

// DedupFuzzy removes entries whose text is at least threshold similar
// (token-sort ratio, 0..100) to a stronger entry. It returns the number of
// entries removed. The survivors are independent of insertion order.
func (s *CandidateSet) DedupFuzzy(threshold float64) int {
	entries := s.Entries()
	items := make([]fuzzy.Item, len(entries))
	for i, e := range entries {
		items[i] = fuzzy.Item{Key: e.Text, Score: e.Score, Pos: e.Seq}
	}
	keep := make(map[int]bool, len(entries))
	for _, idx := range fuzzy.Dedup(items, threshold) {
		keep[idx] = true
	}
	removed := 0
	for i, e := range entries {
		if !keep[i] {
			delete(s.entries, e.Key)
			removed++
		}
	}
	return removed
}

// Merge offers every entry of other to s.
func (s *CandidateSet) Merge(other *CandidateSet) {
	for _, e := range other.Entries() {
		s.UpdateBest(e.Text, e.Score)
	}
}

// Exclude removes the entries whose key matches one of texts.
func (s *CandidateSet) Exclude(texts ...string) {
	for _, t := range texts {
		delete(s.entries, textutil.Key(strings.TrimSpace(t)))
	}
}
