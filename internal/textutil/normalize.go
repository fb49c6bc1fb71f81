// Package textutil provides text normalization helpers shared by the extractors.
package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(`[ \x{00A0}]{2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
	reBoxNoise   = regexp.MustCompile(`(?m)^[ \t]*[_\-=~]{3,}[ \t]*$`)
	reBullet     = regexp.MustCompile(`^\s*(?:[•●▪■◦‣∙·*\-–—]+|\d{1,2}[.)])\s+`)
)

// CleanText normalizes OCR/layout text: NFKC folding, unified line endings,
// collapsed spaces and blank lines, and removal of ruler lines.
// Line breaks are preserved.
func CleanText(s string) string {
	if s == "" {
		return s
	}
	s = norm.NFKC.String(s)
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reBoxNoise.ReplaceAllString(s, "")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	s = strings.Join(lines, "\n")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// CollapseSpace joins all whitespace runs (including newlines) into single spaces.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Key returns the normalization key used for exact-match deduplication:
// lowercase and whitespace-collapsed.
func Key(s string) string {
	return strings.ToLower(CollapseSpace(s))
}

// StripBullet removes a leading list marker from a line.
func StripBullet(line string) string {
	return reBullet.ReplaceAllString(line, "")
}

// TrimPunct trims surrounding separators and punctuation, keeping closing
// parentheses and periods that belong to abbreviations.
func TrimPunct(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, " ,;:|/-–—•·*")
	s = strings.TrimRight(s, " ,;:|/-–—•·*(")
	return strings.TrimSpace(s)
}

// Lines splits text into trimmed, non-empty lines.
func Lines(s string) []string {
	raw := strings.Split(s, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// HeadLines returns the byte offset just past the first n non-empty lines.
func HeadLines(s string, n int) int {
	if n <= 0 {
		return 0
	}
	seen := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '\n' {
			continue
		}
		if strings.TrimSpace(lineBefore(s, i)) != "" {
			seen++
			if seen == n {
				return i
			}
		}
	}
	return len(s)
}

func lineBefore(s string, nl int) string {
	start := strings.LastIndexByte(s[:nl], '\n') + 1
	return s[start:nl]
}

var titleCaser = cases.Title(language.English)

// TitleCase title-cases a lowercase or uppercase phrase; mixed-case input is
// returned unchanged since it usually carries intentional casing (e.g. "iOS").
func TitleCase(s string) string {
	if s != strings.ToLower(s) && s != strings.ToUpper(s) {
		return s
	}
	return titleCaser.String(strings.ToLower(s))
}

// SentenceCase upper-cases the first letter of every sentence and leaves the
// rest of the text untouched.
func SentenceCase(s string) string {
	rs := []rune(s)
	capNext := true
	for i, r := range rs {
		switch {
		case unicode.IsLetter(r):
			if capNext {
				rs[i] = unicode.ToUpper(r)
			}
			capNext = false
		case r == '.' || r == '!' || r == '?':
			capNext = true
		case unicode.IsDigit(r):
			capNext = false
		}
	}
	return string(rs)
}

// IsAllCapsToken reports whether s is a single token written entirely in upper case.
func IsAllCapsToken(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " \t\n") {
		return false
	}
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// IsCapitalized reports whether the word starts with an upper-case letter.
func IsCapitalized(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

// RemoveSpans cuts each needle (case-insensitive, first occurrence) out of s.
func RemoveSpans(s string, needles ...string) string {
	for _, n := range needles {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if idx := strings.Index(strings.ToLower(s), strings.ToLower(n)); idx >= 0 {
			s = s[:idx] + " " + s[idx+len(n):]
		}
	}
	return s
}
