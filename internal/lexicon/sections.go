package lexicon

import "strings"

// SectionWords are words that appear in resume section headings.
var SectionWords = []string{
	"resume", "résumé", "curriculum", "vitae", "cv", "profile", "summary", "objective",
	"education", "educational", "academic", "experience", "experiences", "employment",
	"work", "history", "skills", "skill", "technical", "projects", "project",
	"certifications", "certification", "certificates", "licenses", "activities",
	"extracurricular", "awards", "achievements", "honours", "honors", "contact",
	"references", "languages", "personal", "information", "details", "internship",
	"internships", "interests", "hobbies", "about", "me", "qualifications", "career",
}

var sectionWordSet = func() map[string]bool {
	m := make(map[string]bool, len(SectionWords))
	for _, w := range SectionWords {
		m[w] = true
	}
	return m
}()

// IsSectionWord reports whether w is a section heading word.
func IsSectionWord(w string) bool {
	return sectionWordSet[strings.ToLower(strings.Trim(w, ":.,;"))]
}
