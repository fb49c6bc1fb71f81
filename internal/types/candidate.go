// Package types provides type definitions for structured data used throughout the resume-extractor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Field identifies the resume field a candidate value belongs to.
type Field string

// Candidate fields produced by the extractor set.
const (
	FieldName          Field = "name"
	FieldEmail         Field = "email"
	FieldPhone         Field = "phone"
	FieldLocation      Field = "location"
	FieldDegree        Field = "degree"
	FieldInstitution   Field = "institution"
	FieldJobTitle      Field = "job_title"
	FieldCompany       Field = "company"
	FieldDate          Field = "date"
	FieldSkill         Field = "skill"
	FieldLanguage      Field = "language"
	FieldCertification Field = "certification"
	FieldActivity      Field = "activity"
)

// Candidate is a tentative extracted value with a confidence score.
// Start and End are byte offsets into the text the extractor ran on.
type Candidate struct {
	Field  Field   `json:"field"`
	Text   string  `json:"text"`
	Score  float64 `json:"score"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Source string  `json:"source"`
}

// DegreeCandidate is a degree-major match. Text holds the display form,
// e.g. "Bachelor of Computer Science".
type DegreeCandidate struct {
	Candidate
	Degree string `json:"degree"`
	Major  string `json:"major"`
}

// DateRange is a start/end pair parsed from text. A lone date sets Start and
// leaves End empty with Single set.
type DateRange struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Raw     string `json:"raw"`
	Single  bool   `json:"single"`
	Ongoing bool   `json:"ongoing"`
	Pos     int    `json:"pos"`
	EndPos  int    `json:"end_pos"`
}

// Years returns the start and end years of the range (0 when unknown).
func (d DateRange) Years() (int, int) {
	return leadingYear(d.Start), leadingYear(d.End)
}

func leadingYear(s string) int {
	if len(s) < 4 {
		return 0
	}
	y := 0
	for i := 0; i < 4; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0
		}
		y = y*10 + int(c-'0')
	}
	return y
}

// BestCandidate returns the highest-scored candidate, preferring the earliest on ties.
func BestCandidate(cands []Candidate) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return best, true
}

// Texts returns the text of each candidate.
func Texts(cands []Candidate) []string {
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.Text)
	}
	return out
}
