// Package types provides type definitions for structured data used throughout the resume-extractor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ExperienceBlock is one job entry split out of an Experience segment, with
// its own re-extracted fields. Offsets are relative to the segment text.
type ExperienceBlock struct {
	Text        string      `json:"text"`
	Start       int         `json:"start"`
	End         int         `json:"end"`
	Titles      []Candidate `json:"titles"`
	Companies   []Candidate `json:"companies"`
	Locations   []Candidate `json:"locations"`
	Dates       []DateRange `json:"dates"`
	Description string      `json:"description"`
}

// ActivityBlock is one item of an Activities, Projects or Awards segment.
type ActivityBlock struct {
	Text          string      `json:"text"`
	Titles        []Candidate `json:"titles"`
	Organizations []Candidate `json:"organizations"`
	Locations     []Candidate `json:"locations"`
	Dates         []DateRange `json:"dates"`
	Description   string      `json:"description"`
}

// SegmentResult is the per-segment output of classification and extraction.
type SegmentResult struct {
	SegmentID  string  `json:"segment_id"`
	Position   int     `json:"position"`
	Text       string  `json:"text"`
	Label      Label   `json:"label"`
	LabelScore float64 `json:"label_score"`
	// Skipped is set for blank segments, which are never classified.
	Skipped bool `json:"skipped"`
	// Classified is false when the classifier produced no usable label; such
	// segments only feed the free-text fallback.
	Classified bool `json:"classified"`

	Names          []Candidate           `json:"names"`
	Emails         []Candidate           `json:"emails"`
	Phones         []Candidate           `json:"phones"`
	Locations      []Candidate           `json:"locations"`
	Dates          []DateRange           `json:"dates"`
	Degrees        []DegreeCandidate     `json:"degrees"`
	Institutions   []Candidate           `json:"institutions"`
	JobTitles      []Candidate           `json:"job_titles"`
	Companies      []Candidate           `json:"companies"`
	Skills         []Candidate           `json:"skills"`
	Languages      []Candidate           `json:"languages"`
	Certifications []CertificationRecord `json:"certifications"`
	Experience     []ExperienceBlock     `json:"experience"`
	Activities     []ActivityBlock       `json:"activities"`

	// Errors lists extractors that failed and were degraded to empty results.
	Errors []string `json:"errors,omitempty"`
}

// Structured reports whether the segment takes part in structured extraction.
func (r *SegmentResult) Structured() bool {
	return !r.Skipped && r.Classified
}
