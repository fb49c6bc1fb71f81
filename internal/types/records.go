// Package types provides type definitions for structured data used throughout the resume-extractor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CandidateInfo is the globally chosen identity of the resume owner.
type CandidateInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// EducationRecord is one education entry. One record is built per Education segment.
type EducationRecord struct {
	Degree      string `json:"degree"`
	Major       string `json:"major"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// ExperienceRecord is one job entry. JobTitle is never empty.
type ExperienceRecord struct {
	JobTitle    string `json:"job_title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// CertificationRecord is one certification with an optional date.
type CertificationRecord struct {
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// ActivityRecord is one activity, project or award entry.
type ActivityRecord struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Location     string `json:"location"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Description  string `json:"description"`
}

// ResumeRecord is the final normalized resume. Missing values are empty strings
// or empty slices, never nil.
type ResumeRecord struct {
	Candidate        CandidateInfo         `json:"candidate"`
	Summary          string                `json:"summary"`
	Education        []EducationRecord     `json:"education"`
	Experience       []ExperienceRecord    `json:"experience"`
	Skills           []string              `json:"skills"`
	Languages        []string              `json:"languages"`
	Certifications   []CertificationRecord `json:"certifications"`
	Activities       []ActivityRecord      `json:"activities"`
	UnclassifiedText []string              `json:"unclassified_text"`
}

// NewResumeRecord returns a structurally complete, empty record.
func NewResumeRecord() *ResumeRecord {
	return &ResumeRecord{
		Education:        []EducationRecord{},
		Experience:       []ExperienceRecord{},
		Skills:           []string{},
		Languages:        []string{},
		Certifications:   []CertificationRecord{},
		Activities:       []ActivityRecord{},
		UnclassifiedText: []string{},
	}
}

// IsEmpty reports whether nothing at all was extracted.
func (r *ResumeRecord) IsEmpty() bool {
	return r.Candidate == (CandidateInfo{}) &&
		r.Summary == "" &&
		len(r.Education) == 0 &&
		len(r.Experience) == 0 &&
		len(r.Skills) == 0 &&
		len(r.Languages) == 0 &&
		len(r.Certifications) == 0 &&
		len(r.Activities) == 0
}
