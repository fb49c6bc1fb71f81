// Package types provides type definitions for structured data used throughout the resume-extractor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Label is a canonical resume section type.
type Label string

// Canonical section labels. LabelUnknown marks a segment without a usable label.
const (
	LabelPersonalInfo   Label = "PersonalInfo"
	LabelSummary        Label = "Summary"
	LabelEducation      Label = "Education"
	LabelExperience     Label = "Experience"
	LabelInternships    Label = "Internships"
	LabelSkills         Label = "Skills"
	LabelCertifications Label = "Certifications"
	LabelActivities     Label = "Activities"
	LabelProjects       Label = "Projects"
	LabelAwards         Label = "Awards"
	LabelUnknown        Label = ""
)

// CanonicalLabels returns the closed label vocabulary in a stable order.
func CanonicalLabels() []Label {
	return []Label{
		LabelPersonalInfo,
		LabelSummary,
		LabelEducation,
		LabelExperience,
		LabelInternships,
		LabelSkills,
		LabelCertifications,
		LabelActivities,
		LabelProjects,
		LabelAwards,
	}
}

// labelAliases maps squashed raw labels (lowercase letters only) to canonical labels.
// Layout sources and classifiers emit a variety of spellings for the same section.
var labelAliases = buildAliases(map[Label][]string{
	LabelPersonalInfo:   {"personal information", "personal details", "basic info", "contact", "contact info", "contact information", "header"},
	LabelSummary:        {"profile", "objective", "career objective", "about me", "personal intro", "professional summary"},
	LabelEducation:      {"education background", "academic background", "qualifications"},
	LabelExperience:     {"work experience", "employment", "employment history", "professional experience", "work history"},
	LabelInternships:    {"internship", "internship experience"},
	LabelSkills:         {"technical skills", "key skills", "core skills", "competencies"},
	LabelCertifications: {"certification", "certificates", "licenses"},
	LabelActivities:     {"extracurricular", "extracurricular activities", "volunteering", "other experience"},
	LabelProjects:       {"project"},
	LabelAwards:         {"achievements", "honors", "honours"},
})

func buildAliases(in map[Label][]string) map[string]Label {
	out := make(map[string]Label)
	for label, aliases := range in {
		for _, a := range aliases {
			out[squash(a)] = label
		}
	}
	return out
}

// ParseLabel maps a raw label (canonical name, classifier output or layout hint)
// to a canonical Label. The second return value is false when no mapping exists.
func ParseLabel(raw string) (Label, bool) {
	key := squash(raw)
	if key == "" {
		return LabelUnknown, false
	}
	for _, l := range CanonicalLabels() {
		if squash(string(l)) == key {
			return l, true
		}
	}
	if l, ok := labelAliases[key]; ok {
		return l, true
	}
	return LabelUnknown, false
}

// IsExperienceLike reports whether records for this label are built as experience entries.
func (l Label) IsExperienceLike() bool {
	return l == LabelExperience || l == LabelInternships
}

// IsActivityLike reports whether records for this label are built as activity entries.
func (l Label) IsActivityLike() bool {
	return l == LabelActivities || l == LabelProjects || l == LabelAwards
}

func (l Label) String() string {
	if l == LabelUnknown {
		return "Unknown"
	}
	return string(l)
}

func squash(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Segment is a contiguous unit of resume text produced by the layout source.
// Segments are immutable once created; extraction only reads them.
type Segment struct {
	ID       string `json:"id" validate:"required"`
	Label    string `json:"label,omitempty"`
	Text     string `json:"text"`
	Position int    `json:"position" validate:"gte=0"`
}

// NewSegment creates a segment with a random ID.
func NewSegment(text, label string, position int) Segment {
	return Segment{
		ID:       uuid.NewString(),
		Label:    label,
		Text:     text,
		Position: position,
	}
}

// IsBlank reports whether the segment carries no extractable text.
func (s Segment) IsBlank() bool {
	return strings.TrimSpace(s.Text) == ""
}

// HintLabel returns the canonical label carried by the segment source, if any.
func (s Segment) HintLabel() (Label, bool) {
	return ParseLabel(s.Label)
}

var segmentValidator = validator.New()

// Validate validates the segment fields.
func (s Segment) Validate() error {
	return segmentValidator.Struct(s)
}
