package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-extractor/internal/types"
)

// LabelSpec describes one section label of the vocabulary. Description feeds
// zero-shot model backends; Keywords feed the rule-based classifier.
type LabelSpec struct {
	Name        string   `yaml:"name" json:"name" validate:"required"`
	Description string   `yaml:"description" json:"description"`
	Keywords    []string `yaml:"keywords" json:"keywords"`
}

// Thresholds are the tunable constants of the extraction pipeline.
type Thresholds struct {
	ClassifierMinScore  float64 `yaml:"classifier_min_score" json:"classifier_min_score" validate:"gte=0,lte=1"`
	NERThreshold        float64 `yaml:"ner_threshold" json:"ner_threshold" validate:"gte=0,lte=1"`
	FuzzyThreshold      float64 `yaml:"fuzzy_threshold" json:"fuzzy_threshold" validate:"gt=0,lte=100"`
	TitleHeaderLines    int     `yaml:"title_header_lines" json:"title_header_lines" validate:"gte=1,lte=10"`
	SplitYearWindow     int     `yaml:"split_year_window" json:"split_year_window" validate:"gte=1"`
	PrefixContextWindow int     `yaml:"prefix_context_window" json:"prefix_context_window" validate:"gte=0"`
	CandidateMinLen     int     `yaml:"candidate_min_len" json:"candidate_min_len" validate:"gte=1"`
	CandidateMaxLen     int     `yaml:"candidate_max_len" json:"candidate_max_len" validate:"gtefield=CandidateMinLen"`
	MinPlausibleYear    int     `yaml:"min_plausible_year" json:"min_plausible_year" validate:"gte=1900"`
}

// Profile parameterizes the pipeline: label vocabulary and thresholds.
type Profile struct {
	Name              string      `yaml:"name" json:"name"`
	Labels            []LabelSpec `yaml:"labels" json:"labels" validate:"required,min=1,dive"`
	Thresholds        Thresholds  `yaml:"thresholds" json:"thresholds"`
	TrustSourceLabels bool        `yaml:"trust_source_labels" json:"trust_source_labels"`
	DefaultRegion     string      `yaml:"default_region" json:"default_region" validate:"omitempty,len=2"`
}

var profileValidator = validator.New()

// DefaultThresholds returns the built-in thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ClassifierMinScore:  0.3,
		NERThreshold:        0.5,
		FuzzyThreshold:      92,
		TitleHeaderLines:    3,
		SplitYearWindow:     60,
		PrefixContextWindow: 30,
		CandidateMinLen:     3,
		CandidateMaxLen:     60,
		MinPlausibleYear:    1940,
	}
}

// DefaultProfile returns the built-in English resume profile.
func DefaultProfile() *Profile {
	return &Profile{
		Name:              "default",
		Thresholds:        DefaultThresholds(),
		TrustSourceLabels: true,
		DefaultRegion:     "MY",
		Labels: []LabelSpec{
			{
				Name:        string(types.LabelPersonalInfo),
				Description: "Name and contact details of the candidate: email, phone, address, links.",
				Keywords:    []string{"email", "e-mail", "phone", "mobile", "tel", "contact", "address", "linkedin", "github.com", "@"},
			},
			{
				Name:        string(types.LabelSummary),
				Description: "Short professional summary, profile or career objective.",
				Keywords:    []string{"summary", "profile", "objective", "passionate", "seeking", "motivated", "years of experience", "about me"},
			},
			{
				Name:        string(types.LabelEducation),
				Description: "Degrees, schools and universities attended, with dates and grades.",
				Keywords:    []string{"education", "university", "college", "bachelor", "master", "degree", "diploma", "cgpa", "gpa", "phd", "faculty", "school", "bsc", "msc"},
			},
			{
				Name:        string(types.LabelExperience),
				Description: "Employment history: job titles, employers, dates and responsibilities.",
				Keywords:    []string{"experience", "employment", "engineer", "developer", "manager", "analyst", "responsible", "present", "worked", "led", "company"},
			},
			{
				Name:        string(types.LabelInternships),
				Description: "Internships, industrial training and trainee positions.",
				Keywords:    []string{"intern", "internship", "trainee", "industrial training", "placement"},
			},
			{
				Name:        string(types.LabelSkills),
				Description: "Technical and soft skills, tools, programming languages and spoken languages.",
				Keywords:    []string{"skills", "proficient", "programming", "frameworks", "tools", "technologies", "languages", "familiar"},
			},
			{
				Name:        string(types.LabelCertifications),
				Description: "Professional certifications and licenses with issuers and dates.",
				Keywords:    []string{"certified", "certification", "certificate", "license", "licence", "credential"},
			},
			{
				Name:        string(types.LabelActivities),
				Description: "Extracurricular activities, volunteering, clubs and societies.",
				Keywords:    []string{"activities", "volunteer", "club", "society", "committee", "member", "event", "extracurricular"},
			},
			{
				Name:        string(types.LabelProjects),
				Description: "Personal, academic or professional projects.",
				Keywords:    []string{"project", "projects", "github", "capstone", "final year project"},
			},
			{
				Name:        string(types.LabelAwards),
				Description: "Awards, honours, scholarships and achievements.",
				Keywords:    []string{"award", "awards", "dean's list", "scholarship", "winner", "champion", "honour", "honor", "prize", "achievement"},
			},
		},
	}
}

// LoadProfile reads a YAML profile. Fields absent from the file keep their
// default values; a labels list in the file replaces the default vocabulary.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	return ParseProfile(data)
}

// ParseProfile parses and validates YAML profile data.
func ParseProfile(data []byte) (*Profile, error) {
	p := DefaultProfile()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks thresholds and that every label name is canonical.
func (p *Profile) Validate() error {
	if err := profileValidator.Struct(p); err != nil {
		return fmt.Errorf("profile error: %w", err)
	}
	seen := make(map[types.Label]bool, len(p.Labels))
	for _, l := range p.Labels {
		label, ok := types.ParseLabel(l.Name)
		if !ok {
			return fmt.Errorf("profile error: unknown label %q", l.Name)
		}
		if seen[label] {
			return fmt.Errorf("profile error: duplicate label %q", l.Name)
		}
		seen[label] = true
	}
	return nil
}

// LabelSet returns the canonical labels of the vocabulary in profile order.
func (p *Profile) LabelSet() []types.Label {
	out := make([]types.Label, 0, len(p.Labels))
	for _, l := range p.Labels {
		if label, ok := types.ParseLabel(l.Name); ok {
			out = append(out, label)
		}
	}
	return out
}

// Spec returns the vocabulary entry for label.
func (p *Profile) Spec(label types.Label) (LabelSpec, bool) {
	for _, l := range p.Labels {
		if parsed, ok := types.ParseLabel(l.Name); ok && parsed == label {
			return l, true
		}
	}
	return LabelSpec{}, false
}
