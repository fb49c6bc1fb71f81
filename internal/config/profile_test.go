package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/types"
)

func TestDefaultProfile_Valid(t *testing.T) {
	p := DefaultProfile()
	require.NoError(t, p.Validate())
	assert.Equal(t, types.CanonicalLabels(), p.LabelSet())
	assert.Equal(t, 92.0, p.Thresholds.FuzzyThreshold)
	assert.Equal(t, 60, p.Thresholds.SplitYearWindow)
	assert.Equal(t, 30, p.Thresholds.PrefixContextWindow)
}

func TestParseProfile_OverridesThresholds(t *testing.T) {
	data := []byte(`
name: strict
thresholds:
  fuzzy_threshold: 90
  title_header_lines: 2
trust_source_labels: false
`)
	p, err := ParseProfile(data)
	require.NoError(t, err)
	assert.Equal(t, "strict", p.Name)
	assert.Equal(t, 90.0, p.Thresholds.FuzzyThreshold)
	assert.Equal(t, 2, p.Thresholds.TitleHeaderLines)
	assert.Equal(t, 60, p.Thresholds.CandidateMaxLen, "unset thresholds keep defaults")
	assert.False(t, p.TrustSourceLabels)
	assert.Len(t, p.Labels, len(types.CanonicalLabels()))
}

func TestParseProfile_ReplacesLabels(t *testing.T) {
	data := []byte(`
labels:
  - name: PersonalInfo
    keywords: [email]
  - name: Work Experience
    keywords: [engineer]
`)
	p, err := ParseProfile(data)
	require.NoError(t, err)
	assert.Equal(t, []types.Label{types.LabelPersonalInfo, types.LabelExperience}, p.LabelSet())

	spec, ok := p.Spec(types.LabelExperience)
	require.True(t, ok)
	assert.Equal(t, []string{"engineer"}, spec.Keywords)
}

func TestParseProfile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown label", "labels:\n  - name: Hobbies\n"},
		{"duplicate label", "labels:\n  - name: Skills\n  - name: skills\n"},
		{"fuzzy out of range", "thresholds:\n  fuzzy_threshold: 150\n"},
		{"max below min", "thresholds:\n  candidate_min_len: 10\n  candidate_max_len: 5\n"},
		{"bad region", "default_region: MYS\n"},
		{"bad yaml", "labels: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProfile([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: file\n"), 0644))

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "file", p.Name)

	_, err = LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
