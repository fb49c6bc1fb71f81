package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/types"
)

func TestFindTitles(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"modifiers and head", "Senior Software Engineer at ABC", []string{"Senior Software Engineer"}},
		{"all caps", "SENIOR SOFTWARE ENGINEER", []string{"Senior Software Engineer"}},
		{"head of", "Head of Engineering, XYZ", []string{"Head of Engineering"}},
		{"two titles", "Data Analyst | Project Manager", []string{"Data Analyst", "Project Manager"}},
		{"single word allowed", "Intern", []string{"Intern"}},
		{"single word rejected", "Developer", nil},
		{"lowercase description", "worked as a software engineer", nil},
		{"blacklisted word before", "Supported Senior Manager in daily tasks", nil},
		{"blacklisted word before single", "Reported to the Manager", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := types.Texts(FindTitles(tt.text))
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindTitles_Scores(t *testing.T) {
	got := FindTitles("Manager\nLead Engineer")
	require.Len(t, got, 2)
	assert.Equal(t, scoreSingleWordTitle, got[0].Score)
	assert.Equal(t, scoreTitle, got[1].Score)
	assert.Equal(t, "Lead Engineer", "Manager\nLead Engineer"[got[1].Start:got[1].End])
}

func TestJobTitles_HeaderOnly(t *testing.T) {
	text := "ABC Technologies\n2019 - 2021\nKuala Lumpur\nSenior Developer"
	assert.Empty(t, JobTitles(text, 3))
	assert.Equal(t, []string{"Senior Developer"}, types.Texts(JobTitles(text, 4)))
}

func TestValidTitle(t *testing.T) {
	assert.True(t, ValidTitle("Software Engineer"))
	assert.True(t, ValidTitle("Engineer"))
	assert.False(t, ValidTitle("Developer"))
	assert.False(t, ValidTitle("Providing Support Engineer"))
	assert.False(t, ValidTitle("software engineer"))
	assert.False(t, ValidTitle("  "))
}
