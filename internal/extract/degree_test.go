package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/types"
)

func degreeTexts(ds []types.DegreeCandidate) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Text)
	}
	return out
}

func TestFindDegrees(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		degree string
		major  string
		score  float64
	}{
		{"full prefix", "Bachelor of Computer Science", DegreeBachelor, "Computer Science", 0.9},
		{"broad field with honours", "Bachelor of Science (Hons) in Computer Science, University of Malaya", DegreeBachelor, "Computer Science", 0.9},
		{"master", "Master's degree in Data Science", DegreeMaster, "Data Science", 0.9},
		{"diploma", "Diploma in Information Technology", DegreeDiploma, "Information Technology", 0.9},
		{"doctorate", "PhD in Physics", DegreeDoctorate, "Physics", 0.9},
		{"abbreviation", "BSc Computer Science", DegreeBachelor, "Computer Science", 0.8},
		{"dotted abbreviation", "M.Sc. in Artificial Intelligence", DegreeMaster, "Artificial Intelligence", 0.8},
		{"short abbreviation", "BA in Economics", DegreeBachelor, "Economics", 0.8},
		{"business default major", "MBA, 2020", DegreeMaster, "Business Administration", 0.8},
		{"major stops at institution", "Bachelor of Computer Science University Malaya", DegreeBachelor, "Computer Science", 0.9},
		{"major stops at grade", "Bachelor of Mechanical Engineering First Class Honours", DegreeBachelor, "Mechanical Engineering", 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindDegrees(tt.text, 30)
			require.NotEmpty(t, got)
			assert.Equal(t, tt.degree, got[0].Degree)
			assert.Equal(t, tt.major, got[0].Major)
			assert.Equal(t, tt.score, got[0].Score)
			assert.Equal(t, DegreeDisplay(tt.degree, tt.major), got[0].Text)
		})
	}
}

func TestFindDegrees_InfersPrefixFromContext(t *testing.T) {
	got := FindDegrees("Bachelor of Business, Major in Finance", 30)
	assert.Contains(t, degreeTexts(got), "Bachelor of Business")
	assert.Contains(t, degreeTexts(got), "Bachelor of Finance")

	got = FindDegrees("Degree in Psychology", 30)
	require.Len(t, got, 1)
	assert.Equal(t, "Psychology", got[0].Text)
	assert.Empty(t, got[0].Degree)
	assert.Equal(t, scoreNoPrefix, got[0].Score)
}

func TestFindDegrees_NoMatch(t *testing.T) {
	assert.Empty(t, FindDegrees("Worked on bachelor party planning", 30))
	assert.Empty(t, FindDegrees("", 30))
}

func TestDegrees_CollapsesFuzzyVariants(t *testing.T) {
	forward := Degrees("Bachelor of Computer Science\nBSc Computer Science", 30, 92)
	backward := Degrees("BSc Computer Science\nBachelor of Computer Science", 30, 92)

	require.Len(t, forward, 1)
	require.Len(t, backward, 1)
	assert.Equal(t, "Bachelor of Computer Science", forward[0].Text)
	assert.Equal(t, forward[0].Text, backward[0].Text)
	assert.Equal(t, 0.9, forward[0].Score)
	assert.Equal(t, 0.9, backward[0].Score)
}

func TestDedupDegrees_KeepsDistinct(t *testing.T) {
	got := Degrees("Bachelor of Computer Science\nMaster of Data Science", 30, 92)
	assert.Equal(t, []string{"Bachelor of Computer Science", "Master of Data Science"}, degreeTexts(got))
}

func TestParseDegree(t *testing.T) {
	d := ParseDegree("B.Eng Electrical", 30)
	assert.Equal(t, DegreeBachelor, d.Degree)
	assert.Equal(t, "Electrical", d.Major)

	d = ParseDegree("  Computing ", 30)
	assert.Empty(t, d.Degree)
	assert.Equal(t, "Computing", d.Text)
}

func TestDegreeDisplay(t *testing.T) {
	assert.Equal(t, "Master of Data Science", DegreeDisplay(DegreeMaster, "Data Science"))
	assert.Equal(t, "Finance", DegreeDisplay("", "Finance"))
	assert.Equal(t, "Diploma", DegreeDisplay(DegreeDiploma, ""))
}
