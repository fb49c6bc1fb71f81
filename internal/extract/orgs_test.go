package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/types"
)

func TestInstitutions(t *testing.T) {
	text := "Bachelor of Computer Science University Malaya\nDiploma in Business, Sunway College 2014"
	degrees := FindDegrees(text, 30)
	require.Len(t, degrees, 2)

	got := types.Texts(Institutions(text, degrees))
	assert.Equal(t, []string{"University Malaya", "Sunway College"}, got)
}

func TestOrgEntities_TrimsCutSpans(t *testing.T) {
	text := "Software Engineer ABC Technologies"
	entities := []types.Entity{
		{Text: text, Label: types.EntityOrganization, Score: 0.8, Start: 0, End: len(text)},
		{Text: "Software Engineer", Label: types.EntityOrganization, Score: 0.8, Start: 0, End: 17},
		{Text: "Kuala Lumpur", Label: types.EntityLocation, Score: 0.8, Start: 0, End: 5},
	}
	got := OrgEntities(text, entities, types.FieldCompany, [][2]int{{0, 17}})
	require.Len(t, got, 1)
	assert.Equal(t, "ABC Technologies", got[0].Text)
	assert.Equal(t, types.FieldCompany, got[0].Field)
}

func TestCompanyAfter(t *testing.T) {
	text := "Backend Engineer @ Grab Holdings, Singapore"
	c, ok := CompanyAfter(text, len("Backend Engineer"))
	require.True(t, ok)
	assert.Equal(t, "Grab Holdings", c.Text)

	_, ok = CompanyAfter("Intern, Kuala Lumpur", len("Intern"))
	assert.False(t, ok)

	_, ok = CompanyAfter("Intern", len("Intern"))
	assert.False(t, ok)
}

func TestTrimOverlap(t *testing.T) {
	s, e, ok := trimOverlap(0, 10, [][2]int{{0, 4}})
	assert.True(t, ok)
	assert.Equal(t, []int{4, 10}, []int{s, e})

	s, e, ok = trimOverlap(0, 10, [][2]int{{6, 12}})
	assert.True(t, ok)
	assert.Equal(t, []int{0, 6}, []int{s, e})

	_, _, ok = trimOverlap(2, 5, [][2]int{{0, 10}})
	assert.False(t, ok)
}
