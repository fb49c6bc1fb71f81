package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/types"
)

func TestCertifications_FullSegment(t *testing.T) {
	text := "Certifications\n" +
		"• AWS Certified Solutions Architect 2021\n" +
		"• Certified Scrum Master (Scrum Alliance), issued Jan 2020\n" +
		"• Google Data Analytics Certificate\n" +
		"2022\n" +
		"• PMP 2018 CCNA 2016"

	got := Certifications(text, true)

	assert.Equal(t, []types.CertificationRecord{
		{Title: "AWS Certified Solutions Architect", Issuer: "AWS", Date: "2021"},
		{Title: "Certified Scrum Master (Scrum Alliance)", Issuer: "Scrum Alliance", Date: "2020-01"},
		{Title: "Google Data Analytics Certificate", Issuer: "Google", Date: "2022"},
		{Title: "PMP", Date: "2018"},
		{Title: "CCNA", Date: "2016"},
	}, got)
}

func TestCertifications_TrailingTitleWithoutDate(t *testing.T) {
	got := Certifications("Oracle Certified Java Programmer", true)
	require.Len(t, got, 1)
	assert.Equal(t, "Oracle Certified Java Programmer", got[0].Title)
	assert.Empty(t, got[0].Date)
	assert.Equal(t, "Oracle", got[0].Issuer)
}

func TestCertifications_KeywordAnchoredOutsideSection(t *testing.T) {
	text := "Skills: Python, SQL, Microsoft Certified Azure Fundamentals 2022\nBuilt dashboards in 2021"
	got := Certifications(text, false)
	require.Len(t, got, 1)
	assert.Equal(t, "Microsoft Certified Azure Fundamentals", got[0].Title)
	assert.Equal(t, "2022", got[0].Date)
}

func TestCertifications_Empty(t *testing.T) {
	assert.Empty(t, Certifications("Built dashboards in 2021", false))
	assert.Empty(t, Certifications("Certifications", true))
}
