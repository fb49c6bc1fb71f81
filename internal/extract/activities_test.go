package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/types"
)

func TestSplitActivities_Bullets(t *testing.T) {
	text := "Activities\n- Robotics Club President 2019\n- Hackathon Winner 2020"
	spans := SplitActivities(text)
	require.Len(t, spans, 2)
	assert.Equal(t, "- Robotics Club President 2019", text[spans[0].Start:spans[0].End])
	assert.Equal(t, "- Hackathon Winner 2020", text[spans[1].Start:spans[1].End])
}

func TestSplitActivities_BlankLines(t *testing.T) {
	text := "Volunteer Tutor\nTaught maths to kids\n\nCharity Run Organizer\nRaised RM 5,000"
	spans := SplitActivities(text)
	require.Len(t, spans, 2)
	assert.Equal(t, "Volunteer Tutor\nTaught maths to kids", text[spans[0].Start:spans[0].End])
}

func TestSplitActivities_HeadingOnly(t *testing.T) {
	assert.Empty(t, SplitActivities("Projects"))
}

func TestActivityBlock(t *testing.T) {
	text := "- Robotics Club President 2019\n- Hackathon Winner 2020"
	entities := []types.Entity{
		{Text: "Hackathon Winner", Label: types.EntityAward, Score: 0.8, Start: 33, End: 49},
	}

	first := ActivityBlock(text, Span{Start: 0, End: 30}, entities)
	assert.Empty(t, first.Titles)
	require.Len(t, first.Dates, 1)
	assert.Equal(t, "2019", first.Dates[0].Start)
	assert.Equal(t, "Robotics Club President", first.Description)

	second := ActivityBlock(text, Span{Start: 31, End: len(text)}, entities)
	require.Len(t, second.Titles, 1)
	assert.Equal(t, "Hackathon Winner", second.Titles[0].Text)
	assert.Empty(t, second.Description)
}
