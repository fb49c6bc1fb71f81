package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	in := "John\tSmith\r\n\r\n\r\n\r\n-----\nＥｎｇｉｎｅｅｒ   at  ABC  "
	assert.Equal(t, "John Smith\n\nEngineer at ABC", CleanText(in))
	assert.Equal(t, "", CleanText(""))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "python", Key("Python"))
	assert.Equal(t, "python", Key("python "))
	assert.Equal(t, "machine learning", Key("  Machine \n Learning"))
}

func TestStripBullet(t *testing.T) {
	assert.Equal(t, "Led a team", StripBullet("• Led a team"))
	assert.Equal(t, "Led a team", StripBullet("- Led a team"))
	assert.Equal(t, "Led a team", StripBullet("2) Led a team"))
	assert.Equal(t, "Led a team", StripBullet("Led a team"))
}

func TestHeadLines(t *testing.T) {
	text := "first\n\nsecond\nthird\nfourth"
	assert.Equal(t, "first\n\nsecond", text[:HeadLines(text, 2)])
	assert.Equal(t, len(text), HeadLines(text, 10))
	assert.Equal(t, 0, HeadLines(text, 0))
}

func TestSentenceCase(t *testing.T) {
	assert.Equal(t, "Built backend services. Led migrations!", SentenceCase("built backend services. led migrations!"))
	assert.Equal(t, "Improved API latency by 40%", SentenceCase("improved API latency by 40%"))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Kuala Lumpur", TitleCase("kuala lumpur"))
	assert.Equal(t, "Software Engineer", TitleCase("SOFTWARE ENGINEER"))
	assert.Equal(t, "iOS", TitleCase("iOS"))
}

func TestIsAllCapsToken(t *testing.T) {
	assert.True(t, IsAllCapsToken("EDUCATION"))
	assert.True(t, IsAllCapsToken("AWS"))
	assert.False(t, IsAllCapsToken("Python"))
	assert.False(t, IsAllCapsToken("MACHINE LEARNING"))
	assert.False(t, IsAllCapsToken("2019"))
}

func TestRemoveSpans(t *testing.T) {
	out := RemoveSpans("Software Engineer ABC Technologies 2019 - 2021", "software engineer", "ABC Technologies")
	assert.Equal(t, "2019 - 2021", CollapseSpace(out))
}
