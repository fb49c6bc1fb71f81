package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmails(t *testing.T) {
	got := Emails("Mail: John.Smith+cv@example.co.uk | backup john@x.com")
	require.Len(t, got, 2)
	assert.Equal(t, "John.Smith+cv@example.co.uk", got[0].Text)
	assert.Equal(t, "john@x.com", got[1].Text)
	assert.Equal(t, 1.0, got[0].Score)
	assert.Empty(t, Emails("no address @ here"))
}

func TestPhones(t *testing.T) {
	got := Phones("Tel: +60123456789", "MY")
	require.Len(t, got, 1)
	assert.Equal(t, "+60123456789", got[0].Text)
	assert.Equal(t, "+60123456789", "Tel: +60123456789"[got[0].Start:got[0].End])
}

func TestPhones_NationalFormatUsesRegion(t *testing.T) {
	got := Phones("(650) 253-0000 ext", "US")
	require.Len(t, got, 1)
	assert.Equal(t, "+16502530000", got[0].Text)
	assert.Equal(t, scorePhoneValid, got[0].Score)
}

func TestPhones_RejectsDatesAndShortRuns(t *testing.T) {
	assert.Empty(t, Phones("2019 - 2021", "MY"))
	assert.Empty(t, Phones("2015 - 2019 / 2020", "MY"))
	assert.Empty(t, Phones("ID 1234567", "MY"))
}
