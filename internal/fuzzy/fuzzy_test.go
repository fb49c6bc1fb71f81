package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenSort(t *testing.T) {
	assert.Equal(t, "computer of science", TokenSort("Science of, Computer"))
	assert.Equal(t, "", TokenSort(" - "))
}

func TestTokenSortRatio(t *testing.T) {
	assert.Equal(t, 100.0, TokenSortRatio("Computer Science", "science computer"))
	assert.Equal(t, 100.0, TokenSortRatio("", ""))
	assert.Equal(t, 0.0, TokenSortRatio("Computer Science", ""))

	// "computer science" vs "computer sciences": 1 insertion over 33 runes.
	r := TokenSortRatio("Computer Science", "Computer Sciences")
	assert.InDelta(t, 96.97, r, 0.01)

	assert.Less(t, TokenSortRatio("Computer Science", "Mechanical Engineering"), 60.0)
}

func TestDedup_KeepsStrongest(t *testing.T) {
	items := []Item{
		{Key: "Computer Sciences", Score: 0.6, Pos: 0},
		{Key: "Computer Science", Score: 0.9, Pos: 1},
		{Key: "Business Administration", Score: 0.8, Pos: 2},
	}
	kept := Dedup(items, 92)
	require.Len(t, kept, 2)
	assert.Equal(t, 1, kept[0])
	assert.Equal(t, 2, kept[1])
}

func TestDedup_OrderIndependent(t *testing.T) {
	a := []Item{
		{Key: "Computer Science", Score: 0.8, Pos: 0},
		{Key: "computer  science", Score: 0.8, Pos: 1},
	}
	b := []Item{a[1], a[0]}

	ka := Dedup(a, 92)
	kb := Dedup(b, 92)
	require.Len(t, ka, 1)
	require.Len(t, kb, 1)
	assert.Equal(t, a[ka[0]].Key, b[kb[0]].Key)
}

func TestStrings(t *testing.T) {
	out := Strings([]string{"Go", "Python", "python", "Rust"}, 92)
	assert.Equal(t, []string{"Go", "Python", "Rust"}, out)
}
