// Package fuzzy provides string-similarity scoring and near-duplicate collapsing.
package fuzzy

import (
	"sort"
	"strings"
	"unicode"

	"github.com/agext/levenshtein"
)

// indel scores substitutions as a delete plus an insert, so Similarity yields
// the normalized insert/delete ratio over the combined length.
var indel = levenshtein.NewParams().SubCost(2)

// TokenSort lowercases s, splits it into alphanumeric tokens and joins them
// back in sorted order.
func TokenSort(s string) string {
	tokens := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// TokenSortRatio returns the similarity of a and b on a 0..100 scale after
// sorting their tokens. Word order and punctuation do not affect the score.
func TokenSortRatio(a, b string) float64 {
	x, y := TokenSort(a), TokenSort(b)
	if x == "" && y == "" {
		return 100
	}
	if x == "" || y == "" {
		return 0
	}
	return levenshtein.Similarity(x, y, indel) * 100
}

// Item is a scored value taking part in near-duplicate collapsing.
// Pos orders the output; Key is the string compared for similarity.
type Item struct {
	Key   string
	Score float64
	Pos   int
}

// Dedup collapses items whose keys are at least threshold similar (0..100).
// Items are considered strongest first (score, then longer key, then key
// order) and one survives per similarity cluster. The result holds indexes
// into items, sorted by Pos so the outcome does not depend on input order.
func Dedup(items []Item, threshold float64) []int {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		x, y := items[order[a]], items[order[b]]
		if x.Score != y.Score {
			return x.Score > y.Score
		}
		if len(x.Key) != len(y.Key) {
			return len(x.Key) > len(y.Key)
		}
		if x.Key != y.Key {
			return x.Key < y.Key
		}
		return x.Pos < y.Pos
	})

	var kept []int
	for _, idx := range order {
		dup := false
		for _, k := range kept {
			if TokenSortRatio(items[idx].Key, items[k].Key) >= threshold {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, idx)
		}
	}

	sort.SliceStable(kept, func(a, b int) bool {
		x, y := items[kept[a]], items[kept[b]]
		if x.Pos != y.Pos {
			return x.Pos < y.Pos
		}
		return kept[a] < kept[b]
	})
	return kept
}

// Strings collapses near-duplicate strings with equal weight. Output keeps
// input order.
func Strings(values []string, threshold float64) []string {
	items := make([]Item, len(values))
	for i, v := range values {
		items[i] = Item{Key: v, Score: 1, Pos: i}
	}
	idx := Dedup(items, threshold)
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		out = append(out, values[i])
	}
	return out
}
