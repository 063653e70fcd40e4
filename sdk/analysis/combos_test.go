package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/rangeboard/poker"
)

func TestCombosMatchComboCount(t *testing.T) {
	t.Parallel()

	for _, l := range AllLabels() {
		combos := Combos(l)
		require.Len(t, combos, l.ComboCount(), l.String())

		seen := make(map[poker.Hand]bool, len(combos))
		for _, c := range combos {
			h := c.Hand()
			assert.Equal(t, 2, h.CountCards(), "%s has a repeated card", c)
			assert.False(t, seen[h], "%s repeated in %s", c, l)
			seen[h] = true
			assert.Equal(t, l, c.Label(), "combo %s does not belong to %s", c, l)
			assert.GreaterOrEqual(t, c.First.Rank(), c.Second.Rank())
		}
	}
}

func TestCombosOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"AsAh", "AsAd", "AsAc", "AhAd", "AhAc", "AdAc"}, comboStrings(Combos(MustParseLabel("AA"))))
	assert.Equal(t, []string{"AsKs", "AhKh", "AdKd", "AcKc"}, comboStrings(Combos(MustParseLabel("AKs"))))

	offsuit := comboStrings(Combos(MustParseLabel("AKo")))
	assert.Equal(t, []string{"AsKh", "AsKd", "AsKc", "AhKs"}, offsuit[:4])
	assert.Equal(t, "AcKd", offsuit[11])
}

func TestAvailableCombos(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		label string
		dead  string
		want  int
	}{
		{"no dead cards", "AA", "", 6},
		{"one ace dead", "AA", "As", 3},
		{"two aces dead", "AA", "As Ah", 1},
		{"three aces dead", "AA", "As Ah Ad", 0},
		{"suited blocked by one card", "AKs", "Ks", 3},
		{"offsuit with one of each", "AKo", "As Kh", 7},
		{"unrelated dead cards", "AKo", "2c 3d 7h", 12},
		{"all kings gone", "KQs", "Ks Kh Kd Kc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var dead poker.Hand
			if tt.dead != "" {
				dead = poker.MustParseHand(tt.dead)
			}
			got := AvailableCombos(MustParseLabel(tt.label), dead)
			assert.Len(t, got, tt.want)
			for _, c := range got {
				assert.False(t, c.Hand().Overlaps(dead), "%s uses a dead card", c)
			}
		})
	}
}

func TestAvailableCombosSubsetAndMonotonic(t *testing.T) {
	t.Parallel()

	deadSeq := poker.MustParseCards("As Kh Qd Js Ac Kd 7h 2c")
	for _, l := range AllLabels() {
		all := comboStrings(Combos(l))
		var dead poker.Hand
		prev := len(all)
		for _, c := range deadSeq {
			dead.AddCard(c)
			live := comboStrings(AvailableCombos(l, dead))
			assert.Subset(t, all, live, "%s with dead %s", l, dead)
			assert.LessOrEqual(t, len(live), prev, "%s grew when adding %s", l, c)
			assert.True(t, isSubsequence(live, all), "%s lost combo order", l)
			prev = len(live)
		}
	}
}

func comboStrings(combos []Combo) []string {
	out := make([]string, len(combos))
	for i, c := range combos {
		out[i] = c.String()
	}
	return out
}

func isSubsequence(sub, full []string) bool {
	i := 0
	for _, s := range full {
		if i < len(sub) && sub[i] == s {
			i++
		}
	}
	return i == len(sub)
}
