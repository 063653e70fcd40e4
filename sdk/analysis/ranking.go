package analysis

import "math"

// TotalCombos is the number of two-card combos in a full, unblocked range.
const TotalCombos = 1326

// strengthOrder ranks all 169 labels for opening ranges, strongest first.
// It only drives percentage selection; classification never reads it.
var strengthOrder = [...]string{
	"AA", "KK", "QQ", "AKs", "JJ", "AQs", "KQs", "AJs", "AKo", "TT",
	"ATs", "KJs", "QJs", "JTs", "99", "AQo", "A9s", "KTs", "QTs", "T9s",
	"88", "A8s", "KQo", "K9s", "J9s", "T8s", "A7s", "A5s", "A6s", "98s",
	"77", "A4s", "AJo", "Q9s", "A3s", "K8s", "J8s", "A2s", "87s", "97s",
	"66", "KJo", "T7s", "QJo", "ATo", "K7s", "Q8s", "76s", "86s", "55",
	"JTo", "K6s", "KTo", "J7s", "65s", "QTo", "A9o", "96s", "75s", "54s",
	"44", "T6s", "K5s", "K4s", "Q7s", "85s", "T9o", "64s", "J9o", "33",
	"K3s", "Q6s", "K2s", "J6s", "53s", "T8o", "98o", "74s", "22", "Q5s",
	"Q4s", "43s", "J5s", "Q3s", "63s", "T5s", "84s", "Q2s", "J4s", "87o",
	"97o", "J3s", "52s", "J2s", "T4s", "73s", "42s", "76o", "T3s", "86o",
	"65o", "T2s", "95s", "93s", "62s", "32s", "54o", "94s", "92s", "83s",
	"82s", "72s", "75o", "A8o", "K9o", "96o", "J8o", "Q9o", "A7o", "A6o",
	"A5o", "A4o", "A3o", "A2o", "K8o", "K7o", "K6o", "K5o", "K4o", "K3o",
	"K2o", "Q8o", "Q7o", "Q6o", "Q5o", "Q4o", "Q3o", "Q2o", "J7o", "J6o",
	"J5o", "J4o", "J3o", "J2o", "T7o", "T6o", "T5o", "T4o", "T3o", "T2o",
	"85o", "84o", "83o", "82o", "95o", "94o", "93o", "92o",
	"74o", "73o", "72o", "64o", "63o", "62o", "53o", "52o",
	"43o", "42o", "32o",
}

var (
	rankedLabels []Label
	// strengthIndex is keyed by matrix cell.
	strengthIndex [13][13]int
)

func init() {
	rankedLabels = make([]Label, len(strengthOrder))
	for i, s := range strengthOrder {
		l := MustParseLabel(s)
		rankedLabels[i] = l
		row, col := l.Cell()
		strengthIndex[row][col] = i
	}
}

// RankedLabels returns all 169 labels, strongest first.
func RankedLabels() []Label {
	out := make([]Label, len(rankedLabels))
	copy(out, rankedLabels)
	return out
}

// StrengthIndex returns the label's position in the strength ordering,
// 0 for aces.
func StrengthIndex(l Label) int {
	row, col := l.Cell()
	return strengthIndex[row][col]
}

// LabelsForPercentage returns the strongest labels covering pct percent of
// all combos. Labels are added greedily while the running combo count is
// below the target, so the last label may overshoot it; the selection never
// stops short once it has started.
func LabelsForPercentage(pct float64) Range {
	target := int(math.Round(pct / 100 * TotalCombos))
	labels := make([]Label, 0, len(rankedLabels))
	running := 0
	for _, l := range rankedLabels {
		if running >= target {
			break
		}
		labels = append(labels, l)
		running += l.ComboCount()
	}
	return NewRange(labels...)
}
