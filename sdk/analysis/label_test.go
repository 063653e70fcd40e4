package analysis

import (
	"errors"
	"testing"

	"github.com/lox/rangeboard/poker"
)

func TestParseLabel(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		kind    LabelKind
		wantErr bool
	}{
		{"AA", "AA", Pair, false},
		{"AKs", "AKs", Suited, false},
		{"AKo", "AKo", Offsuit, false},
		{"KAs", "AKs", Suited, false},
		{"t9O", "T9o", Offsuit, false},
		{"72s", "72s", Suited, false},
		{"AK", "", 0, true},
		{"AAs", "", 0, true},
		{"A1s", "", 0, true},
		{"AKx", "", 0, true},
		{"A", "", 0, true},
		{"AKso", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLabel(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidLabel) {
					t.Errorf("ParseLabel(%q) error = %v, want ErrInvalidLabel", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLabel(%q) unexpected error: %v", tt.input, err)
			}
			if got.String() != tt.want || got.Kind != tt.kind {
				t.Errorf("ParseLabel(%q) = %s (%s), want %s (%s)", tt.input, got, got.Kind, tt.want, tt.kind)
			}
		})
	}
}

func TestLabelOf(t *testing.T) {
	tests := []struct {
		cards string
		want  string
	}{
		{"As Kd", "AKo"},
		{"Kd As", "AKo"},
		{"7h 7c", "77"},
		{"5s 6s", "65s"},
		{"2c 3c", "32s"},
		{"Th 9d", "T9o"},
	}

	for _, tt := range tests {
		cards := poker.MustParseCards(tt.cards)
		if got := LabelOf(cards[0], cards[1]).String(); got != tt.want {
			t.Errorf("LabelOf(%s) = %s, want %s", tt.cards, got, tt.want)
		}
	}
}

func TestNewLabelNormalizesKind(t *testing.T) {
	if l := NewLabel(poker.Seven, poker.Seven, Suited); l.Kind != Pair {
		t.Errorf("equal ranks should make a pair, got %s", l.Kind)
	}
	if l := NewLabel(poker.Two, poker.Ace, Pair); l.Kind != Offsuit || l.String() != "A2o" {
		t.Errorf("unequal ranks with Pair kind = %s (%s)", l, l.Kind)
	}
}

func TestComboCountTotals(t *testing.T) {
	var pairs, suited, offsuit, total int
	for _, l := range AllLabels() {
		switch l.Kind {
		case Pair:
			pairs++
		case Suited:
			suited++
		case Offsuit:
			offsuit++
		}
		total += l.ComboCount()
	}
	if pairs != 13 || suited != 78 || offsuit != 78 {
		t.Errorf("label shapes = %d/%d/%d, want 13/78/78", pairs, suited, offsuit)
	}
	if total != TotalCombos {
		t.Errorf("total combos = %d, want %d", total, TotalCombos)
	}
}

func TestMatrixLayout(t *testing.T) {
	m := Matrix()

	checks := []struct {
		row, col int
		want     string
	}{
		{0, 0, "AA"},
		{0, 1, "AKs"},
		{1, 0, "AKo"},
		{12, 12, "22"},
		{0, 12, "A2s"},
		{12, 0, "A2o"},
		{4, 5, "T9s"},
		{5, 4, "T9o"},
	}
	for _, c := range checks {
		if got := m[c.row][c.col].String(); got != c.want {
			t.Errorf("Matrix()[%d][%d] = %s, want %s", c.row, c.col, got, c.want)
		}
	}

	seen := make(map[Label]bool)
	for row := range 13 {
		for col := range 13 {
			l := m[row][col]
			if seen[l] {
				t.Fatalf("duplicate label %s in matrix", l)
			}
			seen[l] = true

			r, c := l.Cell()
			if r != row || c != col {
				t.Errorf("%s.Cell() = (%d,%d), want (%d,%d)", l, r, c, row, col)
			}
		}
	}
}

func TestRankedLabelsCoverMatrix(t *testing.T) {
	ranked := RankedLabels()
	if len(ranked) != 169 {
		t.Fatalf("RankedLabels() has %d labels, want 169", len(ranked))
	}
	if ranked[0].String() != "AA" || ranked[168].String() != "32o" {
		t.Errorf("ranking runs %s..%s, want AA..32o", ranked[0], ranked[168])
	}

	seen := make(map[Label]bool)
	for i, l := range ranked {
		if seen[l] {
			t.Fatalf("duplicate ranked label %s", l)
		}
		seen[l] = true
		if StrengthIndex(l) != i {
			t.Errorf("StrengthIndex(%s) = %d, want %d", l, StrengthIndex(l), i)
		}
	}

	// The returned slice is a copy.
	ranked[0] = MustParseLabel("32o")
	if RankedLabels()[0].String() != "AA" {
		t.Error("RankedLabels() exposed its backing array")
	}
}
