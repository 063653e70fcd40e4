package analysis

import (
	"github.com/lox/rangeboard/poker"
)

// Combo is one concrete two-card holding. First is never lower in rank than
// Second.
type Combo struct {
	First  poker.Card
	Second poker.Card
}

// Hand returns the combo as a card set.
func (c Combo) Hand() poker.Hand {
	return poker.NewHand(c.First, c.Second)
}

// Cards returns both cards, higher first.
func (c Combo) Cards() []poker.Card {
	return []poker.Card{c.First, c.Second}
}

// Label returns the combo's starting-hand label.
func (c Combo) Label() Label {
	return LabelOf(c.First, c.Second)
}

func (c Combo) String() string {
	return c.First.String() + c.Second.String()
}

// MarshalText encodes the combo as "AhKh".
func (c Combo) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Combos expands a label into every concrete combo: 6 for a pair, 4 suited,
// 12 offsuit. The order is fixed, walking suits in poker.SuitOrder.
func Combos(l Label) []Combo {
	combos := make([]Combo, 0, l.ComboCount())
	switch l.Kind {
	case Pair:
		for i, s1 := range poker.SuitOrder {
			for _, s2 := range poker.SuitOrder[i+1:] {
				combos = append(combos, Combo{poker.NewCard(l.High, s1), poker.NewCard(l.Low, s2)})
			}
		}
	case Suited:
		for _, s := range poker.SuitOrder {
			combos = append(combos, Combo{poker.NewCard(l.High, s), poker.NewCard(l.Low, s)})
		}
	case Offsuit:
		for _, s1 := range poker.SuitOrder {
			for _, s2 := range poker.SuitOrder {
				if s1 == s2 {
					continue
				}
				combos = append(combos, Combo{poker.NewCard(l.High, s1), poker.NewCard(l.Low, s2)})
			}
		}
	}
	return combos
}

// AvailableCombos returns the label's combos that share no card with dead,
// in the same order as Combos. An empty result is not an error.
func AvailableCombos(l Label, dead poker.Hand) []Combo {
	all := Combos(l)
	if dead == 0 {
		return all
	}
	live := all[:0]
	for _, c := range all {
		if !c.Hand().Overlaps(dead) {
			live = append(live, c)
		}
	}
	return live
}
