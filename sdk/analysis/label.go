package analysis

import (
	"errors"
	"fmt"

	"github.com/lox/rangeboard/poker"
)

// ErrInvalidLabel is returned when a starting-hand label cannot be parsed.
var ErrInvalidLabel = errors.New("invalid hand label")

// LabelKind is the shape of a starting-hand label.
type LabelKind uint8

const (
	Pair LabelKind = iota
	Suited
	Offsuit
)

func (k LabelKind) String() string {
	switch k {
	case Pair:
		return "pair"
	case Suited:
		return "suited"
	case Offsuit:
		return "offsuit"
	default:
		return "unknown"
	}
}

// Label is one of the 169 canonical starting hands, e.g. "AKs", "77" or
// "T9o". High and Low are 0-12 ranks with High >= Low.
type Label struct {
	High uint8
	Low  uint8
	Kind LabelKind
}

// NewLabel builds a label from two ranks in either order. Equal ranks always
// make a pair regardless of kind.
func NewLabel(a, b uint8, kind LabelKind) Label {
	if a < b {
		a, b = b, a
	}
	if a == b {
		kind = Pair
	} else if kind == Pair {
		kind = Offsuit
	}
	return Label{High: a, Low: b, Kind: kind}
}

// ParseLabel parses "AA", "AKs" or "AKo". Rank order is normalized, so
// "KAs" parses as "AKs".
func ParseLabel(s string) (Label, error) {
	if len(s) < 2 || len(s) > 3 {
		return Label{}, fmt.Errorf("%w: %q", ErrInvalidLabel, s)
	}
	r1, ok1 := poker.ParseRank(s[0])
	r2, ok2 := poker.ParseRank(s[1])
	if !ok1 || !ok2 {
		return Label{}, fmt.Errorf("%w: bad rank in %q", ErrInvalidLabel, s)
	}

	if r1 == r2 {
		if len(s) == 3 {
			return Label{}, fmt.Errorf("%w: pocket pairs cannot have suited/offsuit modifier: %q", ErrInvalidLabel, s)
		}
		return NewLabel(r1, r2, Pair), nil
	}
	if len(s) == 2 {
		return Label{}, fmt.Errorf("%w: missing s/o modifier: %q", ErrInvalidLabel, s)
	}

	switch s[2] {
	case 's', 'S':
		return NewLabel(r1, r2, Suited), nil
	case 'o', 'O':
		return NewLabel(r1, r2, Offsuit), nil
	default:
		return Label{}, fmt.Errorf("%w: invalid modifier %q in %q", ErrInvalidLabel, s[2], s)
	}
}

// MustParseLabel parses a label and panics on error.
func MustParseLabel(s string) Label {
	l, err := ParseLabel(s)
	if err != nil {
		panic(err)
	}
	return l
}

// LabelOf returns the label of two hole cards.
func LabelOf(c1, c2 poker.Card) Label {
	kind := Offsuit
	if c1.Suit() == c2.Suit() {
		kind = Suited
	}
	return NewLabel(c1.Rank(), c2.Rank(), kind)
}

func (l Label) String() string {
	s := string([]byte{poker.RankChar(l.High), poker.RankChar(l.Low)})
	switch l.Kind {
	case Suited:
		return s + "s"
	case Offsuit:
		return s + "o"
	default:
		return s
	}
}

// ComboCount returns the number of concrete combos for the label: 6 for a
// pair, 4 suited, 12 offsuit.
func (l Label) ComboCount() int {
	switch l.Kind {
	case Pair:
		return 6
	case Suited:
		return 4
	default:
		return 12
	}
}

// Cell returns the label's position in the 13x13 matrix. Row and column 0
// are the ace; suited labels sit above the diagonal and offsuit below.
func (l Label) Cell() (row, col int) {
	hi, lo := int(poker.Ace-l.High), int(poker.Ace-l.Low)
	if l.Kind == Offsuit {
		return lo, hi
	}
	return hi, lo
}

// LabelAt returns the label in the given matrix cell.
func LabelAt(row, col int) Label {
	a, b := poker.Ace-uint8(row), poker.Ace-uint8(col)
	switch {
	case row == col:
		return NewLabel(a, b, Pair)
	case row < col:
		return NewLabel(a, b, Suited)
	default:
		return NewLabel(a, b, Offsuit)
	}
}

// MarshalText encodes the label in its notation form.
func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Matrix returns the 13x13 range grid, aces in the top-left corner.
func Matrix() [13][13]Label {
	var m [13][13]Label
	for row := range 13 {
		for col := range 13 {
			m[row][col] = LabelAt(row, col)
		}
	}
	return m
}

// AllLabels returns the 169 labels in matrix order, row by row.
func AllLabels() []Label {
	labels := make([]Label, 0, 169)
	for row := range 13 {
		for col := range 13 {
			labels = append(labels, LabelAt(row, col))
		}
	}
	return labels
}
