package classification

import (
	"fmt"
	"strings"
)

// Category is the bucket a hole-card combo falls into on a given board.
// Values are ordered from weakest to strongest; Unknown is the zero value
// and means the hand could not be classified yet.
type Category uint8

const (
	Unknown Category = iota
	HighCard
	StraightDraw
	FlushDraw
	BoardPair
	Underpair
	BottomPair
	MiddlePair
	TopPair
	Overpair
	TwoPair
	Trips
	Set
	Straight
	Flush
	FullHouse
	Quads
)

// NumCategories is the number of classifiable categories (Unknown excluded).
const NumCategories = int(Quads)

var categoryNames = [...]string{
	Unknown:      "Unknown",
	HighCard:     "High Card",
	StraightDraw: "Straight Draw",
	FlushDraw:    "Flush Draw",
	BoardPair:    "Board Pair",
	Underpair:    "Underpair",
	BottomPair:   "Bottom Pair",
	MiddlePair:   "Middle Pair",
	TopPair:      "Top Pair",
	Overpair:     "Overpair",
	TwoPair:      "Two Pair",
	Trips:        "Trips",
	Set:          "Set",
	Straight:     "Straight",
	Flush:        "Flush",
	FullHouse:    "Full House",
	Quads:        "Quads",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Unknown"
}

// Strength is the fixed comparison rank: High Card is 0 and Quads is 15.
// Unknown reports -1.
func (c Category) Strength() int {
	if c == Unknown || c > Quads {
		return -1
	}
	return int(c) - 1
}

// Beats reports whether c is strictly stronger than other.
func (c Category) Beats(other Category) bool {
	return c.Strength() > other.Strength()
}

// Valid reports whether c is one of the classifiable categories.
func (c Category) Valid() bool {
	return c >= HighCard && c <= Quads
}

// Categories returns every classifiable category, strongest first.
func Categories() []Category {
	out := make([]Category, 0, NumCategories)
	for c := Quads; c >= HighCard; c-- {
		out = append(out, c)
	}
	return out
}

// ParseCategory parses a category name, ignoring case, spaces, dashes and
// underscores ("top pair", "TopPair", "full-house").
func ParseCategory(s string) (Category, error) {
	want := normalizeName(s)
	for c := HighCard; c <= Quads; c++ {
		if normalizeName(c.String()) == want {
			return c, nil
		}
	}
	return Unknown, fmt.Errorf("unknown category %q", s)
}

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category name.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(s))
}
