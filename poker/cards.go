// Package poker provides the bit-packed card model shared by the range and
// classification packages.
package poker

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// ErrInvalidCard is returned when a card token cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// Card represents a single card as a bit position in a uint64.
// Layout: [13 clubs][13 diamonds][13 hearts][13 spades], deuce first.
type Card uint64

// Hand is a set of cards, one bit per card.
type Hand uint64

// Suit constants
const (
	Clubs    uint8 = 0
	Diamonds uint8 = 1
	Hearts   uint8 = 2
	Spades   uint8 = 3
)

// Rank constants (0-12 for 2-A)
const (
	Two   uint8 = 0
	Three uint8 = 1
	Four  uint8 = 2
	Five  uint8 = 3
	Six   uint8 = 4
	Seven uint8 = 5
	Eight uint8 = 6
	Nine  uint8 = 7
	Ten   uint8 = 8
	Jack  uint8 = 9
	Queen uint8 = 10
	King  uint8 = 11
	Ace   uint8 = 12
)

// RankMask covers the 13 rank bits of one suit.
const RankMask = 0x1FFF

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
)

// SuitOrder is the display and enumeration order of suits.
var SuitOrder = [4]uint8{Spades, Hearts, Diamonds, Clubs}

var suitSymbols = [4]string{"♣", "♦", "♥", "♠"}

// NewCard creates a card from rank and suit.
func NewCard(rank, suit uint8) Card {
	offset := suit*13 + rank
	return Card(1) << offset
}

// Valid reports whether c is exactly one of the 52 cards.
func (c Card) Valid() bool {
	return c != 0 && bits.OnesCount64(uint64(c)) == 1 && bits.TrailingZeros64(uint64(c)) < 52
}

func (c Card) position() uint8 {
	if c == 0 {
		return 255
	}
	return uint8(bits.TrailingZeros64(uint64(c)))
}

// Rank returns the rank of the card (0-12).
func (c Card) Rank() uint8 {
	pos := c.position()
	if pos == 255 {
		return 255
	}
	return pos % 13
}

// Suit returns the suit of the card (0-3).
func (c Card) Suit() uint8 {
	pos := c.position()
	if pos == 255 {
		return 255
	}
	return pos / 13
}

// Value returns the numeric rank value, 2 through 14 with the ace high.
func (c Card) Value() int {
	return RankValue(c.Rank())
}

// RankValue converts a 0-12 rank to its 2-14 value.
func RankValue(rank uint8) int {
	return int(rank) + 2
}

// String returns the short form, e.g. "As" or "Td".
func (c Card) String() string {
	rank, suit := c.Rank(), c.Suit()
	if rank > 12 || suit > 3 {
		return "??"
	}
	return string(rankChars[rank]) + string(suitChars[suit])
}

// Symbol returns the card with a suit glyph, e.g. "A♠".
func (c Card) Symbol() string {
	rank, suit := c.Rank(), c.Suit()
	if rank > 12 || suit > 3 {
		return "??"
	}
	return string(rankChars[rank]) + suitSymbols[suit]
}

// RankChar returns the notation character for a 0-12 rank.
func RankChar(rank uint8) byte {
	if rank > 12 {
		return '?'
	}
	return rankChars[rank]
}

// ParseRank parses a rank character such as 'A' or 't'.
func ParseRank(c byte) (uint8, bool) {
	i := strings.IndexByte(rankChars, upper(c))
	if i < 0 {
		return 0, false
	}
	return uint8(i), true
}

// ParseSuit parses a suit character in either case.
func ParseSuit(c byte) (uint8, bool) {
	i := strings.IndexByte(suitChars, lower(c))
	if i < 0 {
		return 0, false
	}
	return uint8(i), true
}

// ParseCard parses a string like "As" into a Card.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	rank, ok := ParseRank(s[0])
	if !ok {
		return 0, fmt.Errorf("%w: bad rank %q in %q", ErrInvalidCard, s[0], s)
	}
	suit, ok := ParseSuit(s[1])
	if !ok {
		return 0, fmt.Errorf("%w: bad suit %q in %q", ErrInvalidCard, s[1], s)
	}
	return NewCard(rank, suit), nil
}

// ParseCards parses a run of cards such as "AsKd", "As Kd" or "As,Kd".
// Duplicates are returned as-is; callers that need distinct cards check
// them separately.
func ParseCards(s string) ([]Card, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', ',', '\t':
			return -1
		}
		return r
	}, s)
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length card string %q", ErrInvalidCard, s)
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i/2+1, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}

// MustParseHand parses cards into a Hand and panics on error.
func MustParseHand(s string) Hand {
	return NewHand(MustParseCards(s)...)
}

// FormatCards joins cards with spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// NewHand creates a hand from multiple cards.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= Hand(c)
	}
	return h
}

// AddCard adds a card to the hand.
func (h *Hand) AddCard(c Card) {
	*h |= Hand(c)
}

// HasCard checks if the hand contains a specific card.
func (h Hand) HasCard(c Card) bool {
	return (h & Hand(c)) != 0
}

// Overlaps reports whether the two hands share any card.
func (h Hand) Overlaps(other Hand) bool {
	return h&other != 0
}

// CountCards returns the number of cards in the hand.
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// GetSuitMask returns the cards of a specific suit as a rank bitmask.
func (h Hand) GetSuitMask(suit uint8) uint16 {
	offset := suit * 13
	return uint16((h >> offset) & RankMask)
}

// GetRankMask returns a bitmask of which ranks are present in any suit.
func (h Hand) GetRankMask() uint16 {
	var mask uint16
	for suit := range uint8(4) {
		mask |= h.GetSuitMask(suit)
	}
	return mask
}

// Cards returns the cards in the hand, highest rank first and in SuitOrder
// within a rank.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.CountCards())
	for rank := int(Ace); rank >= 0; rank-- {
		for _, suit := range SuitOrder {
			c := NewCard(uint8(rank), suit)
			if h.HasCard(c) {
				cards = append(cards, c)
			}
		}
	}
	return cards
}

// String returns the cards in the hand separated by spaces.
func (h Hand) String() string {
	return FormatCards(h.Cards())
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
