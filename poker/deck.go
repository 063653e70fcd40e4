package poker

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrNoCardsAvailable is returned when every card is dead.
var ErrNoCardsAvailable = errors.New("no cards available")

// deck holds the 52 cards in fixed order: ace to deuce, SuitOrder within a rank.
var deck = func() [52]Card {
	var cards [52]Card
	i := 0
	for rank := int(Ace); rank >= 0; rank-- {
		for _, suit := range SuitOrder {
			cards[i] = NewCard(uint8(rank), suit)
			i++
		}
	}
	return cards
}()

// FullDeck is the Hand containing all 52 cards.
const FullDeck Hand = 1<<52 - 1

// BuildDeck returns the 52-card deck in its fixed order.
func BuildDeck() []Card {
	cards := make([]Card, len(deck))
	copy(cards, deck[:])
	return cards
}

// RandomCard picks a uniformly random card that is not in dead.
func RandomCard(rng *rand.Rand, dead Hand) (Card, error) {
	live := make([]Card, 0, len(deck))
	for _, c := range deck {
		if !dead.HasCard(c) {
			live = append(live, c)
		}
	}
	if len(live) == 0 {
		return 0, ErrNoCardsAvailable
	}
	return live[rng.IntN(len(live))], nil
}

// RandomCards picks n distinct random cards, none of them in dead. Each pick
// is added to the dead set before the next one, so randomizing a flop cannot
// repeat a card.
func RandomCards(rng *rand.Rand, dead Hand, n int) ([]Card, error) {
	if remaining := (FullDeck &^ dead).CountCards(); n > remaining {
		return nil, fmt.Errorf("%w: want %d, %d left", ErrNoCardsAvailable, n, remaining)
	}
	cards := make([]Card, 0, n)
	for range n {
		c, err := RandomCard(rng, dead)
		if err != nil {
			return nil, err
		}
		dead.AddCard(c)
		cards = append(cards, c)
	}
	return cards, nil
}

// NewRand returns a generator for card selection. The same seed always
// deals the same cards.
func NewRand(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u+0x9e3779b97f4a7c15)))
}

func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	return x ^ x>>31
}
