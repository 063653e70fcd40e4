package poker

import (
	"errors"
	"testing"
)

func TestBuildDeck(t *testing.T) {
	t.Parallel()
	cards := BuildDeck()
	if len(cards) != 52 {
		t.Fatalf("BuildDeck() returned %d cards, want 52", len(cards))
	}

	if NewHand(cards...) != FullDeck {
		t.Error("BuildDeck() should contain every card exactly once")
	}

	// Fixed order: ace of spades first, deuce of clubs last.
	if cards[0].String() != "As" || cards[51].String() != "2c" {
		t.Errorf("unexpected deck order: first %s, last %s", cards[0], cards[51])
	}

	// Callers get their own copy.
	cards[0] = 0
	if BuildDeck()[0].String() != "As" {
		t.Error("BuildDeck() should not share its backing array")
	}
}

func TestRandomCardAvoidsDeadCards(t *testing.T) {
	t.Parallel()
	rng := NewRand(7)
	dead := MustParseHand("As Kd Qh Jc")

	for range 500 {
		c, err := RandomCard(rng, dead)
		if err != nil {
			t.Fatalf("RandomCard: %v", err)
		}
		if dead.HasCard(c) {
			t.Fatalf("RandomCard returned dead card %s", c)
		}
	}
}

func TestRandomCardSingleLiveCard(t *testing.T) {
	t.Parallel()
	rng := NewRand(1)
	live := MustParseCards("7h")[0]
	c, err := RandomCard(rng, FullDeck&^Hand(live))
	if err != nil {
		t.Fatalf("RandomCard: %v", err)
	}
	if c != live {
		t.Errorf("RandomCard = %s, want %s", c, live)
	}

	if _, err := RandomCard(rng, FullDeck); !errors.Is(err, ErrNoCardsAvailable) {
		t.Errorf("RandomCard on exhausted deck error = %v, want ErrNoCardsAvailable", err)
	}
}

func TestRandomCardsDeterministic(t *testing.T) {
	t.Parallel()
	dead := MustParseHand("Ah Kh")

	first, err := RandomCards(NewRand(42), dead, 3)
	if err != nil {
		t.Fatalf("RandomCards: %v", err)
	}
	second, err := RandomCards(NewRand(42), dead, 3)
	if err != nil {
		t.Fatalf("RandomCards: %v", err)
	}

	if FormatCards(first) != FormatCards(second) {
		t.Errorf("same seed gave %s and %s", FormatCards(first), FormatCards(second))
	}

	picked := NewHand(first...)
	if picked.CountCards() != 3 {
		t.Errorf("RandomCards returned duplicates: %s", FormatCards(first))
	}
	if picked.Overlaps(dead) {
		t.Errorf("RandomCards returned a dead card: %s", FormatCards(first))
	}
}

func TestRandomCardsNotEnough(t *testing.T) {
	t.Parallel()
	rng := NewRand(3)
	dead := FullDeck &^ MustParseHand("2c 3c")
	if _, err := RandomCards(rng, dead, 3); !errors.Is(err, ErrNoCardsAvailable) {
		t.Errorf("RandomCards error = %v, want ErrNoCardsAvailable", err)
	}
}
