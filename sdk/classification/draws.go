package classification

import (
	"math/bits"

	"github.com/lox/rangeboard/poker"
)

// DrawInfo describes the draws an unpaired holding has on a board.
type DrawInfo struct {
	Flush     bool
	FlushSuit uint8

	// Straight covers open-ended and gutshot draws alike: some window of
	// five consecutive values is missing exactly one card.
	Straight bool
	// StraightWindows lists the low value (1-10, ace low is 1) of every
	// qualifying window.
	StraightWindows []int

	// Outs is the number of unseen cards that complete at least one draw.
	Outs int
}

// HasDraw reports whether any draw is present.
func (d DrawInfo) HasDraw() bool {
	return d.Flush || d.Straight
}

// DetectDraws analyzes hole cards and board for flush and straight draws.
// Draws are only meaningful before the river, but the detection itself is
// purely structural and works on any board of three or more cards.
func DetectDraws(holeCards, board poker.Hand) DrawInfo {
	if board.CountCards() < 3 {
		return DrawInfo{}
	}
	return newFeatures(holeCards, board).draws()
}

func (f *features) draws() DrawInfo {
	var info DrawInfo
	var outs poker.Hand
	used := f.hole | f.board

	// Flush draw: exactly four of a suit with at least one from the hole.
	for suit := range uint8(4) {
		if f.suitCounts[suit] != 4 || f.hole.GetSuitMask(suit) == 0 {
			continue
		}
		info.Flush = true
		info.FlushSuit = suit
		outs |= poker.Hand(poker.RankMask&^uint16(used.GetSuitMask(suit))) << (suit * 13)
		break
	}

	// Straight draw: a five-value window missing one value, touched by a
	// hole card. The ace sits at both value 1 and value 14.
	values := poker.ValueMask(f.rankMask)
	holeValues := poker.ValueMask(f.hole.GetRankMask())
	for low := 1; low <= 10; low++ {
		window := uint16(0x1F) << low
		if bits.OnesCount16(values&window) != 4 || holeValues&window == 0 {
			continue
		}
		info.Straight = true
		info.StraightWindows = append(info.StraightWindows, low)

		missing := bits.TrailingZeros16(window &^ values)
		rank := valueToRank(missing)
		for suit := range uint8(4) {
			card := poker.NewCard(rank, suit)
			if !used.HasCard(card) {
				outs.AddCard(card)
			}
		}
	}

	info.Outs = outs.CountCards()
	return info
}

// valueToRank maps a 1-14 value back to a 0-12 rank.
func valueToRank(value int) uint8 {
	if value == 1 {
		return poker.Ace
	}
	return uint8(value - 2)
}
