package classification

import (
	"slices"
	"testing"

	"github.com/lox/rangeboard/poker"
)

func TestDetectDraws(t *testing.T) {
	tests := []struct {
		name        string
		hole        string
		board       string
		wantFlush   bool
		wantSuit    uint8
		wantWindows []int
		wantOuts    int
	}{
		{
			name:      "nut flush draw",
			hole:      "Ah Th",
			board:     "2h 7h Kc",
			wantFlush: true,
			wantSuit:  poker.Hearts,
			wantOuts:  9,
		},
		{
			name:        "open-ended",
			hole:        "9c 8d",
			board:       "7s 6h Kc",
			wantWindows: []int{5, 6},
			wantOuts:    8,
		},
		{
			name:        "gutshot",
			hole:        "9c 7d",
			board:       "6s 5h Kc",
			wantWindows: []int{5},
			wantOuts:    4,
		},
		{
			name:        "wheel gutshot with ace low",
			hole:        "Ac 2d",
			board:       "3s 4h Kc",
			wantWindows: []int{1},
			wantOuts:    4,
		},
		{
			name:        "combo draw",
			hole:        "9h 8h",
			board:       "7h 6c 2h",
			wantFlush:   true,
			wantSuit:    poker.Hearts,
			wantWindows: []int{5, 6},
			wantOuts:    15,
		},
		{
			name:  "four flush on board only",
			hole:  "As Td",
			board: "2h 7h 9h Kh",
		},
		{
			name:  "five of a suit is not a draw",
			hole:  "Ah Th",
			board: "2h 7h 9h",
		},
		{
			name:  "nothing",
			hole:  "Ac Jd",
			board: "8s 4h 2c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := DetectDraws(hand(tt.hole), hand(tt.board))
			if info.Flush != tt.wantFlush {
				t.Errorf("Flush = %v, want %v", info.Flush, tt.wantFlush)
			}
			if tt.wantFlush && info.FlushSuit != tt.wantSuit {
				t.Errorf("FlushSuit = %d, want %d", info.FlushSuit, tt.wantSuit)
			}
			if info.Straight != (len(tt.wantWindows) > 0) {
				t.Errorf("Straight = %v, want %v", info.Straight, len(tt.wantWindows) > 0)
			}
			if !slices.Equal(info.StraightWindows, tt.wantWindows) {
				t.Errorf("StraightWindows = %v, want %v", info.StraightWindows, tt.wantWindows)
			}
			if info.Outs != tt.wantOuts {
				t.Errorf("Outs = %d, want %d", info.Outs, tt.wantOuts)
			}
			if info.HasDraw() != (tt.wantFlush || len(tt.wantWindows) > 0) {
				t.Errorf("HasDraw = %v", info.HasDraw())
			}
		})
	}
}

func TestDetectDrawsNeedsFlop(t *testing.T) {
	info := DetectDraws(hand("Ah Th"), hand("2h 7h"))
	if info.HasDraw() || info.Outs != 0 {
		t.Errorf("DetectDraws before the flop = %+v, want empty", info)
	}
}
