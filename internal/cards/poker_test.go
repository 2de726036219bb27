package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateFiveCategories(t *testing.T) {
	tests := []struct {
		name string
		hand []Card
		want HandCategory
	}{
		{"royal", []Card{c(Ace, Hearts), c(King, Hearts), c(Queen, Hearts), c(Jack, Hearts), c(Ten, Hearts)}, RoyalFlush},
		{"straight flush", []Card{c(Nine, Clubs), c(Eight, Clubs), c(Seven, Clubs), c(Six, Clubs), c(Five, Clubs)}, StraightFlush},
		{"steel wheel", []Card{c(Ace, Clubs), c(Two, Clubs), c(Three, Clubs), c(Four, Clubs), c(Five, Clubs)}, StraightFlush},
		{"quads", []Card{c(Nine, Clubs), c(Nine, Hearts), c(Nine, Spades), c(Nine, Diamonds), c(Five, Clubs)}, FourOfAKind},
		{"full house", []Card{c(Nine, Clubs), c(Nine, Hearts), c(Nine, Spades), c(Five, Diamonds), c(Five, Clubs)}, FullHouse},
		{"flush", []Card{c(Two, Spades), c(Nine, Spades), c(Jack, Spades), c(Four, Spades), c(King, Spades)}, Flush},
		{"straight", []Card{c(Ten, Spades), c(Nine, Hearts), c(Eight, Spades), c(Seven, Clubs), c(Six, Spades)}, Straight},
		{"wheel", []Card{c(Ace, Spades), c(Two, Hearts), c(Three, Spades), c(Four, Clubs), c(Five, Spades)}, Straight},
		{"trips", []Card{c(Ten, Spades), c(Ten, Hearts), c(Ten, Clubs), c(Seven, Clubs), c(Six, Spades)}, ThreeOfAKind},
		{"two pair", []Card{c(Ten, Spades), c(Ten, Hearts), c(Six, Clubs), c(Seven, Clubs), c(Six, Spades)}, TwoPair},
		{"pair", []Card{c(Ten, Spades), c(Ten, Hearts), c(Two, Clubs), c(Seven, Clubs), c(Six, Spades)}, OnePair},
		{"high card", []Card{c(Ace, Spades), c(Ten, Hearts), c(Two, Clubs), c(Seven, Clubs), c(Six, Spades)}, HighCard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateFive(tt.hand).Category)
		})
	}
}

func TestKickersBreakTies(t *testing.T) {
	pairAceKicker := EvaluateFive([]Card{c(Ten, Spades), c(Ten, Hearts), c(Ace, Clubs), c(Seven, Clubs), c(Six, Spades)})
	pairKingKicker := EvaluateFive([]Card{c(Ten, Clubs), c(Ten, Diamonds), c(King, Clubs), c(Seven, Hearts), c(Six, Hearts)})
	assert.Equal(t, 1, pairAceKicker.Compare(pairKingKicker))

	lowPair := EvaluateFive([]Card{c(Two, Spades), c(Two, Hearts), c(Ace, Clubs), c(King, Clubs), c(Queen, Spades)})
	assert.Equal(t, -1, lowPair.Compare(pairKingKicker), "pair rank outranks kickers")

	wheel := EvaluateFive([]Card{c(Ace, Spades), c(Two, Hearts), c(Three, Spades), c(Four, Clubs), c(Five, Spades)})
	sixHigh := EvaluateFive([]Card{c(Six, Spades), c(Two, Hearts), c(Three, Spades), c(Four, Clubs), c(Five, Diamonds)})
	assert.Equal(t, -1, wheel.Compare(sixHigh))

	same := EvaluateFive([]Card{c(Six, Hearts), c(Two, Spades), c(Three, Hearts), c(Four, Hearts), c(Five, Clubs)})
	assert.Equal(t, 0, sixHigh.Compare(same))
}

func TestBestHandOfSeven(t *testing.T) {
	hole := []Card{c(Ace, Hearts), c(King, Hearts)}
	board := []Card{c(Queen, Hearts), c(Jack, Hearts), c(Ten, Hearts), c(Two, Clubs), c(Two, Spades)}

	best := BestHand(append(hole, board...))
	assert.Equal(t, RoyalFlush, best.Category)
	assert.Len(t, best.Cards, 5)

	trips := BestHand([]Card{c(Two, Hearts), c(Nine, Clubs), c(Two, Clubs), c(Two, Spades), c(Seven, Diamonds), c(Jack, Hearts), c(Four, Clubs)})
	assert.Equal(t, ThreeOfAKind, trips.Category)
}
