package cards

import (
	"casino/internal/fairness"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func c(r Rank, s Suit) Card { return Card{Suit: s, Rank: r} }

func TestNewDeckIsUnique(t *testing.T) {
	d := NewDeck(1)
	require.Len(t, d, 52)

	seen := map[Card]bool{}
	for _, card := range d {
		assert.False(t, seen[card], "duplicate %s", card)
		seen[card] = true
	}

	assert.Len(t, NewDeck(8), 416)
}

func TestShuffledIsDeterministicPermutation(t *testing.T) {
	round, err := fairness.Restore("00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff", "client", 99)
	require.NoError(t, err)

	a := Shuffled(round, 1)
	b := Shuffled(round, 1)
	assert.Equal(t, a, b)
	assert.NotEqual(t, NewDeck(1), a)
	assert.ElementsMatch(t, NewDeck(1), a)
}

func TestDrawPopsFromEnd(t *testing.T) {
	d := Stack(c(Ace, Spades), c(King, Hearts))

	first, err := d.Draw()
	require.NoError(t, err)
	assert.Equal(t, c(Ace, Spades), first)

	second, err := d.Draw()
	require.NoError(t, err)
	assert.Equal(t, c(King, Hearts), second)

	_, err = d.Draw()
	assert.ErrorIs(t, err, ErrDeckEmpty)
}

func TestCloneIsIndependent(t *testing.T) {
	d := Stack(c(Two, Clubs), c(Three, Clubs))
	cp := d.Clone()
	_, _ = d.Draw()
	assert.Equal(t, 2, cp.Len())
	assert.Equal(t, 1, d.Len())
}

func TestCardJSON(t *testing.T) {
	b, err := json.Marshal(c(Ten, Diamonds))
	require.NoError(t, err)
	assert.JSONEq(t, `{"suit":"diamonds","rank":"10"}`, string(b))

	var back Card
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, c(Ten, Diamonds), back)
}
