package payout

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWin(t *testing.T) {
	tests := []struct {
		name  string
		stake int64
		ratio decimal.Decimal
		want  int64
	}{
		{"even money", 500, BaccaratPlayer, 1000},
		{"banker commission", 100, BaccaratBanker, 195},
		{"banker floors to cent", 15, BaccaratBanker, 29},
		{"three to two", 100, UTHBlind["flush"], 250},
		{"straight up", 10, Odds(RouletteStraight), 360},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Win(tt.stake, tt.ratio))
		})
	}
}

func TestScaled(t *testing.T) {
	assert.Equal(t, int64(150), Scaled(100, Ratio(3, 2)))
	assert.Equal(t, int64(2), Scaled(5, Ratio(1, 2)))
	assert.Equal(t, int64(0), Scaled(0, Ratio(25, 1)))
	assert.Equal(t, int64(0), Scaled(100, Ratio(0, 1)))
	assert.Equal(t, int64(7), Push(7))
}

func TestBlackjackReturns(t *testing.T) {
	assert.Equal(t, int64(250), Scaled(100, BlackjackNatural))
	assert.Equal(t, int64(200), Scaled(100, BlackjackWin))
	assert.Equal(t, int64(100), Scaled(100, BlackjackPush))
	assert.Equal(t, int64(50), Scaled(100, BlackjackSurrender))
	assert.Equal(t, int64(150), Scaled(50, BlackjackInsurance))
}

func TestTablesAreComplete(t *testing.T) {
	for total := 4; total <= 17; total++ {
		assert.Contains(t, SicBoTotals, total)
	}
	assert.Equal(t, SicBoTotals[4], SicBoTotals[17])

	weight := 0
	for _, p := range PinballPockets {
		weight += p.Weight
	}
	assert.Equal(t, 91, weight)
	assert.Len(t, SlotBase, 8)
}
