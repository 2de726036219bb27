package pinball

import (
	"casino/internal/fairness"
	"casino/internal/model"
	"casino/internal/service/ledger"
	"casino/internal/service/round"
	"casino/internal/service/servicetest"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testRound(t *testing.T) fairness.Round {
	t.Helper()
	rnd, err := fairness.Restore("2222222222222222222222222222222222222222222222222222222222222222", "pin", 9)
	require.NoError(t, err)
	return rnd
}

func TestPickPocketBoundaries(t *testing.T) {
	assert.Equal(t, 0, PickPocket(0))
	assert.Equal(t, 0, PickPocket(19))
	assert.Equal(t, 1, PickPocket(20))
	assert.Equal(t, 4, PickPocket(45))
	assert.Equal(t, 5, PickPocket(46))
	assert.Equal(t, 8, PickPocket(90))
}

func TestResolveTriggerGivesLevelBalls(t *testing.T) {
	reels := [][]string{{"bell"}, {"bell"}, {"ball"}}
	play := model.PinballPlay{AmountCents: 100, Level: model.PinballLevelHigh}

	out := Resolve(reels, play, testRound(t))

	assert.True(t, out.BonusTriggered)
	assert.Zero(t, out.LinePayoutCents)
	require.Len(t, out.Balls, 5)

	var sum int64
	for _, b := range out.Balls {
		sum += b.PayoutCents
	}
	assert.Equal(t, sum, out.PayoutCents)
	assert.Equal(t, out, Resolve(reels, play, testRound(t)))
}

func TestResolveLineWin(t *testing.T) {
	reels := [][]string{{"seven"}, {"seven"}, {"seven"}}
	out := Resolve(reels, model.PinballPlay{AmountCents: 10, Level: model.PinballLevelMid}, testRound(t))

	assert.False(t, out.BonusTriggered)
	assert.Equal(t, int64(10*2*50), out.LinePayoutCents)
	assert.Equal(t, out.LinePayoutCents, out.PayoutCents)
}

func TestPlayDebitsAmountTimesLevel(t *testing.T) {
	envs := servicetest.NewEnv(map[int64]int64{1: 1000})
	l := ledger.NewLedgerService(envs.Wallet, envs.Audit, envs.Tx, zap.NewNop())
	reels := [][]string{{"cherry"}, {"bell"}, {"bar"}}
	s := NewPinballService(reels, round.NewRunner(fairness.NewSource(), l, nil, zap.NewNop()))

	res, err := s.Play(context.Background(), model.PinballPlay{UserID: 1, AmountCents: 100, Level: model.PinballLevelHigh})
	require.NoError(t, err)
	assert.Equal(t, int64(500), res.Round.BetCents)
	assert.Equal(t, int64(500), res.Round.BalanceCents)

	_, err = s.Play(context.Background(), model.PinballPlay{UserID: 1, AmountCents: 100, Level: 3})
	assert.ErrorIs(t, err, model.ErrValidation)
}
