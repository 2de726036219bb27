package round

import (
	"casino/internal/fairness"
	"casino/internal/model"
	"casino/internal/service/ledger"
	"casino/internal/service/servicetest"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const user = int64(7)

type coin struct {
	Heads bool `json:"heads"`
}

func newRunner(balance int64) (*Runner, *servicetest.Env) {
	env := servicetest.NewEnv(map[int64]int64{user: balance})
	l := ledger.NewLedgerService(env.Wallet, env.Audit, env.Tx, zap.NewNop())
	return NewRunner(fairness.NewSource(), l, env.Reporter, zap.NewNop()), env
}

func TestPlaySettlesOnceAndReveals(t *testing.T) {
	r, env := newRunner(1000)
	env.Reporter.Unlock = []model.Achievement{{Code: "first_win"}}

	var seen fairness.Round
	out, res, err := Play(context.Background(), r, Bet{
		UserID: user, Game: model.GameWheel, Action: "spin", ClientSeed: "lucky", BetCents: 100,
	}, func(rnd fairness.Round) (coin, int64, error) {
		seen = rnd
		return coin{Heads: true}, 250, nil
	})
	require.NoError(t, err)

	assert.True(t, out.Heads)
	assert.Equal(t, int64(1150), res.BalanceCents)
	assert.Equal(t, "lucky", res.Commitment.ClientSeed)
	assert.Equal(t, seen.ServerSeed(), res.ServerSeed)
	assert.True(t, fairness.Verify(res.ServerSeed, res.Commitment.ServerSeedHash))
	assert.Equal(t, []model.Achievement{{Code: "first_win"}}, res.Achievements)

	require.Len(t, env.Reporter.Reports, 1)
	assert.Equal(t, model.RoundReport{UserID: user, Game: model.GameWheel, WageredCents: 100, WonCents: 250, IsWin: true}, env.Reporter.Reports[0])
	assert.Len(t, env.Audit.Records(), 1)
}

func TestPlayValidation(t *testing.T) {
	r, env := newRunner(1000)
	resolve := func(fairness.Round) (coin, int64, error) { return coin{}, 0, nil }

	_, _, err := Play(context.Background(), r, Bet{UserID: user, Game: model.GameWheel, BetCents: 0}, resolve)
	assert.ErrorIs(t, err, model.ErrValidation)

	_, _, err = Play(context.Background(), r, Bet{UserID: user, Game: model.GameWheel, BetCents: 10, ClientSeed: "a:b"}, resolve)
	assert.ErrorIs(t, err, model.ErrValidation)

	assert.Empty(t, env.Audit.Records())
}

func TestPlayResolverErrorSkipsLedger(t *testing.T) {
	r, env := newRunner(1000)

	_, _, err := Play(context.Background(), r, Bet{UserID: user, Game: model.GameRoulette, BetCents: 10},
		func(fairness.Round) (coin, int64, error) { return coin{}, 0, servicetest.ErrBoom })
	assert.ErrorIs(t, err, servicetest.ErrBoom)
	assert.Equal(t, int64(1000), env.Wallet.Balance(user))
	assert.Empty(t, env.Audit.Records())
}

func TestReporterFailureDoesNotFailRound(t *testing.T) {
	r, env := newRunner(1000)
	env.Reporter.Err = servicetest.ErrBoom

	_, res, err := Play(context.Background(), r, Bet{UserID: user, Game: model.GameSlots, BetCents: 10},
		func(fairness.Round) (coin, int64, error) { return coin{}, 0, nil })
	require.NoError(t, err)
	assert.Nil(t, res.Achievements)
	assert.Equal(t, int64(990), res.BalanceCents)
}

func TestSettleNonFinalKeepsSeedSecret(t *testing.T) {
	r, env := newRunner(1000)
	rnd, err := r.NewRound("")
	require.NoError(t, err)

	res, err := r.Settle(context.Background(), model.Settlement{
		UserID: user, Game: model.GameBlackjack, Action: "deal", BetCents: 100, Round: rnd,
	}, 100)
	require.NoError(t, err)
	assert.Empty(t, res.ServerSeed)
	assert.Empty(t, env.Reporter.Reports)
}
