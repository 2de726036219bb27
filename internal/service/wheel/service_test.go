package wheel

import (
	"casino/internal/config/env"
	"casino/internal/fairness"
	"casino/internal/model"
	"casino/internal/service/ledger"
	"casino/internal/service/round"
	"casino/internal/service/servicetest"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const user = int64(1)

func segments(t *testing.T) []string {
	t.Helper()
	cfg, err := env.NewGamesConfigFromYAML(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	return cfg.WheelSegments()
}

func TestPayout(t *testing.T) {
	stakes := map[model.WheelSymbol]int64{model.WheelOne: 100, model.WheelJoker: 10}

	assert.Equal(t, int64(200), Payout(model.WheelOne, stakes))
	assert.Equal(t, int64(410), Payout(model.WheelJoker, stakes))
	assert.Zero(t, Payout(model.WheelTwenty, stakes))
}

func TestResolveIsDeterministic(t *testing.T) {
	rnd, err := fairness.Restore("aa00000000000000000000000000000000000000000000000000000000000000", "seed", 5)
	require.NoError(t, err)

	segs := Symbols(segments(t))
	stakes := map[model.WheelSymbol]int64{model.WheelOne: 100}
	a := Resolve(segs, stakes, rnd)
	b := Resolve(segs, stakes, rnd)

	assert.Equal(t, a, b)
	assert.Equal(t, rnd.Uint("wheel", 54), a.Segment)
	assert.Equal(t, segs[a.Segment], a.Symbol)
}

func TestSpinConservesBalance(t *testing.T) {
	envs := servicetest.NewEnv(map[int64]int64{user: 100000})
	l := ledger.NewLedgerService(envs.Wallet, envs.Audit, envs.Tx, zap.NewNop())
	s := NewWheelService(segments(t), round.NewRunner(fairness.NewSource(), l, envs.Reporter, zap.NewNop()))

	var want int64 = 100000
	for i := 0; i < 30; i++ {
		res, err := s.Spin(context.Background(), model.WheelSpin{
			UserID: user,
			Stakes: map[model.WheelSymbol]int64{model.WheelOne: 50, model.WheelFive: 20},
		})
		require.NoError(t, err)
		want += res.Outcome.PayoutCents - 70
		assert.Equal(t, want, res.Round.BalanceCents)
	}
	assert.Len(t, envs.Audit.Records(), 30)
}

func TestSpinValidation(t *testing.T) {
	envs := servicetest.NewEnv(nil)
	l := ledger.NewLedgerService(envs.Wallet, envs.Audit, envs.Tx, zap.NewNop())
	s := NewWheelService(segments(t), round.NewRunner(fairness.NewSource(), l, nil, zap.NewNop()))

	for _, stakes := range []map[model.WheelSymbol]int64{
		nil,
		{model.WheelOne: 0},
		{"bogus": 10},
	} {
		_, err := s.Spin(context.Background(), model.WheelSpin{UserID: user, Stakes: stakes})
		assert.ErrorIs(t, err, model.ErrValidation)
	}

	_, err := s.Spin(context.Background(), model.WheelSpin{UserID: user, Stakes: map[model.WheelSymbol]int64{model.WheelOne: 10}})
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
}
