package slots

import (
	"casino/internal/fairness"
	"casino/internal/model"
	"casino/internal/payout"
	"casino/internal/service/ledger"
	"casino/internal/service/round"
	"casino/internal/service/servicetest"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// columns - окно по барабанам, как его рисует клиент
func fromColumns(cols [model.SlotsReels][model.SlotsRows]string) [model.SlotsRows][model.SlotsReels]string {
	var grid [model.SlotsRows][model.SlotsReels]string
	for r := range cols {
		for row := range cols[r] {
			grid[row][r] = cols[r][row]
		}
	}
	return grid
}

func TestEvaluateGridMiddleRowCherries(t *testing.T) {
	grid := fromColumns([model.SlotsReels][model.SlotsRows]string{
		{"cherry", "cherry", "lemon"},
		{"cherry", "cherry", "lemon"},
		{"cherry", "cherry", "lemon"},
		{"bell", "bell", "bell"},
		{"bar", "bar", "bar"},
	})

	out := EvaluateGrid(grid)

	var middle *model.SlotsRowWin
	var sum int64
	for i, w := range out.RowWins {
		sum += w.Multiplier
		if w.Row == "middle" {
			middle = &out.RowWins[i]
		}
	}
	require.NotNil(t, middle)
	assert.Equal(t, "cherry", middle.Symbol)
	assert.Equal(t, 3, middle.Count)
	assert.Equal(t, payout.SlotBase["cherry"]*1, middle.Multiplier)
	assert.Equal(t, sum, out.TotalMultiplier)
	assert.False(t, out.NearMiss)
}

func TestEvaluateGridPositionIndependent(t *testing.T) {
	grid := [model.SlotsRows][model.SlotsReels]string{
		{"bell", "plum", "bell", "lemon", "bell"},
		{"seven", "seven", "seven", "seven", "plum"},
		{"diamond", "diamond", "diamond", "diamond", "diamond"},
	}
	out := EvaluateGrid(grid)

	require.Len(t, out.RowWins, 3)
	assert.Equal(t, int64(10*1+50*2+100*3), out.TotalMultiplier)
}

func TestNearMissOnlyWithoutWins(t *testing.T) {
	grid := [model.SlotsRows][model.SlotsReels]string{
		{"bell", "plum", "bar", "lemon", "cherry"},
		{"seven", "seven", "plum", "bar", "cherry"},
		{"lemon", "bell", "bar", "plum", "orange"},
	}
	out := EvaluateGrid(grid)
	assert.Empty(t, out.RowWins)
	assert.True(t, out.NearMiss)

	grid[0] = [model.SlotsReels]string{"bell", "bell", "bell", "lemon", "cherry"}
	out = EvaluateGrid(grid)
	assert.False(t, out.NearMiss)
}

func TestGenerateGridWraps(t *testing.T) {
	strips := [][]string{
		{"cherry", "lemon", "bell"},
		{"cherry", "lemon", "bell"},
		{"cherry", "lemon", "bell"},
		{"cherry", "lemon", "bell"},
		{"cherry", "lemon", "bell"},
	}
	grid := GenerateGrid(strips, [model.SlotsReels]int{0, 1, 2, 0, 0})

	assert.Equal(t, "bell", grid[0][0])
	assert.Equal(t, "cherry", grid[1][0])
	assert.Equal(t, "lemon", grid[2][0])
	assert.Equal(t, "cherry", grid[2][2])
}

func TestSpinPaysBetTimesMultiplier(t *testing.T) {
	strips := make([][]string, model.SlotsReels)
	for i := range strips {
		strips[i] = []string{"seven", "seven", "seven"}
	}

	envs := servicetest.NewEnv(map[int64]int64{1: 1000})
	l := ledger.NewLedgerService(envs.Wallet, envs.Audit, envs.Tx, zap.NewNop())
	s := NewSlotsService(strips, round.NewRunner(fairness.NewSource(), l, nil, zap.NewNop()))

	res, err := s.Spin(context.Background(), model.SlotsSpin{UserID: 1, BetCents: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(3*50*3), res.Outcome.TotalMultiplier)
	assert.Equal(t, int64(4500), res.Outcome.PayoutCents)
	assert.Equal(t, int64(1000-10+4500), res.Round.BalanceCents)
}
