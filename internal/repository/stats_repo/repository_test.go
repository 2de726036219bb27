package stats_repo

import (
	"casino/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordAccumulatesPlayerAndGame(t *testing.T) {
	r := NewStatsRepository(2)

	r.Record(model.RoundReport{UserID: 1, Game: model.GameWheel, WageredCents: 100, WonCents: 0})
	r.Record(model.RoundReport{UserID: 1, Game: model.GameWheel, WageredCents: 100, WonCents: 300, IsWin: true})
	stats := r.Record(model.RoundReport{UserID: 1, Game: model.GameWheel, WageredCents: 100, WonCents: 100})

	assert.Equal(t, model.PlayerStats{Rounds: 3, Wins: 1, WageredCents: 300, WonCents: 400}, stats)

	g := r.GameState(model.GameWheel)
	assert.Equal(t, 3, g.Rounds)
	assert.InDelta(t, 133.33, g.CurrentRTP, 0.01)
	assert.InDelta(t, 200.0, g.WindowRTP, 0.01, "window keeps only the last two rounds")
}

func TestUnlockOnce(t *testing.T) {
	r := NewStatsRepository(0)
	assert.True(t, r.Unlock(1, "first_win"))
	assert.False(t, r.Unlock(1, "first_win"))
	assert.True(t, r.Unlock(2, "first_win"))
}

func TestGameStateUnknownGame(t *testing.T) {
	r := NewStatsRepository(0)
	g := r.GameState(model.GameUTH)
	assert.Zero(t, g.Rounds)
	assert.Equal(t, defaultWindowSize, g.WindowSize)
}
