package stats_repo

import (
	"casino/internal/model"
	repoModel "casino/internal/repository/stats_repo/model"
	"sync"
)

const defaultWindowSize = 500

// StatsRepo - in-memory счетчики игроков и RTP по играм
type StatsRepo struct {
	mtx        sync.RWMutex
	windowSize int
	games      map[model.Game]*repoModel.GameState
	players    map[int64]*repoModel.PlayerState
}

// NewStatsRepository - windowSize <= 0 означает окно по умолчанию
func NewStatsRepository(windowSize int) *StatsRepo {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &StatsRepo{
		windowSize: windowSize,
		games:      make(map[model.Game]*repoModel.GameState),
		players:    make(map[int64]*repoModel.PlayerState),
	}
}

// Record учитывает завершенный раунд и возвращает счетчики игрока после него
func (r *StatsRepo) Record(report model.RoundReport) model.PlayerStats {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	g := r.game(report.Game)
	g.TotalRounds++
	g.TotalBet += report.WageredCents
	g.TotalPayout += report.WonCents

	// Поддерживаем размер окна
	g.RoundWindow = append(g.RoundWindow, repoModel.RoundResult{Bet: report.WageredCents, Payout: report.WonCents})
	if len(g.RoundWindow) > g.WindowSize {
		g.RoundWindow = g.RoundWindow[1:]
	}

	p := r.player(report.UserID)
	p.Rounds++
	p.WageredCents += report.WageredCents
	p.WonCents += report.WonCents
	if report.IsWin {
		p.Wins++
	}

	return model.PlayerStats{
		Rounds:       p.Rounds,
		Wins:         p.Wins,
		WageredCents: p.WageredCents,
		WonCents:     p.WonCents,
	}
}

// Unlock отмечает достижение, false если оно уже было открыто
func (r *StatsRepo) Unlock(userID int64, code string) bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	p := r.player(userID)
	if _, ok := p.Unlocked[code]; ok {
		return false
	}
	p.Unlocked[code] = struct{}{}
	return true
}

// GameState - RTP игры за все время и в окне последних раундов
func (r *StatsRepo) GameState(game model.Game) model.GameStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	g, ok := r.games[game]
	if !ok {
		return model.GameStats{WindowSize: r.windowSize}
	}

	var windowBet, windowPayout int64
	for _, round := range g.RoundWindow {
		windowBet += round.Bet
		windowPayout += round.Payout
	}

	return model.GameStats{
		Rounds:     g.TotalRounds,
		TotalBet:   g.TotalBet,
		TotalPaid:  g.TotalPayout,
		CurrentRTP: rtp(g.TotalBet, g.TotalPayout),
		WindowRTP:  rtp(windowBet, windowPayout),
		WindowSize: g.WindowSize,
	}
}

func (r *StatsRepo) game(game model.Game) *repoModel.GameState {
	g, ok := r.games[game]
	if !ok {
		g = &repoModel.GameState{WindowSize: r.windowSize}
		r.games[game] = g
	}
	return g
}

func (r *StatsRepo) player(userID int64) *repoModel.PlayerState {
	p, ok := r.players[userID]
	if !ok {
		p = &repoModel.PlayerState{Unlocked: make(map[string]struct{})}
		r.players[userID] = p
	}
	return p
}

func rtp(bet, payout int64) float64 {
	if bet == 0 {
		return 0
	}
	return float64(payout) / float64(bet) * 100
}
