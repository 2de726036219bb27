package achievement

import (
	"casino/internal/model"
	"casino/internal/repository"
	"casino/internal/service"
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	bigWinMultiplier   = 10
	highRollerCents    = 100000
	regularRoundsCount = 100
)

type rule struct {
	code  string
	title string
	hit   func(r model.RoundReport, st model.PlayerStats) bool
}

var rules = []rule{
	{"first_win", "Первая победа", func(r model.RoundReport, _ model.PlayerStats) bool {
		return r.IsWin
	}},
	{"big_win", "Крупный выигрыш", func(r model.RoundReport, _ model.PlayerStats) bool {
		return r.WageredCents > 0 && r.WonCents >= r.WageredCents*bigWinMultiplier
	}},
	{"high_roller", "Хайроллер", func(r model.RoundReport, _ model.PlayerStats) bool {
		return r.WageredCents >= highRollerCents
	}},
	{"regular", "Завсегдатай", func(_ model.RoundReport, st model.PlayerStats) bool {
		return st.Rounds >= regularRoundsCount
	}},
}

type serv struct {
	repo repository.StatsRepository
	log  *zap.Logger
	now  func() time.Time
}

// NewAchievementService - достижения поверх in-memory статистики
func NewAchievementService(repo repository.StatsRepository, log *zap.Logger) service.AchievementReporter {
	return &serv{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// Report учитывает раунд и возвращает только что открытые достижения
func (s *serv) Report(_ context.Context, report model.RoundReport) ([]model.Achievement, error) {
	stats := s.repo.Record(report)

	var unlocked []model.Achievement
	for _, rl := range rules {
		if !rl.hit(report, stats) || !s.repo.Unlock(report.UserID, rl.code) {
			continue
		}
		unlocked = append(unlocked, model.Achievement{
			Code:       rl.code,
			Title:      rl.title,
			UnlockedAt: s.now(),
		})
	}

	game := s.repo.GameState(report.Game)
	s.log.Debug("round recorded",
		zap.String("game", string(report.Game)),
		zap.Int("rounds", game.Rounds),
		zap.Float64("rtp", game.CurrentRTP),
		zap.Float64("window_rtp", game.WindowRTP),
	)

	return unlocked, nil
}
