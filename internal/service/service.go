package service

import (
	"casino/internal/model"
	"context"
)

// TxManager - то, что сервисам нужно от trm.Manager
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// LedgerService - единственное место, где меняются балансы
type LedgerService interface {
	Settle(ctx context.Context, st model.Settlement) (*model.Receipt, error)
	Deposit(ctx context.Context, dep model.Deposit) (*model.Receipt, error)
	Balance(ctx context.Context, userID int64) (int64, error)
}

// AchievementReporter - внешний сборщик статистики. Его ошибки не ломают раунд.
type AchievementReporter interface {
	Report(ctx context.Context, report model.RoundReport) ([]model.Achievement, error)
}

type WheelService interface {
	Spin(ctx context.Context, spin model.WheelSpin) (*model.WheelResult, error)
}

type SlotsService interface {
	Spin(ctx context.Context, spin model.SlotsSpin) (*model.SlotsResult, error)
}

type SicBoService interface {
	Roll(ctx context.Context, roll model.SicBoRoll) (*model.SicBoResult, error)
}

type RouletteService interface {
	Spin(ctx context.Context, spin model.RouletteSpin) (*model.RouletteResult, error)
}

type PinballService interface {
	Play(ctx context.Context, play model.PinballPlay) (*model.PinballResult, error)
}

type BaccaratService interface {
	Deal(ctx context.Context, deal model.BaccaratDeal) (*model.BaccaratResult, error)
}

type BlackjackService interface {
	Deal(ctx context.Context, deal model.BlackjackDeal) (*model.BlackjackResult, error)
	Act(ctx context.Context, move model.BlackjackMove) (*model.BlackjackResult, error)
	Get(ctx context.Context, userID int64, sessionID string) (*model.BlackjackResult, error)
}

type UTHService interface {
	Deal(ctx context.Context, deal model.UTHDeal) (*model.UTHResult, error)
	Act(ctx context.Context, move model.UTHMove) (*model.UTHResult, error)
	Get(ctx context.Context, userID int64, sessionID string) (*model.UTHResult, error)
}

type FairnessService interface {
	Reveal(ctx context.Context, userID int64, auditID int64) (*model.RevealedRound, error)
	Verify(req model.VerifyRequest) (*model.VerifyResult, error)
}
