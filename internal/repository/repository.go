package repository

import (
	"casino/internal/model"
	"context"
)

// WalletRepository - балансы пользователей. Методы вызываются внутри транзакции леджера.
type WalletRepository interface {
	// Debit списывает сумму только если хватает средств, иначе model.ErrInsufficientFunds
	Debit(ctx context.Context, userID int64, amount int64) (balance int64, err error)
	Credit(ctx context.Context, userID int64, amount int64) (balance int64, err error)
	GetBalance(ctx context.Context, userID int64) (int64, error)
}

// AuditRepository - журнал действий, только вставка
type AuditRepository interface {
	Append(ctx context.Context, rec *model.AuditRecord) (id int64, err error)
	Get(ctx context.Context, id int64) (*model.AuditRecord, error)
	FinalExists(ctx context.Context, serverSeedHash string) (bool, error)
}

// StatsRepository - счетчики игрока и RTP окна по играм
type StatsRepository interface {
	Record(report model.RoundReport) model.PlayerStats
	Unlock(userID int64, code string) bool
	GameState(game model.Game) model.GameStats
}
