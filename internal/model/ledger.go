package model

import (
	"casino/internal/fairness"
	"encoding/json"
	"time"
)

// Settlement - одно действие игрока для леджера: списание ставки,
// начисление выплаты и запись аудита в одной транзакции
type Settlement struct {
	UserID      int64
	Game        Game
	Action      string
	BetCents    int64
	PayoutCents int64
	Round       fairness.Round
	Payload     any

	// Final - раунд завершен, server seed можно раскрывать
	Final bool
}

type Receipt struct {
	BalanceCents int64
	AuditID      int64
}

// AuditRecord - неизменяемая запись об одном действии
type AuditRecord struct {
	ID             int64
	UserID         int64
	Game           Game
	Action         string
	ServerSeed     string
	ServerSeedHash string
	ClientSeed     string
	Nonce          int64
	BetCents       int64
	PayoutCents    int64
	BalanceAfter   int64
	Final          bool
	Payload        json.RawMessage
	CreatedAt      time.Time
}

// RoundReport - итог завершенного раунда для статистики и достижений
type RoundReport struct {
	UserID       int64
	Game         Game
	WageredCents int64
	WonCents     int64
	IsWin        bool
}

type Achievement struct {
	Code       string
	Title      string
	UnlockedAt time.Time
}

// RoundResult - общая часть ответа любой игры
type RoundResult struct {
	BetCents     int64
	PayoutCents  int64
	BalanceCents int64
	AuditID      int64
	Commitment   fairness.Commitment
	Achievements []Achievement

	// ServerSeed заполняется только для завершенного раунда
	ServerSeed string
}

// Deposit - пополнение кошелька
type Deposit struct {
	UserID      int64
	AmountCents int64
}

// RevealedRound - раскрытые сиды завершенного раунда
type RevealedRound struct {
	AuditID        int64
	Game           Game
	ServerSeed     string
	ServerSeedHash string
	ClientSeed     string
	Nonce          int64
	Payload        json.RawMessage
}

// VerifyRequest - пересчет значения по раскрытым сидам
type VerifyRequest struct {
	ServerSeed     string
	ServerSeedHash string
	ClientSeed     string
	Nonce          int64
	Label          string
	Modulus        int
}

type VerifyResult struct {
	HashMatches bool
	Hash        string
	Value       int
}

// PlayerStats - накопленные счетчики игрока
type PlayerStats struct {
	Rounds       int
	Wins         int
	WageredCents int64
	WonCents     int64
}

// GameStats - RTP игры за все время и в скользящем окне, в процентах
type GameStats struct {
	Rounds     int
	TotalBet   int64
	TotalPaid  int64
	CurrentRTP float64
	WindowRTP  float64
	WindowSize int
}
