package model

import "fmt"

// PinballLevel - уровень ставки, он же число бонусных шаров
type PinballLevel int

const (
	PinballLevelLow  PinballLevel = 1
	PinballLevelMid  PinballLevel = 2
	PinballLevelHigh PinballLevel = 5
)

func ParsePinballLevel(n int) (PinballLevel, error) {
	switch l := PinballLevel(n); l {
	case PinballLevelLow, PinballLevelMid, PinballLevelHigh:
		return l, nil
	}
	return 0, fmt.Errorf("%w: pinball level must be 1, 2 or 5, got %d", ErrValidation, n)
}

type PinballPlay struct {
	UserID      int64
	ClientSeed  string
	AmountCents int64
	Level       PinballLevel
}

// DebitCents - списывается amount*level
func (p PinballPlay) DebitCents() int64 {
	return p.AmountCents * int64(p.Level)
}

type PinballBall struct {
	Pocket      int    `json:"pocket"`
	Multiplier  string `json:"multiplier"`
	PayoutCents int64  `json:"payout_cents"`
}

type PinballOutcome struct {
	Reels           [3]string     `json:"reels"`
	LinePayoutCents int64         `json:"line_payout_cents"`
	BonusTriggered  bool          `json:"bonus_triggered"`
	Balls           []PinballBall `json:"balls"`
	PayoutCents     int64         `json:"payout_cents"`
}

type PinballResult struct {
	Outcome PinballOutcome
	Round   RoundResult
}
