package pinball

import "casino/internal/api/dto/round"

type PlayRequest struct {
	ClientSeed  string `json:"client_seed"`
	AmountCents int64  `json:"amount_cents"` // Ставка за уровень
	Level       int    `json:"level"`        // 1, 2 или 5
}

type PlayResponse struct {
	round.Round
	Reels           [3]string `json:"reels"`
	LinePayoutCents int64     `json:"line_payout_cents"`
	BonusTriggered  bool      `json:"bonus_triggered"`
	Balls           []Ball    `json:"balls"`
}

type Ball struct {
	Pocket      int    `json:"pocket"`
	Multiplier  string `json:"multiplier"`
	PayoutCents int64  `json:"payout_cents"`
}
