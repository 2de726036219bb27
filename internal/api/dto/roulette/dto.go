package roulette

import "casino/internal/api/dto/round"

type SpinRequest struct {
	ClientSeed string `json:"client_seed"`
	Bets       []Bet  `json:"bets"`
}

type Bet struct {
	Type        string `json:"type"`    // straight, split, street, corner, line, dozen, column, red, black, odd, even, low, high
	Numbers     []int  `json:"numbers"` // Покрытые номера; для dozen и column - номер 1-3
	AmountCents int64  `json:"amount_cents"`
}

type SpinResponse struct {
	round.Round
	Pocket int         `json:"pocket"`
	Color  string      `json:"color"`
	Bets   []BetResult `json:"bets"`
}

type BetResult struct {
	Type        string `json:"type"`
	Numbers     []int  `json:"numbers"`
	AmountCents int64  `json:"amount_cents"`
	Won         bool   `json:"won"`
	PayoutCents int64  `json:"payout_cents"`
}
