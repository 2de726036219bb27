package sicbo

import "casino/internal/api/dto/round"

type RollRequest struct {
	ClientSeed string `json:"client_seed"`
	Bets       []Bet  `json:"bets"`
}

type Bet struct {
	Bet         string `json:"bet"` // small, big, odd, even, any_triple, total_10, double_4, triple_6, single_3, combo_1_2
	AmountCents int64  `json:"amount_cents"`
}

type RollResponse struct {
	round.Round
	Dice  [3]int      `json:"dice"`
	Total int         `json:"total"`
	Bets  []BetResult `json:"bets"`
}

type BetResult struct {
	Bet         string `json:"bet"`
	AmountCents int64  `json:"amount_cents"`
	Won         bool   `json:"won"`
	PayoutCents int64  `json:"payout_cents"`
}
