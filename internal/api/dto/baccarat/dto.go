package baccarat

import (
	"casino/internal/api/dto/round"
	"casino/internal/cards"
)

type DealRequest struct {
	ClientSeed  string `json:"client_seed"`
	Side        string `json:"side"` // player, banker, tie
	AmountCents int64  `json:"amount_cents"`
}

type DealResponse struct {
	round.Round
	PlayerCards []cards.Card `json:"player_cards"`
	BankerCards []cards.Card `json:"banker_cards"`
	PlayerTotal int          `json:"player_total"`
	BankerTotal int          `json:"banker_total"`
	Winner      string       `json:"winner"`
}
