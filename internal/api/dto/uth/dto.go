package uth

import (
	"casino/internal/api/dto/round"
	"casino/internal/cards"
)

type DealRequest struct {
	ClientSeed string `json:"client_seed"`
	AnteCents  int64  `json:"ante_cents"`  // Блайнд равен анте
	TripsCents int64  `json:"trips_cents"` // Необязательная побочная ставка
}

type ActRequest struct {
	Multiplier int `json:"multiplier"` // 4 или 3 до флопа, 2 на флопе, 1 на ривере
}

type SessionResponse struct {
	round.Round
	SessionID   string       `json:"session_id"`
	GameStatus  string       `json:"game_status"` // preflop, flop, river, showdown, folded
	PlayerCards []cards.Card `json:"player_cards"`
	Community   []cards.Card `json:"community"`              // Открытые общие карты
	DealerCards []cards.Card `json:"dealer_cards,omitempty"` // Только после завершения
	AnteCents   int64        `json:"ante_cents"`
	BlindCents  int64        `json:"blind_cents"`
	TripsCents  int64        `json:"trips_cents"`
	PlayCents   int64        `json:"play_cents"`
	Settlement  *Settlement  `json:"settlement,omitempty"`
}

type Settlement struct {
	PlayerHand      string `json:"player_hand"`
	DealerHand      string `json:"dealer_hand"`
	DealerQualifies bool   `json:"dealer_qualifies"`
	Winner          string `json:"winner"`
	AnteCents       int64  `json:"ante_payout_cents"`
	BlindCents      int64  `json:"blind_payout_cents"`
	PlayCents       int64  `json:"play_payout_cents"`
	TripsCents      int64  `json:"trips_payout_cents"`
}
