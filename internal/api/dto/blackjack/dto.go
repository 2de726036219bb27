package blackjack

import (
	"casino/internal/api/dto/round"
	"casino/internal/cards"
)

type DealRequest struct {
	ClientSeed string `json:"client_seed"`
	BetCents   int64  `json:"bet_cents"`
}

type SessionResponse struct {
	round.Round
	SessionID       string       `json:"session_id"`
	GameStatus      string       `json:"game_status"` // insurance_prompt, playing, resolved
	Hands           []Hand       `json:"hands"`
	ActiveHand      int          `json:"active_hand"`
	DealerCards     []cards.Card `json:"dealer_cards"` // До конца раунда только открытая карта
	DealerTotal     int          `json:"dealer_total,omitempty"`
	InsuranceCents  int64        `json:"insurance_cents,omitempty"`
	InsurancePayout int64        `json:"insurance_payout_cents,omitempty"`
	TotalBetCents   int64        `json:"total_bet_cents"`
}

type Hand struct {
	Cards       []cards.Card `json:"cards"`
	Total       int          `json:"total"`
	Soft        bool         `json:"soft"`
	BetCents    int64        `json:"bet_cents"`
	Doubled     bool         `json:"doubled"`
	Finished    bool         `json:"finished"`
	Outcome     string       `json:"outcome,omitempty"`
	PayoutCents int64        `json:"payout_cents"`
}
