package model

import (
	"casino/internal/cards"
	"fmt"
)

type BaccaratSide string

const (
	BaccaratPlayer BaccaratSide = "player"
	BaccaratBanker BaccaratSide = "banker"
	BaccaratTie    BaccaratSide = "tie"
)

func ParseBaccaratSide(s string) (BaccaratSide, error) {
	switch side := BaccaratSide(s); side {
	case BaccaratPlayer, BaccaratBanker, BaccaratTie:
		return side, nil
	}
	return "", fmt.Errorf("%w: unknown baccarat side %q", ErrValidation, s)
}

type BaccaratDeal struct {
	UserID      int64
	ClientSeed  string
	Side        BaccaratSide
	AmountCents int64
}

type BaccaratOutcome struct {
	PlayerCards []cards.Card `json:"player_cards"`
	BankerCards []cards.Card `json:"banker_cards"`
	PlayerTotal int          `json:"player_total"`
	BankerTotal int          `json:"banker_total"`
	Winner      BaccaratSide `json:"winner"`
	PayoutCents int64        `json:"payout_cents"`
}

type BaccaratResult struct {
	Outcome BaccaratOutcome
	Round   RoundResult
}
