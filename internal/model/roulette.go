package model

import "fmt"

type RouletteBetType string

const (
	RouletteStraight RouletteBetType = "straight"
	RouletteSplit    RouletteBetType = "split"
	RouletteStreet   RouletteBetType = "street"
	RouletteCorner   RouletteBetType = "corner"
	RouletteSixLine  RouletteBetType = "six_line"
	RouletteDozen    RouletteBetType = "dozen"
	RouletteColumn   RouletteBetType = "column"
	RouletteRed      RouletteBetType = "red"
	RouletteBlack    RouletteBetType = "black"
	RouletteOdd      RouletteBetType = "odd"
	RouletteEven     RouletteBetType = "even"
	RouletteLow      RouletteBetType = "low"
	RouletteHigh     RouletteBetType = "high"
)

var rouletteBetTypes = map[RouletteBetType]struct{}{
	RouletteStraight: {}, RouletteSplit: {}, RouletteStreet: {}, RouletteCorner: {},
	RouletteSixLine: {}, RouletteDozen: {}, RouletteColumn: {}, RouletteRed: {},
	RouletteBlack: {}, RouletteOdd: {}, RouletteEven: {}, RouletteLow: {}, RouletteHigh: {},
}

func ParseRouletteBetType(s string) (RouletteBetType, error) {
	t := RouletteBetType(s)
	if _, ok := rouletteBetTypes[t]; !ok {
		return "", fmt.Errorf("%w: unknown roulette bet %q", ErrValidation, s)
	}
	return t, nil
}

// RouletteBet - Numbers задаются для внутренних ставок,
// для dozen и column это номер 1..3
type RouletteBet struct {
	Type        RouletteBetType `json:"type"`
	Numbers     []int           `json:"numbers"`
	AmountCents int64           `json:"amount_cents"`
}

type RouletteSpin struct {
	UserID     int64
	ClientSeed string
	Bets       []RouletteBet
}

func (r RouletteSpin) TotalCents() int64 {
	var total int64
	for _, b := range r.Bets {
		total += b.AmountCents
	}
	return total
}

type RouletteBetResult struct {
	Bet         RouletteBet `json:"bet"`
	Won         bool        `json:"won"`
	PayoutCents int64       `json:"payout_cents"`
}

type RouletteOutcome struct {
	Pocket      int                 `json:"pocket"`
	Color       string              `json:"color"`
	Bets        []RouletteBetResult `json:"bets"`
	PayoutCents int64               `json:"payout_cents"`
}

type RouletteResult struct {
	Outcome RouletteOutcome
	Round   RoundResult
}
