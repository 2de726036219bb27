package model

import (
	"casino/internal/cards"
	"casino/internal/fairness"
	"fmt"
	"time"
)

type UTHPhase string

const (
	UTHPreflop  UTHPhase = "preflop"
	UTHFlop     UTHPhase = "flop"
	UTHRiver    UTHPhase = "river"
	UTHShowdown UTHPhase = "showdown"
	UTHFolded   UTHPhase = "folded"
)

// Terminal - раунд завершен
func (p UTHPhase) Terminal() bool {
	return p == UTHShowdown || p == UTHFolded
}

type UTHAction string

const (
	UTHBet   UTHAction = "bet"
	UTHCheck UTHAction = "check"
	UTHFold  UTHAction = "fold"
)

func ParseUTHAction(s string) (UTHAction, error) {
	switch a := UTHAction(s); a {
	case UTHBet, UTHCheck, UTHFold:
		return a, nil
	}
	return "", fmt.Errorf("%w: unknown uth action %q", ErrValidation, s)
}

// Победитель раздачи UTH
const (
	UTHWinnerPlayer = "player"
	UTHWinnerDealer = "dealer"
	UTHWinnerTie    = "tie"
)

// UTHSettlement - разбивка выплат на шоудауне или фолде
type UTHSettlement struct {
	PlayerHand      cards.HandRank `json:"player_hand"`
	DealerHand      cards.HandRank `json:"dealer_hand"`
	DealerQualifies bool           `json:"dealer_qualifies"`
	Winner          string         `json:"winner"`
	AnteCents       int64          `json:"ante_cents"`
	BlindCents      int64          `json:"blind_cents"`
	PlayCents       int64          `json:"play_cents"`
	TripsCents      int64          `json:"trips_cents"`
}

// Total - сумма выплат по всем ставкам
func (s *UTHSettlement) Total() int64 {
	return s.AnteCents + s.BlindCents + s.PlayCents + s.TripsCents
}

type UTHSession struct {
	ID          string
	UserID      int64
	Phase       UTHPhase
	AnteCents   int64
	BlindCents  int64
	TripsCents  int64
	PlayCents   int64
	PlayerCards []cards.Card
	DealerCards []cards.Card
	Community   []cards.Card
	Settlement  *UTHSettlement
	Round       fairness.Round
	Deck        cards.Deck
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s *UTHSession) SessionID() string       { return s.ID }
func (s *UTHSession) OwnerID() int64          { return s.UserID }
func (s *UTHSession) LastActivity() time.Time { return s.UpdatedAt }

func (s *UTHSession) Clone() *UTHSession {
	cp := *s
	cp.PlayerCards = append([]cards.Card(nil), s.PlayerCards...)
	cp.DealerCards = append([]cards.Card(nil), s.DealerCards...)
	cp.Community = append([]cards.Card(nil), s.Community...)
	cp.Deck = s.Deck.Clone()
	if s.Settlement != nil {
		st := *s.Settlement
		cp.Settlement = &st
	}
	return &cp
}

// TotalBetCents - все поставленные деньги раунда
func (s *UTHSession) TotalBetCents() int64 {
	return s.AnteCents + s.BlindCents + s.TripsCents + s.PlayCents
}

// VisibleCommunity - открытые общие карты для текущей фазы
func (s *UTHSession) VisibleCommunity() []cards.Card {
	switch s.Phase {
	case UTHPreflop:
		return nil
	case UTHFlop:
		return s.Community[:3]
	}
	return s.Community
}

type UTHDeal struct {
	UserID     int64
	ClientSeed string
	AnteCents  int64
	TripsCents int64
}

type UTHMove struct {
	UserID     int64
	SessionID  string
	Action     UTHAction
	Multiplier int
}

type UTHResult struct {
	Session *UTHSession
	Round   RoundResult
}
