package model

import (
	"casino/internal/cards"
	"casino/internal/fairness"
	"fmt"
	"time"
)

type BlackjackPhase string

const (
	BlackjackDealing         BlackjackPhase = "dealing"
	BlackjackPlaying         BlackjackPhase = "playing"
	BlackjackInsurancePrompt BlackjackPhase = "insurance_prompt"
	BlackjackResolved        BlackjackPhase = "resolved"
)

type BlackjackAction string

const (
	BlackjackHit       BlackjackAction = "hit"
	BlackjackStand     BlackjackAction = "stand"
	BlackjackDouble    BlackjackAction = "double"
	BlackjackSplit     BlackjackAction = "split"
	BlackjackSurrender BlackjackAction = "surrender"
	BlackjackInsure    BlackjackAction = "insurance"
	BlackjackDecline   BlackjackAction = "decline"
)

func ParseBlackjackAction(s string) (BlackjackAction, error) {
	switch a := BlackjackAction(s); a {
	case BlackjackHit, BlackjackStand, BlackjackDouble, BlackjackSplit,
		BlackjackSurrender, BlackjackInsure, BlackjackDecline:
		return a, nil
	}
	return "", fmt.Errorf("%w: unknown blackjack action %q", ErrValidation, s)
}

// Исход руки после расчета
const (
	HandWin       = "win"
	HandLoss      = "loss"
	HandPush      = "push"
	HandBlackjack = "blackjack"
	HandSurrender = "surrender"
	HandBust      = "bust"
)

type BlackjackHand struct {
	Cards       []cards.Card `json:"cards"`
	BetCents    int64        `json:"bet_cents"`
	Doubled     bool         `json:"doubled"`
	Stood       bool         `json:"stood"`
	Busted      bool         `json:"busted"`
	Surrendered bool         `json:"surrendered"`
	FromSplit   bool         `json:"from_split"`
	Outcome     string       `json:"outcome,omitempty"`
	PayoutCents int64        `json:"payout_cents"`
}

// Finished - рука больше не принимает действий
func (h *BlackjackHand) Finished() bool {
	return h.Stood || h.Busted || h.Surrendered
}

type BlackjackSession struct {
	ID               string
	UserID           int64
	Phase            BlackjackPhase
	Hands            []BlackjackHand
	Active           int
	DealerHand       []cards.Card
	InsuranceCents   int64
	InsurancePayout  int64
	Acted            bool
	TotalBetCents    int64
	TotalPayoutCents int64
	Round            fairness.Round
	Deck             cards.Deck
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (s *BlackjackSession) SessionID() string       { return s.ID }
func (s *BlackjackSession) OwnerID() int64          { return s.UserID }
func (s *BlackjackSession) LastActivity() time.Time { return s.UpdatedAt }

// Clone - глубокая копия, действие меняет копию и сохраняет ее только после успешного расчета
func (s *BlackjackSession) Clone() *BlackjackSession {
	cp := *s
	cp.Hands = make([]BlackjackHand, len(s.Hands))
	for i, h := range s.Hands {
		h.Cards = append([]cards.Card(nil), h.Cards...)
		cp.Hands[i] = h
	}
	cp.DealerHand = append([]cards.Card(nil), s.DealerHand...)
	cp.Deck = s.Deck.Clone()
	return &cp
}

type BlackjackDeal struct {
	UserID     int64
	ClientSeed string
	BetCents   int64
}

type BlackjackMove struct {
	UserID    int64
	SessionID string
	Action    BlackjackAction
}

// BlackjackResult - снимок сессии после действия
type BlackjackResult struct {
	Session *BlackjackSession
	Round   RoundResult
}
