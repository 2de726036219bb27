// Package uth - Ultimate Texas Hold'em против дилера: анте, блайнд, trips и ставка play.
package uth

import (
	"casino/internal/cards"
	"casino/internal/fairness"
	"casino/internal/model"
	"casino/internal/repository/session_repo"
	"casino/internal/service"
	"casino/internal/service/round"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type serv struct {
	runner  *round.Runner
	store   *session_repo.Store[*model.UTHSession]
	log     *zap.Logger
	newDeck func(rnd fairness.Round) cards.Deck
	now     func() time.Time
}

func NewUTHService(
	runner *round.Runner,
	store *session_repo.Store[*model.UTHSession],
	log *zap.Logger,
) service.UTHService {
	return &serv{
		runner: runner,
		store:  store,
		log:    log,
		newDeck: func(rnd fairness.Round) cards.Deck {
			return cards.Shuffled(rnd, 1)
		},
		now: time.Now,
	}
}

// Deal - анте, блайнд равный анте и необязательный trips; две карты игроку,
// две дилеру и пять общих
func (s *serv) Deal(ctx context.Context, deal model.UTHDeal) (*model.UTHResult, error) {
	const op = "uth.Deal"

	if deal.AnteCents <= 0 {
		return nil, fmt.Errorf("%s: %w: ante must be positive", op, model.ErrValidation)
	}
	if deal.TripsCents < 0 {
		return nil, fmt.Errorf("%s: %w: trips must not be negative", op, model.ErrValidation)
	}

	rnd, err := s.runner.NewRound(deal.ClientSeed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	deck := s.newDeck(rnd)
	dealt, err := deck.DrawN(9)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, model.ErrInternal, err)
	}

	now := s.now()
	sess := &model.UTHSession{
		ID:          uuid.NewString(),
		UserID:      deal.UserID,
		Phase:       model.UTHPreflop,
		AnteCents:   deal.AnteCents,
		BlindCents:  deal.AnteCents,
		TripsCents:  deal.TripsCents,
		PlayerCards: slices.Clone(dealt[0:2]),
		DealerCards: slices.Clone(dealt[2:4]),
		Community:   slices.Clone(dealt[4:9]),
		Round:       rnd,
		Deck:        deck,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := s.commit(ctx, nil, sess, "deal", sess.TotalBetCents())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// Act - ставка play, чек или фолд. Сессия в хранилище меняется только после расчета в леджере.
func (s *serv) Act(ctx context.Context, move model.UTHMove) (*model.UTHResult, error) {
	const op = "uth.Act"

	lease, err := s.store.Acquire(ctx, move.SessionID, move.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer lease.Release()

	sess := lease.Session().Clone()
	extra, err := apply(sess, move.Action, move.Multiplier)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	sess.UpdatedAt = s.now()

	res, err := s.commit(ctx, lease, sess, string(move.Action), extra)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// Get - состояние живой сессии
func (s *serv) Get(ctx context.Context, userID int64, sessionID string) (*model.UTHResult, error) {
	const op = "uth.Get"

	lease, err := s.store.Acquire(ctx, sessionID, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	sess := lease.Session().Clone()
	lease.Release()

	balance, err := s.runner.Balance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &model.UTHResult{
		Session: sess,
		Round: model.RoundResult{
			BalanceCents: balance,
			Commitment:   sess.Round.Commitment(),
		},
	}, nil
}

func (s *serv) commit(ctx context.Context, lease *session_repo.Lease[*model.UTHSession], sess *model.UTHSession, action string, betCents int64) (*model.UTHResult, error) {
	final := sess.Phase.Terminal()

	st := model.Settlement{
		UserID:   sess.UserID,
		Game:     model.GameUTH,
		Action:   action,
		BetCents: betCents,
		Round:    sess.Round,
		Final:    final,
		Payload:  newAuditPayload(sess),
	}
	if final {
		st.PayoutCents = sess.Settlement.Total()
	}

	res, err := s.runner.Settle(ctx, st, sess.TotalBetCents())
	if err != nil {
		return nil, err
	}

	switch {
	case lease == nil:
		if err := s.store.Create(sess); err != nil {
			s.log.Error("session lost after settlement",
				zap.String("session_id", sess.ID),
				zap.Int64("user_id", sess.UserID),
				zap.Error(err),
			)
			return nil, err
		}
	case final:
		lease.Delete()
	default:
		lease.Save(sess)
	}

	return &model.UTHResult{Session: sess, Round: res}, nil
}

type auditPayload struct {
	SessionID  string               `json:"session_id"`
	Phase      model.UTHPhase       `json:"phase"`
	Player     []cards.Card         `json:"player"`
	Dealer     []cards.Card         `json:"dealer,omitempty"`
	Community  []cards.Card         `json:"community"`
	PlayCents  int64                `json:"play_cents"`
	Settlement *model.UTHSettlement `json:"settlement,omitempty"`
}

func newAuditPayload(sess *model.UTHSession) auditPayload {
	p := auditPayload{
		SessionID:  sess.ID,
		Phase:      sess.Phase,
		Player:     sess.PlayerCards,
		Community:  sess.VisibleCommunity(),
		PlayCents:  sess.PlayCents,
		Settlement: sess.Settlement,
	}
	if sess.Phase.Terminal() {
		p.Dealer = sess.DealerCards
	}
	return p
}
