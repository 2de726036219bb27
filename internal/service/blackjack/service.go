package blackjack

import (
	"casino/internal/cards"
	"casino/internal/fairness"
	"casino/internal/model"
	"casino/internal/repository/session_repo"
	"casino/internal/service"
	"casino/internal/service/round"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Одна колода на раздачу
const decks = 1

type serv struct {
	runner  *round.Runner
	store   *session_repo.Store[*model.BlackjackSession]
	log     *zap.Logger
	newDeck func(rnd fairness.Round) cards.Deck
	now     func() time.Time
}

func NewBlackjackService(
	runner *round.Runner,
	store *session_repo.Store[*model.BlackjackSession],
	log *zap.Logger,
) service.BlackjackService {
	return &serv{
		runner: runner,
		store:  store,
		log:    log,
		newDeck: func(rnd fairness.Round) cards.Deck {
			return cards.Shuffled(rnd, decks)
		},
		now: time.Now,
	}
}

// Get - состояние живой сессии после перезагрузки клиента
func (s *serv) Get(ctx context.Context, userID int64, sessionID string) (*model.BlackjackResult, error) {
	const op = "blackjack.Get"

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

	return &model.BlackjackResult{
		Session: sess,
		Round: model.RoundResult{
			BalanceCents: balance,
			Commitment:   sess.Round.Commitment(),
		},
	}, nil
}

// commit проводит действие через леджер и только после успеха меняет хранилище:
// новая сессия создается, живая сохраняется, завершенная удаляется
func (s *serv) commit(ctx context.Context, lease *session_repo.Lease[*model.BlackjackSession], sess *model.BlackjackSession, action string, betCents int64) (*model.BlackjackResult, error) {
	final := sess.Phase == model.BlackjackResolved

	st := model.Settlement{
		UserID:   sess.UserID,
		Game:     model.GameBlackjack,
		Action:   action,
		BetCents: betCents,
		Round:    sess.Round,
		Final:    final,
		Payload:  newAuditPayload(sess),
	}
	if final {
		st.PayoutCents = sess.TotalPayoutCents
	}

	res, err := s.runner.Settle(ctx, st, sess.TotalBetCents)
	if err != nil {
		return nil, err
	}

	switch {
	case lease == nil && !final:
		if err := s.store.Create(sess); err != nil {
			s.log.Error("session lost after settlement",
				zap.String("session_id", sess.ID),
				zap.Int64("user_id", sess.UserID),
				zap.Error(err),
			)
			return nil, err
		}
	case lease != nil && final:
		lease.Delete()
	case lease != nil:
		lease.Save(sess)
	}

	return &model.BlackjackResult{Session: sess, Round: res}, nil
}

type auditPayload struct {
	SessionID string                `json:"session_id"`
	Phase     model.BlackjackPhase  `json:"phase"`
	Hands     []model.BlackjackHand `json:"hands"`
	Dealer    []cards.Card          `json:"dealer"`
	Insurance int64                 `json:"insurance_cents"`
}

func newAuditPayload(sess *model.BlackjackSession) auditPayload {
	return auditPayload{
		SessionID: sess.ID,
		Phase:     sess.Phase,
		Hands:     sess.Hands,
		Dealer:    sess.DealerHand,
		Insurance: sess.InsuranceCents,
	}
}
