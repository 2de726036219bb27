package blackjack

import (
	"casino/internal/cards"
	"casino/internal/model"
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Deal - две карты игроку, две дилеру (первая открыта)
func (s *serv) Deal(ctx context.Context, deal model.BlackjackDeal) (*model.BlackjackResult, error) {
	const op = "blackjack.Deal"

	if deal.BetCents <= 0 {
		return nil, fmt.Errorf("%s: %w: bet must be positive", op, model.ErrValidation)
	}

	rnd, err := s.runner.NewRound(deal.ClientSeed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	deck := s.newDeck(rnd)
	dealt, err := deck.DrawN(4)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, model.ErrInternal, err)
	}

	now := s.now()
	sess := &model.BlackjackSession{
		ID:     uuid.NewString(),
		UserID: deal.UserID,
		Phase:  model.BlackjackDealing,
		Hands: []model.BlackjackHand{{
			Cards:    []cards.Card{dealt[0], dealt[1]},
			BetCents: deal.BetCents,
		}},
		DealerHand:    []cards.Card{dealt[2], dealt[3]},
		TotalBetCents: deal.BetCents,
		Round:         rnd,
		Deck:          deck,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if sess.DealerHand[0].Rank == cards.Ace {
		sess.Phase = model.BlackjackInsurancePrompt
	} else if err := peek(sess); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res, err := s.commit(ctx, nil, sess, "deal", deal.BetCents)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// peek - дилер проверяет блэкджек, натуральный блэкджек игрока тоже завершает раунд
func peek(sess *model.BlackjackSession) error {
	if !IsBlackjack(sess.DealerHand) && !IsBlackjack(sess.Hands[0].Cards) {
		sess.Phase = model.BlackjackPlaying
		return nil
	}
	return finish(sess)
}
