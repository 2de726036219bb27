package blackjack

import (
	"casino/internal/cards"
	"casino/internal/model"
	"casino/internal/payout"
	"context"
	"fmt"
	"slices"
)

// Не больше трех рук после сплитов
const maxHands = 3

// Act применяет действие к копии сессии; хранилище меняется только после расчета в леджере
func (s *serv) Act(ctx context.Context, move model.BlackjackMove) (*model.BlackjackResult, error) {
	const op = "blackjack.Act"

	lease, err := s.store.Acquire(ctx, move.SessionID, move.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer lease.Release()

	sess := lease.Session().Clone()
	extra, err := apply(sess, move.Action)
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

// apply возвращает дополнительную ставку, которую нужно списать
func apply(sess *model.BlackjackSession, action model.BlackjackAction) (int64, error) {
	switch sess.Phase {
	case model.BlackjackInsurancePrompt:
		return applyInsurance(sess, action)
	case model.BlackjackPlaying:
		extra, err := applyPlay(sess, action)
		if err != nil {
			return 0, err
		}
		sess.Acted = true
		return extra, advance(sess)
	}
	return 0, notAllowed(sess, action)
}

func applyInsurance(sess *model.BlackjackSession, action model.BlackjackAction) (int64, error) {
	var extra int64
	switch action {
	case model.BlackjackInsure:
		extra = sess.Hands[0].BetCents / 2
		if extra <= 0 {
			return 0, fmt.Errorf("%w: bet too small for insurance", model.ErrValidation)
		}
		sess.InsuranceCents = extra
		sess.TotalBetCents += extra
	case model.BlackjackDecline:
	default:
		return 0, notAllowed(sess, action)
	}
	return extra, peek(sess)
}

func applyPlay(sess *model.BlackjackSession, action model.BlackjackAction) (int64, error) {
	h := &sess.Hands[sess.Active]

	switch action {
	case model.BlackjackHit:
		if err := drawTo(sess, h); err != nil {
			return 0, err
		}
		return 0, nil

	case model.BlackjackStand:
		h.Stood = true
		return 0, nil

	case model.BlackjackDouble:
		if len(h.Cards) != 2 {
			return 0, fmt.Errorf("%w: double only on two cards", model.ErrValidation)
		}
		extra := h.BetCents
		h.BetCents *= 2
		h.Doubled = true
		sess.TotalBetCents += extra
		if err := drawTo(sess, h); err != nil {
			return 0, err
		}
		h.Stood = !h.Busted
		return extra, nil

	case model.BlackjackSplit:
		return split(sess)

	case model.BlackjackSurrender:
		if sess.Acted || len(sess.Hands) != 1 || len(h.Cards) != 2 {
			return 0, fmt.Errorf("%w: surrender only as the first action", model.ErrValidation)
		}
		h.Surrendered = true
		return 0, nil
	}
	return 0, notAllowed(sess, action)
}

func split(sess *model.BlackjackSession) (int64, error) {
	h := &sess.Hands[sess.Active]
	if len(h.Cards) != 2 || h.Cards[0].Rank != h.Cards[1].Rank {
		return 0, fmt.Errorf("%w: split needs a pair", model.ErrValidation)
	}
	if len(sess.Hands) >= maxHands {
		return 0, fmt.Errorf("%w: at most %d hands", model.ErrValidation, maxHands)
	}

	aces := h.Cards[0].Rank == cards.Ace
	extra := h.BetCents
	sess.TotalBetCents += extra

	second := model.BlackjackHand{
		Cards:     []cards.Card{h.Cards[1]},
		BetCents:  h.BetCents,
		FromSplit: true,
	}
	h.Cards = h.Cards[:1]
	h.FromSplit = true
	sess.Hands = slices.Insert(sess.Hands, sess.Active+1, second)

	// после Insert указатель h мог устареть
	for _, i := range []int{sess.Active, sess.Active + 1} {
		hand := &sess.Hands[i]
		if err := drawTo(sess, hand); err != nil {
			return 0, err
		}
		if aces {
			hand.Stood = true
		}
	}
	return extra, nil
}

// drawTo добирает карту; перебор закрывает руку, 21 закрывает автоматически
func drawTo(sess *model.BlackjackSession, h *model.BlackjackHand) error {
	c, err := sess.Deck.Draw()
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrInternal, err)
	}
	h.Cards = append(h.Cards, c)

	switch v, _ := HandValue(h.Cards); {
	case v > 21:
		h.Busted = true
	case v == 21:
		h.Stood = true
	}
	return nil
}

// advance переходит к следующей незакрытой руке или завершает раунд
func advance(sess *model.BlackjackSession) error {
	for sess.Active < len(sess.Hands) && sess.Hands[sess.Active].Finished() {
		sess.Active++
	}
	if sess.Active < len(sess.Hands) {
		return nil
	}
	sess.Active = len(sess.Hands) - 1
	return finish(sess)
}

// finish - игра дилера и расчет всех рук. Дилер стоит на любых 17.
func finish(sess *model.BlackjackSession) error {
	dealerBJ := IsBlackjack(sess.DealerHand)
	single := len(sess.Hands) == 1

	if !dealerBJ && dealerNeeded(sess, single) {
		for {
			v, _ := HandValue(sess.DealerHand)
			if v > 16 {
				break
			}
			c, err := sess.Deck.Draw()
			if err != nil {
				return fmt.Errorf("%w: %v", model.ErrInternal, err)
			}
			sess.DealerHand = append(sess.DealerHand, c)
		}
	}

	dealer, _ := HandValue(sess.DealerHand)
	var total int64
	for i := range sess.Hands {
		h := &sess.Hands[i]
		h.Outcome, h.PayoutCents = settleHand(h, dealer, dealerBJ, single)
		total += h.PayoutCents
	}

	if sess.InsuranceCents > 0 && dealerBJ {
		sess.InsurancePayout = payout.Scaled(sess.InsuranceCents, payout.BlackjackInsurance)
		total += sess.InsurancePayout
	}

	sess.TotalPayoutCents = total
	sess.Phase = model.BlackjackResolved
	return nil
}

// dealerNeeded - дилер играет, только если есть рука, которую нужно с ним сравнить
func dealerNeeded(sess *model.BlackjackSession, single bool) bool {
	for _, h := range sess.Hands {
		natural := single && !h.FromSplit && IsBlackjack(h.Cards)
		if !h.Busted && !h.Surrendered && !natural {
			return true
		}
	}
	return false
}

func settleHand(h *model.BlackjackHand, dealer int, dealerBJ, single bool) (string, int64) {
	natural := single && !h.FromSplit && IsBlackjack(h.Cards)
	player, _ := HandValue(h.Cards)

	switch {
	case h.Surrendered:
		return model.HandSurrender, payout.Scaled(h.BetCents, payout.BlackjackSurrender)
	case h.Busted:
		return model.HandBust, 0
	case natural && dealerBJ:
		return model.HandPush, payout.Scaled(h.BetCents, payout.BlackjackPush)
	case natural:
		return model.HandBlackjack, payout.Scaled(h.BetCents, payout.BlackjackNatural)
	case dealerBJ:
		return model.HandLoss, 0
	case dealer > 21 || player > dealer:
		return model.HandWin, payout.Scaled(h.BetCents, payout.BlackjackWin)
	case player == dealer:
		return model.HandPush, payout.Scaled(h.BetCents, payout.BlackjackPush)
	}
	return model.HandLoss, 0
}

func notAllowed(sess *model.BlackjackSession, action model.BlackjackAction) error {
	return fmt.Errorf("%w: %s is not allowed in phase %s", model.ErrValidation, action, sess.Phase)
}
