package converter

import (
	"casino/internal/api/dto/blackjack"
	"casino/internal/model"
	bj "casino/internal/service/blackjack"
)

func ToBlackjackDeal(userID int64, req blackjack.DealRequest) model.BlackjackDeal {
	return model.BlackjackDeal{
		UserID:     userID,
		ClientSeed: req.ClientSeed,
		BetCents:   req.BetCents,
	}
}

func ToBlackjackMove(userID int64, sessionID, action string) (model.BlackjackMove, error) {
	a, err := model.ParseBlackjackAction(action)
	if err != nil {
		return model.BlackjackMove{}, err
	}
	return model.BlackjackMove{
		UserID:    userID,
		SessionID: sessionID,
		Action:    a,
	}, nil
}

// ToBlackjackResponse скрывает закрытую карту дилера до конца раунда
func ToBlackjackResponse(res model.BlackjackResult) blackjack.SessionResponse {
	sess := res.Session
	out := blackjack.SessionResponse{
		Round:           ToRoundResponse(res.Round),
		SessionID:       sess.ID,
		GameStatus:      string(sess.Phase),
		Hands:           make([]blackjack.Hand, 0, len(sess.Hands)),
		ActiveHand:      sess.Active,
		DealerCards:     sess.DealerHand[:1],
		InsuranceCents:  sess.InsuranceCents,
		InsurancePayout: sess.InsurancePayout,
		TotalBetCents:   sess.TotalBetCents,
	}
	if sess.Phase == model.BlackjackResolved {
		out.DealerCards = sess.DealerHand
		out.DealerTotal, _ = bj.HandValue(sess.DealerHand)
	}
	for _, h := range sess.Hands {
		total, soft := bj.HandValue(h.Cards)
		out.Hands = append(out.Hands, blackjack.Hand{
			Cards:       h.Cards,
			Total:       total,
			Soft:        soft,
			BetCents:    h.BetCents,
			Doubled:     h.Doubled,
			Finished:    h.Finished(),
			Outcome:     h.Outcome,
			PayoutCents: h.PayoutCents,
		})
	}
	return out
}
