package converter

import (
	"casino/internal/api/dto/uth"
	"casino/internal/model"
)

func ToUTHDeal(userID int64, req uth.DealRequest) model.UTHDeal {
	return model.UTHDeal{
		UserID:     userID,
		ClientSeed: req.ClientSeed,
		AnteCents:  req.AnteCents,
		TripsCents: req.TripsCents,
	}
}

func ToUTHMove(userID int64, sessionID, action string, req uth.ActRequest) (model.UTHMove, error) {
	a, err := model.ParseUTHAction(action)
	if err != nil {
		return model.UTHMove{}, err
	}
	return model.UTHMove{
		UserID:     userID,
		SessionID:  sessionID,
		Action:     a,
		Multiplier: req.Multiplier,
	}, nil
}

// ToUTHResponse отдает только открытые общие карты; карты дилера - после завершения
func ToUTHResponse(res model.UTHResult) uth.SessionResponse {
	sess := res.Session
	out := uth.SessionResponse{
		Round:       ToRoundResponse(res.Round),
		SessionID:   sess.ID,
		GameStatus:  string(sess.Phase),
		PlayerCards: sess.PlayerCards,
		Community:   sess.VisibleCommunity(),
		AnteCents:   sess.AnteCents,
		BlindCents:  sess.BlindCents,
		TripsCents:  sess.TripsCents,
		PlayCents:   sess.PlayCents,
	}
	if sess.Phase.Terminal() {
		out.DealerCards = sess.DealerCards
	}
	if st := sess.Settlement; st != nil {
		out.Settlement = &uth.Settlement{
			PlayerHand:      st.PlayerHand.Category.String(),
			DealerHand:      st.DealerHand.Category.String(),
			DealerQualifies: st.DealerQualifies,
			Winner:          st.Winner,
			AnteCents:       st.AnteCents,
			BlindCents:      st.BlindCents,
			PlayCents:       st.PlayCents,
			TripsCents:      st.TripsCents,
		}
	}
	return out
}
