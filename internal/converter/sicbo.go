package converter

import (
	"casino/internal/api/dto/sicbo"
	"casino/internal/model"
)

func ToSicBoRoll(userID int64, req sicbo.RollRequest) (model.SicBoRoll, error) {
	bets := make([]model.SicBoBet, 0, len(req.Bets))
	for _, b := range req.Bets {
		bet, err := model.ParseSicBoBet(b.Bet, b.AmountCents)
		if err != nil {
			return model.SicBoRoll{}, err
		}
		bets = append(bets, bet)
	}
	return model.SicBoRoll{
		UserID:     userID,
		ClientSeed: req.ClientSeed,
		Bets:       bets,
	}, nil
}

func ToSicBoRollResponse(res model.SicBoResult) sicbo.RollResponse {
	out := sicbo.RollResponse{
		Round: ToRoundResponse(res.Round),
		Dice:  res.Outcome.Dice,
		Total: res.Outcome.Total,
		Bets:  make([]sicbo.BetResult, 0, len(res.Outcome.Bets)),
	}
	for _, b := range res.Outcome.Bets {
		out.Bets = append(out.Bets, sicbo.BetResult{
			Bet:         b.Bet.Name(),
			AmountCents: b.Bet.AmountCents,
			Won:         b.Won,
			PayoutCents: b.PayoutCents,
		})
	}
	return out
}
