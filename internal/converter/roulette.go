package converter

import (
	"casino/internal/api/dto/roulette"
	"casino/internal/model"
)

func ToRouletteSpin(userID int64, req roulette.SpinRequest) (model.RouletteSpin, error) {
	bets := make([]model.RouletteBet, 0, len(req.Bets))
	for _, b := range req.Bets {
		t, err := model.ParseRouletteBetType(b.Type)
		if err != nil {
			return model.RouletteSpin{}, err
		}
		bets = append(bets, model.RouletteBet{
			Type:        t,
			Numbers:     b.Numbers,
			AmountCents: b.AmountCents,
		})
	}
	return model.RouletteSpin{
		UserID:     userID,
		ClientSeed: req.ClientSeed,
		Bets:       bets,
	}, nil
}

func ToRouletteSpinResponse(res model.RouletteResult) roulette.SpinResponse {
	out := roulette.SpinResponse{
		Round:  ToRoundResponse(res.Round),
		Pocket: res.Outcome.Pocket,
		Color:  res.Outcome.Color,
		Bets:   make([]roulette.BetResult, 0, len(res.Outcome.Bets)),
	}
	for _, b := range res.Outcome.Bets {
		out.Bets = append(out.Bets, roulette.BetResult{
			Type:        string(b.Bet.Type),
			Numbers:     b.Bet.Numbers,
			AmountCents: b.Bet.AmountCents,
			Won:         b.Won,
			PayoutCents: b.PayoutCents,
		})
	}
	return out
}
