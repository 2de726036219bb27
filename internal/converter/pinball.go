package converter

import (
	"casino/internal/api/dto/pinball"
	"casino/internal/model"
)

func ToPinballPlay(userID int64, req pinball.PlayRequest) (model.PinballPlay, error) {
	level, err := model.ParsePinballLevel(req.Level)
	if err != nil {
		return model.PinballPlay{}, err
	}
	return model.PinballPlay{
		UserID:      userID,
		ClientSeed:  req.ClientSeed,
		AmountCents: req.AmountCents,
		Level:       level,
	}, nil
}

func ToPinballPlayResponse(res model.PinballResult) pinball.PlayResponse {
	out := pinball.PlayResponse{
		Round:           ToRoundResponse(res.Round),
		Reels:           res.Outcome.Reels,
		LinePayoutCents: res.Outcome.LinePayoutCents,
		BonusTriggered:  res.Outcome.BonusTriggered,
		Balls:           make([]pinball.Ball, 0, len(res.Outcome.Balls)),
	}
	for _, b := range res.Outcome.Balls {
		out.Balls = append(out.Balls, pinball.Ball{
			Pocket:      b.Pocket,
			Multiplier:  b.Multiplier,
			PayoutCents: b.PayoutCents,
		})
	}
	return out
}
