package converter

import (
	"casino/internal/api/dto/slots"
	"casino/internal/model"
)

func ToSlotsSpin(userID int64, req slots.SpinRequest) model.SlotsSpin {
	return model.SlotsSpin{
		UserID:     userID,
		ClientSeed: req.ClientSeed,
		BetCents:   req.BetCents,
	}
}

func ToSlotsSpinResponse(res model.SlotsResult) slots.SpinResponse {
	out := slots.SpinResponse{
		Round:           ToRoundResponse(res.Round),
		Stops:           res.Outcome.Stops,
		Grid:            res.Outcome.Grid,
		RowWins:         make([]slots.RowWin, 0, len(res.Outcome.RowWins)),
		TotalMultiplier: res.Outcome.TotalMultiplier,
		NearMiss:        res.Outcome.NearMiss,
	}
	for _, w := range res.Outcome.RowWins {
		out.RowWins = append(out.RowWins, slots.RowWin{
			Row:        w.Row,
			Symbol:     w.Symbol,
			Count:      w.Count,
			Multiplier: w.Multiplier,
		})
	}
	return out
}
