package converter

import (
	"casino/internal/api/dto/wheel"
	"casino/internal/model"
)

func ToWheelSpin(userID int64, req wheel.SpinRequest) (model.WheelSpin, error) {
	stakes := make(map[model.WheelSymbol]int64, len(req.Stakes))
	for name, amount := range req.Stakes {
		sym, err := model.ParseWheelSymbol(name)
		if err != nil {
			return model.WheelSpin{}, err
		}
		stakes[sym] = amount
	}
	return model.WheelSpin{
		UserID:     userID,
		ClientSeed: req.ClientSeed,
		Stakes:     stakes,
	}, nil
}

func ToWheelSpinResponse(res model.WheelResult) wheel.SpinResponse {
	return wheel.SpinResponse{
		Round:   ToRoundResponse(res.Round),
		Segment: res.Outcome.Segment,
		Symbol:  string(res.Outcome.Symbol),
	}
}
