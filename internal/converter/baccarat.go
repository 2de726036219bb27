package converter

import (
	"casino/internal/api/dto/baccarat"
	"casino/internal/model"
)

func ToBaccaratDeal(userID int64, req baccarat.DealRequest) (model.BaccaratDeal, error) {
	side, err := model.ParseBaccaratSide(req.Side)
	if err != nil {
		return model.BaccaratDeal{}, err
	}
	return model.BaccaratDeal{
		UserID:      userID,
		ClientSeed:  req.ClientSeed,
		Side:        side,
		AmountCents: req.AmountCents,
	}, nil
}

func ToBaccaratDealResponse(res model.BaccaratResult) baccarat.DealResponse {
	return baccarat.DealResponse{
		Round:       ToRoundResponse(res.Round),
		PlayerCards: res.Outcome.PlayerCards,
		BankerCards: res.Outcome.BankerCards,
		PlayerTotal: res.Outcome.PlayerTotal,
		BankerTotal: res.Outcome.BankerTotal,
		Winner:      string(res.Outcome.Winner),
	}
}
