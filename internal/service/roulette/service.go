package roulette

import (
	"casino/internal/fairness"
	"casino/internal/model"
	"casino/internal/payout"
	"casino/internal/service"
	"casino/internal/service/round"
	"context"
	"fmt"
)

var odds = map[model.RouletteBetType]int64{
	model.RouletteStraight: payout.RouletteStraight,
	model.RouletteSplit:    payout.RouletteSplit,
	model.RouletteStreet:   payout.RouletteStreet,
	model.RouletteCorner:   payout.RouletteCorner,
	model.RouletteSixLine:  payout.RouletteSixLine,
	model.RouletteDozen:    payout.RouletteDozen,
	model.RouletteColumn:   payout.RouletteColumn,
	model.RouletteRed:      payout.RouletteEvenChance,
	model.RouletteBlack:    payout.RouletteEvenChance,
	model.RouletteOdd:      payout.RouletteEvenChance,
	model.RouletteEven:     payout.RouletteEvenChance,
	model.RouletteLow:      payout.RouletteEvenChance,
	model.RouletteHigh:     payout.RouletteEvenChance,
}

type serv struct {
	runner *round.Runner
}

func NewRouletteService(runner *round.Runner) service.RouletteService {
	return &serv{runner: runner}
}

func (s *serv) Spin(ctx context.Context, spin model.RouletteSpin) (*model.RouletteResult, error) {
	const op = "roulette.Spin"

	if len(spin.Bets) == 0 {
		return nil, fmt.Errorf("%s: %w: no bets", op, model.ErrValidation)
	}
	for _, bet := range spin.Bets {
		if err := Validate(bet); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	outcome, res, err := round.Play(ctx, s.runner, round.Bet{
		UserID:     spin.UserID,
		Game:       model.GameRoulette,
		Action:     "spin",
		ClientSeed: spin.ClientSeed,
		BetCents:   spin.TotalCents(),
	}, func(rnd fairness.Round) (model.RouletteOutcome, int64, error) {
		o := Settle(rnd.Uint("pocket", Pockets), spin.Bets)
		return o, o.PayoutCents, nil
	})
	if err != nil {
		return nil, err
	}

	return &model.RouletteResult{Outcome: outcome, Round: res}, nil
}

// Settle - выплаты по всем ставкам суммируются
func Settle(pocket int, bets []model.RouletteBet) model.RouletteOutcome {
	out := model.RouletteOutcome{Pocket: pocket, Color: Color(pocket)}

	for _, bet := range bets {
		r := model.RouletteBetResult{Bet: bet}
		if Covers(bet, pocket) {
			r.Won = true
			r.PayoutCents = payout.Win(bet.AmountCents, payout.Odds(odds[bet.Type]))
		}
		out.Bets = append(out.Bets, r)
		out.PayoutCents += r.PayoutCents
	}
	return out
}
