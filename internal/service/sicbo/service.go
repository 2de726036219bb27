package sicbo

import (
	"casino/internal/fairness"
	"casino/internal/model"
	"casino/internal/payout"
	"casino/internal/service"
	"casino/internal/service/round"
	"context"
	"fmt"
	"strconv"
)

type serv struct {
	runner *round.Runner
}

func NewSicBoService(runner *round.Runner) service.SicBoService {
	return &serv{runner: runner}
}

// Roll - бросок трех костей, все ставки раунда считаются по одному броску
func (s *serv) Roll(ctx context.Context, roll model.SicBoRoll) (*model.SicBoResult, error) {
	if len(roll.Bets) == 0 {
		return nil, fmt.Errorf("sicbo.Roll: %w: no bets", model.ErrValidation)
	}

	outcome, res, err := round.Play(ctx, s.runner, round.Bet{
		UserID:     roll.UserID,
		Game:       model.GameSicBo,
		Action:     "roll",
		ClientSeed: roll.ClientSeed,
		BetCents:   roll.TotalCents(),
	}, func(rnd fairness.Round) (model.SicBoOutcome, int64, error) {
		o := Settle(RollDice(rnd), roll.Bets)
		return o, o.PayoutCents, nil
	})
	if err != nil {
		return nil, err
	}

	return &model.SicBoResult{Outcome: outcome, Round: res}, nil
}

// RollDice - кость i берет label "die:i"
func RollDice(rnd fairness.Round) [3]int {
	var dice [3]int
	for i := range dice {
		dice[i] = rnd.Uint("die:"+strconv.Itoa(i), 6) + 1
	}
	return dice
}

// Settle считает все ставки по выпавшим костям
func Settle(dice [3]int, bets []model.SicBoBet) model.SicBoOutcome {
	out := model.SicBoOutcome{Dice: dice, Total: dice[0] + dice[1] + dice[2]}

	for _, bet := range bets {
		won, paid := Evaluate(dice, bet)
		out.Bets = append(out.Bets, model.SicBoBetResult{Bet: bet, Won: won, PayoutCents: paid})
		out.PayoutCents += paid
	}
	return out
}

// Evaluate - выигрыш платит stake + stake*odds
func Evaluate(dice [3]int, bet model.SicBoBet) (bool, int64) {
	total := dice[0] + dice[1] + dice[2]
	triple := dice[0] == dice[1] && dice[1] == dice[2]

	var odds int64
	switch bet.Kind {
	case model.SicBoBig:
		if !triple && total >= 11 && total <= 17 {
			odds = payout.SicBoBigSmall
		}
	case model.SicBoSmall:
		if !triple && total >= 4 && total <= 10 {
			odds = payout.SicBoBigSmall
		}
	case model.SicBoOdd:
		if !triple && total%2 == 1 {
			odds = payout.SicBoOddEven
		}
	case model.SicBoEven:
		if !triple && total%2 == 0 {
			odds = payout.SicBoOddEven
		}
	case model.SicBoTotal:
		if total == bet.Total {
			odds = payout.SicBoTotals[total]
		}
	case model.SicBoDouble:
		if count(dice, bet.Face) >= 2 {
			odds = payout.SicBoDouble
		}
	case model.SicBoTriple:
		if triple && dice[0] == bet.Face {
			odds = payout.SicBoTriple
		}
	case model.SicBoAnyTriple:
		if triple {
			odds = payout.SicBoAnyTriple
		}
	case model.SicBoCombo:
		if count(dice, bet.Face) >= 1 && count(dice, bet.Face2) >= 1 {
			odds = payout.SicBoCombo
		}
	case model.SicBoSingle:
		odds = int64(count(dice, bet.Face))
	}

	if odds == 0 {
		return false, 0
	}
	return true, payout.Win(bet.AmountCents, payout.Odds(odds))
}

func count(dice [3]int, face int) int {
	n := 0
	for _, d := range dice {
		if d == face {
			n++
		}
	}
	return n
}
