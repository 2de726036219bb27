package pinball

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

// Символ на третьем барабане, который открывает бонусные шары
const triggerSymbol = "ball"

type serv struct {
	reels  [][]string
	runner *round.Runner
}

func NewPinballService(reels [][]string, runner *round.Runner) service.PinballService {
	return &serv{
		reels:  reels,
		runner: runner,
	}
}

func (s *serv) Play(ctx context.Context, play model.PinballPlay) (*model.PinballResult, error) {
	if _, err := model.ParsePinballLevel(int(play.Level)); err != nil {
		return nil, fmt.Errorf("pinball.Play: %w", err)
	}

	outcome, res, err := round.Play(ctx, s.runner, round.Bet{
		UserID:     play.UserID,
		Game:       model.GamePinball,
		Action:     "play",
		ClientSeed: play.ClientSeed,
		BetCents:   play.DebitCents(),
	}, func(rnd fairness.Round) (model.PinballOutcome, int64, error) {
		o := Resolve(s.reels, play, rnd)
		return o, o.PayoutCents, nil
	})
	if err != nil {
		return nil, err
	}

	return &model.PinballResult{Outcome: outcome, Round: res}, nil
}

// Resolve - одна видимая строка из трех барабанов, затем бонусные шары
func Resolve(reels [][]string, play model.PinballPlay, rnd fairness.Round) model.PinballOutcome {
	var out model.PinballOutcome
	for i := range out.Reels {
		reel := reels[i]
		out.Reels[i] = reel[rnd.Uint("reel:"+strconv.Itoa(i), len(reel))]
	}

	if out.Reels[0] == out.Reels[1] && out.Reels[1] == out.Reels[2] {
		out.LinePayoutCents = play.AmountCents * int64(play.Level) * payout.PinballBase[out.Reels[0]]
	}
	out.PayoutCents = out.LinePayoutCents

	if out.Reels[2] != triggerSymbol {
		return out
	}

	out.BonusTriggered = true
	totalWeight := 0
	for _, p := range payout.PinballPockets {
		totalWeight += p.Weight
	}
	for b := 0; b < int(play.Level); b++ {
		idx := PickPocket(rnd.Uint("ball:"+strconv.Itoa(b), totalWeight))
		pocket := payout.PinballPockets[idx]
		ball := model.PinballBall{
			Pocket:      idx,
			Multiplier:  pocket.Multiplier.String(),
			PayoutCents: payout.Scaled(play.AmountCents, pocket.Multiplier),
		}
		out.Balls = append(out.Balls, ball)
		out.PayoutCents += ball.PayoutCents
	}
	return out
}

// PickPocket - лунка по значению в [0, totalWeight)
func PickPocket(v int) int {
	for i, p := range payout.PinballPockets {
		if v < p.Weight {
			return i
		}
		v -= p.Weight
	}
	return len(payout.PinballPockets) - 1
}
