package wheel

import (
	"casino/internal/fairness"
	"casino/internal/model"
	"casino/internal/payout"
	"casino/internal/service"
	"casino/internal/service/round"
	"context"
	"fmt"
)

type serv struct {
	segments []model.WheelSymbol
	runner   *round.Runner
}

// NewWheelService - колесо с порядком сегментов из конфига
func NewWheelService(segments []string, runner *round.Runner) service.WheelService {
	return &serv{
		segments: Symbols(segments),
		runner:   runner,
	}
}

func (s *serv) Spin(ctx context.Context, spin model.WheelSpin) (*model.WheelResult, error) {
	const op = "wheel.Spin"

	if err := validate(spin); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	outcome, res, err := round.Play(ctx, s.runner, round.Bet{
		UserID:     spin.UserID,
		Game:       model.GameWheel,
		Action:     "spin",
		ClientSeed: spin.ClientSeed,
		BetCents:   spin.TotalCents(),
	}, func(rnd fairness.Round) (model.WheelOutcome, int64, error) {
		o := Resolve(s.segments, spin.Stakes, rnd)
		return o, o.PayoutCents, nil
	})
	if err != nil {
		return nil, err
	}

	return &model.WheelResult{Outcome: outcome, Round: res}, nil
}

// Resolve - индекс сегмента Uint("wheel", len), выплата ставки на выпавший символ с возвратом
func Resolve(segments []model.WheelSymbol, stakes map[model.WheelSymbol]int64, rnd fairness.Round) model.WheelOutcome {
	idx := rnd.Uint("wheel", len(segments))
	sym := segments[idx]

	return model.WheelOutcome{
		Segment:     idx,
		Symbol:      sym,
		PayoutCents: Payout(sym, stakes),
	}
}

// Payout - stake * (ratio + 1) для выпавшего символа
func Payout(winner model.WheelSymbol, stakes map[model.WheelSymbol]int64) int64 {
	stake := stakes[winner]
	if stake <= 0 {
		return 0
	}
	return payout.Win(stake, payout.Odds(payout.WheelRatios[string(winner)]))
}

func validate(spin model.WheelSpin) error {
	if len(spin.Stakes) == 0 {
		return fmt.Errorf("%w: no stakes", model.ErrValidation)
	}
	for sym, amount := range spin.Stakes {
		if _, ok := payout.WheelRatios[string(sym)]; !ok {
			return fmt.Errorf("%w: unknown wheel symbol %q", model.ErrValidation, sym)
		}
		if amount <= 0 {
			return fmt.Errorf("%w: stake on %q must be positive", model.ErrValidation, sym)
		}
	}
	return nil
}

// Symbols - сегменты из конфигурации в символы колеса
func Symbols(segments []string) []model.WheelSymbol {
	out := make([]model.WheelSymbol, len(segments))
	for i, s := range segments {
		out[i] = model.WheelSymbol(s)
	}
	return out
}
