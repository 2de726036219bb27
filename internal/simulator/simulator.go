package simulator

import (
	"casino/internal/cards"
	"casino/internal/config"
	"casino/internal/fairness"
	"casino/internal/model"
	"casino/internal/service/baccarat"
	"casino/internal/service/pinball"
	"casino/internal/service/roulette"
	"casino/internal/service/sicbo"
	"casino/internal/service/slots"
	"casino/internal/service/wheel"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

// resolver - один раунд игры: сколько списано и сколько выплачено
type resolver func(rnd fairness.Round, bet int64) (debit, paid int64, err error)

// Config - параметры прогона
type Config struct {
	Game     model.Game
	Rounds   int
	Workers  int
	BetCents int64
	Progress bool
}

// Report - итог прогона. Mean и StdDev считаются по доходности раунда payout/debit.
type Report struct {
	Game        model.Game
	Rounds      int
	Wagered     int64
	Paid        int64
	RTP         decimal.Decimal
	Mean        float64
	StdDev      float64
	HitRate     float64
	MaxMultiple float64
	Elapsed     time.Duration
}

type Simulator struct {
	source    *fairness.Source
	resolvers map[model.Game]resolver
}

func New(games config.GamesConfig) (*Simulator, error) {
	bigBet, err := model.ParseSicBoBet("big", 1)
	if err != nil {
		return nil, err
	}
	segments := wheel.Symbols(games.WheelSegments())
	strips := games.SlotStrips()
	reels := games.PinballReels()

	return &Simulator{
		source: fairness.NewSource(),
		resolvers: map[model.Game]resolver{
			model.GameWheel: func(rnd fairness.Round, bet int64) (int64, int64, error) {
				o := wheel.Resolve(segments, map[model.WheelSymbol]int64{model.WheelOne: bet}, rnd)
				return bet, o.PayoutCents, nil
			},
			model.GameSlots: func(rnd fairness.Round, bet int64) (int64, int64, error) {
				return bet, slots.Resolve(strips, bet, rnd).PayoutCents, nil
			},
			model.GameSicBo: func(rnd fairness.Round, bet int64) (int64, int64, error) {
				b := bigBet
				b.AmountCents = bet
				o := sicbo.Settle(sicbo.RollDice(rnd), []model.SicBoBet{b})
				return bet, o.PayoutCents, nil
			},
			model.GameRoulette: func(rnd fairness.Round, bet int64) (int64, int64, error) {
				o := roulette.Settle(rnd.Uint("pocket", roulette.Pockets), []model.RouletteBet{
					{Type: model.RouletteRed, AmountCents: bet},
				})
				return bet, o.PayoutCents, nil
			},
			model.GamePinball: func(rnd fairness.Round, bet int64) (int64, int64, error) {
				play := model.PinballPlay{AmountCents: bet, Level: model.PinballLevelLow}
				return play.DebitCents(), pinball.Resolve(reels, play, rnd).PayoutCents, nil
			},
			model.GameBaccarat: func(rnd fairness.Round, bet int64) (int64, int64, error) {
				shoe := cards.Shuffled(rnd, baccarat.ShoeDecks)
				o, err := baccarat.Play(&shoe)
				if err != nil {
					return 0, 0, err
				}
				return bet, baccarat.Payout(model.BaccaratBanker, o.Winner, bet), nil
			},
		},
	}, nil
}

// Games - игры, для которых есть прогон
func (s *Simulator) Games() []model.Game {
	return []model.Game{
		model.GameWheel, model.GameSlots, model.GameSicBo,
		model.GameRoulette, model.GamePinball, model.GameBaccarat,
	}
}

type tally struct {
	returns []float64
	wagered int64
	paid    int64
	hits    int
	max     float64
}

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Report, error) {
	const op = "simulator.Run"

	play, ok := s.resolvers[cfg.Game]
	if !ok {
		return nil, fmt.Errorf("%s: %w: game %q cannot be simulated", op, model.ErrValidation, cfg.Game)
	}
	if cfg.Rounds < 1 || cfg.BetCents <= 0 {
		return nil, fmt.Errorf("%s: %w: rounds and bet must be positive", op, model.ErrValidation)
	}
	workers := max(cfg.Workers, 1)
	workers = min(workers, cfg.Rounds)

	tallies := make([]tally, workers)
	errs := make([]error, workers)

	bar := pb.StartNew(cfg.Rounds)
	if !cfg.Progress {
		bar.SetWriter(io.Discard)
	}

	wg := new(sync.WaitGroup)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		n := cfg.Rounds / workers
		if w < cfg.Rounds%workers {
			n++
		}
		go func(w, n int) {
			defer wg.Done()
			t := &tallies[w]
			t.returns = make([]float64, 0, n)
			for r := 0; r < n; r++ {
				if err := ctx.Err(); err != nil {
					errs[w] = err
					return
				}
				rnd, err := s.source.NewRound("")
				if err != nil {
					errs[w] = err
					return
				}
				debit, paid, err := play(rnd, cfg.BetCents)
				if err != nil {
					errs[w] = err
					return
				}
				t.record(debit, paid)
				bar.Increment()
			}
		}(w, n)
	}
	wg.Wait()
	elapsed := time.Since(bar.StartTime())
	bar.Finish()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	rep := merge(tallies)
	rep.Game = cfg.Game
	rep.Elapsed = elapsed
	return rep, nil
}

func (t *tally) record(debit, paid int64) {
	ret := float64(paid) / float64(debit)
	t.returns = append(t.returns, ret)
	t.wagered += debit
	t.paid += paid
	if paid > 0 {
		t.hits++
	}
	t.max = max(t.max, ret)
}

func merge(tallies []tally) *Report {
	var (
		rep     Report
		returns []float64
		hits    int
	)
	for _, t := range tallies {
		returns = append(returns, t.returns...)
		rep.Wagered += t.wagered
		rep.Paid += t.paid
		hits += t.hits
		rep.MaxMultiple = max(rep.MaxMultiple, t.max)
	}

	rep.Rounds = len(returns)
	if rep.Wagered > 0 {
		rep.RTP = decimal.NewFromInt(rep.Paid).Div(decimal.NewFromInt(rep.Wagered))
	}
	if rep.Rounds > 0 {
		rep.Mean, rep.StdDev = stat.MeanStdDev(returns, nil)
		rep.HitRate = float64(hits) / float64(rep.Rounds)
	}
	return &rep
}

func (r *Report) String() string {
	return fmt.Sprintf(
		"game=%s rounds=%d wagered=%d paid=%d rtp=%s mean=%.4f stddev=%.4f hit_rate=%.4f max=%.2fx elapsed=%s",
		r.Game, r.Rounds, r.Wagered, r.Paid, r.RTP.StringFixed(4), r.Mean, r.StdDev, r.HitRate, r.MaxMultiple, r.Elapsed,
	)
}
