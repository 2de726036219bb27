package slots

import (
	"casino/internal/fairness"
	"casino/internal/model"
	"casino/internal/payout"
	"casino/internal/service/round"
	"context"
	"strconv"
)

// Минимум одинаковых символов в строке для выигрыша
const minMatch = 3

// Spin выполняет платный спин
func (s *serv) Spin(ctx context.Context, spin model.SlotsSpin) (*model.SlotsResult, error) {
	outcome, res, err := round.Play(ctx, s.runner, round.Bet{
		UserID:     spin.UserID,
		Game:       model.GameSlots,
		Action:     "spin",
		ClientSeed: spin.ClientSeed,
		BetCents:   spin.BetCents,
	}, func(rnd fairness.Round) (model.SlotsOutcome, int64, error) {
		o := Resolve(s.strips, spin.BetCents, rnd)
		return o, o.PayoutCents, nil
	})
	if err != nil {
		return nil, err
	}

	return &model.SlotsResult{Outcome: outcome, Round: res}, nil
}

// Resolve - остановки барабанов по сидам и оценка окна
func Resolve(strips [][]string, bet int64, rnd fairness.Round) model.SlotsOutcome {
	var stops [model.SlotsReels]int
	for r := 0; r < model.SlotsReels; r++ {
		stops[r] = rnd.Uint("reel:"+strconv.Itoa(r), len(strips[r]))
	}

	out := EvaluateGrid(GenerateGrid(strips, stops))
	out.Stops = stops
	out.PayoutCents = bet * out.TotalMultiplier
	return out
}

// GenerateGrid - видимое окно: над, на и под остановкой, барабан закольцован
func GenerateGrid(strips [][]string, stops [model.SlotsReels]int) [model.SlotsRows][model.SlotsReels]string {
	var grid [model.SlotsRows][model.SlotsReels]string
	for r := 0; r < model.SlotsReels; r++ {
		strip := strips[r]
		n := len(strip)
		for row := 0; row < model.SlotsRows; row++ {
			grid[row][r] = strip[(stops[r]+row-1+n)%n]
		}
	}
	return grid
}

// EvaluateGrid выполняет оценку трех строк. Строка выигрывает, если самый частый
// символ встречается 3+ раз в любых позициях; множитель base*(count-2), строки суммируются.
func EvaluateGrid(grid [model.SlotsRows][model.SlotsReels]string) model.SlotsOutcome {
	out := model.SlotsOutcome{Grid: grid}

	for row := 0; row < model.SlotsRows; row++ {
		symbol, count := mostFrequent(grid[row])
		if count < minMatch {
			continue
		}
		mult := payout.SlotBase[symbol] * int64(count-2)
		out.RowWins = append(out.RowWins, model.SlotsRowWin{
			Row:        model.SlotsRowNames[row],
			Symbol:     symbol,
			Count:      count,
			Multiplier: mult,
		})
		out.TotalMultiplier += mult
	}

	// Почти выигрыш показываем только без выигрышных строк
	middle := grid[1]
	if len(out.RowWins) == 0 && middle[0] == middle[1] && middle[2] != middle[0] {
		out.NearMiss = true
	}

	return out
}

func mostFrequent(row [model.SlotsReels]string) (string, int) {
	counts := make(map[string]int, len(row))
	var best string
	var bestCount int
	for _, sym := range row {
		counts[sym]++
		if counts[sym] > bestCount {
			best, bestCount = sym, counts[sym]
		}
	}
	return best, bestCount
}
