package baccarat

import (
	"casino/internal/cards"
	"casino/internal/fairness"
	"casino/internal/model"
	"casino/internal/payout"
	"casino/internal/service"
	"casino/internal/service/round"
	"context"
	"fmt"
)

// Шуз из 8 колод, новый на каждую раздачу
const ShoeDecks = 8

type serv struct {
	runner *round.Runner
}

func NewBaccaratService(runner *round.Runner) service.BaccaratService {
	return &serv{runner: runner}
}

func (s *serv) Deal(ctx context.Context, deal model.BaccaratDeal) (*model.BaccaratResult, error) {
	if _, err := model.ParseBaccaratSide(string(deal.Side)); err != nil {
		return nil, fmt.Errorf("baccarat.Deal: %w", err)
	}

	outcome, res, err := round.Play(ctx, s.runner, round.Bet{
		UserID:     deal.UserID,
		Game:       model.GameBaccarat,
		Action:     "deal",
		ClientSeed: deal.ClientSeed,
		BetCents:   deal.AmountCents,
	}, func(rnd fairness.Round) (model.BaccaratOutcome, int64, error) {
		shoe := cards.Shuffled(rnd, ShoeDecks)
		o, err := Play(&shoe)
		if err != nil {
			return model.BaccaratOutcome{}, 0, err
		}
		o.PayoutCents = Payout(deal.Side, o.Winner, deal.AmountCents)
		return o, o.PayoutCents, nil
	})
	if err != nil {
		return nil, err
	}

	return &model.BaccaratResult{Outcome: outcome, Round: res}, nil
}

// Play - раздача P, B, P, B и третьи карты по правилам
func Play(shoe *cards.Deck) (model.BaccaratOutcome, error) {
	dealt, err := shoe.DrawN(4)
	if err != nil {
		return model.BaccaratOutcome{}, err
	}
	player := []cards.Card{dealt[0], dealt[2]}
	banker := []cards.Card{dealt[1], dealt[3]}

	pt, bt := Total(player), Total(banker)
	if pt < 8 && bt < 8 {
		var playerThird *cards.Card
		if pt <= 5 {
			c, err := shoe.Draw()
			if err != nil {
				return model.BaccaratOutcome{}, err
			}
			player = append(player, c)
			playerThird = &c
		}
		if BankerDraws(bt, playerThird) {
			c, err := shoe.Draw()
			if err != nil {
				return model.BaccaratOutcome{}, err
			}
			banker = append(banker, c)
		}
	}

	out := model.BaccaratOutcome{
		PlayerCards: player,
		BankerCards: banker,
		PlayerTotal: Total(player),
		BankerTotal: Total(banker),
	}
	switch {
	case out.PlayerTotal > out.BankerTotal:
		out.Winner = model.BaccaratPlayer
	case out.BankerTotal > out.PlayerTotal:
		out.Winner = model.BaccaratBanker
	default:
		out.Winner = model.BaccaratTie
	}
	return out, nil
}

// BankerDraws - правило третьей карты банкира. playerThird == nil, если игрок стоял.
func BankerDraws(bankerTotal int, playerThird *cards.Card) bool {
	if playerThird == nil {
		return bankerTotal <= 5
	}
	p := Value(*playerThird)
	switch bankerTotal {
	case 0, 1, 2:
		return true
	case 3:
		return p != 8
	case 4:
		return p >= 2 && p <= 7
	case 5:
		return p >= 4 && p <= 7
	case 6:
		return p == 6 || p == 7
	}
	return false
}

// Value - очки карты: туз 1, десятки и картинки 0
func Value(c cards.Card) int {
	switch {
	case c.Rank == cards.Ace:
		return 1
	case c.Rank >= cards.Ten:
		return 0
	}
	return int(c.Rank)
}

// Total - сумма очков по модулю 10
func Total(hand []cards.Card) int {
	t := 0
	for _, c := range hand {
		t += Value(c)
	}
	return t % 10
}

// Payout - полная сумма возврата по ставке на side
func Payout(side, winner model.BaccaratSide, amount int64) int64 {
	switch {
	case side == winner && side == model.BaccaratPlayer:
		return payout.Win(amount, payout.BaccaratPlayer)
	case side == winner && side == model.BaccaratBanker:
		return payout.Win(amount, payout.BaccaratBanker)
	case side == winner && side == model.BaccaratTie:
		return payout.Win(amount, payout.BaccaratTie)
	case winner == model.BaccaratTie:
		// На ничьей ставки на игрока и банкира возвращаются
		return payout.Push(amount)
	}
	return 0
}
