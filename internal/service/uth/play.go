package uth

import (
	"casino/internal/cards"
	"casino/internal/model"
	"casino/internal/payout"
	"fmt"
	"slices"
)

// Допустимые множители ставки play по фазам
var multipliers = map[model.UTHPhase][]int{
	model.UTHPreflop: {3, 4},
	model.UTHFlop:    {2},
	model.UTHRiver:   {1},
}

// apply возвращает размер ставки play, которую нужно списать
func apply(sess *model.UTHSession, action model.UTHAction, multiplier int) (int64, error) {
	allowed, ok := multipliers[sess.Phase]
	if !ok {
		return 0, fmt.Errorf("%w: session is in phase %s", model.ErrValidation, sess.Phase)
	}

	switch {
	case action == model.UTHBet:
		// на флопе и ривере множитель единственный, его можно не передавать
		if multiplier == 0 && len(allowed) == 1 {
			multiplier = allowed[0]
		}
		if !slices.Contains(allowed, multiplier) {
			return 0, fmt.Errorf("%w: play multiplier %d not allowed in phase %s", model.ErrValidation, multiplier, sess.Phase)
		}
		sess.PlayCents = sess.AnteCents * int64(multiplier)
		sess.Phase = model.UTHShowdown
		sess.Settlement = Showdown(sess)
		return sess.PlayCents, nil

	case action == model.UTHCheck && sess.Phase == model.UTHPreflop:
		sess.Phase = model.UTHFlop
		return 0, nil

	case action == model.UTHCheck && sess.Phase == model.UTHFlop:
		sess.Phase = model.UTHRiver
		return 0, nil

	case action == model.UTHFold && sess.Phase == model.UTHRiver:
		sess.Phase = model.UTHFolded
		sess.Settlement = Fold(sess)
		return 0, nil
	}
	return 0, fmt.Errorf("%w: %s is not allowed in phase %s", model.ErrValidation, action, sess.Phase)
}

// Showdown - сравнение лучших пятерок из семи карт. Дилер квалифицируется с парой и выше.
func Showdown(sess *model.UTHSession) *model.UTHSettlement {
	player := cards.BestHand(append(slices.Clone(sess.PlayerCards), sess.Community...))
	dealer := cards.BestHand(append(slices.Clone(sess.DealerCards), sess.Community...))

	st := &model.UTHSettlement{
		PlayerHand:      player,
		DealerHand:      dealer,
		DealerQualifies: dealer.Category >= cards.OnePair,
		TripsCents:      Trips(sess.TripsCents, player.Category),
	}

	switch player.Compare(dealer) {
	case 1:
		st.Winner = model.UTHWinnerPlayer
		st.PlayCents = payout.Win(sess.PlayCents, payout.Odds(1))
		st.AnteCents = payout.Push(sess.AnteCents)
		if st.DealerQualifies {
			st.AnteCents = payout.Win(sess.AnteCents, payout.Odds(1))
		}
		st.BlindCents = Blind(sess.BlindCents, player.Category)
	case 0:
		st.Winner = model.UTHWinnerTie
		st.PlayCents = payout.Push(sess.PlayCents)
		st.AnteCents = payout.Push(sess.AnteCents)
		st.BlindCents = payout.Push(sess.BlindCents)
	default:
		st.Winner = model.UTHWinnerDealer
		if !st.DealerQualifies {
			st.AnteCents = payout.Push(sess.AnteCents)
		}
	}
	return st
}

// Fold - анте и блайнд проиграны, trips считается по руке игрока
func Fold(sess *model.UTHSession) *model.UTHSettlement {
	player := cards.BestHand(append(slices.Clone(sess.PlayerCards), sess.Community...))
	dealer := cards.BestHand(append(slices.Clone(sess.DealerCards), sess.Community...))

	return &model.UTHSettlement{
		PlayerHand:      player,
		DealerHand:      dealer,
		DealerQualifies: dealer.Category >= cards.OnePair,
		Winner:          model.UTHWinnerDealer,
		TripsCents:      Trips(sess.TripsCents, player.Category),
	}
}

// Blind - выигрыш блайнда по таблице, младшие комбинации возвращают ставку
func Blind(stake int64, category cards.HandCategory) int64 {
	if ratio, ok := payout.UTHBlind[category.String()]; ok {
		return payout.Win(stake, ratio)
	}
	return payout.Push(stake)
}

// Trips - побочная ставка на тройку и выше, иначе проиграна
func Trips(stake int64, category cards.HandCategory) int64 {
	if ratio, ok := payout.UTHTrips[category.String()]; ok {
		return payout.Win(stake, ratio)
	}
	return 0
}
