package blackjack

import (
	"casino/internal/cards"
)

// HandValue - лучшая сумма руки и признак мягкой руки (туз считается за 11)
func HandValue(hand []cards.Card) (int, bool) {
	total, aces := 0, 0
	for _, c := range hand {
		switch {
		case c.Rank == cards.Ace:
			total += 11
			aces++
		case c.Rank >= cards.Ten:
			total += 10
		default:
			total += int(c.Rank)
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces > 0
}

// IsBlackjack - 21 на двух картах
func IsBlackjack(hand []cards.Card) bool {
	if len(hand) != 2 {
		return false
	}
	v, _ := HandValue(hand)
	return v == 21
}
