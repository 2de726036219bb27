package cards

import (
	"casino/internal/fairness"
	"errors"
	"strconv"
)

var ErrDeckEmpty = errors.New("deck is empty")

// Deck - упорядоченная последовательность карт, карты снимаются с конца
type Deck []Card

// NewDeck возвращает упорядоченный шуз из n колод по 52 карты
func NewDeck(n int) Deck {
	d := make(Deck, 0, 52*n)
	for i := 0; i < n; i++ {
		for s := Clubs; s <= Spades; s++ {
			for r := Two; r <= Ace; r++ {
				d = append(d, Card{Suit: s, Rank: r})
			}
		}
	}
	return d
}

// Shuffled - Fisher-Yates, где каждая перестановка берет свой label "shuffle:i",
// так что порядок колоды воспроизводим по сидам раунда.
func Shuffled(round fairness.Round, decks int) Deck {
	d := NewDeck(decks)
	for i := len(d) - 1; i > 0; i-- {
		j := round.Uint("shuffle:"+strconv.Itoa(i), i+1)
		d[i], d[j] = d[j], d[i]
	}
	return d
}

// Draw снимает верхнюю (последнюю) карту
func (d *Deck) Draw() (Card, error) {
	n := len(*d)
	if n == 0 {
		return Card{}, ErrDeckEmpty
	}
	c := (*d)[n-1]
	*d = (*d)[:n-1]
	return c, nil
}

// DrawN снимает n карт в порядке выдачи
func (d *Deck) DrawN(n int) ([]Card, error) {
	out := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		c, err := d.Draw()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (d Deck) Len() int {
	return len(d)
}

func (d Deck) Clone() Deck {
	out := make(Deck, len(d))
	copy(out, d)
	return out
}

// Stack строит колоду, из которой карты выходят в переданном порядке
func Stack(order ...Card) Deck {
	d := make(Deck, len(order))
	for i, c := range order {
		d[len(order)-1-i] = c
	}
	return d
}
