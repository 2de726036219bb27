// Package cards - карты, колоды и шузы для блэкджека, баккары и UTH.
package cards

import (
	"fmt"
	"strings"
)

type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var suitNames = [...]string{"clubs", "diamonds", "hearts", "spades"}

func (s Suit) String() string {
	if int(s) < len(suitNames) {
		return suitNames[s]
	}
	return fmt.Sprintf("suit(%d)", s)
}

func (s Suit) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Suit) UnmarshalText(b []byte) error {
	for i, name := range suitNames {
		if name == string(b) {
			*s = Suit(i)
			return nil
		}
	}
	return fmt.Errorf("unknown suit %q", b)
}

// Rank - достоинство карты, туз старший (14)
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = map[Rank]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7", Eight: "8",
	Nine: "9", Ten: "10", Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rank(%d)", r)
}

func (r Rank) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rank) UnmarshalText(b []byte) error {
	for rank, name := range rankNames {
		if strings.EqualFold(name, string(b)) {
			*r = rank
			return nil
		}
	}
	return fmt.Errorf("unknown rank %q", b)
}

// IsFace - J, Q, K
func (r Rank) IsFace() bool {
	return r >= Jack && r <= King
}

type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func (c Card) String() string {
	return c.Rank.String() + strings.ToUpper(c.Suit.String()[:1])
}
