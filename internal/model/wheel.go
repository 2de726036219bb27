package model

import "fmt"

// WheelSymbol - сегмент колеса, на который можно поставить
type WheelSymbol string

const (
	WheelOne    WheelSymbol = "1"
	WheelTwo    WheelSymbol = "2"
	WheelFive   WheelSymbol = "5"
	WheelTen    WheelSymbol = "10"
	WheelTwenty WheelSymbol = "20"
	WheelJoker  WheelSymbol = "joker"
	WheelLogo   WheelSymbol = "logo"
)

var wheelSymbols = []WheelSymbol{WheelOne, WheelTwo, WheelFive, WheelTen, WheelTwenty, WheelJoker, WheelLogo}

// ParseWheelSymbol - неизвестные символы отклоняются на границе
func ParseWheelSymbol(s string) (WheelSymbol, error) {
	for _, sym := range wheelSymbols {
		if string(sym) == s {
			return sym, nil
		}
	}
	return "", fmt.Errorf("%w: unknown wheel symbol %q", ErrValidation, s)
}

// WheelSpin - одна ставка: карта ставок по символам
type WheelSpin struct {
	UserID     int64
	ClientSeed string
	Stakes     map[WheelSymbol]int64
}

// TotalCents - сумма всех ставок
func (w WheelSpin) TotalCents() int64 {
	var total int64
	for _, v := range w.Stakes {
		total += v
	}
	return total
}

type WheelOutcome struct {
	Segment     int         `json:"segment"`
	Symbol      WheelSymbol `json:"symbol"`
	PayoutCents int64       `json:"payout_cents"`
}

type WheelResult struct {
	Outcome WheelOutcome
	Round   RoundResult
}
