// Package payout - таблицы выплат и арифметика выплат в центах.
//
// Коэффициенты хранятся как decimal. Округление одно, вниз до цента.
package payout

import (
	"github.com/shopspring/decimal"
)

// Ratio - коэффициент выплаты numerator:denominator
func Ratio(numerator, denominator int64) decimal.Decimal {
	return decimal.NewFromInt(numerator).Div(decimal.NewFromInt(denominator))
}

// Odds - целый коэффициент N:1
func Odds(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// Win - ставка возвращается вместе с выигрышем: stake + floor(stake*ratio)
func Win(stake int64, ratio decimal.Decimal) int64 {
	return stake + Scaled(stake, ratio)
}

// Push - ставка возвращается без выигрыша
func Push(stake int64) int64 {
	return stake
}

// Scaled - floor(amount*multiplier) в центах
func Scaled(amount int64, multiplier decimal.Decimal) int64 {
	if amount <= 0 || multiplier.Sign() <= 0 {
		return 0
	}
	return decimal.NewFromInt(amount).Mul(multiplier).Floor().IntPart()
}
