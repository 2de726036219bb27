package payout

import (
	"github.com/shopspring/decimal"
)

// Колесо: коэффициент N:1 для сегмента
var WheelRatios = map[string]int64{
	"1":     1,
	"2":     2,
	"5":     5,
	"10":    10,
	"20":    20,
	"joker": 40,
	"logo":  40,
}

// Слоты: базовый множитель символа, строка платит base*(count-2)
var SlotBase = map[string]int64{
	"cherry":  2,
	"lemon":   3,
	"orange":  4,
	"plum":    5,
	"bell":    10,
	"bar":     20,
	"seven":   50,
	"diamond": 100,
}

// Сик бо
const (
	SicBoBigSmall  = 1
	SicBoOddEven   = 1
	SicBoDouble    = 10
	SicBoTriple    = 180
	SicBoAnyTriple = 30
	SicBoCombo     = 5
)

// SicBoTotals - коэффициенты ставок на сумму 4..17
var SicBoTotals = map[int]int64{
	4: 60, 5: 30, 6: 17, 7: 12, 8: 8, 9: 6, 10: 6,
	11: 6, 12: 6, 13: 8, 14: 12, 15: 17, 16: 30, 17: 60,
}

// Рулетка
const (
	RouletteStraight   = 35
	RouletteSplit      = 17
	RouletteStreet     = 11
	RouletteCorner     = 8
	RouletteSixLine    = 5
	RouletteDozen      = 2
	RouletteColumn     = 2
	RouletteEvenChance = 1
)

// Pinball: три одинаковых символа платят amount*level*base
var PinballBase = map[string]int64{
	"cherry": 5,
	"bell":   10,
	"bar":    20,
	"seven":  50,
	"ball":   3,
}

// Pocket - лунка пинбола с множителем и весом
type Pocket struct {
	Multiplier decimal.Decimal
	Weight     int
}

// PinballPockets - лунки слева направо
var PinballPockets = []Pocket{
	{Multiplier: Ratio(3, 1), Weight: 20},
	{Multiplier: Ratio(3, 2), Weight: 12},
	{Multiplier: Ratio(1, 1), Weight: 8},
	{Multiplier: Ratio(1, 2), Weight: 5},
	{Multiplier: Ratio(25, 1), Weight: 1},
	{Multiplier: Ratio(1, 2), Weight: 5},
	{Multiplier: Ratio(1, 1), Weight: 8},
	{Multiplier: Ratio(3, 2), Weight: 12},
	{Multiplier: Ratio(3, 1), Weight: 20},
}

// Баккара
var (
	BaccaratPlayer = Ratio(1, 1)
	BaccaratBanker = Ratio(19, 20)
	BaccaratTie    = Ratio(8, 1)
)

// Блэкджек: полная сумма возврата в долях ставки
var (
	BlackjackNatural   = Ratio(5, 2)
	BlackjackWin       = Ratio(2, 1)
	BlackjackPush      = Ratio(1, 1)
	BlackjackSurrender = Ratio(1, 2)
	BlackjackInsurance = Ratio(3, 1)
)

// UTHBlind - коэффициенты блайнда по категории руки игрока (hand category name)
var UTHBlind = map[string]decimal.Decimal{
	"royal_flush":    Ratio(500, 1),
	"straight_flush": Ratio(50, 1),
	"four_of_a_kind": Ratio(10, 1),
	"full_house":     Ratio(3, 1),
	"flush":          Ratio(3, 2),
	"straight":       Ratio(1, 1),
}

// UTHTrips - коэффициенты побочной ставки trips
var UTHTrips = map[string]decimal.Decimal{
	"royal_flush":     Ratio(50, 1),
	"straight_flush":  Ratio(40, 1),
	"four_of_a_kind":  Ratio(30, 1),
	"full_house":      Ratio(8, 1),
	"flush":           Ratio(7, 1),
	"straight":        Ratio(4, 1),
	"three_of_a_kind": Ratio(3, 1),
}
