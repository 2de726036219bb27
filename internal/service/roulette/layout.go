package roulette

import (
	"casino/internal/model"
	"fmt"
	"slices"
)

// Европейское колесо 0-36
const Pockets = 37

var red = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true, 14: true, 16: true, 18: true,
	19: true, 21: true, 23: true, 25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// Color - red, black или green для зеро
func Color(n int) string {
	switch {
	case n == 0:
		return "green"
	case red[n]:
		return "red"
	}
	return "black"
}

// Validate проверяет, что номера внутренней ставки образуют фигуру на столе.
// Стол - 12 рядов по 3 номера, ряд k содержит 3k-2, 3k-1, 3k.
func Validate(bet model.RouletteBet) error {
	if bet.AmountCents <= 0 {
		return fmt.Errorf("%w: %s bet amount must be positive", model.ErrValidation, bet.Type)
	}

	nums := slices.Clone(bet.Numbers)
	slices.Sort(nums)
	for _, n := range nums {
		if n < 0 || n > 36 {
			return fmt.Errorf("%w: number %d is off the table", model.ErrValidation, n)
		}
	}

	ok := false
	switch bet.Type {
	case model.RouletteStraight:
		ok = len(nums) == 1
	case model.RouletteSplit:
		ok = len(nums) == 2 && isSplit(nums[0], nums[1])
	case model.RouletteStreet:
		ok = len(nums) == 3 && isStreet(nums)
	case model.RouletteCorner:
		ok = len(nums) == 4 && isCorner(nums)
	case model.RouletteSixLine:
		ok = len(nums) == 6 && nums[0] > 0 && nums[0]%3 == 1 && nums[0] <= 31 && isRun(nums)
	case model.RouletteDozen, model.RouletteColumn:
		ok = len(nums) == 1 && nums[0] >= 1 && nums[0] <= 3
	case model.RouletteRed, model.RouletteBlack, model.RouletteOdd,
		model.RouletteEven, model.RouletteLow, model.RouletteHigh:
		ok = len(nums) == 0
	default:
		return fmt.Errorf("%w: unknown roulette bet %q", model.ErrValidation, bet.Type)
	}
	if !ok {
		return fmt.Errorf("%w: numbers %v do not form a %s", model.ErrValidation, bet.Numbers, bet.Type)
	}
	return nil
}

// Covers - выигрывает ли ставка при выпавшем номере
func Covers(bet model.RouletteBet, pocket int) bool {
	switch bet.Type {
	case model.RouletteStraight, model.RouletteSplit, model.RouletteStreet,
		model.RouletteCorner, model.RouletteSixLine:
		return slices.Contains(bet.Numbers, pocket)
	}

	// Внешние ставки на зеро проигрывают
	if pocket == 0 {
		return false
	}

	switch bet.Type {
	case model.RouletteDozen:
		return (pocket-1)/12+1 == bet.Numbers[0]
	case model.RouletteColumn:
		return (pocket-1)%3+1 == bet.Numbers[0]
	case model.RouletteRed:
		return red[pocket]
	case model.RouletteBlack:
		return !red[pocket]
	case model.RouletteOdd:
		return pocket%2 == 1
	case model.RouletteEven:
		return pocket%2 == 0
	case model.RouletteLow:
		return pocket <= 18
	case model.RouletteHigh:
		return pocket >= 19
	}
	return false
}

// соседи по горизонтали в одном ряду, по вертикали через 3, зеро граничит с 1, 2, 3
func isSplit(a, b int) bool {
	if a == 0 {
		return b >= 1 && b <= 3
	}
	if b-a == 3 {
		return true
	}
	return b-a == 1 && a%3 != 0
}

// ряд из трех или треугольник с зеро (0-1-2, 0-2-3)
func isStreet(nums []int) bool {
	if nums[0] == 0 {
		return (nums[1] == 1 && nums[2] == 2) || (nums[1] == 2 && nums[2] == 3)
	}
	return nums[0]%3 == 1 && isRun(nums)
}

// квадрат n, n+1, n+3, n+4 или 0-1-2-3
func isCorner(nums []int) bool {
	if nums[0] == 0 {
		return nums[1] == 1 && nums[2] == 2 && nums[3] == 3
	}
	n := nums[0]
	return n%3 != 0 && nums[1] == n+1 && nums[2] == n+3 && nums[3] == n+4
}

func isRun(nums []int) bool {
	for i := 1; i < len(nums); i++ {
		if nums[i] != nums[i-1]+1 {
			return false
		}
	}
	return true
}
