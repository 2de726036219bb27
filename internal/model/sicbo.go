package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SicBoKind - вид ставки сик бо
type SicBoKind uint8

const (
	SicBoBig SicBoKind = iota + 1
	SicBoSmall
	SicBoOdd
	SicBoEven
	SicBoTotal
	SicBoDouble
	SicBoTriple
	SicBoAnyTriple
	SicBoCombo
	SicBoSingle
)

// SicBoBet - одна ставка. Face/Face2/Total заполнены только для параметризованных видов.
type SicBoBet struct {
	Kind        SicBoKind
	Face        int
	Face2       int
	Total       int
	AmountCents int64
}

// MarshalJSON - в аудите ставка пишется именем, как ее принимает API
func (b SicBoBet) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Bet         string `json:"bet"`
		AmountCents int64  `json:"amount_cents"`
	}{b.Name(), b.AmountCents})
}

// ParseSicBoBet разбирает имена вида big, total_10, double_4, combo_1_2, single_5
func ParseSicBoBet(name string, amount int64) (SicBoBet, error) {
	if amount <= 0 {
		return SicBoBet{}, fmt.Errorf("%w: bet %q amount must be positive", ErrValidation, name)
	}
	bet := SicBoBet{AmountCents: amount}

	if kind, ok := sicBoPlain[name]; ok {
		bet.Kind = kind
		return bet, nil
	}

	head, rest, _ := strings.Cut(name, "_")
	nums := make([]int, 0, 2)
	for _, p := range strings.Split(rest, "_") {
		n, err := strconv.Atoi(p)
		if err != nil {
			return SicBoBet{}, fmt.Errorf("%w: unknown sic bo bet %q", ErrValidation, name)
		}
		nums = append(nums, n)
	}

	switch {
	case head == "total" && len(nums) == 1 && nums[0] >= 4 && nums[0] <= 17:
		bet.Kind, bet.Total = SicBoTotal, nums[0]
	case head == "double" && len(nums) == 1 && isFace(nums[0]):
		bet.Kind, bet.Face = SicBoDouble, nums[0]
	case head == "triple" && len(nums) == 1 && isFace(nums[0]):
		bet.Kind, bet.Face = SicBoTriple, nums[0]
	case head == "single" && len(nums) == 1 && isFace(nums[0]):
		bet.Kind, bet.Face = SicBoSingle, nums[0]
	case head == "combo" && len(nums) == 2 && isFace(nums[0]) && isFace(nums[1]) && nums[0] != nums[1]:
		bet.Kind, bet.Face, bet.Face2 = SicBoCombo, min(nums[0], nums[1]), max(nums[0], nums[1])
	default:
		return SicBoBet{}, fmt.Errorf("%w: unknown sic bo bet %q", ErrValidation, name)
	}
	return bet, nil
}

var sicBoPlain = map[string]SicBoKind{
	"big":        SicBoBig,
	"small":      SicBoSmall,
	"odd":        SicBoOdd,
	"even":       SicBoEven,
	"any_triple": SicBoAnyTriple,
}

func isFace(n int) bool {
	return n >= 1 && n <= 6
}

// Name - каноническое имя ставки
func (b SicBoBet) Name() string {
	switch b.Kind {
	case SicBoBig:
		return "big"
	case SicBoSmall:
		return "small"
	case SicBoOdd:
		return "odd"
	case SicBoEven:
		return "even"
	case SicBoAnyTriple:
		return "any_triple"
	case SicBoTotal:
		return "total_" + strconv.Itoa(b.Total)
	case SicBoDouble:
		return "double_" + strconv.Itoa(b.Face)
	case SicBoTriple:
		return "triple_" + strconv.Itoa(b.Face)
	case SicBoSingle:
		return "single_" + strconv.Itoa(b.Face)
	case SicBoCombo:
		return "combo_" + strconv.Itoa(b.Face) + "_" + strconv.Itoa(b.Face2)
	}
	return "unknown"
}

type SicBoRoll struct {
	UserID     int64
	ClientSeed string
	Bets       []SicBoBet
}

func (r SicBoRoll) TotalCents() int64 {
	var total int64
	for _, b := range r.Bets {
		total += b.AmountCents
	}
	return total
}

type SicBoBetResult struct {
	Bet         SicBoBet `json:"bet"`
	Won         bool     `json:"won"`
	PayoutCents int64    `json:"payout_cents"`
}

type SicBoOutcome struct {
	Dice        [3]int           `json:"dice"`
	Total       int              `json:"total"`
	Bets        []SicBoBetResult `json:"bets"`
	PayoutCents int64            `json:"payout_cents"`
}

type SicBoResult struct {
	Outcome SicBoOutcome
	Round   RoundResult
}
