package cards

import (
	"sort"
)

// HandCategory - категория покерной комбинации, по возрастанию силы
type HandCategory uint8

const (
	HighCard HandCategory = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var categoryNames = [...]string{
	"high_card", "pair", "two_pair", "three_of_a_kind", "straight",
	"flush", "full_house", "four_of_a_kind", "straight_flush", "royal_flush",
}

func (c HandCategory) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

func (c HandCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// HandRank - результат оценки пяти карт. Score сравним напрямую:
// старшие биты - категория, младшие 20 бит - тай-брейк по 4 бита на ранг.
type HandRank struct {
	Category HandCategory `json:"category"`
	Score    int          `json:"-"`
	Cards    []Card       `json:"cards"`
}

// Compare возвращает 1, если h сильнее o, -1 если слабее, 0 при равенстве
func (h HandRank) Compare(o HandRank) int {
	switch {
	case h.Score > o.Score:
		return 1
	case h.Score < o.Score:
		return -1
	}
	return 0
}

// BestHand выбирает сильнейшие 5 карт из 5-7 карт
func BestHand(cards []Card) HandRank {
	if len(cards) < 5 {
		return HandRank{Category: HighCard}
	}

	var best HandRank
	first := true
	for _, combo := range combinations(cards, 5) {
		rank := EvaluateFive(combo)
		if first || rank.Score > best.Score {
			best = rank
			first = false
		}
	}
	return best
}

// EvaluateFive оценивает ровно 5 карт
func EvaluateFive(hand []Card) HandRank {
	if len(hand) != 5 {
		return HandRank{Category: HighCard}
	}

	rankCounts := make(map[Rank]int, 5)
	suits := make(map[Suit]int, 4)
	ranks := make([]Rank, 0, 5)
	for _, c := range hand {
		rankCounts[c.Rank]++
		suits[c.Suit]++
		ranks = append(ranks, c.Rank)
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })

	isFlush := len(suits) == 1
	straightHigh, isStraight := straightHighCard(ranks)

	// группы рангов: сначала по количеству, затем по рангу
	type group struct {
		rank  Rank
		count int
	}
	groups := make([]group, 0, len(rankCounts))
	for r, n := range rankCounts {
		groups = append(groups, group{r, n})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})

	tiebreak := make([]Rank, 0, 5)
	for _, g := range groups {
		tiebreak = append(tiebreak, g.rank)
	}

	cards := append([]Card(nil), hand...)
	var category HandCategory
	switch {
	case isFlush && isStraight && straightHigh == Ace:
		category = RoyalFlush
		tiebreak = []Rank{straightHigh}
	case isFlush && isStraight:
		category = StraightFlush
		tiebreak = []Rank{straightHigh}
	case groups[0].count == 4:
		category = FourOfAKind
	case groups[0].count == 3 && groups[1].count == 2:
		category = FullHouse
	case isFlush:
		category = Flush
		tiebreak = ranks
	case isStraight:
		category = Straight
		tiebreak = []Rank{straightHigh}
	case groups[0].count == 3:
		category = ThreeOfAKind
	case groups[0].count == 2 && groups[1].count == 2:
		category = TwoPair
	case groups[0].count == 2:
		category = OnePair
	default:
		category = HighCard
		tiebreak = ranks
	}

	return HandRank{
		Category: category,
		Score:    score(category, tiebreak),
		Cards:    cards,
	}
}

func score(category HandCategory, tiebreak []Rank) int {
	s := int(category)
	for i := 0; i < 5; i++ {
		s <<= 4
		if i < len(tiebreak) {
			s |= int(tiebreak[i])
		}
	}
	return s
}

// straightHighCard - ranks отсортированы по убыванию; колесо A-2-3-4-5 старшей картой имеет 5
func straightHighCard(ranks []Rank) (Rank, bool) {
	for i := 0; i < 4; i++ {
		if ranks[i]-ranks[i+1] != 1 {
			break
		}
		if i == 3 {
			return ranks[0], true
		}
	}
	if ranks[0] == Ace && ranks[1] == Five && ranks[2] == Four && ranks[3] == Three && ranks[4] == Two {
		return Five, true
	}
	return 0, false
}

// combinations генерирует все k-сочетания карт
func combinations(cards []Card, k int) [][]Card {
	if k > len(cards) {
		return nil
	}

	var result [][]Card
	current := make([]Card, 0, k)
	var helper func(start int)
	helper = func(start int) {
		if len(current) == k {
			combo := make([]Card, k)
			copy(combo, current)
			result = append(result, combo)
			return
		}
		for i := start; i < len(cards); i++ {
			current = append(current, cards[i])
			helper(i + 1)
			current = current[:len(current)-1]
		}
	}
	helper(0)
	return result
}
