package model

const (
	SlotsReels = 5
	SlotsRows  = 3
)

// Названия строк видимого окна
var SlotsRowNames = [SlotsRows]string{"top", "middle", "bottom"}

type SlotsSpin struct {
	UserID     int64
	ClientSeed string
	BetCents   int64
}

type SlotsRowWin struct {
	Row        string `json:"row"`
	Symbol     string `json:"symbol"`
	Count      int    `json:"count"`
	Multiplier int64  `json:"multiplier"`
}

// SlotsOutcome - Grid[row][reel]
type SlotsOutcome struct {
	Stops           [SlotsReels]int               `json:"stops"`
	Grid            [SlotsRows][SlotsReels]string `json:"grid"`
	RowWins         []SlotsRowWin                 `json:"row_wins"`
	TotalMultiplier int64                         `json:"total_multiplier"`
	NearMiss        bool                          `json:"near_miss"`
	PayoutCents     int64                         `json:"payout_cents"`
}

type SlotsResult struct {
	Outcome SlotsOutcome
	Round   RoundResult
}
