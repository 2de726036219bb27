package slots

import "casino/internal/api/dto/round"

type SpinRequest struct {
	ClientSeed string `json:"client_seed"`
	BetCents   int64  `json:"bet_cents"`
}

type SpinResponse struct {
	round.Round
	Stops           [5]int       `json:"stops"`            // Позиции барабанов
	Grid            [3][5]string `json:"grid"`             // Строки сверху вниз
	RowWins         []RowWin     `json:"row_wins"`         // Выигрышные строки
	TotalMultiplier int64        `json:"total_multiplier"` // Сумма множителей строк
	NearMiss        bool         `json:"near_miss"`
}

type RowWin struct {
	Row        string `json:"row"`
	Symbol     string `json:"symbol"`
	Count      int    `json:"count"`
	Multiplier int64  `json:"multiplier"`
}
