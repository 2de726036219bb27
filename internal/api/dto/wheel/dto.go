package wheel

import "casino/internal/api/dto/round"

type SpinRequest struct {
	ClientSeed string           `json:"client_seed"` // Необязательный сид клиента
	Stakes     map[string]int64 `json:"stakes"`      // Символ -> ставка в центах
}

type SpinResponse struct {
	round.Round
	Segment int    `json:"segment"` // Номер сегмента 0-53
	Symbol  string `json:"symbol"`  // Выпавший символ
}
