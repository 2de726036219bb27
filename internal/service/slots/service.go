package slots

import (
	"casino/internal/service"
	"casino/internal/service/round"
)

type serv struct {
	strips [][]string
	runner *round.Runner
}

// NewSlotsService Создать слот 5x3 с барабанами из конфига
func NewSlotsService(strips [][]string, runner *round.Runner) service.SlotsService {
	return &serv{
		strips: strips,
		runner: runner,
	}
}
