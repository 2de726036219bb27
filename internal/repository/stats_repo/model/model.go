package model

// Состояние одной игры
type GameState struct {
	TotalRounds int   // Сколько всего раундов сыграно
	TotalBet    int64 // Сумма всех ставок
	TotalPayout int64 // Сумма всех выплат

	RoundWindow []RoundResult // Окно последних раундов
	WindowSize  int           // Размер окна для RTP
}

// Результат раунда для окна
type RoundResult struct {
	Bet    int64
	Payout int64
}

// Счетчики игрока и открытые достижения
type PlayerState struct {
	Rounds       int
	Wins         int
	WageredCents int64
	WonCents     int64
	Unlocked     map[string]struct{}
}
