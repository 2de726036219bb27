package round

// Round - поля, общие для ответа любой игры
type Round struct {
	BetCents        int64         `json:"bet_cents"`             // Списано этим действием
	PayoutCents     int64         `json:"payout_cents"`          // Начислено этим действием
	NewBalanceCents int64         `json:"new_balance_cents"`     // Баланс после действия
	AuditID         int64         `json:"audit_id,omitempty"`    // Запись аудита
	ServerSeedHash  string        `json:"server_seed_hash"`      // Коммит сервера
	ClientSeed      string        `json:"client_seed"`           // Сид клиента
	Nonce           int64         `json:"nonce"`                 // Номер раунда
	ServerSeed      string        `json:"server_seed,omitempty"` // Только для завершенного раунда
	NewAchievements []Achievement `json:"new_achievements,omitempty"`
}

type Achievement struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}
