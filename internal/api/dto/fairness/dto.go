package fairness

import "encoding/json"

type RevealResponse struct {
	AuditID        int64           `json:"audit_id"`
	Game           string          `json:"game"`
	ServerSeed     string          `json:"server_seed"`
	ServerSeedHash string          `json:"server_seed_hash"`
	ClientSeed     string          `json:"client_seed"`
	Nonce          int64           `json:"nonce"`
	Payload        json.RawMessage `json:"payload"` // Исход раунда, как он записан в аудит
}

type VerifyRequest struct {
	ServerSeed     string `json:"server_seed"`
	ServerSeedHash string `json:"server_seed_hash"`
	ClientSeed     string `json:"client_seed"`
	Nonce          int64  `json:"nonce"`
	Label          string `json:"label"`   // wheel, reel:0, die:0, pocket, ball:0, shuffle:51
	Modulus        int    `json:"modulus"` // Размер диапазона значения
}

type VerifyResponse struct {
	HashMatches bool   `json:"hash_matches"`
	Hash        string `json:"hash"`
	Value       int    `json:"value"`
}
