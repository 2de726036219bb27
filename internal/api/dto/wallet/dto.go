package wallet

type BalanceResponse struct {
	BalanceCents int64 `json:"balance_cents"`
}

type DepositRequest struct {
	AmountCents int64 `json:"amount_cents"` // Сумма депозита
}

type DepositResponse struct {
	NewBalanceCents int64 `json:"new_balance_cents"`
	AuditID         int64 `json:"audit_id"`
}
