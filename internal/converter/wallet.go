package converter

import (
	"casino/internal/api/dto/wallet"
	"casino/internal/model"
)

func ToDeposit(userID int64, req wallet.DepositRequest) model.Deposit {
	return model.Deposit{
		UserID:      userID,
		AmountCents: req.AmountCents,
	}
}

func ToDepositResponse(rec model.Receipt) wallet.DepositResponse {
	return wallet.DepositResponse{
		NewBalanceCents: rec.BalanceCents,
		AuditID:         rec.AuditID,
	}
}
