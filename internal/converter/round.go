package converter

import (
	"casino/internal/api/dto/round"
	"casino/internal/model"
)

func ToRoundResponse(res model.RoundResult) round.Round {
	out := round.Round{
		BetCents:        res.BetCents,
		PayoutCents:     res.PayoutCents,
		NewBalanceCents: res.BalanceCents,
		AuditID:         res.AuditID,
		ServerSeedHash:  res.Commitment.ServerSeedHash,
		ClientSeed:      res.Commitment.ClientSeed,
		Nonce:           res.Commitment.Nonce,
		ServerSeed:      res.ServerSeed,
	}
	for _, a := range res.Achievements {
		out.NewAchievements = append(out.NewAchievements, round.Achievement{Code: a.Code, Title: a.Title})
	}
	return out
}
