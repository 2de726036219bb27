package converter

import (
	"casino/internal/api/dto/fairness"
	"casino/internal/model"
)

func ToRevealResponse(r model.RevealedRound) fairness.RevealResponse {
	return fairness.RevealResponse{
		AuditID:        r.AuditID,
		Game:           string(r.Game),
		ServerSeed:     r.ServerSeed,
		ServerSeedHash: r.ServerSeedHash,
		ClientSeed:     r.ClientSeed,
		Nonce:          r.Nonce,
		Payload:        r.Payload,
	}
}

func ToVerifyRequest(req fairness.VerifyRequest) model.VerifyRequest {
	return model.VerifyRequest{
		ServerSeed:     req.ServerSeed,
		ServerSeedHash: req.ServerSeedHash,
		ClientSeed:     req.ClientSeed,
		Nonce:          req.Nonce,
		Label:          req.Label,
		Modulus:        req.Modulus,
	}
}

func ToVerifyResponse(res model.VerifyResult) fairness.VerifyResponse {
	return fairness.VerifyResponse{
		HashMatches: res.HashMatches,
		Hash:        res.Hash,
		Value:       res.Value,
	}
}
