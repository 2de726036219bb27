// Package fairness - раскрытие сидов завершенных раундов и пересчет значений по ним.
package fairness

import (
	"casino/internal/fairness"
	"casino/internal/model"
	"casino/internal/repository"
	"casino/internal/service"
	"context"
	"fmt"

	"go.uber.org/zap"
)

type serv struct {
	auditRepo repository.AuditRepository
	log       *zap.Logger
}

func NewFairnessService(auditRepo repository.AuditRepository, log *zap.Logger) service.FairnessService {
	return &serv{
		auditRepo: auditRepo,
		log:       log,
	}
}

// Reveal отдает server seed записи аудита владельцу. Сид промежуточного действия
// раскрывается только после того, как раунд с тем же хэшем завершен.
func (s *serv) Reveal(ctx context.Context, userID int64, auditID int64) (*model.RevealedRound, error) {
	const op = "fairness.Reveal"

	rec, err := s.auditRepo.Get(ctx, auditID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	// чужая запись неотличима от отсутствующей
	if rec.UserID != userID {
		return nil, fmt.Errorf("%s: %w: audit record %d not found", op, model.ErrValidation, auditID)
	}
	if rec.ServerSeedHash == "" {
		return nil, fmt.Errorf("%s: %w: audit record %d has no round", op, model.ErrValidation, auditID)
	}

	if !rec.Final {
		done, err := s.auditRepo.FinalExists(ctx, rec.ServerSeedHash)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if !done {
			return nil, fmt.Errorf("%s: %w: round is still in progress", op, model.ErrValidation)
		}
	}

	s.log.Debug("round revealed", zap.Int64("user_id", userID), zap.Int64("audit_id", auditID))

	return &model.RevealedRound{
		AuditID:        rec.ID,
		Game:           rec.Game,
		ServerSeed:     rec.ServerSeed,
		ServerSeedHash: rec.ServerSeedHash,
		ClientSeed:     rec.ClientSeed,
		Nonce:          rec.Nonce,
		Payload:        rec.Payload,
	}, nil
}

// Verify пересчитывает хэш и, если задан label, значение в [0, modulus)
func (s *serv) Verify(req model.VerifyRequest) (*model.VerifyResult, error) {
	const op = "fairness.Verify"

	if req.Modulus < 0 || (req.Label != "" && req.Modulus == 0) {
		return nil, fmt.Errorf("%s: %w: modulus must be positive", op, model.ErrValidation)
	}

	rnd, err := fairness.Restore(req.ServerSeed, req.ClientSeed, req.Nonce)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, model.ErrValidation, err)
	}

	res := &model.VerifyResult{
		Hash:        rnd.ServerSeedHash(),
		HashMatches: fairness.Verify(req.ServerSeed, req.ServerSeedHash),
	}
	if req.Label != "" {
		res.Value = rnd.Uint(req.Label, req.Modulus)
	}
	return res, nil
}
