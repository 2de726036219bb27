package ledger

import (
	"casino/internal/model"
	"casino/internal/repository"
	"casino/internal/service"
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

type serv struct {
	walletRepo repository.WalletRepository
	auditRepo  repository.AuditRepository
	txManager  service.TxManager
	log        *zap.Logger
}

func NewLedgerService(
	walletRepo repository.WalletRepository,
	auditRepo repository.AuditRepository,
	txManager service.TxManager,
	log *zap.Logger,
) service.LedgerService {
	return &serv{
		walletRepo: walletRepo,
		auditRepo:  auditRepo,
		txManager:  txManager,
		log:        log,
	}
}

// Settle - списание ставки, начисление выплаты и запись аудита одной транзакцией.
// Любая ошибка откатывает все три шага.
func (s *serv) Settle(ctx context.Context, st model.Settlement) (*model.Receipt, error) {
	const op = "ledger.Settle"

	if st.BetCents < 0 || st.PayoutCents < 0 {
		return nil, fmt.Errorf("%s: %w: negative amount", op, model.ErrValidation)
	}

	payload, err := marshalPayload(st.Payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var receipt model.Receipt
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.apply(txCtx, st.UserID, st.BetCents, st.PayoutCents)
		if err != nil {
			return err
		}

		rec := &model.AuditRecord{
			UserID:       st.UserID,
			Game:         st.Game,
			Action:       st.Action,
			BetCents:     st.BetCents,
			PayoutCents:  st.PayoutCents,
			BalanceAfter: balance,
			Final:        st.Final,
			Payload:      payload,
		}
		if !st.Round.IsZero() {
			rec.ServerSeed = st.Round.ServerSeed()
			rec.ServerSeedHash = st.Round.ServerSeedHash()
			rec.ClientSeed = st.Round.ClientSeed()
			rec.Nonce = st.Round.Nonce()
		}

		id, err := s.auditRepo.Append(txCtx, rec)
		if err != nil {
			return err
		}

		receipt = model.Receipt{BalanceCents: balance, AuditID: id}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Debug("settled",
		zap.Int64("user_id", st.UserID),
		zap.String("game", string(st.Game)),
		zap.String("action", st.Action),
		zap.Int64("bet_cents", st.BetCents),
		zap.Int64("payout_cents", st.PayoutCents),
		zap.Int64("audit_id", receipt.AuditID),
	)

	return &receipt, nil
}

// Deposit - пополнение со своей записью аудита
func (s *serv) Deposit(ctx context.Context, dep model.Deposit) (*model.Receipt, error) {
	const op = "ledger.Deposit"

	if dep.AmountCents <= 0 {
		return nil, fmt.Errorf("%s: %w: deposit must be positive", op, model.ErrValidation)
	}

	var receipt model.Receipt
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.walletRepo.Credit(txCtx, dep.UserID, dep.AmountCents)
		if err != nil {
			return err
		}

		id, err := s.auditRepo.Append(txCtx, &model.AuditRecord{
			UserID:       dep.UserID,
			Game:         model.GameWallet,
			Action:       "deposit",
			PayoutCents:  dep.AmountCents,
			BalanceAfter: balance,
			Final:        true,
			Payload:      json.RawMessage("{}"),
		})
		if err != nil {
			return err
		}

		receipt = model.Receipt{BalanceCents: balance, AuditID: id}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("deposit", zap.Int64("user_id", dep.UserID), zap.Int64("amount_cents", dep.AmountCents))

	return &receipt, nil
}

func (s *serv) Balance(ctx context.Context, userID int64) (int64, error) {
	const op = "ledger.Balance"

	balance, err := s.walletRepo.GetBalance(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return balance, nil
}

func (s *serv) apply(ctx context.Context, userID, bet, payout int64) (int64, error) {
	var (
		balance int64
		err     error
	)

	if bet > 0 {
		if balance, err = s.walletRepo.Debit(ctx, userID, bet); err != nil {
			return 0, err
		}
	}
	if payout > 0 {
		if balance, err = s.walletRepo.Credit(ctx, userID, payout); err != nil {
			return 0, err
		}
	}
	if bet == 0 && payout == 0 {
		if balance, err = s.walletRepo.GetBalance(ctx, userID); err != nil {
			return 0, err
		}
	}
	return balance, nil
}

func marshalPayload(payload any) (json.RawMessage, error) {
	if payload == nil {
		return json.RawMessage("{}"), nil
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal audit payload: %v", model.ErrInternal, err)
	}
	return b, nil
}
