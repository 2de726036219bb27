// Package round - общий ход раунда: сиды, расчет через леджер, достижения.
package round

import (
	"casino/internal/fairness"
	"casino/internal/model"
	"casino/internal/service"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Bet - общая часть ставки одношаговой игры
type Bet struct {
	UserID     int64
	Game       model.Game
	Action     string
	ClientSeed string
	BetCents   int64
}

// Resolver считает исход и выплату по сидам раунда
type Resolver[O any] func(round fairness.Round) (outcome O, payoutCents int64, err error)

type Runner struct {
	source   *fairness.Source
	ledger   service.LedgerService
	reporter service.AchievementReporter
	log      *zap.Logger
}

func NewRunner(
	source *fairness.Source,
	ledger service.LedgerService,
	reporter service.AchievementReporter,
	log *zap.Logger,
) *Runner {
	return &Runner{
		source:   source,
		ledger:   ledger,
		reporter: reporter,
		log:      log,
	}
}

// Play - полный раунд одношаговой игры: одно действие, одна запись аудита
func Play[O any](ctx context.Context, r *Runner, bet Bet, resolve Resolver[O]) (O, model.RoundResult, error) {
	op := "round.Play." + string(bet.Game)
	var zero O

	if bet.BetCents <= 0 {
		return zero, model.RoundResult{}, fmt.Errorf("%s: %w: bet must be positive", op, model.ErrValidation)
	}

	rnd, err := r.NewRound(bet.ClientSeed)
	if err != nil {
		return zero, model.RoundResult{}, fmt.Errorf("%s: %w", op, err)
	}

	outcome, payout, err := resolve(rnd)
	if err != nil {
		return zero, model.RoundResult{}, fmt.Errorf("%s: %w", op, err)
	}

	res, err := r.Settle(ctx, model.Settlement{
		UserID:      bet.UserID,
		Game:        bet.Game,
		Action:      bet.Action,
		BetCents:    bet.BetCents,
		PayoutCents: payout,
		Round:       rnd,
		Final:       true,
		Payload:     outcome,
	}, bet.BetCents)
	if err != nil {
		return zero, model.RoundResult{}, fmt.Errorf("%s: %w", op, err)
	}

	return outcome, res, nil
}

// NewRound - сиды нового раунда, неверный clientSeed дает model.ErrValidation
func (r *Runner) NewRound(clientSeed string) (fairness.Round, error) {
	rnd, err := r.source.NewRound(clientSeed)
	if err != nil {
		if errors.Is(err, fairness.ErrInvalidClientSeed) {
			return fairness.Round{}, fmt.Errorf("%w: %v", model.ErrValidation, err)
		}
		return fairness.Round{}, fmt.Errorf("%w: seed source: %v", model.ErrInternal, err)
	}
	return rnd, nil
}

// Settle проводит одно действие через леджер. Для завершающего действия
// раскрывает server seed и отдает раунд сборщику достижений с общей суммой ставок wagered.
func (r *Runner) Settle(ctx context.Context, st model.Settlement, wagered int64) (model.RoundResult, error) {
	receipt, err := r.ledger.Settle(ctx, st)
	if err != nil {
		return model.RoundResult{}, err
	}

	res := model.RoundResult{
		BetCents:     st.BetCents,
		PayoutCents:  st.PayoutCents,
		BalanceCents: receipt.BalanceCents,
		AuditID:      receipt.AuditID,
		Commitment:   st.Round.Commitment(),
	}
	if !st.Final {
		return res, nil
	}

	res.ServerSeed = st.Round.ServerSeed()
	res.Achievements = r.report(ctx, model.RoundReport{
		UserID:       st.UserID,
		Game:         st.Game,
		WageredCents: wagered,
		WonCents:     st.PayoutCents,
		IsWin:        st.PayoutCents > wagered,
	})
	return res, nil
}

// Balance - текущий баланс без движения денег
func (r *Runner) Balance(ctx context.Context, userID int64) (int64, error) {
	return r.ledger.Balance(ctx, userID)
}

func (r *Runner) report(ctx context.Context, report model.RoundReport) []model.Achievement {
	if r.reporter == nil {
		return nil
	}
	achievements, err := r.reporter.Report(ctx, report)
	if err != nil {
		r.log.Warn("achievement report failed",
			zap.Int64("user_id", report.UserID),
			zap.String("game", string(report.Game)),
			zap.Error(err),
		)
		return nil
	}
	return achievements
}
