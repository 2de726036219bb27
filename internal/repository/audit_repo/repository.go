package audit_repo

import (
	"casino/internal/model"
	"casino/internal/repository"
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table             = "audit_log"
	colID             = "id"
	colUserID         = "user_id"
	colGame           = "game"
	colAction         = "action"
	colServerSeed     = "server_seed"
	colServerSeedHash = "server_seed_hash"
	colClientSeed     = "client_seed"
	colNonce          = "nonce"
	colBetCents       = "bet_cents"
	colPayoutCents    = "payout_cents"
	colBalanceAfter   = "balance_after"
	colFinal          = "final"
	colPayload        = "payload"
	colCreatedAt      = "created_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	db     *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewAuditRepository(db *pgxpool.Pool) repository.AuditRepository {
	return &repo{
		db:     db,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Append - вставка записи, возвращает id
func (r *repo) Append(ctx context.Context, rec *model.AuditRecord) (int64, error) {
	const op = "audit_repo.Append"

	sqlStr, args, err := appendQuery(rec).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var id int64
	err = r.getter.DefaultTrOrDB(ctx, r.db).QueryRow(ctx, sqlStr, args...).Scan(&id, &rec.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rec.ID = id

	return id, nil
}

// Get - запись по id, model.ErrValidation если ее нет
func (r *repo) Get(ctx context.Context, id int64) (*model.AuditRecord, error) {
	const op = "audit_repo.Get"

	sqlStr, args, err := psql.Select(
		colID, colUserID, colGame, colAction, colServerSeed, colServerSeedHash, colClientSeed,
		colNonce, colBetCents, colPayoutCents, colBalanceAfter, colFinal, colPayload, colCreatedAt,
	).
		From(table).
		Where(sq.Eq{colID: id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var rec model.AuditRecord
	var payload []byte
	err = r.getter.DefaultTrOrDB(ctx, r.db).QueryRow(ctx, sqlStr, args...).Scan(
		&rec.ID, &rec.UserID, &rec.Game, &rec.Action, &rec.ServerSeed, &rec.ServerSeedHash, &rec.ClientSeed,
		&rec.Nonce, &rec.BetCents, &rec.PayoutCents, &rec.BalanceAfter, &rec.Final, &payload, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w: audit record %d not found", op, model.ErrValidation, id)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	rec.Payload = payload

	return &rec, nil
}

// FinalExists - есть ли завершающая запись раунда с этим хэшем
func (r *repo) FinalExists(ctx context.Context, serverSeedHash string) (bool, error) {
	const op = "audit_repo.FinalExists"

	sqlStr, args, err := finalExistsQuery(serverSeedHash).ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	var exists bool
	if err := r.getter.DefaultTrOrDB(ctx, r.db).QueryRow(ctx, sqlStr, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

func appendQuery(rec *model.AuditRecord) sq.InsertBuilder {
	payload := rec.Payload
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	return psql.Insert(table).
		Columns(
			colUserID, colGame, colAction, colServerSeed, colServerSeedHash, colClientSeed,
			colNonce, colBetCents, colPayoutCents, colBalanceAfter, colFinal, colPayload,
		).
		Values(
			rec.UserID, string(rec.Game), rec.Action, rec.ServerSeed, rec.ServerSeedHash, rec.ClientSeed,
			rec.Nonce, rec.BetCents, rec.PayoutCents, rec.BalanceAfter, rec.Final, string(payload),
		).
		Suffix("RETURNING " + colID + ", " + colCreatedAt)
}

func finalExistsQuery(serverSeedHash string) sq.SelectBuilder {
	inner := sq.Select("1").
		From(table).
		Where(sq.Eq{colServerSeedHash: serverSeedHash, colFinal: true})

	return psql.Select().Column(sq.Expr("EXISTS(?)", inner))
}
