package wallet_repo

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
	table      = "users"
	colID      = "id"
	colBalance = "balance"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	db     *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewWalletRepository(db *pgxpool.Pool) repository.WalletRepository {
	return &repo{
		db:     db,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Debit - условное списание одним запросом, баланс проверяется в том же UPDATE
func (r *repo) Debit(ctx context.Context, userID int64, amount int64) (int64, error) {
	const op = "wallet_repo.Debit"

	sqlStr, args, err := debitQuery(userID, amount).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var balance int64
	err = r.getter.DefaultTrOrDB(ctx, r.db).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%s: %w", op, model.ErrInsufficientFunds)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return balance, nil
}

// Credit - начисление. Пользователь без строки в users получает ее при первом начислении.
func (r *repo) Credit(ctx context.Context, userID int64, amount int64) (int64, error) {
	const op = "wallet_repo.Credit"

	sqlStr, args, err := creditQuery(userID, amount).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var balance int64
	err = r.getter.DefaultTrOrDB(ctx, r.db).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return balance, nil
}

// GetBalance - баланс пользователя, неизвестный пользователь имеет нулевой баланс
func (r *repo) GetBalance(ctx context.Context, userID int64) (int64, error) {
	const op = "wallet_repo.GetBalance"

	sqlStr, args, err := psql.Select(colBalance).
		From(table).
		Where(sq.Eq{colID: userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var balance int64
	err = r.getter.DefaultTrOrDB(ctx, r.db).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return balance, nil
}

func debitQuery(userID, amount int64) sq.UpdateBuilder {
	return psql.Update(table).
		Set(colBalance, sq.Expr(colBalance+" - ?", amount)).
		Where(sq.Eq{colID: userID}).
		Where(sq.GtOrEq{colBalance: amount}).
		Suffix("RETURNING " + colBalance)
}

func creditQuery(userID, amount int64) sq.InsertBuilder {
	return psql.Insert(table).
		Columns(colID, colBalance).
		Values(userID, amount).
		Suffix("ON CONFLICT ("+colID+") DO UPDATE SET "+colBalance+" = "+table+"."+colBalance+" + EXCLUDED."+colBalance).
		Suffix("RETURNING " + colBalance)
}
