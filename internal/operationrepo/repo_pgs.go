// Package operationrepo manages repository layer of ledger operations.
package operationrepo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-petr/bank-ledger/internal/accountrepo"
	"github.com/go-petr/bank-ledger/internal/domain"
	"github.com/go-petr/bank-ledger/pkg/dbpkg"
	"github.com/go-petr/bank-ledger/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates operation repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns operation RepoPGS bound to an ongoing transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns operation RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const createQuery = `
INSERT INTO
    operations (account_id, type, amount, balance_after, occurred_at)
VALUES
    ($1, $2, $3, $4, $5)
RETURNING id, account_id, type, amount, balance_after, occurred_at
`

// Create persists the given ledger entry and then returns it with its assigned id.
func (r *RepoPGS) Create(ctx context.Context, arg domain.Operation) (domain.Operation, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.AccountID,
		arg.Type,
		arg.Amount,
		arg.BalanceAfter,
		arg.OccurredAt,
	)

	var o domain.Operation

	err := row.Scan(
		&o.ID,
		&o.AccountID,
		&o.Type,
		&o.Amount,
		&o.BalanceAfter,
		&o.OccurredAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "operations_account_id_fkey":
				return o, domain.ErrAccountNotFound
			case "operations_amount_check":
				return o, domain.ErrInvalidAmount
			}
		}

		return o, errorspkg.ErrInternal
	}

	return o, nil
}

const countQuery = `
SELECT count(*) FROM operations
WHERE account_id = $1
`

const listQuery = `
SELECT
	id, account_id, type, amount, balance_after, occurred_at
FROM operations
WHERE account_id = $1
ORDER BY occurred_at, id
LIMIT $2 OFFSET $3
`

// ListPage returns one window of the account's ledger ordered by occurrence
// along with the total number of recorded operations for the account.
func (r *RepoPGS) ListPage(ctx context.Context, accountID int64, limit, offset int32) ([]domain.Operation, int64, error) {
	l := zerolog.Ctx(ctx)

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, accountID).Scan(&total); err != nil {
		l.Error().Err(err).Send()
		return nil, 0, errorspkg.ErrInternal
	}

	rows, err := r.db.QueryContext(ctx, listQuery, accountID, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, 0, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Operation{}

	for rows.Next() {
		var o domain.Operation
		if err := rows.Scan(
			&o.ID,
			&o.AccountID,
			&o.Type,
			&o.Amount,
			&o.BalanceAfter,
			&o.OccurredAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, 0, errorspkg.ErrInternal
		}

		items = append(items, o)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, 0, errorspkg.ErrInternal
	}

	return items, total, nil
}

// execTx executes a function within a database transaction.
func (r *RepoPGS) execTx(ctx context.Context, fn func(tx dbpkg.SQLInterface) error) error {
	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}

		return err
	}

	return tx.Commit()
}

// PerformTx applies one debit or credit to an account and records the
// matching ledger entry within a single database transaction.
//
// The account row is locked for the whole load-mutate-persist-append
// sequence, so concurrent operations on the same account serialize and
// the stored balance always agrees with the last recorded entry.
func (r *RepoPGS) PerformTx(ctx context.Context, arg domain.PerformOperationParams) (domain.Operation, error) {
	var created domain.Operation

	err := r.execTx(ctx, func(tx dbpkg.SQLInterface) error {
		accounts := accountrepo.NewRepoPGS(tx)
		operations := NewTxRepoPGS(tx)

		account, err := accounts.GetForUpdate(ctx, arg.AccountID)
		if err != nil {
			return err
		}

		switch arg.Type {
		case domain.Debit:
			err = account.Debit(arg.Amount)
		case domain.Credit:
			err = account.Credit(arg.Amount)
		default:
			err = domain.ErrInvalidOperationType
		}

		if err != nil {
			return err
		}

		account, err = accounts.SetBalance(ctx, account.Balance, account.ID)
		if err != nil {
			return err
		}

		created, err = operations.Create(ctx, domain.NewOperation(account, arg.Type, arg.Amount))

		return err
	})
	if err != nil {
		return domain.Operation{}, err
	}

	return created, nil
}
