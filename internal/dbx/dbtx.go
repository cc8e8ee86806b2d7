// Package dbx provides the small storage abstractions shared by repositories
// and services: a query interface (DBTX) satisfied by *sqlx.DB, *sqlx.Conn and
// *sqlx.Tx, the session/session-factory pair, and a helper that runs a
// function inside a transaction.
package dbx

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/multierr"
)

// DBTX is the subset of sqlx used by our repositories.
// It also satisfies sqlx.QueryerContext, so sqlx.GetContext and
// sqlx.SelectContext accept it directly.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryxContext(ctx context.Context, query string, args ...any) (*sqlx.Rows, error)
	QueryRowxContext(ctx context.Context, query string, args ...any) *sqlx.Row
}

// TxBeginner starts transactions. *sqlx.DB and *sqlx.Conn implement it.
type TxBeginner interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

// Session is a single connection checked out of a SessionFactory.
// Reads go straight through DBTX; writes go through WithTx.
type Session interface {
	DBTX
	TxBeginner
	Close() error
}

// SessionFactory hands out sessions and owns the underlying connection pool.
// *sqlx.DB satisfies it.
type SessionFactory interface {
	Connx(ctx context.Context) (*sqlx.Conn, error)
	Close() error
}

// WithTx begins a transaction on b, runs fn with the transactional handle and
// then commits on success or rolls back on error/panic. Panics are rethrown
// after the rollback.
//
// A failed commit is followed by a rollback attempt as well. A rollback that
// fails because the transaction is no longer active (sql.ErrTxDone) is ignored;
// any other rollback error is appended to the returned error.
//
// Typical use:
//
//	err := dbx.WithTx(ctx, conn, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    _, err := tx.ExecContext(ctx, "UPDATE ...")
//	    return err
//	})
func WithTx(ctx context.Context, b TxBeginner, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := b.BeginTxx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err == nil {
			err = tx.Commit()
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = multierr.Append(err, rbErr)
			}
		}
	}()

	err = fn(ctx, tx)
	return err
}
