package repositories

import (
	"context"
	"database/sql"
)

// executor is the common surface of *sql.DB and *sql.Tx. Atomic injects the
// open transaction through context so every repository method inside the
// closure runs on it; outside a transaction the pools are used directly.
type executor interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

type txCtxKey struct{}

func withTx(ctx context.Context, tx executor) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

func (r *Repository) writer(ctx context.Context) executor {
	if tx, ok := ctx.Value(txCtxKey{}).(executor); ok {
		return tx
	}
	return r.dbWrite
}

// reader also prefers an in-flight transaction: reads inside Atomic must see
// the writes made earlier in the same transaction.
func (r *Repository) reader(ctx context.Context) executor {
	if tx, ok := ctx.Value(txCtxKey{}).(executor); ok {
		return tx
	}
	return r.dbRead
}
