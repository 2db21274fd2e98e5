package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o contrato mínimo de execução de queries. Tanto a conexão quanto
// uma transação aberta o implementam, permitindo que os repositórios rodem as
// mesmas queries dentro ou fora do batch transacional.
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row
}

// TxQueryer adapta um *sql.Tx ao contrato Queryer.
type TxQueryer struct {
	tx *sql.Tx
}

func NewTxQueryer(tx *sql.Tx) *TxQueryer {
	return &TxQueryer{tx: tx}
}

func (q *TxQueryer) Exec(ctx context.Context, sql string, args ...interface{}) (sql.Result, error) {
	return q.tx.ExecContext(ctx, sql, args...)
}

func (q *TxQueryer) Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error) {
	return q.tx.QueryContext(ctx, sql, args...)
}

func (q *TxQueryer) QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row {
	return q.tx.QueryRowContext(ctx, sql, args...)
}
