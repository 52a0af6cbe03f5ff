package store

import (
	"context"
	"database/sql"
)

// DBTX is the subset of *sql.DB (and *sql.Conn, *sql.Tx) the task store needs.
// Each call borrows a pooled connection for the duration of one statement.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
