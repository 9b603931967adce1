package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgxpool.Pool the repositories use. pgx.Tx and the
// pgxmock pool satisfy it too, so repositories run unchanged inside
// transactions and under test.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// DB adds transaction support for repositories with multi-statement writes.
type DB interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}
