// Package dbx holds the tiny DB seam shared by repositories: a minimal
// interface implemented by both *sql.DB and *sql.Tx, which also lets tests
// substitute a sqlmock handle.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by the repositories.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
