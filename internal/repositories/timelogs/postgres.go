// Package timelogs patches the per-employee per-day summary rows in
// time_logs. Rows are created elsewhere (at clock-in); this service only
// ever fills in the time_out column.
package timelogs

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/zkpuller/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) SetTimeOut(ctx context.Context, employeeID string, date time.Time, timeOut time.Time) (int64, error) {
	query := `
		UPDATE time_logs SET time_out = $1
		WHERE employee_id = $2 AND date = $3
	`

	res, err := r.db.ExecContext(ctx, query, timeOut.Format("15:04:05"), employeeID, date)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
