// Package attendance provides the PostgreSQL-backed repository for raw
// punch rows in attendance_logs.
package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/zkpuller/internal/dbx"
	"github.com/dmitrijs2005/zkpuller/internal/models"
	"github.com/google/uuid"
)

// PostgresRepository implements attendance log storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	query := `SELECT id FROM attendance_logs LIMIT 1`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	// An empty table is a successful probe.
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *PostgresRepository) ListForDay(ctx context.Context, userID int64, workDate time.Time) ([]*models.AttendanceLog, error) {
	query := `
		SELECT id, user_id, "timestamp", status, work_date FROM attendance_logs
		WHERE user_id = $1 AND work_date = $2
		ORDER BY "timestamp" ASC
	`
	rows, err := r.db.QueryContext(ctx, query, userID, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to select attendance logs: %w", err)
	}
	defer rows.Close()

	var result []*models.AttendanceLog
	for rows.Next() {
		var item models.AttendanceLog
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Timestamp, &item.Status, &item.WorkDate,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, row *models.AttendanceLog) error {
	if row.ID == "" {
		row.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_logs (id, user_id, "timestamp", status, work_date)
		VALUES ($1, $2, $3, $4, $5)
	`
	res, err := r.db.ExecContext(ctx, query,
		row.ID, row.UserID, row.Timestamp, row.Status, row.WorkDate)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
	return nil
}
