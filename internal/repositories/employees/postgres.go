// Package employees provides read-only access to the employees table, which
// bridges device user identifiers to employee records. The HR side owns the
// table; this service only looks rows up.
package employees

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/zkpuller/internal/common"
	"github.com/dmitrijs2005/zkpuller/internal/dbx"
	"github.com/dmitrijs2005/zkpuller/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByDeviceUserID(ctx context.Context, userID int64) (*models.Employee, error) {
	query := `
		SELECT id, full_name, attendance_log_userid FROM employees
		WHERE attendance_log_userid = $1
	`

	employee := &models.Employee{}
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&employee.ID, &employee.FullName, &employee.AttendanceLogUserID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return employee, nil
}
