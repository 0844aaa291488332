package attendance

import (
	"context"
	"time"

	"github.com/dmitrijs2005/zkpuller/internal/models"
)

type Repository interface {
	// Ping is the reachability probe run before a sync pass: one cheap
	// read against attendance_logs.
	Ping(ctx context.Context) error

	// ListForDay returns the rows for one user and work date, sorted
	// ascending by timestamp.
	ListForDay(ctx context.Context, userID int64, workDate time.Time) ([]*models.AttendanceLog, error)

	// Create inserts an accepted punch. The row ID is generated by the
	// repository.
	Create(ctx context.Context, row *models.AttendanceLog) error
}
