package employees

import (
	"context"

	"github.com/dmitrijs2005/zkpuller/internal/models"
)

type Repository interface {
	// GetByDeviceUserID resolves the employee whose attendance_log_userid
	// matches the device user identifier. Misses return common.ErrorNotFound.
	GetByDeviceUserID(ctx context.Context, userID int64) (*models.Employee, error)
}
