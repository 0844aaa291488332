package timelogs

import (
	"context"
	"time"
)

type Repository interface {
	// SetTimeOut patches the time_out column of the time_logs row for one
	// employee and date, and reports how many rows were affected. Zero is
	// a valid outcome: the summary row may not have been created yet.
	SetTimeOut(ctx context.Context, employeeID string, date time.Time, timeOut time.Time) (int64, error)
}
