package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/zkpuller/internal/repositories/attendance"
	"github.com/dmitrijs2005/zkpuller/internal/repositories/employees"
	"github.com/dmitrijs2005/zkpuller/internal/repositories/timelogs"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Attendance() attendance.Repository
	Employees() employees.Repository
	TimeLogs() timelogs.Repository
}
