// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/zkpuller/internal/migrations"
	"github.com/dmitrijs2005/zkpuller/internal/repositories/attendance"
	"github.com/dmitrijs2005/zkpuller/internal/repositories/employees"
	"github.com/dmitrijs2005/zkpuller/internal/repositories/timelogs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct {
	db         *sql.DB
	attendance attendance.Repository
	employees  employees.Repository
	timeLogs   timelogs.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Attendance() attendance.Repository {
	return m.attendance
}

func (m *PostgresRepositoryManager) Employees() employees.Repository {
	return m.employees
}

func (m *PostgresRepositoryManager) TimeLogs() timelogs.Repository {
	return m.timeLogs
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the managed database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

// NewPostgresRepositoryManager opens the DSN, constructs the repositories,
// and applies pending migrations.
func NewPostgresRepositoryManager(ctx context.Context, dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:         db,
		attendance: attendance.NewPostgresRepository(db),
		employees:  employees.NewPostgresRepository(db),
		timeLogs:   timelogs.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
