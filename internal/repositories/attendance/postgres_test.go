package attendance

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/zkpuller/internal/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var (
	workDate = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	morning  = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	evening  = time.Date(2024, 6, 1, 17, 0, 0, 0, time.UTC)
)

func TestPing_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`SELECT id FROM attendance_logs LIMIT 1`)
	mock.ExpectQuery(q.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if err := repo.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPing_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id FROM attendance_logs LIMIT 1`).
		WillReturnError(errors.New("db is down"))

	err := repo.Ping(context.Background())
	if err == nil || !regexp.MustCompile(`db error: .*db is down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListForDay_ReturnsRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "user_id", "timestamp", "status", "work_date"}).
		AddRow("row-1", int64(7), morning, "time_in", workDate).
		AddRow("row-2", int64(7), evening, "time_out", workDate)

	mock.ExpectQuery(`SELECT id, user_id, "timestamp", status, work_date FROM attendance_logs`).
		WithArgs(int64(7), workDate).
		WillReturnRows(rows)

	got, err := repo.ListForDay(context.Background(), 7, workDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].Status != models.TimeIn || got[1].Status != models.TimeOut {
		t.Fatalf("unexpected statuses: %v %v", got[0].Status, got[1].Status)
	}
	if !got[0].Timestamp.Equal(morning) {
		t.Fatalf("unexpected first timestamp: %v", got[0].Timestamp)
	}
}

func TestListForDay_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, user_id, "timestamp", status, work_date FROM attendance_logs`).
		WithArgs(int64(7), workDate).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "timestamp", "status", "work_date"}))

	got, err := repo.ListForDay(context.Background(), 7, workDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no rows, got %d", len(got))
	}
}

func TestListForDay_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, user_id, "timestamp", status, work_date FROM attendance_logs`).
		WithArgs(int64(7), workDate).
		WillReturnError(errors.New("db is down"))

	_, err := repo.ListForDay(context.Background(), 7, workDate)
	if err == nil || !regexp.MustCompile(`failed to select attendance logs: .*db is down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped select error, got %v", err)
	}
}

func TestCreate_SuccessGeneratesID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO attendance_logs \(id, user_id, "timestamp", status, work_date\)`).
		WithArgs(sqlmock.AnyArg(), int64(7), morning, models.TimeIn, workDate).
		WillReturnResult(sqlmock.NewResult(0, 1))

	row := &models.AttendanceLog{
		UserID:    7,
		Timestamp: morning,
		Status:    models.TimeIn,
		WorkDate:  workDate,
	}
	if err := repo.Create(context.Background(), row); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.ID == "" {
		t.Fatalf("expected a generated row ID")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DBExecError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO attendance_logs`).
		WithArgs(sqlmock.AnyArg(), int64(7), morning, models.TimeIn, workDate).
		WillReturnError(errors.New("db is down"))

	row := &models.AttendanceLog{UserID: 7, Timestamp: morning, Status: models.TimeIn, WorkDate: workDate}
	err := repo.Create(context.Background(), row)
	if err == nil || !regexp.MustCompile(`db error: .*db is down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestCreate_UnexpectedRowsAffected(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO attendance_logs`).
		WithArgs(sqlmock.AnyArg(), int64(7), morning, models.TimeIn, workDate).
		WillReturnResult(sqlmock.NewResult(0, 0))

	row := &models.AttendanceLog{UserID: 7, Timestamp: morning, Status: models.TimeIn, WorkDate: workDate}
	err := repo.Create(context.Background(), row)
	if err == nil || !regexp.MustCompile(`unexpected rows affected: 0`).MatchString(err.Error()) {
		t.Fatalf("expected rows-affected error, got %v", err)
	}
}
