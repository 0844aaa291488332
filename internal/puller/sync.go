package puller

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dmitrijs2005/zkpuller/internal/classifier"
	"github.com/dmitrijs2005/zkpuller/internal/common"
	"github.com/dmitrijs2005/zkpuller/internal/device"
	"github.com/dmitrijs2005/zkpuller/internal/logging"
	"github.com/dmitrijs2005/zkpuller/internal/models"
)

// stats counts per-run outcomes for the closing summary line.
type stats struct {
	inserted int
	rejected int
	skipped  int
}

// dateIn reduces an instant to its calendar date in the given zone,
// normalized to UTC midnight so it can serve as a DATE column value and be
// compared with ==/Before.
func dateIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Run performs one fetch-classify-write pass. Only an unreachable store, a
// failed device connection, or a failed fetch abort the run; every
// per-punch failure is contained and the loop continues. The device session
// is released on every exit path once established.
func (app *App) Run(ctx context.Context) error {
	log := app.logger

	if err := app.repos.Attendance().Ping(ctx); err != nil {
		log.Error(ctx, "attendance store unreachable, stopping", "error", err.Error())
		return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	log.Info(ctx, "attendance store reachable")

	conn, used, err := device.DialFirst(ctx, app.dialer, app.config.Candidates(), log)
	if err != nil {
		log.Error(ctx, "could not connect to device", "error", err.Error())
		return err
	}

	defer func() {
		if err := conn.Disconnect(); err != nil {
			log.Warn(ctx, "device disconnect failed", "error", err.Error())
			return
		}
		log.Info(ctx, "disconnected from device")
	}()

	punches, err := conn.Attendances()
	if err != nil {
		log.Error(ctx, "failed to fetch attendance records", "error", err.Error())
		return fmt.Errorf("device read error: %w", err)
	}

	loc := app.location(ctx)
	today := dateIn(app.now(), loc)

	kept := make([]device.Punch, 0, len(punches))
	for _, p := range punches {
		if !dateIn(p.Timestamp, loc).Before(today) {
			kept = append(kept, p)
		}
	}

	// Classification of each punch depends on the rows committed for the
	// punches before it, so order matters.
	sort.Slice(kept, func(i, j int) bool {
		return kept[i].Timestamp.Before(kept[j].Timestamp)
	})

	log.Info(ctx, "retrieved attendance records",
		"total", len(punches), "kept", len(kept),
		"from", today.Format("2006-01-02"), "candidate", used.String())

	var st stats
	for _, p := range kept {
		app.processPunch(ctx, p, loc, &st)
	}

	log.Info(ctx, "sync pass finished",
		"inserted", st.inserted, "rejected", st.rejected, "skipped", st.skipped)
	return nil
}

// processPunch runs classification and the resulting writes for one punch.
// Failures are logged and counted, never propagated; a skipped punch will
// resurface on the next run because the device retains history.
func (app *App) processPunch(ctx context.Context, p device.Punch, loc *time.Location, st *stats) {
	log := app.logger.With("user_id", p.UserID, "timestamp", p.Timestamp.Format(time.RFC3339))
	workDate := dateIn(p.Timestamp, loc)

	existing, err := app.repos.Attendance().ListForDay(ctx, p.UserID, workDate)
	if err != nil {
		log.Error(ctx, "lookup failed, skipping punch", "error", err.Error())
		st.skipped++
		return
	}

	decision := classifier.Classify(p.Timestamp, existing)
	if !decision.Accepted {
		log.Info(ctx, "punch rejected", "reason", decision.Reason)
		st.rejected++
		return
	}

	row := &models.AttendanceLog{
		UserID:    p.UserID,
		Timestamp: p.Timestamp,
		Status:    decision.Status,
		WorkDate:  workDate,
	}
	if err := app.repos.Attendance().Create(ctx, row); err != nil {
		log.Error(ctx, "failed to insert attendance log", "error", err.Error())
		st.skipped++
		return
	}
	st.inserted++
	log.Info(ctx, "inserted attendance log", "status", string(decision.Status))

	if decision.Status == models.TimeOut {
		app.propagateTimeOut(ctx, log, p, workDate)
	}
}

// propagateTimeOut copies an accepted time_out into the employee's daily
// summary row. A device user with no employee mapping is a warning, not an
// error; a summary row that does not exist yet is accepted silently.
func (app *App) propagateTimeOut(ctx context.Context, log logging.Logger, p device.Punch, workDate time.Time) {
	employee, err := app.repos.Employees().GetByDeviceUserID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			log.Warn(ctx, "no employee mapped to device user, skipping time_logs update")
			return
		}
		log.Error(ctx, "employee lookup failed", "error", err.Error())
		return
	}

	n, err := app.repos.TimeLogs().SetTimeOut(ctx, employee.ID, workDate, p.Timestamp)
	if err != nil {
		log.Error(ctx, "failed to update time_logs", "employee_id", employee.ID, "error", err.Error())
		return
	}
	if n == 0 {
		log.Debug(ctx, "no time_logs row for employee and date", "employee_id", employee.ID)
		return
	}
	log.Info(ctx, "updated time_logs", "employee_id", employee.ID, "time_out", p.Timestamp.Format("15:04:05"))
}
