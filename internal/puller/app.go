// Package puller initializes and runs one synchronization pass: it pulls
// attendance punches from the time-clock device, classifies them, and
// upserts the results into the attendance store.
package puller

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrijs2005/zkpuller/internal/config"
	"github.com/dmitrijs2005/zkpuller/internal/device"
	"github.com/dmitrijs2005/zkpuller/internal/logging"
	"github.com/dmitrijs2005/zkpuller/internal/repositories/repomanager"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	dialer device.Dialer

	// clock seam for tests
	now func() time.Time
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	repos, err := repomanager.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	dialer := &device.GozkDialer{
		MachineID: cfg.DeviceMachineID,
		Timezone:  cfg.DeviceTimezone,
	}

	return &App{
		config: cfg,
		logger: logger,
		repos:  repos,
		dialer: dialer,
		now:    time.Now,
	}, nil
}

// location resolves the configured device timezone, falling back to UTC if
// the name does not load.
func (app *App) location(ctx context.Context) *time.Location {
	loc, err := time.LoadLocation(app.config.DeviceTimezone)
	if err != nil {
		app.logger.Warn(ctx, "unknown device timezone, using UTC", "timezone", app.config.DeviceTimezone)
		return time.UTC
	}
	return loc
}
