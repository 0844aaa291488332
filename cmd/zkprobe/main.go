package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/zkpuller/internal/config"
	"github.com/dmitrijs2005/zkpuller/internal/device"
	"github.com/dmitrijs2005/zkpuller/internal/logging"
	"github.com/dmitrijs2005/zkpuller/internal/probe"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	dialer := &device.GozkDialer{
		MachineID: cfg.DeviceMachineID,
		Timezone:  cfg.DeviceTimezone,
	}

	results := probe.Run(ctx, dialer, probe.Candidates(cfg), logger)

	for _, r := range results {
		logger.Info(ctx, "working configuration",
			"candidate", r.Config.String(), "attendance_records", r.Records)
	}

	if len(results) == 0 {
		os.Exit(1)
	}

}
