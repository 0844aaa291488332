// Package probe implements the connectivity diagnostic behind zkprobe: it
// tries every candidate device configuration, not just the first working
// one, and reports what each successful session exposes. Operators run it
// when the sync pass cannot reach a device.
package probe

import (
	"context"

	"github.com/dmitrijs2005/zkpuller/internal/config"
	"github.com/dmitrijs2005/zkpuller/internal/device"
	"github.com/dmitrijs2005/zkpuller/internal/logging"
)

// Result describes one candidate configuration that produced a session.
type Result struct {
	Config  device.ConnConfig
	Records int // attendance records stored on the device, -1 if the fetch failed
}

// Candidates widens the sync pass's candidate list for diagnostics: the
// extra comm keys and the long-timeout variant mirror what a technician
// would try by hand against a device with unknown settings.
func Candidates(cfg *config.Config) []device.ConnConfig {
	widened := *cfg
	widened.DeviceCommKeys = append(append([]int{}, cfg.DeviceCommKeys...), 123456)

	out := widened.Candidates()
	out = append(out, device.ConnConfig{
		Host:    cfg.DeviceHost,
		Port:    cfg.DevicePort,
		CommKey: 0,
		Timeout: 3 * cfg.DeviceTimeout,
	})
	return out
}

// Run dials every candidate in order and returns the ones that connected.
// Sessions are closed before the next attempt starts; the device only
// serves one connection at a time.
func Run(ctx context.Context, d device.Dialer, candidates []device.ConnConfig, log logging.Logger) []Result {
	var results []Result

	for i, cand := range candidates {
		log.Info(ctx, "probing device", "attempt", i+1, "of", len(candidates), "candidate", cand.String())

		conn, err := d.Dial(ctx, cand)
		if err != nil {
			log.Warn(ctx, "probe failed", "candidate", cand.String(), "error", err.Error())
			continue
		}

		res := Result{Config: cand, Records: -1}
		punches, err := conn.Attendances()
		if err != nil {
			log.Warn(ctx, "connected but could not read attendance", "candidate", cand.String(), "error", err.Error())
		} else {
			res.Records = len(punches)
			log.Info(ctx, "candidate works", "candidate", cand.String(), "attendance_records", res.Records)
		}
		results = append(results, res)

		if err := conn.Disconnect(); err != nil {
			log.Warn(ctx, "disconnect failed", "candidate", cand.String(), "error", err.Error())
		}
	}

	if len(results) == 0 {
		log.Error(ctx, "no candidate configuration could connect",
			"hint", "check device address, power, and comm-key settings")
	}
	return results
}
