// Package device abstracts the biometric time-clock as a remote record
// source: something that can be dialed with one of several candidate
// configurations and then asked for its stored attendance punches.
package device

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/zkpuller/internal/common"
	"github.com/dmitrijs2005/zkpuller/internal/logging"
)

// Punch is one attendance record as reported by the device. State carries
// the raw device punch code; the protocol client in use does not surface
// it, and nothing downstream reads it.
type Punch struct {
	UserID    int64
	Timestamp time.Time
	State     int
}

// ConnConfig is one candidate connection configuration. Candidates are
// tried in order; the first one that yields a session wins. CommKey is the
// device communication password (0 on factory settings).
type ConnConfig struct {
	Host    string
	Port    int
	CommKey int
	Timeout time.Duration
}

func (c ConnConfig) String() string {
	return fmt.Sprintf("%s:%d key=%d timeout=%s", c.Host, c.Port, c.CommKey, c.Timeout)
}

// Conn is an established device session.
type Conn interface {
	// Attendances fetches every punch currently stored on the device.
	Attendances() ([]Punch, error)

	// Disconnect closes the session. Best-effort; callers log failures
	// rather than propagate them.
	Disconnect() error
}

// Dialer attempts a single connection with one candidate configuration.
type Dialer interface {
	Dial(ctx context.Context, cfg ConnConfig) (Conn, error)
}

// DialFirst tries the candidates in order and returns the first session
// that connects, together with the configuration that worked. Every failed
// attempt is logged. When no candidate succeeds it returns
// common.ErrAllCandidatesFailed.
func DialFirst(ctx context.Context, d Dialer, candidates []ConnConfig, log logging.Logger) (Conn, ConnConfig, error) {
	for i, cfg := range candidates {
		log.Debug(ctx, "trying device connection", "attempt", i+1, "candidate", cfg.String())
		conn, err := d.Dial(ctx, cfg)
		if err != nil {
			log.Warn(ctx, "device connection failed", "attempt", i+1, "candidate", cfg.String(), "error", err.Error())
			continue
		}
		log.Info(ctx, "connected to device", "candidate", cfg.String())
		return conn, cfg, nil
	}
	return nil, ConnConfig{}, common.ErrAllCandidatesFailed
}
