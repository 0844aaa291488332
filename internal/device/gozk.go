package device

import (
	"context"
	"strconv"

	"github.com/canhlinh/gozk"
)

// GozkDialer dials ZKTeco devices with the gozk protocol client. The client
// speaks TCP only, so transport is not part of the candidate configuration.
// Timezone is the IANA zone the device clock runs in; gozk uses it to
// interpret the wall-clock timestamps in attendance records.
type GozkDialer struct {
	MachineID int
	Timezone  string
}

// Dial connects with one candidate configuration. The candidate's Timeout
// bounds the whole connection attempt.
func (d *GozkDialer) Dial(ctx context.Context, cfg ConnConfig) (Conn, error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	zk := gozk.NewZK(cfg.Host,
		gozk.WithPort(cfg.Port),
		gozk.WithPin(cfg.CommKey),
		gozk.WithTimezone(d.Timezone),
		gozk.WithDeviceID(strconv.Itoa(d.MachineID)))

	if err := connectWithin(ctx, zk.Connect, func() { _ = zk.Disconnect() }); err != nil {
		return nil, err
	}

	return &gozkConn{zk: zk}, nil
}

// connectWithin runs connect under the context's deadline. gozk's Connect has
// no deadline of its own, so on timeout the attempt keeps running in the
// background; if it ends up succeeding anyway, the session it established is
// released, because the device serves one session at a time and a leaked one
// would block every later dial.
func connectWithin(ctx context.Context, connect func() error, disconnect func()) error {
	errc := make(chan error, 1)
	go func() { errc <- connect() }()

	select {
	case <-ctx.Done():
		go func() {
			if err := <-errc; err == nil {
				disconnect()
			}
		}()
		return ctx.Err()
	case err := <-errc:
		return err
	}
}

type gozkConn struct {
	zk *gozk.ZK
}

func (c *gozkConn) Attendances() ([]Punch, error) {
	records, err := c.zk.GetAllScannedEvents()
	if err != nil {
		return nil, err
	}

	punches := make([]Punch, 0, len(records))
	for _, rec := range records {
		punches = append(punches, Punch{UserID: rec.UserID, Timestamp: rec.Timestamp})
	}
	return punches, nil
}

func (c *gozkConn) Disconnect() error {
	return c.zk.Disconnect()
}
