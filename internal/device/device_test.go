package device

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dmitrijs2005/zkpuller/internal/common"
	"github.com/dmitrijs2005/zkpuller/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	punches      []Punch
	attErr       error
	disconnected bool
}

func (f *fakeConn) Attendances() ([]Punch, error) {
	if f.attErr != nil {
		return nil, f.attErr
	}
	return f.punches, nil
}

func (f *fakeConn) Disconnect() error {
	f.disconnected = true
	return nil
}

type fakeDialer struct {
	failUntil int // attempts before this index fail
	dialed    []ConnConfig
	conn      *fakeConn
}

func (f *fakeDialer) Dial(ctx context.Context, cfg ConnConfig) (Conn, error) {
	f.dialed = append(f.dialed, cfg)
	if len(f.dialed) <= f.failUntil {
		return nil, errors.New("connection refused")
	}
	if f.conn == nil {
		f.conn = &fakeConn{}
	}
	return f.conn, nil
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func candidates() []ConnConfig {
	return []ConnConfig{
		{Host: "10.0.0.1", Port: 4370, CommKey: 0, Timeout: time.Second},
		{Host: "10.0.0.1", Port: 4370, CommKey: 1234, Timeout: time.Second},
		{Host: "10.0.0.1", Port: 8080, CommKey: 0, Timeout: time.Second},
	}
}

func TestDialFirst_FirstCandidateWins(t *testing.T) {
	d := &fakeDialer{}
	conn, used, err := DialFirst(context.Background(), d, candidates(), discardLogger())
	require.NoError(t, err)
	require.NotNil(t, conn)
	assert.Equal(t, 4370, used.Port)
	assert.Equal(t, 0, used.CommKey)
	assert.Len(t, d.dialed, 1)
}

func TestDialFirst_FallsThroughInOrder(t *testing.T) {
	d := &fakeDialer{failUntil: 2}
	conn, used, err := DialFirst(context.Background(), d, candidates(), discardLogger())
	require.NoError(t, err)
	require.NotNil(t, conn)
	assert.Equal(t, 8080, used.Port)
	assert.Len(t, d.dialed, 3)
}

func TestDialFirst_AllFail(t *testing.T) {
	d := &fakeDialer{failUntil: len(candidates())}
	conn, _, err := DialFirst(context.Background(), d, candidates(), discardLogger())
	assert.Nil(t, conn)
	assert.ErrorIs(t, err, common.ErrAllCandidatesFailed)
	assert.Len(t, d.dialed, len(candidates()))
}

func TestConnConfig_String(t *testing.T) {
	c := ConnConfig{Host: "192.168.254.201", Port: 4370, CommKey: 1234, Timeout: 10 * time.Second}
	assert.Equal(t, "192.168.254.201:4370 key=1234 timeout=10s", c.String())
}
