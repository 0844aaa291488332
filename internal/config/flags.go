package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/zkpuller/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL DSN
//	-a string   device address
//	-p int      primary device port
//	-t int      per-candidate connection timeout, seconds
//	-z string   device timezone (IANA name)
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with the -c/-config flag handled by
// the JSON loader.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-a", "-p", "-t", "-z"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DeviceHost, "a", config.DeviceHost, "device address")
	fs.IntVar(&config.DevicePort, "p", config.DevicePort, "device port")
	timeout := fs.Int("t", int(config.DeviceTimeout.Seconds()), "connection timeout (in seconds)")
	fs.StringVar(&config.DeviceTimezone, "z", config.DeviceTimezone, "device timezone")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.DeviceTimeout = time.Duration(*timeout) * time.Second
}
