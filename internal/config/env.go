package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// parseEnv overlays cfg with values from the environment. The original
// deployment keeps these in a .env file exported by the scheduler.
//
// Recognized variables:
//
//	DATABASE_DSN         PostgreSQL DSN
//	ZK_DEVICE_HOST       device address
//	ZK_DEVICE_PORT       primary device port
//	ZK_DEVICE_COMM_KEYS  comma-separated key candidates, e.g. "0,1234"
//	ZK_DEVICE_TIMEOUT    per-candidate timeout, e.g. "10s"
//	ZK_DEVICE_TIMEZONE   IANA zone of the device clock
//
// Malformed numeric or duration values are ignored and the previous value
// is kept.
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		cfg.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("ZK_DEVICE_HOST"); ok {
		cfg.DeviceHost = v
	}
	if v, ok := os.LookupEnv("ZK_DEVICE_PORT"); ok {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.DevicePort = port
		}
	}
	if v, ok := os.LookupEnv("ZK_DEVICE_COMM_KEYS"); ok {
		if keys := parseIntList(v); keys != nil {
			cfg.DeviceCommKeys = keys
		}
	}
	if v, ok := os.LookupEnv("ZK_DEVICE_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.DeviceTimeout = d
		}
	}
	if v, ok := os.LookupEnv("ZK_DEVICE_TIMEZONE"); ok {
		cfg.DeviceTimezone = v
	}
}

func parseIntList(s string) []int {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil
		}
		out = append(out, n)
	}
	return out
}
