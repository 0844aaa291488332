package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/zkpuller/internal/flagx"
	"github.com/dmitrijs2005/zkpuller/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the timeout can be written either as a string like
// "10s" or as integer nanoseconds. Absent fields keep their current value.
type JsonConfig struct {
	DatabaseDSN         *string         `json:"database_dsn"`
	DeviceHost          *string         `json:"device_host"`
	DevicePort          *int            `json:"device_port"`
	DeviceCommKeys      []int           `json:"device_comm_keys"`
	DeviceFallbackPorts []int           `json:"device_fallback_ports"`
	DeviceTimeout       *timex.Duration `json:"device_timeout"`
	DeviceTimezone      *string         `json:"device_timezone"`
	DeviceMachineID     *int            `json:"device_machine_id"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flag. When no flag is given, nothing is loaded. Read or
// unmarshal errors panic; the loader runs before any side effects.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.DeviceHost != nil {
		cfg.DeviceHost = *jc.DeviceHost
	}
	if jc.DevicePort != nil {
		cfg.DevicePort = *jc.DevicePort
	}
	if jc.DeviceCommKeys != nil {
		cfg.DeviceCommKeys = jc.DeviceCommKeys
	}
	if jc.DeviceFallbackPorts != nil {
		cfg.DeviceFallbackPorts = jc.DeviceFallbackPorts
	}
	if jc.DeviceTimeout != nil {
		cfg.DeviceTimeout = time.Duration(jc.DeviceTimeout.Duration)
	}
	if jc.DeviceTimezone != nil {
		cfg.DeviceTimezone = *jc.DeviceTimezone
	}
	if jc.DeviceMachineID != nil {
		cfg.DeviceMachineID = *jc.DeviceMachineID
	}
}
