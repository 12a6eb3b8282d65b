package config

import (
	"time"

	"github.com/ethpandaops/checkpointquorum/pkg/human"
)

const defaultProbeInterval = 30 * time.Second

// ServerConfig holds the knobs for `checkpointquorum server`. ProbeInterval
// uses human.Duration rather than a bare time.Duration so it round-trips
// through the same human-readable string form ("30s", "5m") the CLI flag
// accepts and a future YAML server config would use.
type ServerConfig struct {
	Port          int            `yaml:"port"`
	ProbeInterval human.Duration `yaml:"probe_interval"`
}

// DefaultServerConfig returns the baseline server settings, overridden by
// whatever flags the caller supplies on top.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:          7070,
		ProbeInterval: human.Duration{Duration: defaultProbeInterval},
	}
}
