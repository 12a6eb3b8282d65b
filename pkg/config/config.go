package config

import (
	"os"

	"github.com/ethpandaops/checkpointquorum/pkg/checkpoint"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// MinEndpoints is the minimum number of endpoints a network's list must
// carry for the quorum rule in spec §4.6 to be meaningful at all.
const MinEndpoints = 3

// DefaultConfigPath is used when -e/--endpoints is not supplied.
const DefaultConfigPath = "./endpoints.yaml"

// EndpointsConfig is a mapping from network name to its ordered endpoint
// list, loaded from YAML. Every list present must have length >= 3; this
// is enforced once, at load time.
type EndpointsConfig struct {
	Endpoints map[Network][]string `yaml:"endpoints"`

	// fromFile is set when the config was read from a file rather than
	// defaulted because the default path does not exist.
	fromFile bool
}

// Load reads and validates the config file at path. If path does not exist
// and equals DefaultConfigPath, Load returns an EndpointsConfig with no
// entries rather than failing — callers then fall back to
// DefaultEndpoints per network (spec_full §3).
func Load(path string) (*EndpointsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultConfigPath {
			return &EndpointsConfig{Endpoints: map[Network][]string{}}, nil
		}

		return nil, errors.Wrapf(err, "failed to read endpoints config at %s", path)
	}

	var cfg EndpointsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse endpoints config at %s", path)
	}

	for network, endpoints := range cfg.Endpoints {
		if len(endpoints) < MinEndpoints {
			return nil, checkpoint.NewEndpointsBelowThresholdError(
				errors.Errorf("network %q has %d endpoints, need at least %d", network, len(endpoints), MinEndpoints).Error(),
			)
		}
	}

	cfg.fromFile = true

	return &cfg, nil
}

// Lookup returns the endpoint list for network: the config file's entry if
// present; when no config file was loaded, the built-in default; else
// EndpointsNotFound.
func (c *EndpointsConfig) Lookup(network Network) ([]string, error) {
	if endpoints, ok := c.Endpoints[network]; ok {
		return endpoints, nil
	}

	if defaults := DefaultEndpoints(network); !c.fromFile && len(defaults) > 0 {
		if len(defaults) < MinEndpoints {
			return nil, checkpoint.NewEndpointsBelowThresholdError(
				errors.Errorf("default endpoint list for network %q has %d endpoints, need at least %d", network, len(defaults), MinEndpoints).Error(),
			)
		}

		return defaults, nil
	}

	return nil, checkpoint.NewEndpointsNotFoundError(
		errors.Errorf("no endpoints configured for network %q", network).Error(),
	)
}
