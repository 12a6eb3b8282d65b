package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethpandaops/checkpointquorum/pkg/checkpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "endpoints.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_BelowThresholdFails(t *testing.T) {
	path := writeTempConfig(t, "endpoints:\n  mainnet:\n    - http://a\n    - http://b\n")

	_, err := Load(path)

	require.Error(t, err)

	var appErr *checkpoint.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, checkpoint.KindEndpointsBelowThreshold, appErr.Kind)
}

func TestLoad_AtThresholdSucceeds(t *testing.T) {
	path := writeTempConfig(t, "endpoints:\n  mainnet:\n    - http://a\n    - http://b\n    - http://c\n")

	cfg, err := Load(path)

	require.NoError(t, err)

	endpoints, err := cfg.Lookup(Mainnet)
	require.NoError(t, err)
	assert.Len(t, endpoints, 3)
}

func TestLoad_MissingNetworkFailsLookup(t *testing.T) {
	path := writeTempConfig(t, "endpoints:\n  mainnet:\n    - http://a\n    - http://b\n    - http://c\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	_, err = cfg.Lookup(Goerli)
	require.Error(t, err) // a loaded config file takes precedence over the built-in Goerli defaults

	delete(defaultEndpoints, Goerli)
	defer func() { defaultEndpoints[Goerli] = defaultGoerliForTest }()

	_, err = cfg.Lookup(Goerli)
	require.Error(t, err)

	var appErr *checkpoint.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, checkpoint.KindEndpointsNotFound, appErr.Kind)
}

var defaultGoerliForTest = defaultEndpoints[Goerli]

func TestLoad_NonExistentNonDefaultPathFails(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist-but-not-default-path.yaml"))
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_MissingDefaultPathIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(oldWd) }()

	cfg, err := Load(DefaultConfigPath)
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Empty(t, cfg.Endpoints)
}
