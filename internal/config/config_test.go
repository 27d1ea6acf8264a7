package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultInputPath, cfg.InputPath)
	assert.Equal(t, DefaultExpectedStations, cfg.ExpectedStations)
	assert.False(t, cfg.Dev)
}

func TestLoadWithoutFileAppliesDevSwitch(t *testing.T) {
	cfg, err := Load("", true)
	require.NoError(t, err)
	assert.Equal(t, DefaultDevInputPath, cfg.InputPath)
}

func TestLoadFromTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
workers = 4
expected_stations = 500
input_path = "custom.txt"
profile = "cpu"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 500, cfg.ExpectedStations)
	assert.Equal(t, "custom.txt", cfg.InputPath)
	assert.Equal(t, "cpu", cfg.Profile)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"), false)
	assert.Error(t, err)
}
