// Package config loads the engine's run configuration from an optional
// TOML file, with command-line flags able to override individual fields.
// None of this affects the core aggregation contract; it is the thin,
// external argument surface the engine is driven through.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// DefaultInputPath and DefaultDevInputPath mirror the release/debug input
// file convention the measurement-file generator's contract assumes.
const (
	DefaultInputPath    = "measurements.txt"
	DefaultDevInputPath = "measurements-small.txt"
)

// DefaultExpectedStations matches the canonical dataset's station
// cardinality (~10,000 distinct names drawn from a ~400-entry catalog).
const DefaultExpectedStations = 10_000

// Config is the full set of knobs cmd/onebrc exposes.
type Config struct {
	InputPath        string `toml:"input_path"`
	Workers          int    `toml:"workers"`
	ExpectedStations int    `toml:"expected_stations"`
	Profile          string `toml:"profile"` // "", "cpu", "mem", or "trace"
	LogLevel         string `toml:"log_level"`
	Dev              bool   `toml:"dev"`
}

// Default returns the configuration used when no file and no flags
// override anything.
func Default() Config {
	return Config{
		InputPath:        DefaultInputPath,
		Workers:          0, // 0 means "use hardware parallelism"
		ExpectedStations: DefaultExpectedStations,
		Profile:          "",
		LogLevel:         "info",
		Dev:              false,
	}
}

// Load starts from Default, overlays path (if non-empty) via TOML, then
// applies dev as the debug/release input-path switch the generator
// contract assumes when no explicit input path was configured.
func Load(path string, dev bool) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}
	if dev {
		cfg.Dev = true
	}
	if cfg.Dev && cfg.InputPath == DefaultInputPath {
		cfg.InputPath = DefaultDevInputPath
	}
	return cfg, nil
}
