// Command onebrc computes the canonical per-station min/mean/max aggregate
// over a weather-station measurement file and prints it to standard output.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"

	"github.com/onebrc/aggregator/internal/config"
	"github.com/onebrc/aggregator/internal/engine"
)

func main() {
	app := &cli.App{
		Name:  "onebrc",
		Usage: "aggregate a weather-station measurement file into {station=min/mean/max, ...}",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a TOML configuration file"},
			&cli.StringFlag{Name: "input", Usage: "override the input file path"},
			&cli.IntFlag{Name: "workers", Usage: "override the worker count (default: hardware parallelism)"},
			&cli.IntFlag{Name: "expected-stations", Usage: "pre-size hint for the station maps"},
			&cli.StringFlag{Name: "profile", Usage: "cpu, mem, or trace"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn, or error"},
			&cli.BoolFlag{Name: "dev", Usage: "use the small development fixture instead of the full dataset"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"), c.Bool("dev"))
	if err != nil {
		return err
	}
	if c.IsSet("input") {
		cfg.InputPath = c.String("input")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("expected-stations") {
		cfg.ExpectedStations = c.Int("expected-stations")
	}
	if c.IsSet("profile") {
		cfg.Profile = c.String("profile")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	log := newLogger(cfg.LogLevel)

	if stop := startProfiling(cfg.Profile); stop != nil {
		defer stop.Stop()
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	start := time.Now()
	res, err := engine.Run(context.Background(), log, cfg.InputPath, engine.Config{
		Workers:          workers,
		ExpectedStations: cfg.ExpectedStations,
	})
	if err != nil {
		return fmt.Errorf("aggregation failed: %w", err)
	}

	fmt.Println(res.Output)

	log.Debug("aggregation complete",
		"lines", res.Lines,
		"errors", res.Errors,
		"elapsed", time.Since(start),
	)

	return nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

type stopper interface{ Stop() }

func startProfiling(mode string) stopper {
	switch mode {
	case "cpu":
		return profile.Start(profile.CPUProfile)
	case "mem":
		return profile.Start(profile.MemProfile)
	case "trace":
		return profile.Start(profile.TraceProfile)
	default:
		return nil
	}
}
