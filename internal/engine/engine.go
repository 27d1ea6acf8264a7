// Package engine wires the shard splitter, worker pool and aggregator
// together around a single mapped input, owning the mapping for the full
// duration of aggregation so that every worker's shard slice stays valid.
// Station names are copied out of the mapping when a shard first sees them.
package engine

import (
	"context"
	"log/slog"

	"github.com/onebrc/aggregator/internal/aggregate"
	"github.com/onebrc/aggregator/internal/mmapfile"
	"github.com/onebrc/aggregator/internal/shard"
	"github.com/onebrc/aggregator/internal/worker"
)

// Config controls how an aggregation run is carried out.
type Config struct {
	// Workers is the desired shard count; typically hardware parallelism.
	Workers int
	// ExpectedStations pre-sizes every per-shard and merge map.
	ExpectedStations int
}

// Result is the outcome of one aggregation run: the formatted output line
// plus the observability counters accumulated along the way.
type Result struct {
	Output string
	Lines  int
	Errors int
}

// Run opens path read-only, maps it, splits it into at most cfg.Workers shards, and
// processes all of them in parallel, returning the canonical formatted
// result. The mapping is released before Run returns.
func Run(ctx context.Context, log *slog.Logger, path string, cfg Config) (Result, error) {
	region, err := mmapfile.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if cerr := region.Close(); cerr != nil {
			log.Error("closing mapped input", "err", cerr)
		}
	}()

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	shards := shard.Split(region.Bytes(), workers)
	log.Debug("split input into shards", "count", len(shards), "requested", workers)

	pool := worker.New(cfg.ExpectedStations)
	agg := aggregate.New(cfg.ExpectedStations)

	if err := pool.Run(ctx, shards, func(r worker.Ready) {
		agg.Absorb(r.Result)
	}); err != nil {
		return Result{}, err
	}

	return Result{
		Output: agg.Format(),
		Lines:  agg.Lines,
		Errors: agg.Errors,
	}, nil
}
