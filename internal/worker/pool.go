// Package worker spawns one goroutine per shard, each running
// block.Process over its slice of the mapped input, and reports completions
// out of submission order through a ready queue so the caller can merge
// while later shards are still running.
package worker

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/onebrc/aggregator/internal/block"
	"github.com/onebrc/aggregator/internal/shard"
)

// Ready is one shard's completed Result, tagged with its shard id so a
// drainer can tell completions apart regardless of arrival order.
type Ready struct {
	ID     int
	Result block.Result
}

// Pool runs one goroutine per shard under an errgroup: if any worker
// returns an error, the group's context is cancelled and Run returns that
// error after all goroutines have exited. No worker outlives Run.
type Pool struct {
	expectedStations int
}

// New creates a Pool whose workers pre-size their local maps to
// expectedStations.
func New(expectedStations int) *Pool {
	return &Pool{expectedStations: expectedStations}
}

// Run processes every shard in shards concurrently and invokes onReady for
// each completed Result as it arrives, in completion order rather than
// shard order. Run blocks until every worker has finished (or one has
// failed) and returns the first error encountered, if any.
func (p *Pool) Run(ctx context.Context, shards []shard.Region, onReady func(Ready)) error {
	g, gctx := errgroup.WithContext(ctx)
	readyCh := make(chan Ready, len(shards))

	for id, region := range shards {
		id, region := id, region
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res := block.Process(region, p.expectedStations)
			readyCh <- Ready{ID: id, Result: res}
			return nil
		})
	}

	drained := make(chan error, 1)
	go func() {
		for i := 0; i < len(shards); i++ {
			select {
			case r := <-readyCh:
				onReady(r)
			case <-ctx.Done():
				drained <- ctx.Err()
				return
			}
		}
		drained <- nil
	}()

	if err := g.Wait(); err != nil {
		<-drained
		return fmt.Errorf("worker pool: %w", err)
	}
	return <-drained
}
