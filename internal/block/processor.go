// Package block implements the per-shard line decoder: it streams one
// contiguous byte region, splits it on line terminators, and folds each
// line's temperature into a station->stats map keyed by the 64-bit xxhash
// of the raw name bytes. Names are told apart by that hash alone: two names
// with the same hash share one entry.
package block

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
	"github.com/kamstrup/intmap"

	"github.com/onebrc/aggregator/internal/stats"
	"github.com/onebrc/aggregator/internal/tenths"
)

// Entry is one station's accumulator together with the name that produced
// it, so that the aggregator can recover the printable key from a hash
// bucket without re-scanning the input region.
type Entry struct {
	Name  string
	Stats stats.Station
}

// Result is what one worker hands back after processing its shard: the
// station map keyed by the station-name hash, plus the line and error
// counters so the sum across every shard always equals the totals the
// aggregator reports.
type Result struct {
	Entries *intmap.Map[uint64, *Entry]
	Lines   int
	Errors  int
}

// DefaultExpectedStations is the pre-sizing hint for a shard's local map
// when the caller has no better estimate. It matches the station
// cardinality of the canonical 1BRC dataset (~10,000 distinct names drawn
// from a catalog of ~400 base names by mutation).
const DefaultExpectedStations = 10_000

// Process streams region, which must contain only whole lines (region[i] for
// every i < len(region)-1 lines ends with '\n'; a final byte range with no
// trailing '\n' is treated as an unterminated partial line and silently
// dropped, per the shard contract). expectedStations pre-sizes the local
// map to avoid rehashing on the hot path.
func Process(region []byte, expectedStations int) Result {
	if expectedStations <= 0 {
		expectedStations = DefaultExpectedStations
	}
	entries := intmap.New[uint64, *Entry](expectedStations)

	res := Result{Entries: entries}

	lineStart := 0
	for i := 0; i < len(region); i++ {
		if region[i] != '\n' {
			continue
		}
		line := region[lineStart:i]
		lineStart = i + 1
		res.Lines++

		sep := bytes.LastIndexByte(line, ';')
		if sep < 0 {
			res.Errors++
			continue
		}
		name, tail := line[:sep], line[sep+1:]

		v, ok := tenths.Parse(tail)
		if !ok {
			res.Errors++
			continue
		}

		h := xxhash.Sum64(name)
		if e, found := entries.Get(h); found {
			e.Stats.Update(v)
		} else {
			entries.Put(h, &Entry{Name: string(name), Stats: stats.FromTenths(v)})
		}
	}

	return res
}
