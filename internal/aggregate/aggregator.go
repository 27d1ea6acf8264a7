// Package aggregate merges per-worker station maps into a single
// name-ordered result and renders it as the canonical output string.
package aggregate

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dolthub/swiss"
	"golang.org/x/exp/maps"

	"github.com/onebrc/aggregator/internal/block"
	"github.com/onebrc/aggregator/internal/stats"
)

// Aggregator owns the single-writer merge map that absorbs every worker's
// Result. It is not safe for concurrent use: only the goroutine draining
// the worker pool's ready queue may call Absorb.
type Aggregator struct {
	merged *swiss.Map[uint64, *entry]

	// lines/errors accumulate the observability counters from every
	// absorbed Result; they are never part of the printed output.
	Lines  int
	Errors int
}

type entry struct {
	name  string
	stats stats.Station
}

// New creates an Aggregator pre-sized for expectedStations distinct
// stations.
func New(expectedStations int) *Aggregator {
	if expectedStations <= 0 {
		expectedStations = block.DefaultExpectedStations
	}
	return &Aggregator{merged: swiss.NewMap[uint64, *entry](uint32(expectedStations))}
}

// Absorb folds one worker's Result into the aggregator. Calling Absorb
// repeatedly, in any order, produces the same final state: Station.Merge is
// commutative and associative.
func (a *Aggregator) Absorb(res block.Result) {
	a.Lines += res.Lines
	a.Errors += res.Errors

	res.Entries.ForEach(func(h uint64, e *block.Entry) {
		if ex, ok := a.merged.Get(h); ok {
			ex.stats.Merge(e.Stats)
			return
		}
		a.merged.Put(h, &entry{name: e.Name, stats: e.Stats})
	})
}

// Format renders the canonical "{name1=min/mean/max, ...}" string, with
// keys in lexicographic byte order. Keys that are not valid UTF-8 are
// dropped from the printed output; they remain folded into the merge map,
// and no method of Aggregator exposes them.
func (a *Aggregator) Format() string {
	nameToHash := make(map[string]uint64, a.merged.Count())
	a.merged.Iter(func(h uint64, e *entry) bool {
		nameToHash[e.name] = h
		return false
	})

	names := maps.Keys(nameToHash)
	sort.Strings(names) // Go string comparison is byte-wise, matching raw-byte ordering

	var b strings.Builder
	b.WriteByte('{')
	first := true
	for _, name := range names {
		if !utf8.ValidString(name) {
			continue
		}
		e, _ := a.merged.Get(nameToHash[name])
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%s=%.1f/%.1f/%.1f", name, e.stats.MinDegrees(), e.stats.Mean(), e.stats.MaxDegrees())
	}
	b.WriteByte('}')
	return b.String()
}
