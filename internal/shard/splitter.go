// Package shard partitions a mapped byte region into N disjoint sub-regions
// at line boundaries, so that each worker can stream its piece without ever
// seeing a split line.
package shard

import "bytes"

const (
	// StationNameMax is the longest station name the grammar allows.
	StationNameMax = 100
	// TempMax is the longest temperature field the grammar allows (e.g. "-99.9").
	TempMax = 5
	// LineMax is the longest possible line: name + ';' + temp + '\n'.
	LineMax = StationNameMax + TempMax + 2
)

// Region is a sub-range of the input, expressed as the byte slice itself so
// that a Region is trivially passed to block.Process without copying.
type Region = []byte

// Split divides region into at most n sub-slices (n >= 1), each ending on a
// '\n' or at end-of-region, such that concatenating the returned slices
// byte-for-byte reproduces region and no line is split across two of them.
// Because each shard may take up to ceil(len/n)+LineMax bytes, a small
// region yields fewer than n shards (a single one when len <= LineMax+ceil(len/n)).
//
// If region is empty, Split returns a single empty Region regardless of n,
// since there is nothing to distribute.
func Split(region []byte, n int) []Region {
	if n < 1 {
		n = 1
	}
	if len(region) == 0 {
		return []Region{region}
	}

	target := (len(region)+n-1)/n + LineMax

	shards := make([]Region, 0, n)
	rest := region
	for len(rest) > 0 {
		if len(shards) == n-1 {
			// last shard takes the remainder, terminator or not
			shards = append(shards, rest)
			rest = nil
			break
		}

		want := target
		if want > len(rest) {
			want = len(rest)
		}

		end := want
		if end < len(rest) {
			// walk backward to the nearest '\n' at or before end
			if nl := bytes.LastIndexByte(rest[:end], '\n'); nl >= 0 {
				end = nl + 1
			} else {
				// no terminator in the candidate window: degenerate,
				// take the whole remainder as one shard.
				end = len(rest)
			}
		}

		shards = append(shards, rest[:end])
		rest = rest[end:]
	}

	return shards
}
