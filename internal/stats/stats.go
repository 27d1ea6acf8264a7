// Package stats implements the per-station accumulator: min, mean, max over
// a stream of tenths-of-a-degree observations.
package stats

import "math"

// Station is the accumulator for one station. All fields are plain value
// types so it can be copied freely; StationStats's invariant (min <= mean
// <= max, count >= 1) holds from the moment FromTenths returns.
type Station struct {
	Min, Max int16
	Sum      int64
	Count    uint64
}

// FromTenths creates the accumulator for the first observation of a station.
func FromTenths(v int16) Station {
	return Station{Min: v, Max: v, Sum: int64(v), Count: 1}
}

// Update folds one more observation into the accumulator in place.
func (s *Station) Update(v int16) {
	if v < s.Min {
		s.Min = v
	}
	if v > s.Max {
		s.Max = v
	}
	s.Sum += int64(v)
	s.Count++
}

// Merge folds another accumulator for the same station into s. Merge is
// commutative and associative, so absorbing worker results in any order
// produces the same result.
func (s *Station) Merge(other Station) {
	if other.Min < s.Min {
		s.Min = other.Min
	}
	if other.Max > s.Max {
		s.Max = other.Max
	}
	s.Sum += other.Sum
	s.Count += other.Count
}

// Mean returns the arithmetic mean of the accumulated tenths, in whole
// degrees, rounded to one decimal place using round-toward-positive-infinity
// at the tenths place (so 0.15 rounds to 0.2 and -0.15 rounds to -0.1).
func (s Station) Mean() float64 {
	return roundTenthUp(float64(s.Sum) / (float64(s.Count) * 10.0))
}

// MinDegrees and MaxDegrees expose Min/Max scaled to whole degrees.
func (s Station) MinDegrees() float64 { return float64(s.Min) / 10.0 }
func (s Station) MaxDegrees() float64 { return float64(s.Max) / 10.0 }

// roundTenthUp rounds x to one decimal place using IEEE-754
// "roundTowardPositive": scale by ten, truncate, bump up if the scaled
// value strictly exceeds its truncation.
func roundTenthUp(x float64) float64 {
	scaled := x * 10.0
	truncated := math.Trunc(scaled)
	if scaled > truncated {
		truncated++
	}
	return truncated / 10.0
}
