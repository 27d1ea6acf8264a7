package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromTenths(t *testing.T) {
	s := FromTenths(19)
	assert.Equal(t, Station{Min: 19, Max: 19, Sum: 19, Count: 1}, s)
}

func TestUpdateWidensRange(t *testing.T) {
	s := FromTenths(19)
	s.Update(998)
	s.Update(-105)
	assert.Equal(t, int16(-105), s.Min)
	assert.Equal(t, int16(998), s.Max)
	assert.Equal(t, int64(19+998-105), s.Sum)
	assert.Equal(t, uint64(3), s.Count)
}

func TestMergeIsCommutativeAndAssociative(t *testing.T) {
	a := FromTenths(10)
	a.Update(20)
	b := FromTenths(-30)
	b.Update(40)

	ab := a
	ab.Merge(b)

	ba := b
	ba.Merge(a)

	assert.Equal(t, ab, ba)
}

func TestMeanRoundsTowardPositiveInfinity(t *testing.T) {
	s := Station{Sum: 3, Count: 2} // mean = 0.15
	assert.InDelta(t, 0.2, s.Mean(), 1e-9)

	s2 := Station{Sum: -3, Count: 2} // mean = -0.15
	assert.InDelta(t, -0.1, s2.Mean(), 1e-9)
}

func TestInvariantMinLessEqualMeanLessEqualMax(t *testing.T) {
	s := FromTenths(5)
	s.Update(-5)
	s.Update(100)
	mean := float64(s.Sum) / float64(s.Count)
	assert.LessOrEqual(t, float64(s.Min), mean)
	assert.LessOrEqual(t, mean, float64(s.Max))
}
