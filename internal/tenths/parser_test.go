package tenths

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoundTrip(t *testing.T) {
	for i := Min; i <= Max; i++ {
		s := fmt.Sprintf("%.1f", float64(i)/10.0)
		v, ok := Parse([]byte(s))
		assert.Truef(t, ok, "Parse(%q) should succeed", s)
		assert.Equal(t, int16(i), v, "Parse(%q)", s)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := []string{
		"100.1",
		"1000.1",
		".1",
		".11",
		"100",
		"1c.0",
		"1 .0",
		"10.b",
		"10. ",
		"+0.0",
		" 1.0",
	}
	for _, c := range cases {
		_, ok := Parse([]byte(c))
		assert.Falsef(t, ok, "Parse(%q) should fail", c)
	}
}

func TestParseBoundaryValues(t *testing.T) {
	v, ok := Parse([]byte("99.9"))
	assert.True(t, ok)
	assert.Equal(t, int16(999), v)

	v, ok = Parse([]byte("-99.9"))
	assert.True(t, ok)
	assert.Equal(t, int16(-999), v)

	v, ok = Parse([]byte("0.0"))
	assert.True(t, ok)
	assert.Equal(t, int16(0), v)

	v, ok = Parse([]byte("-0.1"))
	assert.True(t, ok)
	assert.Equal(t, int16(-1), v)
}
