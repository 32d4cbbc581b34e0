package sdtrace_test

import (
	"testing"

	"github.com/sdlog/sdlog/sdtrace"

	"github.com/stretchr/testify/assert"
)

func TestZeroValue(t *testing.T) {
	x := sdtrace.NewHexBytes8()
	assert.True(t, x.IsZero())
	assert.Equal(t, "0000000000000000", x.String())
}

func TestRandomIsNonZero(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		x := sdtrace.NewRandomHexBytes8()
		assert.False(t, x.IsZero())
		assert.Len(t, x.String(), 16)
		seen[x.String()] = struct{}{}
	}
	assert.Equal(t, 100, len(seen), "no collisions in a small sample")
}

func TestFromSlice(t *testing.T) {
	x := sdtrace.NewHexBytes8FromSlice([]byte{0xde, 0xad, 0xbe, 0xef, 0, 0, 0, 1})
	assert.Equal(t, "deadbeef00000001", x.String())
	assert.Equal(t, [8]byte{0xde, 0xad, 0xbe, 0xef, 0, 0, 0, 1}, x.Array())

	short := sdtrace.NewHexBytes8FromSlice([]byte{0x7f})
	assert.Equal(t, "000000000000007f", short.String(), "short slices are right-aligned")
}
