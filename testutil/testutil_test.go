package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformComponents(t *testing.T) {
	rng := NewRNG(4711)

	cs := rng.UniformComponents(32)

	assert.Len(t, cs, 32)
	for _, c := range cs {
		assert.GreaterOrEqual(t, c, -1.0)
		assert.Less(t, c, 1.0)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(42)
	first := rng.GaussianComponents(8)
	rng.Reset()
	assert.Equal(t, first, rng.GaussianComponents(8))
	assert.Equal(t, int64(42), rng.Seed())
}

func TestSpecialComponents(t *testing.T) {
	rng := NewRNG(1)
	assert.Len(t, rng.SpecialComponents(100), 100)
	assert.Empty(t, rng.SpecialComponents(0))
}

func TestDimensions(t *testing.T) {
	rng := NewRNG(7)

	dims := rng.Dimensions(10, 16)

	assert.Len(t, dims, 10)
	assert.Equal(t, []int{0, 1}, dims[:2])
	for _, d := range dims {
		assert.GreaterOrEqual(t, d, 0)
		assert.LessOrEqual(t, d, 16)
	}
	assert.Equal(t, []int{0}, rng.Dimensions(1, 16))
}
