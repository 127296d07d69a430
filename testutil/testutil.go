package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// UniformComponents returns dim values in range [-1, 1).
func (r *RNG) UniformComponents(dim int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	cs := make([]float64, dim)
	for i := range cs {
		cs[i] = r.rand.Float64()*2 - 1
	}
	return cs
}

// GaussianComponents returns dim values from a standard normal distribution.
func (r *RNG) GaussianComponents(dim int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	cs := make([]float64, dim)
	for i := range cs {
		cs[i] = r.rand.NormFloat64()
	}
	return cs
}

// specials are values that tend to break encoders and formatters.
var specials = []float64{
	0,
	math.Copysign(0, -1),
	math.Inf(1),
	math.Inf(-1),
	math.NaN(),
	math.MaxFloat64,
	-math.MaxFloat64,
	math.SmallestNonzeroFloat64,
	1e16,
	1e-5,
}

// SpecialComponents returns dim values where roughly a third are drawn from
// signed zeros, infinities, NaN and extreme magnitudes.
func (r *RNG) SpecialComponents(dim int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	cs := make([]float64, dim)
	for i := range cs {
		if r.rand.Intn(3) == 0 {
			cs[i] = specials[r.rand.Intn(len(specials))]
			continue
		}
		cs[i] = r.rand.NormFloat64() * math.Pow(10, float64(r.rand.Intn(40)-20))
	}
	return cs
}

// Dimensions returns n random dimensions in [0, maxDim], always including
// the empty and single-component cases first.
func (r *RNG) Dimensions(n, maxDim int) []int {
	dims := []int{0, 1}
	r.mu.Lock()
	defer r.mu.Unlock()
	for len(dims) < n {
		dims = append(dims, r.rand.Intn(maxDim+1))
	}
	return dims[:max(n, 0)]
}
