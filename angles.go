package nvec

import (
	"fmt"
	"iter"
	"math"
)

// Magnitude returns the Euclidean norm.
func (v Vector) Magnitude() float64 {
	return norm(v.components)
}

func norm(cs []float64) float64 {
	var sum float64
	for _, c := range cs {
		sum += c * c
	}
	return math.Sqrt(sum)
}

// NonZero reports whether the magnitude is non-zero.
func (v Vector) NonZero() bool {
	return v.Magnitude() != 0
}

// Angle returns the n-th hyperspherical angle, 1 <= n < Len().
//
// The last angle is reported in [0, 2π): when the final component is
// negative the result is 2π minus the atan2 value.
func (v Vector) Angle(n int) (float64, error) {
	if n < 1 || n >= len(v.components) {
		return 0, &IndexError{
			Index: n,
			Len:   len(v.components),
			Msg:   fmt.Sprintf("angle %d out of range [1, %d)", n, len(v.components)),
		}
	}
	return v.angle(n), nil
}

func (v Vector) angle(n int) float64 {
	r := norm(v.components[n:])
	a := math.Atan2(r, v.components[n-1])
	last := len(v.components) - 1
	if n == last && v.components[last] < 0 {
		return 2*math.Pi - a
	}
	return a
}

// Angles yields Angle(1) through Angle(Len()-1). The sequence can be
// ranged over repeatedly.
func (v Vector) Angles() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for n := 1; n < len(v.components); n++ {
			if !yield(v.angle(n)) {
				return
			}
		}
	}
}
