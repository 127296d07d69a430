package nvec

import (
	"encoding/json"
	"iter"
	"math"
	"reflect"
	"slices"
)

// End is a Slice stop sentinel meaning "through the last component".
const End = math.MaxInt

// Number is the set of Go numeric types a Vector can be built from.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sequence is anything with a length and indexed float access.
// Vector implements it.
type Sequence interface {
	Len() int
	At(i int) (float64, error)
}

// Range selects the contiguous components [Start, Stop) in Get.
// Negative bounds count from the end and out-of-range bounds are clamped.
type Range struct {
	Start int
	Stop  int
}

// Span returns the Range [start, stop).
func Span(start, stop int) Range { return Range{Start: start, Stop: stop} }

// Vector is an immutable, fixed-length sequence of float64 components.
//
// The zero value is the empty vector. A Vector is never modified after
// construction, so values may be shared freely across goroutines.
type Vector struct {
	components []float64
	attrs      map[string]any
}

var _ Sequence = Vector{}

// New returns a Vector holding a copy of components.
func New(components ...float64) Vector {
	return Vector{components: slices.Clone(components)}
}

// FromNumbers converts xs to float64 components.
func FromNumbers[T Number](xs []T) Vector {
	cs := make([]float64, len(xs))
	for i, x := range xs {
		cs[i] = float64(x)
	}
	return Vector{components: cs}
}

// FromSeq collects a finite iterator into a Vector.
func FromSeq(seq iter.Seq[float64]) Vector {
	return Vector{components: slices.Collect(seq)}
}

// FromAny converts dynamically typed elements. Every element must be a Go
// numeric value or a json.Number; anything else yields a *TypeError.
func FromAny(xs []any) (Vector, error) {
	cs := make([]float64, len(xs))
	for i, x := range xs {
		f, err := toFloat(x)
		if err != nil {
			return Vector{}, err
		}
		cs[i] = f
	}
	return Vector{components: cs}, nil
}

func toFloat(x any) (float64, error) {
	switch n := x.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, typeErrorf("must be real number, not %q", string(n))
		}
		return f, nil
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}
	return 0, typeErrorf("must be real number, not %s", typeName(x))
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func typeName(x any) string {
	if x == nil {
		return "nil"
	}
	return reflect.TypeOf(x).String()
}

// Len returns the number of components.
func (v Vector) Len() int { return len(v.components) }

// At returns the component at i. Negative indices count from the end.
func (v Vector) At(i int) (float64, error) {
	n := len(v.components)
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		return 0, &IndexError{Index: i, Len: n, Msg: "array index out of range"}
	}
	return v.components[j], nil
}

// Slice returns the components [start, stop) as a new Vector, using the
// usual sequence rules: negative bounds count from the end and bounds past
// either end are clamped. Pass End as stop to slice through the last component.
func (v Vector) Slice(start, stop int) Vector {
	lo, hi := clampRange(start, stop, len(v.components))
	return Vector{components: slices.Clone(v.components[lo:hi])}
}

func clampRange(start, stop, n int) (int, int) {
	clamp := func(i int) int {
		if i < 0 {
			i += n
			if i < 0 {
				return 0
			}
		}
		if i > n {
			return n
		}
		return i
	}
	lo, hi := clamp(start), clamp(stop)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// Get is the dynamic index operation. Integer keys return the float64
// component, a Range returns a Vector, and any other key is a *TypeError.
func (v Vector) Get(key any) (any, error) {
	switch k := key.(type) {
	case Range:
		return v.Slice(k.Start, k.Stop), nil
	case *Range:
		if k != nil {
			return v.Slice(k.Start, k.Stop), nil
		}
	case int:
		return v.At(k)
	}

	rv := reflect.ValueOf(key)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		if i < math.MinInt || i > math.MaxInt {
			return nil, &IndexError{Index: 0, Len: v.Len(), Msg: "cannot fit index into an index-sized integer"}
		}
		return v.At(int(i))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt {
			return nil, &IndexError{Index: 0, Len: v.Len(), Msg: "cannot fit index into an index-sized integer"}
		}
		return v.At(int(u))
	}
	return nil, typeErrorf("Vector indices must be integers")
}

// Values returns an iterator over the components in stored order.
// Each call starts again from the first component.
func (v Vector) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, c := range v.components {
			if !yield(c) {
				return
			}
		}
	}
}

// All returns an iterator over index/component pairs.
func (v Vector) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, c := range v.components {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Components returns a copy of the components.
func (v Vector) Components() []float64 {
	return slices.Clone(v.components)
}
