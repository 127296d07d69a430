package nvec

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether v and other have the same length and equal
// components. Comparison follows IEEE-754: -0 equals +0 and NaN equals nothing.
func (v Vector) Equal(other Vector) bool {
	if len(v.components) != len(other.components) {
		return false
	}
	for i, c := range v.components {
		if c != other.components[i] {
			return false
		}
	}
	return true
}

// Compare is the dynamic form of Equal. other may be a Vector, a *Vector,
// any Sequence, or a slice or array of a Go numeric type. Other operands
// are a *TypeError rather than a false result.
func (v Vector) Compare(other any) (bool, error) {
	switch o := other.(type) {
	case Vector:
		return v.Equal(o), nil
	case *Vector:
		if o == nil {
			return false, typeErrorf("cannot compare Vector with nil *Vector")
		}
		return v.Equal(*o), nil
	case []float64:
		return v.Equal(Vector{components: o}), nil
	case Sequence:
		if o.Len() != len(v.components) {
			return false, nil
		}
		for i, c := range v.components {
			oc, err := o.At(i)
			if err != nil {
				return false, err
			}
			if c != oc {
				return false, nil
			}
		}
		return true, nil
	}
	if eq, ok := v.compareNumeric(other); ok {
		return eq, nil
	}
	return false, typeErrorf("object of type %s has no len()", typeName(other))
}

// compareNumeric compares against slices and arrays of any Go numeric
// element type. ok is false for every other operand.
func (v Vector) compareNumeric(other any) (eq, ok bool) {
	rv := reflect.ValueOf(other)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return false, false
	}
	if !isNumericKind(rv.Type().Elem().Kind()) {
		return false, false
	}
	if rv.Len() != len(v.components) {
		return false, true
	}
	for i, c := range v.components {
		oc, err := toFloat(rv.Index(i).Interface())
		if err != nil || c != oc {
			return false, true
		}
	}
	return true, true
}

// Hash folds the component hashes together with XOR, starting from 0, so
// the empty vector hashes to 0 and equal vectors hash equally.
//
// XOR is insensitive to order: vectors that are permutations of each other
// collide, as do vectors differing by a pair of repeated components.
func (v Vector) Hash() uint64 {
	var h uint64
	for _, c := range v.components {
		h ^= hashComponent(c)
	}
	return h
}

func hashComponent(c float64) uint64 {
	if c == 0 {
		c = 0 // -0 hashes like +0
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(c))
	return xxhash.Sum64(buf[:])
}
