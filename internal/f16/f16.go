// Package f16 implements IEEE-754 binary16 (float16) conversion.

// This package is internal: it backs the half-precision element format of
// the binary vector encoding.
package f16

import (
	"math"
)

// Bits is the raw IEEE-754 binary16 bit-pattern.

// Layout:
//
//	sign: 1 bit
//	exp:  5 bits (bias 15)
//	frac: 10 bits
type Bits uint16

const (
	signMask Bits = 0x8000
	expMask  Bits = 0x7C00
	fracMask Bits = 0x03FF

	f32ExpMask uint32 = 0x7F800000

	f64ExpMask  uint64 = 0x7FF0000000000000
	f64FracMask uint64 = 0x000FFFFFFFFFFFFF
	f64FracBits        = 52
	fracShift          = f64FracBits - 10
)

// ToFloat32 converts a binary16 bit-pattern to float32. The conversion is exact.
func ToFloat32(h Bits) float32 {
	sign := uint32(h&signMask) << 16
	exp := uint32(h&expMask) >> 10
	frac := uint32(h & fracMask)

	switch exp {
	case 0:
		if frac == 0 {
			return math.Float32frombits(sign)
		}
		// Subnormal: no implicit leading 1, exponent -14. Normalize.
		e := int32(-14)
		m := frac
		for (m & 0x0400) == 0 {
			m <<= 1
			e--
		}
		m &= 0x03FF
		return math.Float32frombits(sign | uint32(int32(127)+e)<<23 | m<<13)
	case 0x1F:
		if frac == 0 {
			return math.Float32frombits(sign | f32ExpMask)
		}
		return math.Float32frombits(sign | f32ExpMask | (frac << 13))
	default:
		return math.Float32frombits(sign | uint32(int32(exp)-15+127)<<23 | frac<<13)
	}
}

// ToFloat64 converts a binary16 bit-pattern to float64. The conversion is exact.
func ToFloat64(h Bits) float64 {
	return float64(ToFloat32(h))
}

// FromFloat64 converts a float64 value into a binary16 bit-pattern.
//
// Rounding mode: round-to-nearest, ties-to-even. Magnitudes above the
// binary16 range become infinities and tiny magnitudes flush to zero.
func FromFloat64(f float64) Bits {
	bits := math.Float64bits(f)
	sign := Bits(bits>>48) & signMask
	exp := int64((bits & f64ExpMask) >> f64FracBits)
	frac := bits & f64FracMask

	if exp == 0x7FF {
		if frac == 0 {
			return sign | expMask
		}
		// Keep part of the payload, forced quiet and non-zero.
		payload := Bits(frac >> fracShift)
		if payload == 0 {
			payload = 1
		}
		payload |= 0x0200
		return sign | expMask | (payload & fracMask)
	}

	// Zero, and float64 subnormals, which are far below binary16 range.
	if exp == 0 {
		return sign
	}

	e16 := exp - 1023 + 15
	if e16 >= 0x1F {
		return sign | expMask
	}

	if e16 <= 0 {
		if e16 < -10 {
			return sign
		}
		mant := frac | 1<<f64FracBits
		shift := uint64(1-e16) + fracShift
		m := mant >> shift
		rem := mant & (1<<shift - 1)
		half := uint64(1) << (shift - 1)
		if rem > half || (rem == half && m&1 == 1) {
			m++
		}
		// A carry out of the subnormal range lands on the smallest normal.
		return sign | Bits(m)
	}

	m := frac >> fracShift
	rem := frac & (1<<fracShift - 1)
	const half = uint64(1) << (fracShift - 1)
	if rem > half || (rem == half && m&1 == 1) {
		m++
		if m == 0x0400 {
			m = 0
			e16++
			if e16 >= 0x1F {
				return sign | expMask
			}
		}
	}
	return sign | Bits(uint64(e16)<<10) | Bits(m)
}
