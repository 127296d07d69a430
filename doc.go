// Package nvec provides an immutable N-dimensional vector of float64
// components.
//
// A Vector behaves like a read-only sequence: it has a length, supports
// indexing with negative indices, slicing that yields another Vector, and
// iteration. It compares structurally, hashes consistently with equality,
// formats in Cartesian or hyperspherical form and encodes to a compact
// tagged binary format.
//
// # Quick Start
//
//	v := nvec.New(3, 4)
//	v.Magnitude()           // 5
//	fmt.Println(v)          // (3.0, 4.0)
//	fmt.Printf("%.2f\n", v) // (3.00, 4.00)
//
//	s, _ := v.FormatSpec(".3eh") // <5.000e+00, 9.273e-01>
//
// # Binary Format
//
// Bytes produces one typecode byte followed by the components:
//
//	[0x64 'd'][float64 little-endian] x Len()
//
// FromBytes also accepts the narrower typecodes 'f' (float32) and 'e'
// (float16) produced by BytesAs.
//
// # Attributes
//
// The first four components are available as X, Y, Z and T. The dynamic
// Attr/WithAttr pair mirrors attribute access: single lowercase letters are
// reserved, and WithAttr returns a modified copy rather than changing the
// receiver.
//
// # Errors
//
// Errors are typed (*TypeError, *IndexError, *AttributeError, *FormatError)
// and match the kinds ErrType, ErrIndex, ErrAttribute and ErrFormat with
// errors.Is.
//
// # Hashing
//
// Hash XORs per-component hashes. The combination ignores order, so
// permutations of the same components collide.
package nvec
