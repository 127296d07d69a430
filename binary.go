package nvec

import (
	"encoding"
	"encoding/binary"
	"math"

	"github.com/hupe1980/nvec/internal/f16"
)

// Typecode is the leading byte of the binary encoding. It names the
// element format of the bytes that follow.
type Typecode byte

const (
	// TypecodeFloat64 marks IEEE-754 binary64 elements (8 bytes each).
	// Bytes always uses it.
	TypecodeFloat64 Typecode = 'd'
	// TypecodeFloat32 marks IEEE-754 binary32 elements (4 bytes each).
	TypecodeFloat32 Typecode = 'f'
	// TypecodeFloat16 marks IEEE-754 binary16 elements (2 bytes each).
	TypecodeFloat16 Typecode = 'e'
)

// Width returns the element size in bytes, or 0 for an unknown typecode.
func (tc Typecode) Width() int {
	switch tc {
	case TypecodeFloat64:
		return 8
	case TypecodeFloat32:
		return 4
	case TypecodeFloat16:
		return 2
	default:
		return 0
	}
}

var (
	_ encoding.BinaryMarshaler   = Vector{}
	_ encoding.BinaryAppender    = Vector{}
	_ encoding.BinaryUnmarshaler = (*Vector)(nil)
)

// Bytes returns the binary encoding: TypecodeFloat64 followed by each
// component as a little-endian IEEE-754 binary64.
func (v Vector) Bytes() []byte {
	return v.appendAs(make([]byte, 0, 1+8*len(v.components)), TypecodeFloat64)
}

// MarshalBinary implements encoding.BinaryMarshaler. It never fails.
func (v Vector) MarshalBinary() ([]byte, error) {
	return v.Bytes(), nil
}

// AppendBinary implements encoding.BinaryAppender.
func (v Vector) AppendBinary(b []byte) ([]byte, error) {
	return v.appendAs(b, TypecodeFloat64), nil
}

// BytesAs encodes the components with a narrower element format.
// Values that do not fit the target precision are rounded.
func (v Vector) BytesAs(tc Typecode) ([]byte, error) {
	w := tc.Width()
	if w == 0 {
		return nil, formatErrorf("unknown typecode %q", byte(tc))
	}
	return v.appendAs(make([]byte, 0, 1+w*len(v.components)), tc), nil
}

func (v Vector) appendAs(b []byte, tc Typecode) []byte {
	b = append(b, byte(tc))
	for _, c := range v.components {
		switch tc {
		case TypecodeFloat64:
			b = binary.LittleEndian.AppendUint64(b, math.Float64bits(c))
		case TypecodeFloat32:
			b = binary.LittleEndian.AppendUint32(b, math.Float32bits(float32(c)))
		case TypecodeFloat16:
			b = binary.LittleEndian.AppendUint16(b, uint16(f16.FromFloat64(c)))
		}
	}
	return b
}

// FromBytes decodes a Vector from its binary encoding. The first byte
// selects the element format; the rest must be a whole number of elements.
func FromBytes(b []byte) (Vector, error) {
	if len(b) == 0 {
		return Vector{}, formatErrorf("missing typecode")
	}
	tc := Typecode(b[0])
	w := tc.Width()
	if w == 0 {
		return Vector{}, formatErrorf("unknown typecode %q", b[0])
	}
	body := b[1:]
	if len(body)%w != 0 {
		return Vector{}, formatErrorf("payload of %d bytes is not a multiple of %d for typecode %q", len(body), w, b[0])
	}

	cs := make([]float64, len(body)/w)
	for i := range cs {
		elem := body[i*w : (i+1)*w]
		switch tc {
		case TypecodeFloat64:
			cs[i] = math.Float64frombits(binary.LittleEndian.Uint64(elem))
		case TypecodeFloat32:
			cs[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(elem)))
		case TypecodeFloat16:
			cs[i] = f16.ToFloat64(f16.Bits(binary.LittleEndian.Uint16(elem)))
		}
	}
	return Vector{components: cs}, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It replaces the
// receiver's components without touching any other copy of the vector.
func (v *Vector) UnmarshalBinary(data []byte) error {
	dec, err := FromBytes(data)
	if err != nil {
		return err
	}
	*v = dec
	return nil
}
