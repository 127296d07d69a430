package nvec

import (
	"encoding"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/nvec/testutil"
)

func sameBits(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, math.Float64bits(want[i]), math.Float64bits(got[i]), "component %d", i)
	}
}

func TestBytes_Layout(t *testing.T) {
	b := New(1, 2).Bytes()
	require.Len(t, b, 17)
	assert.Equal(t, byte(0x64), b[0])
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0xF0, 0x3F}, b[1:9])
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0x40}, b[9:17])

	assert.Equal(t, []byte{'d'}, New().Bytes())
}

func TestBytes_RoundTrip(t *testing.T) {
	rng := testutil.NewRNG(42)

	for _, dim := range rng.Dimensions(30, 100) {
		want := rng.SpecialComponents(dim)
		b := New(want...).Bytes()
		assert.Len(t, b, 1+8*dim)

		got, err := FromBytes(b)
		require.NoError(t, err)
		sameBits(t, want, got.Components())
	}
}

func TestMarshalBinary(t *testing.T) {
	var (
		_ encoding.BinaryMarshaler   = New()
		_ encoding.BinaryUnmarshaler = &Vector{}
	)

	v := New(3, 4)
	b, err := v.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, v.Bytes(), b)

	prefix := []byte("hdr")
	out, err := v.AppendBinary(prefix)
	require.NoError(t, err)
	assert.Equal(t, "hdr", string(out[:3]))
	assert.Equal(t, v.Bytes(), out[3:])

	var dec Vector
	require.NoError(t, dec.UnmarshalBinary(b))
	assert.True(t, v.Equal(dec))

	// A failed decode leaves the receiver as it was.
	assert.Error(t, dec.UnmarshalBinary([]byte{'d', 1}))
	assert.True(t, v.Equal(dec))
}

func TestFromBytes_Errors(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
		msg  string
	}{
		{"nil", nil, "missing typecode"},
		{"empty", []byte{}, "missing typecode"},
		{"unknown typecode", []byte{'x', 0, 0}, "unknown typecode 'x'"},
		{"short element", []byte{'d', 1, 2, 3}, "payload of 3 bytes is not a multiple of 8 for typecode 'd'"},
		{"short float32", []byte{'f', 1, 2}, "payload of 2 bytes is not a multiple of 4 for typecode 'f'"},
		{"odd float16", []byte{'e', 1}, "payload of 1 bytes is not a multiple of 2 for typecode 'e'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromBytes(tt.b)
			assert.ErrorIs(t, err, ErrFormat)
			assert.EqualError(t, err, tt.msg)
		})
	}
}

func TestBytesAs(t *testing.T) {
	t.Run("float32", func(t *testing.T) {
		v := New(1.5, -2, 0.25)
		b, err := v.BytesAs(TypecodeFloat32)
		require.NoError(t, err)
		require.Len(t, b, 1+4*3)
		assert.Equal(t, byte('f'), b[0])

		got, err := FromBytes(b)
		require.NoError(t, err)
		assert.True(t, v.Equal(got))
	})

	t.Run("float16", func(t *testing.T) {
		v := New(1.5, -2, 65504, math.Inf(-1))
		b, err := v.BytesAs(TypecodeFloat16)
		require.NoError(t, err)
		require.Len(t, b, 1+2*4)
		assert.Equal(t, byte('e'), b[0])

		got, err := FromBytes(b)
		require.NoError(t, err)
		assert.True(t, v.Equal(got))
	})

	t.Run("float16 rounds", func(t *testing.T) {
		b, err := New(0.1).BytesAs(TypecodeFloat16)
		require.NoError(t, err)

		got, err := FromBytes(b)
		require.NoError(t, err)
		c, _ := got.At(0)
		assert.InDelta(t, 0.1, c, 1e-4)
		assert.NotEqual(t, 0.1, c)
	})

	t.Run("float64", func(t *testing.T) {
		b, err := New(1, 2).BytesAs(TypecodeFloat64)
		require.NoError(t, err)
		assert.Equal(t, New(1, 2).Bytes(), b)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := New(1).BytesAs(Typecode('q'))
		assert.ErrorIs(t, err, ErrFormat)
	})
}

func TestTypecodeWidth(t *testing.T) {
	assert.Equal(t, 8, TypecodeFloat64.Width())
	assert.Equal(t, 4, TypecodeFloat32.Width())
	assert.Equal(t, 2, TypecodeFloat16.Width())
	assert.Equal(t, 0, Typecode(0).Width())
}

func BenchmarkBytes(b *testing.B) {
	v := New(testutil.NewRNG(1).UniformComponents(768)...)
	b.ReportAllocs()
	for b.Loop() {
		_ = v.Bytes()
	}
}

func BenchmarkFromBytes(b *testing.B) {
	data := New(testutil.NewRNG(1).UniformComponents(768)...).Bytes()
	b.ReportAllocs()
	for b.Loop() {
		_, _ = FromBytes(data)
	}
}
