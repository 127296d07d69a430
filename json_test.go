package nvec

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON(t *testing.T) {
	tests := []struct {
		v    Vector
		want string
	}{
		{New(1, 2.5), "[1,2.5]"},
		{New(), "[]"},
		{Vector{}, "[]"},
		{New(-0.125, 1e21), "[-0.125,1e+21]"},
	}

	for _, tt := range tests {
		b, err := json.Marshal(tt.v)
		require.NoError(t, err)
		assert.JSONEq(t, tt.want, string(b))
	}

	for _, bad := range []float64{math.NaN(), math.Inf(1)} {
		_, err := json.Marshal(New(1, bad))
		assert.Error(t, err)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	t.Run("numbers", func(t *testing.T) {
		var v Vector
		require.NoError(t, json.Unmarshal([]byte(`[1, 2.5, -3e2]`), &v))
		assert.True(t, New(1, 2.5, -300).Equal(v))
	})

	t.Run("in struct", func(t *testing.T) {
		var p struct {
			Pos Vector `json:"pos"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"pos":[3,4]}`), &p))
		assert.Equal(t, 5.0, p.Pos.Magnitude())
	})

	t.Run("null is a no-op", func(t *testing.T) {
		v := New(1)
		require.NoError(t, v.UnmarshalJSON([]byte(" null ")))
		assert.True(t, New(1).Equal(v))
	})

	t.Run("non-numeric element", func(t *testing.T) {
		v := New(7)
		err := json.Unmarshal([]byte(`[1, "2"]`), &v)
		assert.ErrorIs(t, err, ErrType)
		assert.True(t, New(7).Equal(v))
	})

	t.Run("not an array", func(t *testing.T) {
		var v Vector
		err := json.Unmarshal([]byte(`{"x":1}`), &v)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrType)
	})

	t.Run("round trip", func(t *testing.T) {
		want := New(0.1, -2, 1.0/3, 1e-300)
		b, err := json.Marshal(want)
		require.NoError(t, err)

		var got Vector
		require.NoError(t, json.Unmarshal(b, &got))
		assert.True(t, want.Equal(got))
	})
}
