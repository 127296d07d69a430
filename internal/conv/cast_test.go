//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntToUint32(t *testing.T) {
	tests := []struct {
		name    string
		in      int
		want    uint32
		wantErr bool
	}{
		{"zero", 0, 0, false},
		{"positive", 123, 123, false},
		{"max uint32", math.MaxUint32, math.MaxUint32, false},
		{"negative", -1, 0, true},
		{"too large", math.MaxUint32 + 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IntToUint32(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrOverflow)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUint32ToInt(t *testing.T) {
	got, err := Uint32ToInt(math.MaxUint32)
	// On 64-bit (amd64/arm64), MaxUint32 fits in int.
	assert.NoError(t, err)
	assert.Equal(t, int(math.MaxUint32), got)

	got, err = Uint32ToInt(0)
	assert.NoError(t, err)
	assert.Equal(t, 0, got)
}
