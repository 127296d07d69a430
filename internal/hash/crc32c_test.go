package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCRC32C(t *testing.T) {
	// Check value from RFC 3720, B.4.
	assert.Equal(t, uint32(0xE3069283), CRC32C([]byte("123456789")))
	assert.Equal(t, uint32(0), CRC32C(nil))
}

func TestVerify(t *testing.T) {
	data := []byte("vector payload")
	require.NoError(t, Verify(data, CRC32C(data)))

	err := Verify(data, CRC32C(data)^1)
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, CRC32C(data)^1, mismatch.Want)
	assert.Equal(t, CRC32C(data), mismatch.Got)
}
