// Package hash provides the checksum used by compressed vector frames.
//
// Frames carry a CRC32-Castagnoli (CRC32C) checksum of their uncompressed
// payload. Go's hash/crc32 uses hardware instructions for this polynomial
// where available (SSE4.2 on x86-64, the CRC extension on ARM64).
package hash

import (
	"fmt"
	"hash/crc32"
)

// crc32cTable is computed once for the Castagnoli polynomial.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// MismatchError reports a checksum that does not match its payload.
type MismatchError struct {
	Want uint32
	Got  uint32
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: want %08x, got %08x", e.Want, e.Got)
}

// Verify checks data against the expected CRC32C checksum.
func Verify(data []byte, want uint32) error {
	if got := CRC32C(data); got != want {
		return &MismatchError{Want: want, Got: got}
	}
	return nil
}
