package codec

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/nvec"
	"github.com/hupe1980/nvec/internal/conv"
	"github.com/hupe1980/nvec/internal/hash"
)

// Algorithm identifies the compression applied by Compressed.
type Algorithm uint8

const (
	// AlgorithmLZ4 is LZ4 block compression (fast).
	AlgorithmLZ4 Algorithm = 1
	// AlgorithmZstd is Zstandard compression (better ratio).
	AlgorithmZstd Algorithm = 2
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmLZ4:
		return "lz4"
	case AlgorithmZstd:
		return "zstd"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(a))
	}
}

// ParseAlgorithm returns the algorithm with the given name.
func ParseAlgorithm(name string) (Algorithm, bool) {
	switch name {
	case "lz4":
		return AlgorithmLZ4, true
	case "zstd":
		return AlgorithmZstd, true
	default:
		return 0, false
	}
}

// Frame layout:
//
//	[Algorithm uint8][RawSize uint32][StoredSize uint32][CRC32C uint32][Payload...]
//
// StoredSize == 0 means the payload is stored uncompressed because
// compression did not help. The checksum covers the uncompressed payload.
const frameHeaderSize = 13

// lz4MaxRatio bounds the LZ4 block expansion factor.
const lz4MaxRatio = 255

// maxRawSize bounds the decoded payload of a frame. It is also the zstd
// decoder memory limit.
const maxRawSize = 256 << 20

// Compressed wraps another codec and compresses its output.
// A nil Inner means Binary.
type Compressed struct {
	Inner     Codec
	Algorithm Algorithm
}

func (c Compressed) inner() Codec {
	if c.Inner == nil {
		return Binary{}
	}
	return c.Inner
}

// Name returns "<inner>+<algorithm>", e.g. "binary+zstd".
func (c Compressed) Name() string {
	return c.inner().Name() + "+" + c.Algorithm.String()
}

// Marshal encodes v with the inner codec and wraps the result in a frame.
func (c Compressed) Marshal(v nvec.Vector) ([]byte, error) {
	raw, err := c.inner().Marshal(v)
	if err != nil {
		return nil, err
	}
	return compressFrame(raw, c.Algorithm)
}

// Unmarshal validates the frame and decodes its payload with the inner codec.
func (c Compressed) Unmarshal(data []byte) (nvec.Vector, error) {
	raw, err := decompressFrame(data, c.Algorithm)
	if err != nil {
		return nvec.Vector{}, err
	}
	return c.inner().Unmarshal(raw)
}

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil,
		zstd.WithDecoderMaxMemory(maxRawSize),
		zstd.WithDecodeAllCapLimit(true),
	)
}

func compressFrame(raw []byte, alg Algorithm) ([]byte, error) {
	if len(raw) > maxRawSize {
		return nil, fmt.Errorf("codec: payload of %d bytes exceeds limit %d", len(raw), maxRawSize)
	}
	rawSize, err := conv.IntToUint32(len(raw))
	if err != nil {
		return nil, fmt.Errorf("codec: payload too large: %w", err)
	}

	var compressed []byte
	switch alg {
	case AlgorithmLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(raw)))
		n, err := lz4.CompressBlock(raw, buf, nil)
		if err != nil {
			return nil, fmt.Errorf("codec: lz4: %w", err)
		}
		compressed = buf[:n] // n == 0: incompressible
	case AlgorithmZstd:
		enc, err := getZstdEncoder()
		if err != nil {
			return nil, fmt.Errorf("codec: zstd: %w", err)
		}
		compressed = enc.EncodeAll(raw, nil)
		zstdEncoderPool.Put(enc)
	default:
		return nil, fmt.Errorf("codec: unsupported algorithm %v", alg)
	}

	payload := compressed
	storedSize := uint32(len(compressed))
	if len(compressed) == 0 || len(compressed) >= len(raw) {
		payload, storedSize = raw, 0
	}

	frame := make([]byte, frameHeaderSize, frameHeaderSize+len(payload))
	frame[0] = byte(alg)
	binary.LittleEndian.PutUint32(frame[1:], rawSize)
	binary.LittleEndian.PutUint32(frame[5:], storedSize)
	binary.LittleEndian.PutUint32(frame[9:], hash.CRC32C(raw))
	return append(frame, payload...), nil
}

func decompressFrame(frame []byte, alg Algorithm) ([]byte, error) {
	if len(frame) < frameHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrCorruptFrame, len(frame))
	}
	if got := Algorithm(frame[0]); got != alg {
		return nil, fmt.Errorf("%w: algorithm %v, expected %v", ErrCorruptFrame, got, alg)
	}
	rawSize, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(frame[1:]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptFrame, err)
	}
	storedSize, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(frame[5:]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptFrame, err)
	}
	if rawSize > maxRawSize {
		return nil, fmt.Errorf("%w: raw size %d exceeds limit %d", ErrCorruptFrame, rawSize, maxRawSize)
	}
	checksum := binary.LittleEndian.Uint32(frame[9:])
	payload := frame[frameHeaderSize:]

	var raw []byte
	switch {
	case storedSize == 0:
		if len(payload) != rawSize {
			return nil, fmt.Errorf("%w: stored payload is %d bytes, header says %d", ErrCorruptFrame, len(payload), rawSize)
		}
		raw = payload
	case len(payload) != storedSize:
		return nil, fmt.Errorf("%w: payload is %d bytes, header says %d", ErrCorruptFrame, len(payload), storedSize)
	case alg == AlgorithmLZ4:
		if rawSize > lz4MaxRatio*storedSize {
			return nil, fmt.Errorf("%w: raw size %d is impossible for %d lz4 bytes", ErrCorruptFrame, rawSize, storedSize)
		}
		raw = make([]byte, rawSize)
		n, err := lz4.UncompressBlock(payload, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: lz4: %w", ErrCorruptFrame, err)
		}
		if n != rawSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorruptFrame)
		}
	case alg == AlgorithmZstd:
		var hdr zstd.Header
		if err := hdr.Decode(payload); err != nil {
			return nil, fmt.Errorf("%w: zstd: %w", ErrCorruptFrame, err)
		}
		if hdr.HasFCS && hdr.FrameContentSize != uint64(rawSize) {
			return nil, fmt.Errorf("%w: zstd content size %d, header says %d", ErrCorruptFrame, hdr.FrameContentSize, rawSize)
		}
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, fmt.Errorf("codec: zstd: %w", err)
		}
		// The cap limit stops decoding once rawSize bytes are produced.
		raw, err = dec.DecodeAll(payload, make([]byte, 0, rawSize))
		zstdDecoderPool.Put(dec)
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %w", ErrCorruptFrame, err)
		}
		if len(raw) != rawSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorruptFrame)
		}
	default:
		return nil, fmt.Errorf("codec: unsupported algorithm %v", alg)
	}

	if err := hash.Verify(raw, checksum); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptFrame, err)
	}
	return raw, nil
}
