// Package codec centralizes vector encoding.
//
// Every codec has a stable name so that encoded bytes can be paired with the
// codec that produced them. Changing the codec used for stored bytes is a
// breaking change: bytes written by one codec do not decode with another.
package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/nvec"
)

var (
	// ErrUnknownCodec is returned by Lookup for names without a codec.
	ErrUnknownCodec = errors.New("codec: unknown codec")
	// ErrCorruptFrame indicates a compressed frame that fails validation.
	ErrCorruptFrame = errors.New("codec: corrupt frame")
)

// Codec encodes/decodes vectors.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v nvec.Vector) ([]byte, error)
	Unmarshal(data []byte) (nvec.Vector, error)
	Name() string
}

// Default is the codec used when none is configured.
var Default Codec = Binary{}

// ByName returns a built-in codec by its stable name.
//
// Plain names are "binary", "json" and "go-json". A compressed codec is named
// "<inner>+<algorithm>", e.g. "binary+zstd" or "json+lz4".
func ByName(name string) (Codec, bool) {
	if inner, alg, ok := strings.Cut(name, "+"); ok {
		c, ok := ByName(inner)
		if !ok {
			return nil, false
		}
		if _, nested := c.(Compressed); nested {
			return nil, false
		}
		a, ok := ParseAlgorithm(alg)
		if !ok {
			return nil, false
		}
		return Compressed{Inner: c, Algorithm: a}, true
	}

	switch name {
	case "binary":
		return Binary{}, true
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Lookup is ByName with an error for unknown names.
func Lookup(name string) (Codec, error) {
	c, ok := ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
	return c, nil
}

// MustMarshal is a helper for tests and examples.
func MustMarshal(c Codec, v nvec.Vector) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}

// Binary is the tagged binary encoding produced by nvec.Vector.Bytes.
type Binary struct{}

// Marshal encodes v with the float64 typecode.
func (Binary) Marshal(v nvec.Vector) ([]byte, error) { return v.MarshalBinary() }

// Unmarshal decodes any supported typecode.
func (Binary) Unmarshal(data []byte) (nvec.Vector, error) { return nvec.FromBytes(data) }

// Name returns the unique name of the codec ("binary").
func (Binary) Name() string { return "binary" }
