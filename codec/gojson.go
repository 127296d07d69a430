package codec

import (
	"bytes"

	gojson "github.com/goccy/go-json"

	"github.com/hupe1980/nvec"
)

// GoJSON is a JSON codec backed by github.com/goccy/go-json.
//
// It encodes and decodes the component array itself rather than going
// through the vector's encoding/json methods. Its output is interchangeable
// with JSON.
type GoJSON struct{}

// Marshal encodes the vector to JSON.
func (g GoJSON) Marshal(v nvec.Vector) ([]byte, error) {
	return g.Append(nil, v)
}

// Unmarshal decodes a JSON array into a vector. Non-numeric elements are an
// nvec.ErrType error.
func (GoJSON) Unmarshal(data []byte) (nvec.Vector, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var elems []any
	if err := dec.Decode(&elems); err != nil {
		return nvec.Vector{}, err
	}
	return nvec.FromAny(elems)
}

// Name returns the unique name of the codec ("go-json").
func (GoJSON) Name() string { return "go-json" }

// Append encodes the vector to JSON and appends it to dst.
func (GoJSON) Append(dst []byte, v nvec.Vector) ([]byte, error) {
	if v.Len() == 0 {
		return append(dst, "[]"...), nil
	}
	b, err := gojson.Marshal(v.Components())
	if err != nil {
		return nil, err
	}
	return append(dst, b...), nil
}
