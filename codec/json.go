package codec

import (
	"encoding/json"

	"github.com/hupe1980/nvec"
)

// JSON is the standard-library JSON codec.
//
// Vectors encode as arrays of numbers. JSON has no NaN or infinity, so
// vectors holding them fail to marshal; use Binary for those.
type JSON struct{}

// Marshal encodes the vector to JSON.
func (JSON) Marshal(v nvec.Vector) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes a JSON array into a vector.
func (JSON) Unmarshal(data []byte) (nvec.Vector, error) {
	var v nvec.Vector
	err := json.Unmarshal(data, &v)
	return v, err
}

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }
