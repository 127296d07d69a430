package nvec

import (
	"bytes"
	"encoding/json"
)

var (
	_ json.Marshaler   = Vector{}
	_ json.Unmarshaler = (*Vector)(nil)
)

// MarshalJSON encodes the components as a JSON array of numbers.
// NaN and infinite components cannot be represented and fail.
func (v Vector) MarshalJSON() ([]byte, error) {
	if len(v.components) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(v.components)
}

// UnmarshalJSON decodes a JSON array of numbers. Non-numeric elements are a
// *TypeError. JSON null leaves the receiver unchanged.
func (v *Vector) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var elems []any
	if err := dec.Decode(&elems); err != nil {
		return err
	}
	dv, err := FromAny(elems)
	if err != nil {
		return err
	}
	*v = dv
	return nil
}
