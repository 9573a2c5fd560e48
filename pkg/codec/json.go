package codec

import (
	"io"

	"github.com/goccy/go-json"
)

// JSONCodec implements Codec using JSON. Save records are human-readable
// at the cost of type fidelity: numbers decoded into interface values
// come back as float64.
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Encode writes v to w as indented JSON.
func (*JSONCodec) Encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Decode reads a JSON document from r into v.
func (*JSONCodec) Decode(r io.Reader, v interface{}) error {
	return json.NewDecoder(r).Decode(v)
}

// Extension returns ".json".
func (*JSONCodec) Extension() string {
	return ".json"
}
