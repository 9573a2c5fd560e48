package codec

import (
	"encoding/gob"
	"io"
)

func init() {
	// Container types commonly produced by database factories. Basic
	// scalar types are pre-registered by encoding/gob itself.
	gob.Register(map[string]interface{}{})
	gob.Register([]interface{}{})
}

// Register records a concrete type for gob encoding. Callers that store
// their own types behind interface values must register them before the
// first save or load.
func Register(v interface{}) {
	gob.Register(v)
}

// GobCodec implements Codec using encoding/gob, a self-describing binary
// format with full type fidelity.
type GobCodec struct{}

// NewGobCodec creates a new gob codec.
func NewGobCodec() *GobCodec {
	return &GobCodec{}
}

// Encode writes v to w in gob format.
func (*GobCodec) Encode(w io.Writer, v interface{}) error {
	return gob.NewEncoder(w).Encode(v)
}

// Decode reads a gob stream from r into v.
func (*GobCodec) Decode(r io.Reader, v interface{}) error {
	return gob.NewDecoder(r).Decode(v)
}

// Extension returns ".gob".
func (*GobCodec) Extension() string {
	return ".gob"
}
