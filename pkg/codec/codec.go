package codec

import "io"

// Codec serializes database snapshots to save records and back.
// Implementations must round-trip arbitrary nested values produced by the
// caller's factory, so the encoding has to be self-describing.
type Codec interface {
	// Encode writes the full serialized form of v to w.
	Encode(w io.Writer, v interface{}) error

	// Decode reads a serialized snapshot from r into the value pointed
	// to by v.
	Decode(r io.Reader, v interface{}) error

	// Extension returns the filename extension for save records written
	// with this codec, including the leading dot.
	Extension() string
}
