// Package codec provides serialization of database snapshots.
//
// A Codec turns the in-memory database value into bytes for a save record
// and back. The value shape is caller-defined and may be an arbitrarily
// nested container graph, so codecs must be self-describing.
//
// # Usage
//
// The default codec is gob, which round-trips nested maps, slices and
// structs with full type fidelity:
//
//	c := codec.NewGobCodec()
//
// For human-readable save records use the JSON codec instead:
//
//	c := codec.NewJSONCodec()
//
// Note that JSON loses some type information: numbers stored behind
// interface values decode as float64.
//
// # Custom Types
//
// Gob requires concrete types stored inside interface values to be
// registered. The common container types are registered by this package;
// callers persisting their own types behind interfaces should call
// [Register] once at startup.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package codec
