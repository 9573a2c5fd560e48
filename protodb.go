// Package protodb provides a reloadable single-value database persisted
// to timestamped save records on disk.
//
// Example usage:
//
//	db, err := protodb.New(protodb.Config{Dir: "database"},
//	    func() map[string]any { return map[string]any{} })
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v, err := db.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v["wow"] = "haha"
//	if err := db.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// The full API lives in the sub-packages: pkg/store for the Store,
// pkg/codec for record serialization, and pkg/log for the logging
// abstraction. This package re-exports the common surface for
// convenient access.
package protodb

import (
	"time"

	"github.com/Jadiker/prototype-database/pkg/codec"
	"github.com/Jadiker/prototype-database/pkg/log"
	"github.com/Jadiker/prototype-database/pkg/store"
)

// Config holds the configuration for a Store.
// Zero-valued fields get defaults via SetDefaults.
type Config = store.Config

// Option configures optional behavior of a Store.
type Option = store.Option

// Record describes one save record on disk.
type Record = store.Record

// Codec serializes database snapshots to save records and back.
type Codec = codec.Codec

// Logger is the structured logging interface from pkg/log.
type Logger = log.Logger

// Domain errors, checkable with errors.Is.
var (
	// ErrNoDatabase is returned when an operation needs a resident value
	// and none has been loaded or saved yet.
	ErrNoDatabase = store.ErrNoDatabase

	// ErrCorruptPointer matches errors returned when the pointer file
	// names a save record that cannot be found or decoded.
	ErrCorruptPointer = store.ErrCorruptPointer
)

// New creates a Store over cfg.Dir with the given default-value factory.
func New[T any](cfg Config, factory store.Factory[T], opts ...Option) (*store.Store[T], error) {
	return store.New(cfg, factory, opts...)
}

// WithCodec sets the codec used to serialize save records.
func WithCodec(c Codec) Option {
	return store.WithCodec(c)
}

// WithLogger sets a custom logger for structured logging.
func WithLogger(logger Logger) Option {
	return store.WithLogger(logger)
}

// WithClock sets the time source used to stamp save records.
func WithClock(now func() time.Time) Option {
	return store.WithClock(now)
}
