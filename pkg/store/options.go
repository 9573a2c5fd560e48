package store

import (
	"time"

	"github.com/Jadiker/prototype-database/pkg/codec"
	"github.com/Jadiker/prototype-database/pkg/log"
)

// Option configures optional behavior of a Store.
type Option func(*options)

// options holds the optional configuration for a Store instance.
type options struct {
	codec  codec.Codec
	logger log.Logger
	now    func() time.Time
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() options {
	return options{
		codec:  codec.NewGobCodec(),
		logger: log.NewNoopLogger(),
		now:    time.Now,
	}
}

// WithCodec sets the codec used to serialize save records.
// If not provided, the gob codec is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock sets the time source used to stamp save records.
// Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}
