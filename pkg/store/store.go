package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Jadiker/prototype-database/pkg/codec"
	"github.com/Jadiker/prototype-database/pkg/log"
)

const (
	// recordTimeFormat stamps save records at one-second resolution,
	// e.g. db_sv_14_03_09_Aug_24_2026.gob.
	recordTimeFormat = "15_04_05_Jan_02_2006"

	// fallbackStamp replaces an unusable timestamp so a save is never
	// blocked by a broken clock or formatter.
	fallbackStamp = "UnknownTime"
)

// Factory produces the empty database used when no prior save exists.
type Factory[T any] func() T

// Config holds the configuration for a Store.
// Use SetDefaults to fill in zero-valued fields.
type Config struct {
	// Dir is the directory holding save records and the pointer file.
	// Created on construction if missing.
	Dir string

	// PointerFile is the name of the single-line file under Dir that
	// tracks the most recent save record.
	PointerFile string

	// RecordPrefix is prepended to save record filenames.
	RecordPrefix string
}

// SetDefaults fills in zero-valued fields with default values.
func (c *Config) SetDefaults() {
	if c.Dir == "" {
		c.Dir = "database"
	}
	if c.PointerFile == "" {
		c.PointerFile = "_most_recent_save.txt"
	}
	if c.RecordPrefix == "" {
		c.RecordPrefix = "db_sv_"
	}
}

// Store owns a single in-memory database value and persists full
// snapshots of it to timestamped save records under its directory, with
// a pointer file naming the most recent record.
//
// A Store is not safe for concurrent use. It owns in-process access to
// its value; there is no inter-process locking on the directory, so
// separate processes over the same directory race (last save wins on
// the pointer file).
type Store[T any] struct {
	cfg     Config
	factory Factory[T]
	codec   codec.Codec
	logger  log.Logger
	now     func() time.Time

	value    T
	resident bool
}

// New creates a Store over cfg.Dir, creating the directory if it does
// not exist. No pointer-file I/O happens until Load or Save.
func New[T any](cfg Config, factory Factory[T], opts ...Option) (*Store[T], error) {
	cfg.SetDefaults()
	if factory == nil {
		return nil, fmt.Errorf("store: nil factory")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if _, err := os.Stat(cfg.Dir); os.IsNotExist(err) {
		if err := os.MkdirAll(cfg.Dir, 0o700); err != nil {
			return nil, fmt.Errorf("store: create directory %s: %w", cfg.Dir, err)
		}
		o.logger.Info("save directory created", log.String("dir", cfg.Dir))
	}

	return &Store[T]{
		cfg:     cfg,
		factory: factory,
		codec:   o.codec,
		logger:  o.logger,
		now:     o.now,
	}, nil
}

// PointerPath returns the full path of the pointer file.
func (s *Store[T]) PointerPath() string {
	return filepath.Join(s.cfg.Dir, s.cfg.PointerFile)
}

// readPointer resolves the pointer file. An empty path with nil error
// means no database has been saved yet: the pointer file is missing or
// its first line is blank.
func (s *Store[T]) readPointer() (string, error) {
	b, err := os.ReadFile(s.PointerPath())
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	line, _, _ := strings.Cut(string(b), "\n")
	return strings.TrimSpace(line), nil
}

// Load reads the pointer file and replaces the in-memory value.
//
// A missing or blank pointer file is not an error: it means no database
// has been saved yet, and the factory value becomes resident. A pointer
// that names a record which cannot be opened or decoded fails with an
// error matching ErrCorruptPointer; silently substituting a blank
// database there would hide data loss.
//
// On success Load overwrites any unsaved resident value. Use
// ExposeOrLoad to avoid discarding unsaved changes.
func (s *Store[T]) Load() (T, error) {
	var zero T

	record, err := s.readPointer()
	if err != nil {
		return zero, fmt.Errorf("store: read pointer file: %w", err)
	}

	if record == "" {
		s.value = s.factory()
		s.resident = true
		s.logger.Info("no previous save found, blank database created", log.String("dir", s.cfg.Dir))
		return s.value, nil
	}

	f, err := os.Open(record)
	if err != nil {
		return zero, &PointerError{Pointer: s.PointerPath(), Record: record, Err: err}
	}
	defer f.Close()

	var v T
	if err := s.codec.Decode(f, &v); err != nil {
		return zero, &PointerError{Pointer: s.PointerPath(), Record: record, Err: err}
	}

	s.value = v
	s.resident = true
	s.logger.Info("database loaded", log.String("record", record))
	return s.value, nil
}

// Expose returns the resident value without touching disk.
// It fails with ErrNoDatabase when nothing has been loaded or saved yet.
func (s *Store[T]) Expose() (T, error) {
	if !s.resident {
		var zero T
		return zero, ErrNoDatabase
	}
	return s.value, nil
}

// ExposeOrLoad returns the resident value, loading from disk only when
// nothing is resident. Unlike Load it never discards unsaved changes,
// so it is the accessor to reach for in normal use.
func (s *Store[T]) ExposeOrLoad() (T, error) {
	if s.resident {
		return s.value, nil
	}
	return s.Load()
}

// SaveValue replaces the resident value with v and persists it.
// Last writer wins; there is no merging.
func (s *Store[T]) SaveValue(v T) error {
	s.value = v
	s.resident = true
	return s.Save()
}

// Save writes a new save record holding the full resident value, then
// atomically overwrites the pointer file to name it. Earlier records
// stay on disk untouched.
func (s *Store[T]) Save() error {
	if !s.resident {
		return ErrNoDatabase
	}

	record, err := s.newRecordPath()
	if err != nil {
		return fmt.Errorf("store: pick record path: %w", err)
	}

	if err := s.writeRecord(record); err != nil {
		return fmt.Errorf("store: write record: %w", err)
	}
	if err := s.writePointer(record); err != nil {
		return fmt.Errorf("store: write pointer file: %w", err)
	}

	s.logger.Info("database saved", log.String("record", record))
	return nil
}

// newRecordPath picks the path for the next save record. Stamps have
// one-second resolution, so an already-taken path gets a numeric suffix
// to keep every save distinct.
func (s *Store[T]) newRecordPath() (string, error) {
	stamp := s.now().Format(recordTimeFormat)
	if stamp == "" {
		s.logger.Warn("timestamp formatting failed, using fallback stamp")
		stamp = fallbackStamp
	}

	base := filepath.Join(s.cfg.Dir, s.cfg.RecordPrefix+stamp)
	ext := s.codec.Extension()

	path := base + ext
	for n := 2; ; n++ {
		_, err := os.Stat(path)
		if os.IsNotExist(err) {
			return path, nil
		}
		if err != nil {
			return "", err
		}
		path = fmt.Sprintf("%s_%d%s", base, n, ext)
	}
}

// writeRecord serializes the resident value to path.
// Uses atomic write (write to temp file, then rename) to prevent corruption.
func (s *Store[T]) writeRecord(path string) error {
	// Ensure directory exists
	if err := os.MkdirAll(s.cfg.Dir, 0o700); err != nil {
		return err
	}

	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := s.codec.Encode(f, s.value); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}

// writePointer atomically overwrites the pointer file with the record path.
func (s *Store[T]) writePointer(record string) error {
	tmp := s.PointerPath() + ".tmp"

	if err := os.WriteFile(tmp, []byte(record), 0o600); err != nil {
		return err
	}

	return os.Rename(tmp, s.PointerPath())
}
