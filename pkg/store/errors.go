package store

import (
	"errors"
	"fmt"
)

// Domain errors returned by the public API. These can be checked with errors.Is.
var (
	// ErrNoDatabase is returned when an operation needs a resident value
	// and none has been loaded or saved yet in this session.
	ErrNoDatabase = errors.New("store: no database loaded")

	// ErrCorruptPointer matches errors returned when the pointer file
	// names a save record that cannot be found or decoded.
	ErrCorruptPointer = errors.New("store: corrupt pointer")
)

// PointerError reports a pointer file that names an unusable save record.
// This is distinct from a missing pointer file, which just means no
// database has been saved yet. It matches ErrCorruptPointer under
// errors.Is and wraps the underlying cause.
type PointerError struct {
	// Pointer is the path of the pointer file.
	Pointer string

	// Record is the record path the pointer named.
	Record string

	// Err is the underlying cause.
	Err error
}

func (e *PointerError) Error() string {
	return fmt.Sprintf("store: pointer file %s names unusable record %s: %v", e.Pointer, e.Record, e.Err)
}

// Unwrap returns the underlying cause.
func (e *PointerError) Unwrap() error { return e.Err }

// Is reports whether target is ErrCorruptPointer.
func (e *PointerError) Is(target error) bool { return target == ErrCorruptPointer }
