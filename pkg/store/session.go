package store

import "github.com/Jadiker/prototype-database/pkg/log"

// UpdateFromDisk loads the database, hands it to fn for mutation, and
// saves on every exit path, including when fn returns an error or
// panics. The unconditional load discards any unsaved resident value.
//
// fn's error propagates to the caller; the exit save still runs first,
// so a partially mutated value is persisted even on failure. Callers
// needing rollback must copy the value before mutating. A save failure
// is returned only when fn itself succeeded, and logged otherwise.
//
// When the load itself fails, fn never runs and nothing is saved.
func (s *Store[T]) UpdateFromDisk(fn func(*T) error) (err error) {
	if _, err = s.Load(); err != nil {
		return err
	}
	defer func() {
		err = s.exitSave(err)
	}()
	return fn(&s.value)
}

// Update hands the resident database to fn, loading it first when
// nothing is resident, and saves on every exit path like UpdateFromDisk.
// Unlike UpdateFromDisk it never discards unsaved resident state.
//
// When entry fails — the pointer file cannot be read, or it names an
// unusable record — the error is returned immediately and no save
// happens, since there is nothing meaningful to persist.
func (s *Store[T]) Update(fn func(*T) error) (err error) {
	if _, err = s.ExposeOrLoad(); err != nil {
		return err
	}
	defer func() {
		err = s.exitSave(err)
	}()
	return fn(&s.value)
}

// exitSave runs the end-of-session save. The session's own error wins;
// a save failure surfaces only when the session succeeded.
func (s *Store[T]) exitSave(sessionErr error) error {
	saveErr := s.Save()
	if saveErr == nil {
		return sessionErr
	}
	if sessionErr != nil {
		s.logger.Error("save on session exit failed", log.Err(saveErr))
		return sessionErr
	}
	return saveErr
}
