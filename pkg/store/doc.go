// Package store provides reloadable persistence for a single in-memory
// database value.
//
// A Store owns one value of a caller-defined type. Every save serializes
// the whole value to a new timestamped save record on disk; a single-line
// pointer file tracks the most recent record. Earlier records are never
// deleted by a save, so the directory accumulates an append-only history.
//
// # Usage
//
// Create a store over a directory with a factory for the empty database:
//
//	db, err := store.New(store.Config{Dir: "database"},
//	    func() map[string]any { return map[string]any{} })
//	if err != nil {
//	    return err
//	}
//
//	// Load the latest save (or the factory value on first run)
//	v, err := db.Load()
//	if err != nil {
//	    return err
//	}
//
//	v["wow"] = "haha"
//
//	if err := db.Save(); err != nil {
//	    return err
//	}
//
// # Sessions
//
// Update and UpdateFromDisk scope a load/mutate/save cycle and guarantee
// the save runs on every exit path, including error exits:
//
//	err := db.Update(func(v *map[string]any) error {
//	    (*v)["hi"] = "yay"
//	    return nil
//	})
//
// # First Run vs Corruption
//
// A missing or blank pointer file means no database exists yet and is not
// an error; Load returns the factory value. A pointer file that names a
// record which cannot be read or decoded fails with an error matching
// [ErrCorruptPointer] instead, because treating it as a fresh database
// would hide data loss.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package store
