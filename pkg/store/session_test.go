package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestUpdateFromDiskSavesOnError(t *testing.T) {
	dir := t.TempDir()
	s := newMapStore(t, dir)

	boom := errors.New("boom")
	err := s.UpdateFromDisk(func(v *map[string]any) error {
		(*v)["wow"] = "haha"
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected session error to propagate, got %v", err)
	}

	// The mutation must have been persisted despite the error.
	fresh := newMapStore(t, dir)
	v, lerr := fresh.Load()
	if lerr != nil {
		t.Fatalf("Load returned error: %v", lerr)
	}
	if v["wow"] != "haha" {
		t.Fatalf("expected mutation saved, got %#v", v)
	}
}

func TestUpdateFromDiskSavesOnPanic(t *testing.T) {
	dir := t.TempDir()
	s := newMapStore(t, dir)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic to propagate")
			}
		}()
		_ = s.UpdateFromDisk(func(v *map[string]any) error {
			(*v)["wow"] = "haha"
			panic("boom")
		})
	}()

	fresh := newMapStore(t, dir)
	v, err := fresh.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if v["wow"] != "haha" {
		t.Fatalf("expected mutation saved, got %#v", v)
	}
}

func TestUpdateFromDiskDiscardsResidentState(t *testing.T) {
	dir := t.TempDir()
	s := newMapStore(t, dir)

	if err := s.SaveValue(map[string]any{"saved": true}); err != nil {
		t.Fatalf("SaveValue returned error: %v", err)
	}

	// Unsaved resident mutation.
	v, err := s.Expose()
	if err != nil {
		t.Fatalf("Expose returned error: %v", err)
	}
	v["unsaved"] = true

	err = s.UpdateFromDisk(func(v *map[string]any) error {
		if _, ok := (*v)["unsaved"]; ok {
			t.Fatalf("expected unconditional load to discard unsaved state")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("UpdateFromDisk returned error: %v", err)
	}
}

func TestUpdateKeepsResidentState(t *testing.T) {
	dir := t.TempDir()
	s := newMapStore(t, dir)

	if err := s.SaveValue(map[string]any{}); err != nil {
		t.Fatalf("SaveValue returned error: %v", err)
	}

	v, err := s.Expose()
	if err != nil {
		t.Fatalf("Expose returned error: %v", err)
	}
	v["unsaved"] = true

	err = s.Update(func(v *map[string]any) error {
		if _, ok := (*v)["unsaved"]; !ok {
			t.Fatalf("expected resident state to survive Update entry")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
}

func TestUpdateSkipsSaveWhenEntryFails(t *testing.T) {
	dir := t.TempDir()
	s := newMapStore(t, dir)

	if err := os.WriteFile(s.PointerPath(), []byte(filepath.Join(dir, "db_sv_gone.gob")), 0o600); err != nil {
		t.Fatalf("write pointer: %v", err)
	}

	called := false
	err := s.Update(func(v *map[string]any) error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrCorruptPointer) {
		t.Fatalf("expected ErrCorruptPointer, got %v", err)
	}
	if called {
		t.Fatalf("expected session body to be skipped on entry failure")
	}

	records, herr := s.History()
	if herr != nil {
		t.Fatalf("History returned error: %v", herr)
	}
	if len(records) != 0 {
		t.Fatalf("expected no save on entry failure, got %d records", len(records))
	}
}

func TestUpdateFirstRunCreatesAndSaves(t *testing.T) {
	dir := t.TempDir()
	s := newMapStore(t, dir)

	err := s.Update(func(v *map[string]any) error {
		(*v)["hi"] = "yay"
		return nil
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	fresh := newMapStore(t, dir)
	v, err := fresh.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if v["hi"] != "yay" {
		t.Fatalf("expected first-run session to persist, got %#v", v)
	}
}
