package store

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Jadiker/prototype-database/pkg/log"
)

// Record describes one save record on disk.
type Record struct {
	// Path is the record's path under the store directory.
	Path string

	// Size is the record size in bytes.
	Size int64

	// SavedAt is the record file's modification time.
	SavedAt time.Time
}

// Latest returns the record path the pointer file currently names, or
// "" when no database has been saved yet.
func (s *Store[T]) Latest() (string, error) {
	return s.readPointer()
}

// History lists every save record under the store directory, oldest
// first. Save never deletes records, so absent an explicit Prune this
// is the full save history.
func (s *Store[T]) History() ([]Record, error) {
	entries, err := os.ReadDir(s.cfg.Dir)
	if err != nil {
		return nil, err
	}

	var records []Record
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasPrefix(name, s.cfg.RecordPrefix) || strings.HasSuffix(name, ".tmp") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, err
		}
		records = append(records, Record{
			Path:    filepath.Join(s.cfg.Dir, name),
			Size:    info.Size(),
			SavedAt: info.ModTime(),
		})
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].SavedAt.Equal(records[j].SavedAt) {
			return records[i].Path < records[j].Path
		}
		return records[i].SavedAt.Before(records[j].SavedAt)
	})

	return records, nil
}

// Prune removes the oldest save records until at most keep remain. The
// record the pointer file names is kept regardless of age. Save itself
// never deletes records; pruning is an explicit, caller-invoked trim.
// Returns the number of records removed.
func (s *Store[T]) Prune(keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}

	records, err := s.History()
	if err != nil {
		return 0, err
	}

	latest, err := s.Latest()
	if err != nil {
		return 0, err
	}
	if latest != "" {
		latest = filepath.Clean(latest)
	}

	excess := len(records) - keep
	removed := 0
	for _, r := range records {
		if removed >= excess {
			break
		}
		if latest != "" && filepath.Clean(r.Path) == latest {
			continue
		}
		if err := os.Remove(r.Path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return removed, err
		}
		s.logger.Info("pruned save record", log.String("record", r.Path))
		removed++
	}

	return removed, nil
}
