package store

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Jadiker/prototype-database/pkg/log"
)

// watchDebounce coalesces the event burst a single save produces (temp
// file write plus rename) into one notification.
const watchDebounce = 100 * time.Millisecond

// Watch monitors the pointer file via fsnotify and invokes fn with the
// newly pointed-at record path whenever a save completes, including
// saves made by other processes over the same directory. It blocks
// until ctx is done and returns nil on cancellation.
//
// Watch never reloads the resident value itself; callers decide whether
// to Load, since reloading discards unsaved changes.
func (s *Store[T]) Watch(ctx context.Context, fn func(record string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(s.cfg.Dir); err != nil {
		return err
	}

	var mu sync.Mutex
	var debounce *time.Timer
	defer func() {
		mu.Lock()
		if debounce != nil {
			debounce.Stop()
		}
		mu.Unlock()
	}()

	notify := func() {
		record, err := s.readPointer()
		if err != nil {
			s.logger.Error("watch: read pointer file", log.Err(err))
			return
		}
		if record == "" {
			return
		}
		fn(record)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != s.cfg.PointerFile {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			mu.Lock()
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, notify)
			mu.Unlock()

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watch: watcher error", log.Err(werr))
		}
	}
}
