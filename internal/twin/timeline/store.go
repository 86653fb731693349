package timeline

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/longkey1/twin/internal/observability"
)

// Store serves the current timeline table and can follow its file.
type Store struct {
	path  string
	mu    sync.RWMutex
	table *Table
}

// NewStore loads the table at path (embedded default when empty).
func NewStore(path string) (*Store, error) {
	table, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, table: table}, nil
}

// NewStaticStore wraps an already loaded table.
func NewStaticStore(table *Table) *Store {
	return &Store{table: table}
}

// Entries returns a copy of the current entries.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]Entry, len(s.table.Entries))
	copy(entries, s.table.Entries)
	return entries
}

// Version returns the version of the current table.
func (s *Store) Version() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Version
}

// Reload re-reads the backing file. On error the current table is kept.
func (s *Store) Reload() error {
	table, err := Load(s.path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.table = table
	s.mu.Unlock()
	return nil
}

// Watch reloads the table whenever its file changes, until ctx is done.
// It returns immediately for a store without a backing file.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating timeline watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory; editors often replace the file instead of writing it
	target := filepath.Clean(s.path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	log := observability.WithFields("component", "timeline", "path", target)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := s.Reload(); err != nil {
				log.Warn("keeping previous timeline", "error", err)
				continue
			}
			log.Info("timeline reloaded", "version", s.Version())

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("timeline watcher error", "error", err)
		}
	}
}
