package todo

import (
	"encoding/json"
	"sync"

	"github.com/mytodo/mytodo/storage"
)

// Store owns the authoritative in-memory task, category, settings, and sync
// configuration state.
//
// All mutations are synchronous and atomic from the caller's point of view:
// a single mutex serializes access, memory is updated first, and persistence
// is dispatched asynchronously afterwards. A persistence failure therefore
// never corrupts in-memory state; it only risks losing the most recent write
// if the process terminates before the write lands.
type Store struct {
	mu         sync.Mutex
	tasks      []Task
	categories []Category
	settings   Settings
	syncConfig SyncConfig

	saver  *storage.Saver
	st     storage.Storage
	logger storage.Logger
}

// OpenOptions configures how the store is opened.
type OpenOptions struct {
	// Logger receives non-fatal persistence diagnostics. If nil, a no-op
	// logger is used.
	Logger storage.Logger
}

// Open loads the store from st. Missing or unreadable keys fall back to
// defaults rather than failing: an unreadable store degrades to a fresh one,
// and the next successful save repairs persistence.
func Open(st storage.Storage, opts OpenOptions) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = storage.NopLogger{}
	}

	s := &Store{
		categories: DefaultCategories(),
		settings:   DefaultSettings(),
		syncConfig: DefaultSyncConfig(),
		st:         st,
		logger:     logger,
	}

	loadKey(s, st, storage.KeyTodos, &s.tasks)
	loadKey(s, st, storage.KeyCategories, &s.categories)
	loadKey(s, st, storage.KeySettings, &s.settings)
	loadKey(s, st, storage.KeySyncConfig, &s.syncConfig)

	// Normalization happens exactly once, here at the load boundary.
	normalizeTasks(s.tasks)
	if !s.settings.Theme.IsValid() {
		s.settings.Theme = ThemeSystem
	}

	s.saver = storage.NewSaver(st, logger)
	return s
}

// loadKey reads one key into dest, leaving dest untouched when the key is
// absent or unreadable.
func loadKey[T any](s *Store, st storage.Storage, key string, dest *T) {
	value, ok, err := st.Get(key)
	if err != nil {
		s.logger.Logf("load %s: %v (using defaults)", key, err)
		return
	}
	if !ok {
		return
	}
	var parsed T
	if err := json.Unmarshal(value, &parsed); err != nil {
		s.logger.Logf("parse %s: %v (using defaults)", key, err)
		return
	}
	*dest = parsed
}

// reloadDataLocked re-reads the persisted task and category collections so a
// long-lived process observes writes made by other invocations sharing the
// same data directory. Pending saves are flushed first, so the reload never
// rolls back this process's own writes. The caller must hold s.mu.
func (s *Store) reloadDataLocked() {
	s.saver.Flush()
	loadKey(s, s.st, storage.KeyTodos, &s.tasks)
	loadKey(s, s.st, storage.KeyCategories, &s.categories)
	normalizeTasks(s.tasks)
}

// saveDataLocked dispatches an asynchronous save of the task and category
// collections. The caller must hold s.mu.
func (s *Store) saveDataLocked() {
	s.enqueueLocked(storage.KeyTodos, s.tasks)
	s.enqueueLocked(storage.KeyCategories, s.categories)
}

func (s *Store) enqueueLocked(key string, value any) {
	encoded, err := json.Marshal(value)
	if err != nil {
		s.logger.Logf("encode %s: %v", key, err)
		return
	}
	s.saver.Save(key, encoded)
}

// Settings returns the current settings.
func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SetSettings replaces the settings and persists them independently of task
// data.
func (s *Store) SetSettings(settings Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	s.enqueueLocked(storage.KeySettings, s.settings)
}

// SyncConfig returns the current sync configuration.
func (s *Store) SyncConfig() SyncConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncConfig
}

// SetSyncConfig replaces the sync configuration and persists it.
func (s *Store) SetSyncConfig(cfg SyncConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncConfig = cfg
	s.enqueueLocked(storage.KeySyncConfig, s.syncConfig)
}

// Flush blocks until all dispatched saves have landed. Intended for tests
// and shutdown.
func (s *Store) Flush() {
	s.saver.Flush()
}

// Close flushes pending saves and closes the underlying storage.
func (s *Store) Close() error {
	s.saver.Close()
	return s.st.Close()
}
