package storage

import (
	"fmt"
	"path/filepath"
)

// DatabaseFile is the embedded store's file name inside the data directory.
const DatabaseFile = "mytodo.db"

// Backend selects a storage backend explicitly.
type Backend string

const (
	// BackendAuto probes for the embedded store and falls back to files.
	BackendAuto Backend = "auto"

	// BackendSQLite forces the embedded store.
	BackendSQLite Backend = "sqlite"

	// BackendFile forces the file store.
	BackendFile Backend = "file"
)

// Options configures Open.
type Options struct {
	// Backend overrides the capability probe. Default is BackendAuto.
	Backend Backend

	// Logger receives migration and fallback diagnostics.
	Logger Logger
}

// Open selects a backend for the data directory at dir.
//
// With BackendAuto the embedded store is probed first. When it opens and is
// still empty but a legacy file-store copy exists, the legacy data is copied
// over once and then deleted, so the migration can never run twice. When the
// embedded store is unavailable the file store is used directly.
func Open(dir string, opts Options) (Storage, error) {
	logger := opts.Logger
	if logger == nil {
		logger = NopLogger{}
	}

	backend := opts.Backend
	if backend == "" {
		backend = BackendAuto
	}

	switch backend {
	case BackendFile:
		return NewFileStorage(dir)
	case BackendSQLite, BackendAuto:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}

	db, err := OpenSQLite(databasePath(dir))
	if err != nil {
		if backend == BackendSQLite {
			return nil, err
		}
		logger.Logf("embedded store unavailable: %v (falling back to files)", err)
		return NewFileStorage(dir)
	}

	if err := migrateLegacyFiles(db, dir, logger); err != nil {
		// The legacy copy stays intact; migration retries on next start.
		logger.Logf("migrate legacy data: %v", err)
	}
	return db, nil
}

func databasePath(dir string) string {
	return filepath.Join(dir, DatabaseFile)
}

// migrateLegacyFiles copies a legacy file-store copy into an empty embedded
// store, then deletes the legacy files. One-time and one-directional: once
// the files are gone the probe never fires again.
func migrateLegacyFiles(db *SQLiteStorage, dir string, logger Logger) error {
	existing, err := db.Keys()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	files, err := NewFileStorage(dir)
	if err != nil {
		return err
	}

	migrated := 0
	for _, key := range KnownKeys() {
		value, ok, err := files.Get(key)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := db.Set(key, value); err != nil {
			return err
		}
		migrated++
	}
	if migrated == 0 {
		return nil
	}

	for _, key := range KnownKeys() {
		if err := files.Delete(key); err != nil {
			return err
		}
	}

	logger.Logf("migrated %d legacy keys into the embedded store", migrated)
	return nil
}
