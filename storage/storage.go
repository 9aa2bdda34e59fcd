// Package storage implements the persistence adapter behind the task store.
//
// Two mutually-exclusive backends satisfy the same key-value contract: an
// embedded SQLite database (preferred) and a directory of JSON files (the
// fallback, and the format earlier versions wrote). Open probes for the
// embedded store and performs a one-time migration of legacy file data into
// it.
package storage

// Storage keys shared by all backends.
const (
	KeyTodos      = "todos"
	KeyCategories = "categories"
	KeySettings   = "settings"
	KeySyncConfig = "sync_config"
)

// KnownKeys returns every key the application persists.
func KnownKeys() []string {
	return []string{KeyTodos, KeyCategories, KeySettings, KeySyncConfig}
}

// Storage is the save/load contract shared by both backends.
type Storage interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent.
	Get(key string) (value []byte, ok bool, err error)

	// Set stores value under key, replacing any existing value.
	Set(key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Keys returns every stored key.
	Keys() ([]string, error)

	// Close releases backend resources.
	Close() error
}

// Logger receives non-fatal persistence diagnostics.
type Logger interface {
	Logf(format string, args ...any)
}

// NopLogger discards all diagnostics.
type NopLogger struct{}

// Logf implements Logger.
func (NopLogger) Logf(format string, args ...any) {}
