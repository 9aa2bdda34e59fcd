package todo

import (
	"testing"

	"github.com/mytodo/mytodo/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := storage.NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}

	store := Open(st, OpenOptions{})
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return store
}

func mustAddTask(t *testing.T, store *Store, fields TaskFields) *Task {
	t.Helper()

	if fields.Category == "" {
		fields.Category = "Work"
	}
	task, err := store.AddTask(fields)
	if err != nil {
		t.Fatalf("failed to add task: %v", err)
	}
	return task
}
