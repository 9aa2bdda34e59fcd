package todo

import (
	"errors"
	"strings"
	"testing"
)

func TestStore_ResolveTaskID(t *testing.T) {
	store := newTestStore(t)

	task := mustAddTask(t, store, TaskFields{Title: "resolve me"})

	resolved, err := store.ResolveTaskID(task.ID)
	if err != nil {
		t.Fatalf("failed to resolve full ID: %v", err)
	}
	if resolved != task.ID {
		t.Errorf("expected %q, got %q", task.ID, resolved)
	}

	resolved, err = store.ResolveTaskID(task.ID[:3])
	if err != nil {
		t.Fatalf("failed to resolve prefix: %v", err)
	}
	if resolved != task.ID {
		t.Errorf("expected %q, got %q", task.ID, resolved)
	}

	resolved, err = store.ResolveTaskID(strings.ToUpper(task.ID[:3]))
	if err != nil {
		t.Fatalf("failed to resolve uppercase prefix: %v", err)
	}
	if resolved != task.ID {
		t.Errorf("expected %q, got %q", task.ID, resolved)
	}
}

func TestStore_ResolveTaskID_NotFound(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.ResolveTaskID("zzzzzzzz"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
	if _, err := store.ResolveTaskID(""); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound for empty prefix, got %v", err)
	}
}
