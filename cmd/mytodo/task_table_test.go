package main

import (
	"strings"
	"testing"

	"github.com/mytodo/mytodo/storage"
	"github.com/mytodo/mytodo/todo"
)

func TestTaskIDPrefixLengthsCoverArchivedTasks(t *testing.T) {
	st, err := storage.NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	store := todo.Open(st, todo.OpenOptions{})
	defer store.Close()

	pending, err := store.AddTask(todo.TaskFields{Title: "still open", Category: "Work"})
	if err != nil {
		t.Fatalf("failed to add task: %v", err)
	}
	done, err := store.AddTask(todo.TaskFields{Title: "finished", Category: "Work"})
	if err != nil {
		t.Fatalf("failed to add task: %v", err)
	}
	if _, err := store.ToggleTask(done.ID, true); err != nil {
		t.Fatalf("failed to complete task: %v", err)
	}

	prefixLengths := taskIDPrefixLengths(allTasks(store))
	if prefixLengths[strings.ToLower(done.ID)] == 0 {
		t.Errorf("expected a prefix length for the completed task %s", done.ID)
	}
	if prefixLengths[strings.ToLower(pending.ID)] == 0 {
		t.Errorf("expected a prefix length for the pending task %s", pending.ID)
	}
}
