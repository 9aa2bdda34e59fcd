package todo

import (
	"errors"
	"testing"
	"time"

	"github.com/mytodo/mytodo/storage"
)

func TestStore_Persistence(t *testing.T) {
	dir := t.TempDir()

	st, err := storage.NewFileStorage(dir)
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	store := Open(st, OpenOptions{})
	task := mustAddTask(t, store, TaskFields{Title: "survives restart"})
	store.SetSettings(Settings{Theme: ThemeDark, Language: "zh"})
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	st, err = storage.NewFileStorage(dir)
	if err != nil {
		t.Fatalf("failed to reopen storage: %v", err)
	}
	reopened := Open(st, OpenOptions{})
	defer reopened.Close()

	loaded, err := reopened.Task(task.ID)
	if err != nil {
		t.Fatalf("task did not survive restart: %v", err)
	}
	if loaded.Title != "survives restart" {
		t.Errorf("expected title 'survives restart', got %q", loaded.Title)
	}

	settings := reopened.Settings()
	if settings.Theme != ThemeDark || settings.Language != "zh" {
		t.Errorf("settings did not survive restart: %+v", settings)
	}
}

func TestOpen_Defaults(t *testing.T) {
	store := newTestStore(t)

	categories := store.Categories()
	if len(categories) != 3 {
		t.Fatalf("expected 3 default categories, got %d", len(categories))
	}
	if categories[0].Name != "Work" || categories[1].Name != "Personal" || categories[2].Name != "Shopping" {
		t.Errorf("unexpected default categories: %+v", categories)
	}

	settings := store.Settings()
	if settings.Theme != ThemeSystem {
		t.Errorf("expected theme 'system', got %q", settings.Theme)
	}
	if settings.Language != "en" {
		t.Errorf("expected language 'en', got %q", settings.Language)
	}

	cfg := store.SyncConfig()
	if cfg.Platform != PlatformGitHub {
		t.Errorf("expected platform 'github', got %q", cfg.Platform)
	}
}

func TestOpen_NormalizesLegacyData(t *testing.T) {
	st, err := storage.NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}

	legacy := `[
		{"id":"aaaa1111","task":"old","status":"已完成","category":"Work","deadline":"2024-01-15","priority":"高","reminder":-1},
		{"id":"bbbb2222","task":"new","status":"未完成","category":"Work","deadline":"2024-01-16","priority":"低"}
	]`
	if err := st.Set(storage.KeyTodos, []byte(legacy)); err != nil {
		t.Fatalf("failed to seed storage: %v", err)
	}

	store := Open(st, OpenOptions{})
	defer store.Close()

	done, err := store.Task("aaaa1111")
	if err != nil {
		t.Fatalf("failed to load legacy task: %v", err)
	}
	if done.Status != StatusDone {
		t.Errorf("expected status 'done', got %q", done.Status)
	}
	if done.Priority != PriorityHigh {
		t.Errorf("expected priority 'high', got %q", done.Priority)
	}

	pending, err := store.Task("bbbb2222")
	if err != nil {
		t.Fatalf("failed to load legacy task: %v", err)
	}
	if pending.Status != StatusPending {
		t.Errorf("expected status 'pending', got %q", pending.Status)
	}
	if pending.Priority != PriorityLow {
		t.Errorf("expected priority 'low', got %q", pending.Priority)
	}
	// Absent reminder field means no reminder, not minute zero.
	if pending.Reminder != NoReminder {
		t.Errorf("expected no reminder, got %d", pending.Reminder)
	}
}

func TestOpen_CorruptKeyFallsBackToDefaults(t *testing.T) {
	st, err := storage.NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	if err := st.Set(storage.KeyTodos, []byte("{not json")); err != nil {
		t.Fatalf("failed to seed storage: %v", err)
	}

	store := Open(st, OpenOptions{})
	defer store.Close()

	if tasks := store.ListTasks(ListFilter{}); len(tasks) != 0 {
		t.Errorf("expected empty store after corrupt load, got %d tasks", len(tasks))
	}
}

func TestStore_Snapshot(t *testing.T) {
	store := newTestStore(t)
	mustAddTask(t, store, TaskFields{Title: "snapshot me"})

	withSettings := store.Snapshot(true)
	if withSettings.Settings == nil {
		t.Errorf("expected settings in sync snapshot")
	}
	if len(withSettings.Todos) != 1 || len(withSettings.Categories) != 3 {
		t.Errorf("unexpected snapshot shape: %d todos, %d categories", len(withSettings.Todos), len(withSettings.Categories))
	}

	exported := store.Snapshot(false)
	if exported.Settings != nil {
		t.Errorf("expected export snapshot to omit settings")
	}
}

func TestStore_Import(t *testing.T) {
	store := newTestStore(t)
	mustAddTask(t, store, TaskFields{Title: "will be replaced"})

	err := store.Import(Snapshot{
		Todos: []Task{{
			ID:       "cccc3333",
			Title:    "imported",
			Status:   "未完成",
			Category: "Work",
			Priority: "中",
			Reminder: NoReminder,
		}},
	})
	if err != nil {
		t.Fatalf("failed to import: %v", err)
	}

	tasks := store.ListTasks(ListFilter{})
	if len(tasks) != 1 || tasks[0].Title != "imported" {
		t.Fatalf("import did not replace tasks: %+v", tasks)
	}
	if tasks[0].Status != StatusPending || tasks[0].Priority != PriorityMedium {
		t.Errorf("import did not normalize: status %q priority %q", tasks[0].Status, tasks[0].Priority)
	}

	// Snapshot without categories keeps the existing ones.
	if categories := store.Categories(); len(categories) != 3 {
		t.Errorf("expected default categories to survive import, got %d", len(categories))
	}
}

func TestStore_Import_WithCategories(t *testing.T) {
	store := newTestStore(t)

	err := store.Import(Snapshot{
		Todos:      []Task{{ID: "dddd4444", Title: "x", Status: StatusPending, Category: "Custom", Priority: PriorityLow, Reminder: NoReminder}},
		Categories: []Category{{Name: "Custom", Icon: "star"}},
	})
	if err != nil {
		t.Fatalf("failed to import: %v", err)
	}

	categories := store.Categories()
	if len(categories) != 1 || categories[0].Name != "Custom" {
		t.Errorf("expected imported categories to replace existing ones, got %+v", categories)
	}
}

func TestStore_Import_Empty(t *testing.T) {
	store := newTestStore(t)
	kept := mustAddTask(t, store, TaskFields{Title: "kept"})

	if err := store.Import(Snapshot{}); !errors.Is(err, ErrEmptySnapshot) {
		t.Fatalf("expected ErrEmptySnapshot, got %v", err)
	}

	if _, err := store.Task(kept.ID); err != nil {
		t.Errorf("rejected import modified local state: %v", err)
	}
}

func TestStore_ClaimDueReminders_KeepsConcurrentWrites(t *testing.T) {
	dir := t.TempDir()

	st, err := storage.NewFileStorage(dir)
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	watcher := Open(st, OpenOptions{})
	mustAddTask(t, watcher, TaskFields{
		Title:    "due",
		Deadline: "2026-02-06T14:30",
		Reminder: 30,
	})
	watcher.Flush()

	// Another invocation writes to the same data directory while the
	// watcher is still running.
	otherSt, err := storage.NewFileStorage(dir)
	if err != nil {
		t.Fatalf("failed to open second storage: %v", err)
	}
	other := Open(otherSt, OpenOptions{})
	mustAddTask(t, other, TaskFields{Title: "added later"})
	if err := other.Close(); err != nil {
		t.Fatalf("failed to close second store: %v", err)
	}

	now := time.Date(2026, 2, 6, 14, 0, 0, 0, time.Local)
	claimed := watcher.ClaimDueReminders(now)
	if len(claimed) != 1 || claimed[0].Title != "due" {
		t.Fatalf("expected to claim task 'due', got %+v", claimed)
	}
	if err := watcher.Close(); err != nil {
		t.Fatalf("failed to close watcher store: %v", err)
	}

	st, err = storage.NewFileStorage(dir)
	if err != nil {
		t.Fatalf("failed to reopen storage: %v", err)
	}
	reopened := Open(st, OpenOptions{})
	defer reopened.Close()

	pending := reopened.ListTasks(ListFilter{})
	if len(pending) != 2 {
		t.Fatalf("expected both tasks after the claim save, got %d", len(pending))
	}
	if pending[0].Title != "added later" {
		t.Errorf("expected the task from the second invocation to survive, got %q", pending[0].Title)
	}
	if pending[1].Title != "due" || !pending[1].ReminderSent {
		t.Errorf("expected the claim to be persisted as sent, got %+v", pending[1])
	}
}
