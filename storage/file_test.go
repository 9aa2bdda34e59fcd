package storage

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestFileStorage_RoundTrip(t *testing.T) {
	st, err := NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	defer st.Close()

	if err := st.Set(KeyTodos, []byte(`[]`)); err != nil {
		t.Fatalf("failed to set: %v", err)
	}

	value, ok, err := st.Get(KeyTodos)
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	if !ok {
		t.Fatalf("expected key to exist")
	}
	if string(value) != `[]` {
		t.Errorf("expected `[]`, got %q", value)
	}
}

func TestFileStorage_GetMissing(t *testing.T) {
	st, err := NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	defer st.Close()

	_, ok, err := st.Get("nothing")
	if err != nil {
		t.Fatalf("expected no error for missing key, got %v", err)
	}
	if ok {
		t.Errorf("expected ok=false for missing key")
	}
}

func TestFileStorage_Delete(t *testing.T) {
	st, err := NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	defer st.Close()

	if err := st.Set(KeySettings, []byte(`{}`)); err != nil {
		t.Fatalf("failed to set: %v", err)
	}
	if err := st.Delete(KeySettings); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}
	if _, ok, _ := st.Get(KeySettings); ok {
		t.Errorf("expected key to be gone")
	}

	// Deleting a missing key is not an error.
	if err := st.Delete(KeySettings); err != nil {
		t.Errorf("expected delete of missing key to succeed, got %v", err)
	}
}

func TestFileStorage_Keys(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStorage(dir)
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	defer st.Close()

	if err := st.Set(KeyTodos, []byte(`[]`)); err != nil {
		t.Fatalf("failed to set: %v", err)
	}
	if err := st.Set(KeyCategories, []byte(`[]`)); err != nil {
		t.Fatalf("failed to set: %v", err)
	}
	// Non-JSON files are not keys.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write stray file: %v", err)
	}

	keys, err := st.Keys()
	if err != nil {
		t.Fatalf("failed to list keys: %v", err)
	}
	sort.Strings(keys)
	want := []string{KeyCategories, KeyTodos}
	sort.Strings(want)
	if len(keys) != len(want) || keys[0] != want[0] || keys[1] != want[1] {
		t.Errorf("expected keys %v, got %v", want, keys)
	}
}

func TestFileStorage_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStorage(dir)
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	defer st.Close()

	if err := st.Set(KeyTodos, []byte(`[1]`)); err != nil {
		t.Fatalf("failed to set: %v", err)
	}
	if err := st.Set(KeyTodos, []byte(`[2]`)); err != nil {
		t.Fatalf("failed to overwrite: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".tmp" {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
}
