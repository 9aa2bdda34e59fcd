package codec

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/mytodo/mytodo/todo"
)

func sampleSnapshot() todo.Snapshot {
	return todo.Snapshot{
		Todos: []todo.Task{{
			ID:       "aaaa1111",
			Title:    "买牛奶",
			Status:   todo.StatusPending,
			Category: "Shopping",
			Priority: todo.PriorityLow,
			Reminder: todo.NoReminder,
		}},
		Categories: todo.DefaultCategories(),
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	snap := sampleSnapshot()

	encoded, err := Encode(snap, "ghp_secrettoken")
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}

	decoded, err := Decode(encoded, "ghp_secrettoken")
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}

	if len(decoded.Todos) != 1 {
		t.Fatalf("expected 1 task, got %d", len(decoded.Todos))
	}
	if decoded.Todos[0].Title != "买牛奶" {
		t.Errorf("expected multibyte title to survive, got %q", decoded.Todos[0].Title)
	}
	if len(decoded.Categories) != 3 {
		t.Errorf("expected 3 categories, got %d", len(decoded.Categories))
	}
}

func TestEncode_OutputIsBase64NotPlaintext(t *testing.T) {
	encoded, err := Encode(sampleSnapshot(), "key")
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}

	if _, err := base64.StdEncoding.DecodeString(encoded); err != nil {
		t.Errorf("output is not valid base64: %v", err)
	}
	if strings.Contains(encoded, "Shopping") {
		t.Errorf("encoded output leaks plaintext")
	}
}

func TestDecode_WrongKey(t *testing.T) {
	encoded, err := Encode(sampleSnapshot(), "right-key")
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}

	_, err = Decode(encoded, "wrong-key")
	if !errors.Is(err, ErrDecryptMismatch) {
		t.Errorf("expected ErrDecryptMismatch, got %v", err)
	}
}

func TestDecode_NotBase64(t *testing.T) {
	_, err := Decode("!!! not base64 !!!", "key")
	if err == nil {
		t.Errorf("expected error for invalid base64")
	}
	if errors.Is(err, ErrDecryptMismatch) {
		t.Errorf("base64 failure should not report a key mismatch")
	}
}

func TestEncodeDecode_EmptyKey(t *testing.T) {
	if _, err := Encode(sampleSnapshot(), ""); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("expected ErrEmptyKey from Encode, got %v", err)
	}
	if _, err := Decode("aGk=", ""); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("expected ErrEmptyKey from Decode, got %v", err)
	}
}

func TestEncode_KeyLongerThanPayload(t *testing.T) {
	snap := todo.Snapshot{Todos: []todo.Task{}}
	key := strings.Repeat("k", 4096)

	encoded, err := Encode(snap, key)
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}
	decoded, err := Decode(encoded, key)
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if decoded.Todos == nil || len(decoded.Todos) != 0 {
		t.Errorf("expected empty task list, got %+v", decoded.Todos)
	}
}
