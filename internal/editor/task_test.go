package editor

import (
	"errors"
	"strings"
	"testing"

	"github.com/mytodo/mytodo/todo"
)

func TestRenderParseRoundTrip(t *testing.T) {
	data := TaskData{
		IsUpdate:    true,
		ID:          "aaaa1111",
		Title:       "write \"quarterly\" report",
		Category:    "Work",
		Deadline:    "2026-02-06T14:30",
		Priority:    "high",
		Reminder:    30,
		Description: "# Notes\n\nRemember the appendix.",
	}

	rendered, err := RenderTaskTOML(data)
	if err != nil {
		t.Fatalf("failed to render: %v", err)
	}

	parsed, err := ParseTaskTOML(rendered)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if parsed.Title != data.Title {
		t.Errorf("title mangled: %q", parsed.Title)
	}
	if parsed.Category != data.Category {
		t.Errorf("category mangled: %q", parsed.Category)
	}
	if parsed.Deadline != data.Deadline {
		t.Errorf("deadline mangled: %q", parsed.Deadline)
	}
	if parsed.Priority != "high" {
		t.Errorf("priority mangled: %q", parsed.Priority)
	}
	if parsed.Reminder != 30 {
		t.Errorf("reminder mangled: %d", parsed.Reminder)
	}
	if parsed.Description != data.Description {
		t.Errorf("description mangled: %q", parsed.Description)
	}
}

func TestParseTaskTOML_MissingReminderDefaultsToNone(t *testing.T) {
	parsed, err := ParseTaskTOML("title = \"x\"\npriority = \"low\"\n---\n")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if parsed.Reminder != todo.NoReminder {
		t.Errorf("expected NoReminder, got %d", parsed.Reminder)
	}
}

func TestParseTaskTOML_Validation(t *testing.T) {
	if _, err := ParseTaskTOML("title = \"\"\npriority = \"low\"\n---\n"); !errors.Is(err, todo.ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
	if _, err := ParseTaskTOML("title = \"x\"\npriority = \"urgent\"\n---\n"); err == nil {
		t.Errorf("expected invalid priority error")
	}

	long := strings.Repeat("y", todo.MaxDescriptionLength+1)
	if _, err := ParseTaskTOML("title = \"x\"\npriority = \"low\"\n---\n" + long); !errors.Is(err, todo.ErrDescriptionTooLong) {
		t.Errorf("expected ErrDescriptionTooLong, got %v", err)
	}
}

func TestParseTaskTOML_NormalizesPriorityCase(t *testing.T) {
	parsed, err := ParseTaskTOML("title = \"x\"\npriority = \"  HIGH \"\n---\n")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if parsed.Priority != "high" {
		t.Errorf("expected lowercase priority, got %q", parsed.Priority)
	}
}

func TestSplitFrontmatter(t *testing.T) {
	frontmatter, body := splitFrontmatter("a = 1\n---\nbody text")
	if frontmatter != "a = 1" {
		t.Errorf("unexpected frontmatter %q", frontmatter)
	}
	if body != "body text" {
		t.Errorf("unexpected body %q", body)
	}

	// No separator means everything is frontmatter.
	frontmatter, body = splitFrontmatter("a = 1\nb = 2")
	if frontmatter != "a = 1\nb = 2" || body != "" {
		t.Errorf("unexpected split: %q / %q", frontmatter, body)
	}

	// Only the first separator splits; later ones belong to the body.
	_, body = splitFrontmatter("a = 1\n---\nfirst\n---\nsecond")
	if body != "first\n---\nsecond" {
		t.Errorf("unexpected body %q", body)
	}
}
