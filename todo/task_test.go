package todo

import (
	"encoding/json"
	"testing"
)

func TestTask_UnmarshalJSON_AbsentReminder(t *testing.T) {
	var task Task
	if err := json.Unmarshal([]byte(`{"id":"aaaa1111","task":"no reminder field"}`), &task); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if task.Reminder != NoReminder {
		t.Errorf("expected absent reminder to mean NoReminder, got %d", task.Reminder)
	}
}

func TestTask_UnmarshalJSON_ZeroReminder(t *testing.T) {
	var task Task
	if err := json.Unmarshal([]byte(`{"id":"aaaa1111","task":"at deadline","reminder":0}`), &task); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	// Zero is a real offset, distinct from no reminder.
	if task.Reminder != 0 {
		t.Errorf("expected reminder 0, got %d", task.Reminder)
	}
}

func TestTask_JSONFieldNames(t *testing.T) {
	task := Task{ID: "aaaa1111", Title: "wire format", Status: StatusPending, Priority: PriorityLow, Reminder: NoReminder}
	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	// The title serializes under the historical "task" key.
	if fields["task"] != "wire format" {
		t.Errorf("expected title under 'task' key, got %v", fields["task"])
	}
	if _, ok := fields["title"]; ok {
		t.Errorf("unexpected 'title' key in wire format")
	}
	if _, ok := fields["reminderSent"]; !ok {
		t.Errorf("expected 'reminderSent' key in wire format")
	}
}
