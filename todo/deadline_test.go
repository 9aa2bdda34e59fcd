package todo

import (
	"testing"
	"time"
)

func TestParseDeadline(t *testing.T) {
	parsed, err := ParseDeadline("2026-02-06T14:30")
	if err != nil {
		t.Fatalf("failed to parse canonical deadline: %v", err)
	}
	want := time.Date(2026, 2, 6, 14, 30, 0, 0, time.Local)
	if !parsed.Equal(want) {
		t.Errorf("expected %v, got %v", want, parsed)
	}
}

func TestParseDeadline_DateOnly(t *testing.T) {
	parsed, err := ParseDeadline("2024-01-15")
	if err != nil {
		t.Fatalf("failed to parse date-only deadline: %v", err)
	}
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	if !parsed.Equal(want) {
		t.Errorf("expected midnight local, got %v", parsed)
	}
}

func TestParseDeadline_Invalid(t *testing.T) {
	for _, value := range []string{"", "soonish", "2026-13-40T99:99", "06/02/2026"} {
		if _, err := ParseDeadline(value); err == nil {
			t.Errorf("expected error for %q", value)
		}
	}
}

func TestReminderTrigger(t *testing.T) {
	task := Task{Deadline: "2026-02-06T14:30", Reminder: 30}
	trigger, ok := ReminderTrigger(task)
	if !ok {
		t.Fatalf("expected a trigger")
	}
	want := time.Date(2026, 2, 6, 14, 0, 0, 0, time.Local)
	if !trigger.Equal(want) {
		t.Errorf("expected trigger %v, got %v", want, trigger)
	}
}

func TestReminderTrigger_None(t *testing.T) {
	if _, ok := ReminderTrigger(Task{Deadline: "2026-02-06T14:30", Reminder: NoReminder}); ok {
		t.Errorf("expected no trigger without a reminder")
	}
	if _, ok := ReminderTrigger(Task{Deadline: "whenever", Reminder: 10}); ok {
		t.Errorf("expected no trigger for unparsable deadline")
	}
}

func TestReminderTrigger_ZeroOffset(t *testing.T) {
	trigger, ok := ReminderTrigger(Task{Deadline: "2026-02-06T14:30", Reminder: 0})
	if !ok {
		t.Fatalf("expected a trigger for offset zero")
	}
	want := time.Date(2026, 2, 6, 14, 30, 0, 0, time.Local)
	if !trigger.Equal(want) {
		t.Errorf("expected trigger at the deadline, got %v", trigger)
	}
}
