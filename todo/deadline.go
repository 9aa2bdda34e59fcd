package todo

import (
	"fmt"
	"time"
)

const (
	// DeadlineLayout is the canonical deadline form.
	DeadlineLayout = "2006-01-02T15:04"

	// DeadlineDateLayout is the legacy date-only form. Date-only deadlines
	// are due at midnight local time.
	DeadlineDateLayout = "2006-01-02"
)

// ParseDeadline parses a deadline in either the canonical or the legacy
// date-only form, in the process-local timezone.
//
// Deadlines have no explicit timezone; a device that changes timezones will
// see reminder trigger times shift accordingly. This matches the original
// behavior and is a known limitation.
func ParseDeadline(value string) (time.Time, error) {
	if parsed, err := time.ParseInLocation(DeadlineLayout, value, time.Local); err == nil {
		return parsed, nil
	}
	if parsed, err := time.ParseInLocation(DeadlineDateLayout, value, time.Local); err == nil {
		return parsed, nil
	}
	return time.Time{}, fmt.Errorf("unparsable deadline %q", value)
}

// ReminderTrigger computes the instant at which a task's reminder fires.
// ok is false when the task has no reminder or an unparsable deadline.
func ReminderTrigger(task Task) (time.Time, bool) {
	if task.Reminder < 0 {
		return time.Time{}, false
	}
	deadline, err := ParseDeadline(task.Deadline)
	if err != nil {
		return time.Time{}, false
	}
	return deadline.Add(-time.Duration(task.Reminder) * time.Minute), true
}
