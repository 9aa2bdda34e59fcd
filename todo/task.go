package todo

import (
	"encoding/json"
	"time"
)

// Task represents a single to-do item.
type Task struct {
	// ID is a unique identifier (8-char alphanumeric, derived from the
	// initial title + creation timestamp).
	ID string `json:"id"`

	// Title is the short summary of the task.
	Title string `json:"task"`

	// Status is the completion state of the task.
	Status Status `json:"status"`

	// Category names the Category this task belongs to. It must match an
	// existing Category.Name.
	Category string `json:"category"`

	// Deadline is the due date in "YYYY-MM-DDTHH:mm" form. Legacy
	// date-only values ("YYYY-MM-DD") remain readable.
	Deadline string `json:"deadline"`

	// Priority is the importance level.
	Priority Priority `json:"priority"`

	// Description provides additional context (max 300 chars).
	Description string `json:"description,omitempty"`

	// Reminder is how many minutes before the deadline to notify, or
	// NoReminder when no reminder is configured.
	Reminder int `json:"reminder"`

	// ReminderSent records that the reminder already fired. It is reset
	// to false whenever the task is edited.
	ReminderSent bool `json:"reminderSent"`

	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the task was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
}

// UnmarshalJSON decodes a task, treating an absent reminder field as
// NoReminder rather than a zero-minute offset.
func (t *Task) UnmarshalJSON(data []byte) error {
	type alias Task
	aux := struct {
		*alias
		Reminder *int `json:"reminder"`
	}{alias: (*alias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Reminder == nil {
		t.Reminder = NoReminder
	} else {
		t.Reminder = *aux.Reminder
	}
	return nil
}

// Category represents a named grouping of tasks.
type Category struct {
	// Name is unique within the collection.
	Name string `json:"name"`

	// Icon is a symbolic icon identifier. Empty means DefaultIcon.
	Icon string `json:"icon,omitempty"`
}

// DefaultCategories returns the categories seeded on first run.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Work", Icon: "briefcase"},
		{Name: "Personal", Icon: "user"},
		{Name: "Shopping", Icon: "shopping-cart"},
	}
}
