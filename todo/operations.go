package todo

import (
	"fmt"
	"strings"
	"time"
)

// TaskFields carries the mutable fields of a task for AddTask and EditTask.
type TaskFields struct {
	// Title is the task summary. Required.
	Title string

	// Category must name an existing category.
	Category string

	// Deadline is the due date ("YYYY-MM-DDTHH:mm" or "YYYY-MM-DD").
	Deadline string

	// Priority defaults to PriorityMedium when empty.
	Priority Priority

	// Description provides additional context (max 300 chars).
	Description string

	// Reminder is minutes before the deadline, or NoReminder.
	Reminder int
}

func (s *Store) validateFieldsLocked(fields *TaskFields) error {
	if err := ValidateTitle(fields.Title); err != nil {
		return err
	}
	if err := ValidateDescription(fields.Description); err != nil {
		return err
	}
	if fields.Priority == "" {
		fields.Priority = PriorityMedium
	}
	fields.Priority = NormalizePriority(fields.Priority)
	if !fields.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, fields.Priority)
	}
	if fields.Reminder < 0 {
		fields.Reminder = NoReminder
	}
	if !s.hasCategoryLocked(fields.Category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, fields.Category)
	}
	return nil
}

func (s *Store) hasCategoryLocked(name string) bool {
	for _, cat := range s.categories {
		if cat.Name == name {
			return true
		}
	}
	return false
}

// AddTask creates a new pending task. The new task is placed at the front of
// the collection so recent tasks list first.
func (s *Store) AddTask(fields TaskFields) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields.Title = strings.TrimSpace(fields.Title)
	if err := s.validateFieldsLocked(&fields); err != nil {
		return nil, err
	}

	now := time.Now()
	task := Task{
		ID:          GenerateID(fields.Title, now),
		Title:       fields.Title,
		Status:      StatusPending,
		Category:    fields.Category,
		Deadline:    fields.Deadline,
		Priority:    fields.Priority,
		Description: fields.Description,
		Reminder:    fields.Reminder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.tasks = append([]Task{task}, s.tasks...)
	s.saveDataLocked()
	return &task, nil
}

// EditTask replaces all mutable fields of a task. Editing always resets
// ReminderSent so a changed deadline or offset can fire again.
func (s *Store) EditTask(id string, fields TaskFields) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields.Title = strings.TrimSpace(fields.Title)
	if err := s.validateFieldsLocked(&fields); err != nil {
		return nil, err
	}

	task := s.findLocked(id)
	if task == nil {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}

	task.Title = fields.Title
	task.Category = fields.Category
	task.Deadline = fields.Deadline
	task.Priority = fields.Priority
	task.Description = fields.Description
	task.Reminder = fields.Reminder
	task.ReminderSent = false
	task.UpdatedAt = time.Now()

	updated := *task
	s.saveDataLocked()
	return &updated, nil
}

// DeleteTask removes a task permanently. There is no soft delete; the
// archive is a status filter, not a separate store.
func (s *Store) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.saveDataLocked()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
}

// ToggleTask marks a task done or pending.
func (s *Store) ToggleTask(id string, done bool) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := s.findLocked(id)
	if task == nil {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}

	if done {
		task.Status = StatusDone
	} else {
		task.Status = StatusPending
	}
	task.UpdatedAt = time.Now()

	updated := *task
	s.saveDataLocked()
	return &updated, nil
}

// Task returns a copy of the task with the given ID.
func (s *Store) Task(id string) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := s.findLocked(id)
	if task == nil {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	found := *task
	return &found, nil
}

func (s *Store) findLocked(id string) *Task {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return &s.tasks[i]
		}
	}
	return nil
}

// AddCategory creates a new category.
func (s *Store) AddCategory(name, icon string) (*Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if err := ValidateCategoryName(name); err != nil {
		return nil, err
	}
	if s.hasCategoryLocked(name) {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, name)
	}

	category := Category{Name: name, Icon: icon}
	s.categories = append(s.categories, category)
	s.saveDataLocked()
	return &category, nil
}

// DeleteCategory removes a category. It fails with ErrCategoryNotEmpty while
// any task, pending or done, still references it.
func (s *Store) DeleteCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasCategoryLocked(name) {
		return fmt.Errorf("%w: %q", ErrCategoryNotFound, name)
	}
	for _, task := range s.tasks {
		if task.Category == name {
			return fmt.Errorf("%w: %q", ErrCategoryNotEmpty, name)
		}
	}

	kept := s.categories[:0]
	for _, cat := range s.categories {
		if cat.Name != name {
			kept = append(kept, cat)
		}
	}
	s.categories = kept
	s.saveDataLocked()
	return nil
}

// Categories returns a copy of the category collection.
func (s *Store) Categories() []Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Category(nil), s.categories...)
}

// ListFilter configures which tasks ListTasks returns.
type ListFilter struct {
	// Category restricts the pending view to one category. Empty means
	// all categories.
	Category string

	// Archive lists done tasks instead of pending ones. The category
	// filter does not apply to the archive view.
	Archive bool
}

// ListTasks returns tasks matching the filter. The pending views never show
// done tasks; done tasks are visible exclusively through the archive view.
func (s *Store) ListTasks(filter ListFilter) []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []Task
	for _, task := range s.tasks {
		if filter.Archive {
			if task.Status == StatusDone {
				result = append(result, task)
			}
			continue
		}
		if task.Status != StatusPending {
			continue
		}
		if filter.Category != "" && task.Category != filter.Category {
			continue
		}
		result = append(result, task)
	}
	return result
}

// ClaimDueReminders marks every due, unsent reminder as sent and returns the
// claimed tasks. A task is due when it is pending, has a non-negative
// reminder offset, and now is at or past deadline minus the offset. Tasks
// with unparsable deadlines are skipped.
//
// Marking happens before the caller notifies, so a re-run with unchanged
// state fires nothing: the scan is idempotent and notification is at most
// once per task. One batch save is dispatched only when something fired.
//
// The scan starts by reloading the persisted collections. A long-running
// watcher would otherwise save its lifetime-stale view of the tasks and
// silently erase anything another invocation persisted in the meantime.
func (s *Store) ClaimDueReminders(now time.Time) []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reloadDataLocked()

	var claimed []Task
	for i := range s.tasks {
		task := &s.tasks[i]
		if task.Status != StatusPending || task.ReminderSent {
			continue
		}
		trigger, ok := ReminderTrigger(*task)
		if !ok {
			continue
		}
		if now.Before(trigger) {
			continue
		}
		task.ReminderSent = true
		claimed = append(claimed, *task)
	}

	if len(claimed) > 0 {
		s.saveDataLocked()
	}
	return claimed
}
