// Package todo implements the authoritative task and category state for
// MyTodo.
//
// A Store owns the in-memory collections and is the single writer: every
// mutation validates its input, updates memory, and then dispatches an
// asynchronous save through the persistence adapter. Legacy data written by
// earlier versions of the app (localized status and priority tokens,
// date-only deadlines) is normalized once, at the load/import boundary.
//
// The public API mirrors the application surface:
//   - AddTask, EditTask, DeleteTask, ToggleTask for the task lifecycle
//   - AddCategory, DeleteCategory for category management
//   - ListTasks, Task, Categories for querying
//   - Snapshot, Import for export/import and remote sync
package todo

import "sort"

// Status represents the completion state of a task.
type Status string

const (
	// StatusPending indicates the task has not been completed.
	StatusPending Status = "pending"

	// StatusDone indicates the task has been completed. Done tasks are
	// only visible through the archive view.
	StatusDone Status = "done"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusPending, StatusDone}
}

// IsValid returns true if the status is a known canonical value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Priority represents the importance of a task.
type Priority string

const (
	// PriorityLow is the least important level.
	PriorityLow Priority = "low"

	// PriorityMedium is the default level.
	PriorityMedium Priority = "medium"

	// PriorityHigh is the most important level.
	PriorityHigh Priority = "high"
)

// ValidPriorities returns all valid priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known canonical value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// PriorityRank returns the sort rank for a priority (high sorts first).
func PriorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// SortByPriority reorders tasks in place so higher priorities come first.
// Tasks with equal priority keep their relative order.
func SortByPriority(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return PriorityRank(tasks[i].Priority) < PriorityRank(tasks[j].Priority)
	})
}

// Theme selects the display theme.
type Theme string

const (
	// ThemeSystem follows the host preference.
	ThemeSystem Theme = "system"

	// ThemeLight forces the light theme.
	ThemeLight Theme = "light"

	// ThemeDark forces the dark theme.
	ThemeDark Theme = "dark"
)

// IsValid returns true if the theme is a known value.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeSystem, ThemeLight, ThemeDark:
		return true
	default:
		return false
	}
}

// Platform identifies a remote gist-style sync target.
type Platform string

const (
	// PlatformGitHub syncs against the GitHub gist API.
	PlatformGitHub Platform = "github"

	// PlatformGitee syncs against the Gitee gist API.
	PlatformGitee Platform = "gitee"
)

// IsValid returns true if the platform is a known value.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformGitHub, PlatformGitee:
		return true
	default:
		return false
	}
}

// NoReminder is the reminder offset meaning "no reminder configured".
const NoReminder = -1

// MaxDescriptionLength is the maximum allowed length for a task description.
const MaxDescriptionLength = 300

// DefaultIcon is the category icon used when none is set.
const DefaultIcon = "hash"
