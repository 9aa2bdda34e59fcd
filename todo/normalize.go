package todo

import "strings"

// Earlier versions of the app stored status and priority as localized
// labels. Canonicalization is one-directional and idempotent: it runs once
// at the load/import boundary and never rewrites unknown tokens.

var legacyStatuses = map[string]Status{
	"未完成": StatusPending,
	"已完成": StatusDone,
}

var legacyPriorities = map[string]Priority{
	"低": PriorityLow,
	"中": PriorityMedium,
	"高": PriorityHigh,
}

// NormalizeStatus maps legacy localized status tokens and mixed-case
// canonical keys to canonical Status values. Unknown tokens pass through
// unchanged.
func NormalizeStatus(status Status) Status {
	trimmed := strings.TrimSpace(string(status))
	if mapped, ok := legacyStatuses[trimmed]; ok {
		return mapped
	}
	lowered := Status(strings.ToLower(trimmed))
	if lowered.IsValid() {
		return lowered
	}
	return status
}

// NormalizePriority maps legacy localized priority tokens and mixed-case
// canonical keys to canonical Priority values. Unknown tokens pass through
// unchanged.
func NormalizePriority(priority Priority) Priority {
	trimmed := strings.TrimSpace(string(priority))
	if mapped, ok := legacyPriorities[trimmed]; ok {
		return mapped
	}
	lowered := Priority(strings.ToLower(trimmed))
	if lowered.IsValid() {
		return lowered
	}
	return priority
}

// normalizeTask canonicalizes a task loaded from storage or an imported
// snapshot.
func normalizeTask(task *Task) {
	task.Status = NormalizeStatus(task.Status)
	if task.Status == "" {
		task.Status = StatusPending
	}
	task.Priority = NormalizePriority(task.Priority)
	if task.Priority == "" {
		task.Priority = PriorityMedium
	}
}

func normalizeTasks(tasks []Task) {
	for i := range tasks {
		normalizeTask(&tasks[i])
	}
}
