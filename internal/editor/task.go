package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	"github.com/mytodo/mytodo/todo"
)

// TaskData represents the data used to render the TOML template.
type TaskData struct {
	// IsUpdate is true when editing an existing task.
	IsUpdate bool
	// ID is the task ID (only for updates).
	ID string
	// Title is the task title.
	Title string
	// Category is the category name.
	Category string
	// Deadline is the due date.
	Deadline string
	// Priority is the task priority (low, medium, high).
	Priority string
	// Reminder is the reminder offset in minutes (-1 = none).
	Reminder int
	// Description is the task description.
	Description string
}

// DefaultCreateData returns TaskData with default values for a new task.
func DefaultCreateData() TaskData {
	return TaskData{
		Priority: string(todo.PriorityMedium),
		Reminder: todo.NoReminder,
	}
}

// DataFromTask creates TaskData from an existing task for editing.
func DataFromTask(t *todo.Task) TaskData {
	return TaskData{
		IsUpdate:    true,
		ID:          t.ID,
		Title:       t.Title,
		Category:    t.Category,
		Deadline:    t.Deadline,
		Priority:    string(t.Priority),
		Reminder:    t.Reminder,
		Description: t.Description,
	}
}

var taskTemplate = template.Must(template.New("task").Parse(`title = {{ printf "%q" .Title }}
category = {{ printf "%q" .Category }}
deadline = {{ printf "%q" .Deadline }} # YYYY-MM-DDTHH:mm or YYYY-MM-DD
priority = {{ printf "%q" .Priority }} # low, medium, high
reminder = {{ .Reminder }} # minutes before deadline, -1 = none
---
{{ .Description }}
`))

// RenderTaskTOML renders the task data as a TOML string for editing. The
// description follows the frontmatter after a "---" separator.
func RenderTaskTOML(data TaskData) (string, error) {
	var buf bytes.Buffer
	if err := taskTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTask represents the parsed result from the TOML editor output.
type ParsedTask struct {
	Title       string `toml:"title"`
	Category    string `toml:"category"`
	Deadline    string `toml:"deadline"`
	Priority    string `toml:"priority"`
	Reminder    int    `toml:"reminder"`
	Description string
}

// ParseTaskTOML parses the TOML content from the editor.
func ParseTaskTOML(content string) (*ParsedTask, error) {
	frontmatter, body := splitFrontmatter(content)

	parsed := ParsedTask{Reminder: todo.NoReminder}
	if _, err := toml.Decode(frontmatter, &parsed); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	parsed.Description = strings.TrimRight(strings.TrimLeft(body, "\n"), "\n")
	parsed.Priority = strings.ToLower(strings.TrimSpace(parsed.Priority))

	if err := todo.ValidateTitle(parsed.Title); err != nil {
		return nil, err
	}
	if !todo.Priority(parsed.Priority).IsValid() {
		return nil, fmt.Errorf("invalid priority %q: must be low, medium, or high", parsed.Priority)
	}
	if err := todo.ValidateDescription(parsed.Description); err != nil {
		return nil, err
	}

	return &parsed, nil
}

// ToFields converts a ParsedTask to todo.TaskFields.
func (p *ParsedTask) ToFields() todo.TaskFields {
	return todo.TaskFields{
		Title:       p.Title,
		Category:    p.Category,
		Deadline:    p.Deadline,
		Priority:    todo.Priority(p.Priority),
		Description: p.Description,
		Reminder:    p.Reminder,
	}
}

// EditTask opens the editor with pre-populated data and returns the parsed
// result.
func EditTask(data TaskData) (*ParsedTask, error) {
	content, err := RenderTaskTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := os.CreateTemp("", "mytodo-task-*.md")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTaskTOML(string(edited))
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	frontmatter := strings.Join(lines[:separatorIndex], "\n")
	body := strings.Join(lines[separatorIndex+1:], "\n")
	return frontmatter, body
}
