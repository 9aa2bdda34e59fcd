package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mytodo/mytodo/internal/markdown"
	"github.com/mytodo/mytodo/internal/ui"
	"github.com/mytodo/mytodo/todo"
)

const detailWidth = 80

var priorityStyles = map[todo.Priority]lipgloss.Style{
	todo.PriorityHigh:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	todo.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	todo.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
}

// printTaskTable prints tasks in a table format.
func printTaskTable(tasks []todo.Task, archive bool) {
	if len(tasks) == 0 {
		if archive {
			fmt.Println("No archived tasks.")
		} else {
			fmt.Println("No tasks.")
		}
		return
	}

	fmt.Print(formatTaskTable(tasks, taskIDPrefixLengths(tasks)))
}

func formatTaskTable(tasks []todo.Task, prefixLengths map[string]int) string {
	builder := ui.NewTableBuilder([]string{"ID", "PRI", "CATEGORY", "DEADLINE", "TITLE"}, len(tasks))

	for _, t := range tasks {
		prefixLen := prefixLengths[strings.ToLower(t.ID)]
		builder.AddRow([]string{
			ui.HighlightID(t.ID, prefixLen),
			priorityLabel(t.Priority),
			t.Category,
			t.Deadline,
			ui.TruncateTableCell(t.Title),
		})
	}

	return builder.String()
}

func taskIDPrefixLengths(tasks []todo.Task) map[string]int {
	taskIDs := make([]string, 0, len(tasks))
	for _, t := range tasks {
		taskIDs = append(taskIDs, t.ID)
	}
	return ui.UniqueIDPrefixLengths(taskIDs)
}

func priorityLabel(p todo.Priority) string {
	label := strings.ToUpper(string(p))
	if style, ok := priorityStyles[p]; ok {
		return style.Render(label)
	}
	return label
}

// printTaskDetail prints the full view of one task, rendering the
// description as markdown.
func printTaskDetail(task *todo.Task) {
	fmt.Printf("ID:        %s\n", task.ID)
	fmt.Printf("Title:     %s\n", task.Title)
	fmt.Printf("Status:    %s\n", task.Status)
	fmt.Printf("Category:  %s\n", task.Category)
	fmt.Printf("Deadline:  %s\n", task.Deadline)
	fmt.Printf("Priority:  %s\n", priorityLabel(task.Priority))
	if task.Reminder >= 0 {
		fmt.Printf("Reminder:  %d minutes before deadline", task.Reminder)
		if task.ReminderSent {
			fmt.Print(" (sent)")
		}
		fmt.Println()
	}
	if !task.CreatedAt.IsZero() {
		fmt.Printf("Created:   %s\n", task.CreatedAt.Format("2006-01-02 15:04"))
	}
	if description := markdown.Render(detailWidth, task.Description); description != "" {
		fmt.Printf("\n%s\n", description)
	}
}

// highlightTaskID highlights the unique prefix of an ID in command output.
func highlightTaskID(store *todo.Store, id string) string {
	prefixLengths := taskIDPrefixLengths(allTasks(store))
	return ui.HighlightID(id, prefixLengths[strings.ToLower(id)])
}

// allTasks merges the pending and archive views. Prefix lengths for command
// output must cover done tasks too, so completing or reopening a task still
// highlights its ID.
func allTasks(store *todo.Store) []todo.Task {
	tasks := store.ListTasks(todo.ListFilter{})
	return append(tasks, store.ListTasks(todo.ListFilter{Archive: true})...)
}
