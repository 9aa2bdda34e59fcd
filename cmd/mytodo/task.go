package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mytodo/mytodo/internal/editor"
	"github.com/mytodo/mytodo/todo"
	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

// task add
var taskAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Long: `Add a new task.

By default, opens $EDITOR to edit a TOML representation of the task
when running interactively. Use --no-edit to skip the editor, or
--edit to force opening the editor even when not interactive.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTaskAdd,
}

var (
	taskAddCategory    string
	taskAddDeadline    string
	taskAddPriority    string
	taskAddDescription string
	taskAddReminder    int
	taskAddEdit        bool
	taskAddNoEdit      bool
)

// task edit
var taskEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task",
	Long: `Edit a task.

All mutable fields are replaced. Opens $EDITOR with a TOML
representation of the task when running interactively; flags override
individual fields.`,
	Args: cobra.ExactArgs(1),
	RunE: runTaskEdit,
}

var (
	taskEditTitle       string
	taskEditCategory    string
	taskEditDeadline    string
	taskEditPriority    string
	taskEditDescription string
	taskEditReminder    int
	taskEditEdit        bool
	taskEditNoEdit      bool
)

// task done / undone
var taskDoneCmd = &cobra.Command{
	Use:   "done <id>...",
	Short: "Mark one or more tasks as done",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskToggle(true),
}

var taskUndoneCmd = &cobra.Command{
	Use:   "undone <id>...",
	Short: "Mark one or more tasks as pending again",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskToggle(false),
}

// task delete
var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one or more tasks permanently",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskDelete,
}

// task show
var taskShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show detailed information about a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskShow,
}

var taskShowJSON bool

// task list
var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks.

The default view shows pending tasks across all categories. Use
--category to narrow to one category, or --archive to show completed
tasks instead.`,
	Args: cobra.NoArgs,
	RunE: runTaskList,
}

var (
	taskListCategory string
	taskListArchive  bool
	taskListJSON     bool
	taskListSort     string
)

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskAddCmd, taskEditCmd, taskDoneCmd, taskUndoneCmd, taskDeleteCmd, taskShowCmd, taskListCmd)

	// task add flags
	taskAddCmd.Flags().StringVarP(&taskAddCategory, "category", "c", "", "Category name")
	taskAddCmd.Flags().StringVar(&taskAddDeadline, "deadline", "", "Deadline (YYYY-MM-DDTHH:mm or YYYY-MM-DD; default today)")
	taskAddCmd.Flags().StringVarP(&taskAddPriority, "priority", "p", string(todo.PriorityMedium), "Priority (low, medium, high)")
	taskAddCmd.Flags().StringVarP(&taskAddDescription, "description", "d", "", "Description")
	taskAddCmd.Flags().IntVar(&taskAddReminder, "reminder", todo.NoReminder, "Reminder offset in minutes before deadline (-1 = none)")
	taskAddCmd.Flags().BoolVarP(&taskAddEdit, "edit", "e", false, "Open $EDITOR (default if interactive)")
	taskAddCmd.Flags().BoolVar(&taskAddNoEdit, "no-edit", false, "Do not open $EDITOR")

	// task edit flags
	taskEditCmd.Flags().StringVar(&taskEditTitle, "title", "", "New title")
	taskEditCmd.Flags().StringVarP(&taskEditCategory, "category", "c", "", "New category")
	taskEditCmd.Flags().StringVar(&taskEditDeadline, "deadline", "", "New deadline")
	taskEditCmd.Flags().StringVarP(&taskEditPriority, "priority", "p", "", "New priority")
	taskEditCmd.Flags().StringVarP(&taskEditDescription, "description", "d", "", "New description")
	taskEditCmd.Flags().IntVar(&taskEditReminder, "reminder", todo.NoReminder, "New reminder offset in minutes")
	taskEditCmd.Flags().BoolVarP(&taskEditEdit, "edit", "e", false, "Open $EDITOR (default if interactive)")
	taskEditCmd.Flags().BoolVar(&taskEditNoEdit, "no-edit", false, "Do not open $EDITOR")

	addTaskFlagAliases(taskAddCmd, taskEditCmd)

	// task show flags
	taskShowCmd.Flags().BoolVar(&taskShowJSON, "json", false, "Output as JSON")

	// task list flags
	taskListCmd.Flags().StringVarP(&taskListCategory, "category", "c", "", "Filter to one category")
	taskListCmd.Flags().BoolVar(&taskListArchive, "archive", false, "Show completed tasks")
	taskListCmd.Flags().BoolVar(&taskListJSON, "json", false, "Output as JSON")
	taskListCmd.Flags().StringVar(&taskListSort, "sort", "created", "Sort order (created or priority)")
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	fields := todo.TaskFields{
		Title:       "",
		Category:    taskAddCategory,
		Deadline:    taskAddDeadline,
		Priority:    todo.Priority(taskAddPriority),
		Description: taskAddDescription,
		Reminder:    taskAddReminder,
	}
	if len(args) > 0 {
		fields.Title = args[0]
	}
	if fields.Category == "" {
		fields.Category = defaultCategory(store)
	}
	if fields.Deadline == "" {
		fields.Deadline = time.Now().Format(todo.DeadlineDateLayout)
	}

	useEditor := taskAddEdit || (!taskAddNoEdit && editor.IsInteractive())
	if useEditor {
		data := editor.DefaultCreateData()
		data.Title = fields.Title
		data.Category = fields.Category
		data.Deadline = fields.Deadline
		data.Priority = string(fields.Priority)
		data.Reminder = fields.Reminder
		data.Description = fields.Description

		parsed, err := editor.EditTask(data)
		if err != nil {
			return err
		}
		fields = parsed.ToFields()
	} else if len(args) == 0 {
		return fmt.Errorf("title is required (use --edit to open editor)")
	}

	created, err := store.AddTask(fields)
	if err != nil {
		return err
	}

	fmt.Printf("Added task %s: %s\n", highlightTaskID(store, created.ID), created.Title)
	return nil
}

func runTaskEdit(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.ResolveTaskID(args[0])
	if err != nil {
		return err
	}
	existing, err := store.Task(id)
	if err != nil {
		return err
	}

	fields := todo.TaskFields{
		Title:       existing.Title,
		Category:    existing.Category,
		Deadline:    existing.Deadline,
		Priority:    existing.Priority,
		Description: existing.Description,
		Reminder:    existing.Reminder,
	}
	flagged := false
	if cmd.Flags().Changed("title") {
		fields.Title = taskEditTitle
		flagged = true
	}
	if cmd.Flags().Changed("category") {
		fields.Category = taskEditCategory
		flagged = true
	}
	if cmd.Flags().Changed("deadline") {
		fields.Deadline = taskEditDeadline
		flagged = true
	}
	if cmd.Flags().Changed("priority") {
		fields.Priority = todo.Priority(taskEditPriority)
		flagged = true
	}
	if cmd.Flags().Changed("description") {
		fields.Description = taskEditDescription
		flagged = true
	}
	if cmd.Flags().Changed("reminder") {
		fields.Reminder = taskEditReminder
		flagged = true
	}

	useEditor := taskEditEdit || (!taskEditNoEdit && !flagged && editor.IsInteractive())
	if useEditor {
		data := editor.DataFromTask(existing)
		parsed, err := editor.EditTask(data)
		if err != nil {
			return err
		}
		fields = parsed.ToFields()
	}

	updated, err := store.EditTask(id, fields)
	if err != nil {
		return err
	}

	fmt.Printf("Updated task %s: %s\n", highlightTaskID(store, updated.ID), updated.Title)
	return nil
}

func runTaskToggle(done bool) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		verb := "Completed"
		if !done {
			verb = "Reopened"
		}
		for _, arg := range args {
			id, err := store.ResolveTaskID(arg)
			if err != nil {
				return err
			}
			task, err := store.ToggleTask(id, done)
			if err != nil {
				return err
			}
			fmt.Printf("%s task %s: %s\n", verb, highlightTaskID(store, task.ID), task.Title)
		}
		return nil
	}
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	for _, arg := range args {
		id, err := store.ResolveTaskID(arg)
		if err != nil {
			return err
		}
		task, err := store.Task(id)
		if err != nil {
			return err
		}
		if err := store.DeleteTask(id); err != nil {
			return err
		}
		fmt.Printf("Deleted task %s: %s\n", id, task.Title)
	}
	return nil
}

func runTaskShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.ResolveTaskID(args[0])
	if err != nil {
		return err
	}
	task, err := store.Task(id)
	if err != nil {
		return err
	}

	if taskShowJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(task)
	}

	printTaskDetail(task)
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	tasks := store.ListTasks(todo.ListFilter{
		Category: taskListCategory,
		Archive:  taskListArchive,
	})

	switch taskListSort {
	case "created":
	case "priority":
		todo.SortByPriority(tasks)
	default:
		return fmt.Errorf("invalid sort %q (valid: created, priority)", taskListSort)
	}

	if taskListJSON {
		if tasks == nil {
			tasks = []todo.Task{}
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(tasks)
	}

	printTaskTable(tasks, taskListArchive)
	return nil
}

// defaultCategory picks the first category for flagless adds, matching the
// first entry in the category picker.
func defaultCategory(store *todo.Store) string {
	categories := store.Categories()
	if len(categories) == 0 {
		return ""
	}
	return categories[0].Name
}
