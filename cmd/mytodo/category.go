package main

import (
	"fmt"

	"github.com/mytodo/mytodo/internal/ui"
	"github.com/mytodo/mytodo/todo"
	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryAdd,
}

var categoryAddIcon string

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a category",
	Long: `Delete a category.

A category cannot be deleted while any task, pending or archived,
still references it.`,
	Args: cobra.ExactArgs(1),
	RunE: runCategoryDelete,
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Args:  cobra.NoArgs,
	RunE:  runCategoryList,
}

func init() {
	rootCmd.AddCommand(categoryCmd)
	categoryCmd.AddCommand(categoryAddCmd, categoryDeleteCmd, categoryListCmd)

	categoryAddCmd.Flags().StringVar(&categoryAddIcon, "icon", "", "Icon identifier (default hash)")
}

func runCategoryAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	category, err := store.AddCategory(args[0], categoryAddIcon)
	if err != nil {
		return err
	}
	fmt.Printf("Added category %s\n", category.Name)
	return nil
}

func runCategoryDelete(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteCategory(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted category %s\n", args[0])
	return nil
}

func runCategoryList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	categories := store.Categories()
	tasks := store.ListTasks(todo.ListFilter{})

	pending := make(map[string]int)
	for _, task := range tasks {
		pending[task.Category]++
	}

	builder := ui.NewTableBuilder([]string{"NAME", "ICON", "PENDING"}, len(categories))
	for _, category := range categories {
		icon := category.Icon
		if icon == "" {
			icon = todo.DefaultIcon
		}
		builder.AddRow([]string{category.Name, icon, fmt.Sprintf("%d", pending[category.Name])})
	}
	fmt.Print(builder.String())
	return nil
}
