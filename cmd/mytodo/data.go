package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mytodo/mytodo/todo"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export tasks and categories as JSON",
	Long: `Export tasks and categories as JSON.

Settings are not included in the export. With no file argument the
snapshot is written to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import tasks and categories from JSON",
	Long: `Import tasks and categories from JSON.

The imported tasks replace the current ones. When the snapshot carries
no categories, the existing categories are kept. With no file argument
the snapshot is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	snapshot := store.Snapshot(false)
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	data = append(data, '\n')

	if len(args) == 0 {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(args[0], data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", args[0], err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d tasks to %s\n", len(snapshot.Todos), args[0])
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if len(args) == 0 {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
	}

	var snapshot todo.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("parse snapshot: %w", err)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Import(snapshot); err != nil {
		return err
	}
	fmt.Printf("Imported %d tasks\n", len(snapshot.Todos))
	return nil
}
