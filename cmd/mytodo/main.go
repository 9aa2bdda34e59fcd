// Package main implements the mytodo CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mytodo/mytodo/internal/config"
	"github.com/mytodo/mytodo/storage"
	"github.com/mytodo/mytodo/todo"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "mytodo",
	Short:         "MyTodo - a personal task tracker",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// consoleLogger reports non-fatal persistence diagnostics on stderr.
type consoleLogger struct {
	prefix string
}

func newConsoleLogger() consoleLogger {
	return consoleLogger{
		prefix: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Render("warn"),
	}
}

// Logf implements storage.Logger.
func (l consoleLogger) Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", l.prefix, fmt.Sprintf(format, args...))
}

// openStore opens the task store using the configured data directory and
// backend. The caller must Close the store when done.
func openStore() (*todo.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dataDir, err := cfg.DataDir()
	if err != nil {
		return nil, err
	}

	logger := newConsoleLogger()
	st, err := storage.Open(dataDir, storage.Options{
		Backend: storage.Backend(cfg.Data.Backend),
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	return todo.Open(st, todo.OpenOptions{Logger: logger}), nil
}
