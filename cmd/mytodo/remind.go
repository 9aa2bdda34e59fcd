package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/mytodo/mytodo/reminder"
	"github.com/spf13/cobra"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Watch for due reminders in the foreground",
	Long: `Watch for due reminders in the foreground.

Scans pending tasks on an interval and prints a notification for each
task whose reminder comes due. Each reminder fires at most once; edit
the task to re-arm it. Runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runRemind,
}

var remindInterval time.Duration

func init() {
	rootCmd.AddCommand(remindCmd)

	remindCmd.Flags().DurationVar(&remindInterval, "interval", reminder.DefaultInterval, "Scan interval")
}

func runRemind(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	evaluator := reminder.New(store, consoleNotifier{}, reminder.Options{
		Interval: remindInterval,
	})

	fmt.Printf("Watching for reminders every %s, press ctrl-c to stop\n", remindInterval)
	evaluator.Run(ctx)
	return nil
}

const notificationWidth = 72

var notificationTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// consoleNotifier prints reminders to stdout with a timestamp.
type consoleNotifier struct{}

func (consoleNotifier) Notify(title, body string) {
	stamp := time.Now().Format("15:04")
	fmt.Printf("%s  %s\n", stamp, notificationTitleStyle.Render(wordwrap.String(title, notificationWidth)))
	fmt.Printf("       %s\n", wordwrap.String(body, notificationWidth))
}
