package main

import (
	"fmt"

	"github.com/mytodo/mytodo/todo"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
	Long: `Show or change settings.

Without flags, prints the current settings. With --theme or --lang,
updates the named setting and prints the result.`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

var (
	settingsTheme string
	settingsLang  string
)

func init() {
	rootCmd.AddCommand(settingsCmd)

	settingsCmd.Flags().StringVar(&settingsTheme, "theme", "", "Theme (system, light, dark)")
	settingsCmd.Flags().StringVar(&settingsLang, "lang", "", "Language code (e.g. en, zh)")
}

func runSettings(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	settings := store.Settings()

	if cmd.Flags().Changed("theme") {
		theme := todo.Theme(settingsTheme)
		if !theme.IsValid() {
			return fmt.Errorf("invalid theme %q (valid: system, light, dark)", settingsTheme)
		}
		settings.Theme = theme
	}
	if cmd.Flags().Changed("lang") {
		if settingsLang == "" {
			return fmt.Errorf("language must not be empty")
		}
		settings.Language = settingsLang
	}
	if cmd.Flags().Changed("theme") || cmd.Flags().Changed("lang") {
		store.SetSettings(settings)
	}

	fmt.Printf("theme  %s\n", settings.Theme)
	fmt.Printf("lang   %s\n", settings.Language)
	return nil
}
