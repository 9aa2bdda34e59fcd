package main

import (
	"errors"
	"fmt"

	"github.com/mytodo/mytodo/gist"
	"github.com/mytodo/mytodo/todo"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync tasks with a remote gist",
}

var syncSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure remote sync",
	Args:  cobra.NoArgs,
	RunE:  runSyncSetup,
}

var (
	syncSetupPlatform string
	syncSetupToken    string
	syncSetupGistID   string
	syncSetupEncrypt  bool
	syncSetupDisable  bool
)

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload the local snapshot to the remote gist",
	Args:  cobra.NoArgs,
	RunE:  runSyncPush,
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Replace local tasks with the remote snapshot",
	Args:  cobra.NoArgs,
	RunE:  runSyncPull,
}

var syncPullYes bool

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the sync configuration",
	Args:  cobra.NoArgs,
	RunE:  runSyncStatus,
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.AddCommand(syncSetupCmd, syncPushCmd, syncPullCmd, syncStatusCmd)

	syncSetupCmd.Flags().StringVar(&syncSetupPlatform, "platform", "", "Remote platform (github or gitee)")
	syncSetupCmd.Flags().StringVar(&syncSetupToken, "token", "", "Personal access token with gist scope")
	syncSetupCmd.Flags().StringVar(&syncSetupGistID, "gist-id", "", "Existing gist id to sync with")
	syncSetupCmd.Flags().BoolVar(&syncSetupEncrypt, "encrypt", false, "Encrypt the snapshot with the token")
	syncSetupCmd.Flags().BoolVar(&syncSetupDisable, "disable", false, "Disable sync")

	syncPullCmd.Flags().BoolVarP(&syncPullYes, "yes", "y", false, "Overwrite local data without asking")
}

func runSyncSetup(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	cfg := store.SyncConfig()

	if syncSetupDisable {
		cfg.Enabled = false
		store.SetSyncConfig(cfg)
		fmt.Println("Sync disabled")
		return nil
	}

	if cmd.Flags().Changed("platform") {
		platform := todo.Platform(syncSetupPlatform)
		if !platform.IsValid() {
			return fmt.Errorf("invalid platform %q (valid: github, gitee)", syncSetupPlatform)
		}
		cfg.Platform = platform
	}
	if cmd.Flags().Changed("token") {
		cfg.Token = syncSetupToken
	}
	if cmd.Flags().Changed("gist-id") {
		cfg.GistID = syncSetupGistID
	}
	if cmd.Flags().Changed("encrypt") {
		cfg.Encrypt = syncSetupEncrypt
	}

	if cfg.Token == "" {
		return gist.ErrMissingToken
	}
	cfg.Enabled = true
	store.SetSyncConfig(cfg)

	fmt.Printf("Sync enabled (%s)\n", cfg.Platform)
	return nil
}

func runSyncPush(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	syncer := gist.NewSyncer(store, gist.SyncerOptions{})
	if err := syncer.Push(cmd.Context()); err != nil {
		return err
	}

	cfg := store.SyncConfig()
	fmt.Printf("Pushed to gist %s\n", cfg.GistID)
	return nil
}

func runSyncPull(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	opts := gist.SyncerOptions{}
	if syncPullYes {
		opts.Prompter = alwaysYesPrompter{}
	}

	syncer := gist.NewSyncer(store, opts)
	if err := syncer.Pull(cmd.Context()); err != nil {
		if errors.Is(err, gist.ErrPullDeclined) {
			fmt.Println("Pull cancelled, local data unchanged")
			return nil
		}
		return err
	}

	fmt.Printf("Pulled %d tasks\n", len(store.ListTasks(todo.ListFilter{}))+len(store.ListTasks(todo.ListFilter{Archive: true})))
	return nil
}

func runSyncStatus(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	cfg := store.SyncConfig()

	enabled := "no"
	if cfg.Enabled {
		enabled = "yes"
	}
	fmt.Printf("enabled    %s\n", enabled)
	fmt.Printf("platform   %s\n", cfg.Platform)
	fmt.Printf("encrypted  %v\n", cfg.Encrypt)
	if cfg.GistID != "" {
		fmt.Printf("gist       %s\n", cfg.GistID)
	}
	if cfg.Token != "" {
		fmt.Printf("token      %s\n", maskToken(cfg.Token))
	}
	if cfg.LastSync != nil {
		fmt.Printf("last sync  %s\n", cfg.LastSync.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

type alwaysYesPrompter struct{}

func (alwaysYesPrompter) Confirm(string) (bool, error) { return true, nil }

func maskToken(token string) string {
	if len(token) <= 8 {
		return "********"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
