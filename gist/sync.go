package gist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/mytodo/mytodo/codec"
	"github.com/mytodo/mytodo/todo"
)

var (
	// ErrSyncInProgress is returned when a push or pull starts while
	// another one is still in flight.
	ErrSyncInProgress = errors.New("another sync operation is in progress")

	// ErrPullDeclined is returned when the user declines the overwrite
	// confirmation. Local state is untouched.
	ErrPullDeclined = errors.New("pull cancelled")

	// ErrSyncDisabled is returned when a push or pull runs while sync is
	// turned off in the configuration.
	ErrSyncDisabled = errors.New("sync is disabled")
)

// Prompter is used to ask the user for confirmation before pulled data
// overwrites local state.
type Prompter interface {
	// Confirm asks the user a yes/no question and returns true if they
	// say yes.
	Confirm(message string) (bool, error)
}

// StdioPrompter implements Prompter using stdin/stdout.
type StdioPrompter struct{}

// Confirm asks the user a yes/no question via stdin/stdout.
func (p StdioPrompter) Confirm(message string) (bool, error) {
	fmt.Printf("%s [y/n]: ", message)
	var response string
	_, err := fmt.Scanln(&response)
	if err != nil {
		return false, err
	}
	return response == "y" || response == "Y" || response == "yes" || response == "Yes", nil
}

// API is the subset of the gist client the syncer needs.
type API interface {
	Create(ctx context.Context, filename, content string) (string, error)
	Update(ctx context.Context, id, filename, content string) error
	Fetch(ctx context.Context, id string) (map[string]string, error)
}

// SyncerOptions configures a Syncer.
type SyncerOptions struct {
	// Prompter gates the pull overwrite. If nil, StdioPrompter is used.
	Prompter Prompter

	// Timeout bounds one round-trip. Defaults to DefaultTimeout.
	Timeout time.Duration
}

// Syncer performs user-triggered push and pull against the configured
// remote. Operations are single-flight: a second concurrent call is rejected
// with ErrSyncInProgress. SyncConfig is only mutated on success.
type Syncer struct {
	store    *todo.Store
	prompter Prompter
	timeout  time.Duration
	busy     atomic.Bool

	// dial is swapped out by tests.
	dial func(platform todo.Platform, token string) (API, error)
}

// NewSyncer returns a syncer over the store.
func NewSyncer(store *todo.Store, opts SyncerOptions) *Syncer {
	prompter := opts.Prompter
	if prompter == nil {
		prompter = StdioPrompter{}
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Syncer{
		store:    store,
		prompter: prompter,
		timeout:  timeout,
		dial: func(platform todo.Platform, token string) (API, error) {
			return NewClient(platform, token)
		},
	}
}

// Push uploads the current snapshot (tasks, categories, and settings),
// creating the remote gist on first push and updating it afterwards. On
// success the remote id and LastSync are stored; on any failure nothing
// changes. Push fails with ErrSyncDisabled while sync is turned off.
func (s *Syncer) Push(ctx context.Context) error {
	if !s.busy.CompareAndSwap(false, true) {
		return ErrSyncInProgress
	}
	defer s.busy.Store(false)

	cfg := s.store.SyncConfig()
	if !cfg.Enabled {
		return ErrSyncDisabled
	}
	if cfg.Token == "" {
		return ErrMissingToken
	}

	snap := s.store.Snapshot(true)
	filename, content, err := encodeSnapshot(snap, cfg)
	if err != nil {
		return err
	}

	client, err := s.dial(cfg.Platform, cfg.Token)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if cfg.GistID == "" {
		id, err := client.Create(ctx, filename, content)
		if err != nil {
			return fmt.Errorf("push: %w", err)
		}
		cfg.GistID = id
	} else {
		if err := client.Update(ctx, cfg.GistID, filename, content); err != nil {
			return fmt.Errorf("push: %w", err)
		}
	}

	now := time.Now()
	cfg.LastSync = &now
	s.store.SetSyncConfig(cfg)
	return nil
}

// Pull fetches the remote snapshot and, after an explicit overwrite
// confirmation, replaces the local tasks and categories with it. Declining
// the confirmation or any decode failure leaves local state untouched. Pull
// fails with ErrSyncDisabled while sync is turned off.
func (s *Syncer) Pull(ctx context.Context) error {
	if !s.busy.CompareAndSwap(false, true) {
		return ErrSyncInProgress
	}
	defer s.busy.Store(false)

	cfg := s.store.SyncConfig()
	if !cfg.Enabled {
		return ErrSyncDisabled
	}
	if cfg.Token == "" {
		return ErrMissingToken
	}
	if cfg.GistID == "" {
		return ErrMissingGistID
	}

	client, err := s.dial(cfg.Platform, cfg.Token)
	if err != nil {
		return err
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	files, err := client.Fetch(fetchCtx, cfg.GistID)
	if err != nil {
		return fmt.Errorf("pull: %w", err)
	}

	snap, err := decodeSnapshot(files, cfg)
	if err != nil {
		return err
	}

	confirmed, err := s.prompter.Confirm("Overwrite local tasks and categories with the remote snapshot?")
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}
	if !confirmed {
		return ErrPullDeclined
	}

	if err := s.store.Import(snap); err != nil {
		return fmt.Errorf("apply snapshot: %w", err)
	}

	now := time.Now()
	cfg.LastSync = &now
	s.store.SetSyncConfig(cfg)
	return nil
}

func encodeSnapshot(snap todo.Snapshot, cfg todo.SyncConfig) (filename, content string, err error) {
	if cfg.Encrypt {
		content, err = codec.Encode(snap, cfg.Token)
		if err != nil {
			return "", "", err
		}
		return EncryptedFileName, content, nil
	}

	encoded, err := json.Marshal(snap)
	if err != nil {
		return "", "", fmt.Errorf("encode snapshot: %w", err)
	}
	return PlainFileName, string(encoded), nil
}

// decodeSnapshot looks for the encrypted file first then falls back to the
// plaintext one, so a pull works regardless of how the last push was
// configured.
func decodeSnapshot(files map[string]string, cfg todo.SyncConfig) (todo.Snapshot, error) {
	if content, ok := files[EncryptedFileName]; ok {
		return codec.Decode(content, cfg.Token)
	}
	if content, ok := files[PlainFileName]; ok {
		var snap todo.Snapshot
		if err := json.Unmarshal([]byte(content), &snap); err != nil {
			return todo.Snapshot{}, fmt.Errorf("parse remote snapshot: %w", err)
		}
		return snap, nil
	}
	return todo.Snapshot{}, ErrNoSnapshotFile
}
