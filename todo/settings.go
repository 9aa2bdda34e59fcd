package todo

import "time"

// Settings holds display preferences. They persist independently of task
// data.
type Settings struct {
	// Theme selects the display theme.
	Theme Theme `json:"theme"`

	// Language is a locale code such as "en" or "zh".
	Language string `json:"lang"`
}

// DefaultSettings returns the settings used before any are saved.
func DefaultSettings() Settings {
	return Settings{Theme: ThemeSystem, Language: "en"}
}

// SyncConfig holds the remote sync configuration. It persists independently
// of task data and settings.
type SyncConfig struct {
	// Enabled records whether the user has turned sync on.
	Enabled bool `json:"enabled"`

	// Platform selects the remote gist flavor.
	Platform Platform `json:"platform"`

	// Token is the user-supplied access token for the remote API.
	Token string `json:"token"`

	// GistID is the remote snapshot id. Empty until the first push.
	GistID string `json:"gistId"`

	// Encrypt obfuscates the snapshot with the token before upload.
	Encrypt bool `json:"encrypt"`

	// LastSync is when the last successful push or pull completed.
	LastSync *time.Time `json:"lastSync,omitempty"`
}

// DefaultSyncConfig returns the sync configuration used before any is saved.
func DefaultSyncConfig() SyncConfig {
	return SyncConfig{Platform: PlatformGitHub}
}
