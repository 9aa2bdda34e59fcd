// Package config handles loading mytodo.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the mytodo.toml configuration file.
type Config struct {
	Data Data `toml:"data"`
}

// Data contains storage-related configuration.
type Data struct {
	// Dir overrides the default data directory
	// (~/.local/share/mytodo).
	Dir string `toml:"dir"`

	// Backend selects the storage backend: auto (default), sqlite,
	// or file.
	Backend string `toml:"backend"`
}

// Load loads configuration from the working directory and the global config
// file. Returns an empty config if no config files exist.
func Load() (*Config, error) {
	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, _, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	localCfg, localMeta, err := loadConfigFile(filepath.Join(cwd, "mytodo.toml"))
	if err != nil {
		return nil, err
	}

	merged := Config{}
	merged.Data.Dir = mergeString(localMeta.IsDefined("data", "dir"), localCfg.Data.Dir, globalCfg.Data.Dir)
	merged.Data.Backend = mergeString(localMeta.IsDefined("data", "backend"), localCfg.Data.Backend, globalCfg.Data.Backend)
	return &merged, nil
}

// DataDir returns the configured data directory, or the default under the
// user's home when none is set. The MYTODO_DATA_DIR environment variable
// overrides both.
func (c *Config) DataDir() (string, error) {
	if env := os.Getenv("MYTODO_DATA_DIR"); env != "" {
		return env, nil
	}
	if c.Data.Dir != "" {
		return c.Data.Dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "mytodo"), nil
}

func globalConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "mytodo", "config.toml"), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeString(localDefined bool, localValue, globalValue string) string {
	value := globalValue
	if localDefined {
		value = localValue
	}
	return strings.TrimSpace(value)
}
