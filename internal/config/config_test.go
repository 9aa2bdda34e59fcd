package config

import (
	"os"
	"path/filepath"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()

	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(orig) })
}

func TestLoad_NoConfigFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if cfg.Data.Dir != "" || cfg.Data.Backend != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoad_LocalOverridesGlobal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	globalDir := filepath.Join(home, ".config", "mytodo")
	if err := os.MkdirAll(globalDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	global := "[data]\ndir = \"/global/data\"\nbackend = \"file\"\n"
	if err := os.WriteFile(filepath.Join(globalDir, "config.toml"), []byte(global), 0o644); err != nil {
		t.Fatalf("failed to write global config: %v", err)
	}

	workDir := t.TempDir()
	local := "[data]\ndir = \"/local/data\"\n"
	if err := os.WriteFile(filepath.Join(workDir, "mytodo.toml"), []byte(local), 0o644); err != nil {
		t.Fatalf("failed to write local config: %v", err)
	}
	chdir(t, workDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if cfg.Data.Dir != "/local/data" {
		t.Errorf("expected local dir to win, got %q", cfg.Data.Dir)
	}
	// Keys the local file does not define fall through to the global one.
	if cfg.Data.Backend != "file" {
		t.Errorf("expected global backend to survive, got %q", cfg.Data.Backend)
	}
}

func TestDataDir_EnvOverride(t *testing.T) {
	t.Setenv("MYTODO_DATA_DIR", "/env/data")

	cfg := &Config{}
	cfg.Data.Dir = "/configured/data"

	dir, err := cfg.DataDir()
	if err != nil {
		t.Fatalf("failed to resolve data dir: %v", err)
	}
	if dir != "/env/data" {
		t.Errorf("expected env override to win, got %q", dir)
	}
}

func TestDataDir_Default(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("MYTODO_DATA_DIR", "")

	cfg := &Config{}
	dir, err := cfg.DataDir()
	if err != nil {
		t.Fatalf("failed to resolve data dir: %v", err)
	}
	want := filepath.Join(home, ".local", "share", "mytodo")
	if dir != want {
		t.Errorf("expected %q, got %q", want, dir)
	}
}
