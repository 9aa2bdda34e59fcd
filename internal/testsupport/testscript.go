// Package testsupport provides shared helpers for testscript-based CLI tests.
package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/mytodo/mytodo/todo"
	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce  sync.Once
	mytodoPath string
	buildErr   error
)

// BuildMytodo builds the mytodo binary once and returns its path.
func BuildMytodo(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "mytodo-bin-")
		if err != nil {
			buildErr = err
			return
		}

		mytodoPath = filepath.Join(binDir, "mytodo")
		cmd := exec.Command("go", "build", "-o", mytodoPath, "./cmd/mytodo")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build mytodo: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return mytodoPath
}

// SetupScriptEnv configures common environment variables for testscript.
// Each script gets its own data directory and a HOME without config files.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("MYTODO", BuildMytodo(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("MYTODO_DATA_DIR", filepath.Join(env.WorkDir, "data"))
	env.Setenv("NO_COLOR", "1")
	return nil
}

// CmdTaskID finds a task by title in a JSON list and stores its ID in an
// env var.
func CmdTaskID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("taskid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: taskid FILE TITLE VAR")
	}

	var tasks []todo.Task
	data := ts.ReadFile(args[0])
	if err := json.Unmarshal([]byte(data), &tasks); err != nil {
		ts.Fatalf("parse task list: %v", err)
	}

	title := args[1]
	for _, task := range tasks {
		if task.Title == title {
			ts.Setenv(args[2], task.ID)
			return
		}
	}

	ts.Fatalf("task with title %q not found", title)
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
