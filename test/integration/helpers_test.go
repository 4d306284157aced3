//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gp-oxid/oxskel/internal/prompt"
	"github.com/gp-oxid/oxskel/internal/scaffold"
	"github.com/gp-oxid/oxskel/internal/templates"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir   string // OXSKEL_HOME, holds config.yaml
	WorkDir   string // working directory relative paths resolve against
	Templates string // override templates directory
	Output    *bytes.Buffer
}

// setupTestEnv creates isolated temp directories and points OXSKEL_HOME at
// one of them. The env var is restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:   t.TempDir(),
		WorkDir:   t.TempDir(),
		Templates: t.TempDir(),
		Output:    &bytes.Buffer{},
	}
	t.Setenv("OXSKEL_HOME", env.HomeDir)
	return env
}

// orchestrator returns an orchestrator over the built-in templates, or over
// env.Templates when overrides is set.
func (env *testEnv) orchestrator(t *testing.T, p prompt.Prompter, interactive, overrides bool) *scaffold.Orchestrator {
	t.Helper()

	var (
		store *templates.Store
		err   error
	)
	if overrides {
		store, err = templates.NewDir(env.Templates)
	} else {
		store, err = templates.New()
	}
	if err != nil {
		t.Fatalf("opening template store: %v", err)
	}

	return scaffold.New(store, p,
		scaffold.WithOutput(env.Output),
		scaffold.WithWorkingDir(env.WorkDir),
		scaffold.WithInteractive(interactive),
		scaffold.WithClock(func() time.Time { return time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC) }),
	)
}

// writeTemplate writes an override template into env.Templates.
func writeTemplate(t *testing.T, env *testEnv, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(env.Templates, name), []byte(content), 0644); err != nil {
		t.Fatalf("writing template %s: %v", name, err)
	}
}

// snapshot returns the content of every regular file below root keyed by
// its slash-separated relative path.
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	files := make(map[string]string)
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return files
}

// assertState fails the test when res did not end in want.
func assertState(t *testing.T, res *scaffold.Result, want scaffold.State) {
	t.Helper()
	if res.State != want {
		t.Fatalf("state = %s, want %s (err: %v)", res.State, want, res.Err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
