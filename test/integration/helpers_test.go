//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/tinvalidate/create-validator/internal/branding"
	"github.com/tinvalidate/create-validator/internal/config"
	"github.com/tinvalidate/create-validator/internal/scaffold"
	"github.com/tinvalidate/create-validator/internal/templates"
)

// testEnv holds paths to an isolated project.
type testEnv struct {
	ProjectDir string // Working directory, holds .create-validator.yaml
	SrcDir     string // Validator root (config "root")
}

// setupTestEnv creates a project with an empty src/ and blanks any
// CREATE_VALIDATOR_* settings inherited from the caller's environment.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{ProjectDir: t.TempDir()}
	env.SrcDir = filepath.Join(env.ProjectDir, "src")

	// Empty values count as unset for config lookups.
	for _, key := range config.Keys() {
		t.Setenv(branding.EnvVar(key), "")
	}

	if err := os.MkdirAll(env.SrcDir, 0755); err != nil {
		t.Fatalf("creating src: %v", err)
	}
	return env
}

// newMaterializer wires the materializer the way the CLI does, from the
// project's config.
func newMaterializer(t *testing.T, env *testEnv) *scaffold.Materializer {
	t.Helper()

	afs := afero.NewOsFs()
	cfg, err := config.Load(afs, env.ProjectDir)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	root := cfg.Root
	if !filepath.IsAbs(root) {
		root = filepath.Join(env.ProjectDir, root)
	}

	src := templates.Embedded("dev")
	if cfg.TemplatesDir != "" {
		src = templates.Dir(afs, filepath.Join(env.ProjectDir, cfg.TemplatesDir), "dev")
	}
	return scaffold.New(afs, root, src)
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readFile returns the contents of path, failing the test if unreadable.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
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
