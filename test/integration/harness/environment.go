package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own INKAN_HOME.
type TestEnvironment struct {
	InkanHome string
	extraEnv  map[string]string
	tb        testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp INKAN_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	inkanHome := filepath.Join(tb.TempDir(), "inkan-home")
	if err := os.MkdirAll(inkanHome, 0755); err != nil {
		tb.Fatalf("Failed to create INKAN_HOME: %v", err)
	}

	return &TestEnvironment{
		InkanHome: inkanHome,
		extraEnv:  make(map[string]string),
		tb:        tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out INKAN_* variables and sets:
//   - INKAN_HOME to the temp directory
//   - INKAN_DEBUG to empty string (disables debug logging)
//   - INKAN_PROMPT to disable
//   - GIT_EDITOR to "true" (no-op command) and a fixed git identity
func (e *TestEnvironment) Environ() []string {
	fixed := map[string]string{
		"INKAN_HOME":          e.InkanHome,
		"INKAN_DEBUG":         "",
		"INKAN_PROMPT":        "disable",
		"GIT_EDITOR":          "true",
		"GIT_AUTHOR_NAME":     "Test User",
		"GIT_AUTHOR_EMAIL":    "test@example.com",
		"GIT_COMMITTER_NAME":  "Test User",
		"GIT_COMMITTER_EMAIL": "test@example.com",
	}

	env := make([]string, 0, len(os.Environ())+len(fixed)+len(e.extraEnv))

	// Filter out existing INKAN_* variables and any we're overriding
	for _, kv := range os.Environ() {
		key := strings.SplitN(kv, "=", 2)[0]
		if strings.HasPrefix(key, "INKAN_") {
			continue
		}
		if _, ok := fixed[key]; ok {
			continue
		}
		if _, ok := e.extraEnv[key]; ok {
			continue
		}
		env = append(env, kv)
	}

	for k, v := range fixed {
		if _, ok := e.extraEnv[k]; ok {
			continue
		}
		env = append(env, k+"="+v)
	}

	// Add extra environment variables
	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.InkanHome, "inkan.db")
}

// TemplatesPath returns the directory the bundled definitions are written to.
func (e *TestEnvironment) TemplatesPath() string {
	return filepath.Join(e.InkanHome, "templates")
}

// SettingsPath returns the path to settings.json.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.InkanHome, "settings.json")
}

// TempDir returns the root temp directory used for this test environment.
func (e *TestEnvironment) TempDir() string {
	return filepath.Dir(e.InkanHome)
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// WriteFile writes content to a file under the test temp dir and returns its path.
func (e *TestEnvironment) WriteFile(name, content string) string {
	e.tb.Helper()
	path := filepath.Join(e.TempDir(), name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.tb.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}
