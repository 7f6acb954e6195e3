package harness

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestGitSetup holds paths for a git test environment.
// It creates a bare repo (simulating remote/origin) and a clone with origin configured.
type TestGitSetup struct {
	BareRepoPath string // Acts as "origin" remote
	ClonePath    string // Working repo with origin configured
	tb           testing.TB
}

// NewTestGitSetup creates a git environment with origin.
//  1. Creates a bare repo (simulates remote/origin)
//  2. Clones it into a directory named after the repository
//  3. Creates initial commit on main so branches work
//
// Setup structure:
//
//	tb.TempDir()/
//	├── bare/       <- git init --bare (acts as origin)
//	└── <name>/     <- git clone bare/ <name>/
func NewTestGitSetup(tb testing.TB, name string) *TestGitSetup {
	tb.Helper()

	baseDir := tb.TempDir()
	bareRepoPath := filepath.Join(baseDir, "bare")
	clonePath := filepath.Join(baseDir, name)

	runGitCommand(tb, baseDir, "init", "--bare", bareRepoPath)
	runGitCommand(tb, baseDir, "clone", bareRepoPath, clonePath)

	runGitCommand(tb, clonePath, "config", "user.email", "test@example.com")
	runGitCommand(tb, clonePath, "config", "user.name", "Test User")

	dummyFile := filepath.Join(clonePath, "README.md")
	if err := os.WriteFile(dummyFile, []byte("# Test Repo\n"), 0644); err != nil {
		tb.Fatalf("Failed to create dummy file: %v", err)
	}
	runGitCommand(tb, clonePath, "add", "README.md")
	runGitCommand(tb, clonePath, "commit", "-m", "Initial commit")

	// Ensure branch is named "main" (git might default to "master")
	runGitCommand(tb, clonePath, "branch", "-M", "main")
	runGitCommand(tb, clonePath, "push", "-u", "origin", "main")

	return &TestGitSetup{
		BareRepoPath: bareRepoPath,
		ClonePath:    clonePath,
		tb:           tb,
	}
}

// CreateBranch creates a branch in the working repo.
func (g *TestGitSetup) CreateBranch(name string) {
	g.tb.Helper()
	runGitCommand(g.tb, g.ClonePath, "branch", name)
}

// CurrentBranch returns the branch checked out in the working repo.
func (g *TestGitSetup) CurrentBranch() string {
	g.tb.Helper()
	return GitOutput(g.tb, g.ClonePath, "branch", "--show-current")
}

// LastCommitMessage returns the full message of HEAD.
func (g *TestGitSetup) LastCommitMessage() string {
	g.tb.Helper()
	return GitOutput(g.tb, g.ClonePath, "log", "-1", "--format=%B")
}

// StageFile writes a file in the working repo and stages it.
func (g *TestGitSetup) StageFile(name, content string) {
	g.tb.Helper()
	if err := os.WriteFile(filepath.Join(g.ClonePath, name), []byte(content), 0644); err != nil {
		g.tb.Fatalf("Failed to write %s: %v", name, err)
	}
	runGitCommand(g.tb, g.ClonePath, "add", name)
}

// WriteLocalConfig writes a .inkan.yml at the repository root.
func (g *TestGitSetup) WriteLocalConfig(content string) {
	g.tb.Helper()
	if err := os.WriteFile(filepath.Join(g.ClonePath, ".inkan.yml"), []byte(content), 0644); err != nil {
		g.tb.Fatalf("Failed to write local config: %v", err)
	}
}

// RunGitCommand executes a git command in the specified directory (exported for tests).
func RunGitCommand(tb testing.TB, dir string, args ...string) {
	runGitCommand(tb, dir, args...)
}

// GitOutput executes a git command and returns its trimmed output.
func GitOutput(tb testing.TB, dir string, args ...string) string {
	tb.Helper()

	output, err := gitCommand(dir, args...).CombinedOutput()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, dir, err, output)
	}
	return strings.TrimSpace(string(output))
}

// runGitCommand executes a git command in the specified directory.
func runGitCommand(tb testing.TB, dir string, args ...string) {
	tb.Helper()
	GitOutput(tb, dir, args...)
}

func gitCommand(dir string, args ...string) *exec.Cmd {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)
	return cmd
}
