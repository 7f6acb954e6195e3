package git

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/inkan-dev/inkan/internal/domain"
	"github.com/inkan-dev/inkan/internal/logging"
)

// TemplateFileName is the commit message file written inside the git directory
const TemplateFileName = "INKAN_COMMIT_TEMPLATE"

// gitOutput runs git in dir and returns its trimmed stdout
func gitOutput(dir, op string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		logging.Logger.Debug("git command failed", "args", args, "stderr", stderr.String(), "error", err)
		return "", &domain.GitError{Op: op, Err: fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))}
	}

	return strings.TrimSpace(string(output)), nil
}

// gitInteractive runs git in dir attached to the terminal
func gitInteractive(dir, op string, args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return &domain.GitError{Op: op, Err: err}
	}
	return nil
}

// rootDirectory returns the top level directory of the repository containing dir
func rootDirectory(dir string) (string, error) {
	root, err := gitOutput(dir, "root directory", "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}

	resolved, err := domain.ResolveAbsolutePath(root, domain.PathDirectory)
	if err != nil {
		return "", &domain.GitError{Op: "root directory", Err: err}
	}

	logging.Logger.Debug("Found git root directory", "root", resolved)
	return resolved, nil
}

// repositoryName returns the base name of the repository root
func repositoryName(dir string) (string, error) {
	root, err := rootDirectory(dir)
	if err != nil {
		return "", err
	}

	name := strings.TrimSpace(filepath.Base(root))
	logging.Logger.Debug("Found git repository name", "name", name)
	return name, nil
}

// branchName returns the currently checked out branch
func branchName(dir string) (string, error) {
	branch, err := gitOutput(dir, "branch name", "branch", "--show-current")
	if err != nil {
		return "", err
	}
	if branch == "" {
		return "", &domain.GitError{Op: "branch name", Err: fmt.Errorf("HEAD is detached")}
	}

	logging.Logger.Debug("Found current branch", "branch", branch)
	return branch, nil
}

// checkout switches to name, creating it first when isNew is set
func checkout(dir, name string, isNew bool) error {
	logging.Logger.Info("Checking out branch", "branch", name, "new", isNew)

	args := []string{"checkout", name}
	if isNew {
		args = []string{"checkout", "-b", name}
	}

	if _, err := gitOutput(dir, "checkout", args...); err != nil {
		return err
	}

	logging.Logger.Info("Successfully checked out branch", "branch", name)
	return nil
}

// templateFilePath returns the commit message file path inside the git directory.
// The git directory is used so the file never shows up as an untracked change.
func templateFilePath(dir string) (string, error) {
	gitDir, err := gitOutput(dir, "template file path", "rev-parse", "--absolute-git-dir")
	if err != nil {
		return "", err
	}
	return filepath.Join(gitDir, TemplateFileName), nil
}
