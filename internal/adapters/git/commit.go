package git

import (
	"fmt"
	"os"

	"github.com/inkan-dev/inkan/internal/domain"
	"github.com/inkan-dev/inkan/internal/logging"
)

// writeCommitMessageFile writes the rendered message to path
func writeCommitMessageFile(path, contents string) error {
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return &domain.GitError{Op: "write commit template", Err: err}
	}
	logging.Logger.Debug("Commit template written", "path", path)
	return nil
}

// commitWithTemplate runs git commit with the message file as template so the
// user can review it in their editor
func commitWithTemplate(dir, path string, allowEmptyMessage bool) error {
	if !domain.IsFile(path) {
		return &domain.GitError{Op: "commit", Err: fmt.Errorf("invalid template provided: %s", path)}
	}

	args := []string{"commit", "--template", path}

	// git aborts when the message is left identical to the template
	if allowEmptyMessage {
		logging.Logger.Info("Allowing an empty message on commit")
		args = append(args, "--allow-empty-message")
	}

	logging.Logger.Info("Committing with template", "path", path)
	return gitInteractive(dir, "commit", args...)
}
