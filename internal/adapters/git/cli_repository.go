package git

import (
	"github.com/inkan-dev/inkan/internal/ports"
)

// CLIRepository implements ports.GitRepository using local git commands
type CLIRepository struct {
	dir string
}

// Verify interface compliance at compile time
var _ ports.GitRepository = (*CLIRepository)(nil)

// NewCLIRepository creates a CLIRepository for the current working directory
func NewCLIRepository() *CLIRepository {
	return &CLIRepository{}
}

// NewCLIRepositoryForDir creates a CLIRepository running git inside dir
func NewCLIRepositoryForDir(dir string) *CLIRepository {
	return &CLIRepository{dir: dir}
}

// RepoInspector methods

// BranchName implements RepoInspector.BranchName
func (r *CLIRepository) BranchName() (string, error) {
	return branchName(r.dir)
}

// RepositoryName implements RepoInspector.RepositoryName
func (r *CLIRepository) RepositoryName() (string, error) {
	return repositoryName(r.dir)
}

// RootDirectory implements RepoInspector.RootDirectory
func (r *CLIRepository) RootDirectory() (string, error) {
	return rootDirectory(r.dir)
}

// TemplateFilePath implements RepoInspector.TemplateFilePath
func (r *CLIRepository) TemplateFilePath() (string, error) {
	return templateFilePath(r.dir)
}

// BranchSwitcher methods

// Checkout implements BranchSwitcher.Checkout
func (r *CLIRepository) Checkout(name string, isNew bool) error {
	return checkout(r.dir, name, isNew)
}

// Committer methods

// CommitWithTemplate implements Committer.CommitWithTemplate
func (r *CLIRepository) CommitWithTemplate(path string, allowEmptyMessage bool) error {
	return commitWithTemplate(r.dir, path, allowEmptyMessage)
}

// WriteCommitMessageFile implements Committer.WriteCommitMessageFile
func (r *CLIRepository) WriteCommitMessageFile(path, contents string) error {
	return writeCommitMessageFile(path, contents)
}

// BranchValidator methods

// SanitizeBranchName implements BranchValidator.SanitizeBranchName
func (r *CLIRepository) SanitizeBranchName(name string) (string, error) {
	return sanitizeBranchName(name)
}

// ValidateBranchName implements BranchValidator.ValidateBranchName
func (r *CLIRepository) ValidateBranchName(name string) error {
	return validateBranchName(name)
}
