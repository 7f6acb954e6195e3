package ports

// RepoInspector queries the repository of the working directory
type RepoInspector interface {
	BranchName() (string, error)
	RepositoryName() (string, error)
	RootDirectory() (string, error)
	TemplateFilePath() (string, error)
}

// BranchSwitcher creates or switches branches
type BranchSwitcher interface {
	Checkout(name string, isNew bool) error
}

// Committer writes the commit message file and commits with it
type Committer interface {
	CommitWithTemplate(path string, allowEmptyMessage bool) error
	WriteCommitMessageFile(path, contents string) error
}

// BranchValidator validates and sanitizes branch names
type BranchValidator interface {
	SanitizeBranchName(name string) (string, error)
	ValidateBranchName(name string) error
}

// GitRepository is the composite interface
type GitRepository interface {
	BranchSwitcher
	BranchValidator
	Committer
	RepoInspector
}
