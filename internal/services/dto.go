package services

import (
	"github.com/inkan-dev/inkan/internal/domain"
	"github.com/inkan-dev/inkan/internal/template"
)

// CheckoutParams contains parameters for creating or switching a branch
type CheckoutParams struct {
	BranchName string
	Definition *template.Definition
	Link       string
	Scope      string
	Ticket     string
}

// RecordContextParams contains the context recorded for the current branch
type RecordContextParams struct {
	Link   string
	Scope  string
	Ticket string
}

// BranchResult is the git branch together with the context recorded for it
type BranchResult struct {
	Branch  string
	Context domain.BranchContext
}

// CommitParams contains parameters for committing with a rendered template
type CommitParams struct {
	Definition   *template.Definition
	Link         string
	Message      string
	Scope        string
	TemplateName string
	Ticket       string
}

// CommitResult describes a finished commit
type CommitResult struct {
	Message      string
	TemplateName string
	TemplatePath string
}

// ResolvedConfiguration is the configuration backing the current invocation
type ResolvedConfiguration struct {
	Configuration domain.NamedConfiguration
	Definition    *template.Definition
	Persisted     domain.NamedConfiguration
}

// Overridden reports whether a once-off or local file replaced the persisted choice
func (r *ResolvedConfiguration) Overridden() bool {
	return r.Configuration.Key != r.Persisted.Key
}

// ConfigEntry is one registered configuration as shown to the user
type ConfigEntry struct {
	Configuration domain.NamedConfiguration
	Readable      bool
}

// ConfigOverview lists the registered configurations and the effective one
type ConfigOverview struct {
	Effective domain.NamedConfiguration
	Entries   []ConfigEntry
	Persisted domain.NamedConfiguration
}

// Overridden reports whether the effective configuration is not the persisted one
func (o *ConfigOverview) Overridden() bool {
	return o.Effective.Key != o.Persisted.Key
}

// TemplateSummary is a commit template name and description
type TemplateSummary struct {
	Content     string
	Description string
	Name        string
}
