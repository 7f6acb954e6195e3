package ports

import (
	"context"

	"github.com/inkan-dev/inkan/internal/domain"
)

// BranchContextReader reads recorded branch context
type BranchContextReader interface {
	GetBranch(ctx context.Context, branch, repo string) (*domain.BranchContext, error)
}

// BranchContextWriter records branch context
type BranchContextWriter interface {
	PersistBranch(ctx context.Context, branch domain.BranchContext) error
}

// ConfigurationReader reads named configurations
type ConfigurationReader interface {
	GetActiveConfiguration(ctx context.Context) (*domain.NamedConfiguration, error)
	GetConfiguration(ctx context.Context, key domain.ConfigKey) (*domain.NamedConfiguration, error)
	ListConfigurations(ctx context.Context) ([]domain.NamedConfiguration, error)
}

// ConfigurationWriter registers configurations and switches the active one
type ConfigurationWriter interface {
	PersistConfiguration(ctx context.Context, cfg domain.NamedConfiguration) error
	SetActiveConfiguration(ctx context.Context, key domain.ConfigKey) (*domain.NamedConfiguration, error)
}

// ContextStore is the composite interface
type ContextStore interface {
	BranchContextReader
	BranchContextWriter
	ConfigurationReader
	ConfigurationWriter
	Close() error
}
