package cmd

import (
	"context"
	"fmt"

	adaptergit "github.com/inkan-dev/inkan/internal/adapters/git"
	adapterprompt "github.com/inkan-dev/inkan/internal/adapters/prompt"
	adapterstorage "github.com/inkan-dev/inkan/internal/adapters/storage"
	"github.com/inkan-dev/inkan/internal/logging"
	"github.com/inkan-dev/inkan/internal/paths"
	"github.com/inkan-dev/inkan/internal/ports"
	"github.com/inkan-dev/inkan/internal/services"
	"github.com/inkan-dev/inkan/internal/template"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	BranchService        *services.BranchService
	CommitService        *services.CommitService
	ConfigurationService *services.ConfigurationService

	// Internal - for cleanup only
	contextStore ports.ContextStore
}

// NewContainer opens the store, seeds the bundled definitions and wires services
func NewContainer(promptEnabled bool) (*Container, error) {
	contextStore, err := adapterstorage.NewSQLiteRepository(paths.GetDBPath())
	if err != nil {
		return nil, err
	}

	defaultPath, conventionalPath, err := template.MaterializeDefaults(paths.GetTemplatesPath())
	if err != nil {
		contextStore.Close()
		return nil, err
	}

	if err := contextStore.SeedDefaults(context.Background(), defaultPath, conventionalPath); err != nil {
		contextStore.Close()
		return nil, fmt.Errorf("failed to seed default configurations: %w", err)
	}

	gitRepo := adaptergit.NewCLIRepository()
	prompter := adapterprompt.NewHuhPrompter(promptEnabled)
	logging.Logger.Debug("Prompter created", "enabled", prompter.Enabled())

	return &Container{
		BranchService:        services.NewBranchService(contextStore, gitRepo, prompter),
		CommitService:        services.NewCommitService(contextStore, gitRepo, prompter),
		ConfigurationService: services.NewConfigurationService(contextStore, gitRepo, prompter),
		contextStore:         contextStore,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.contextStore != nil {
		return c.contextStore.Close()
	}
	return nil
}
