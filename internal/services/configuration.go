package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/inkan-dev/inkan/internal/domain"
	"github.com/inkan-dev/inkan/internal/logging"
	"github.com/inkan-dev/inkan/internal/paths"
	"github.com/inkan-dev/inkan/internal/ports"
	"github.com/inkan-dev/inkan/internal/template"
)

// ConfigurationService manages the registered template definitions
type ConfigurationService struct {
	configRepo ports.ContextStore
	gitRepo    ports.RepoInspector
	prompter   ports.Prompter
}

// NewConfigurationService creates a new ConfigurationService
func NewConfigurationService(
	configRepo ports.ContextStore,
	gitRepo ports.RepoInspector,
	prompter ports.Prompter,
) *ConfigurationService {
	return &ConfigurationService{
		configRepo: configRepo,
		gitRepo:    gitRepo,
		prompter:   prompter,
	}
}

// Resolve determines the configuration for this invocation and loads its definition
func (s *ConfigurationService) Resolve(ctx context.Context, onceOff string) (*ResolvedConfiguration, error) {
	persisted, effective, err := s.effective(ctx, onceOff)
	if err != nil {
		return nil, err
	}

	def, err := template.LoadDefinition(effective.Path)
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Configuration resolved", "key", effective.Key.String(), "path", effective.Path)
	return &ResolvedConfiguration{
		Configuration: effective,
		Definition:    def,
		Persisted:     *persisted,
	}, nil
}

// Show lists every registered configuration, the active one first
func (s *ConfigurationService) Show(ctx context.Context, onceOff string) (*ConfigOverview, error) {
	persisted, effective, err := s.effective(ctx, onceOff)
	if err != nil {
		return nil, err
	}

	configs, err := s.configRepo.ListConfigurations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list configurations: %w", err)
	}

	sort.SliceStable(configs, func(i, j int) bool {
		return configs[i].IsActive() && !configs[j].IsActive()
	})

	entries := make([]ConfigEntry, 0, len(configs))
	for _, cfg := range configs {
		readable := domain.IsFile(cfg.Path)
		if !readable {
			logging.Logger.Warn("Configuration path is not readable", "key", cfg.Key.String(), "path", cfg.Path)
		}
		entries = append(entries, ConfigEntry{Configuration: cfg, Readable: readable})
	}

	return &ConfigOverview{
		Effective: effective,
		Entries:   entries,
		Persisted: *persisted,
	}, nil
}

// Add registers a user configuration and makes it the active one
func (s *ConfigurationService) Add(ctx context.Context, name, path string) (*domain.NamedConfiguration, error) {
	logging.Logger.Info("Adding configuration", "name", name, "path", path)

	key := domain.ParseConfigKey(name)
	if key.Name == "" && key.IsOverridable() {
		return nil, domain.NewRequiredError("name")
	}
	if !key.IsOverridable() {
		return nil, domain.NewInputValidationError("name", fmt.Sprintf("%s is a reserved configuration name", key))
	}

	absPath, err := domain.ResolveAbsolutePath(paths.ExpandPath(path), domain.PathFile)
	if err != nil {
		return nil, domain.NewInputValidationError("path", err.Error())
	}

	if _, err := template.LoadDefinition(absPath); err != nil {
		return nil, err
	}

	if err := s.configRepo.PersistConfiguration(ctx, domain.NamedConfiguration{
		Key:    key,
		Path:   absPath,
		Status: domain.ConfigDisabled,
	}); err != nil {
		return nil, fmt.Errorf("failed to register configuration: %w", err)
	}

	active, err := s.configRepo.SetActiveConfiguration(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to activate configuration: %w", err)
	}

	logging.Logger.Info("Configuration added", "key", key.String(), "path", absPath)
	return active, nil
}

// Set switches the active configuration. Without a name the user picks one.
func (s *ConfigurationService) Set(ctx context.Context, name string) (*domain.NamedConfiguration, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		selected, err := s.selectConfiguration(ctx)
		if err != nil {
			return nil, err
		}
		name = selected
	}

	logging.Logger.Info("Setting active configuration", "name", name)

	key := domain.ParseConfigKey(name)
	if key.Kind == domain.ConfigOnce || key.Kind == domain.ConfigLocal {
		return nil, domain.NewInputValidationError("name", fmt.Sprintf("%s cannot be activated", key))
	}

	registered, err := s.configRepo.GetConfiguration(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("configuration %s is not registered, see 'inkan config show': %w", key, err)
	}
	if !domain.IsFile(registered.Path) {
		logging.Logger.Warn("Activating configuration with unreadable file", "key", key.String(), "path", registered.Path)
	}

	return s.configRepo.SetActiveConfiguration(ctx, key)
}

// Reset switches the active configuration back to default
func (s *ConfigurationService) Reset(ctx context.Context) (*domain.NamedConfiguration, error) {
	logging.Logger.Info("Resetting active configuration")
	return s.configRepo.SetActiveConfiguration(ctx, domain.DefaultKey)
}

// Templates lists the commit templates of the resolved configuration
func (s *ConfigurationService) Templates(ctx context.Context, onceOff string) ([]TemplateSummary, *ResolvedConfiguration, error) {
	resolved, err := s.Resolve(ctx, onceOff)
	if err != nil {
		return nil, nil, err
	}

	names := resolved.Definition.Names()
	summaries := make([]TemplateSummary, 0, len(names))
	for _, name := range names {
		tmpl := resolved.Definition.Commit[name]
		summaries = append(summaries, TemplateSummary{
			Content:     tmpl.Content,
			Description: tmpl.Description,
			Name:        name,
		})
	}

	return summaries, resolved, nil
}

func (s *ConfigurationService) effective(ctx context.Context, onceOff string) (*domain.NamedConfiguration, domain.NamedConfiguration, error) {
	persisted, err := s.configRepo.GetActiveConfiguration(ctx)
	if err != nil {
		return nil, domain.NamedConfiguration{}, fmt.Errorf("failed to read active configuration: %w", err)
	}

	repoRoot, err := s.gitRepo.RootDirectory()
	if err != nil {
		// Outside a repository there is no local configuration
		logging.Logger.Debug("No repository root, skipping local configuration", "error", err)
		repoRoot = ""
	}

	effective, err := ResolveConfiguration(onceOff, repoRoot, *persisted)
	if err != nil {
		return nil, domain.NamedConfiguration{}, err
	}

	return persisted, effective, nil
}

func (s *ConfigurationService) selectConfiguration(ctx context.Context) (string, error) {
	if !s.prompter.Enabled() {
		return "", domain.NewRequiredError("name")
	}

	configs, err := s.configRepo.ListConfigurations(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list configurations: %w", err)
	}

	options := make([]ports.SelectOption, 0, len(configs))
	for _, cfg := range configs {
		label := cfg.Key.String()
		if cfg.IsActive() {
			label += " (active)"
		}
		options = append(options, ports.SelectOption{Label: label, Value: cfg.Key.String()})
	}

	return s.prompter.Select("Select configuration", options)
}
