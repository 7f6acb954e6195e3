package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/inkan-dev/inkan/internal/domain"
	"github.com/inkan-dev/inkan/internal/paths"
	"github.com/inkan-dev/inkan/internal/ports"
	portsmocks "github.com/inkan-dev/inkan/internal/ports/mocks"
)

func newConfigurationService(t *testing.T) (*ConfigurationService, *portsmocks.MockContextStore, *portsmocks.MockGitRepository, *portsmocks.MockPrompter) {
	store := portsmocks.NewMockContextStore(t)
	gitRepo := portsmocks.NewMockGitRepository(t)
	prompter := portsmocks.NewMockPrompter(t)
	return NewConfigurationService(store, gitRepo, prompter), store, gitRepo, prompter
}

func TestConfigurationService_ResolveUsesLocalFile(t *testing.T) {
	service, store, gitRepo, _ := newConfigurationService(t)

	repoRoot := t.TempDir()
	local := writeDefinition(t, paths.GetLocalConfigPath(repoRoot))
	persistedPath := writeDefinition(t, filepath.Join(t.TempDir(), "default.yml"))

	store.EXPECT().GetActiveConfiguration(mock.Anything).
		Return(&domain.NamedConfiguration{Key: domain.DefaultKey, Path: persistedPath, Status: domain.ConfigActive}, nil)
	gitRepo.EXPECT().RootDirectory().Return(repoRoot, nil)

	resolved, err := service.Resolve(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, domain.LocalKey, resolved.Configuration.Key)
	assert.Equal(t, local, resolved.Configuration.Path)
	assert.Equal(t, domain.DefaultKey, resolved.Persisted.Key)
	assert.True(t, resolved.Overridden())
	assert.Equal(t, []string{"feat"}, resolved.Definition.Names())
}

func TestConfigurationService_ResolveOutsideRepository(t *testing.T) {
	service, store, gitRepo, _ := newConfigurationService(t)
	persistedPath := writeDefinition(t, filepath.Join(t.TempDir(), "team.yml"))

	store.EXPECT().GetActiveConfiguration(mock.Anything).
		Return(&domain.NamedConfiguration{Key: domain.UserKey("team"), Path: persistedPath, Status: domain.ConfigActive}, nil)
	gitRepo.EXPECT().RootDirectory().Return("", &domain.GitError{Op: "rev-parse", Err: assert.AnError})

	resolved, err := service.Resolve(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, domain.UserKey("team"), resolved.Configuration.Key)
	assert.False(t, resolved.Overridden())
}

func TestConfigurationService_ResolveNoActiveConfiguration(t *testing.T) {
	service, store, _, _ := newConfigurationService(t)

	store.EXPECT().GetActiveConfiguration(mock.Anything).Return(nil, domain.NewNotFoundError("active config"))

	_, err := service.Resolve(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConfigurationService_ResolveUnreadableDefinition(t *testing.T) {
	service, store, gitRepo, _ := newConfigurationService(t)

	store.EXPECT().GetActiveConfiguration(mock.Anything).
		Return(&domain.NamedConfiguration{Key: domain.DefaultKey, Path: "/does/not/exist.yml", Status: domain.ConfigActive}, nil)
	gitRepo.EXPECT().RootDirectory().Return(t.TempDir(), nil)

	_, err := service.Resolve(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestConfigurationService_Show(t *testing.T) {
	service, store, gitRepo, _ := newConfigurationService(t)
	teamPath := writeDefinition(t, filepath.Join(t.TempDir(), "team.yml"))

	active := domain.NamedConfiguration{Key: domain.UserKey("team"), Path: teamPath, Status: domain.ConfigActive}
	store.EXPECT().GetActiveConfiguration(mock.Anything).Return(&active, nil)
	store.EXPECT().ListConfigurations(mock.Anything).Return([]domain.NamedConfiguration{
		{Key: domain.ConventionalKey, Path: "/gone/conventional.yml", Status: domain.ConfigDisabled},
		{Key: domain.DefaultKey, Path: teamPath, Status: domain.ConfigDisabled},
		active,
	}, nil)
	gitRepo.EXPECT().RootDirectory().Return(t.TempDir(), nil)

	overview, err := service.Show(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, overview.Entries, 3)
	assert.Equal(t, active, overview.Entries[0].Configuration)
	assert.True(t, overview.Entries[0].Readable)
	assert.Equal(t, domain.ConventionalKey, overview.Entries[1].Configuration.Key)
	assert.False(t, overview.Entries[1].Readable)
	assert.Equal(t, domain.DefaultKey, overview.Entries[2].Configuration.Key)
	assert.False(t, overview.Overridden())
}

func TestConfigurationService_ShowOnceOffOverride(t *testing.T) {
	service, store, gitRepo, _ := newConfigurationService(t)
	onceOff := writeDefinition(t, filepath.Join(t.TempDir(), "once.yml"))

	active := domain.NamedConfiguration{Key: domain.DefaultKey, Path: "/cfg/default.yml", Status: domain.ConfigActive}
	store.EXPECT().GetActiveConfiguration(mock.Anything).Return(&active, nil)
	store.EXPECT().ListConfigurations(mock.Anything).Return([]domain.NamedConfiguration{active}, nil)
	gitRepo.EXPECT().RootDirectory().Return(t.TempDir(), nil)

	overview, err := service.Show(context.Background(), onceOff)

	require.NoError(t, err)
	assert.True(t, overview.Overridden())
	assert.Equal(t, domain.OnceKey, overview.Effective.Key)
}

func TestConfigurationService_Add(t *testing.T) {
	service, store, _, _ := newConfigurationService(t)
	path := writeDefinition(t, filepath.Join(t.TempDir(), "team.yml"))

	store.EXPECT().PersistConfiguration(mock.Anything, domain.NamedConfiguration{
		Key:    domain.UserKey("team"),
		Path:   path,
		Status: domain.ConfigDisabled,
	}).Return(nil)
	store.EXPECT().SetActiveConfiguration(mock.Anything, domain.UserKey("team")).
		Return(&domain.NamedConfiguration{Key: domain.UserKey("team"), Path: path, Status: domain.ConfigActive}, nil)

	active, err := service.Add(context.Background(), " team ", path)

	require.NoError(t, err)
	assert.True(t, active.IsActive())
	assert.Equal(t, path, active.Path)
}

func TestConfigurationService_AddRejectsInvalidInput(t *testing.T) {
	dir := t.TempDir()
	valid := writeDefinition(t, filepath.Join(dir, "team.yml"))
	broken := filepath.Join(dir, "broken.yml")
	require.NoError(t, os.WriteFile(broken, []byte("commit: [unterminated"), 0644))

	tests := []struct {
		name    string
		key     string
		path    string
		wantErr error
	}{
		{"reserved default", "default", valid, domain.ErrValidation},
		{"reserved conventional", "conventional", valid, domain.ErrValidation},
		{"reserved once", "once", valid, domain.ErrValidation},
		{"reserved local", "local", valid, domain.ErrValidation},
		{"empty name", "  ", valid, domain.ErrRequired},
		{"missing file", "team", filepath.Join(dir, "missing.yml"), domain.ErrValidation},
		{"directory", "team", dir, domain.ErrValidation},
		{"unparsable definition", "team", broken, domain.ErrConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _, _ := newConfigurationService(t)

			_, err := service.Add(context.Background(), tt.key, tt.path)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfigurationService_Set(t *testing.T) {
	t.Run("explicit name", func(t *testing.T) {
		service, store, _, _ := newConfigurationService(t)
		store.EXPECT().GetConfiguration(mock.Anything, domain.ConventionalKey).
			Return(&domain.NamedConfiguration{Key: domain.ConventionalKey, Path: "/cfg/conventional.yml", Status: domain.ConfigDisabled}, nil)
		store.EXPECT().SetActiveConfiguration(mock.Anything, domain.ConventionalKey).
			Return(&domain.NamedConfiguration{Key: domain.ConventionalKey, Status: domain.ConfigActive}, nil)

		active, err := service.Set(context.Background(), "conventional")

		require.NoError(t, err)
		assert.Equal(t, domain.ConventionalKey, active.Key)
	})

	t.Run("unknown name leaves the active configuration alone", func(t *testing.T) {
		service, store, _, _ := newConfigurationService(t)
		store.EXPECT().GetConfiguration(mock.Anything, domain.UserKey("nope")).
			Return(nil, domain.NewNotFoundError("config nope"))

		_, err := service.Set(context.Background(), "nope")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Contains(t, err.Error(), "configuration nope is not registered")
		store.AssertNotCalled(t, "SetActiveConfiguration", mock.Anything, mock.Anything)
	})

	t.Run("local key cannot be activated", func(t *testing.T) {
		service, _, _, _ := newConfigurationService(t)

		_, err := service.Set(context.Background(), "local")

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("once-off key cannot be activated", func(t *testing.T) {
		service, _, _, _ := newConfigurationService(t)

		_, err := service.Set(context.Background(), "once")

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("prompt disabled", func(t *testing.T) {
		service, _, _, prompter := newConfigurationService(t)
		prompter.EXPECT().Enabled().Return(false)

		_, err := service.Set(context.Background(), "")

		assert.ErrorIs(t, err, domain.ErrRequired)
	})

	t.Run("interactive selection", func(t *testing.T) {
		service, store, _, prompter := newConfigurationService(t)
		prompter.EXPECT().Enabled().Return(true)
		store.EXPECT().ListConfigurations(mock.Anything).Return([]domain.NamedConfiguration{
			{Key: domain.ConventionalKey, Status: domain.ConfigDisabled},
			{Key: domain.DefaultKey, Status: domain.ConfigActive},
		}, nil)
		prompter.EXPECT().Select("Select configuration", []ports.SelectOption{
			{Label: "conventional", Value: "conventional"},
			{Label: "default (active)", Value: "default"},
		}).Return("conventional", nil)
		store.EXPECT().GetConfiguration(mock.Anything, domain.ConventionalKey).
			Return(&domain.NamedConfiguration{Key: domain.ConventionalKey, Status: domain.ConfigDisabled}, nil)
		store.EXPECT().SetActiveConfiguration(mock.Anything, domain.ConventionalKey).
			Return(&domain.NamedConfiguration{Key: domain.ConventionalKey, Status: domain.ConfigActive}, nil)

		active, err := service.Set(context.Background(), "")

		require.NoError(t, err)
		assert.Equal(t, domain.ConventionalKey, active.Key)
	})

	t.Run("selection cancelled", func(t *testing.T) {
		service, store, _, prompter := newConfigurationService(t)
		prompter.EXPECT().Enabled().Return(true)
		store.EXPECT().ListConfigurations(mock.Anything).Return([]domain.NamedConfiguration{
			{Key: domain.DefaultKey, Status: domain.ConfigActive},
		}, nil)
		prompter.EXPECT().Select(mock.Anything, mock.Anything).Return("", domain.NewCancelledError())

		_, err := service.Set(context.Background(), "")

		assert.ErrorIs(t, err, domain.ErrCancelled)
	})
}

func TestConfigurationService_Reset(t *testing.T) {
	service, store, _, _ := newConfigurationService(t)
	store.EXPECT().SetActiveConfiguration(mock.Anything, domain.DefaultKey).
		Return(&domain.NamedConfiguration{Key: domain.DefaultKey, Status: domain.ConfigActive}, nil)

	active, err := service.Reset(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultKey, active.Key)
}

func TestConfigurationService_Templates(t *testing.T) {
	service, store, gitRepo, _ := newConfigurationService(t)
	path := filepath.Join(t.TempDir(), "team.yml")
	require.NoError(t, os.WriteFile(path, []byte(`commit:
  fix:
    description: Bug fix
    content: "fix: {message}"
  chore:
    description: Housekeeping
    content: "chore: {message}"
`), 0644))

	store.EXPECT().GetActiveConfiguration(mock.Anything).
		Return(&domain.NamedConfiguration{Key: domain.UserKey("team"), Path: path, Status: domain.ConfigActive}, nil)
	gitRepo.EXPECT().RootDirectory().Return(t.TempDir(), nil)

	summaries, resolved, err := service.Templates(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, domain.UserKey("team"), resolved.Configuration.Key)
	assert.Equal(t, []TemplateSummary{
		{Name: "chore", Description: "Housekeeping", Content: "chore: {message}"},
		{Name: "fix", Description: "Bug fix", Content: "fix: {message}"},
	}, summaries)
}
