package storage

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkan-dev/inkan/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "inkan.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func seedTestRepository(t *testing.T, repo *SQLiteRepository) {
	t.Helper()
	require.NoError(t, repo.SeedDefaults(context.Background(), "/templates/default.yml", "/templates/conventional.yml"))
}

func activeKeys(t *testing.T, repo *SQLiteRepository) []string {
	t.Helper()
	configs, err := repo.ListConfigurations(context.Background())
	require.NoError(t, err)

	var keys []string
	for _, cfg := range configs {
		if cfg.IsActive() {
			keys = append(keys, cfg.Key.String())
		}
	}
	return keys
}

func TestPersistBranch_RoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	branch := domain.NewBranchContext("feature/login", "inkan", "T-100", "auth", "https://tracker/T-100")
	branch.Data = []byte{0x01, 0x02}
	require.NoError(t, repo.PersistBranch(ctx, branch))

	got, err := repo.GetBranch(ctx, "  feature/login\n", " inkan ")
	require.NoError(t, err)

	assert.Equal(t, "inkan-feature/login", got.Name)
	assert.Equal(t, "T-100", got.Ticket)
	assert.Equal(t, "auth", got.Scope)
	assert.Equal(t, "https://tracker/T-100", got.Link)
	assert.Equal(t, []byte{0x01, 0x02}, got.Data)
	assert.True(t, branch.Created.Equal(got.Created))
}

func TestPersistBranch_OptionalFieldsAbsent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.PersistBranch(ctx, domain.NewBranchContext("main", "inkan", "", "", "")))

	got, err := repo.GetBranch(ctx, "main", "inkan")
	require.NoError(t, err)
	assert.Equal(t, "main", got.Ticket)
	assert.Empty(t, got.Scope)
	assert.Empty(t, got.Link)
	assert.Nil(t, got.Data)
}

func TestPersistBranch_ReplacesExisting(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.PersistBranch(ctx, domain.NewBranchContext("main", "inkan", "T-1", "api", "")))
	require.NoError(t, repo.PersistBranch(ctx, domain.NewBranchContext("main", "inkan", "T-2", "", "https://x")))

	got, err := repo.GetBranch(ctx, "main", "inkan")
	require.NoError(t, err)
	assert.Equal(t, "T-2", got.Ticket)
	assert.Empty(t, got.Scope)
	assert.Equal(t, "https://x", got.Link)
}

func TestPersistBranch_EmptyName(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.PersistBranch(context.Background(), domain.BranchContext{Ticket: "T-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetBranch_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetBranch(context.Background(), "missing", "inkan")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetBranch_CorruptedTimestamp(t *testing.T) {
	repo := newTestRepository(t)
	require.NoError(t, repo.db.Exec(
		"INSERT INTO branch (name, ticket, created) VALUES (?, ?, ?)", "inkan-main", "T-1", "yesterday",
	).Error)

	_, err := repo.GetBranch(context.Background(), "main", "inkan")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCorrupted)
}

func TestSeedDefaults(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	seedTestRepository(t, repo)

	active, err := repo.GetActiveConfiguration(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultKey, active.Key)
	assert.Equal(t, "/templates/default.yml", active.Path)

	conventional, err := repo.GetConfiguration(ctx, domain.ConventionalKey)
	require.NoError(t, err)
	assert.Equal(t, domain.ConfigDisabled, conventional.Status)
}

func TestSeedDefaults_KeepsUserChoice(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	seedTestRepository(t, repo)

	_, err := repo.SetActiveConfiguration(ctx, domain.ConventionalKey)
	require.NoError(t, err)

	require.NoError(t, repo.SeedDefaults(ctx, "/new/default.yml", "/new/conventional.yml"))

	assert.Equal(t, []string{domain.KeyConventional}, activeKeys(t, repo))

	def, err := repo.GetConfiguration(ctx, domain.DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "/new/default.yml", def.Path)
}

func TestPersistConfiguration(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	seedTestRepository(t, repo)

	require.NoError(t, repo.PersistConfiguration(ctx, domain.NamedConfiguration{
		Key:    domain.UserKey("team"),
		Path:   "/team.yml",
		Status: domain.ConfigActive,
	}))

	team, err := repo.GetConfiguration(ctx, domain.UserKey("team"))
	require.NoError(t, err)
	assert.Equal(t, domain.ConfigDisabled, team.Status, "new configurations start disabled")
	assert.Equal(t, "/team.yml", team.Path)
	assert.Equal(t, []string{domain.KeyDefault}, activeKeys(t, repo))
}

func TestPersistConfiguration_UpdateKeepsStatus(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	seedTestRepository(t, repo)

	team := domain.NamedConfiguration{Key: domain.UserKey("team"), Path: "/team.yml"}
	require.NoError(t, repo.PersistConfiguration(ctx, team))
	_, err := repo.SetActiveConfiguration(ctx, team.Key)
	require.NoError(t, err)

	team.Path = "/team-v2.yml"
	require.NoError(t, repo.PersistConfiguration(ctx, team))

	got, err := repo.GetConfiguration(ctx, team.Key)
	require.NoError(t, err)
	assert.Equal(t, "/team-v2.yml", got.Path)
	assert.Equal(t, domain.ConfigActive, got.Status)
}

func TestPersistConfiguration_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  domain.NamedConfiguration
	}{
		{"reserved default", domain.NamedConfiguration{Key: domain.DefaultKey, Path: "/x.yml"}},
		{"reserved conventional", domain.NamedConfiguration{Key: domain.ConventionalKey, Path: "/x.yml"}},
		{"reserved once", domain.NamedConfiguration{Key: domain.OnceKey, Path: "/x.yml"}},
		{"reserved local", domain.NamedConfiguration{Key: domain.LocalKey, Path: "/x.yml"}},
		{"empty name", domain.NamedConfiguration{Key: domain.UserKey(" "), Path: "/x.yml"}},
		{"empty path", domain.NamedConfiguration{Key: domain.UserKey("team")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepository(t)

			err := repo.PersistConfiguration(context.Background(), tt.cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestListConfigurations(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	seedTestRepository(t, repo)
	require.NoError(t, repo.PersistConfiguration(ctx, domain.NamedConfiguration{Key: domain.UserKey("team"), Path: "/team.yml"}))

	configs, err := repo.ListConfigurations(ctx)
	require.NoError(t, err)
	require.Len(t, configs, 3)

	assert.Equal(t, domain.ConventionalKey, configs[0].Key)
	assert.Equal(t, domain.DefaultKey, configs[1].Key)
	assert.Equal(t, domain.UserKey("team"), configs[2].Key)
}

func TestListConfigurations_CorruptedStatus(t *testing.T) {
	repo := newTestRepository(t)
	require.NoError(t, repo.db.Exec(
		"INSERT INTO config (key, path, status) VALUES (?, ?, ?)", "team", "/team.yml", "MAYBE",
	).Error)

	_, err := repo.ListConfigurations(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCorrupted)
}

func TestGetActiveConfiguration_NoneActive(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetActiveConfiguration(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetActiveConfiguration_MultipleActive(t *testing.T) {
	repo := newTestRepository(t)
	seedTestRepository(t, repo)
	require.NoError(t, repo.db.Exec("UPDATE config SET status = 'ACTIVE'").Error)

	_, err := repo.GetActiveConfiguration(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCorrupted)
}

func TestSetActiveConfiguration(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	seedTestRepository(t, repo)
	require.NoError(t, repo.PersistConfiguration(ctx, domain.NamedConfiguration{Key: domain.UserKey("team"), Path: "/team.yml"}))

	for _, key := range []domain.ConfigKey{domain.UserKey("team"), domain.ConventionalKey, domain.DefaultKey, domain.DefaultKey} {
		t.Run(key.String(), func(t *testing.T) {
			active, err := repo.SetActiveConfiguration(ctx, key)
			require.NoError(t, err)
			assert.Equal(t, key, active.Key)
			assert.Equal(t, domain.ConfigActive, active.Status)
			assert.Equal(t, []string{key.String()}, activeKeys(t, repo))
		})
	}
}

func TestSetActiveConfiguration_UnknownKeyLeavesStateUnchanged(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	seedTestRepository(t, repo)

	_, err := repo.SetActiveConfiguration(ctx, domain.UserKey("missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, []string{domain.KeyDefault}, activeKeys(t, repo))
}

func TestSetActiveConfiguration_ConcurrentReadersSeeOneActive(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	seedTestRepository(t, repo)

	var wg sync.WaitGroup
	done := make(chan struct{})
	errs := make(chan error, 1)

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			if _, err := repo.GetActiveConfiguration(ctx); err != nil {
				select {
				case errs <- err:
				default:
				}
				return
			}
		}
	}()

	keys := []domain.ConfigKey{domain.ConventionalKey, domain.DefaultKey}
	for i := 0; i < 20; i++ {
		_, err := repo.SetActiveConfiguration(ctx, keys[i%2])
		require.NoError(t, err)
	}
	close(done)
	wg.Wait()

	select {
	case err := <-errs:
		t.Fatalf("reader observed an intermediate state: %v", err)
	case <-time.After(10 * time.Millisecond):
	}
}

func TestMigrate_AddsMissingColumns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "legacy.db")

	legacy, err := NewSQLiteRepository(dbPath)
	require.NoError(t, err)
	require.NoError(t, legacy.db.Exec("DROP TABLE branch").Error)
	require.NoError(t, legacy.db.Exec(
		"CREATE TABLE branch (name TEXT PRIMARY KEY, ticket TEXT NOT NULL, data BLOB, created TEXT NOT NULL)",
	).Error)
	require.NoError(t, legacy.Close())

	repo, err := NewSQLiteRepository(dbPath)
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	require.NoError(t, repo.PersistBranch(ctx, domain.NewBranchContext("main", "inkan", "T-1", "api", "https://x")))

	got, err := repo.GetBranch(ctx, "main", "inkan")
	require.NoError(t, err)
	assert.Equal(t, "api", got.Scope)
	assert.Equal(t, "https://x", got.Link)
}
