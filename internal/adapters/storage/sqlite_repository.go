package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/inkan-dev/inkan/internal/domain"
	"github.com/inkan-dev/inkan/internal/logging"
	"github.com/inkan-dev/inkan/internal/paths"
	"github.com/inkan-dev/inkan/internal/ports"
)

const maxRetries = 3

// SQLiteRepository implements ports.ContextStore using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.ContextStore = (*SQLiteRepository)(nil)

// gormLogger wraps the inkan logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("INKAN_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (creating if needed) the store at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbPath = paths.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Pragmas go in the DSN so every pooled connection gets them. Transactions
	// take the write lock up front so readers never see a half-applied switch.
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL&_txlock=immediate", dbPath)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Context store opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// migrate creates both tables and backfills columns missing from older stores
func migrate(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS branch (
			name TEXT PRIMARY KEY,
			ticket TEXT NOT NULL,
			data BLOB,
			created TEXT NOT NULL
		)
	`).Error; err != nil {
		return fmt.Errorf("failed to create branch table: %w", err)
	}

	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS config (
			key TEXT PRIMARY KEY,
			path TEXT NOT NULL,
			status TEXT NOT NULL
		)
	`).Error; err != nil {
		return fmt.Errorf("failed to create config table: %w", err)
	}

	migrator := db.Migrator()
	for _, column := range []string{"link", "scope"} {
		if !migrator.HasColumn(&BranchModel{}, column) {
			if err := migrator.AddColumn(&BranchModel{}, column); err != nil {
				return fmt.Errorf("failed to migrate %s column: %w", column, err)
			}
		}
	}

	return nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// PersistBranch implements BranchContextWriter.PersistBranch
func (r *SQLiteRepository) PersistBranch(ctx context.Context, branch domain.BranchContext) error {
	if branch.Name == "" {
		return domain.NewStoreValidationError("branch.name", errors.New("name cannot be empty"))
	}

	model := domainToBranchModel(branch)
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				UpdateAll: true,
			}).
			Create(&model).Error
	}, maxRetries)
	if err != nil {
		return classify(err)
	}

	logging.Logger.Debug("Branch context persisted", "name", branch.Name)
	return nil
}

// GetBranch implements BranchContextReader.GetBranch
func (r *SQLiteRepository) GetBranch(ctx context.Context, branch, repo string) (*domain.BranchContext, error) {
	name := domain.BranchContextName(branch, repo)

	var model BranchModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("branch")
		}
		return nil, classify(err)
	}

	return branchModelToDomain(model)
}

// PersistConfiguration implements ConfigurationWriter.PersistConfiguration.
// New rows start disabled; an existing row only has its path refreshed.
func (r *SQLiteRepository) PersistConfiguration(ctx context.Context, cfg domain.NamedConfiguration) error {
	if !cfg.Key.IsOverridable() {
		return domain.NewStoreValidationError("config.key", fmt.Errorf("'%s' is a reserved configuration key", cfg.Key))
	}
	if cfg.Key.String() == "" {
		return domain.NewStoreValidationError("config.key", errors.New("key cannot be empty"))
	}
	if cfg.Path == "" {
		return domain.NewStoreValidationError("config.path", errors.New("path cannot be empty"))
	}

	err := withRetry(func() error {
		return upsertConfig(r.db.WithContext(ctx), cfg.Key.String(), cfg.Path)
	}, maxRetries)
	if err != nil {
		return classify(err)
	}

	logging.Logger.Debug("Configuration persisted", "key", cfg.Key.String(), "path", cfg.Path)
	return nil
}

// ListConfigurations implements ConfigurationReader.ListConfigurations
func (r *SQLiteRepository) ListConfigurations(ctx context.Context) ([]domain.NamedConfiguration, error) {
	var models []ConfigModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("key").Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, classify(err)
	}

	configs := make([]domain.NamedConfiguration, 0, len(models))
	for _, m := range models {
		cfg, err := configModelToDomain(m)
		if err != nil {
			return nil, err
		}
		configs = append(configs, *cfg)
	}

	return configs, nil
}

// GetConfiguration implements ConfigurationReader.GetConfiguration
func (r *SQLiteRepository) GetConfiguration(ctx context.Context, key domain.ConfigKey) (*domain.NamedConfiguration, error) {
	var model ConfigModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("key = ?", key.String()).First(&model).Error
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("config %s", key))
		}
		return nil, classify(err)
	}

	return configModelToDomain(model)
}

// GetActiveConfiguration implements ConfigurationReader.GetActiveConfiguration
func (r *SQLiteRepository) GetActiveConfiguration(ctx context.Context) (*domain.NamedConfiguration, error) {
	var models []ConfigModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("status = ?", string(domain.ConfigActive)).Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, classify(err)
	}

	switch len(models) {
	case 0:
		return nil, domain.NewNotFoundError("active config")
	case 1:
		return configModelToDomain(models[0])
	default:
		return nil, domain.NewCorruptedError("active config", fmt.Errorf("%d active configurations found", len(models)))
	}
}

// SetActiveConfiguration implements ConfigurationWriter.SetActiveConfiguration.
// Disabling the current row and enabling key happen in one transaction.
func (r *SQLiteRepository) SetActiveConfiguration(ctx context.Context, key domain.ConfigKey) (*domain.NamedConfiguration, error) {
	var active ConfigModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var target ConfigModel
			if err := tx.Where("key = ?", key.String()).First(&target).Error; err != nil {
				return err
			}

			if err := tx.Model(&ConfigModel{}).
				Where("status = ?", string(domain.ConfigActive)).
				Update("status", string(domain.ConfigDisabled)).Error; err != nil {
				return fmt.Errorf("failed to disable active configuration: %w", err)
			}

			if err := tx.Model(&ConfigModel{}).
				Where("key = ?", key.String()).
				Update("status", string(domain.ConfigActive)).Error; err != nil {
				return fmt.Errorf("failed to activate configuration: %w", err)
			}

			return tx.Where("key = ?", key.String()).First(&active).Error
		})
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("config %s", key))
		}
		return nil, classify(err)
	}

	logging.Logger.Info("Active configuration switched", "key", key.String())
	return configModelToDomain(active)
}

// SeedDefaults registers the bundled default and conventional definitions.
// Both paths are refreshed; default becomes active only when nothing else is.
func (r *SQLiteRepository) SeedDefaults(ctx context.Context, defaultPath, conventionalPath string) error {
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := upsertConfig(tx, domain.KeyDefault, defaultPath); err != nil {
				return fmt.Errorf("failed to seed default configuration: %w", err)
			}
			if err := upsertConfig(tx, domain.KeyConventional, conventionalPath); err != nil {
				return fmt.Errorf("failed to seed conventional configuration: %w", err)
			}

			var active int64
			if err := tx.Model(&ConfigModel{}).Where("status = ?", string(domain.ConfigActive)).Count(&active).Error; err != nil {
				return err
			}
			if active > 0 {
				return nil
			}

			return tx.Model(&ConfigModel{}).
				Where("key = ?", domain.KeyDefault).
				Update("status", string(domain.ConfigActive)).Error
		})
	}, maxRetries)
	if err != nil {
		return classify(err)
	}

	logging.Logger.Debug("Default configurations seeded", "default", defaultPath, "conventional", conventionalPath)
	return nil
}

// upsertConfig inserts a disabled row or refreshes the path of an existing one
func upsertConfig(db *gorm.DB, key, path string) error {
	model := ConfigModel{
		Key:    key,
		Path:   path,
		Status: string(domain.ConfigDisabled),
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"path"}),
	}).Create(&model).Error
}

// classify maps a database failure onto a store error
func classify(err error) error {
	var storeErr *domain.StoreError
	if errors.As(err, &storeErr) {
		return storeErr
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return domain.NewStoreValidationError("constraint", err)
	}

	return domain.NewUnknownStoreError(err)
}

// withRetry retries fn while SQLite reports the database as busy or locked
func withRetry(fn func() error, maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			logging.Logger.Debug("Database busy, retrying", "attempt", i+1, "error", err)
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, err)
}
