package cmd

import (
	"context"
	"errors"
	"fmt"

	"prefab-reconciler/core/backup"
	"prefab-reconciler/core/config"
	"prefab-reconciler/core/database"
	"prefab-reconciler/core/history"
	"prefab-reconciler/core/logger"
	"prefab-reconciler/core/storage"
	"prefab-reconciler/feature/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// environment holds the services shared by the commands.
type environment struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *gorm.DB
	client  storage.Client
	repo    *history.Repository
	archive *backup.Archive
	service *reconcile.Service
}

// envOptions selects what loadEnvironment connects.
type envOptions struct {
	database  bool
	storage   bool
	provision bool
	overrides []func(*config.Config)
}

type envOption func(*envOptions)

// withDatabase connects the history database when it is enabled.
func withDatabase() envOption {
	return func(o *envOptions) { o.database = true }
}

// withStorage connects the backup storage when it is enabled.
func withStorage() envOption {
	return func(o *envOptions) { o.storage = true }
}

// withoutProvisioning skips table migration and bucket creation, leaving the
// database and the bucket as found.
func withoutProvisioning() envOption {
	return func(o *envOptions) { o.provision = false }
}

// withConfig applies override to the loaded configuration.
func withConfig(override func(*config.Config)) envOption {
	return func(o *envOptions) { o.overrides = append(o.overrides, override) }
}

// loadEnvironment loads the configuration and connects the optional database
// and storage requested by opts. Neither is connected by default.
func loadEnvironment(ctx context.Context, opts ...envOption) (*environment, error) {
	o := envOptions{provision: true}
	for _, opt := range opts {
		opt(&o)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	for _, override := range o.overrides {
		override(cfg)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	env := &environment{cfg: cfg, logger: l}

	if o.database && cfg.Database.Enabled {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			env.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		env.db = db
		env.repo = history.NewRepository(db)
		if o.provision {
			if err := env.repo.Migrate(); err != nil {
				env.Close()
				return nil, err
			}
		}
		l.Debug("Connected to history database", zap.String("driver", cfg.Database.Driver))
	}

	if o.storage && cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			env.Close()
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		env.client = client
		env.archive = backup.NewArchive(client, cfg.Storage.Bucket)
		if o.provision {
			if err := env.archive.EnsureBucket(ctx); err != nil {
				env.Close()
				return nil, err
			}
		}
		l.Debug("Mirroring backups", zap.String("bucket", cfg.Storage.Bucket))
	}

	var recorder history.Recorder
	if env.repo != nil {
		recorder = env.repo
	}
	env.service = reconcile.NewService(cfg.Reconcile.Markers, cfg.Reconcile.BackupSuffix, l, recorder, env.archive)
	return env, nil
}

// requireHistory fails when the database is disabled.
func (e *environment) requireHistory() error {
	if e.repo == nil {
		return errors.New("run history requires the database (set DATABASE_ENABLED=true)")
	}
	return nil
}

// requireArchive fails when storage is disabled.
func (e *environment) requireArchive() error {
	if e.archive == nil {
		return errors.New("backup mirroring requires storage (set STORAGE_ENABLED=true)")
	}
	return nil
}

// Close releases the database connection and flushes the logger.
func (e *environment) Close() {
	if e.db != nil {
		if sqlDB, err := e.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = e.logger.Sync()
}
