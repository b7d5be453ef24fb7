package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/yourusername/gifsync/internal/app"
	"github.com/yourusername/gifsync/internal/catalog"
	"github.com/yourusername/gifsync/internal/domain"
	"github.com/yourusername/gifsync/internal/infrastructure"
	"github.com/yourusername/gifsync/pkg/logger"
)

// application holds the wired components for one process
type application struct {
	config   *domain.Config
	log      *zap.Logger
	catalog  *domain.Catalog
	store    *infrastructure.FileAssetStore
	service  *app.SyncService
	registry *infrastructure.SourceRegistry
	repo     *infrastructure.SQLiteRunRepository
}

// buildApplication loads configuration and catalog and wires every component.
// Errors here are the only ones that end the process with a non-zero status.
func buildApplication(configPath, envPath string) (*application, error) {
	if err := app.LoadDotEnv(envPath); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	config, err := app.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Config{
		Level:      config.Logging.Level,
		Format:     config.Logging.Format,
		OutputPath: config.Logging.OutputPath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	cat, err := catalog.Load(config.Catalog.Path, config.Catalog.KnownTotal)
	if err != nil {
		return nil, err
	}

	store, err := infrastructure.NewFileAssetStore(config.Store.Dir, config.Store.Extension, config.Store.MinBytes)
	if err != nil {
		return nil, err
	}

	var repo *infrastructure.SQLiteRunRepository
	var runRepo domain.RunRepository
	if config.History.Enabled {
		repo, err = infrastructure.NewSQLiteRunRepository(config.History.DatabasePath)
		if err != nil {
			// history is a convenience; passes still work without it
			log.Warn("History disabled", zap.String("path", config.History.DatabasePath), zap.Error(err))
			repo = nil
		} else {
			runRepo = repo
		}
	}

	var notifier app.Notifier
	if config.Notification.Enabled {
		notifier = infrastructure.NewNotificationService(&config.Notification, log)
	}

	registry := infrastructure.NewSourceRegistry(config.Providers, config.HTTP, log)
	fetcher := infrastructure.NewHTTPFetcher(config.HTTP)
	orchestrator := app.NewOrchestrator(store, fetcher, app.NewMatcher(), log)
	service := app.NewSyncService(cat, orchestrator, registry, store, runRepo, notifier, log)

	log.Debug("Application wired",
		zap.String("store", config.Store.Dir),
		zap.Int("catalog", len(cat.Entries)),
		zap.Strings("providers", registry.Names()),
		zap.Bool("history", runRepo != nil))

	return &application{
		config:   config,
		log:      log,
		catalog:  cat,
		store:    store,
		service:  service,
		registry: registry,
		repo:     repo,
	}, nil
}

// Close releases the history database and flushes logs
func (a *application) Close() {
	if a.repo != nil {
		if err := a.repo.Close(); err != nil {
			a.log.Warn("Failed to close history database", zap.Error(err))
		}
	}
	_ = a.log.Sync()
}
