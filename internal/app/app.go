// Package app wires the store, repositories and selector factory shared by
// the server and the CLI.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"cmsselect/internal/clientinfo"
	"cmsselect/internal/config"
	"cmsselect/internal/domain"
	"cmsselect/internal/domain/repositories"
	"cmsselect/internal/i18n"
	"cmsselect/internal/repository/cms"
	"cmsselect/internal/repository/postgres"
	"cmsselect/internal/repository/sqlite"
	"cmsselect/internal/sanitizer"
	"cmsselect/internal/service/selector"
	"cmsselect/internal/storage"
)

// App holds the long lived collaborators of one process.
type App struct {
	Store      repositories.Store
	Tables     *cms.TableNames
	Clients    *clientinfo.Registry
	Translator *i18n.Translator
	Factory    *selector.Factory
	Logger     *slog.Logger
}

// OpenStore connects to the database named by cfg.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories.Store, error) {
	switch cfg.DatabaseDriver {
	case "postgres", "postgresql":
		return postgres.Open(ctx, cfg.DatabaseURL, logger)
	case "sqlite", "sqlite3":
		return sqlite.Open(cfg.DatabaseURL, logger)
	default:
		return nil, domain.NewConfigurationError("store", "unknown database driver %q", cfg.DatabaseDriver)
	}
}

// Bootstrap opens the store, loads the client registry and builds the
// selector factory. Paths defaults to the local filesystem.
func Bootstrap(ctx context.Context, cfg *config.Config, paths selector.PathOracle, logger *slog.Logger) (*App, error) {
	clients, err := clientinfo.Load(cfg.ClientsFile)
	if err != nil {
		return nil, err
	}

	store, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	a, err := New(cfg, store, clients, paths, logger)
	if err != nil {
		store.Close()
		return nil, err
	}
	return a, nil
}

// New wires an App around an open store.
func New(cfg *config.Config, store repositories.Store, clients *clientinfo.Registry, paths selector.PathOracle, logger *slog.Logger) (*App, error) {
	if paths == nil {
		paths = storage.NewOSPathChecker()
	}

	tables := cms.NewTableNames(cfg.TablePrefix)
	repoConfig := &cms.RepositoryConfig{
		Querier: store,
		Tables:  tables,
		Logger:  logger,
	}
	translator := i18n.New(cfg.DefaultLocale)

	factory, err := selector.NewFactory(selector.FactoryConfig{
		Categories: cms.NewCategoryRepository(repoConfig),
		Articles:   cms.NewArticleRepository(repoConfig),
		Contents:   cms.NewContentRepository(repoConfig),
		Uploads:    cms.NewUploadRepository(repoConfig),
		Dbfs:       cms.NewDbfsRepository(repoConfig),
		Clients:    clients,
		Paths:      paths,
		Translator: translator,
		Stripper:   sanitizer.NewStripper(),
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build selector factory: %w", err)
	}

	logger.Info("selectors initialized",
		"driver", store.Driver(),
		"table_prefix", cfg.TablePrefix,
		"clients", clients.IDs(),
	)

	return &App{
		Store:      store,
		Tables:     tables,
		Clients:    clients,
		Translator: translator,
		Factory:    factory,
		Logger:     logger,
	}, nil
}

// Close releases the store.
func (a *App) Close() {
	a.Store.Close()
}
