package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JonasJore/pokemon-api/internal/api/middleware"
	"github.com/JonasJore/pokemon-api/internal/config"
	"github.com/JonasJore/pokemon-api/internal/dataset"
	"github.com/JonasJore/pokemon-api/internal/platform/postgres"
	"github.com/JonasJore/pokemon-api/internal/store"
)

// metricsNamespace prefixes every exported metric.
const metricsNamespace = "pokemon_api"

// application holds the shared application dependencies and ensures proper
// cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is only set when the dataset is read from Postgres
	db *sql.DB

	facade  dataset.Facade
	metrics *middleware.Metrics
}

// newApplication loads the dataset from the configured source and prepares
// the application for serving.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	if cfg.Dataset.Source == config.SourcePostgres {
		db, err := setupAppDatabase(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		app.db = db
	}

	facade, err := loadDataset(ctx, cfg.Dataset, app.db, logger)
	if err != nil {
		app.cleanup()
		return nil, err
	}
	app.facade = facade

	if cfg.Metrics.Enabled {
		app.metrics = middleware.NewMetrics(metricsNamespace)
	}

	logger.Info("Application initialized successfully",
		"dataset_source", cfg.Dataset.Source,
		"pokemon", facade.Count())
	return app, nil
}

// loadDataset builds the catalog from the configured source. db is only used
// for the postgres source.
func loadDataset(ctx context.Context, cfg config.DatasetConfig, db *sql.DB, logger *slog.Logger) (*dataset.Catalog, error) {
	switch cfg.Source {
	case config.SourceEmbedded:
		catalog, err := dataset.LoadEmbedded()
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded dataset: %w", err)
		}
		return catalog, nil

	case config.SourcePostgres:
		if db == nil {
			return nil, errNoDatabaseURL
		}
		var s store.DatasetStore = postgres.NewDatasetStore(db, logger)
		catalog, err := s.LoadCatalog(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load dataset from postgres: %w", err)
		}
		return catalog, nil

	default:
		return nil, fmt.Errorf("unknown dataset source %q", cfg.Source)
	}
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
