package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JonasJore/pokemon-api/internal/config"
	"github.com/JonasJore/pokemon-api/internal/dataset"
	"github.com/JonasJore/pokemon-api/internal/platform/postgres"
)

// runMigrations executes a goose command against the configured database.
func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger, command string) error {
	db, err := setupAppDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing database connection", "error", err)
		}
	}()

	if err := postgres.Migrate(ctx, db, command, logger); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// runSeed writes the embedded dataset to the configured database.
func runSeed(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	catalog, err := dataset.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("failed to load embedded dataset: %w", err)
	}

	db, err := setupAppDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing database connection", "error", err)
		}
	}()

	if err := postgres.NewDatasetStore(db, logger).Seed(ctx, catalog); err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}
	return nil
}
