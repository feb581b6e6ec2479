package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/JonasJore/pokemon-api/internal/config"
	"github.com/JonasJore/pokemon-api/internal/redact"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
)

// pingTimeout bounds the connectivity check at startup.
const pingTimeout = 5 * time.Second

// errNoDatabaseURL is returned when a database is needed but none is configured.
var errNoDatabaseURL = errors.New("database URL is empty: set POKEMON_DATABASE_URL or database.url")

// setupAppDatabase opens the configured database, applies the pool settings
// and verifies connectivity.
func setupAppDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	if cfg.URL == "" {
		return nil, errNoDatabaseURL
	}

	logger.Info("Connecting to database", "url", redact.DatabaseURL(cfg.URL))

	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	configurePool(db, cfg)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
		"conn_max_lifetime_minutes", cfg.ConnMaxLifetime)
	return db, nil
}

// configurePool applies the pool settings from cfg.
func configurePool(db *sql.DB, cfg config.DatabaseConfig) {
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
}
