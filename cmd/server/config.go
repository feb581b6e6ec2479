package main

import (
	"fmt"
	"log/slog"

	"github.com/JonasJore/pokemon-api/internal/config"
)

// loadAppConfig loads the configuration from path, or from the environment
// and an optional ./config.yaml when path is empty.
func loadAppConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"dataset_source", cfg.Dataset.Source,
		"metrics_enabled", cfg.Metrics.Enabled)

	if cfg.Database.URL != "" {
		slog.Debug("Database configuration", "url_present", true)
	}

	return cfg, nil
}
