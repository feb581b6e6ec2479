package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	// MigrationTableName is the name of the table used by goose to track migrations.
	MigrationTableName = "schema_migrations"

	migrationsDir = "migrations"
)

// MigrationCommands lists the goose commands Migrate accepts.
var MigrationCommands = []string{"up", "down", "status", "version"}

// ErrUnknownMigrationCommand is returned for commands outside MigrationCommands.
var ErrUnknownMigrationCommand = errors.New("unknown migration command")

// goose keeps its configuration in package globals
var gooseMu sync.Mutex

// Migrate runs a goose command against db using the embedded migrations.
func Migrate(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	if !slices.Contains(MigrationCommands, command) {
		return fmt.Errorf("%w: %q (expected one of %s)",
			ErrUnknownMigrationCommand, command, strings.Join(MigrationCommands, ", "))
	}
	if db == nil {
		return errors.New("migrate: nil database")
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(
		slog.String("component", "migrations"),
		slog.String("command", command),
	)

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrationsFS)
	goose.SetTableName(MigrationTableName)
	goose.SetLogger(NewGooseLogger(log))
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	start := time.Now()
	log.Info("starting migration command")

	if err := goose.RunContext(ctx, command, db, migrationsDir); err != nil {
		log.Error("migration command failed",
			slog.String("error", err.Error()),
			slog.Duration("duration", time.Since(start)))
		return fmt.Errorf("goose %s failed: %w", command, err)
	}

	log.Info("migration command completed", slog.Duration("duration", time.Since(start)))
	return nil
}

// GooseLogger adapts goose's logger interface to slog.
type GooseLogger struct {
	logger *slog.Logger
}

// NewGooseLogger creates a goose logger writing to l.
func NewGooseLogger(l *slog.Logger) *GooseLogger {
	if l == nil {
		l = slog.Default()
	}
	return &GooseLogger{logger: l}
}

// Printf forwards goose progress messages at Info level.
func (l *GooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf logs at Error level. It does not exit: goose also returns the error,
// and main decides the exit code.
func (l *GooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
