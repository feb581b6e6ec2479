// Package main implements the entry point for the pokemon-api server, a
// read-only HTTP facade over the Pokémon reference dataset.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonasJore/pokemon-api/internal/redact"
)

// options holds the command line flags.
type options struct {
	configPath string
	migrate    string
	seed       bool
}

// main is the entry point for the pokemon-api server.
func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("pokemon-api exited with error", "error", redact.Error(err))
		os.Exit(1)
	}
}

// parseFlags parses the command line. Usage errors are written to output.
func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("pokemon-api", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.configPath, "config", "", "Path to a config file (defaults to ./config.yaml when present)")
	fs.StringVar(&opts.migrate, "migrate", "", "Run a database migration command (up|down|status|version) and exit")
	fs.BoolVar(&opts.seed, "seed", false, "Write the embedded dataset to the configured database and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if opts.migrate != "" && opts.seed {
		return options{}, errors.New("-migrate and -seed cannot be combined")
	}
	return opts, nil
}

// run wires the application together and blocks until the server stops or
// a one-shot command completes.
func run(args []string) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := loadAppConfig(opts.configPath)
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch {
	case opts.migrate != "":
		return runMigrations(ctx, cfg, logger, opts.migrate)
	case opts.seed:
		return runSeed(ctx, cfg, logger)
	}

	app, err := newApplication(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}
