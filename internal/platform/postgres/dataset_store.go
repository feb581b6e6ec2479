package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/JonasJore/pokemon-api/internal/dataset"
	"github.com/JonasJore/pokemon-api/internal/domain"
	"github.com/JonasJore/pokemon-api/internal/platform/logger"
	"github.com/JonasJore/pokemon-api/internal/store"
)

const (
	selectRegionsQuery = `SELECT id, region_name FROM regions ORDER BY id`
	selectPokemonQuery = `SELECT id, name, region_id FROM pokemon ORDER BY id`
	insertRegionQuery  = `INSERT INTO regions (id, region_name) VALUES ($1, $2)`
	insertPokemonQuery = `INSERT INTO pokemon (id, name, region_id) VALUES ($1, $2, $3)`
	deletePokemonQuery = `DELETE FROM pokemon`
	deleteRegionsQuery = `DELETE FROM regions`
)

// DatasetStore implements store.DatasetStore on PostgreSQL.
type DatasetStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// Ensure DatasetStore implements store.DatasetStore interface
var _ store.DatasetStore = (*DatasetStore)(nil)

// NewDatasetStore creates a DatasetStore on db.
// If logger is nil, a default logger will be used.
func NewDatasetStore(db *sql.DB, logger *slog.Logger) *DatasetStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &DatasetStore{
		db:     db,
		logger: logger.With(slog.String("component", "dataset_store")),
	}
}

// Seed replaces the stored dataset with src in a single transaction.
func (s *DatasetStore) Seed(ctx context.Context, src store.CatalogSource) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	start := time.Now()

	regions := src.Regions()
	pokemon := src.All()

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deletePokemonQuery); err != nil {
			return fmt.Errorf("failed to clear pokemon: %w", MapError(err))
		}
		if _, err := tx.ExecContext(ctx, deleteRegionsQuery); err != nil {
			return fmt.Errorf("failed to clear regions: %w", MapError(err))
		}
		if err := InsertRegions(ctx, tx, regions); err != nil {
			return err
		}
		return InsertPokemon(ctx, tx, pokemon)
	})
	if err != nil {
		log.Error("failed to seed dataset", slog.String("error", err.Error()))
		return err
	}

	log.Info("dataset seeded",
		slog.Int("regions", len(regions)),
		slog.Int("pokemon", len(pokemon)),
		slog.Duration("duration", time.Since(start)))
	return nil
}

// LoadCatalog reads the stored dataset into a catalog.
func (s *DatasetStore) LoadCatalog(ctx context.Context, opts ...dataset.Option) (*dataset.Catalog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	regions, err := queryRegions(ctx, s.db)
	if err != nil {
		return nil, err
	}
	pokemon, err := queryPokemon(ctx, s.db)
	if err != nil {
		return nil, err
	}

	if len(regions) == 0 || len(pokemon) == 0 {
		log.Warn("dataset tables are empty",
			slog.Int("regions", len(regions)),
			slog.Int("pokemon", len(pokemon)))
		return nil, store.ErrEmptyStore
	}

	catalog, err := dataset.NewCatalog(pokemon, regions, opts...)
	if err != nil {
		return nil, fmt.Errorf("stored dataset is invalid: %w", err)
	}

	log.Info("dataset loaded from postgres",
		slog.Int("regions", len(regions)),
		slog.Int("pokemon", len(pokemon)))
	return catalog, nil
}

// InsertRegions writes regions through db, which may be a transaction.
func InsertRegions(ctx context.Context, db store.DBTX, regions []domain.Region) error {
	stmt, err := db.PrepareContext(ctx, insertRegionQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare region insert: %w", MapError(err))
	}
	defer func() { _ = stmt.Close() }()

	for _, r := range regions {
		if _, err := stmt.ExecContext(ctx, r.ID, r.Name); err != nil {
			return fmt.Errorf("failed to insert region %d: %w", r.ID, MapError(err))
		}
	}
	return nil
}

// InsertPokemon writes entries through db, which may be a transaction.
// Their regions must already exist.
func InsertPokemon(ctx context.Context, db store.DBTX, pokemon []domain.Pokemon) error {
	stmt, err := db.PrepareContext(ctx, insertPokemonQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare pokemon insert: %w", MapError(err))
	}
	defer func() { _ = stmt.Close() }()

	for _, p := range pokemon {
		if _, err := stmt.ExecContext(ctx, p.ID, p.Name, p.RegionID); err != nil {
			return fmt.Errorf("failed to insert pokemon %d: %w", p.ID, MapError(err))
		}
	}
	return nil
}

func queryRegions(ctx context.Context, db store.DBTX) ([]domain.Region, error) {
	rows, err := db.QueryContext(ctx, selectRegionsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query regions: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var regions []domain.Region
	for rows.Next() {
		var r domain.Region
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("failed to scan region: %w", err)
		}
		regions = append(regions, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read regions: %w", MapError(err))
	}
	return regions, nil
}

func queryPokemon(ctx context.Context, db store.DBTX) ([]domain.Pokemon, error) {
	rows, err := db.QueryContext(ctx, selectPokemonQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query pokemon: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var pokemon []domain.Pokemon
	for rows.Next() {
		var p domain.Pokemon
		if err := rows.Scan(&p.ID, &p.Name, &p.RegionID); err != nil {
			return nil, fmt.Errorf("failed to scan pokemon: %w", err)
		}
		pokemon = append(pokemon, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pokemon: %w", MapError(err))
	}
	return pokemon, nil
}
