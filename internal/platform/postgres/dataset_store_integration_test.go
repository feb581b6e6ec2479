//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/JonasJore/pokemon-api/internal/dataset"
	"github.com/JonasJore/pokemon-api/internal/domain"
	"github.com/JonasJore/pokemon-api/internal/platform/postgres"
	"github.com/JonasJore/pokemon-api/internal/store"
	"github.com/JonasJore/pokemon-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetStore_SeedAndLoad(t *testing.T) {
	db := testdb.OpenTestDatabase(t)
	testdb.SetupTestDatabaseSchema(t, db)

	embedded, err := dataset.LoadEmbedded()
	require.NoError(t, err)

	s := postgres.NewDatasetStore(db, nil)
	ctx := context.Background()

	require.NoError(t, s.Seed(ctx, embedded))
	// seeding twice replaces the data
	require.NoError(t, s.Seed(ctx, embedded))

	loaded, err := s.LoadCatalog(ctx)
	require.NoError(t, err)

	assert.Equal(t, embedded.Count(), loaded.Count())
	assert.Equal(t, embedded.All(), loaded.All())
	assert.Equal(t, embedded.Regions(), loaded.Regions())
}

func TestInsertPokemon_Constraints(t *testing.T) {
	db := testdb.OpenTestDatabase(t)
	testdb.SetupTestDatabaseSchema(t, db)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		_, err := tx.ExecContext(ctx, "DELETE FROM pokemon")
		require.NoError(t, err)
		_, err = tx.ExecContext(ctx, "DELETE FROM regions")
		require.NoError(t, err)

		require.NoError(t, postgres.InsertRegions(ctx, tx, []domain.Region{{ID: 1, Name: "Kanto"}}))

		err = postgres.InsertPokemon(ctx, tx, []domain.Pokemon{{ID: 1, Name: "Bulbasaur", RegionID: 2}})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		_, err := tx.ExecContext(ctx, "DELETE FROM pokemon")
		require.NoError(t, err)
		_, err = tx.ExecContext(ctx, "DELETE FROM regions")
		require.NoError(t, err)
		require.NoError(t, postgres.InsertRegions(ctx, tx, []domain.Region{{ID: 1, Name: "Kanto"}}))

		err = postgres.InsertPokemon(ctx, tx, []domain.Pokemon{
			{ID: 9001, Name: "Duplicate", RegionID: 1},
			{ID: 9002, Name: "Duplicate", RegionID: 1},
		})
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})
}
