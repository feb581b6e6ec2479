package store

import (
	"context"

	"github.com/JonasJore/pokemon-api/internal/dataset"
	"github.com/JonasJore/pokemon-api/internal/domain"
)

// CatalogSource is the read side of a catalog, as needed for seeding.
type CatalogSource interface {
	All() []domain.Pokemon
	Regions() []domain.Region
}

// DatasetStore persists the dataset.
type DatasetStore interface {
	// Seed replaces the stored dataset with the contents of src atomically.
	Seed(ctx context.Context, src CatalogSource) error

	// LoadCatalog reads the stored dataset into an in-memory catalog.
	// Returns ErrEmptyStore when nothing has been seeded.
	LoadCatalog(ctx context.Context, opts ...dataset.Option) (*dataset.Catalog, error)
}

// Ensure the embedded catalog can seed a store
var _ CatalogSource = (*dataset.Catalog)(nil)
