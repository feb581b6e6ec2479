package dataset

import "github.com/JonasJore/pokemon-api/internal/domain"

// Facade defines the lookups served by the dataset.
// Lookups report absence through the boolean result instead of an error.
type Facade interface {
	// PokemonByID returns the entry with the given id.
	PokemonByID(id int) (domain.Pokemon, bool)

	// PokemonByName returns the entry whose canonical name equals name exactly.
	PokemonByName(name string) (domain.Pokemon, bool)

	// RegionByID returns the region with the given id.
	RegionByID(id int) (domain.Region, bool)

	// PokemonInRegion returns the entries of a region in dataset order.
	PokemonInRegion(regionID int) []domain.Pokemon

	// All returns every entry in dataset order.
	All() []domain.Pokemon

	// Count returns the number of entries, always equal to len(All()).
	Count() int

	// Random returns an entry chosen uniformly at random. It never fails.
	Random() domain.Pokemon
}
