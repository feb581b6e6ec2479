package dataset

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/JonasJore/pokemon-api/internal/domain"
)

// Catalog is an immutable, in-memory Facade.
type Catalog struct {
	pokemon  []domain.Pokemon
	byID     map[int]int
	byName   map[string]int
	regions  map[int]domain.Region
	byRegion map[int][]int
	intN     func(n int) int
}

// Ensure Catalog implements Facade
var _ Facade = (*Catalog)(nil)

// Option customizes a Catalog.
type Option func(*Catalog)

// WithRandomSource replaces the function used by Random to draw an index in
// [0, n). The function must be safe for concurrent use.
func WithRandomSource(intN func(n int) int) Option {
	return func(c *Catalog) {
		if intN != nil {
			c.intN = intN
		}
	}
}

// NewCatalog builds a catalog from entries and regions. Entry order is kept as
// the listing order. Every entry must be valid, ids and names must be unique
// and every referenced region must be present.
func NewCatalog(pokemon []domain.Pokemon, regions []domain.Region, opts ...Option) (*Catalog, error) {
	if len(pokemon) == 0 || len(regions) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		pokemon:  make([]domain.Pokemon, len(pokemon)),
		byID:     make(map[int]int, len(pokemon)),
		byName:   make(map[string]int, len(pokemon)),
		regions:  make(map[int]domain.Region, len(regions)),
		byRegion: make(map[int][]int, len(regions)),
		intN:     rand.IntN,
	}
	copy(c.pokemon, pokemon)

	for _, r := range regions {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.regions[r.ID]; exists {
			return nil, fmt.Errorf("region %d: %w", r.ID, ErrDuplicateID)
		}
		c.regions[r.ID] = r
	}

	for i, p := range c.pokemon {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.byID[p.ID]; exists {
			return nil, fmt.Errorf("pokemon %d: %w", p.ID, ErrDuplicateID)
		}
		if _, exists := c.byName[p.Name]; exists {
			return nil, fmt.Errorf("pokemon %q: %w", p.Name, ErrDuplicateName)
		}
		if _, exists := c.regions[p.RegionID]; !exists {
			return nil, fmt.Errorf("pokemon %d region %d: %w", p.ID, p.RegionID, ErrUnknownRegion)
		}
		c.byID[p.ID] = i
		c.byName[p.Name] = i
		c.byRegion[p.RegionID] = append(c.byRegion[p.RegionID], i)
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// PokemonByID implements Facade.PokemonByID
func (c *Catalog) PokemonByID(id int) (domain.Pokemon, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Pokemon{}, false
	}
	return c.pokemon[i], true
}

// PokemonByName implements Facade.PokemonByName
func (c *Catalog) PokemonByName(name string) (domain.Pokemon, bool) {
	i, ok := c.byName[name]
	if !ok {
		return domain.Pokemon{}, false
	}
	return c.pokemon[i], true
}

// RegionByID implements Facade.RegionByID
func (c *Catalog) RegionByID(id int) (domain.Region, bool) {
	r, ok := c.regions[id]
	return r, ok
}

// PokemonInRegion implements Facade.PokemonInRegion
func (c *Catalog) PokemonInRegion(regionID int) []domain.Pokemon {
	indexes := c.byRegion[regionID]
	out := make([]domain.Pokemon, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, c.pokemon[i])
	}
	return out
}

// All implements Facade.All. The returned slice is a copy.
func (c *Catalog) All() []domain.Pokemon {
	out := make([]domain.Pokemon, len(c.pokemon))
	copy(out, c.pokemon)
	return out
}

// Count implements Facade.Count
func (c *Catalog) Count() int {
	return len(c.pokemon)
}

// Random implements Facade.Random
func (c *Catalog) Random() domain.Pokemon {
	return c.pokemon[c.intN(len(c.pokemon))]
}

// Regions returns every region ordered by id.
func (c *Catalog) Regions() []domain.Region {
	out := make([]domain.Region, 0, len(c.regions))
	for _, r := range c.regions {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b domain.Region) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}
