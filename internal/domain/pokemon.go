package domain

import "fmt"

// MaxPokemonID is the highest id the API accepts. It is fixed to the size of
// the published dataset rather than read from the loaded one.
const MaxPokemonID = 1008

// Pokemon is one dataset entry. Name is stored in its canonical capitalization.
type Pokemon struct {
	ID       int
	Name     string
	RegionID int
}

// Validate checks that the entry carries a positive id, a name and a positive region.
func (p Pokemon) Validate() error {
	if p.ID < 1 {
		return fmt.Errorf("pokemon %d: %w", p.ID, ErrNonPositiveID)
	}
	if p.Name == "" {
		return fmt.Errorf("pokemon %d: %w", p.ID, ErrEmptyName)
	}
	if p.RegionID < 1 {
		return fmt.Errorf("pokemon %d region %d: %w", p.ID, p.RegionID, ErrNonPositiveID)
	}
	return nil
}
