package domain

import "fmt"

// RegionCount is the number of regions listed by the "all regions" query.
const RegionCount = 9

// Region groups entries. Region ids are independent of entry ids.
type Region struct {
	ID   int
	Name string
}

// Validate checks that the region carries a positive id and a name.
func (r Region) Validate() error {
	if r.ID < 1 {
		return fmt.Errorf("region %d: %w", r.ID, ErrNonPositiveID)
	}
	if r.Name == "" {
		return fmt.Errorf("region %d: %w", r.ID, ErrEmptyRegionName)
	}
	return nil
}
