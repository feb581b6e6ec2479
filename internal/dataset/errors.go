package dataset

import (
	"fmt"

	"github.com/JonasJore/pokemon-api/internal/domain"
)

// Catalog construction errors.
var (
	// ErrEmptyCatalog is returned when a catalog would hold no entries or no regions.
	ErrEmptyCatalog = fmt.Errorf("%w: catalog has no entries", domain.ErrValidation)

	// ErrDuplicateID is returned when two entries or two regions share an id.
	ErrDuplicateID = fmt.Errorf("%w: duplicate id", domain.ErrValidation)

	// ErrDuplicateName is returned when two entries share a canonical name.
	ErrDuplicateName = fmt.Errorf("%w: duplicate name", domain.ErrValidation)

	// ErrUnknownRegion is returned when an entry references a region that is not in the catalog.
	ErrUnknownRegion = fmt.Errorf("%w: unknown region", domain.ErrValidation)

	// ErrMalformedRecord is returned when a CSV record cannot be parsed.
	ErrMalformedRecord = fmt.Errorf("%w: malformed record", domain.ErrValidation)
)
