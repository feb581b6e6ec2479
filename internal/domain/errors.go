package domain

import (
	"errors"
	"fmt"
)

// Request errors. Every lookup failure a client can provoke wraps
// ErrInvalidArgument so the API layer can treat it as a client input error.
var (
	// ErrInvalidArgument is the root of all client input errors.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidPokemonID is returned when an id is unparsable or outside 1..MaxPokemonID.
	ErrInvalidPokemonID = fmt.Errorf("%w: invalid pokemon id", ErrInvalidArgument)

	// ErrPokemonNotFound is returned when a name or id has no entry in the dataset.
	ErrPokemonNotFound = fmt.Errorf("%w: pokemon does not exist", ErrInvalidArgument)

	// ErrRegionNotFound is returned when a region number is unparsable or unknown.
	ErrRegionNotFound = fmt.Errorf("%w: region does not exist", ErrInvalidArgument)

	// ErrPathNotFound is returned when no route matches the request method and path.
	ErrPathNotFound = errors.New("path not found")
)

// Entity validation errors, raised while a dataset is being assembled.
var (
	// ErrValidation is the root of all entity validation errors.
	ErrValidation = errors.New("validation failed")

	// ErrNonPositiveID is returned when an entry or region id is below 1.
	ErrNonPositiveID = fmt.Errorf("%w: id must be positive", ErrValidation)

	// ErrEmptyName is returned when an entry has no name.
	ErrEmptyName = fmt.Errorf("%w: name cannot be empty", ErrValidation)

	// ErrEmptyRegionName is returned when a region has no name.
	ErrEmptyRegionName = fmt.Errorf("%w: region name cannot be empty", ErrValidation)
)
