package store

import "errors"

// Common store errors used across store implementations.
var (
	// ErrDuplicate is returned when a write would violate a uniqueness constraint.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when a record violates a schema constraint.
	// Check the wrapped error for details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrEmptyStore is returned when loading from a store that has not been seeded.
	ErrEmptyStore = errors.New("store has not been seeded")
)
