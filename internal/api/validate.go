package api

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/JonasJore/pokemon-api/internal/dataset"
	"github.com/JonasJore/pokemon-api/internal/domain"
	"github.com/go-playground/validator/v10"
)

// idRule bounds entry ids to the published dataset size.
var idRule = fmt.Sprintf("min=1,max=%d", domain.MaxPokemonID)

// Validator checks and normalizes raw path parameters before they reach the
// dataset. Its only side effects are existence checks against the facade.
type Validator struct {
	facade   dataset.Facade
	validate *validator.Validate
}

// NewValidator creates a Validator backed by facade.
func NewValidator(facade dataset.Facade) *Validator {
	if facade == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("facade cannot be nil for Validator")
	}
	return &Validator{
		facade:   facade,
		validate: validator.New(),
	}
}

// ValidateID parses raw as a non-negative integer in 1..domain.MaxPokemonID.
func (v *Validator) ValidateID(raw string) (int, error) {
	n, err := strconv.ParseUint(raw, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a non-negative integer", domain.ErrInvalidPokemonID, raw)
	}

	id := int(n)
	if err := v.validate.Var(id, idRule); err != nil {
		return 0, fmt.Errorf("%w: %d is out of range", domain.ErrInvalidPokemonID, id)
	}
	return id, nil
}

// ValidateName upper-cases the first character of raw, leaves the rest
// untouched and returns the entry the result names.
func (v *Validator) ValidateName(raw string) (domain.Pokemon, error) {
	if raw == "" {
		return domain.Pokemon{}, fmt.Errorf("%w: empty name", domain.ErrPokemonNotFound)
	}

	name := upperFirst(raw)
	p, ok := v.facade.PokemonByName(name)
	if !ok {
		return domain.Pokemon{}, fmt.Errorf("%w: %q", domain.ErrPokemonNotFound, name)
	}
	return p, nil
}

// ValidateRegion parses raw as a non-negative integer and returns the region it names.
func (v *Validator) ValidateRegion(raw string) (domain.Region, error) {
	n, err := strconv.ParseUint(raw, 10, 63)
	if err != nil {
		return domain.Region{}, fmt.Errorf("%w: %q is not a non-negative integer", domain.ErrRegionNotFound, raw)
	}

	id := int(n)
	region, ok := v.facade.RegionByID(id)
	if !ok {
		return domain.Region{}, fmt.Errorf("%w: %d", domain.ErrRegionNotFound, id)
	}
	return region, nil
}

// upperFirst upper-cases only the first rune of s. It is not title-casing:
// "mr. mime" becomes "Mr. mime".
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
