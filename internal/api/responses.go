package api

import (
	"strconv"

	"github.com/JonasJore/pokemon-api/internal/domain"
)

// PokemonResponse is the success body for a single entry.
type PokemonResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// RegionResponse is the success body for a single region.
type RegionResponse struct {
	ID         int    `json:"id"`
	RegionName string `json:"region_name"`
}

// PokemonListResponse wraps a listing of entries.
type PokemonListResponse struct {
	Pokemon []PokemonResponse `json:"pokemon"`
}

// RegionListResponse wraps a listing of regions.
type RegionListResponse struct {
	Regions []RegionResponse `json:"regions"`
}

// CountResponse carries the number of entries. The count is rendered as a
// JSON string, which existing clients depend on.
type CountResponse struct {
	NumberOfPokemon string `json:"numberOfPokemon"`
}

// FormatPokemon builds the body for one entry.
func FormatPokemon(id int, name string) PokemonResponse {
	return PokemonResponse{ID: id, Name: name}
}

// FormatRegion builds the body for one region.
func FormatRegion(id int, name string) RegionResponse {
	return RegionResponse{ID: id, RegionName: name}
}

// FormatPokemonList keeps the order of entries. An empty input yields an
// empty JSON array, never null.
func FormatPokemonList(entries []domain.Pokemon) PokemonListResponse {
	out := make([]PokemonResponse, 0, len(entries))
	for _, p := range entries {
		out = append(out, FormatPokemon(p.ID, p.Name))
	}
	return PokemonListResponse{Pokemon: out}
}

// FormatRegionList keeps the order of regions.
func FormatRegionList(regions []domain.Region) RegionListResponse {
	out := make([]RegionResponse, 0, len(regions))
	for _, r := range regions {
		out = append(out, FormatRegion(r.ID, r.Name))
	}
	return RegionListResponse{Regions: out}
}

// FormatCount renders n in decimal.
func FormatCount(n int) CountResponse {
	return CountResponse{NumberOfPokemon: strconv.Itoa(n)}
}
