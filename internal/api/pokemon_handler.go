package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/JonasJore/pokemon-api/internal/api/shared"
	"github.com/JonasJore/pokemon-api/internal/dataset"
	"github.com/JonasJore/pokemon-api/internal/domain"
	"github.com/JonasJore/pokemon-api/internal/platform/logger"
	"github.com/go-chi/chi/v5"
)

// PokemonHandler serves the read-only dataset endpoints.
type PokemonHandler struct {
	facade    dataset.Facade
	validator *Validator
	logger    *slog.Logger
}

// NewPokemonHandler creates a new PokemonHandler
func NewPokemonHandler(facade dataset.Facade, logger *slog.Logger) *PokemonHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PokemonHandler")
	}

	return &PokemonHandler{
		facade:    facade,
		validator: NewValidator(facade),
		logger:    logger.With(slog.String("component", "pokemon_handler")),
	}
}

// GetByID handles GET /pokemon/id/{id} requests
func (h *PokemonHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	raw := pathParam(r, "id")
	id, err := h.validator.ValidateID(raw)
	if err != nil {
		log.Debug("invalid pokemon id", slog.String("id", raw), slog.String("error", err.Error()))
		HandleAPIError(w, r, err)
		return
	}

	p, ok := h.facade.PokemonByID(id)
	if !ok {
		log.Debug("pokemon id not in dataset", slog.Int("id", id))
		HandleAPIError(w, r, fmt.Errorf("%w: %d not in dataset", domain.ErrInvalidPokemonID, id))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, FormatPokemon(p.ID, p.Name))
}

// GetByName handles GET /pokemon/name/{name} requests
func (h *PokemonHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	raw := pathParam(r, "name")
	p, err := h.validator.ValidateName(raw)
	if err != nil {
		log.Debug("unknown pokemon name", slog.String("name", raw), slog.String("error", err.Error()))
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, FormatPokemon(p.ID, p.Name))
}

// GetAll handles GET /pokemon/all requests
func (h *PokemonHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, FormatPokemonList(h.facade.All()))
}

// GetRandom handles GET /pokemon/random requests
func (h *PokemonHandler) GetRandom(w http.ResponseWriter, r *http.Request) {
	p := h.facade.Random()
	shared.RespondWithJSON(w, r, http.StatusOK, FormatPokemon(p.ID, p.Name))
}

// GetCount handles GET /pokemon/number_of_pokemon requests
func (h *PokemonHandler) GetCount(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, FormatCount(h.facade.Count()))
}

// GetRegion handles GET /pokemon/region/{n} requests
func (h *PokemonHandler) GetRegion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	raw := pathParam(r, "n")
	region, err := h.validator.ValidateRegion(raw)
	if err != nil {
		log.Debug("unknown region", slog.String("region", raw), slog.String("error", err.Error()))
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, FormatRegion(region.ID, region.Name))
}

// GetAllRegions handles GET /pokemon/region/all requests.
// It walks the fixed range 1..domain.RegionCount rather than asking the
// dataset how many regions it holds.
func (h *PokemonHandler) GetAllRegions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	regions := make([]domain.Region, 0, domain.RegionCount)
	for id := 1; id <= domain.RegionCount; id++ {
		region, ok := h.facade.RegionByID(id)
		if !ok {
			log.Warn("region missing from dataset", slog.Int("region_id", id))
			continue
		}
		regions = append(regions, region)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, FormatRegionList(regions))
}

// GetRegionPokemon handles GET /pokemon/region/{n}/pokemon requests
func (h *PokemonHandler) GetRegionPokemon(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	raw := pathParam(r, "n")
	region, err := h.validator.ValidateRegion(raw)
	if err != nil {
		log.Debug("unknown region", slog.String("region", raw), slog.String("error", err.Error()))
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, FormatPokemonList(h.facade.PokemonInRegion(region.ID)))
}

// NotFound answers every unmatched path, and matched paths with the wrong method.
func (h *PokemonHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	HandleAPIError(w, r, domain.ErrPathNotFound)
}

// pathParam returns the decoded value of a chi URL parameter. chi matches
// against the raw path when the request carries escaped characters.
func pathParam(r *http.Request, key string) string {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value
	}
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}
