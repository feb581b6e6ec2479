package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	// Middlewares are applied, in order, before any route is registered.
	Middlewares []func(http.Handler) http.Handler
}

// NewRouter creates a chi router serving the dataset endpoints under /pokemon.
// Unmatched paths and wrong methods answer 404 with a NotFound error body.
// Callers may register further routes on the returned router.
func NewRouter(h *PokemonHandler, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	for _, mw := range opts.Middlewares {
		r.Use(mw)
	}

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.NotFound)

	RegisterRoutes(r, h)
	return r
}

// RegisterRoutes declares the dataset endpoints on r.
func RegisterRoutes(r chi.Router, h *PokemonHandler) {
	r.Route("/pokemon", func(r chi.Router) {
		r.Get("/id/{id}", h.GetByID)
		r.Get("/name/{name}", h.GetByName)
		r.Get("/all", h.GetAll)
		r.Get("/random", h.GetRandom)
		r.Get("/number_of_pokemon", h.GetCount)
		r.Get("/region/all", h.GetAllRegions)
		r.Get("/region/{n}", h.GetRegion)
		r.Get("/region/{n}/pokemon", h.GetRegionPokemon)
	})
}
