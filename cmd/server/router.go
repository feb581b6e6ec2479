package main

import (
	"net/http"

	"github.com/JonasJore/pokemon-api/internal/api"
	apiMiddleware "github.com/JonasJore/pokemon-api/internal/api/middleware"
	"github.com/go-chi/chi/v5/middleware"
)

// setupRouter creates the application router with middleware, the dataset
// routes and the operational endpoints.
func (app *application) setupRouter() http.Handler {
	middlewares := []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.RealIP,
		apiMiddleware.NewTraceMiddleware(app.logger),
	}
	if app.metrics != nil {
		middlewares = append(middlewares, app.metrics.Middleware)
	}
	// innermost, so panics are still traced and counted as 500s
	middlewares = append(middlewares, middleware.Recoverer)

	handler := api.NewPokemonHandler(app.facade, app.logger)
	r := api.NewRouter(handler, api.RouterOptions{Middlewares: middlewares})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	if app.metrics != nil {
		r.Method(http.MethodGet, app.config.Metrics.Path, app.metrics.Handler())
	}

	return r
}
