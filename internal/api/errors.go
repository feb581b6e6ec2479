package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/JonasJore/pokemon-api/internal/api/shared"
	"github.com/JonasJore/pokemon-api/internal/domain"
)

// ErrorKind is the value of the "error" field of an error response.
type ErrorKind string

// Error kinds returned to clients.
const (
	KindInvalidArgument ErrorKind = "InvalidArgument"
	KindNotFound        ErrorKind = "NotFound"
)

// Client-facing messages.
const (
	MsgInvalidPokemonID = "Given id must be a valid pokemon id"
	MsgPokemonNotFound  = "Pokemon does not exist"
	MsgRegionNotFound   = "Region does not exist"
	MsgInvalidPath      = "Invalid path"
)

// MapErrorToStatusCode maps request errors to HTTP status codes.
// Unknown errors map to 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrPathNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// MapErrorToKind maps request errors to the error kind reported to clients.
// The second result is false for errors outside the two modeled kinds.
func MapErrorToKind(err error) (ErrorKind, bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return KindInvalidArgument, true
	case errors.Is(err, domain.ErrPathNotFound):
		return KindNotFound, true
	default:
		return "", false
	}
}

// GetSafeErrorMessage returns the client-facing message for a request error.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidPokemonID):
		return MsgInvalidPokemonID
	case errors.Is(err, domain.ErrPokemonNotFound):
		return MsgPokemonNotFound
	case errors.Is(err, domain.ErrRegionNotFound):
		return MsgRegionNotFound
	case errors.Is(err, domain.ErrPathNotFound):
		return MsgInvalidPath
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the error response for a request error.
// Errors outside the modeled kinds are defects: they panic so the recoverer
// middleware logs them with a stack trace and answers 500.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	kind, ok := MapErrorToKind(err)
	if !ok {
		// ALLOW-PANIC: unmodeled errors are programming defects
		panic(fmt.Errorf("unmodeled request error: %w", err))
	}
	shared.RespondWithError(w, r, MapErrorToStatusCode(err), string(kind), GetSafeErrorMessage(err))
}
