package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JonasJore/pokemon-api/internal/platform/logger"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"-"` // Not serialized to JSON, used for logging
}

// NewErrorResponse builds the error body for a status, error kind and message.
func NewErrorResponse(status int, kind, message string) ErrorResponse {
	return ErrorResponse{
		Error:   kind,
		Message: message,
		Code:    status,
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status code,
// error kind and client-facing message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, kind, message string) {
	errorResponse := NewErrorResponse(status, kind, message)

	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	logger.FromContextOrDefault(r.Context(), slog.Default()).LogAttrs(r.Context(), level,
		"sending error response",
		slog.Int("status_code", errorResponse.Code),
		slog.String("error_kind", kind),
		slog.String("message", message),
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, status, errorResponse)
}
