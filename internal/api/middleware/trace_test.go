package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JonasJore/pokemon-api/internal/api/shared"
	"github.com/JonasJore/pokemon-api/internal/platform/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware_GeneratesTraceID(t *testing.T) {
	log, logBuf := logger.GetTestLogger(t)

	var seen string
	var hasLogger bool
	handler := NewTraceMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.GetTraceID(r.Context())
		hasLogger = logger.FromContext(r.Context()) != nil
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/pokemon/all", nil))

	require.NotEmpty(t, seen)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.True(t, hasLogger)
	assert.Equal(t, seen, rr.Header().Get(shared.TraceIDHeader))

	logger.AssertLogContains(t, logBuf, "request completed")
	logger.AssertLogField(t, logBuf, "trace_id", seen)
	logger.AssertLogField(t, logBuf, "status", float64(http.StatusTeapot))
}

func TestTraceMiddleware_ReusesValidIncomingID(t *testing.T) {
	log, _ := logger.GetTestLogger(t)
	incoming := uuid.NewString()

	var seen string
	handler := NewTraceMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.GetTraceID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/pokemon/random", nil)
	req.Header.Set(shared.TraceIDHeader, incoming)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, incoming, seen)
	assert.Equal(t, incoming, rr.Header().Get(shared.TraceIDHeader))
}

func TestTraceMiddleware_ReplacesInvalidIncomingID(t *testing.T) {
	log, logBuf := logger.GetTestLogger(t)

	var seen string
	handler := NewTraceMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.GetTraceID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/pokemon/random", nil)
	req.Header.Set(shared.TraceIDHeader, "not-a-uuid\nforged")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.NotEqual(t, "not-a-uuid\nforged", seen)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.NotContains(t, logBuf.String(), "forged")
	logger.AssertLogField(t, logBuf, "status", float64(http.StatusOK))
}
