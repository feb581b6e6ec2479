package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetricsRouter(m *Metrics) *chi.Mux {
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/pokemon/id/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "0" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	return r
}

func TestMetrics_RecordsByRoutePattern(t *testing.T) {
	m := NewMetrics("pokemon")
	router := newMetricsRouter(m)

	for _, path := range []string{"/pokemon/id/1", "/pokemon/id/2", "/pokemon/id/0", "/nope"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/pokemon/id/{id}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/pokemon/id/{id}", "400")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", unmatchedRoute, "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))
}

func TestMetrics_CollapsesNonStandardMethods(t *testing.T) {
	m := NewMetrics("pokemon")
	router := newMetricsRouter(m)

	for _, method := range []string{"FOO", "BAR", "PURGE", http.MethodGet} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(method, "/nope", nil))
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.requests.WithLabelValues(otherMethod, unmatchedRoute, "405")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", unmatchedRoute, "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.requests))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestMethodLabel(t *testing.T) {
	tests := []struct {
		method   string
		expected string
	}{
		{method: http.MethodGet, expected: "GET"},
		{method: http.MethodHead, expected: "HEAD"},
		{method: http.MethodDelete, expected: "DELETE"},
		{method: "get", expected: otherMethod},
		{method: "BREW", expected: otherMethod},
		{method: "", expected: otherMethod},
	}

	for _, tc := range tests {
		t.Run(tc.method, func(t *testing.T) {
			assert.Equal(t, tc.expected, methodLabel(tc.method))
		})
	}
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics("pokemon")
	router := newMetricsRouter(m)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/pokemon/id/25", nil))

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.True(t, strings.Contains(body, "pokemon_http_requests_total"))
	assert.True(t, strings.Contains(body, "pokemon_http_request_duration_seconds_bucket"))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
