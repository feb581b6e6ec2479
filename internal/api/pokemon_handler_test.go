package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JonasJore/pokemon-api/internal/domain"
	"github.com/JonasJore/pokemon-api/internal/mocks"
	"github.com/JonasJore/pokemon-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h *PokemonHandler, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	router := NewRouter(h, RouterOptions{})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func TestPokemonHandler_GetByID(t *testing.T) {
	log, _ := logger.GetTestLogger(t)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			path:           "/pokemon/id/25",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":25,"name":"Pikachu"}`,
		},
		{
			name:           "Out of range",
			path:           "/pokemon/id/1009",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"InvalidArgument","message":"Given id must be a valid pokemon id"}`,
		},
		{
			name:           "Non-numeric",
			path:           "/pokemon/id/pikachu",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"InvalidArgument","message":"Given id must be a valid pokemon id"}`,
		},
		{
			name:           "In range but missing from dataset",
			path:           "/pokemon/id/500",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"InvalidArgument","message":"Given id must be a valid pokemon id"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewPokemonHandler(newTestFacade(), log)
			rr := serve(t, h, http.MethodGet, tc.path)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestPokemonHandler_GetByName(t *testing.T) {
	log, _ := logger.GetTestLogger(t)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Canonical",
			path:           "/pokemon/name/Pikachu",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":25,"name":"Pikachu"}`,
		},
		{
			name:           "Lower-case first letter",
			path:           "/pokemon/name/pikachu",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":25,"name":"Pikachu"}`,
		},
		{
			name:           "Escaped space",
			path:           "/pokemon/name/mr.%20Mime",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":122,"name":"Mr. Mime"}`,
		},
		{
			name:           "Escaped non-ascii",
			path:           "/pokemon/name/flab%C3%A9b%C3%A9",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":669,"name":"Flabébé"}`,
		},
		{
			name:           "Unknown",
			path:           "/pokemon/name/Notarealpokemon",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"InvalidArgument","message":"Pokemon does not exist"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewPokemonHandler(newTestFacade(), log)
			rr := serve(t, h, http.MethodGet, tc.path)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestPokemonHandler_GetAllAndCount(t *testing.T) {
	log, _ := logger.GetTestLogger(t)
	h := NewPokemonHandler(newTestFacade(), log)

	rr := serve(t, h, http.MethodGet, "/pokemon/all")
	require.Equal(t, http.StatusOK, rr.Code)

	var all PokemonListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &all))
	require.Len(t, all.Pokemon, 5)
	assert.Equal(t, "Bulbasaur", all.Pokemon[0].Name)

	rr = serve(t, h, http.MethodGet, "/pokemon/number_of_pokemon")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"numberOfPokemon":"5"}`, rr.Body.String())
}

func TestPokemonHandler_GetAll_EmptyDataset(t *testing.T) {
	log, _ := logger.GetTestLogger(t)
	h := NewPokemonHandler(mocks.NewMockFacade(), log)

	rr := serve(t, h, http.MethodGet, "/pokemon/all")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"pokemon":[]}`, rr.Body.String())
}

func TestPokemonHandler_GetRandom(t *testing.T) {
	log, _ := logger.GetTestLogger(t)
	facade := newTestFacade()
	facade.RandomFn = func() domain.Pokemon {
		return domain.Pokemon{ID: 152, Name: "Chikorita", RegionID: 2}
	}
	h := NewPokemonHandler(facade, log)

	rr := serve(t, h, http.MethodGet, "/pokemon/random")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":152,"name":"Chikorita"}`, rr.Body.String())
	assert.Equal(t, 1, facade.Calls("Random"))
}

func TestPokemonHandler_GetRegion(t *testing.T) {
	log, _ := logger.GetTestLogger(t)
	h := NewPokemonHandler(newTestFacade(), log)

	rr := serve(t, h, http.MethodGet, "/pokemon/region/2")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":2,"region_name":"Johto"}`, rr.Body.String())

	for _, path := range []string{"/pokemon/region/3", "/pokemon/region/0", "/pokemon/region/kanto"} {
		rr = serve(t, h, http.MethodGet, path)
		assert.Equal(t, http.StatusBadRequest, rr.Code, path)
		assert.JSONEq(t, `{"error":"InvalidArgument","message":"Region does not exist"}`, rr.Body.String(), path)
	}
}

func TestPokemonHandler_LookupsHitFacadeOnce(t *testing.T) {
	log, _ := logger.GetTestLogger(t)

	tests := []struct {
		name   string
		path   string
		method string
	}{
		{name: "By name", path: "/pokemon/name/pikachu", method: "PokemonByName"},
		{name: "Region", path: "/pokemon/region/1", method: "RegionByID"},
		{name: "Region pokemon", path: "/pokemon/region/1/pokemon", method: "RegionByID"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			facade := newTestFacade()
			h := NewPokemonHandler(facade, log)

			rr := serve(t, h, http.MethodGet, tc.path)
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, 1, facade.Calls(tc.method))
		})
	}
}

func TestPokemonHandler_GetAllRegions_SkipsMissing(t *testing.T) {
	log, logBuf := logger.GetTestLogger(t)
	facade := newTestFacade()
	h := NewPokemonHandler(facade, log)

	rr := serve(t, h, http.MethodGet, "/pokemon/region/all")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"regions":[{"id":1,"region_name":"Kanto"},{"id":2,"region_name":"Johto"}]}`,
		rr.Body.String())

	assert.Equal(t, domain.RegionCount, facade.Calls("RegionByID"))
	logger.AssertLogContains(t, logBuf, "region missing from dataset")
}

func TestPokemonHandler_GetRegionPokemon(t *testing.T) {
	log, _ := logger.GetTestLogger(t)
	h := NewPokemonHandler(newTestFacade(), log)

	rr := serve(t, h, http.MethodGet, "/pokemon/region/2/pokemon")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"pokemon":[{"id":152,"name":"Chikorita"}]}`, rr.Body.String())

	rr = serve(t, h, http.MethodGet, "/pokemon/region/7/pokemon")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"InvalidArgument","message":"Region does not exist"}`, rr.Body.String())
}

func TestPokemonHandler_NotFound(t *testing.T) {
	log, _ := logger.GetTestLogger(t)
	h := NewPokemonHandler(newTestFacade(), log)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "Unknown path", method: http.MethodGet, path: "/nonexistent/path"},
		{name: "Root", method: http.MethodGet, path: "/"},
		{name: "Prefix only", method: http.MethodGet, path: "/pokemon"},
		{name: "Missing id", method: http.MethodGet, path: "/pokemon/id/"},
		{name: "Trailing segment", method: http.MethodGet, path: "/pokemon/id/1/extra"},
		{name: "Wrong method", method: http.MethodPost, path: "/pokemon/all"},
		{name: "Wrong method with param", method: http.MethodDelete, path: "/pokemon/id/1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := serve(t, h, tc.method, tc.path)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"error":"NotFound","message":"Invalid path"}`, rr.Body.String())
		})
	}
}

func TestNewPokemonHandler_NilDependenciesPanic(t *testing.T) {
	log, _ := logger.GetTestLogger(t)

	assert.Panics(t, func() { NewPokemonHandler(newTestFacade(), nil) })
	assert.Panics(t, func() { NewPokemonHandler(nil, log) })
}
