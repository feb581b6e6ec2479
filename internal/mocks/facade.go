package mocks

import (
	"sync"

	"github.com/JonasJore/pokemon-api/internal/domain"
)

// MockFacade implements dataset.Facade for testing.
//
// Without function overrides it serves the entries and regions it was
// configured with, in insertion order.
type MockFacade struct {
	PokemonByIDFn     func(id int) (domain.Pokemon, bool)
	PokemonByNameFn   func(name string) (domain.Pokemon, bool)
	RegionByIDFn      func(id int) (domain.Region, bool)
	PokemonInRegionFn func(regionID int) []domain.Pokemon
	AllFn             func() []domain.Pokemon
	CountFn           func() int
	RandomFn          func() domain.Pokemon

	// Default data
	Pokemon []domain.Pokemon
	Regions []domain.Region

	mu    sync.Mutex
	calls map[string]int
}

// MockFacadeOption configures a MockFacade.
type MockFacadeOption func(*MockFacade)

// WithPokemon appends entries to the default data.
func WithPokemon(entries ...domain.Pokemon) MockFacadeOption {
	return func(m *MockFacade) {
		m.Pokemon = append(m.Pokemon, entries...)
	}
}

// WithRegions appends regions to the default data.
func WithRegions(regions ...domain.Region) MockFacadeOption {
	return func(m *MockFacade) {
		m.Regions = append(m.Regions, regions...)
	}
}

// WithRandomFn sets a custom function for Random.
func WithRandomFn(fn func() domain.Pokemon) MockFacadeOption {
	return func(m *MockFacade) {
		m.RandomFn = fn
	}
}

// NewMockFacade creates a new MockFacade with the given options.
func NewMockFacade(opts ...MockFacadeOption) *MockFacade {
	m := &MockFacade{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Calls returns how many times the named method has been called.
func (m *MockFacade) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// Reset clears the call tracking state.
func (m *MockFacade) Reset() {
	m.mu.Lock()
	m.calls = nil
	m.mu.Unlock()
}

func (m *MockFacade) record(method string) {
	m.mu.Lock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
	m.mu.Unlock()
}

// PokemonByID implements dataset.Facade.
func (m *MockFacade) PokemonByID(id int) (domain.Pokemon, bool) {
	m.record("PokemonByID")
	if m.PokemonByIDFn != nil {
		return m.PokemonByIDFn(id)
	}
	for _, p := range m.Pokemon {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Pokemon{}, false
}

// PokemonByName implements dataset.Facade.
func (m *MockFacade) PokemonByName(name string) (domain.Pokemon, bool) {
	m.record("PokemonByName")
	if m.PokemonByNameFn != nil {
		return m.PokemonByNameFn(name)
	}
	for _, p := range m.Pokemon {
		if p.Name == name {
			return p, true
		}
	}
	return domain.Pokemon{}, false
}

// RegionByID implements dataset.Facade.
func (m *MockFacade) RegionByID(id int) (domain.Region, bool) {
	m.record("RegionByID")
	if m.RegionByIDFn != nil {
		return m.RegionByIDFn(id)
	}
	for _, r := range m.Regions {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Region{}, false
}

// PokemonInRegion implements dataset.Facade.
func (m *MockFacade) PokemonInRegion(regionID int) []domain.Pokemon {
	m.record("PokemonInRegion")
	if m.PokemonInRegionFn != nil {
		return m.PokemonInRegionFn(regionID)
	}
	var out []domain.Pokemon
	for _, p := range m.Pokemon {
		if p.RegionID == regionID {
			out = append(out, p)
		}
	}
	return out
}

// All implements dataset.Facade.
func (m *MockFacade) All() []domain.Pokemon {
	m.record("All")
	if m.AllFn != nil {
		return m.AllFn()
	}
	out := make([]domain.Pokemon, len(m.Pokemon))
	copy(out, m.Pokemon)
	return out
}

// Count implements dataset.Facade.
func (m *MockFacade) Count() int {
	m.record("Count")
	if m.CountFn != nil {
		return m.CountFn()
	}
	return len(m.Pokemon)
}

// Random implements dataset.Facade. Without RandomFn it returns the first
// configured entry, or the zero value when there is none.
func (m *MockFacade) Random() domain.Pokemon {
	m.record("Random")
	if m.RandomFn != nil {
		return m.RandomFn()
	}
	if len(m.Pokemon) == 0 {
		return domain.Pokemon{}
	}
	return m.Pokemon[0]
}
