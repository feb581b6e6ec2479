// Package mocks provides centralized mock implementations for testing.
//
// Mocks expose a function field per interface method so each test can set only
// the behavior it needs, and record the calls made to them for verification.
//
// Usage:
//
//	import "github.com/JonasJore/pokemon-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    facade := mocks.NewMockFacade(
//	        mocks.WithPokemon(domain.Pokemon{ID: 25, Name: "Pikachu", RegionID: 1}),
//	    )
//
//	    // Use the mock in your test...
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Document any helper methods or special functionality
package mocks
