package dataset

import (
	"strings"
	"testing"

	"github.com/JonasJore/pokemon-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Equal(t, domain.MaxPokemonID, c.Count())

	for id := 1; id <= domain.MaxPokemonID; id++ {
		p, ok := c.PokemonByID(id)
		require.True(t, ok, "id %d missing", id)
		assert.NotEmpty(t, p.Name)
	}

	for id := 1; id <= domain.RegionCount; id++ {
		_, ok := c.RegionByID(id)
		assert.True(t, ok, "region %d missing", id)
	}

	known := map[string]int{"Bulbasaur": 1, "Pikachu": 25, "Mr. Mime": 122, "Ho-Oh": 250, "Miraidon": 1008}
	for name, id := range known {
		p, ok := c.PokemonByName(name)
		require.True(t, ok, name)
		assert.Equal(t, id, p.ID, name)
	}

	kanto := c.PokemonInRegion(1)
	assert.Len(t, kanto, 151)
	paldea, _ := c.RegionByID(9)
	assert.Equal(t, "Paldea", paldea.Name)
}

func TestParsePokemon(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := ParsePokemon(strings.NewReader("id,name,region_id\n1,Bulbasaur,1\n122,\"Mr. Mime\",1\n"))
		require.NoError(t, err)
		assert.Equal(t, []domain.Pokemon{
			{ID: 1, Name: "Bulbasaur", RegionID: 1},
			{ID: 122, Name: "Mr. Mime", RegionID: 1},
		}, got)
	})

	bad := map[string]string{
		"empty":          "",
		"non numeric id": "id,name,region_id\nx,Bulbasaur,1\n",
		"bad region":     "id,name,region_id\n1,Bulbasaur,one\n",
		"missing column": "id,name,region_id\n1,Bulbasaur\n",
	}
	for name, input := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePokemon(strings.NewReader(input))
			assert.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}

func TestParseRegions(t *testing.T) {
	got, err := ParseRegions(strings.NewReader("id,region_name\n1,Kanto\n"))
	require.NoError(t, err)
	assert.Equal(t, []domain.Region{{ID: 1, Name: "Kanto"}}, got)

	_, err = ParseRegions(strings.NewReader("id,region_name\nfirst,Kanto\n"))
	assert.ErrorIs(t, err, ErrMalformedRecord)
}
