package dataset

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/JonasJore/pokemon-api/internal/domain"
)

//go:embed data/pokemon.csv data/regions.csv
var dataFS embed.FS

const (
	pokemonFile = "data/pokemon.csv"
	regionsFile = "data/regions.csv"
)

// LoadEmbedded builds a Catalog from the dataset compiled into the binary.
func LoadEmbedded(opts ...Option) (*Catalog, error) {
	pf, err := dataFS.Open(pokemonFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", pokemonFile, err)
	}
	defer pf.Close()

	pokemon, err := ParsePokemon(pf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", pokemonFile, err)
	}

	rf, err := dataFS.Open(regionsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", regionsFile, err)
	}
	defer rf.Close()

	regions, err := ParseRegions(rf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", regionsFile, err)
	}

	return NewCatalog(pokemon, regions, opts...)
}

// ParsePokemon reads "id,name,region_id" records. The first record is a header.
func ParsePokemon(r io.Reader) ([]domain.Pokemon, error) {
	records, err := readRecords(r, 3)
	if err != nil {
		return nil, err
	}

	pokemon := make([]domain.Pokemon, 0, len(records))
	for _, rec := range records {
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("%w: id %q", ErrMalformedRecord, rec[0])
		}
		regionID, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("%w: region id %q", ErrMalformedRecord, rec[2])
		}
		pokemon = append(pokemon, domain.Pokemon{ID: id, Name: rec[1], RegionID: regionID})
	}
	return pokemon, nil
}

// ParseRegions reads "id,region_name" records. The first record is a header.
func ParseRegions(r io.Reader) ([]domain.Region, error) {
	records, err := readRecords(r, 2)
	if err != nil {
		return nil, err
	}

	regions := make([]domain.Region, 0, len(records))
	for _, rec := range records {
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("%w: id %q", ErrMalformedRecord, rec[0])
		}
		regions = append(regions, domain.Region{ID: id, Name: rec[1]})
	}
	return regions, nil
}

// readRecords returns every record after the header, each with exactly fields columns.
func readRecords(r io.Reader, fields int) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = fields

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header", ErrMalformedRecord)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return records, nil
}
