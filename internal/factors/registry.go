// Package factors provides the emission factor registry: static lookup
// tables mapping activity keys to kg CO2e per unit, with an African
// grid override table keyed by country.
package factors

import (
	_ "embed"
	"fmt"
	"sort"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

//go:embed data/global_factors.json
var rawGlobalJSON []byte

//go:embed data/africa_grid.json
var rawAfricaGridJSON []byte

// globalTable is the embedded schema of data/global_factors.json.
type globalTable struct {
	Version string          `json:"version"`
	Source  string          `json:"source"`
	Factors map[Key]float64 `json:"factors"`
}

// gridTable is the embedded schema of data/africa_grid.json.
type gridTable struct {
	Version   string                   `json:"version"`
	Source    string                   `json:"source"`
	Overrides map[Country]countryEntry `json:"overrides"`
}

type countryEntry struct {
	Name    string          `json:"name"`
	Factors map[Key]float64 `json:"factors"`
}

// UnknownKeyError reports a factor key absent from both the regional
// override table and the global defaults. It signals a missing table
// entry (a configuration defect), never bad user input, and must not
// be defaulted to zero.
type UnknownKeyError struct {
	Key Key
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown emission factor key %q", e.Key)
}

// Registry resolves (region, key) pairs to emission factors. Tables are
// parsed from embedded JSON once at construction and are immutable
// afterwards, so a Registry is safe for concurrent use.
type Registry struct {
	logger zerolog.Logger

	global    map[Key]float64
	overrides map[Country]map[Key]float64
	names     map[Country]string
	version   string
}

// NewRegistry parses the embedded factor tables and returns a ready
// Registry. It fails only if the embedded data is malformed, which is a
// build defect rather than a runtime condition.
func NewRegistry(logger zerolog.Logger) (*Registry, error) {
	var global globalTable
	if err := json.Unmarshal(rawGlobalJSON, &global); err != nil {
		return nil, fmt.Errorf("failed to parse global factor table: %w", err)
	}
	if len(global.Factors) == 0 {
		return nil, fmt.Errorf("global factor table is empty")
	}

	var grid gridTable
	if err := json.Unmarshal(rawAfricaGridJSON, &grid); err != nil {
		return nil, fmt.Errorf("failed to parse africa grid table: %w", err)
	}

	r := &Registry{
		logger:    logger,
		global:    global.Factors,
		overrides: make(map[Country]map[Key]float64, len(grid.Overrides)),
		names:     make(map[Country]string, len(grid.Overrides)),
		version:   global.Version,
	}
	for country, entry := range grid.Overrides {
		for key := range entry.Factors {
			if _, ok := global.Factors[key]; !ok {
				return nil, fmt.Errorf("override %s/%s has no global default", country, key)
			}
		}
		r.overrides[country] = entry.Factors
		r.names[country] = entry.Name
	}

	logger.Debug().
		Str("version", global.Version).
		Int("global_factors", len(global.Factors)).
		Int("country_overrides", len(grid.Overrides)).
		Msg("emission factor registry loaded")

	return r, nil
}

// Resolve returns the emission factor for key in the given region.
// African regions consult the country override table first and fall
// back to the global default; every key present in the global table
// therefore resolves for any region. A key absent from both tables
// fails with *UnknownKeyError.
func (r *Registry) Resolve(region Region, key Key) (float64, error) {
	if region.IsAfrica() {
		if table, ok := r.overrides[region.Country()]; ok {
			if factor, ok := table[key]; ok {
				return factor, nil
			}
		}
	}
	if factor, ok := r.global[key]; ok {
		return factor, nil
	}
	return 0, &UnknownKeyError{Key: key}
}

// GridFactor returns the electricity grid factor for an African country
// and whether the country has a dedicated override.
func (r *Registry) GridFactor(country Country) (float64, bool) {
	table, ok := r.overrides[country]
	if !ok {
		return 0, false
	}
	factor, ok := table[KeyElectricityKWh]
	return factor, ok
}

// CountryName returns the display name recorded for a country override.
func (r *Registry) CountryName(country Country) string {
	return r.names[country]
}

// Countries returns the override country codes in sorted order.
func (r *Registry) Countries() []Country {
	out := make([]Country, 0, len(r.overrides))
	for c := range r.overrides {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Keys returns every key in the global table in sorted order.
func (r *Registry) Keys() []Key {
	out := make([]Key, 0, len(r.global))
	for k := range r.global {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Version returns the data vintage of the loaded tables.
func (r *Registry) Version() string {
	return r.version
}
