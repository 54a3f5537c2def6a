package factors

import (
	"fmt"
	"strings"
)

// Scope selects which factor table variant applies to a calculation.
type Scope int

const (
	// ScopeGlobal uses the global default factor table only.
	ScopeGlobal Scope = iota
	// ScopeAfrica consults the African grid override table before
	// falling back to the global defaults.
	ScopeAfrica
)

// String returns the lowercase scope name used in configs and the API.
func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeAfrica:
		return "africa"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// Country is an ISO-ish country code for the African override table.
// CountrySubSaharanAverage is a synthetic bucket covering countries
// without dedicated grid data.
type Country string

const (
	CountryNigeria           Country = "NG"
	CountrySouthAfrica       Country = "ZA"
	CountryKenya             Country = "KE"
	CountryGhana             Country = "GH"
	CountryEgypt             Country = "EG"
	CountryEthiopia          Country = "ET"
	CountrySubSaharanAverage Country = "SSA"
)

// Region is the geographic context selected once per calculation.
// It is a closed tagged variant: either the global default, or an
// African country whose grid mix overrides the electricity factor.
type Region struct {
	scope   Scope
	country Country
}

// GlobalRegion returns the region using global default factors.
func GlobalRegion() Region {
	return Region{scope: ScopeGlobal}
}

// AfricaRegion returns a region scoped to the given African country.
func AfricaRegion(country Country) Region {
	return Region{scope: ScopeAfrica, country: country}
}

// Scope reports which table variant this region selects.
func (r Region) Scope() Scope { return r.scope }

// Country returns the country code. Empty for global regions.
func (r Region) Country() Country { return r.country }

// IsAfrica reports whether this region consults the African override table.
func (r Region) IsAfrica() bool { return r.scope == ScopeAfrica }

// String renders the region for logs, e.g. "global" or "africa/KE".
func (r Region) String() string {
	if r.scope == ScopeAfrica {
		return "africa/" + string(r.country)
	}
	return r.scope.String()
}

// ParseScope converts a scope name ("global", "africa") to a Scope.
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "global", "":
		return ScopeGlobal, nil
	case "africa":
		return ScopeAfrica, nil
	default:
		return ScopeGlobal, fmt.Errorf("unknown region scope %q", s)
	}
}

// ParseCountry converts a country code to a Country. Matching is
// case-insensitive; the empty string is rejected.
func ParseCountry(s string) (Country, error) {
	c := Country(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case CountryNigeria, CountrySouthAfrica, CountryKenya,
		CountryGhana, CountryEgypt, CountryEthiopia, CountrySubSaharanAverage:
		return c, nil
	default:
		return "", fmt.Errorf("unknown country code %q", s)
	}
}

// ParseRegion builds a Region from scope and country strings as supplied
// by the CLI and the HTTP API. A country is required for the africa scope
// and rejected for the global scope.
func ParseRegion(scope, country string) (Region, error) {
	sc, err := ParseScope(scope)
	if err != nil {
		return Region{}, err
	}
	if sc == ScopeGlobal {
		if strings.TrimSpace(country) != "" {
			return Region{}, fmt.Errorf("country %q is only valid for the africa scope", country)
		}
		return GlobalRegion(), nil
	}
	c, err := ParseCountry(country)
	if err != nil {
		return Region{}, fmt.Errorf("africa scope requires a country: %w", err)
	}
	return AfricaRegion(c), nil
}
