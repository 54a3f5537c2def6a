// Package estimate computes annual carbon footprint estimates from
// lifestyle inputs and resolved regional emission factors.
package estimate

import (
	"fmt"
	"strings"

	"github.com/ecometric/footprint/internal/factors"
)

// Category is a top-level grouping of the footprint breakdown.
type Category string

const (
	CategoryHousing   Category = "Housing"
	CategoryTransport Category = "Transport"
	CategoryDiet      Category = "Diet"
)

// DietType is the closed set of diet profiles. Each maps to a per-day
// emission factor in the registry.
type DietType string

const (
	DietTypical     DietType = "typical"
	DietAverage     DietType = "average"
	DietMeatRegular DietType = "meat_regular"
	DietMeatHeavy   DietType = "meat_heavy"
	DietVegetarian  DietType = "vegetarian"
	DietVegan       DietType = "vegan"
)

// factorKey returns the registry key for this diet and whether the
// diet belongs to the enumeration.
func (d DietType) factorKey() (factors.Key, bool) {
	switch d {
	case DietTypical:
		return factors.KeyDietTypical, true
	case DietAverage:
		return factors.KeyDietAverage, true
	case DietMeatRegular:
		return factors.KeyDietMeatRegular, true
	case DietMeatHeavy:
		return factors.KeyDietMeatHeavy, true
	case DietVegetarian:
		return factors.KeyDietVegetarian, true
	case DietVegan:
		return factors.KeyDietVegan, true
	default:
		return "", false
	}
}

// MeatBased reports whether the diet is a meat-centric profile. The
// typical diet includes occasional meat but does not count as
// meat-based for recommendation purposes.
func (d DietType) MeatBased() bool {
	return d == DietMeatRegular || d == DietMeatHeavy
}

// ParseDietType converts a diet name to a DietType.
func ParseDietType(s string) (DietType, error) {
	d := DietType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := d.factorKey(); !ok {
		return "", fmt.Errorf("unknown diet type %q", s)
	}
	return d, nil
}

// CarFuel is the closed set of car fuel types.
type CarFuel string

const (
	FuelGasoline CarFuel = "gasoline"
	FuelDiesel   CarFuel = "diesel"
)

// factorKey returns the per-km registry key for this fuel. The empty
// fuel defaults to gasoline, matching the form's default selection.
func (f CarFuel) factorKey() (factors.Key, bool) {
	switch f {
	case FuelGasoline, "":
		return factors.KeyCarGasolineKm, true
	case FuelDiesel:
		return factors.KeyCarDieselKm, true
	default:
		return "", false
	}
}

// UserInputs is the raw lifestyle record supplied by the caller.
// Housing quantities are per month, transport distances per week,
// flight hours per year. All quantities must be non-negative.
type UserInputs struct {
	// Housing.
	ElectricityKWhMonth   float64 `json:"electricity_kwh_month"`
	NaturalGasThermsMonth float64 `json:"natural_gas_therms_month"`
	HeatingOilLitersMonth float64 `json:"heating_oil_liters_month"`
	PropaneLitersMonth    float64 `json:"propane_liters_month"`
	LPGKgMonth            float64 `json:"lpg_kg_month"`

	// Transport.
	CarKmWeek        float64 `json:"car_km_week"`
	CarFuel          CarFuel `json:"car_fuel,omitempty"`
	MotorcycleKmWeek float64 `json:"motorcycle_km_week"`
	BusKmWeek        float64 `json:"bus_km_week"`
	TrainKmWeek      float64 `json:"train_km_week"`
	FlightHoursYear  float64 `json:"flight_hours_year"`

	// Diet.
	Diet DietType `json:"diet"`
}

// BreakdownLine is a single itemized contribution to the footprint,
// preserved for chart rendering.
type BreakdownLine struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	KgCO2e   float64  `json:"kg_co2e"`
}

// Line labels, stable across regions so recommendation rules can
// target them.
const (
	LineElectricity = "Housing: Electricity"
	LineNaturalGas  = "Housing: Natural Gas"
	LineHeatingOil  = "Housing: Heating Oil"
	LinePropane     = "Housing: Propane"
	LineLPG         = "Housing: Cooking (LPG)"
	LineCar         = "Transport: Car"
	LineMotorcycle  = "Transport: Motorcycle"
	LineBus         = "Transport: Bus"
	LineTrain       = "Transport: Train"
	LineFlights     = "Transport: Flights"
	LineDiet        = "Diet"
)

// FootprintResult is the annual estimate in kg CO2e. It is derived
// once per calculation and never mutated; Total is the exact sum of
// the three category subtotals.
type FootprintResult struct {
	Housing   float64         `json:"housing_kg"`
	Transport float64         `json:"transport_kg"`
	Diet      float64         `json:"diet_kg"`
	Total     float64         `json:"total_kg"`
	Lines     []BreakdownLine `json:"lines"`
}

// Line returns the value of the breakdown line with the given label,
// or zero when the line is absent for the region.
func (r *FootprintResult) Line(label string) float64 {
	for _, l := range r.Lines {
		if l.Label == label {
			return l.KgCO2e
		}
	}
	return 0
}
