package estimate

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ecometric/footprint/internal/factors"
)

const (
	// MonthsPerYear annualizes monthly housing quantities.
	MonthsPerYear = 12.0

	// WeeksPerYear annualizes weekly transport distances.
	WeeksPerYear = 52.0

	// DaysPerYear annualizes per-day diet factors.
	DaysPerYear = 365.0

	// CruiseKmPerHour converts flight hours to distance for the
	// short-haul plane factor.
	CruiseKmPerHour = 500.0
)

// Estimator computes annual footprint estimates. It holds no mutable
// state: identical (inputs, region) pairs always produce identical
// results, so a single Estimator is safe for concurrent use.
type Estimator struct {
	registry *factors.Registry
	logger   zerolog.Logger
}

// NewEstimator returns an Estimator resolving factors from the given
// registry. The registry is passed explicitly, never read from ambient
// state.
func NewEstimator(registry *factors.Registry, logger zerolog.Logger) *Estimator {
	return &Estimator{registry: registry, logger: logger}
}

// Estimate validates inputs, resolves the applicable emission factors
// for region, and returns the annual per-category breakdown in kg CO2e.
//
// Validation runs before any factor resolution and fails with
// *InvalidInputError. A factor key missing from the registry fails with
// a wrapped *factors.UnknownKeyError; that is a configuration defect
// and is never remapped to a user-facing input error.
func (e *Estimator) Estimate(inputs UserInputs, region factors.Region) (*FootprintResult, error) {
	if err := validate(inputs, region); err != nil {
		return nil, err
	}

	acc := newAccumulator(e.registry, region)

	// Housing. African households report electricity plus LPG cooking
	// gas; global households report utility fuels itemized on the bill.
	acc.add(CategoryHousing, LineElectricity, factors.KeyElectricityKWh,
		inputs.ElectricityKWhMonth*MonthsPerYear)
	if region.IsAfrica() {
		acc.add(CategoryHousing, LineLPG, factors.KeyLPGKg,
			inputs.LPGKgMonth*MonthsPerYear)
	} else {
		acc.add(CategoryHousing, LineNaturalGas, factors.KeyNaturalGasTherm,
			inputs.NaturalGasThermsMonth*MonthsPerYear)
		acc.add(CategoryHousing, LineHeatingOil, factors.KeyHeatingOilLiter,
			inputs.HeatingOilLitersMonth*MonthsPerYear)
		acc.add(CategoryHousing, LinePropane, factors.KeyPropaneLiter,
			inputs.PropaneLitersMonth*MonthsPerYear)
	}

	// Transport.
	carKey, _ := inputs.CarFuel.factorKey()
	acc.add(CategoryTransport, LineCar, carKey, inputs.CarKmWeek*WeeksPerYear)
	if region.IsAfrica() {
		acc.add(CategoryTransport, LineMotorcycle, factors.KeyMotorcycleKm,
			inputs.MotorcycleKmWeek*WeeksPerYear)
	}
	acc.add(CategoryTransport, LineBus, factors.KeyBusKm,
		inputs.BusKmWeek*WeeksPerYear)
	if !region.IsAfrica() {
		acc.add(CategoryTransport, LineTrain, factors.KeyTrainKm,
			inputs.TrainKmWeek*WeeksPerYear)
	}
	acc.add(CategoryTransport, LineFlights, factors.KeyPlaneShortHaulKm,
		inputs.FlightHoursYear*CruiseKmPerHour)

	// Diet: the per-day factor applied over the year.
	dietKey, _ := inputs.Diet.factorKey()
	acc.add(CategoryDiet, LineDiet, dietKey, DaysPerYear)

	result, err := acc.result()
	if err != nil {
		return nil, err
	}

	e.logger.Debug().
		Str("region", region.String()).
		Float64("housing_kg", result.Housing).
		Float64("transport_kg", result.Transport).
		Float64("diet_kg", result.Diet).
		Float64("total_kg", result.Total).
		Msg("footprint estimated")

	return result, nil
}

// accumulator collects breakdown lines and category subtotals. The
// first resolution failure sticks and surfaces from result().
type accumulator struct {
	registry *factors.Registry
	region   factors.Region

	lines     []BreakdownLine
	subtotals map[Category]float64
	err       error
}

func newAccumulator(registry *factors.Registry, region factors.Region) *accumulator {
	return &accumulator{
		registry:  registry,
		region:    region,
		subtotals: make(map[Category]float64, 3),
	}
}

// add resolves key for the accumulator's region, multiplies by the
// annualized quantity, and records the line under category.
func (a *accumulator) add(category Category, label string, key factors.Key, quantity float64) {
	if a.err != nil {
		return
	}
	factor, err := a.registry.Resolve(a.region, key)
	if err != nil {
		a.err = fmt.Errorf("resolving %s: %w", label, err)
		return
	}
	kg := quantity * factor
	a.lines = append(a.lines, BreakdownLine{Category: category, Label: label, KgCO2e: kg})
	a.subtotals[category] += kg
}

func (a *accumulator) result() (*FootprintResult, error) {
	if a.err != nil {
		return nil, a.err
	}
	r := &FootprintResult{
		Housing:   a.subtotals[CategoryHousing],
		Transport: a.subtotals[CategoryTransport],
		Diet:      a.subtotals[CategoryDiet],
		Lines:     a.lines,
	}
	r.Total = r.Housing + r.Transport + r.Diet
	return r, nil
}
