package estimate

import (
	"fmt"

	"github.com/ecometric/footprint/internal/factors"
)

// InvalidInputError reports a user-supplied value that failed
// validation. It is recoverable at the caller's boundary: the user is
// prompted again. It never indicates a missing factor table entry.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// validate checks every quantity and categorical choice in inputs
// before any factor resolution happens. It is the only validation
// boundary in the estimator.
func validate(inputs UserInputs, region factors.Region) error {
	quantities := []struct {
		field string
		value float64
	}{
		{"electricity_kwh_month", inputs.ElectricityKWhMonth},
		{"natural_gas_therms_month", inputs.NaturalGasThermsMonth},
		{"heating_oil_liters_month", inputs.HeatingOilLitersMonth},
		{"propane_liters_month", inputs.PropaneLitersMonth},
		{"lpg_kg_month", inputs.LPGKgMonth},
		{"car_km_week", inputs.CarKmWeek},
		{"motorcycle_km_week", inputs.MotorcycleKmWeek},
		{"bus_km_week", inputs.BusKmWeek},
		{"train_km_week", inputs.TrainKmWeek},
		{"flight_hours_year", inputs.FlightHoursYear},
	}
	for _, q := range quantities {
		if q.value < 0 {
			return &InvalidInputError{Field: q.field, Reason: "must be non-negative"}
		}
	}

	if _, ok := inputs.Diet.factorKey(); !ok {
		return &InvalidInputError{
			Field:  "diet",
			Reason: fmt.Sprintf("unknown diet type %q", inputs.Diet),
		}
	}
	if _, ok := inputs.CarFuel.factorKey(); !ok {
		return &InvalidInputError{
			Field:  "car_fuel",
			Reason: fmt.Sprintf("unknown car fuel %q", inputs.CarFuel),
		}
	}

	if region.IsAfrica() {
		if _, err := factors.ParseCountry(string(region.Country())); err != nil {
			return &InvalidInputError{Field: "country", Reason: err.Error()}
		}
	}

	return nil
}
