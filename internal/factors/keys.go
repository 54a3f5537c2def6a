package factors

// Key identifies a single emission factor in the registry.
// Keys for activity factors carry the unit they multiply
// (kWh, liter, km); diet keys are per-day factors.
type Key string

const (
	// Housing factors (kg CO2e per unit).
	KeyElectricityKWh  Key = "electricity_kwh"
	KeyNaturalGasTherm Key = "natural_gas_therm"
	KeyHeatingOilLiter Key = "heating_oil_liter"
	KeyPropaneLiter    Key = "propane_liter"
	KeyLPGKg           Key = "lpg_kg"

	// Transport factors (kg CO2e per km).
	KeyCarGasolineKm    Key = "car_gasoline_km"
	KeyCarDieselKm      Key = "car_diesel_km"
	KeyMotorcycleKm     Key = "motorcycle_km"
	KeyBusKm            Key = "bus_km"
	KeyTrainKm          Key = "train_km"
	KeyPlaneShortHaulKm Key = "plane_short_haul_km"

	// Diet factors (kg CO2e per day).
	KeyDietTypical     Key = "diet_typical"
	KeyDietAverage     Key = "diet_average"
	KeyDietMeatRegular Key = "diet_meat_regular"
	KeyDietMeatHeavy   Key = "diet_meat_heavy"
	KeyDietVegetarian  Key = "diet_vegetarian"
	KeyDietVegan       Key = "diet_vegan"
)
