package cli

import (
	"errors"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/ecometric/footprint/internal/config"
	"github.com/ecometric/footprint/internal/estimate"
	"github.com/ecometric/footprint/internal/factors"
)

// estimateFlags collects the lifestyle inputs supplied on the command
// line. Flags mirror the JSON field names of estimate.UserInputs.
type estimateFlags struct {
	region  string
	country string
	input   string
	output  string

	electricityKWh   float64
	naturalGasTherms float64
	heatingOilLiters float64
	propaneLiters    float64
	lpgKg            float64
	carKm            float64
	carFuel          string
	motorcycleKm     float64
	busKm            float64
	trainKm          float64
	flightHours      float64
	diet             string
}

func newEstimateCmd() *cobra.Command {
	var flags estimateFlags

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate an annual carbon footprint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			configPath, _ := cmd.Flags().GetString("config")
			return runEstimate(cmd, flags, configPath)
		},
	}

	cmd.Flags().StringVar(&flags.region, "region", "global", "region scope (global, africa)")
	cmd.Flags().StringVar(&flags.country, "country", "", "African country code (NG, ZA, KE, GH, EG, ET, SSA)")
	cmd.Flags().StringVar(&flags.input, "input", "", "JSON file with the full input record (overrides input flags)")
	cmd.Flags().StringVar(&flags.output, "output", "text", "output format (text, json)")

	cmd.Flags().Float64Var(&flags.electricityKWh, "electricity-kwh", 0, "monthly electricity usage (kWh)")
	cmd.Flags().Float64Var(&flags.naturalGasTherms, "natural-gas-therms", 0, "monthly natural gas usage (therms)")
	cmd.Flags().Float64Var(&flags.heatingOilLiters, "heating-oil-liters", 0, "monthly heating oil usage (liters)")
	cmd.Flags().Float64Var(&flags.propaneLiters, "propane-liters", 0, "monthly propane usage (liters)")
	cmd.Flags().Float64Var(&flags.lpgKg, "lpg-kg", 0, "monthly LPG cooking gas usage (kg)")
	cmd.Flags().Float64Var(&flags.carKm, "car-km", 0, "weekly car distance (km)")
	cmd.Flags().StringVar(&flags.carFuel, "car-fuel", "gasoline", "car fuel type (gasoline, diesel)")
	cmd.Flags().Float64Var(&flags.motorcycleKm, "motorcycle-km", 0, "weekly motorcycle distance (km)")
	cmd.Flags().Float64Var(&flags.busKm, "bus-km", 0, "weekly bus distance (km)")
	cmd.Flags().Float64Var(&flags.trainKm, "train-km", 0, "weekly train distance (km)")
	cmd.Flags().Float64Var(&flags.flightHours, "flight-hours", 0, "yearly hours flown")
	cmd.Flags().StringVar(&flags.diet, "diet", "", "diet type (typical, average, meat_regular, meat_heavy, vegetarian, vegan)")

	return cmd
}

func runEstimate(cmd *cobra.Command, flags estimateFlags, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	registry, err := factors.NewRegistry(logger)
	if err != nil {
		return err
	}

	inputs, err := resolveInputs(flags)
	if err != nil {
		return err
	}

	region, err := factors.ParseRegion(flags.region, flags.country)
	if err != nil {
		return err
	}

	estimator := estimate.NewEstimator(registry, logger)
	result, err := estimator.Estimate(inputs, region)
	if err != nil {
		var invalid *estimate.InvalidInputError
		if errors.As(err, &invalid) {
			return fmt.Errorf("invalid input for %s: %s", invalid.Field, invalid.Reason)
		}
		return err
	}

	recs := estimate.Recommend(result, inputs, region, cfg.EstimateRules())
	comparison := estimate.Compare(result, region, cfg.Averages)

	switch flags.output {
	case "json":
		return renderEstimateJSON(cmd, result, recs, comparison)
	case "text", "":
		renderEstimateText(cmd, result, recs, comparison)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", flags.output)
	}
}

// resolveInputs builds the input record from either the JSON input
// file or the individual flags.
func resolveInputs(flags estimateFlags) (estimate.UserInputs, error) {
	if flags.input != "" {
		data, err := os.ReadFile(flags.input)
		if err != nil {
			return estimate.UserInputs{}, fmt.Errorf("reading input file: %w", err)
		}
		var inputs estimate.UserInputs
		if err := json.Unmarshal(data, &inputs); err != nil {
			return estimate.UserInputs{}, fmt.Errorf("parsing input file %s: %w", flags.input, err)
		}
		return inputs, nil
	}

	return estimate.UserInputs{
		ElectricityKWhMonth:   flags.electricityKWh,
		NaturalGasThermsMonth: flags.naturalGasTherms,
		HeatingOilLitersMonth: flags.heatingOilLiters,
		PropaneLitersMonth:    flags.propaneLiters,
		LPGKgMonth:            flags.lpgKg,
		CarKmWeek:             flags.carKm,
		CarFuel:               estimate.CarFuel(flags.carFuel),
		MotorcycleKmWeek:      flags.motorcycleKm,
		BusKmWeek:             flags.busKm,
		TrainKmWeek:           flags.trainKm,
		FlightHoursYear:       flags.flightHours,
		Diet:                  estimate.DietType(flags.diet),
	}, nil
}

func renderEstimateJSON(cmd *cobra.Command, result *estimate.FootprintResult, recs []estimate.Recommendation, comparison estimate.Comparison) error {
	payload := struct {
		Result          *estimate.FootprintResult `json:"result"`
		Recommendations []estimate.Recommendation `json:"recommendations"`
		Comparison      estimate.Comparison       `json:"comparison"`
	}{result, recs, comparison}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func renderEstimateText(cmd *cobra.Command, result *estimate.FootprintResult, recs []estimate.Recommendation, comparison estimate.Comparison) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Annual Carbon Footprint: %.0f kg CO2e (%.1f tons)\n\n", result.Total, result.Total/1000)
	fmt.Fprintf(out, "  %-10s %10.0f kg\n", estimate.CategoryHousing, result.Housing)
	fmt.Fprintf(out, "  %-10s %10.0f kg\n", estimate.CategoryTransport, result.Transport)
	fmt.Fprintf(out, "  %-10s %10.0f kg\n", estimate.CategoryDiet, result.Diet)

	fmt.Fprintf(out, "\nBreakdown:\n")
	for _, line := range result.Lines {
		fmt.Fprintf(out, "  %-28s %10.0f kg\n", line.Label, line.KgCO2e)
	}

	fmt.Fprintf(out, "\nVs. %s: %+.1f tons\n", comparison.Baseline, comparison.DeltaTons)

	fmt.Fprintf(out, "\nRecommendations:\n")
	for _, rec := range recs {
		if rec.EstimatedSavingsKg > 0 {
			fmt.Fprintf(out, "  - %s (saves ~%.0f kg CO2e/year)\n", rec.Advice, rec.EstimatedSavingsKg)
		} else {
			fmt.Fprintf(out, "  - %s\n", rec.Advice)
		}
	}
}
