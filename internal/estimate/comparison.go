package estimate

import (
	"github.com/ecometric/footprint/internal/factors"
)

// ReferenceAverages holds per-capita annual footprint baselines used
// to contextualize a result. Values are kg CO2e and come from
// configuration.
type ReferenceAverages struct {
	GlobalKg float64 `yaml:"global_kg"`
	AfricaKg float64 `yaml:"africa_kg"`
	USKg     float64 `yaml:"us_kg"`

	// AfricaCutoverKg picks the African baseline instead of the global
	// one for African totals below this value.
	AfricaCutoverKg float64 `yaml:"africa_cutover_kg"`
}

// Comparison relates a total to the most relevant reference baseline.
// DeltaTons is positive when the total sits below the baseline.
type Comparison struct {
	Baseline   string  `json:"baseline"`
	BaselineKg float64 `json:"baseline_kg"`
	DeltaTons  float64 `json:"delta_tons"`
}

// Baseline labels.
const (
	BaselineGlobalAverage  = "Global Avg"
	BaselineAfricanAverage = "African Avg"
	BaselineUSAverage      = "US Average"
)

// Compare selects the reference baseline for region and reports how
// far the total sits below (positive) or above (negative) it, in
// metric tons. African totals compare against the global average
// unless they are already low enough that the African average is the
// more meaningful yardstick.
func Compare(result *FootprintResult, region factors.Region, avgs ReferenceAverages) Comparison {
	if region.IsAfrica() {
		baseline, baselineKg := BaselineGlobalAverage, avgs.GlobalKg
		if result.Total < avgs.AfricaCutoverKg {
			baseline, baselineKg = BaselineAfricanAverage, avgs.AfricaKg
		}
		return Comparison{
			Baseline:   baseline,
			BaselineKg: baselineKg,
			DeltaTons:  (baselineKg - result.Total) / 1000,
		}
	}
	return Comparison{
		Baseline:   BaselineUSAverage,
		BaselineKg: avgs.USKg,
		DeltaTons:  (avgs.USKg - result.Total) / 1000,
	}
}
