package estimate

import (
	"sort"

	"github.com/ecometric/footprint/internal/factors"
)

// Rule is a single threshold rule mapping a breakdown line to static
// advice text. Rules are configuration data, not logic: the default
// set lives in the config package and can be overridden from a YAML
// file.
type Rule struct {
	// Target is the breakdown line label the rule inspects (e.g.
	// LineCar, LineDiet).
	Target string

	// ThresholdKg triggers the rule when the target line exceeds it.
	ThresholdKg float64

	// Advice is the static text surfaced to the user.
	Advice string

	// EstimatedSavingsKg is the rough annual saving used to rank
	// recommendations.
	EstimatedSavingsKg float64

	// AfricaOnly restricts the rule to African regions.
	AfricaOnly bool

	// MeatDietOnly restricts the rule to meat-based diet profiles.
	MeatDietOnly bool
}

// Recommendation is one piece of reduction advice selected for a
// result.
type Recommendation struct {
	Advice             string  `json:"advice"`
	EstimatedSavingsKg float64 `json:"estimated_savings_kg"`
}

// LowFootprintAdvice is surfaced when no rule matches.
const LowFootprintAdvice = "Your footprint is already relatively low! " +
	"Keep up the good habits and consider advocating for climate policy."

// Recommend evaluates rules against a result and returns the matching
// recommendations sorted by estimated savings, largest first. When
// nothing matches it returns the single low-footprint entry.
func Recommend(result *FootprintResult, inputs UserInputs, region factors.Region, rules []Rule) []Recommendation {
	var out []Recommendation
	for _, rule := range rules {
		if rule.AfricaOnly && !region.IsAfrica() {
			continue
		}
		if rule.MeatDietOnly && !inputs.Diet.MeatBased() {
			continue
		}
		if result.Line(rule.Target) <= rule.ThresholdKg {
			continue
		}
		out = append(out, Recommendation{
			Advice:             rule.Advice,
			EstimatedSavingsKg: rule.EstimatedSavingsKg,
		})
	}

	if len(out) == 0 {
		return []Recommendation{{Advice: LowFootprintAdvice}}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EstimatedSavingsKg > out[j].EstimatedSavingsKg
	})
	return out
}
