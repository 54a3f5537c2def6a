package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecometric/footprint/internal/factors"
)

func testRules() []Rule {
	return []Rule{
		{Target: LineElectricity, ThresholdKg: 1500, Advice: "switch appliances", EstimatedSavingsKg: 500},
		{Target: LineCar, ThresholdKg: 2000, Advice: "reduce car travel", EstimatedSavingsKg: 400},
		{Target: LineDiet, ThresholdKg: 2000, Advice: "reduce meat", EstimatedSavingsKg: 200, MeatDietOnly: true},
		{Target: LineLPG, ThresholdKg: 500, Advice: "cook efficiently", EstimatedSavingsKg: 100, AfricaOnly: true},
	}
}

func resultWithLines(lines ...BreakdownLine) *FootprintResult {
	r := &FootprintResult{Lines: lines}
	for _, l := range lines {
		switch l.Category {
		case CategoryHousing:
			r.Housing += l.KgCO2e
		case CategoryTransport:
			r.Transport += l.KgCO2e
		case CategoryDiet:
			r.Diet += l.KgCO2e
		}
	}
	r.Total = r.Housing + r.Transport + r.Diet
	return r
}

// TestRecommend_SortedBySavings checks that matched rules come back
// ordered by estimated savings, largest first.
func TestRecommend_SortedBySavings(t *testing.T) {
	result := resultWithLines(
		BreakdownLine{Category: CategoryHousing, Label: LineElectricity, KgCO2e: 1800},
		BreakdownLine{Category: CategoryTransport, Label: LineCar, KgCO2e: 2500},
		BreakdownLine{Category: CategoryDiet, Label: LineDiet, KgCO2e: 2200},
	)

	recs := Recommend(result, UserInputs{Diet: DietMeatHeavy}, factors.GlobalRegion(), testRules())
	require.Len(t, recs, 3)
	assert.Equal(t, "switch appliances", recs[0].Advice)
	assert.Equal(t, "reduce car travel", recs[1].Advice)
	assert.Equal(t, "reduce meat", recs[2].Advice)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].EstimatedSavingsKg, recs[i].EstimatedSavingsKg)
	}
}

// TestRecommend_ThresholdIsExclusive checks that a line exactly at the
// threshold does not trigger the rule.
func TestRecommend_ThresholdIsExclusive(t *testing.T) {
	result := resultWithLines(
		BreakdownLine{Category: CategoryTransport, Label: LineCar, KgCO2e: 2000},
	)

	recs := Recommend(result, UserInputs{Diet: DietVegan}, factors.GlobalRegion(), testRules())
	require.Len(t, recs, 1)
	assert.Equal(t, LowFootprintAdvice, recs[0].Advice)
	assert.Zero(t, recs[0].EstimatedSavingsKg)
}

// TestRecommend_MeatRuleRequiresMeatDiet checks that the diet rule is
// suppressed for non-meat diets even when the subtotal is high.
func TestRecommend_MeatRuleRequiresMeatDiet(t *testing.T) {
	result := resultWithLines(
		BreakdownLine{Category: CategoryDiet, Label: LineDiet, KgCO2e: 2500},
	)

	recs := Recommend(result, UserInputs{Diet: DietVegetarian}, factors.GlobalRegion(), testRules())
	require.Len(t, recs, 1)
	assert.Equal(t, LowFootprintAdvice, recs[0].Advice)

	recs = Recommend(result, UserInputs{Diet: DietMeatRegular}, factors.GlobalRegion(), testRules())
	require.Len(t, recs, 1)
	assert.Equal(t, "reduce meat", recs[0].Advice)
}

// TestRecommend_AfricaOnlyRule checks that the LPG rule applies only to
// African regions.
func TestRecommend_AfricaOnlyRule(t *testing.T) {
	result := resultWithLines(
		BreakdownLine{Category: CategoryHousing, Label: LineLPG, KgCO2e: 600},
	)
	inputs := UserInputs{Diet: DietTypical}

	recs := Recommend(result, inputs, factors.GlobalRegion(), testRules())
	require.Len(t, recs, 1)
	assert.Equal(t, LowFootprintAdvice, recs[0].Advice)

	recs = Recommend(result, inputs, factors.AfricaRegion(factors.CountryGhana), testRules())
	require.Len(t, recs, 1)
	assert.Equal(t, "cook efficiently", recs[0].Advice)
	assert.InDelta(t, 100.0, recs[0].EstimatedSavingsKg, 1e-9)
}
