package greenops

import (
	"context"
	"fmt"
	"math"

	"github.com/rshade/carboncalc/internal/logging"
)

// equivalency describes how one EquivalencyType is derived and labeled.
type equivalency struct {
	kind   EquivalencyType
	factor float64
	label  string
}

// equivalencies are reported in this order.
//
//nolint:gochecknoglobals // Constant lookup table.
var equivalencies = []equivalency{
	{EquivalencyMilesDriven, EPAMilesDrivenFactor, "miles driven"},
	{EquivalencyTreeSeedlings, EPATreeSeedlingFactor, "tree seedlings grown for 10 years"},
	{EquivalencyHomeYears, EPAHomeYearFactor, "years of home energy use"},
	{EquivalencyGasolineLitres, EPAGasolineLitreFactor, "litres of gasoline burned"},
}

// Calculate normalizes input to kilograms and derives every equivalency.
//
// A footprint below MinEquivalencyThresholdKg yields an empty output with
// InputKg set and no error. Normalization errors are returned unchanged with
// an empty output.
func Calculate(input CarbonInput) (EquivalencyOutput, error) {
	kg, err := NormalizeToKg(input.Value, input.Unit)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}
	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	results := make([]EquivalencyResult, 0, len(equivalencies))
	for _, eq := range equivalencies {
		v := kg / eq.factor
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
		}
		results = append(results, EquivalencyResult{
			Type:           eq.kind,
			Value:          v,
			FormattedValue: formatEquivalencyValue(v),
			Label:          eq.label,
		})
	}

	miles := results[0].FormattedValue
	seedlings := results[1].FormattedValue
	return EquivalencyOutput{
		InputKg: kg,
		Results: results,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or growing ~%s tree seedlings for 10 years",
			miles, seedlings),
		CompactText: fmt.Sprintf("(≈ %s mi, %s seedlings)", miles, seedlings),
	}, nil
}

// ForFootprint calculates equivalencies for a project footprint in kg CO2e.
// Failures are logged and produce an empty output, so report assembly never
// fails on presentation data.
func ForFootprint(ctx context.Context, kg float64) EquivalencyOutput {
	out, err := Calculate(CarbonInput{Value: kg, Unit: "kg"})
	if err != nil {
		logging.FromContext(ctx).Warn().
			Ctx(ctx).
			Str("component", "greenops").
			Str("operation", "ForFootprint").
			Float64("kg", kg).
			Err(err).
			Msg("equivalency calculation failed")
		return EquivalencyOutput{IsEmpty: true}
	}
	return out
}

// formatEquivalencyValue rounds to a whole number with separators, switching
// to the abbreviated form at LargeNumberThreshold.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
