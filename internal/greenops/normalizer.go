package greenops

import (
	"math"
	"strings"
)

// unitFactor returns the kilogram conversion factor for a carbon unit. Matching
// ignores case, surrounding space and an optional "CO2e" suffix.
func unitFactor(unit string) (float64, bool) {
	u := strings.ToLower(strings.TrimSpace(unit))
	u = strings.TrimSuffix(u, "co2e")
	u = strings.TrimSpace(u)
	switch u {
	case "g", "gram", "grams":
		return GramsToKg, true
	case "kg", "kilogram", "kilograms":
		return KgToKg, true
	case "t", "tonne", "tonnes", "metric_ton":
		return TonnesToKg, true
	case "lb", "lbs", "pound", "pounds":
		return PoundsToKg, true
	case "short_ton", "short_tons":
		return ShortTonsToKg, true
	default:
		return 0, false
	}
}

// NormalizeToKg converts a carbon quantity to kilograms.
//
// It returns ErrCalculationOverflow for non-finite input or results,
// ErrNegativeValue for negative input and ErrInvalidUnit for an unknown unit.
func NormalizeToKg(value float64, unit string) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrCalculationOverflow
	}
	if value < 0 {
		return 0, ErrNegativeValue
	}

	factor, ok := unitFactor(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}

	kg := value * factor
	if math.IsInf(kg, 0) {
		return 0, ErrCalculationOverflow
	}
	return kg, nil
}

// IsRecognizedUnit reports whether NormalizeToKg accepts unit.
func IsRecognizedUnit(unit string) bool {
	_, ok := unitFactor(unit)
	return ok
}
