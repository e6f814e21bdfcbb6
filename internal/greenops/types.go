// Package greenops turns construction carbon footprints into comparable,
// readable figures: it normalizes carbon quantities to kilograms, derives
// everyday equivalencies from EPA factors and formats numbers for display.
package greenops

import "fmt"

// EquivalencyType is a category of real-world equivalency.
type EquivalencyType int

const (
	// EquivalencyMilesDriven is miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencyTreeSeedlings is tree seedlings grown for 10 years to absorb the footprint.
	EquivalencyTreeSeedlings

	// EquivalencyHomeYears is years of an average US home's energy use.
	EquivalencyHomeYears

	// EquivalencyGasolineLitres is litres of gasoline burned.
	EquivalencyGasolineLitres
)

// String returns the name of the equivalency type.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	case EquivalencyHomeYears:
		return "HomeYears"
	case EquivalencyGasolineLitres:
		return "GasolineLitres"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// MarshalText encodes the type by name so reports read without a lookup table.
func (e EquivalencyType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText decodes a type name written by MarshalText.
func (e *EquivalencyType) UnmarshalText(text []byte) error {
	for _, t := range []EquivalencyType{
		EquivalencyMilesDriven,
		EquivalencyTreeSeedlings,
		EquivalencyHomeYears,
		EquivalencyGasolineLitres,
	} {
		if t.String() == string(text) {
			*e = t
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownEquivalencyType, string(text))
}

// CarbonInput is a carbon quantity in any recognized unit.
type CarbonInput struct {
	Value float64 `json:"value"`
	// Unit is one of g, kg, t, tonne, lb, short_ton, optionally suffixed CO2e.
	Unit string `json:"unit"`
}

// EquivalencyResult is one calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formattedValue"`
	Label          string          `json:"label"`
}

// EquivalencyOutput holds every equivalency for one footprint.
type EquivalencyOutput struct {
	// InputKg is the footprint in kg CO2e after normalization.
	InputKg float64             `json:"inputKg"`
	Results []EquivalencyResult `json:"results"`

	// DisplayText is prose for reports, e.g.
	// "Equivalent to driving ~3,827 miles or growing ~25 tree seedlings for 10 years".
	DisplayText string `json:"displayText"`

	// CompactText is the abbreviated form, e.g. "(≈ 3,827 mi, 25 seedlings)".
	CompactText string `json:"compactText"`

	IsEmpty bool `json:"isEmpty"`
}
