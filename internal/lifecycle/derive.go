package lifecycle

import "github.com/rshade/carboncalc/internal/metrics"

// Split of observed material carbon between extraction and manufacturing.
const (
	extractionShareOfMaterial    = 0.6
	manufacturingShareOfMaterial = 0.4
)

// observedCarbonBudget is the carbon share left for the four observed stages
// once the use-phase and end-of-life defaults are applied.
const observedCarbonBudget = 1 - DefaultUsePhaseCarbonFootprint - DefaultEndOfLifeCarbonFootprint

// InputFromMetrics derives stage carbon shares from computed project metrics.
//
// Material carbon is split between extraction and manufacturing, transport
// emissions feed the transportation stage and energy emissions feed
// construction. The four observed shares are scaled to fill the carbon budget
// not held by the use-phase and end-of-life defaults, so the stage total stays
// 1. Water and energy are left to their defaults. When no emissions were
// observed the returned Input is empty and every stage uses its default.
func InputFromMetrics(m metrics.MaterialMetrics, t metrics.TransportMetrics, e metrics.EnergyMetrics) Input {
	total := m.TotalCarbonFootprint + t.TotalEmissions + e.TotalEmissions
	if total <= 0 {
		return Input{}
	}

	share := func(v float64) *float64 {
		s := v / total * observedCarbonBudget
		return &s
	}

	return Input{
		MaterialCarbonFootprint:       share(m.TotalCarbonFootprint * extractionShareOfMaterial),
		ManufacturingCarbonFootprint:  share(m.TotalCarbonFootprint * manufacturingShareOfMaterial),
		TransportationCarbonFootprint: share(t.TotalEmissions),
		ConstructionCarbonFootprint:   share(e.TotalEmissions),
	}
}
