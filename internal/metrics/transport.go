package metrics

import (
	"strings"

	"github.com/rshade/carboncalc/internal/model"
)

// NewTransportMetrics returns the canonical zero value for an empty transport list.
func NewTransportMetrics() TransportMetrics {
	return TransportMetrics{
		TransportByType: map[string]int{},
	}
}

// CalculateTransportMetrics aggregates a transport list.
//
// CarbonIntensity is the distance-weighted emissions factor
//
//	Σ(emissionsFactor × distance) / Σ distance
//
// and EfficiencyScore is
//
//	0.4 × AverageEfficiency + 0.3 × RouteOptimizationRate/100 + 0.3 × ElectricVehiclePercentage/100
func CalculateTransportMetrics(items []model.TransportItem) TransportMetrics {
	out := NewTransportMetrics()
	if len(items) == 0 {
		return out
	}

	n := len(items)
	var (
		weightedFactor float64
		electric       int
		sustainable    int
		optimized      int
		maintained     int
		peak           int
		stops          int
		efficiency     averager
		idling         averager
		hours          averager
	)

	for _, t := range items {
		out.TotalDistance += t.Distance
		out.TotalWeight += t.Weight
		out.TotalEmissions += t.Emissions()
		out.TransportByType[t.Type]++
		weightedFactor += t.EmissionsFactor * t.Distance

		if model.IsTrue(t.IsElectric) {
			electric++
		}
		if isSustainableTransport(t) {
			sustainable++
		}
		if model.IsTrue(t.RouteOptimization) {
			optimized++
		}
		if t.MaintenanceStatus != nil && goodMaintenanceStatuses[strings.ToLower(*t.MaintenanceStatus)] {
			maintained++
		}
		if model.IsTrue(t.PeakTime) {
			peak++
		}
		if model.IsTrue(t.FrequentStops) {
			stops++
		}

		efficiency.add(t.Efficiency)
		idling.add(t.IdlingTime)
		hours.add(t.OperatingHours)
	}

	out.TotalTransportItems = n
	out.AverageDistance = out.TotalDistance / float64(n)
	out.CarbonIntensity = ratio(weightedFactor, out.TotalDistance)
	out.ElectricVehiclePercentage = percentOf(electric, n)
	out.SustainableTransportPercentage = percentOf(sustainable, n)
	out.RouteOptimizationRate = percentOf(optimized, n)
	out.MaintenanceComplianceRate = percentOf(maintained, n)
	out.PeakTimePercentage = percentOf(peak, n)
	out.FrequentStopsPercentage = percentOf(stops, n)
	out.AverageEfficiency = efficiency.mean()
	out.AverageIdlingTime = idling.mean()
	out.AverageOperatingHours = hours.mean()

	out.EfficiencyScore = TransportEfficiencyWeight*out.AverageEfficiency +
		TransportRouteWeight*out.RouteOptimizationRate/PercentageMultiplier +
		TransportElectricWeight*out.ElectricVehiclePercentage/PercentageMultiplier

	return out
}

// isSustainableTransport reports whether a leg is electric or runs on a low-carbon fuel.
func isSustainableTransport(t model.TransportItem) bool {
	if model.IsTrue(t.IsElectric) {
		return true
	}
	return sustainableFuels[strings.ToLower(strings.TrimSpace(t.FuelType))]
}
