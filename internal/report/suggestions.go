package report

import (
	"fmt"
	"math"
	"sort"

	"github.com/rshade/carboncalc/internal/metrics"
)

// FallbackSuggestion is returned when no rule fires.
const FallbackSuggestion = "Maintain current practices and track emissions against a baseline"

// GenerateSuggestions applies threshold rules to each domain that has records
// and returns the resulting suggestions, most urgent first.
//
// A suggestion's weight is the domain's share of total emissions plus how far
// the metric misses its threshold (both 0-1), so shortfalls in the dominant
// domain rank first. Equal weights keep rule order. The result is never empty.
func GenerateSuggestions(m metrics.MaterialMetrics, t metrics.TransportMetrics, e metrics.EnergyMetrics) []Suggestion {
	total := m.TotalCarbonFootprint + t.TotalEmissions + e.TotalEmissions
	var out []Suggestion

	if m.TotalMaterials > 0 {
		out = append(out, materialSuggestions(m, share(m.TotalCarbonFootprint, total))...)
	}
	if t.TotalTransportItems > 0 {
		out = append(out, transportSuggestions(t, share(t.TotalEmissions, total))...)
	}
	if e.TotalEnergyItems > 0 {
		out = append(out, energySuggestions(e, share(e.TotalEmissions, total))...)
	}

	if len(out) == 0 {
		return []Suggestion{{Text: FallbackSuggestion, Category: CategoryGeneral}}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Weight > out[j].Weight
	})
	return out
}

func materialSuggestions(m metrics.MaterialMetrics, domainShare float64) []Suggestion {
	var out []Suggestion
	add := func(gap float64, format string, args ...any) {
		out = append(out, newSuggestion(CategoryMaterials, domainShare, gap, format, args...))
	}

	if m.RecyclablePercentage < LowRecyclableThreshold {
		add(below(m.RecyclablePercentage, LowRecyclableThreshold),
			"Increase the share of recyclable materials from %.0f%% to at least %.0f%%",
			m.RecyclablePercentage, LowRecyclableThreshold)
	}
	if m.AverageRecycledContent < LowRecycledContentThreshold {
		add(below(m.AverageRecycledContent, LowRecycledContentThreshold),
			"Specify materials with more recycled content; the average is %.0f%%, aim for %.0f%% or more",
			m.AverageRecycledContent, LowRecycledContentThreshold)
	}
	if m.LocallySourcedPercentage < LowLocalSourcingThreshold {
		add(below(m.LocallySourcedPercentage, LowLocalSourcingThreshold),
			"Source more materials locally to cut haulage; %.0f%% are local today",
			m.LocallySourcedPercentage)
	}
	if len(m.TopEmitters) > 0 && m.TopEmitters[0].Share > DominantEmitterShare {
		top := m.TopEmitters[0]
		add(above(top.Share, DominantEmitterShare, PercentageMultiplier),
			"Review %s, which accounts for %.0f%% of material emissions, for lower-carbon alternatives",
			top.Name, top.Share)
	}
	return out
}

func transportSuggestions(t metrics.TransportMetrics, domainShare float64) []Suggestion {
	var out []Suggestion
	add := func(gap float64, format string, args ...any) {
		out = append(out, newSuggestion(CategoryTransport, domainShare, gap, format, args...))
	}

	if t.ElectricVehiclePercentage < LowElectricFleetThreshold {
		add(below(t.ElectricVehiclePercentage, LowElectricFleetThreshold),
			"Move part of the fleet to electric vehicles; %.0f%% of trips are electric",
			t.ElectricVehiclePercentage)
	}
	if t.RouteOptimizationRate < LowRouteOptimizationRate {
		add(below(t.RouteOptimizationRate, LowRouteOptimizationRate),
			"Adopt route optimization for deliveries; only %.0f%% of trips are optimized",
			t.RouteOptimizationRate)
	}
	if t.AverageIdlingTime > HighIdlingHours {
		add(above(t.AverageIdlingTime, HighIdlingHours, 2*HighIdlingHours),
			"Introduce an anti-idling policy; vehicles idle %.1f hours on average",
			t.AverageIdlingTime)
	}
	return out
}

func energySuggestions(e metrics.EnergyMetrics, domainShare float64) []Suggestion {
	var out []Suggestion
	add := func(gap float64, format string, args ...any) {
		out = append(out, newSuggestion(CategoryEnergy, domainShare, gap, format, args...))
	}

	if e.RenewablePercentage < LowRenewableThreshold {
		add(below(e.RenewablePercentage, LowRenewableThreshold),
			"Switch site energy to renewable supply; %.0f%% of sources are renewable",
			e.RenewablePercentage)
	}
	if e.SmartMonitoringCoverage < LowMonitoringThreshold {
		add(below(e.SmartMonitoringCoverage, LowMonitoringThreshold),
			"Install smart energy monitoring; coverage is %.0f%%",
			e.SmartMonitoringCoverage)
	}
	if e.GridDependency > HighGridDependency {
		add(above(e.GridDependency, HighGridDependency, PercentageMultiplier),
			"Reduce grid dependency (%.0f%%) with on-site generation or storage",
			e.GridDependency)
	}
	return out
}

func newSuggestion(category string, domainShare, gap float64, format string, args ...any) Suggestion {
	return Suggestion{
		Text:     fmt.Sprintf(format, args...),
		Category: category,
		Weight:   roundTo(domainShare+gap, 4),
	}
}

// share is part/total, 0 when total is 0.
func share(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return part / total
}

// below is the relative shortfall of v under threshold, in [0,1].
func below(v, threshold float64) float64 {
	return clamp01((threshold - v) / threshold)
}

// above is how far v exceeds threshold on the way to ceiling, in [0,1].
func above(v, threshold, ceiling float64) float64 {
	return clamp01((v - threshold) / (ceiling - threshold))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// suggestionTexts returns the text of each suggestion and the top PriorityCount of them.
func suggestionTexts(s []Suggestion) (all, priority []string) {
	all = make([]string, len(s))
	for i, sg := range s {
		all[i] = sg.Text
	}
	priority = make([]string, min(len(all), PriorityCount))
	copy(priority, all)
	return all, priority
}
