package metrics

import (
	"strings"

	"github.com/rshade/carboncalc/internal/model"
)

// gridSourceKeyword identifies grid-supplied energy by source name.
const gridSourceKeyword = "grid"

// NewEnergyMetrics returns the canonical zero value for an empty energy list.
func NewEnergyMetrics() EnergyMetrics {
	return EnergyMetrics{
		EnergyBySource: map[string]float64{},
	}
}

// CalculateEnergyMetrics aggregates an energy list.
//
// EnergyBySource sums consumption per source. GridDependency is the share of
// consumption drawn from non-renewable grid supplies:
//
//	gridConsumption / totalConsumption × 100
//
// EfficiencyScore is
//
//	0.4 × AverageEfficiency + 0.3 × RenewablePercentage/100 +
//	0.2 × SmartMonitoringCoverage/100 + 0.1 × DemandResponseParticipation/100
func CalculateEnergyMetrics(items []model.EnergyItem) EnergyMetrics {
	out := NewEnergyMetrics()
	if len(items) == 0 {
		return out
	}

	n := len(items)
	var (
		renewable         int
		monitored         int
		demandResponse    int
		backup            int
		renewableQuantity float64
		gridQuantity      float64
		intensity         averager
		efficiency        averager
		peak              averager
		storage           averager
	)

	for _, e := range items {
		out.TotalConsumption += e.Quantity
		out.TotalEmissions += e.Emissions()
		out.EnergyBySource[e.Source] += e.Quantity

		if model.IsTrue(e.Renewable) {
			renewable++
			renewableQuantity += e.Quantity
		} else if isGridSource(e.Source) {
			gridQuantity += e.Quantity
		}
		if model.IsTrue(e.SmartMonitoring) {
			monitored++
		}
		if model.IsTrue(e.DemandResponse) {
			demandResponse++
		}
		if model.IsTrue(e.BackupSystem) {
			backup++
		}

		intensity.add(e.CarbonIntensity)
		efficiency.add(e.Efficiency)
		peak.add(e.PeakDemand)
		storage.add(e.StorageCapacity)
	}

	out.TotalEnergyItems = n
	out.RenewablePercentage = percentOf(renewable, n)
	out.SmartMonitoringCoverage = percentOf(monitored, n)
	out.DemandResponseParticipation = percentOf(demandResponse, n)
	out.BackupSystemCoverage = percentOf(backup, n)
	out.RenewableConsumptionShare = ratio(renewableQuantity, out.TotalConsumption) * PercentageMultiplier
	out.GridDependency = ratio(gridQuantity, out.TotalConsumption) * PercentageMultiplier
	out.AverageCarbonIntensity = intensity.mean()
	out.AverageEfficiency = efficiency.mean()
	out.AveragePeakDemand = peak.mean()
	out.StorageCapacity = storage.sumPtr()

	out.EfficiencyScore = EnergyEfficiencyWeight*out.AverageEfficiency +
		EnergyRenewableWeight*out.RenewablePercentage/PercentageMultiplier +
		EnergyMonitoringWeight*out.SmartMonitoringCoverage/PercentageMultiplier +
		EnergyDemandResponseWeight*out.DemandResponseParticipation/PercentageMultiplier

	return out
}

// isGridSource reports whether a source name denotes grid electricity.
func isGridSource(source string) bool {
	return strings.Contains(strings.ToLower(source), gridSourceKeyword)
}
