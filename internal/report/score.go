package report

import (
	"math"

	"github.com/rshade/carboncalc/internal/metrics"
)

// CalculateScore rates each domain and the project as a whole. A domain with
// no records scores 0 and is left out of the overall score; the remaining
// domain weights are renormalized so that, for example, an energy-only project
// is judged on energy alone.
func CalculateScore(m metrics.MaterialMetrics, t metrics.TransportMetrics, e metrics.EnergyMetrics) Score {
	var s Score
	var weighted, weights float64

	if m.TotalMaterials > 0 {
		s.Materials = materialScore(m)
		weighted += s.Materials * MaterialsScoreWeight
		weights += MaterialsScoreWeight
	}
	if t.TotalTransportItems > 0 {
		s.Transport = transportScore(t)
		weighted += s.Transport * TransportScoreWeight
		weights += TransportScoreWeight
	}
	if e.TotalEnergyItems > 0 {
		s.Energy = energyScore(e)
		weighted += s.Energy * EnergyScoreWeight
		weights += EnergyScoreWeight
	}

	if weights > 0 {
		s.Overall = roundTo(weighted/weights, 1)
	}
	return s
}

func materialScore(m metrics.MaterialMetrics) float64 {
	v := MaterialEfficiencyWeight*m.ResourceEfficiency +
		MaterialRecyclableWeight*m.RecyclablePercentage/PercentageMultiplier +
		MaterialCertificationWeight*m.CertificationCoverage/PercentageMultiplier
	return toScore(v)
}

func transportScore(t metrics.TransportMetrics) float64 {
	v := TransportSustainableWeight*t.SustainableTransportPercentage/PercentageMultiplier +
		TransportEfficiencyWeight*t.EfficiencyScore +
		TransportIntensityWeight*(1-math.Min(1, t.CarbonIntensity))
	return toScore(v)
}

func energyScore(e metrics.EnergyMetrics) float64 {
	v := EnergyRenewableWeight*e.RenewablePercentage/PercentageMultiplier +
		EnergyEfficiencyWeight*e.EfficiencyScore +
		EnergyGridWeight*(1-e.GridDependency/PercentageMultiplier)
	return toScore(v)
}

// toScore maps a 0-1 blend onto a rounded 0-100 score.
func toScore(v float64) float64 {
	return roundTo(clamp01(v)*PercentageMultiplier, 1)
}
