package report

import (
	"math"

	"github.com/rshade/carboncalc/internal/model"
)

// CalculateDataCompleteness scores how much usable data the input carries, from
// 0 to 100. It is the pre-flight gate for report generation.
//
// The score has two parts. The count part rewards record volume, saturating at
// 5 materials, 3 transport legs and 3 energy supplies (25/10/10 points). The
// richness part rewards the share of fields each record fills in, averaged per
// domain (30/12.5/12.5 points). A required field counts only when it carries a
// meaningful value (non-empty text, positive number).
func CalculateDataCompleteness(
	materials []model.Material,
	transport []model.TransportItem,
	energy []model.EnergyItem,
) float64 {
	score := countScore(len(materials), MaterialCountTarget, MaterialCountWeight) +
		countScore(len(transport), TransportCountTarget, TransportCountWeight) +
		countScore(len(energy), EnergyCountTarget, EnergyCountWeight)

	score += richness(materials, materialFieldShare) * MaterialRichnessWeight
	score += richness(transport, transportFieldShare) * TransportRichnessWeight
	score += richness(energy, energyFieldShare) * EnergyRichnessWeight

	return roundTo(math.Min(score, PercentageMultiplier), 1)
}

func countScore(n, target int, weight float64) float64 {
	return float64(min(n, target)) / float64(target) * weight
}

// richness averages the field share over records; 0 for no records.
func richness[T any](records []T, share func(T) float64) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		sum += share(r)
	}
	return sum / float64(len(records))
}

// fieldCounter tallies filled fields of one record.
type fieldCounter struct {
	filled, total int
}

func (c *fieldCounter) add(present bool) {
	c.total++
	if present {
		c.filled++
	}
}

func (c fieldCounter) share() float64 {
	if c.total == 0 {
		return 0
	}
	return float64(c.filled) / float64(c.total)
}

func materialFieldShare(m model.Material) float64 {
	var c fieldCounter
	c.add(m.Name != "")
	c.add(m.Category != "")
	c.add(m.CarbonFootprint > 0)
	c.add(m.Quantity > 0)
	c.add(m.Unit != "")

	c.add(m.Recyclable != nil)
	c.add(m.RecycledContent != nil)
	c.add(m.LocallySourced != nil)
	c.add(m.EmbodiedCarbon != nil)
	c.add(m.WaterFootprint != nil)
	c.add(m.Recyclability != nil)
	c.add(m.RenewableContent != nil)
	c.add(m.Biodegradable != nil)
	c.add(m.Lifespan != nil)
	return c.share()
}

func transportFieldShare(t model.TransportItem) float64 {
	var c fieldCounter
	c.add(t.Type != "")
	c.add(t.Distance > 0)
	c.add(t.Weight > 0)
	c.add(t.FuelType != "")
	c.add(t.EmissionsFactor > 0)

	c.add(t.IsElectric != nil)
	c.add(t.RouteOptimization != nil)
	c.add(t.Efficiency != nil)
	c.add(t.IdlingTime != nil)
	c.add(t.OperatingHours != nil)
	c.add(t.MaintenanceStatus != nil)
	c.add(t.PeakTime != nil)
	c.add(t.FrequentStops != nil)
	return c.share()
}

func energyFieldShare(e model.EnergyItem) float64 {
	var c fieldCounter
	c.add(e.Source != "")
	c.add(e.Quantity > 0)
	c.add(e.Unit != "")
	c.add(e.EmissionsFactor > 0)

	c.add(e.Renewable != nil)
	c.add(e.CarbonIntensity != nil)
	c.add(e.Efficiency != nil)
	c.add(e.PeakDemand != nil)
	c.add(e.SmartMonitoring != nil)
	c.add(e.DemandResponse != nil)
	c.add(e.BackupSystem != nil)
	c.add(e.StorageCapacity != nil)
	c.add(e.TimeOfUse != nil)
	return c.share()
}

// roundTo rounds v to the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
