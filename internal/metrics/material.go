package metrics

import (
	"sort"

	"github.com/rshade/carboncalc/internal/model"
)

// NewMaterialMetrics returns the canonical zero value for an empty material list.
func NewMaterialMetrics() MaterialMetrics {
	return MaterialMetrics{
		MaterialsByCategory: map[string]int{},
		CarbonByCategory:    map[string]float64{},
		TopEmitters:         []MaterialEmitter{},
	}
}

// CalculateMaterialMetrics aggregates a material list.
//
// Averages over optional fields use only the materials that report the field.
// Percentages of items are taken against the whole list. ResourceEfficiency is
//
//	0.7 × AverageRecycledContent/100 + 0.3 × LocallySourcedPercentage/100
func CalculateMaterialMetrics(materials []model.Material) MaterialMetrics {
	out := NewMaterialMetrics()
	if len(materials) == 0 {
		return out
	}

	n := len(materials)
	var (
		footprintSum  float64
		recyclable    int
		local         int
		biodegradable int
		certified     int
		recycled      averager
		embodied      averager
		water         averager
		recyclability averager
		renewable     averager
		lifespan      averager
	)
	emitters := make([]MaterialEmitter, 0, n)

	for _, m := range materials {
		carbon := m.TotalCarbon()
		footprintSum += m.CarbonFootprint
		out.TotalCarbonFootprint += carbon
		out.MaterialsByCategory[m.Category]++
		out.CarbonByCategory[m.Category] += carbon

		if model.IsTrue(m.Recyclable) {
			recyclable++
		}
		if model.IsTrue(m.LocallySourced) {
			local++
		}
		if model.IsTrue(m.Biodegradable) {
			biodegradable++
		}
		if len(m.Certifications) > 0 {
			certified++
		}

		recycled.add(m.RecycledContent)
		embodied.add(m.EmbodiedCarbon)
		water.add(m.WaterFootprint)
		recyclability.add(m.Recyclability)
		renewable.add(m.RenewableContent)
		lifespan.add(m.Lifespan)

		emitters = append(emitters, MaterialEmitter{ID: m.ID, Name: m.Name, Carbon: carbon})
	}

	out.TotalMaterials = n
	out.AverageCarbonFootprint = footprintSum / float64(n)
	out.RecyclablePercentage = percentOf(recyclable, n)
	out.LocallySourcedPercentage = percentOf(local, n)
	out.BiodegradablePercentage = percentOf(biodegradable, n)
	out.CertificationCoverage = percentOf(certified, n)
	out.AverageRecycledContent = recycled.mean()
	out.TotalEmbodiedCarbon = embodied.sum
	out.WaterIntensity = water.meanPtr()
	out.AverageRecyclability = recyclability.mean()
	out.AverageRenewableContent = renewable.mean()
	out.AverageLifespan = lifespan.meanPtr()

	out.ResourceEfficiency = ResourceEfficiencyRecycledWeight*out.AverageRecycledContent/PercentageMultiplier +
		ResourceEfficiencyLocalWeight*out.LocallySourcedPercentage/PercentageMultiplier

	out.TopEmitters = topEmitters(emitters, out.TotalCarbonFootprint)
	return out
}

// topEmitters returns the TopEmitterCount largest emitters, largest first.
// Ties keep input order.
func topEmitters(emitters []MaterialEmitter, total float64) []MaterialEmitter {
	sort.SliceStable(emitters, func(i, j int) bool {
		return emitters[i].Carbon > emitters[j].Carbon
	})
	if len(emitters) > TopEmitterCount {
		emitters = emitters[:TopEmitterCount]
	}
	out := make([]MaterialEmitter, len(emitters))
	for i, e := range emitters {
		e.Share = ratio(e.Carbon, total) * PercentageMultiplier
		out[i] = e
	}
	return out
}
