package circular

import (
	"math"

	"github.com/rshade/carboncalc/internal/model"
)

// CalculateMaterialCircularityIndex scores a material list on a 0-100 scale.
//
// Each material is scored on three tiers (input, use, output) which are
// blended 30/20/50. The project index is the quantity-weighted mean of the
// material scores. Materials with a non-positive quantity carry no weight and
// an empty or weightless list scores 0.
func CalculateMaterialCircularityIndex(materials []model.Material) float64 {
	var weighted, totalQuantity float64
	for _, m := range materials {
		if m.Quantity <= 0 {
			continue
		}
		weighted += materialScore(m) * m.Quantity
		totalQuantity += m.Quantity
	}
	if totalQuantity == 0 {
		return 0
	}
	return weighted / totalQuantity * percentScale
}

// materialScore returns the three-tier score of a single material in [0,1].
func materialScore(m model.Material) float64 {
	input := InputRecycledWeight*percentRatio(m.RecycledContent) +
		InputRenewableWeight*percentRatio(m.RenewableContent)

	use := UnknownLifespanScore
	if m.Lifespan != nil {
		use = clamp01(*m.Lifespan / ReferenceLifespan)
	}

	recyclability := 0.0
	switch {
	case m.Recyclability != nil:
		recyclability = percentRatio(m.Recyclability)
	case model.IsTrue(m.Recyclable):
		recyclability = 1
	}
	biodegradable := 0.0
	if model.IsTrue(m.Biodegradable) {
		biodegradable = 1
	}
	output := OutputRecyclabilityWeight*recyclability + OutputBiodegradableWeight*biodegradable

	return TierInputWeight*input + TierUseWeight*use + TierOutputWeight*output
}

// percentRatio converts an optional [0,100] percentage to a clamped ratio; nil is 0.
func percentRatio(v *float64) float64 {
	if v == nil {
		return 0
	}
	return clamp01(*v / percentScale)
}

// InputFromMaterials derives the material-observable circularity ratios from a
// material list: recycled content, recyclability, biodegradable share,
// renewable content and lifespan. Ratios no material reports stay nil and take
// their defaults. Site practices (reuse, waste recycling, synergy, disassembly,
// repairability) cannot be observed from materials and are always nil.
func InputFromMaterials(materials []model.Material) Input {
	var (
		recycled, recyclability, renewable, lifespan mean
		biodegradable, recyclableFlag                mean
	)
	for _, m := range materials {
		recycled.addPercent(m.RecycledContent)
		renewable.addPercent(m.RenewableContent)
		recyclability.addPercent(m.Recyclability)
		lifespan.add(m.Lifespan)
		biodegradable.addFlag(m.Biodegradable)
		recyclableFlag.addFlag(m.Recyclable)
	}

	in := Input{
		RecycledContentRatio:   recycled.ptr(),
		RenewableMaterialRatio: renewable.ptr(),
		BiodegradableContent:   biodegradable.ptr(),
		ProductLifespan:        lifespan.ptr(),
		RecyclabilityRate:      recyclability.ptr(),
	}
	if in.RecyclabilityRate == nil {
		in.RecyclabilityRate = recyclableFlag.ptr()
	}
	return in
}

// mean averages the values that were present.
type mean struct {
	sum   float64
	count int
}

func (a *mean) add(v *float64) {
	if v == nil || math.IsNaN(*v) {
		return
	}
	a.sum += *v
	a.count++
}

func (a *mean) addPercent(v *float64) {
	if v == nil {
		return
	}
	r := percentRatio(v)
	a.add(&r)
}

func (a *mean) addFlag(v *bool) {
	if v == nil {
		return
	}
	f := 0.0
	if *v {
		f = 1
	}
	a.add(&f)
}

func (a mean) ptr() *float64 {
	if a.count == 0 {
		return nil
	}
	m := a.sum / float64(a.count)
	return &m
}
