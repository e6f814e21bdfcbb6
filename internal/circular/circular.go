// Package circular scores how well a project keeps materials in use: closed
// loop potential, material circularity, waste diversion and remanufacturing.
package circular

// Input holds the circularity ratios of a project. Every field is optional and
// is a ratio in [0,1]; nil fields take their documented default and
// out-of-range values are clamped.
type Input struct {
	RecycledContentRatio   *float64 `json:"recycledContentRatio,omitempty"   yaml:"recycledContentRatio,omitempty"`
	RecyclabilityRate      *float64 `json:"recyclabilityRate,omitempty"      yaml:"recyclabilityRate,omitempty"`
	ResourceReuseRate      *float64 `json:"resourceReuseRate,omitempty"      yaml:"resourceReuseRate,omitempty"`
	WasteRecyclingRate     *float64 `json:"wasteRecyclingRate,omitempty"     yaml:"wasteRecyclingRate,omitempty"`
	BiodegradableContent   *float64 `json:"biodegradableContent,omitempty"   yaml:"biodegradableContent,omitempty"`
	ByproductSynergy       *float64 `json:"byproductSynergy,omitempty"       yaml:"byproductSynergy,omitempty"`
	DesignForDisassembly   *float64 `json:"designForDisassembly,omitempty"   yaml:"designForDisassembly,omitempty"`
	RepairabilityScore     *float64 `json:"repairabilityScore,omitempty"     yaml:"repairabilityScore,omitempty"`
	RenewableMaterialRatio *float64 `json:"renewableMaterialRatio,omitempty" yaml:"renewableMaterialRatio,omitempty"`

	// ProductLifespan is in years.
	ProductLifespan *float64 `json:"productLifespan,omitempty" yaml:"productLifespan,omitempty"`
}

// Metrics is the result of CalculateCircularEconomyMetrics. The input ratios
// are echoed after defaulting; every ratio field is in [0,1].
type Metrics struct {
	RecycledContentRatio   float64 `json:"recycledContentRatio"`
	RecyclabilityRate      float64 `json:"recyclabilityRate"`
	ResourceReuseRate      float64 `json:"resourceReuseRate"`
	WasteRecyclingRate     float64 `json:"wasteRecyclingRate"`
	BiodegradableContent   float64 `json:"biodegradableContent"`
	ByproductSynergy       float64 `json:"byproductSynergy"`
	DesignForDisassembly   float64 `json:"designForDisassembly"`
	RepairabilityScore     float64 `json:"repairabilityScore"`
	RenewableMaterialRatio float64 `json:"renewableMaterialRatio"`
	ProductLifespan        float64 `json:"productLifespan"`

	ClosedLoopPotential      float64 `json:"closedLoopPotential"`
	MaterialCircularityIndex float64 `json:"materialCircularityIndex"`
	WasteDiversionRate       float64 `json:"wasteDiversionRate"`
	RemanufacturingPotential float64 `json:"remanufacturingPotential"`
}

// CalculateCircularEconomyMetrics defaults and clamps the input ratios, then
// derives the four composite indicators.
func CalculateCircularEconomyMetrics(in Input) Metrics {
	m := Metrics{
		RecycledContentRatio:   ratioOr(in.RecycledContentRatio, DefaultRecycledContentRatio),
		RecyclabilityRate:      ratioOr(in.RecyclabilityRate, DefaultRecyclabilityRate),
		ResourceReuseRate:      ratioOr(in.ResourceReuseRate, DefaultResourceReuseRate),
		WasteRecyclingRate:     ratioOr(in.WasteRecyclingRate, DefaultWasteRecyclingRate),
		BiodegradableContent:   ratioOr(in.BiodegradableContent, DefaultBiodegradableContent),
		ByproductSynergy:       ratioOr(in.ByproductSynergy, DefaultByproductSynergy),
		DesignForDisassembly:   ratioOr(in.DesignForDisassembly, DefaultDesignForDisassembly),
		RepairabilityScore:     ratioOr(in.RepairabilityScore, DefaultRepairabilityScore),
		RenewableMaterialRatio: ratioOr(in.RenewableMaterialRatio, DefaultRenewableMaterialRatio),
		ProductLifespan:        DefaultProductLifespan,
	}
	if in.ProductLifespan != nil && *in.ProductLifespan > 0 {
		m.ProductLifespan = *in.ProductLifespan
	}

	m.ClosedLoopPotential = ClosedLoopRecyclabilityWeight*m.RecyclabilityRate +
		ClosedLoopDisassemblyWeight*m.DesignForDisassembly

	m.MaterialCircularityIndex = MCIRecycledWeight*m.RecycledContentRatio +
		MCIRecyclabilityWeight*m.RecyclabilityRate +
		MCIReuseWeight*m.ResourceReuseRate +
		MCIBiodegradableWeight*m.BiodegradableContent +
		MCIByproductWeight*m.ByproductSynergy

	m.WasteDiversionRate = WasteDiversionRecyclingWeight*m.WasteRecyclingRate +
		WasteDiversionBiodegradableWeight*m.BiodegradableContent

	m.RemanufacturingPotential = RemanufacturingDisassemblyWeight*m.DesignForDisassembly +
		RemanufacturingRepairabilityWeight*m.RepairabilityScore

	return m
}

// ratioOr returns *v clamped to [0,1], or def when v is nil.
func ratioOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return clamp01(*v)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
