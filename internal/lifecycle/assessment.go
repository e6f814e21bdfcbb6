// Package lifecycle maps project impacts onto a fixed six-stage lifecycle
// model and reports totals, hotspots and improvement potential.
package lifecycle

import (
	"fmt"
	"sort"
)

// Input carries per-stage impacts. Every field is optional; a nil field is
// replaced by its documented default, which makes CalculateLifecycleAssessment
// total over partial input.
type Input struct {
	MaterialCarbonFootprint       *float64 `json:"materialCarbonFootprint,omitempty"`
	ManufacturingCarbonFootprint  *float64 `json:"manufacturingCarbonFootprint,omitempty"`
	TransportationCarbonFootprint *float64 `json:"transportationCarbonFootprint,omitempty"`
	ConstructionCarbonFootprint   *float64 `json:"constructionCarbonFootprint,omitempty"`
	UsePhaseCarbonFootprint       *float64 `json:"usePhaseCarbonFootprint,omitempty"`
	EndOfLifeCarbonFootprint      *float64 `json:"endOfLifeCarbonFootprint,omitempty"`

	MaterialWaterFootprint       *float64 `json:"materialWaterFootprint,omitempty"`
	ManufacturingWaterFootprint  *float64 `json:"manufacturingWaterFootprint,omitempty"`
	TransportationWaterFootprint *float64 `json:"transportationWaterFootprint,omitempty"`
	ConstructionWaterFootprint   *float64 `json:"constructionWaterFootprint,omitempty"`
	UsePhaseWaterFootprint       *float64 `json:"usePhaseWaterFootprint,omitempty"`
	EndOfLifeWaterFootprint      *float64 `json:"endOfLifeWaterFootprint,omitempty"`

	MaterialEnergyConsumption       *float64 `json:"materialEnergyConsumption,omitempty"`
	ManufacturingEnergyConsumption  *float64 `json:"manufacturingEnergyConsumption,omitempty"`
	TransportationEnergyConsumption *float64 `json:"transportationEnergyConsumption,omitempty"`
	ConstructionEnergyConsumption   *float64 `json:"constructionEnergyConsumption,omitempty"`
	UsePhaseEnergyConsumption       *float64 `json:"usePhaseEnergyConsumption,omitempty"`
	EndOfLifeEnergyConsumption      *float64 `json:"endOfLifeEnergyConsumption,omitempty"`
}

// Stage is one of the six lifecycle stages.
type Stage struct {
	Name                 string   `json:"name"`
	CarbonFootprint      float64  `json:"carbonFootprint"`
	WaterFootprint       float64  `json:"waterFootprint"`
	EnergyConsumption    float64  `json:"energyConsumption"`
	Hotspots             []string `json:"hotspots"`
	ImprovementPotential float64  `json:"improvementPotential"`
}

// Hotspot is a stage that dominates one impact metric.
type Hotspot struct {
	Stage       string  `json:"stage"`
	Metric      string  `json:"metric"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
}

// Assessment is the result of a lifecycle assessment.
type Assessment struct {
	Stages                 []Stage   `json:"stages"`
	TotalCarbonFootprint   float64   `json:"totalCarbonFootprint"`
	TotalWaterFootprint    float64   `json:"totalWaterFootprint"`
	TotalEnergyConsumption float64   `json:"totalEnergyConsumption"`
	Hotspots               []Hotspot `json:"hotspots"`
	ImprovementPotential   float64   `json:"improvementPotential"`

	UncertaintyLevel string  `json:"uncertaintyLevel"`
	DataQuality      float64 `json:"dataQuality"`
	FunctionalUnit   string  `json:"functionalUnit"`
	SystemBoundaries string  `json:"systemBoundaries"`
	AllocationMethod string  `json:"allocationMethod"`
}

// CalculateLifecycleAssessment builds the six stages from input, totals them,
// identifies hotspots and computes the carbon-weighted improvement potential.
func CalculateLifecycleAssessment(in Input) Assessment {
	stages := BuildStages(in)

	a := Assessment{
		Stages:           stages,
		UncertaintyLevel: UncertaintyLevel,
		DataQuality:      DataQuality,
		FunctionalUnit:   FunctionalUnit,
		SystemBoundaries: SystemBoundaries,
		AllocationMethod: AllocationMethod,
	}
	for _, s := range stages {
		a.TotalCarbonFootprint += s.CarbonFootprint
		a.TotalWaterFootprint += s.WaterFootprint
		a.TotalEnergyConsumption += s.EnergyConsumption
	}
	a.Hotspots = IdentifyLifecycleHotspots(stages)
	a.ImprovementPotential = CalculateImprovementPotential(stages)
	return a
}

// BuildStages applies defaults and returns the six stages in fixed order:
// extraction, manufacturing, transportation, construction, use, end of life.
func BuildStages(in Input) []Stage {
	return []Stage{
		newStage(StageRawMaterialExtraction, ExtractionImprovementPotential,
			or(in.MaterialCarbonFootprint, DefaultMaterialCarbonFootprint),
			or(in.MaterialWaterFootprint, DefaultMaterialWaterFootprint),
			or(in.MaterialEnergyConsumption, DefaultMaterialEnergyConsumption)),
		newStage(StageManufacturing, ManufacturingImprovementPotential,
			or(in.ManufacturingCarbonFootprint, DefaultManufacturingCarbonFootprint),
			or(in.ManufacturingWaterFootprint, DefaultManufacturingWaterFootprint),
			or(in.ManufacturingEnergyConsumption, DefaultManufacturingEnergyConsumption)),
		newStage(StageTransportation, TransportationImprovementPotential,
			or(in.TransportationCarbonFootprint, DefaultTransportationCarbonFootprint),
			or(in.TransportationWaterFootprint, DefaultTransportationWaterFootprint),
			or(in.TransportationEnergyConsumption, DefaultTransportationEnergyConsumption)),
		newStage(StageConstruction, ConstructionImprovementPotential,
			or(in.ConstructionCarbonFootprint, DefaultConstructionCarbonFootprint),
			or(in.ConstructionWaterFootprint, DefaultConstructionWaterFootprint),
			or(in.ConstructionEnergyConsumption, DefaultConstructionEnergyConsumption)),
		newStage(StageUsePhase, UsePhaseImprovementPotential,
			or(in.UsePhaseCarbonFootprint, DefaultUsePhaseCarbonFootprint),
			or(in.UsePhaseWaterFootprint, DefaultUsePhaseWaterFootprint),
			or(in.UsePhaseEnergyConsumption, DefaultUsePhaseEnergyConsumption)),
		newStage(StageEndOfLife, EndOfLifeImprovementPotential,
			or(in.EndOfLifeCarbonFootprint, DefaultEndOfLifeCarbonFootprint),
			or(in.EndOfLifeWaterFootprint, DefaultEndOfLifeWaterFootprint),
			or(in.EndOfLifeEnergyConsumption, DefaultEndOfLifeEnergyConsumption)),
	}
}

func newStage(name string, potential, carbon, water, energy float64) Stage {
	hotspots := make([]string, len(stageHotspots[name]))
	copy(hotspots, stageHotspots[name])
	return Stage{
		Name:                 name,
		CarbonFootprint:      carbon,
		WaterFootprint:       water,
		EnergyConsumption:    energy,
		Hotspots:             hotspots,
		ImprovementPotential: potential,
	}
}

// or returns *v, or def when v is nil.
func or(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// IdentifyLifecycleHotspots reports the stages that dominate each metric.
//
//   - top carbon stage when its footprint > 0.2
//   - second carbon stage when its footprint > 0.15
//   - top water stage when its footprint > 0.3
//   - top energy stage when its consumption > 0.3
//
// The result is never empty: when nothing clears a threshold a single
// fallback hotspot is returned. Ties are broken by stage order.
func IdentifyLifecycleHotspots(stages []Stage) []Hotspot {
	hotspots := []Hotspot{}

	byCarbon := sortedBy(stages, func(s Stage) float64 { return s.CarbonFootprint })
	if len(byCarbon) > 0 && byCarbon[0].CarbonFootprint > PrimaryCarbonHotspotThreshold {
		hotspots = append(hotspots, newHotspot(byCarbon[0], MetricCarbon, byCarbon[0].CarbonFootprint))
	}
	if len(byCarbon) > 1 && byCarbon[1].CarbonFootprint > SecondaryCarbonHotspotThreshold {
		hotspots = append(hotspots, newHotspot(byCarbon[1], MetricCarbon, byCarbon[1].CarbonFootprint))
	}

	byWater := sortedBy(stages, func(s Stage) float64 { return s.WaterFootprint })
	if len(byWater) > 0 && byWater[0].WaterFootprint > WaterHotspotThreshold {
		hotspots = append(hotspots, newHotspot(byWater[0], MetricWater, byWater[0].WaterFootprint))
	}

	byEnergy := sortedBy(stages, func(s Stage) float64 { return s.EnergyConsumption })
	if len(byEnergy) > 0 && byEnergy[0].EnergyConsumption > EnergyHotspotThreshold {
		hotspots = append(hotspots, newHotspot(byEnergy[0], MetricEnergy, byEnergy[0].EnergyConsumption))
	}

	if len(hotspots) == 0 {
		hotspots = append(hotspots, Hotspot{
			Stage:       "All stages",
			Metric:      MetricNone,
			Description: FallbackHotspotDescription,
		})
	}
	return hotspots
}

// sortedBy returns a copy of stages sorted by key, largest first.
func sortedBy(stages []Stage, key func(Stage) float64) []Stage {
	sorted := make([]Stage, len(stages))
	copy(sorted, stages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return key(sorted[i]) > key(sorted[j])
	})
	return sorted
}

func newHotspot(s Stage, metric string, value float64) Hotspot {
	return Hotspot{
		Stage:       s.Name,
		Metric:      metric,
		Value:       value,
		Description: fmt.Sprintf("%s dominates %s impact (%.2f)", s.Name, metric, value),
	}
}

// CalculateImprovementPotential weights each stage's fixed improvement
// potential by its share of the total carbon footprint:
//
//	Σ stage.ImprovementPotential × stage.CarbonFootprint / totalCarbonFootprint
//
// Returns 0 when the total carbon footprint is 0.
func CalculateImprovementPotential(stages []Stage) float64 {
	var total float64
	for _, s := range stages {
		total += s.CarbonFootprint
	}
	if total == 0 {
		return 0
	}

	var weighted float64
	for _, s := range stages {
		weighted += s.ImprovementPotential * (s.CarbonFootprint / total)
	}
	return weighted
}
