package lifecycle

// Stage names, in assessment order.
const (
	StageRawMaterialExtraction = "Raw Material Extraction"
	StageManufacturing         = "Manufacturing"
	StageTransportation        = "Transportation"
	StageConstruction          = "Construction"
	StageUsePhase              = "Use Phase"
	StageEndOfLife             = "End of Life"
)

// Fixed improvement-potential weight per stage.
const (
	ExtractionImprovementPotential     = 0.4
	ManufacturingImprovementPotential  = 0.35
	TransportationImprovementPotential = 0.3
	ConstructionImprovementPotential   = 0.25
	UsePhaseImprovementPotential       = 0.2
	EndOfLifeImprovementPotential      = 0.45
)

// Default carbon share per stage when the input omits it.
const (
	DefaultMaterialCarbonFootprint       = 0.3
	DefaultManufacturingCarbonFootprint  = 0.25
	DefaultTransportationCarbonFootprint = 0.1
	DefaultConstructionCarbonFootprint   = 0.1
	DefaultUsePhaseCarbonFootprint       = 0.15
	DefaultEndOfLifeCarbonFootprint      = 0.1
)

// Default water share per stage when the input omits it.
const (
	DefaultMaterialWaterFootprint       = 0.25
	DefaultManufacturingWaterFootprint  = 0.3
	DefaultTransportationWaterFootprint = 0.05
	DefaultConstructionWaterFootprint   = 0.15
	DefaultUsePhaseWaterFootprint       = 0.2
	DefaultEndOfLifeWaterFootprint      = 0.05
)

// Default energy share per stage when the input omits it.
const (
	DefaultMaterialEnergyConsumption       = 0.2
	DefaultManufacturingEnergyConsumption  = 0.3
	DefaultTransportationEnergyConsumption = 0.1
	DefaultConstructionEnergyConsumption   = 0.1
	DefaultUsePhaseEnergyConsumption       = 0.25
	DefaultEndOfLifeEnergyConsumption      = 0.05
)

// Hotspot thresholds. A stage is reported when it is the top stage for the
// metric and its value exceeds the threshold.
const (
	PrimaryCarbonHotspotThreshold   = 0.2
	SecondaryCarbonHotspotThreshold = 0.15
	WaterHotspotThreshold           = 0.3
	EnergyHotspotThreshold          = 0.3
)

// Hotspot metric identifiers.
const (
	MetricCarbon = "carbon"
	MetricWater  = "water"
	MetricEnergy = "energy"
	MetricNone   = "none"
)

// Assessment metadata.
const (
	UncertaintyLevel = "Medium"
	DataQuality      = 0.7
	FunctionalUnit   = "Per project"
	SystemBoundaries = "Cradle to grave (A1-C4)"
	AllocationMethod = "Mass-based allocation"
)

// FallbackHotspotDescription is reported when no stage clears a threshold.
const FallbackHotspotDescription = "No dominant hotspot identified; impacts are distributed across lifecycle stages"

// stageHotspots is the fixed descriptive hotspot text attached to each stage.
//
//nolint:gochecknoglobals // Constant lookup table.
var stageHotspots = map[string][]string{
	StageRawMaterialExtraction: {"Quarrying and mining energy use", "Virgin resource depletion"},
	StageManufacturing:         {"Cement clinker production", "Steel furnace emissions", "Process heat"},
	StageTransportation:        {"Diesel freight haulage", "Long-distance material imports"},
	StageConstruction:          {"On-site plant and generators", "Construction waste"},
	StageUsePhase:              {"Operational energy", "Maintenance and replacement cycles"},
	StageEndOfLife:             {"Demolition energy", "Landfill disposal", "Low material recovery"},
}
