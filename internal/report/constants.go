package report

// PercentageMultiplier converts a ratio to a percentage.
const PercentageMultiplier = 100.0

// DefaultMinCompleteness is the completeness score below which no report is generated.
const DefaultMinCompleteness = 30.0

// Completeness weights. The count part rewards the number of records, the
// richness part rewards how many fields each record fills in; together they
// sum to 100.
const (
	MaterialCountWeight  = 25.0
	TransportCountWeight = 10.0
	EnergyCountWeight    = 10.0

	MaterialRichnessWeight  = 30.0
	TransportRichnessWeight = 12.5
	EnergyRichnessWeight    = 12.5

	// Record counts at which the count part saturates.
	MaterialCountTarget  = 5
	TransportCountTarget = 3
	EnergyCountTarget    = 3
)

// Domain weights for the overall score. Renormalized over domains that have records.
const (
	MaterialsScoreWeight = 0.5
	TransportScoreWeight = 0.25
	EnergyScoreWeight    = 0.25
)

// Material score blend.
//
//	materials = 100 × (0.4 × resourceEfficiency + 0.3 × recyclable% /100 + 0.3 × certification% /100)
const (
	MaterialEfficiencyWeight    = 0.4
	MaterialRecyclableWeight    = 0.3
	MaterialCertificationWeight = 0.3
)

// Transport score blend.
//
//	transport = 100 × (0.5 × sustainable% /100 + 0.3 × efficiencyScore + 0.2 × (1 - min(1, carbonIntensity)))
const (
	TransportSustainableWeight = 0.5
	TransportEfficiencyWeight  = 0.3
	TransportIntensityWeight   = 0.2
)

// Energy score blend.
//
//	energy = 100 × (0.5 × renewable% /100 + 0.3 × efficiencyScore + 0.2 × (1 - gridDependency/100))
const (
	EnergyRenewableWeight  = 0.5
	EnergyEfficiencyWeight = 0.3
	EnergyGridWeight       = 0.2
)

// PriorityCount is the number of suggestions promoted to PrioritySuggestions.
const PriorityCount = 3

// Suggestion rule thresholds.
const (
	LowRecyclableThreshold      = 50.0
	LowRecycledContentThreshold = 30.0
	LowLocalSourcingThreshold   = 50.0
	DominantEmitterShare        = 40.0
	LowElectricFleetThreshold   = 20.0
	LowRouteOptimizationRate    = 50.0
	HighIdlingHours             = 1.0
	LowRenewableThreshold       = 30.0
	LowMonitoringThreshold      = 50.0
	HighGridDependency          = 70.0
)

// Compliance thresholds.
const (
	ISODataQualityMet       = 70.0
	ISODataQualityPartial   = 50.0
	LEEDRecycledContentMin  = 20.0
	LEEDRegionalMaterialMin = 20.0
	BREEAMCertificationMet  = 50.0
	RenewableEnergyShareMin = 10.0
)

// Compliance statuses.
const (
	StatusMet     = "met"
	StatusPartial = "partial"
	StatusNotMet  = "not met"
)

// Suggestion categories.
const (
	CategoryMaterials   = "materials"
	CategoryTransport   = "transport"
	CategoryEnergy      = "energy"
	CategoryCircularity = "circularity"
	CategoryGeneral     = "general"
)

// Roadmap phases, one per implementation complexity.
const (
	PhaseQuickWins  = "Quick wins"
	PhaseMediumTerm = "Medium-term improvements"
	PhaseStrategic  = "Strategic investments"

	TimeframeQuickWins  = "0-3 months"
	TimeframeMediumTerm = "3-12 months"
	TimeframeStrategic  = "12-36 months"
)
