package circular

// Default ratios applied when an Input field is nil.
const (
	DefaultRecycledContentRatio   = 0.2
	DefaultRecyclabilityRate      = 0.5
	DefaultResourceReuseRate      = 0.1
	DefaultWasteRecyclingRate     = 0.4
	DefaultBiodegradableContent   = 0.1
	DefaultByproductSynergy       = 0.05
	DefaultDesignForDisassembly   = 0.3
	DefaultRepairabilityScore     = 0.4
	DefaultRenewableMaterialRatio = 0.15

	// DefaultProductLifespan is in years.
	DefaultProductLifespan = 50.0
)

// Closed-loop potential weights.
//
//	closedLoopPotential = 0.6 × recyclability + 0.4 × designForDisassembly
const (
	ClosedLoopRecyclabilityWeight = 0.6
	ClosedLoopDisassemblyWeight   = 0.4
)

// Material circularity index weights.
//
//	mci = 0.3 × recycledContent + 0.3 × recyclability + 0.2 × reuseRate + 0.1 × biodegradable + 0.1 × byproductSynergy
const (
	MCIRecycledWeight      = 0.3
	MCIRecyclabilityWeight = 0.3
	MCIReuseWeight         = 0.2
	MCIBiodegradableWeight = 0.1
	MCIByproductWeight     = 0.1
)

// Waste diversion weights.
//
//	wasteDiversionRate = 0.8 × wasteRecyclingRate + 0.2 × biodegradableContent
const (
	WasteDiversionRecyclingWeight     = 0.8
	WasteDiversionBiodegradableWeight = 0.2
)

// Remanufacturing weights.
//
//	remanufacturingPotential = 0.5 × designForDisassembly + 0.5 × repairability
const (
	RemanufacturingDisassemblyWeight   = 0.5
	RemanufacturingRepairabilityWeight = 0.5
)

// Three-tier material circularity index weights. Each tier is scored in [0,1].
//
//	input  = 0.7 × recycledContent + 0.3 × renewableContent
//	use    = min(1, lifespan / ReferenceLifespan), or UnknownLifespanScore
//	output = 0.7 × recyclability + 0.3 × biodegradable
//	index  = 100 × (0.3 × input + 0.2 × use + 0.5 × output)
const (
	TierInputWeight  = 0.3
	TierUseWeight    = 0.2
	TierOutputWeight = 0.5

	InputRecycledWeight  = 0.7
	InputRenewableWeight = 0.3

	OutputRecyclabilityWeight = 0.7
	OutputBiodegradableWeight = 0.3

	// ReferenceLifespan is the service life in years that earns a full use-tier score.
	ReferenceLifespan = 50.0
	// UnknownLifespanScore is the use-tier score for a material without a lifespan.
	UnknownLifespanScore = 0.5
)

// Recommendation thresholds. A rule fires when the metric is below its threshold.
const (
	ReuseRateThreshold            = 0.5
	WasteRecyclingThreshold       = 0.7
	ClosedLoopThreshold           = 0.6
	CircularityIndexThreshold     = 0.5
	DesignForDisassemblyThreshold = 0.5
	RemanufacturingThreshold      = 0.4

	// MinRecommendations is the count below which the fallback is appended.
	MinRecommendations = 3
)

// Qualitative levels used for impact and difficulty.
const (
	LevelLow    = "Low"
	LevelMedium = "Medium"
	LevelHigh   = "High"
)

// percentScale converts a [0,100] material percentage to a ratio.
const percentScale = 100.0
