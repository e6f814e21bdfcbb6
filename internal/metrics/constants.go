package metrics

// PercentageMultiplier converts a ratio to a percentage.
const PercentageMultiplier = 100.0

// Material composite weights.
//
//	resourceEfficiency = 0.7 × avgRecycledContent/100 + 0.3 × locallySourcedPercentage/100
const (
	ResourceEfficiencyRecycledWeight = 0.7
	ResourceEfficiencyLocalWeight    = 0.3

	// TopEmitterCount is the number of materials listed in MaterialMetrics.TopEmitters.
	TopEmitterCount = 3
)

// Transport composite weights.
//
//	efficiencyScore = 0.4 × avgEfficiency + 0.3 × routeOptimizationRate/100 + 0.3 × electricVehiclePercentage/100
const (
	TransportEfficiencyWeight = 0.4
	TransportRouteWeight      = 0.3
	TransportElectricWeight   = 0.3
)

// Energy composite weights.
//
//	efficiencyScore = 0.4 × avgEfficiency + 0.3 × renewable%/100 + 0.2 × smartMonitoring%/100 + 0.1 × demandResponse%/100
const (
	EnergyEfficiencyWeight     = 0.4
	EnergyRenewableWeight      = 0.3
	EnergyMonitoringWeight     = 0.2
	EnergyDemandResponseWeight = 0.1
)

// Opportunity thresholds and savings factors.
const (
	// HighConsumptionThreshold is the consumption above which a non-renewable
	// supply is flagged for a renewable transition.
	HighConsumptionThreshold = 1000.0

	// LowEfficiencyThreshold flags energy equipment for an upgrade.
	LowEfficiencyThreshold = 0.7

	// TargetEfficiency is the efficiency assumed after an equipment upgrade.
	TargetEfficiency = 0.85

	// HighPeakDemandThreshold flags supplies for peak demand management.
	HighPeakDemandThreshold = 0.8

	// HighEmissionFactorThreshold flags transport legs as high-emission routes.
	HighEmissionFactorThreshold = 0.8

	// RenewableSwitchReduction is the share of emissions avoided by switching
	// a supply to a renewable source.
	RenewableSwitchReduction = 0.8

	// PeakManagementReduction is the share of emissions avoided by peak shaving.
	PeakManagementReduction = 0.1

	// RenewableInvestmentPerUnit is the capital cost per consumption unit of a renewable transition.
	RenewableInvestmentPerUnit = 1.5

	// EfficiencyInvestmentPerUnit is the capital cost per consumption unit of an equipment upgrade.
	EfficiencyInvestmentPerUnit = 0.6

	// PeakInvestmentPerUnit is the capital cost per consumption unit of demand-response controls.
	PeakInvestmentPerUnit = 0.2

	// EnergyCostPerUnit is the assumed tariff used to estimate payback periods.
	EnergyCostPerUnit = 0.15

	// LightingSavingsShare is the share of energy emissions a lighting retrofit avoids.
	LightingSavingsShare = 0.1

	// HVACSavingsShare is the share of energy emissions an HVAC optimization avoids.
	HVACSavingsShare = 0.15

	// MinSpecificOpportunities is the number of specific findings below which
	// generic fallback entries are appended.
	MinSpecificOpportunities = 3
)

// Route reduction factors.
const (
	// ModalShiftReduction is the share of route emissions avoided by a modal shift.
	ModalShiftReduction = 0.4

	// ElectricRouteReduction is the share avoided by moving a route to an electric fleet.
	ElectricRouteReduction = 0.6

	// ConsolidationReduction is the share of fleet emissions avoided by load consolidation.
	ConsolidationReduction = 0.15

	// EcoDrivingReduction is the share of fleet emissions avoided by eco-driving training.
	EcoDrivingReduction = 0.08
)

// Material substitution thresholds.
const (
	// SubstitutionCarbonShare is the share of material carbon above which a
	// material is a substitution candidate.
	SubstitutionCarbonShare = 0.2

	// SubstitutionMaxRecycledContent is the recycled content (percent) below
	// which a high-carbon material is a substitution candidate.
	SubstitutionMaxRecycledContent = 30.0

	// SubstitutionReduction is the expected reduction from a lower-carbon alternative.
	SubstitutionReduction = 0.3

	// LowCarbonConcreteReduction is the expected reduction from a cement-replacement mix.
	LowCarbonConcreteReduction = 0.25

	// RecycledSteelReduction is the expected reduction from high recycled-content steel.
	RecycledSteelReduction = 0.2
)

// Complexity labels for recommendation records.
const (
	ComplexityLow    = "Low"
	ComplexityMedium = "Medium"
	ComplexityHigh   = "High"
)

// sustainableFuels lists fuel types counted as low-carbon transport.
//
//nolint:gochecknoglobals // Constant lookup table.
var sustainableFuels = map[string]bool{
	"electric":         true,
	"electricity":      true,
	"hydrogen":         true,
	"biodiesel":        true,
	"biofuel":          true,
	"hvo":              true,
	"renewable diesel": true,
	"biogas":           true,
}

// goodMaintenanceStatuses lists maintenance statuses counted as compliant.
//
//nolint:gochecknoglobals // Constant lookup table.
var goodMaintenanceStatuses = map[string]bool{
	"good":      true,
	"excellent": true,
	"serviced":  true,
}
