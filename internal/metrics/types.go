// Package metrics computes aggregate statistics over construction line items.
//
// The three calculators (materials, transport, energy) are independent, pure,
// and total: a nil or empty slice yields the canonical zero value for the
// domain, with empty non-nil maps and slices so the result serializes the same
// way every time.
package metrics

// MaterialEmitter identifies a material and its share of material emissions.
type MaterialEmitter struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Carbon float64 `json:"carbon"`
	// Share is the percentage of TotalCarbonFootprint attributed to this material.
	Share float64 `json:"share"`
}

// MaterialMetrics summarizes a material list.
type MaterialMetrics struct {
	TotalMaterials         int                `json:"totalMaterials"`
	TotalCarbonFootprint   float64            `json:"totalCarbonFootprint"`
	AverageCarbonFootprint float64            `json:"averageCarbonFootprint"`
	MaterialsByCategory    map[string]int     `json:"materialsByCategory"`
	CarbonByCategory       map[string]float64 `json:"carbonByCategory"`

	RecyclablePercentage     float64 `json:"recyclablePercentage"`
	AverageRecycledContent   float64 `json:"averageRecycledContent"`
	LocallySourcedPercentage float64 `json:"locallySourcedPercentage"`
	TotalEmbodiedCarbon      float64 `json:"totalEmbodiedCarbon"`
	// WaterIntensity is the average water footprint, nil when no material reports one.
	WaterIntensity          *float64 `json:"waterIntensity,omitempty"`
	AverageRecyclability    float64  `json:"averageRecyclability"`
	AverageRenewableContent float64  `json:"averageRenewableContent"`
	BiodegradablePercentage float64  `json:"biodegradablePercentage"`
	// AverageLifespan is in years, nil when no material reports a lifespan.
	AverageLifespan       *float64 `json:"averageLifespan,omitempty"`
	CertificationCoverage float64  `json:"certificationCoverage"`

	// ResourceEfficiency is a 0-1 blend of recycled content and local sourcing.
	ResourceEfficiency float64           `json:"resourceEfficiency"`
	TopEmitters        []MaterialEmitter `json:"topEmitters"`
}

// TransportMetrics summarizes a transport list.
type TransportMetrics struct {
	TotalTransportItems int            `json:"totalTransportItems"`
	TotalDistance       float64        `json:"totalDistance"`
	TotalWeight         float64        `json:"totalWeight"`
	TotalEmissions      float64        `json:"totalEmissions"`
	AverageDistance     float64        `json:"averageDistance"`
	TransportByType     map[string]int `json:"transportByType"`

	// CarbonIntensity is the distance-weighted average emissions factor.
	CarbonIntensity                float64 `json:"carbonIntensity"`
	ElectricVehiclePercentage      float64 `json:"electricVehiclePercentage"`
	SustainableTransportPercentage float64 `json:"sustainableTransportPercentage"`
	AverageEfficiency              float64 `json:"averageEfficiency"`
	RouteOptimizationRate          float64 `json:"routeOptimizationRate"`
	AverageIdlingTime              float64 `json:"averageIdlingTime"`
	AverageOperatingHours          float64 `json:"averageOperatingHours"`
	MaintenanceComplianceRate      float64 `json:"maintenanceComplianceRate"`
	PeakTimePercentage             float64 `json:"peakTimePercentage"`
	FrequentStopsPercentage        float64 `json:"frequentStopsPercentage"`

	// EfficiencyScore is a 0-1 blend of efficiency, route optimization and electrification.
	EfficiencyScore float64 `json:"efficiencyScore"`
}

// EnergyMetrics summarizes an energy list.
type EnergyMetrics struct {
	TotalEnergyItems int                `json:"totalEnergyItems"`
	TotalConsumption float64            `json:"totalConsumption"`
	TotalEmissions   float64            `json:"totalEmissions"`
	EnergyBySource   map[string]float64 `json:"energyBySource"`

	RenewablePercentage         float64 `json:"renewablePercentage"`
	RenewableConsumptionShare   float64 `json:"renewableConsumptionShare"`
	AverageCarbonIntensity      float64 `json:"averageCarbonIntensity"`
	AverageEfficiency           float64 `json:"averageEfficiency"`
	AveragePeakDemand           float64 `json:"averagePeakDemand"`
	SmartMonitoringCoverage     float64 `json:"smartMonitoringCoverage"`
	DemandResponseParticipation float64 `json:"demandResponseParticipation"`
	BackupSystemCoverage        float64 `json:"backupSystemCoverage"`
	// StorageCapacity is the summed storage capacity, nil when no item reports one.
	StorageCapacity *float64 `json:"storageCapacity,omitempty"`
	GridDependency  float64  `json:"gridDependency"`
	// TimeOfUseOptimization is never populated; kept so the serialized shape
	// matches existing consumers, which always see the field absent.
	TimeOfUseOptimization *float64 `json:"timeOfUseOptimization,omitempty"`

	// EfficiencyScore is a 0-1 blend of efficiency, renewables, monitoring and demand response.
	EfficiencyScore float64 `json:"efficiencyScore"`
}

// EfficiencyOpportunity is an energy saving measure.
type EfficiencyOpportunity struct {
	Area string `json:"area"`
	// PotentialSavings is avoided kg CO2e per reporting period.
	PotentialSavings         float64  `json:"potentialSavings"`
	InvestmentRequired       *float64 `json:"investmentRequired,omitempty"`
	PaybackPeriod            *float64 `json:"paybackPeriod,omitempty"`
	ImplementationComplexity string   `json:"implementationComplexity"`
	Cobenefits               []string `json:"cobenefits"`
}

// HighEmissionRoute is a transport leg, or the whole fleet for generic
// entries, with reduction options.
type HighEmissionRoute struct {
	Route string `json:"route"`
	// Emissions is the route's kg CO2e.
	Emissions                float64  `json:"emissions"`
	EmissionsFactor          float64  `json:"emissionsFactor"`
	Alternatives             []string `json:"alternatives"`
	PotentialReduction       float64  `json:"potentialReduction"`
	ImplementationComplexity string   `json:"implementationComplexity"`
	Cobenefits               []string `json:"cobenefits"`
}

// MaterialSubstitution is a lower-carbon alternative for a material.
type MaterialSubstitution struct {
	Material                 string   `json:"material"`
	CurrentCarbon            float64  `json:"currentCarbon"`
	Alternatives             []string `json:"alternatives"`
	PotentialReduction       float64  `json:"potentialReduction"`
	ImplementationComplexity string   `json:"implementationComplexity"`
	Cobenefits               []string `json:"cobenefits"`
}
