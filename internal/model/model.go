// Package model defines the construction line items consumed by the
// sustainability engine.
//
// Each domain has a single concrete record type. Required properties are plain
// values; optional properties are pointers and are nil when the caller did not
// supply them. Aggregation code filters on presence rather than zero values so
// that an explicit 0 is distinguishable from "not reported".
package model

// Material is a construction material line item.
type Material struct {
	ID       string `json:"id"       yaml:"id"`
	Name     string `json:"name"     yaml:"name"`
	Category string `json:"category" yaml:"category"`

	// CarbonFootprint is kg CO2e per unit. Never negative.
	CarbonFootprint float64 `json:"carbonFootprint" yaml:"carbonFootprint"`
	Quantity        float64 `json:"quantity"        yaml:"quantity"`
	Unit            string  `json:"unit"            yaml:"unit"`

	Recyclable *bool `json:"recyclable,omitempty" yaml:"recyclable,omitempty"`
	// RecycledContent is a percentage in [0,100].
	RecycledContent *float64 `json:"recycledContent,omitempty" yaml:"recycledContent,omitempty"`
	LocallySourced  *bool    `json:"locallySourced,omitempty"  yaml:"locallySourced,omitempty"`
	EmbodiedCarbon  *float64 `json:"embodiedCarbon,omitempty"  yaml:"embodiedCarbon,omitempty"`
	WaterFootprint  *float64 `json:"waterFootprint,omitempty"  yaml:"waterFootprint,omitempty"`
	// Recyclability is a percentage in [0,100].
	Recyclability *float64 `json:"recyclability,omitempty" yaml:"recyclability,omitempty"`
	// RenewableContent is a percentage in [0,100].
	RenewableContent *float64 `json:"renewableContent,omitempty" yaml:"renewableContent,omitempty"`
	Biodegradable    *bool    `json:"biodegradable,omitempty"    yaml:"biodegradable,omitempty"`
	// Lifespan is the expected service life in years.
	Lifespan *float64 `json:"lifespan,omitempty" yaml:"lifespan,omitempty"`

	Certifications []string `json:"certifications,omitempty" yaml:"certifications,omitempty"`
	Supplier       string   `json:"supplier,omitempty"       yaml:"supplier,omitempty"`
}

// TotalCarbon returns CarbonFootprint × Quantity in kg CO2e.
func (m Material) TotalCarbon() float64 {
	return m.CarbonFootprint * m.Quantity
}

// TransportItem is a single haul or delivery leg.
type TransportItem struct {
	ID   string `json:"id"   yaml:"id"`
	Type string `json:"type" yaml:"type"`
	// Distance is in km.
	Distance float64 `json:"distance" yaml:"distance"`
	// Weight is the payload in tonnes.
	Weight   float64 `json:"weight"   yaml:"weight"`
	FuelType string  `json:"fuelType" yaml:"fuelType"`
	// EmissionsFactor is kg CO2e per tonne-km.
	EmissionsFactor float64 `json:"emissionsFactor" yaml:"emissionsFactor"`

	IsElectric        *bool `json:"isElectric,omitempty"        yaml:"isElectric,omitempty"`
	RouteOptimization *bool `json:"routeOptimization,omitempty" yaml:"routeOptimization,omitempty"`
	// Efficiency is a ratio in [0,1].
	Efficiency        *float64 `json:"efficiency,omitempty"        yaml:"efficiency,omitempty"`
	IdlingTime        *float64 `json:"idlingTime,omitempty"        yaml:"idlingTime,omitempty"`
	OperatingHours    *float64 `json:"operatingHours,omitempty"    yaml:"operatingHours,omitempty"`
	MaintenanceStatus *string  `json:"maintenanceStatus,omitempty" yaml:"maintenanceStatus,omitempty"`
	PeakTime          *bool    `json:"peakTime,omitempty"          yaml:"peakTime,omitempty"`
	FrequentStops     *bool    `json:"frequentStops,omitempty"     yaml:"frequentStops,omitempty"`
}

// Emissions returns Distance × Weight × EmissionsFactor in kg CO2e.
func (t TransportItem) Emissions() float64 {
	return t.Distance * t.Weight * t.EmissionsFactor
}

// EnergyItem is an energy supply consumed on site.
type EnergyItem struct {
	ID       string  `json:"id"       yaml:"id"`
	Source   string  `json:"source"   yaml:"source"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
	Unit     string  `json:"unit"     yaml:"unit"`
	// EmissionsFactor is kg CO2e per unit.
	EmissionsFactor float64 `json:"emissionsFactor" yaml:"emissionsFactor"`

	Renewable       *bool    `json:"renewable,omitempty"       yaml:"renewable,omitempty"`
	CarbonIntensity *float64 `json:"carbonIntensity,omitempty" yaml:"carbonIntensity,omitempty"`
	// Efficiency is a ratio in [0,1].
	Efficiency *float64 `json:"efficiency,omitempty" yaml:"efficiency,omitempty"`
	// PeakDemand is a ratio in [0,1].
	PeakDemand      *float64 `json:"peakDemand,omitempty"      yaml:"peakDemand,omitempty"`
	SmartMonitoring *bool    `json:"smartMonitoring,omitempty" yaml:"smartMonitoring,omitempty"`
	DemandResponse  *bool    `json:"demandResponse,omitempty"  yaml:"demandResponse,omitempty"`
	BackupSystem    *bool    `json:"backupSystem,omitempty"    yaml:"backupSystem,omitempty"`
	StorageCapacity *float64 `json:"storageCapacity,omitempty" yaml:"storageCapacity,omitempty"`
	TimeOfUse       *string  `json:"timeOfUse,omitempty"       yaml:"timeOfUse,omitempty"`
}

// Emissions returns Quantity × EmissionsFactor in kg CO2e.
func (e EnergyItem) Emissions() float64 {
	return e.Quantity * e.EmissionsFactor
}

// IsTrue reports whether an optional flag is present and set.
func IsTrue(b *bool) bool {
	return b != nil && *b
}

// Float returns a pointer to v. Convenience for building records in code and tests.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }
