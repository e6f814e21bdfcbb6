package greenops

// EPA greenhouse gas equivalency factors, kg CO2e per unit of activity.
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
//	equivalency = kgCO2e / factor
const (
	// EPAMilesDrivenFactor is kg CO2e per mile driven by an average passenger vehicle.
	EPAMilesDrivenFactor = 0.393

	// EPATreeSeedlingFactor is kg CO2e sequestered by one urban tree seedling grown for 10 years.
	EPATreeSeedlingFactor = 60.0

	// EPAHomeYearFactor is kg CO2e from one average US home's energy use for a year.
	EPAHomeYearFactor = 7930.0

	// EPAGasolineLitreFactor is kg CO2e per litre of gasoline burned (8.887 kg per US gallon).
	EPAGasolineLitreFactor = 2.348
)

// Unit conversion factors to kilograms.
const (
	GramsToKg  = 0.001
	KgToKg     = 1.0
	TonnesToKg = 1000.0
	PoundsToKg = 0.453592
	// ShortTonsToKg converts US short tons.
	ShortTonsToKg = 907.18474
)

// Display thresholds.
const (
	// MinEquivalencyThresholdKg is the smallest footprint that gets equivalencies.
	MinEquivalencyThresholdKg = 1.0

	// TonneDisplayThresholdKg is the footprint at or above which FormatCarbon switches to tonnes.
	TonneDisplayThresholdKg = 1000.0

	// LargeNumberThreshold switches FormatLarge to "~X.X million".
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches FormatLarge to "~X.X billion".
	BillionThreshold = 1_000_000_000
)
