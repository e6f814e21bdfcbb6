package ingest

// Field defaults applied when a required value is missing or unusable.
const (
	DefaultCarbonFootprint = 1.0
	DefaultMaterialUnit    = "kg"
	DefaultQuantity        = 1.0
	DefaultCategory        = "general"
	DefaultMaterialName    = "Unnamed material"

	DefaultTransportType   = "truck"
	DefaultFuelType        = "diesel"
	DefaultTransportFactor = 0.1

	DefaultEnergySource = "grid"
	DefaultEnergyUnit   = "kWh"
	DefaultEnergyFactor = 0.4
)

// MaxPercent is the upper bound of percentage fields.
const MaxPercent = 100.0

// Schema versions.
const (
	// CurrentSchemaVersion is assumed for documents without a schemaVersion.
	CurrentSchemaVersion = "1.0.0"

	// SupportedSchemaVersions is the semver constraint a document must satisfy.
	SupportedSchemaVersions = ">= 1.0.0, < 2.0.0"
)

// Record kinds, used in warnings and derived IDs.
const (
	kindMaterial  = "materials"
	kindTransport = "transport"
	kindEnergy    = "energy"
)
