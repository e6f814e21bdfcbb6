package lcc

// PercentageMultiplier converts a ratio to a percentage.
const PercentageMultiplier = 100.0

// Sensitivity analysis tuning.
const (
	// DefaultSensitivityDelta is the relative perturbation applied to each parameter.
	DefaultSensitivityDelta = 0.1

	// MinRelativeChange is the relative parameter change below which a
	// perturbation is treated as no change and scores 0.
	MinRelativeChange = 1e-4

	// MinBaseCost is the total cost below which elasticity is undefined and
	// sensitivity falls back to 1 (modified cost positive) or 0.
	MinBaseCost = 1e-4

	// ElasticityScale maps elasticity onto impact as min(1, elasticity/ElasticityScale).
	ElasticityScale = 2.0
)

// rateEpsilon is the real discount rate magnitude treated as zero when annualizing.
const rateEpsilon = 1e-9

// lifespanEpsilon absorbs floating point error before rounding a perturbed lifespan up.
const lifespanEpsilon = 1e-9

// Parameter names reported by sensitivity analysis.
const (
	ParamInitialCost           = "initialCost"
	ParamOperationalCostAnnual = "operationalCostAnnual"
	ParamMaintenanceCostAnnual = "maintenanceCostAnnual"
	ParamEndOfLifeCost         = "endOfLifeCost"
	ParamLifespan              = "lifespan"
	ParamDiscountRate          = "discountRate"
	ParamInflationRate         = "inflationRate"
	ParamEnergyCostEscalation  = "energyCostEscalation"
)
