// Package lcc computes the lifecycle cost of a building or asset: present
// value of every cost stream discounted at the real rate, the equivalent
// annual cost, a per-category breakdown and a one-at-a-time sensitivity
// analysis.
//
// The package is pure. Numeric degeneracy (zero lifespan, zero rates, zero
// base values) is handled by explicit branches and never yields NaN or Inf for
// parameters that pass Validate.
package lcc

import (
	"errors"
	"fmt"
	"math"
)

// Parameter validation errors.
var (
	ErrNegativeCost    = errors.New("cost cannot be negative")
	ErrInvalidLifespan = errors.New("lifespan must be at least 1 year")
	ErrInvalidRate     = errors.New("rate must be greater than -100%")
	ErrNotFinite       = errors.New("value must be a finite number")
)

// Parameters describe the cash flows of an asset. Rates are decimals (0.05 = 5%).
type Parameters struct {
	InitialCost           float64 `yaml:"initialCost"           json:"initialCost"`
	OperationalCostAnnual float64 `yaml:"operationalCostAnnual" json:"operationalCostAnnual"`
	MaintenanceCostAnnual float64 `yaml:"maintenanceCostAnnual" json:"maintenanceCostAnnual"`
	EndOfLifeCost         float64 `yaml:"endOfLifeCost"         json:"endOfLifeCost"`
	// Lifespan is the analysis period in whole years.
	Lifespan             int     `yaml:"lifespan"             json:"lifespan"`
	DiscountRate         float64 `yaml:"discountRate"         json:"discountRate"`
	InflationRate        float64 `yaml:"inflationRate"        json:"inflationRate"`
	EnergyCostEscalation float64 `yaml:"energyCostEscalation" json:"energyCostEscalation"`
}

// Validate checks that p describes a computable cash flow.
func (p Parameters) Validate() error {
	costs := []struct {
		name  string
		value float64
	}{
		{ParamInitialCost, p.InitialCost},
		{ParamOperationalCostAnnual, p.OperationalCostAnnual},
		{ParamMaintenanceCostAnnual, p.MaintenanceCostAnnual},
		{ParamEndOfLifeCost, p.EndOfLifeCost},
	}
	for _, c := range costs {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return fmt.Errorf("%s: %w", c.name, ErrNotFinite)
		}
		if c.value < 0 {
			return fmt.Errorf("%s: %w: got %.2f", c.name, ErrNegativeCost, c.value)
		}
	}

	if p.Lifespan < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidLifespan, p.Lifespan)
	}

	rates := []struct {
		name  string
		value float64
	}{
		{ParamDiscountRate, p.DiscountRate},
		{ParamInflationRate, p.InflationRate},
		{ParamEnergyCostEscalation, p.EnergyCostEscalation},
	}
	for _, r := range rates {
		if math.IsNaN(r.value) || math.IsInf(r.value, 0) {
			return fmt.Errorf("%s: %w", r.name, ErrNotFinite)
		}
		if r.value <= -1 {
			return fmt.Errorf("%s: %w: got %.4f", r.name, ErrInvalidRate, r.value)
		}
	}
	return nil
}

// RealDiscountRate converts the nominal discount rate to a real rate with the
// Fisher equation: (1+discountRate)/(1+inflationRate) - 1.
func (p Parameters) RealDiscountRate() float64 {
	return (1+p.DiscountRate)/(1+p.InflationRate) - 1
}

// get returns the named parameter as a float64.
func (p Parameters) get(name string) float64 {
	switch name {
	case ParamInitialCost:
		return p.InitialCost
	case ParamOperationalCostAnnual:
		return p.OperationalCostAnnual
	case ParamMaintenanceCostAnnual:
		return p.MaintenanceCostAnnual
	case ParamEndOfLifeCost:
		return p.EndOfLifeCost
	case ParamLifespan:
		return float64(p.Lifespan)
	case ParamDiscountRate:
		return p.DiscountRate
	case ParamInflationRate:
		return p.InflationRate
	case ParamEnergyCostEscalation:
		return p.EnergyCostEscalation
	default:
		return 0
	}
}

// with returns a copy of p with the named parameter replaced. A lifespan is
// rounded up to the next whole year so that a positive perturbation always
// lengthens the period.
func (p Parameters) with(name string, v float64) Parameters {
	switch name {
	case ParamInitialCost:
		p.InitialCost = v
	case ParamOperationalCostAnnual:
		p.OperationalCostAnnual = v
	case ParamMaintenanceCostAnnual:
		p.MaintenanceCostAnnual = v
	case ParamEndOfLifeCost:
		p.EndOfLifeCost = v
	case ParamLifespan:
		p.Lifespan = int(math.Ceil(v - lifespanEpsilon))
	case ParamDiscountRate:
		p.DiscountRate = v
	case ParamInflationRate:
		p.InflationRate = v
	case ParamEnergyCostEscalation:
		p.EnergyCostEscalation = v
	}
	return p
}

// parameterNames lists the parameters covered by sensitivity analysis.
//
//nolint:gochecknoglobals // Constant lookup table.
var parameterNames = []string{
	ParamInitialCost,
	ParamOperationalCostAnnual,
	ParamMaintenanceCostAnnual,
	ParamEndOfLifeCost,
	ParamLifespan,
	ParamDiscountRate,
	ParamInflationRate,
	ParamEnergyCostEscalation,
}
