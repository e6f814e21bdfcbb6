package lcc

import (
	"math"
	"sort"
)

// CostComponent is one category of the cost breakdown.
type CostComponent struct {
	// Percentage is the component's share of the total lifecycle cost.
	Percentage float64 `json:"percentage"`
	NPV        float64 `json:"npv"`
}

// CostBreakdown splits the total lifecycle cost by category.
type CostBreakdown struct {
	Initial     CostComponent `json:"initial"`
	Operational CostComponent `json:"operational"`
	Maintenance CostComponent `json:"maintenance"`
	EndOfLife   CostComponent `json:"endOfLife"`
}

// SensitivityEntry reports how strongly total cost responds to one parameter.
type SensitivityEntry struct {
	Parameter     string  `json:"parameter"`
	BaseValue     float64 `json:"baseValue"`
	ModifiedValue float64 `json:"modifiedValue"`
	ModifiedCost  float64 `json:"modifiedCost"`
	Elasticity    float64 `json:"elasticity"`
	// Impact is the elasticity normalized to [0,1].
	Impact float64 `json:"impact"`
}

// Analysis is the result of a lifecycle cost analysis. All monetary values
// are present values in the currency of the inputs.
type Analysis struct {
	Parameters         Parameters         `json:"parameters"`
	RealDiscountRate   float64            `json:"realDiscountRate"`
	InitialCost        float64            `json:"initialCost"`
	OperationalCostNPV float64            `json:"operationalCostNpv"`
	MaintenanceCostNPV float64            `json:"maintenanceCostNpv"`
	EndOfLifeCostNPV   float64            `json:"endOfLifeCostNpv"`
	TotalLifecycleCost float64            `json:"totalLifecycleCost"`
	AnnualizedCost     float64            `json:"annualizedCost"`
	CostBreakdown      CostBreakdown      `json:"costBreakdown"`
	Sensitivity        []SensitivityEntry `json:"sensitivity"`
}

// Analyze runs the full lifecycle cost analysis with DefaultSensitivityDelta.
func Analyze(p Parameters) Analysis {
	return AnalyzeWithDelta(p, DefaultSensitivityDelta)
}

// AnalyzeWithDelta runs the full lifecycle cost analysis, perturbing each
// parameter by the relative delta during sensitivity analysis.
func AnalyzeWithDelta(p Parameters, delta float64) Analysis {
	r := p.RealDiscountRate()
	a := Analysis{
		Parameters:         p,
		RealDiscountRate:   r,
		InitialCost:        p.InitialCost,
		OperationalCostNPV: OperationalCostPV(p),
		MaintenanceCostNPV: MaintenanceCostPV(p),
		EndOfLifeCostNPV:   EndOfLifeCostPV(p),
	}
	a.TotalLifecycleCost = a.InitialCost + a.OperationalCostNPV + a.MaintenanceCostNPV + a.EndOfLifeCostNPV
	a.AnnualizedCost = AnnualizedCost(a.TotalLifecycleCost, r, p.Lifespan)
	a.CostBreakdown = CostBreakdown{
		Initial:     component(a.InitialCost, a.TotalLifecycleCost),
		Operational: component(a.OperationalCostNPV, a.TotalLifecycleCost),
		Maintenance: component(a.MaintenanceCostNPV, a.TotalLifecycleCost),
		EndOfLife:   component(a.EndOfLifeCostNPV, a.TotalLifecycleCost),
	}
	a.Sensitivity = SensitivityAnalysis(p, delta)
	return a
}

func component(npv, total float64) CostComponent {
	c := CostComponent{NPV: npv}
	if total != 0 {
		c.Percentage = npv / total * PercentageMultiplier
	}
	return c
}

// TotalLifecycleCost returns initial cost plus the present value of the
// operational, maintenance and end-of-life streams.
func TotalLifecycleCost(p Parameters) float64 {
	return p.InitialCost + OperationalCostPV(p) + MaintenanceCostPV(p) + EndOfLifeCostPV(p)
}

// OperationalCostPV discounts the annual operational cost, escalating at the
// energy cost escalation rate:
//
//	Σ_{year=1..lifespan} op × (1+escalation)^(year-1) / (1+realRate)^year
func OperationalCostPV(p Parameters) float64 {
	return escalatingPV(p.OperationalCostAnnual, p.EnergyCostEscalation, p.RealDiscountRate(), p.Lifespan)
}

// MaintenanceCostPV discounts the annual maintenance cost, escalating at the
// inflation rate.
func MaintenanceCostPV(p Parameters) float64 {
	return escalatingPV(p.MaintenanceCostAnnual, p.InflationRate, p.RealDiscountRate(), p.Lifespan)
}

// EndOfLifeCostPV discounts the end-of-life cost from the final year:
// endOfLife / (1+realRate)^lifespan. A non-positive lifespan leaves it
// undiscounted.
func EndOfLifeCostPV(p Parameters) float64 {
	if p.Lifespan <= 0 {
		return p.EndOfLifeCost
	}
	return p.EndOfLifeCost / math.Pow(1+p.RealDiscountRate(), float64(p.Lifespan))
}

func escalatingPV(annual, escalation, rate float64, years int) float64 {
	var pv float64
	for year := 1; year <= years; year++ {
		pv += annual * math.Pow(1+escalation, float64(year-1)) / math.Pow(1+rate, float64(year))
	}
	return pv
}

// AnnualizedCost spreads total over years with the capital recovery factor
// r(1+r)^n / ((1+r)^n - 1). A zero rate reduces to total/n and a
// non-positive period yields 0.
func AnnualizedCost(total, rate float64, years int) float64 {
	if years <= 0 {
		return 0
	}
	n := float64(years)
	if math.Abs(rate) < rateEpsilon {
		return total / n
	}
	factor := math.Pow(1+rate, n)
	return total * rate * factor / (factor - 1)
}

// SensitivityAnalysis perturbs each of the eight parameters by the relative
// delta in turn, holding the rest fixed, and reports the elasticity of total
// lifecycle cost. Entries are ordered by impact, largest first; ties keep
// parameter order.
//
// A parameter whose base value is 0 is set to delta instead and its elasticity
// is the absolute ratio |Δcost|/baseCost. A perturbation that does not change
// the parameter scores 0, and so does one that drives a rate to -100% or below
// or leaves the total cost non-finite; its modified cost is reported as the
// base cost. When the base cost is below MinBaseCost the impact is 1 if the
// modified cost is positive, otherwise 0.
func SensitivityAnalysis(p Parameters, delta float64) []SensitivityEntry {
	baseCost := TotalLifecycleCost(p)

	entries := make([]SensitivityEntry, 0, len(parameterNames))
	for _, name := range parameterNames {
		base := p.get(name)
		modValue := base * (1 + delta)
		if base == 0 {
			modValue = delta
		}
		modified := p.with(name, modValue)
		modValue = modified.get(name)
		modCost := TotalLifecycleCost(modified)

		e := SensitivityEntry{
			Parameter:     name,
			BaseValue:     base,
			ModifiedValue: modValue,
			ModifiedCost:  modCost,
		}
		if degenerate(modified, modCost) {
			e.ModifiedCost = baseCost
		} else {
			e.Elasticity, e.Impact = sensitivity(base, modValue, baseCost, modCost)
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Impact > entries[j].Impact
	})
	return entries
}

// degenerate reports whether a perturbed parameter set has left the domain
// where lifecycle cost is defined.
func degenerate(p Parameters, cost float64) bool {
	if p.DiscountRate <= -1 || p.InflationRate <= -1 || p.EnergyCostEscalation <= -1 {
		return true
	}
	return math.IsNaN(cost) || math.IsInf(cost, 0)
}

// sensitivity returns the elasticity and normalized impact of one perturbation.
func sensitivity(base, modValue, baseCost, modCost float64) (float64, float64) {
	if base == 0 {
		if modValue == base {
			return 0, 0
		}
	} else if math.Abs(modValue-base)/math.Abs(base) < MinRelativeChange {
		return 0, 0
	}

	if math.Abs(baseCost) < MinBaseCost {
		if modCost > 0 {
			return 1, 1
		}
		return 0, 0
	}

	costChange := math.Abs(modCost-baseCost) / math.Abs(baseCost)
	elasticity := costChange
	if base != 0 {
		elasticity = costChange / (math.Abs(modValue-base) / math.Abs(base))
	}
	return elasticity, math.Min(1, elasticity/ElasticityScale)
}
