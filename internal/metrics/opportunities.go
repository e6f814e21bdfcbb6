package metrics

import (
	"fmt"
	"sort"

	"github.com/rshade/carboncalc/internal/model"
)

// Generic fallback areas, appended when too few specific findings exist.
const (
	AreaLighting = "Lighting"
	AreaHVAC     = "HVAC"

	RouteAllConsolidation = "All routes: load consolidation"
	RouteAllEcoDriving    = "All routes: eco-driving"

	MaterialLowCarbonConcrete = "Concrete (generic)"
	MaterialRecycledSteel     = "Structural steel (generic)"
)

// IdentifyEnergyEfficiencyOpportunities applies threshold rules to each energy
// supply and returns the resulting saving measures.
//
// Rules, evaluated per item in input order:
//   - consumption > 1000 and not renewable: renewable transition
//   - efficiency reported and < 0.7: equipment upgrade
//   - peak demand reported and > 0.8 without demand response: peak management
//
// An empty input returns an empty slice. When fewer than three specific
// opportunities are found, generic Lighting and HVAC measures are appended.
func IdentifyEnergyEfficiencyOpportunities(items []model.EnergyItem) []EfficiencyOpportunity {
	opportunities := []EfficiencyOpportunity{}
	if len(items) == 0 {
		return opportunities
	}

	var totalEmissions float64
	for _, e := range items {
		totalEmissions += e.Emissions()

		if e.Quantity > HighConsumptionThreshold && !model.IsTrue(e.Renewable) {
			investment := e.Quantity * RenewableInvestmentPerUnit
			opportunities = append(opportunities, EfficiencyOpportunity{
				Area:                     fmt.Sprintf("Renewable transition: %s", e.Source),
				PotentialSavings:         e.Emissions() * RenewableSwitchReduction,
				InvestmentRequired:       &investment,
				PaybackPeriod:            payback(investment, e.Quantity),
				ImplementationComplexity: ComplexityHigh,
				Cobenefits:               []string{"Energy price stability", "Reduced grid dependency", "Green building credits"},
			})
		}

		if e.Efficiency != nil && *e.Efficiency < LowEfficiencyThreshold {
			gain := TargetEfficiency - *e.Efficiency
			investment := e.Quantity * EfficiencyInvestmentPerUnit
			opportunities = append(opportunities, EfficiencyOpportunity{
				Area:                     fmt.Sprintf("Equipment upgrade: %s", e.Source),
				PotentialSavings:         e.Emissions() * gain,
				InvestmentRequired:       &investment,
				PaybackPeriod:            payback(investment, e.Quantity*gain),
				ImplementationComplexity: ComplexityMedium,
				Cobenefits:               []string{"Lower operating costs", "Reduced maintenance"},
			})
		}

		if e.PeakDemand != nil && *e.PeakDemand > HighPeakDemandThreshold && !model.IsTrue(e.DemandResponse) {
			investment := e.Quantity * PeakInvestmentPerUnit
			opportunities = append(opportunities, EfficiencyOpportunity{
				Area:                     fmt.Sprintf("Peak demand management: %s", e.Source),
				PotentialSavings:         e.Emissions() * PeakManagementReduction,
				InvestmentRequired:       &investment,
				PaybackPeriod:            payback(investment, e.Quantity*PeakManagementReduction),
				ImplementationComplexity: ComplexityLow,
				Cobenefits:               []string{"Lower demand charges", "Improved grid resilience"},
			})
		}
	}

	if len(opportunities) < MinSpecificOpportunities {
		opportunities = append(opportunities,
			EfficiencyOpportunity{
				Area:                     AreaLighting,
				PotentialSavings:         totalEmissions * LightingSavingsShare,
				ImplementationComplexity: ComplexityLow,
				Cobenefits:               []string{"Improved site visibility", "Longer fixture life"},
			},
			EfficiencyOpportunity{
				Area:                     AreaHVAC,
				PotentialSavings:         totalEmissions * HVACSavingsShare,
				ImplementationComplexity: ComplexityMedium,
				Cobenefits:               []string{"Better site office comfort", "Lower peak loads"},
			},
		)
	}

	return opportunities
}

// payback returns investment / (units × tariff) in years, or nil when no
// saving accrues.
func payback(investment, savedUnits float64) *float64 {
	annual := savedUnits * EnergyCostPerUnit
	if annual <= 0 {
		return nil
	}
	years := investment / annual
	return &years
}

// IdentifyHighEmissionRoutes returns transport legs whose emissions factor
// exceeds 0.8, largest emitters first. When the input is non-empty and fewer
// than three legs qualify, fleet-wide consolidation and eco-driving measures
// are appended.
func IdentifyHighEmissionRoutes(items []model.TransportItem) []HighEmissionRoute {
	routes := []HighEmissionRoute{}
	if len(items) == 0 {
		return routes
	}

	var fleetEmissions float64
	for _, t := range items {
		emissions := t.Emissions()
		fleetEmissions += emissions
		if t.EmissionsFactor <= HighEmissionFactorThreshold {
			continue
		}
		routes = append(routes, HighEmissionRoute{
			Route:                    routeLabel(t),
			Emissions:                emissions,
			EmissionsFactor:          t.EmissionsFactor,
			Alternatives:             routeAlternatives(t),
			PotentialReduction:       emissions * routeReduction(t),
			ImplementationComplexity: ComplexityMedium,
			Cobenefits:               []string{"Reduced fuel costs", "Lower local air pollution"},
		})
	}

	sort.SliceStable(routes, func(i, j int) bool {
		return routes[i].Emissions > routes[j].Emissions
	})

	if len(routes) < MinSpecificOpportunities {
		routes = append(routes,
			HighEmissionRoute{
				Route:                    RouteAllConsolidation,
				Emissions:                fleetEmissions,
				Alternatives:             []string{"Consolidate deliveries", "Use construction consolidation centres"},
				PotentialReduction:       fleetEmissions * ConsolidationReduction,
				ImplementationComplexity: ComplexityLow,
				Cobenefits:               []string{"Less site congestion", "Fewer vehicle movements"},
			},
			HighEmissionRoute{
				Route:                    RouteAllEcoDriving,
				Emissions:                fleetEmissions,
				Alternatives:             []string{"Driver eco-training", "Anti-idling policy"},
				PotentialReduction:       fleetEmissions * EcoDrivingReduction,
				ImplementationComplexity: ComplexityLow,
				Cobenefits:               []string{"Improved road safety", "Lower vehicle wear"},
			},
		)
	}

	return routes
}

// routeLabel names a leg by ID and type.
func routeLabel(t model.TransportItem) string {
	if t.ID == "" {
		return t.Type
	}
	return fmt.Sprintf("%s (%s)", t.ID, t.Type)
}

// routeAlternatives suggests lower-carbon modes for a leg.
func routeAlternatives(t model.TransportItem) []string {
	if model.IsTrue(t.IsElectric) {
		return []string{"Rail freight", "Route optimization"}
	}
	return []string{"Electric or hydrogen vehicles", "Rail freight", "Biofuel (HVO) substitution"}
}

// routeReduction returns the achievable reduction share for a leg.
func routeReduction(t model.TransportItem) float64 {
	if model.IsTrue(t.IsElectric) {
		return ModalShiftReduction
	}
	return ElectricRouteReduction
}

// IdentifyMaterialSubstitutions flags materials that carry more than 20% of the
// material carbon total while having less than 30% recycled content. When fewer
// than three materials qualify on a non-empty list, generic low-carbon concrete
// and recycled steel substitutions are appended.
func IdentifyMaterialSubstitutions(materials []model.Material) []MaterialSubstitution {
	subs := []MaterialSubstitution{}
	if len(materials) == 0 {
		return subs
	}

	var total float64
	for _, m := range materials {
		total += m.TotalCarbon()
	}

	for _, m := range materials {
		carbon := m.TotalCarbon()
		if ratio(carbon, total) <= SubstitutionCarbonShare {
			continue
		}
		if m.RecycledContent != nil && *m.RecycledContent >= SubstitutionMaxRecycledContent {
			continue
		}
		subs = append(subs, MaterialSubstitution{
			Material:                 m.Name,
			CurrentCarbon:            carbon,
			Alternatives:             []string{"Higher recycled-content equivalent", "Bio-based alternative where structurally viable"},
			PotentialReduction:       carbon * SubstitutionReduction,
			ImplementationComplexity: ComplexityMedium,
			Cobenefits:               []string{"Lower embodied carbon", "Supports recycled material markets"},
		})
	}

	if len(subs) < MinSpecificOpportunities {
		subs = append(subs,
			MaterialSubstitution{
				Material:                 MaterialLowCarbonConcrete,
				Alternatives:             []string{"GGBS or fly ash cement replacement", "Optimized mix design"},
				PotentialReduction:       total * LowCarbonConcreteReduction * SubstitutionCarbonShare,
				ImplementationComplexity: ComplexityLow,
				Cobenefits:               []string{"Improved durability", "Lower heat of hydration"},
			},
			MaterialSubstitution{
				Material:                 MaterialRecycledSteel,
				Alternatives:             []string{"Electric arc furnace steel", "Reused structural sections"},
				PotentialReduction:       total * RecycledSteelReduction * SubstitutionCarbonShare,
				ImplementationComplexity: ComplexityMedium,
				Cobenefits:               []string{"Reduced virgin ore demand"},
			},
		)
	}

	return subs
}
