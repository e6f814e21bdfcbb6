package report

import (
	"fmt"
	"strings"

	"github.com/rshade/carboncalc/internal/circular"
	"github.com/rshade/carboncalc/internal/metrics"
)

// BuildRoadmap sorts the report's improvement measures into three phases by
// implementation complexity: Low complexity measures are quick wins, Medium
// ones are medium-term improvements and High ones are strategic investments.
// Measures with an unrecognized complexity go to the medium-term phase.
//
// All three phases are always present, possibly with no actions. Actions keep
// the order energy, transport, materials, circularity within a phase.
func BuildRoadmap(
	energy []metrics.EfficiencyOpportunity,
	routes []metrics.HighEmissionRoute,
	subs []metrics.MaterialSubstitution,
	recs []circular.Recommendation,
) Roadmap {
	phases := []RoadmapPhase{
		newPhase(1, PhaseQuickWins, TimeframeQuickWins, metrics.ComplexityLow),
		newPhase(2, PhaseMediumTerm, TimeframeMediumTerm, metrics.ComplexityMedium),
		newPhase(3, PhaseStrategic, TimeframeStrategic, metrics.ComplexityHigh),
	}

	place := func(complexity string, a RoadmapAction) {
		i := phaseIndex(complexity)
		phases[i].Actions = append(phases[i].Actions, a)
		phases[i].EstimatedReduction += a.PotentialReduction
	}

	for _, o := range energy {
		place(o.ImplementationComplexity, RoadmapAction{
			Action:             o.Area,
			Category:           CategoryEnergy,
			PotentialReduction: o.PotentialSavings,
		})
	}
	for _, r := range routes {
		place(r.ImplementationComplexity, RoadmapAction{
			Action:             withAlternatives(r.Route, r.Alternatives),
			Category:           CategoryTransport,
			PotentialReduction: r.PotentialReduction,
		})
	}
	for _, s := range subs {
		place(s.ImplementationComplexity, RoadmapAction{
			Action:             withAlternatives("Substitute "+s.Material, s.Alternatives),
			Category:           CategoryMaterials,
			PotentialReduction: s.PotentialReduction,
		})
	}
	for _, r := range recs {
		place(r.ImplementationDifficulty, RoadmapAction{
			Action:   r.Recommendation,
			Category: CategoryCircularity,
		})
	}

	var total float64
	for _, p := range phases {
		total += p.EstimatedReduction
	}
	return Roadmap{Phases: phases, TotalPotentialReduction: total}
}

func newPhase(n int, name, timeframe, complexity string) RoadmapPhase {
	return RoadmapPhase{
		Phase:      n,
		Name:       name,
		Timeframe:  timeframe,
		Complexity: complexity,
		Actions:    []RoadmapAction{},
	}
}

func phaseIndex(complexity string) int {
	switch complexity {
	case metrics.ComplexityLow:
		return 0
	case metrics.ComplexityHigh:
		return 2
	default:
		return 1
	}
}

func withAlternatives(subject string, alternatives []string) string {
	if len(alternatives) == 0 {
		return subject
	}
	return fmt.Sprintf("%s: %s", subject, strings.Join(alternatives, ", "))
}
