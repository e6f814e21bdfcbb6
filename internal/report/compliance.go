package report

import (
	"fmt"

	"github.com/rshade/carboncalc/internal/lifecycle"
	"github.com/rshade/carboncalc/internal/metrics"
)

// Standards checked by CheckCompliance.
const (
	StandardEN15978   = "EN 15978"
	StandardISO14044  = "ISO 14044"
	StandardLEEDMR    = "LEED v4 MR"
	StandardBREEAMMat = "BREEAM Mat 03"
	StandardRenewable = "On-site renewable energy"
)

// CheckCompliance evaluates the project data against common building standard
// requirements. The checks are indicative: they test the reported data, not a
// certified assessment. lca may be nil when no lifecycle analysis was run.
func CheckCompliance(
	m metrics.MaterialMetrics,
	e metrics.EnergyMetrics,
	completeness float64,
	lca *lifecycle.Assessment,
) Compliance {
	checks := []ComplianceCheck{
		lifecycleStagesCheck(m, lca),
		dataQualityCheck(completeness),
		thresholdCheck(StandardLEEDMR, "Recycled content of at least 20%",
			m.AverageRecycledContent, LEEDRecycledContentMin, "average recycled content"),
		thresholdCheck(StandardLEEDMR, "Regional materials of at least 20%",
			m.LocallySourcedPercentage, LEEDRegionalMaterialMin, "locally sourced materials"),
		thresholdCheck(StandardBREEAMMat, "Responsible sourcing certification for at least half of materials",
			m.CertificationCoverage, BREEAMCertificationMet, "certified materials"),
		thresholdCheck(StandardRenewable, "At least 10% of energy consumption from renewables",
			e.RenewableConsumptionShare, RenewableEnergyShareMin, "renewable consumption"),
	}

	c := Compliance{Checks: checks, Total: len(checks)}
	for _, ch := range checks {
		if ch.Status == StatusMet {
			c.MetCount++
		}
	}
	return c
}

func lifecycleStagesCheck(m metrics.MaterialMetrics, lca *lifecycle.Assessment) ComplianceCheck {
	ch := ComplianceCheck{
		Standard:    StandardEN15978,
		Requirement: "Whole-life assessment covering modules A1-C4",
	}
	switch {
	case lca != nil:
		ch.Status = StatusMet
		ch.Detail = fmt.Sprintf("%d lifecycle stages assessed, %s", len(lca.Stages), lca.SystemBoundaries)
	case m.TotalMaterials > 0:
		ch.Status = StatusPartial
		ch.Detail = "product stage (A1-A3) covered by material data only"
	default:
		ch.Status = StatusNotMet
		ch.Detail = "no lifecycle or material data"
	}
	return ch
}

func dataQualityCheck(completeness float64) ComplianceCheck {
	ch := ComplianceCheck{
		Standard:    StandardISO14044,
		Requirement: "Data quality sufficient for interpretation",
		Detail:      fmt.Sprintf("data completeness %.1f%%", completeness),
	}
	switch {
	case completeness >= ISODataQualityMet:
		ch.Status = StatusMet
	case completeness >= ISODataQualityPartial:
		ch.Status = StatusPartial
	default:
		ch.Status = StatusNotMet
	}
	return ch
}

// thresholdCheck is met at or above minimum, partial for any positive value
// below it and not met at zero.
func thresholdCheck(standard, requirement string, value, minimum float64, what string) ComplianceCheck {
	ch := ComplianceCheck{
		Standard:    standard,
		Requirement: requirement,
		Detail:      fmt.Sprintf("%.1f%% %s", value, what),
	}
	switch {
	case value >= minimum:
		ch.Status = StatusMet
	case value > 0:
		ch.Status = StatusPartial
	default:
		ch.Status = StatusNotMet
	}
	return ch
}
