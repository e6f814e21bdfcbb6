package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rshade/carboncalc/internal/circular"
	"github.com/rshade/carboncalc/internal/greenops"
	"github.com/rshade/carboncalc/internal/lcc"
	"github.com/rshade/carboncalc/internal/lifecycle"
	"github.com/rshade/carboncalc/internal/metrics"
	"github.com/rshade/carboncalc/internal/report"
)

const (
	tabPadding    = 2
	maxEmitters   = 5
	generatedTime = "2006-01-02 15:04:05 MST"
)

// textWriter writes formatted lines and remembers the first write error.
type textWriter struct {
	w    io.Writer
	s    styler
	prec int
	err  error
}

func newTextWriter(w io.Writer, precision int) *textWriter {
	return &textWriter{w: w, s: newStyler(w), prec: precision}
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *textWriter) line(text string) {
	t.printf("%s\n", text)
}

func (t *textWriter) blank() {
	t.printf("\n")
}

func (t *textWriter) title(text string) {
	t.line(t.s.title(text))
	t.blank()
}

func (t *textWriter) section(text string) {
	t.blank()
	t.line(t.s.section(text))
}

// kv prints an indented label and value.
func (t *textWriter) kv(label, value string) {
	t.printf("  %-28s %s\n", label+":", value)
}

func (t *textWriter) num(v float64) string {
	return greenops.FormatFloat(v, t.prec)
}

func (t *textWriter) pct(v float64) string {
	return greenops.FormatFloat(v, 1) + "%"
}

// table writes tab-separated rows through a tabwriter.
func (t *textWriter) table(header string, rows []string) {
	if t.err != nil {
		return
	}
	tw := tabwriter.NewWriter(t.w, 0, 0, tabPadding, ' ', 0)
	_, t.err = fmt.Fprintln(tw, "  "+header)
	for _, r := range rows {
		if t.err != nil {
			return
		}
		_, t.err = fmt.Fprintln(tw, "  "+r)
	}
	if t.err == nil {
		t.err = tw.Flush()
	}
}

func (t *textWriter) bullets(items []string) {
	for _, item := range items {
		t.printf("  - %s\n", item)
	}
}

// renderReport writes a human-readable sustainability report.
func renderReport(w io.Writer, rep *report.Report, precision int) error {
	t := newTextWriter(w, precision)

	t.title("SUSTAINABILITY REPORT")
	writeMetadata(t, rep.Metadata)

	t.section("SCORE")
	t.kv("Overall", t.s.score(greenops.FormatFloat(rep.Score.Overall, 1)+" / 100", rep.Score.Overall))
	t.kv("Materials", greenops.FormatFloat(rep.Score.Materials, 1))
	t.kv("Transport", greenops.FormatFloat(rep.Score.Transport, 1))
	t.kv("Energy", greenops.FormatFloat(rep.Score.Energy, 1))

	t.section("CARBON FOOTPRINT")
	t.kv("Total", greenops.FormatCarbon(rep.TotalCarbonFootprint))
	t.kv("Materials", greenops.FormatCarbon(rep.MaterialMetrics.TotalCarbonFootprint))
	t.kv("Transport", greenops.FormatCarbon(rep.TransportMetrics.TotalEmissions))
	t.kv("Energy", greenops.FormatCarbon(rep.EnergyMetrics.TotalEmissions))
	if rep.Equivalency != nil && !rep.Equivalency.IsEmpty {
		t.printf("  %s\n", rep.Equivalency.DisplayText)
	}

	writeMaterialMetrics(t, rep.MaterialMetrics)
	writeTransportMetrics(t, rep.TransportMetrics)
	writeEnergyMetrics(t, rep.EnergyMetrics)

	if len(rep.PrioritySuggestions) > 0 {
		t.section("PRIORITY SUGGESTIONS")
		t.bullets(rep.PrioritySuggestions)
	}
	if len(rep.Suggestions) > len(rep.PrioritySuggestions) {
		t.section("ALL SUGGESTIONS")
		t.bullets(rep.Suggestions)
	}

	writeRecommendations(t, rep)

	if rep.LifeCycleAnalysis != nil {
		writeLifecycle(t, *rep.LifeCycleAnalysis)
	}
	if rep.CircularEconomy != nil {
		writeCircular(t, rep.CircularEconomy.Metrics, rep.CircularEconomy.MaterialCircularityIndex,
			rep.CircularEconomy.Recommendations)
	}
	if rep.CostAnalysis != nil {
		writeCost(t, *rep.CostAnalysis)
	}
	if rep.ImplementationRoadmap != nil {
		writeRoadmap(t, *rep.ImplementationRoadmap)
	}
	if rep.ComplianceDetails != nil {
		writeCompliance(t, *rep.ComplianceDetails)
	}

	return t.err
}

func writeMetadata(t *textWriter, m report.Metadata) {
	if m.ProjectName != "" {
		t.kv("Project", m.ProjectName)
	}
	if m.ProjectID != "" {
		t.kv("Project ID", m.ProjectID)
	}
	t.kv("Report ID", m.ReportID)
	t.kv("Generated", m.GeneratedAt.Format(generatedTime))
	t.kv("Format", string(m.Format))
	t.kv("Data completeness", t.pct(m.CompletenessScore))
	t.kv("Suggestions", fmt.Sprintf("%d", m.SuggestionsCount))
	t.kv("Engine version", m.EngineVersion)
}

func writeMaterialMetrics(t *textWriter, m metrics.MaterialMetrics) {
	t.section("MATERIALS")
	t.kv("Materials", fmt.Sprintf("%d", m.TotalMaterials))
	if m.TotalMaterials == 0 {
		return
	}
	t.kv("Average footprint", greenops.FormatCarbon(m.AverageCarbonFootprint))
	t.kv("Recyclable", t.pct(m.RecyclablePercentage))
	t.kv("Average recycled content", t.pct(m.AverageRecycledContent))
	t.kv("Locally sourced", t.pct(m.LocallySourcedPercentage))
	t.kv("Certification coverage", t.pct(m.CertificationCoverage))
	t.kv("Resource efficiency", t.num(m.ResourceEfficiency))

	if len(m.TopEmitters) == 0 {
		return
	}
	emitters := m.TopEmitters
	if len(emitters) > maxEmitters {
		emitters = emitters[:maxEmitters]
	}
	rows := make([]string, 0, len(emitters))
	for _, e := range emitters {
		rows = append(rows, fmt.Sprintf("%s\t%s\t%s", e.Name, greenops.FormatCarbon(e.Carbon), t.pct(e.Share)))
	}
	t.blank()
	t.table("Top emitter\tCarbon\tShare", rows)
}

func writeTransportMetrics(t *textWriter, m metrics.TransportMetrics) {
	t.section("TRANSPORT")
	t.kv("Transport items", fmt.Sprintf("%d", m.TotalTransportItems))
	if m.TotalTransportItems == 0 {
		return
	}
	t.kv("Total distance (km)", t.num(m.TotalDistance))
	t.kv("Total weight (t)", t.num(m.TotalWeight))
	t.kv("Carbon intensity", t.num(m.CarbonIntensity))
	t.kv("Electric vehicles", t.pct(m.ElectricVehiclePercentage))
	t.kv("Route optimization", t.pct(m.RouteOptimizationRate))
	t.kv("Average idling (h)", t.num(m.AverageIdlingTime))
	t.kv("Efficiency score", t.num(m.EfficiencyScore))
}

func writeEnergyMetrics(t *textWriter, m metrics.EnergyMetrics) {
	t.section("ENERGY")
	t.kv("Energy items", fmt.Sprintf("%d", m.TotalEnergyItems))
	if m.TotalEnergyItems == 0 {
		return
	}
	t.kv("Total consumption", t.num(m.TotalConsumption))
	t.kv("Renewable sources", t.pct(m.RenewablePercentage))
	t.kv("Renewable consumption", t.pct(m.RenewableConsumptionShare))
	t.kv("Grid dependency", t.pct(m.GridDependency))
	t.kv("Smart monitoring", t.pct(m.SmartMonitoringCoverage))
	t.kv("Efficiency score", t.num(m.EfficiencyScore))
}

func writeRecommendations(t *textWriter, rep *report.Report) {
	if len(rep.MaterialRecommendations) > 0 {
		t.section("MATERIAL SUBSTITUTIONS")
		rows := make([]string, 0, len(rep.MaterialRecommendations))
		for _, s := range rep.MaterialRecommendations {
			rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s", s.Material,
				greenops.FormatCarbon(s.PotentialReduction), s.ImplementationComplexity,
				strings.Join(s.Alternatives, ", ")))
		}
		t.table("Material\tReduction\tComplexity\tAlternatives", rows)
	}

	if len(rep.TransportRecommendations) > 0 {
		t.section("TRANSPORT ROUTES")
		rows := make([]string, 0, len(rep.TransportRecommendations))
		for _, r := range rep.TransportRecommendations {
			rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s", r.Route,
				greenops.FormatCarbon(r.PotentialReduction), r.ImplementationComplexity,
				strings.Join(r.Alternatives, ", ")))
		}
		t.table("Route\tReduction\tComplexity\tAlternatives", rows)
	}

	if len(rep.EnergyRecommendations) > 0 {
		t.section("ENERGY EFFICIENCY")
		rows := make([]string, 0, len(rep.EnergyRecommendations))
		for _, o := range rep.EnergyRecommendations {
			payback := "-"
			if o.PaybackPeriod != nil {
				payback = greenops.FormatFloat(*o.PaybackPeriod, 1) + " y"
			}
			rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s", o.Area,
				greenops.FormatCarbon(o.PotentialSavings), o.ImplementationComplexity, payback))
		}
		t.table("Area\tSavings\tComplexity\tPayback", rows)
	}
}

func writeLifecycle(t *textWriter, a lifecycle.Assessment) {
	t.section("LIFECYCLE ASSESSMENT")
	rows := make([]string, 0, len(a.Stages))
	for _, s := range a.Stages {
		rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s\t%s", s.Name,
			share(t, s.CarbonFootprint), share(t, s.WaterFootprint),
			share(t, s.EnergyConsumption), share(t, s.ImprovementPotential)))
	}
	t.table("Stage\tCarbon\tWater\tEnergy\tImprovement", rows)
	t.blank()
	t.kv("Total carbon share", share(t, a.TotalCarbonFootprint))
	t.kv("Improvement potential", share(t, a.ImprovementPotential))
	t.kv("Data quality", share(t, a.DataQuality))
	t.kv("Uncertainty", a.UncertaintyLevel)
	t.kv("Functional unit", a.FunctionalUnit)
	t.kv("System boundaries", a.SystemBoundaries)
	t.kv("Allocation method", a.AllocationMethod)

	if len(a.Hotspots) > 0 {
		t.blank()
		items := make([]string, 0, len(a.Hotspots))
		for _, h := range a.Hotspots {
			items = append(items, h.Description)
		}
		t.line("  Hotspots:")
		t.bullets(items)
	}
}

// share renders a 0-1 ratio as a percentage.
func share(t *textWriter, ratio float64) string {
	return t.pct(ratio * 100)
}

func writeCircular(t *textWriter, m circular.Metrics, mci float64, recs []circular.Recommendation) {
	t.section("CIRCULAR ECONOMY")
	t.kv("Material circularity index", greenops.FormatFloat(mci, 1)+" / 100")
	t.kv("Closed loop potential", share(t, m.ClosedLoopPotential))
	t.kv("Material circularity", share(t, m.MaterialCircularityIndex))
	t.kv("Waste diversion rate", share(t, m.WasteDiversionRate))
	t.kv("Remanufacturing potential", share(t, m.RemanufacturingPotential))

	if len(recs) == 0 {
		return
	}
	t.blank()
	rows := make([]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s", r.Recommendation, r.Impact,
			r.ImplementationDifficulty, r.Timeframe))
	}
	t.table("Recommendation\tImpact\tDifficulty\tTimeframe", rows)
}

func writeCost(t *textWriter, a lcc.Analysis) {
	t.section("LIFECYCLE COST")
	t.kv("Lifespan (years)", fmt.Sprintf("%d", a.Parameters.Lifespan))
	t.kv("Real discount rate", greenops.FormatFloat(a.RealDiscountRate*100, 2)+"%")
	t.kv("Total lifecycle cost", t.num(a.TotalLifecycleCost))
	t.kv("Annualized cost", t.num(a.AnnualizedCost))

	b := a.CostBreakdown
	t.blank()
	t.table("Component\tPresent value\tShare", []string{
		fmt.Sprintf("Initial\t%s\t%s", t.num(b.Initial.NPV), t.pct(b.Initial.Percentage)),
		fmt.Sprintf("Operational\t%s\t%s", t.num(b.Operational.NPV), t.pct(b.Operational.Percentage)),
		fmt.Sprintf("Maintenance\t%s\t%s", t.num(b.Maintenance.NPV), t.pct(b.Maintenance.Percentage)),
		fmt.Sprintf("End of life\t%s\t%s", t.num(b.EndOfLife.NPV), t.pct(b.EndOfLife.Percentage)),
	})

	if len(a.Sensitivity) == 0 {
		return
	}
	t.blank()
	rows := make([]string, 0, len(a.Sensitivity))
	for _, s := range a.Sensitivity {
		rows = append(rows, fmt.Sprintf("%s\t%s\t%s", s.Parameter,
			greenops.FormatFloat(s.Elasticity, 3), greenops.FormatFloat(s.Impact, 3)))
	}
	t.table("Parameter\tElasticity\tImpact", rows)
}

func writeRoadmap(t *textWriter, r report.Roadmap) {
	t.section("IMPLEMENTATION ROADMAP")
	for _, p := range r.Phases {
		t.printf("  Phase %d: %s (%s, %s complexity) - %s\n", p.Phase, p.Name, p.Timeframe,
			p.Complexity, greenops.FormatCarbon(p.EstimatedReduction))
		for _, a := range p.Actions {
			t.printf("    - %s\n", a.Action)
		}
	}
	t.kv("Total potential reduction", greenops.FormatCarbon(r.TotalPotentialReduction))
}

func writeCompliance(t *textWriter, c report.Compliance) {
	t.section("COMPLIANCE")
	rows := make([]string, 0, len(c.Checks))
	for _, check := range c.Checks {
		rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s", check.Standard, check.Requirement,
			check.Status, check.Detail))
	}
	t.table("Standard\tRequirement\tStatus\tDetail", rows)
	t.blank()
	t.kv("Requirements met", fmt.Sprintf("%d of %d", c.MetCount, c.Total))
}
