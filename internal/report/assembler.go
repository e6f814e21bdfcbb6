package report

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/carboncalc/internal/circular"
	"github.com/rshade/carboncalc/internal/greenops"
	"github.com/rshade/carboncalc/internal/lcc"
	"github.com/rshade/carboncalc/internal/lifecycle"
	"github.com/rshade/carboncalc/internal/logging"
	"github.com/rshade/carboncalc/internal/metrics"
	"github.com/rshade/carboncalc/internal/model"
	"github.com/rshade/carboncalc/pkg/version"
)

// Assembler builds sustainability reports. It holds only configuration and is
// safe for concurrent use.
type Assembler struct {
	// now stamps Metadata.GeneratedAt.
	now func() time.Time

	// newID produces Metadata.ReportID.
	newID func() string

	minCompleteness  float64
	sensitivityDelta float64
	engineVersion    string
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithClock sets the clock used for the report timestamp.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) {
		a.now = now
	}
}

// WithIDGenerator sets the report ID source. The default produces ULIDs.
func WithIDGenerator(newID func() string) Option {
	return func(a *Assembler) {
		a.newID = newID
	}
}

// WithMinCompleteness sets the completeness score below which Generate refuses
// to build a report. The default is DefaultMinCompleteness.
func WithMinCompleteness(score float64) Option {
	return func(a *Assembler) {
		a.minCompleteness = score
	}
}

// WithSensitivityDelta sets the relative perturbation used by the cost
// sensitivity analysis.
func WithSensitivityDelta(delta float64) Option {
	return func(a *Assembler) {
		a.sensitivityDelta = delta
	}
}

// WithEngineVersion overrides the version recorded in report metadata.
func WithEngineVersion(v string) Option {
	return func(a *Assembler) {
		a.engineVersion = v
	}
}

// NewAssembler creates an Assembler with the given options.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		now:              time.Now,
		newID:            func() string { return ulid.Make().String() },
		minCompleteness:  DefaultMinCompleteness,
		sensitivityDelta: lcc.DefaultSensitivityDelta,
		engineVersion:    version.GetVersion(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// domainResults holds the per-domain metrics and improvement measures.
type domainResults struct {
	materials metrics.MaterialMetrics
	transport metrics.TransportMetrics
	energy    metrics.EnergyMetrics

	substitutions []metrics.MaterialSubstitution
	routes        []metrics.HighEmissionRoute
	opportunities []metrics.EfficiencyOpportunity
}

// Generate builds a sustainability report.
//
// It returns ErrInsufficientData when the input's completeness score is below
// the configured minimum, and ErrInvalidCostParameters when a cost analysis is
// requested with parameters that fail validation. Apart from Metadata, two
// calls with the same input produce identical reports.
//
// Sections by format:
//   - basic: metrics, suggestions and score; recommendation lists are empty
//   - detailed: adds the domain recommendations and carbon equivalencies
//   - comprehensive: detailed plus every optional section
//
// The include flags add their optional section in any format. The cost section
// also needs Options.CostParameters.
func (a *Assembler) Generate(ctx context.Context, in Input) (*Report, error) {
	log := logging.FromContext(ctx)
	opts := in.Options.Normalized()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	completeness := CalculateDataCompleteness(in.Materials, in.Transport, in.Energy)
	if completeness < a.minCompleteness {
		log.Warn().
			Ctx(ctx).
			Str("component", "report").
			Str("operation", "Generate").
			Float64("completeness", completeness).
			Float64("min_completeness", a.minCompleteness).
			Msg("rejecting report request with insufficient data")
		return nil, fmt.Errorf("%w: completeness score %.1f is below the minimum of %.1f",
			ErrInsufficientData, completeness, a.minCompleteness)
	}

	withCost := opts.IncludeCostAnalysis && opts.CostParameters != nil
	if withCost {
		if err := opts.CostParameters.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCostParameters, err)
		}
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "report").
		Str("operation", "Generate").
		Str("format", string(opts.Format)).
		Int("materials", len(in.Materials)).
		Int("transport", len(in.Transport)).
		Int("energy", len(in.Energy)).
		Msg("generating sustainability report")

	d, err := computeDomains(ctx, in)
	if err != nil {
		return nil, err
	}

	suggestions := GenerateSuggestions(d.materials, d.transport, d.energy)
	texts, priority := suggestionTexts(suggestions)

	r := &Report{
		MaterialMetrics:          d.materials,
		TransportMetrics:         d.transport,
		EnergyMetrics:            d.energy,
		TotalCarbonFootprint:     d.materials.TotalCarbonFootprint + d.transport.TotalEmissions + d.energy.TotalEmissions,
		Suggestions:              texts,
		PrioritySuggestions:      priority,
		MaterialRecommendations:  []metrics.MaterialSubstitution{},
		TransportRecommendations: []metrics.HighEmissionRoute{},
		EnergyRecommendations:    []metrics.EfficiencyOpportunity{},
		Score:                    CalculateScore(d.materials, d.transport, d.energy),
	}

	if opts.Format != model.FormatBasic {
		r.MaterialRecommendations = d.substitutions
		r.TransportRecommendations = d.routes
		r.EnergyRecommendations = d.opportunities
		eq := greenops.ForFootprint(ctx, r.TotalCarbonFootprint)
		r.Equivalency = &eq
	}

	if opts.IncludeLifecycleAnalysis {
		lca := lifecycle.CalculateLifecycleAssessment(lifecycle.InputFromMetrics(d.materials, d.transport, d.energy))
		r.LifeCycleAnalysis = &lca
	}

	var circularRecs []circular.Recommendation
	if opts.IncludeCircularEconomy {
		cm := circular.CalculateCircularEconomyMetrics(circular.InputFromMaterials(in.Materials))
		circularRecs = circular.GenerateCircularEconomyRecommendations(cm)
		r.CircularEconomy = &CircularEconomySection{
			Metrics:                  cm,
			MaterialCircularityIndex: circular.CalculateMaterialCircularityIndex(in.Materials),
			Recommendations:          circularRecs,
		}
	}

	if withCost {
		analysis := lcc.AnalyzeWithDelta(*opts.CostParameters, a.sensitivityDelta)
		r.CostAnalysis = &analysis
	}

	if opts.IncludeImplementationRoadmap {
		roadmap := BuildRoadmap(d.opportunities, d.routes, d.substitutions, circularRecs)
		r.ImplementationRoadmap = &roadmap
	}

	if opts.IncludeComplianceDetails {
		compliance := CheckCompliance(d.materials, d.energy, completeness, r.LifeCycleAnalysis)
		r.ComplianceDetails = &compliance
	}

	r.Metadata = Metadata{
		ReportID:          a.newID(),
		GeneratedAt:       a.now().UTC(),
		Format:            opts.Format,
		ProjectID:         opts.ProjectID,
		ProjectName:       opts.ProjectName,
		CompletenessScore: completeness,
		SuggestionsCount:  len(r.Suggestions),
		EngineVersion:     a.engineVersion,
	}

	log.Info().
		Ctx(ctx).
		Str("component", "report").
		Str("operation", "Generate").
		Str("report_id", r.Metadata.ReportID).
		Float64("total_kg_co2e", r.TotalCarbonFootprint).
		Float64("overall_score", r.Score.Overall).
		Msg("sustainability report generated")

	return r, nil
}

// computeDomains runs the three independent domain calculators concurrently.
func computeDomains(ctx context.Context, in Input) (domainResults, error) {
	var d domainResults
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		d.materials = metrics.CalculateMaterialMetrics(in.Materials)
		d.substitutions = metrics.IdentifyMaterialSubstitutions(in.Materials)
		return gCtx.Err()
	})
	g.Go(func() error {
		d.transport = metrics.CalculateTransportMetrics(in.Transport)
		d.routes = metrics.IdentifyHighEmissionRoutes(in.Transport)
		return gCtx.Err()
	})
	g.Go(func() error {
		d.energy = metrics.CalculateEnergyMetrics(in.Energy)
		d.opportunities = metrics.IdentifyEnergyEfficiencyOpportunities(in.Energy)
		return gCtx.Err()
	})

	if err := g.Wait(); err != nil {
		return domainResults{}, fmt.Errorf("computing domain metrics: %w", err)
	}
	return d, nil
}
