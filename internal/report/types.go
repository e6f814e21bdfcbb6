// Package report assembles the sustainability report: domain metrics,
// suggestions, scores and the optional lifecycle, circularity, cost, roadmap
// and compliance sections. It also exposes the data completeness gate that
// decides whether a report can be generated at all.
package report

import (
	"time"

	"github.com/rshade/carboncalc/internal/circular"
	"github.com/rshade/carboncalc/internal/greenops"
	"github.com/rshade/carboncalc/internal/lcc"
	"github.com/rshade/carboncalc/internal/lifecycle"
	"github.com/rshade/carboncalc/internal/metrics"
	"github.com/rshade/carboncalc/internal/model"
)

// Input is everything Generate needs.
type Input struct {
	Materials []model.Material      `json:"materials"`
	Transport []model.TransportItem `json:"transport"`
	Energy    []model.EnergyItem    `json:"energy"`
	Options   model.ReportOptions   `json:"options"`
}

// Score rates the project from 0 to 100, overall and per domain.
type Score struct {
	Overall   float64 `json:"overall"`
	Materials float64 `json:"materials"`
	Transport float64 `json:"transport"`
	Energy    float64 `json:"energy"`
}

// Suggestion is a ranked, human-readable improvement.
type Suggestion struct {
	Text     string `json:"text"`
	Category string `json:"category"`
	// Weight orders suggestions; higher is more urgent.
	Weight float64 `json:"weight"`
}

// CircularEconomySection is the circularity part of the report.
type CircularEconomySection struct {
	Metrics circular.Metrics `json:"metrics"`
	// MaterialCircularityIndex is the 0-100 three-tier index over the material list.
	MaterialCircularityIndex float64                   `json:"materialCircularityIndex"`
	Recommendations          []circular.Recommendation `json:"recommendations"`
}

// RoadmapAction is one step of a roadmap phase.
type RoadmapAction struct {
	Action   string `json:"action"`
	Category string `json:"category"`
	// PotentialReduction is kg CO2e, 0 when the action is not quantified.
	PotentialReduction float64 `json:"potentialReduction"`
}

// RoadmapPhase groups actions of one implementation complexity.
type RoadmapPhase struct {
	Phase              int             `json:"phase"`
	Name               string          `json:"name"`
	Timeframe          string          `json:"timeframe"`
	Complexity         string          `json:"complexity"`
	Actions            []RoadmapAction `json:"actions"`
	EstimatedReduction float64         `json:"estimatedReduction"`
}

// Roadmap is the phased implementation plan.
type Roadmap struct {
	Phases                  []RoadmapPhase `json:"phases"`
	TotalPotentialReduction float64        `json:"totalPotentialReduction"`
}

// ComplianceCheck is the outcome of one standard's requirement.
type ComplianceCheck struct {
	Standard    string `json:"standard"`
	Requirement string `json:"requirement"`
	Status      string `json:"status"`
	Detail      string `json:"detail"`
}

// Compliance summarizes the checks against building standards.
type Compliance struct {
	Checks   []ComplianceCheck `json:"checks"`
	MetCount int               `json:"metCount"`
	Total    int               `json:"total"`
}

// Metadata describes a generated report. It is the only part of a report that
// differs between two runs over the same input.
type Metadata struct {
	ReportID          string             `json:"reportId"`
	GeneratedAt       time.Time          `json:"generatedAt"`
	Format            model.ReportFormat `json:"format"`
	ProjectID         string             `json:"projectId,omitempty"`
	ProjectName       string             `json:"projectName,omitempty"`
	CompletenessScore float64            `json:"completenessScore"`
	SuggestionsCount  int                `json:"suggestionsCount"`
	EngineVersion     string             `json:"engineVersion"`
}

// Report is the sustainability report.
type Report struct {
	Metadata Metadata `json:"metadata"`

	MaterialMetrics  metrics.MaterialMetrics  `json:"materialMetrics"`
	TransportMetrics metrics.TransportMetrics `json:"transportMetrics"`
	EnergyMetrics    metrics.EnergyMetrics    `json:"energyMetrics"`

	// TotalCarbonFootprint is material, transport and energy emissions in kg CO2e.
	TotalCarbonFootprint float64                     `json:"totalCarbonFootprint"`
	Equivalency          *greenops.EquivalencyOutput `json:"equivalency,omitempty"`

	Suggestions         []string `json:"suggestions"`
	PrioritySuggestions []string `json:"prioritySuggestions"`

	MaterialRecommendations  []metrics.MaterialSubstitution  `json:"materialRecommendations"`
	TransportRecommendations []metrics.HighEmissionRoute     `json:"transportRecommendations"`
	EnergyRecommendations    []metrics.EfficiencyOpportunity `json:"energyRecommendations"`

	Score Score `json:"score"`

	LifeCycleAnalysis     *lifecycle.Assessment   `json:"lifeCycleAnalysis,omitempty"`
	CircularEconomy       *CircularEconomySection `json:"circularEconomy,omitempty"`
	CostAnalysis          *lcc.Analysis           `json:"costAnalysis,omitempty"`
	ImplementationRoadmap *Roadmap                `json:"implementationRoadmap,omitempty"`
	ComplianceDetails     *Compliance             `json:"complianceDetails,omitempty"`
}
