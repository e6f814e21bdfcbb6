package model

import (
	"fmt"
	"strings"

	"github.com/rshade/carboncalc/internal/lcc"
)

// ReportFormat controls how much of the report is populated.
type ReportFormat string

// Supported report formats.
const (
	FormatBasic         ReportFormat = "basic"
	FormatDetailed      ReportFormat = "detailed"
	FormatComprehensive ReportFormat = "comprehensive"
)

// ParseReportFormat converts a user-supplied string to a ReportFormat.
// Matching is case-insensitive; an empty string yields FormatDetailed.
func ParseReportFormat(s string) (ReportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return FormatDetailed, nil
	case string(FormatBasic):
		return FormatBasic, nil
	case string(FormatDetailed):
		return FormatDetailed, nil
	case string(FormatComprehensive):
		return FormatComprehensive, nil
	default:
		return "", fmt.Errorf("unsupported report format %q: must be basic, detailed or comprehensive", s)
	}
}

// ReportOptions selects optional report sections.
type ReportOptions struct {
	Format                       ReportFormat `json:"format"                                 yaml:"format"`
	IncludeLifecycleAnalysis     bool         `json:"includeLifecycleAnalysis,omitempty"     yaml:"includeLifecycleAnalysis,omitempty"`
	IncludeCircularEconomy       bool         `json:"includeCircularEconomy,omitempty"       yaml:"includeCircularEconomy,omitempty"`
	IncludeComplianceDetails     bool         `json:"includeComplianceDetails,omitempty"     yaml:"includeComplianceDetails,omitempty"`
	IncludeImplementationRoadmap bool         `json:"includeImplementationRoadmap,omitempty" yaml:"includeImplementationRoadmap,omitempty"`
	IncludeCostAnalysis          bool         `json:"includeCostAnalysis,omitempty"          yaml:"includeCostAnalysis,omitempty"`
	ProjectID                    string       `json:"projectId,omitempty"                    yaml:"projectId,omitempty"`
	ProjectName                  string       `json:"projectName,omitempty"                  yaml:"projectName,omitempty"`

	// CostParameters feed the lifecycle cost section. The section is omitted
	// when they are nil.
	CostParameters *lcc.Parameters `json:"costParameters,omitempty" yaml:"costParameters,omitempty"`
}

// Normalized returns a copy with a concrete format and, for the comprehensive
// format, every include flag switched on.
func (o ReportOptions) Normalized() ReportOptions {
	if o.Format == "" {
		o.Format = FormatDetailed
	}
	if o.Format == FormatComprehensive {
		o.IncludeLifecycleAnalysis = true
		o.IncludeCircularEconomy = true
		o.IncludeComplianceDetails = true
		o.IncludeImplementationRoadmap = true
		o.IncludeCostAnalysis = true
	}
	return o
}
