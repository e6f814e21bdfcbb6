package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carboncalc/internal/config"
	"github.com/rshade/carboncalc/internal/logging"
	"github.com/rshade/carboncalc/internal/model"
	"github.com/rshade/carboncalc/internal/report"
)

// reportFlags holds the report command flags.
type reportFlags struct {
	format          string
	minCompleteness float64
	projectName     string
	lifecycle       bool
	circular        bool
	compliance      bool
	roadmap         bool
	cost            bool
}

// NewReportCmd creates the report command, which generates a sustainability
// report from a project document.
func NewReportCmd(ver string) *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "report [document]",
		Short: "Generate a sustainability report",
		Long: `Generates a sustainability report from a JSON or YAML project document.

Without a document argument the nearest carboncalc.yaml, carboncalc.yml or
carboncalc.json found walking up from the working directory is used.

The report is refused, with exit code 2, when the document's data completeness
score is below the minimum (report.min_completeness, default 30).`,
		Example: `  # Detailed report of the nearest project document
  carboncalc report

  # Comprehensive report as JSON
  carboncalc report site.yaml --format comprehensive --output json

  # Basic report with a lifecycle assessment section
  carboncalc report site.json --format basic --include-lifecycle`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args, ver, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "",
		"report format: basic, detailed or comprehensive (default: document, then config)")
	cmd.Flags().Float64Var(&flags.minCompleteness, "min-completeness", config.DefaultMinCompleteness,
		"minimum data completeness score (0-100) required to generate a report")
	cmd.Flags().StringVar(&flags.projectName, "project-name", "", "project name shown in the report")
	cmd.Flags().BoolVar(&flags.lifecycle, "include-lifecycle", false, "add the lifecycle assessment section")
	cmd.Flags().BoolVar(&flags.circular, "include-circular", false, "add the circular economy section")
	cmd.Flags().BoolVar(&flags.compliance, "include-compliance", false, "add the standards compliance section")
	cmd.Flags().BoolVar(&flags.roadmap, "include-roadmap", false, "add the implementation roadmap section")
	cmd.Flags().BoolVar(&flags.cost, "include-cost", false,
		"add the lifecycle cost section (needs options.costParameters in the document)")
	addOutputFlag(cmd)

	return cmd
}

func runReport(cmd *cobra.Command, args []string, ver string, flags reportFlags) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	out, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	minCompleteness := config.GetMinCompleteness()
	if cmd.Flags().Changed("min-completeness") {
		minCompleteness = flags.minCompleteness
	}
	if err = config.CheckMinCompleteness(minCompleteness); err != nil {
		return fmt.Errorf("--min-completeness: %w", err)
	}

	doc, err := loadInput(cmd, args)
	if err != nil {
		return err
	}

	in := doc.ReportInput()
	in.Options, err = applyReportFlags(cmd, in.Options, flags)
	if err != nil {
		return err
	}

	assembler := report.NewAssembler(
		report.WithMinCompleteness(minCompleteness),
		report.WithSensitivityDelta(config.GetCostConfig().SensitivityDelta),
		report.WithEngineVersion(ver),
	)

	rep, err := assembler.Generate(ctx, in)
	if errors.Is(err, report.ErrInsufficientData) {
		return &ExitError{ExitCode: ExitCodeInsufficientData, Reason: err.Error(), Err: err}
	}
	if err != nil {
		return err
	}

	log.Info().
		Ctx(ctx).
		Str("component", "cli").
		Str("operation", "report").
		Str("report_id", rep.Metadata.ReportID).
		Str("format", string(rep.Metadata.Format)).
		Float64("completeness", rep.Metadata.CompletenessScore).
		Float64("total_carbon_kg", rep.TotalCarbonFootprint).
		Msg("report generated")

	if out == config.OutputFormatJSON {
		return writeJSON(cmd.OutOrStdout(), rep)
	}
	return renderReport(cmd.OutOrStdout(), rep, config.GetOutputPrecision())
}

// applyReportFlags layers command flags over the document's options. The
// format comes from --format, then the document, then report.default_format.
func applyReportFlags(cmd *cobra.Command, opts model.ReportOptions, flags reportFlags) (model.ReportOptions, error) {
	format := string(opts.Format)
	if format == "" {
		format = config.GetGlobalConfig().Report.DefaultFormat
	}
	if cmd.Flags().Changed("format") {
		format = flags.format
	}

	parsed, err := model.ParseReportFormat(format)
	if err != nil {
		return opts, err
	}
	opts.Format = parsed

	if flags.projectName != "" {
		opts.ProjectName = flags.projectName
	}
	opts.IncludeLifecycleAnalysis = opts.IncludeLifecycleAnalysis || flags.lifecycle
	opts.IncludeCircularEconomy = opts.IncludeCircularEconomy || flags.circular
	opts.IncludeComplianceDetails = opts.IncludeComplianceDetails || flags.compliance
	opts.IncludeImplementationRoadmap = opts.IncludeImplementationRoadmap || flags.roadmap
	opts.IncludeCostAnalysis = opts.IncludeCostAnalysis || flags.cost
	return opts, nil
}
