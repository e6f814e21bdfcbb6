package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carboncalc/internal/circular"
	"github.com/rshade/carboncalc/internal/config"
	"github.com/rshade/carboncalc/internal/greenops"
	"github.com/rshade/carboncalc/internal/lifecycle"
	"github.com/rshade/carboncalc/internal/metrics"
	"github.com/rshade/carboncalc/internal/report"
)

// CompletenessResult is the JSON shape of the completeness command.
type CompletenessResult struct {
	CompletenessScore float64 `json:"completenessScore"`
	MinCompleteness   float64 `json:"minCompleteness"`
	Sufficient        bool    `json:"sufficient"`
	Materials         int     `json:"materials"`
	Transport         int     `json:"transport"`
	Energy            int     `json:"energy"`
	Warnings          int     `json:"warnings"`
}

// NewCompletenessCmd creates the completeness command, which scores how much
// usable data a project document carries.
func NewCompletenessCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "completeness [document]",
		Short: "Score the data completeness of a project document",
		Long: `Scores a project document's data completeness from 0 to 100 and compares it
with the minimum required to generate a report (report.min_completeness).`,
		Example: `  # Score the nearest project document
  carboncalc completeness

  # Fail with exit code 2 when a report could not be generated
  carboncalc completeness site.yaml --strict`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompleteness(cmd, args, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit with code 2 when the score is below the minimum")
	addOutputFlag(cmd)
	return cmd
}

func runCompleteness(cmd *cobra.Command, args []string, strict bool) error {
	out, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	doc, err := loadInput(cmd, args)
	if err != nil {
		return err
	}

	score := report.CalculateDataCompleteness(doc.Materials, doc.Transport, doc.Energy)
	minimum := config.GetMinCompleteness()
	result := CompletenessResult{
		CompletenessScore: score,
		MinCompleteness:   minimum,
		Sufficient:        score >= minimum,
		Materials:         len(doc.Materials),
		Transport:         len(doc.Transport),
		Energy:            len(doc.Energy),
		Warnings:          len(doc.Warnings),
	}

	if out == config.OutputFormatJSON {
		err = writeJSON(cmd.OutOrStdout(), result)
	} else {
		err = renderCompleteness(cmd, result)
	}
	if err != nil {
		return err
	}

	if strict && !result.Sufficient {
		reason := fmt.Sprintf("completeness score %.1f is below the minimum of %.1f",
			result.CompletenessScore, result.MinCompleteness)
		return &ExitError{
			ExitCode: ExitCodeInsufficientData,
			Reason:   reason,
			Err:      report.ErrInsufficientData,
		}
	}
	return nil
}

func renderCompleteness(cmd *cobra.Command, r CompletenessResult) error {
	t := newTextWriter(cmd.OutOrStdout(), config.GetOutputPrecision())
	t.title("DATA COMPLETENESS")
	t.kv("Score", t.s.score(greenops.FormatFloat(r.CompletenessScore, 1)+" / 100", r.CompletenessScore))
	t.kv("Minimum for a report", greenops.FormatFloat(r.MinCompleteness, 1))
	t.kv("Materials", fmt.Sprintf("%d", r.Materials))
	t.kv("Transport items", fmt.Sprintf("%d", r.Transport))
	t.kv("Energy items", fmt.Sprintf("%d", r.Energy))
	if r.Warnings > 0 {
		t.kv("Coercion warnings", fmt.Sprintf("%d", r.Warnings))
	}
	t.blank()
	if r.Sufficient {
		t.line("A report can be generated.")
	} else {
		t.line("Not enough data to generate a report.")
	}
	return t.err
}

// NewLifecycleCmd creates the lifecycle command, which runs the six-stage
// lifecycle assessment over a project document.
func NewLifecycleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lifecycle [document]",
		Short: "Run a lifecycle assessment",
		Long: `Runs the six-stage lifecycle assessment. Stage carbon shares are derived from
the document's material, transport and energy emissions; stages the document
cannot inform use their default shares.`,
		Example: `  carboncalc lifecycle site.yaml
  carboncalc lifecycle --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLifecycle,
	}
	addOutputFlag(cmd)
	return cmd
}

func runLifecycle(cmd *cobra.Command, args []string) error {
	out, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	doc, err := loadInput(cmd, args)
	if err != nil {
		return err
	}

	in := lifecycle.InputFromMetrics(
		metrics.CalculateMaterialMetrics(doc.Materials),
		metrics.CalculateTransportMetrics(doc.Transport),
		metrics.CalculateEnergyMetrics(doc.Energy),
	)
	assessment := lifecycle.CalculateLifecycleAssessment(in)

	if out == config.OutputFormatJSON {
		return writeJSON(cmd.OutOrStdout(), assessment)
	}
	t := newTextWriter(cmd.OutOrStdout(), config.GetOutputPrecision())
	writeLifecycle(t, assessment)
	return t.err
}

// CircularityResult is the JSON shape of the circularity command.
type CircularityResult struct {
	Metrics                  circular.Metrics          `json:"metrics"`
	MaterialCircularityIndex float64                   `json:"materialCircularityIndex"`
	Recommendations          []circular.Recommendation `json:"recommendations"`
}

// circularityFlags are site practice ratios that materials cannot reveal.
type circularityFlags struct {
	reuse         float64
	wasteRecycled float64
	synergy       float64
	disassembly   float64
	repairability float64
}

// NewCircularityCmd creates the circularity command, which scores how well the
// project keeps materials in use.
func NewCircularityCmd() *cobra.Command {
	var flags circularityFlags

	cmd := &cobra.Command{
		Use:   "circularity [document]",
		Short: "Score circular economy performance",
		Long: `Scores circular economy performance. Recycled content, recyclability,
renewable and biodegradable content and lifespan are read from the document's
materials; site practices are given as ratios between 0 and 1 with flags and
otherwise take their defaults.`,
		Example: `  carboncalc circularity site.yaml
  carboncalc circularity --reuse-rate 0.3 --waste-recycling-rate 0.8`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCircularity(cmd, args, flags)
		},
	}

	cmd.Flags().Float64Var(&flags.reuse, "reuse-rate", 0, "share of resources reused on site (0-1)")
	cmd.Flags().Float64Var(&flags.wasteRecycled, "waste-recycling-rate", 0, "share of waste recycled (0-1)")
	cmd.Flags().Float64Var(&flags.synergy, "byproduct-synergy", 0, "share of byproducts used by others (0-1)")
	cmd.Flags().Float64Var(&flags.disassembly, "design-for-disassembly", 0, "design for disassembly score (0-1)")
	cmd.Flags().Float64Var(&flags.repairability, "repairability", 0, "repairability score (0-1)")
	addOutputFlag(cmd)
	return cmd
}

func runCircularity(cmd *cobra.Command, args []string, flags circularityFlags) error {
	out, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	doc, err := loadInput(cmd, args)
	if err != nil {
		return err
	}

	in := circular.InputFromMaterials(doc.Materials)
	ratio := func(name string, v float64) *float64 {
		if !cmd.Flags().Changed(name) {
			return nil
		}
		return &v
	}
	in.ResourceReuseRate = ratio("reuse-rate", flags.reuse)
	in.WasteRecyclingRate = ratio("waste-recycling-rate", flags.wasteRecycled)
	in.ByproductSynergy = ratio("byproduct-synergy", flags.synergy)
	in.DesignForDisassembly = ratio("design-for-disassembly", flags.disassembly)
	in.RepairabilityScore = ratio("repairability", flags.repairability)

	m := circular.CalculateCircularEconomyMetrics(in)
	result := CircularityResult{
		Metrics:                  m,
		MaterialCircularityIndex: circular.CalculateMaterialCircularityIndex(doc.Materials),
		Recommendations:          circular.GenerateCircularEconomyRecommendations(m),
	}

	if out == config.OutputFormatJSON {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	t := newTextWriter(cmd.OutOrStdout(), config.GetOutputPrecision())
	writeCircular(t, result.Metrics, result.MaterialCircularityIndex, result.Recommendations)
	return t.err
}
