package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carboncalc/internal/config"
	"github.com/rshade/carboncalc/internal/lcc"
	"github.com/rshade/carboncalc/internal/logging"
)

// costFlags holds the cost command flags.
type costFlags struct {
	params lcc.Parameters
	delta  float64
}

// NewCostCmd creates the cost command, which runs a lifecycle cost analysis.
// Rates, lifespan and sensitivity delta default to the cost section of the
// configuration.
func NewCostCmd() *cobra.Command {
	var flags costFlags

	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Run a lifecycle cost analysis",
		Long: `Computes the present value of an asset's initial, operational, maintenance
and end-of-life costs, the annualized cost, the cost breakdown and the
sensitivity of the total to each parameter.

Rates are decimals (0.05 = 5%). Rates, lifespan and sensitivity delta not given
as flags come from the cost section of the configuration.`,
		Example: `  carboncalc cost --initial-cost 1200000 --operational 45000 --maintenance 12000
  carboncalc cost --initial-cost 500000 --lifespan 30 --discount-rate 0.04 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCost(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&flags.params.InitialCost, "initial-cost", 0, "initial cost")
	f.Float64Var(&flags.params.OperationalCostAnnual, "operational", 0, "annual operational cost")
	f.Float64Var(&flags.params.MaintenanceCostAnnual, "maintenance", 0, "annual maintenance cost")
	f.Float64Var(&flags.params.EndOfLifeCost, "end-of-life", 0, "end-of-life cost")
	f.IntVar(&flags.params.Lifespan, "lifespan", config.DefaultLifespan, "analysis period in years")
	f.Float64Var(&flags.params.DiscountRate, "discount-rate", config.DefaultDiscountRate, "nominal discount rate")
	f.Float64Var(&flags.params.InflationRate, "inflation-rate", config.DefaultInflationRate, "inflation rate")
	f.Float64Var(&flags.params.EnergyCostEscalation, "energy-escalation", config.DefaultEnergyEscalation,
		"annual escalation of operational cost")
	f.Float64Var(&flags.delta, "sensitivity-delta", config.DefaultSensitivityDelta,
		"relative change applied to each parameter in the sensitivity analysis")
	addOutputFlag(cmd)

	return cmd
}

func runCost(cmd *cobra.Command, flags costFlags) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	out, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	p, delta := costParameters(cmd, flags)
	if err = p.Validate(); err != nil {
		return err
	}
	if err = config.CheckSensitivityDelta(delta); err != nil {
		return fmt.Errorf("--sensitivity-delta: %w", err)
	}

	analysis := lcc.AnalyzeWithDelta(p, delta)
	log.Debug().
		Ctx(ctx).
		Str("component", "cli").
		Str("operation", "cost").
		Int("lifespan", p.Lifespan).
		Float64("total_lifecycle_cost", analysis.TotalLifecycleCost).
		Msg("lifecycle cost analysis complete")

	if out == config.OutputFormatJSON {
		return writeJSON(cmd.OutOrStdout(), analysis)
	}
	t := newTextWriter(cmd.OutOrStdout(), config.GetOutputPrecision())
	writeCost(t, analysis)
	return t.err
}

// costParameters fills flags that were not set from the configured defaults.
func costParameters(cmd *cobra.Command, flags costFlags) (lcc.Parameters, float64) {
	cfg := config.GetCostConfig()
	p := flags.params
	delta := flags.delta

	changed := cmd.Flags().Changed
	if !changed("lifespan") {
		p.Lifespan = cfg.Lifespan
	}
	if !changed("discount-rate") {
		p.DiscountRate = cfg.DiscountRate
	}
	if !changed("inflation-rate") {
		p.InflationRate = cfg.InflationRate
	}
	if !changed("energy-escalation") {
		p.EnergyCostEscalation = cfg.EnergyCostEscalation
	}
	if !changed("sensitivity-delta") {
		delta = cfg.SensitivityDelta
	}
	return p, delta
}
