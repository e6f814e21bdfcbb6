package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/carboncalc/internal/config"
	"github.com/rshade/carboncalc/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root command for the carboncalc CLI. It resolves the
// project directory, loads the merged configuration, wires logging and trace
// IDs into the command context and registers the subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		projectDir string
	)

	cmd := &cobra.Command{
		Use:           "carboncalc",
		Short:         "Construction carbon footprint calculator",
		Long:          "carboncalc: sustainability metrics, lifecycle assessment and lifecycle cost analysis for construction projects",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loadConfig(cmd, projectDir)
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&projectDir, "project-dir", "",
		"project directory holding .carboncalc/ (default: walk up to the nearest carboncalc.yaml)")
	cmd.AddCommand(
		NewReportCmd(ver),
		NewCompletenessCmd(),
		NewLifecycleCmd(),
		NewCircularityCmd(),
		NewCostCmd(),
		newConfigCmd(),
	)

	return cmd
}

// loadConfig resolves the project directory and installs the merged
// configuration as the global one.
func loadConfig(cmd *cobra.Command, projectDirFlag string) {
	ctx := cmd.Context()
	startDir, err := os.Getwd()
	if err != nil {
		startDir = "."
	}

	projectDir := config.ResolveProjectDir(ctx, projectDirFlag, startDir)
	config.SetResolvedProjectDir(projectDir)
	config.SetGlobalConfig(config.NewWithProjectDir(ctx, projectDir))
}

const rootCmdExample = `  # Generate a detailed sustainability report
  carboncalc report project.yaml

  # Generate a comprehensive report as JSON
  carboncalc report project.json --format comprehensive --output json

  # Check whether a document has enough data for a report
  carboncalc completeness project.yaml

  # Lifecycle assessment and circularity of the nearest carboncalc.yaml
  carboncalc lifecycle
  carboncalc circularity

  # Lifecycle cost analysis over 30 years
  carboncalc cost --initial-cost 1200000 --operational 45000 --lifespan 30

  # Initialize and change configuration
  carboncalc config init
  carboncalc config set report.min_completeness 50`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
