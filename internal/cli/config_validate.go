package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/carboncalc/internal/config"
)

// NewConfigValidateCmd creates the config validate command.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration",
		Long: `Validates the effective configuration: the user config file merged with the
project config and environment overrides.

Checks output format and precision, log level, report format, the minimum
completeness score, and the lifecycle cost rates and lifespan.`,
		Example: `  # Validate current configuration
  carboncalc config validate

  # Validate and show the effective values
  carboncalc config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")
	return cmd
}

func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	// The loaders fall back to defaults on broken files; re-read them here to
	// surface the errors.
	userFile := config.Defaults()
	userFile.SetConfigPath(cfg.ConfigPath())
	if err := userFile.Load(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if dir := config.GetResolvedProjectDir(); dir != "" {
		overlay := filepath.Join(dir, "config.yaml")
		if _, statErr := os.Stat(overlay); statErr == nil {
			if err := config.ShallowMergeYAML(config.Defaults(), overlay); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")
	if verbose {
		printVerboseDetails(cmd, cfg)
	}
	return nil
}

// printVerboseDetails prints the effective configuration.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.ConfigPath())
	if dir := config.GetResolvedProjectDir(); dir != "" {
		cmd.Printf("  Project directory: %s\n", dir)
	}
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Output precision: %d\n", cfg.Output.Precision)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	cmd.Printf("  Report format: %s\n", cfg.Report.DefaultFormat)
	cmd.Printf("  Minimum completeness: %g\n", cfg.Report.MinCompleteness)
	cmd.Printf("  Lifespan: %d years\n", cfg.Cost.Lifespan)
}
