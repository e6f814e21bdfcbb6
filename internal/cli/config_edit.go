package cli

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/carboncalc/internal/config"
)

// NewConfigGetCmd creates the config get command.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one configuration value",
		Example: `  carboncalc config get report.min_completeness
  carboncalc config get cost.discount_rate`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return err
			}
			cmd.Println(value)
			return nil
		},
	}
}

// NewConfigSetCmd creates the config set command. Values are written to the
// project configuration inside a project (unless --global) and to the user
// configuration otherwise.
func NewConfigSetCmd() *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one configuration value",
		Example: `  carboncalc config set output.default_format json
  carboncalc config set cost.lifespan 60 --global`,
		Args: cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd, args[0], args[1], global)
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "change the user configuration even inside a project")
	return cmd
}

func runConfigSet(cmd *cobra.Command, key, value string, global bool) error {
	target := config.Defaults()
	dir, err := config.GetConfigDir()
	if err != nil {
		return err
	}
	target.SetConfigPath(filepath.Join(dir, "config.yaml"))
	if projectDir := config.GetResolvedProjectDir(); projectDir != "" && !global {
		target.SetConfigPath(filepath.Join(projectDir, "config.yaml"))
	}

	if err = target.Load(); err != nil {
		return err
	}
	if err = target.Set(key, value); err != nil {
		return err
	}
	if err = target.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Set %s = %s in %s\n", key, value, target.ConfigPath())
	return nil
}

// NewConfigListCmd creates the config list command.
func NewConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every configuration key with its effective value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
			fmt.Fprintln(w, "Key\tValue")
			fmt.Fprintln(w, "---\t-----")
			for _, key := range config.Keys() {
				value, err := cfg.Get(key)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\n", key, value)
			}
			return w.Flush()
		},
	}
}
