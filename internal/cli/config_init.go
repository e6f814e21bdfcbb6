package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/carboncalc/internal/config"
)

// NewConfigInitCmd creates the config init command. Inside a project (without
// --global) it writes .carboncalc/config.yaml and a .gitignore next to the
// project document; otherwise it writes the user configuration file.
func NewConfigInitCmd() *cobra.Command {
	var (
		force  bool
		global bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

Inside a project (a directory tree with carboncalc.yaml, or --project-dir),
creates $PROJECT/.carboncalc/config.yaml and a .gitignore that keeps logs and
generated reports out of version control. Use --global to initialize the user
configuration at ~/.carboncalc/config.yaml instead.`,
		Example: `  # Create project-local configuration
  carboncalc config init

  # Create user configuration
  carboncalc config init --global

  # Overwrite an existing configuration
  carboncalc config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projectDir := config.GetResolvedProjectDir()
			if projectDir != "" && !global {
				return initProjectConfig(cmd, projectDir, force)
			}
			return initGlobalConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&global, "global", false, "initialize the user configuration even inside a project")

	return cmd
}

// checkWritable refuses to overwrite an existing file unless force is set.
func checkWritable(path string, force bool) error {
	if force {
		return nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return errors.New("configuration file already exists, use --force to overwrite")
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("cannot access config path %s: %w", path, err)
	}
	return nil
}

// initProjectConfig writes default config to projectDir/config.yaml with a .gitignore.
func initProjectConfig(cmd *cobra.Command, projectDir string, force bool) error {
	configPath := filepath.Join(projectDir, "config.yaml")
	if err := checkWritable(configPath, force); err != nil {
		return err
	}

	cfg := config.Defaults()
	cfg.SetConfigPath(configPath)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	created, err := config.EnsureGitignore(projectDir)
	if err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", configPath)
	if created {
		cmd.Printf("Created .gitignore for logs and generated reports\n")
	}
	return nil
}

// initGlobalConfig writes default config to the user configuration file.
func initGlobalConfig(cmd *cobra.Command, force bool) error {
	cfg := config.Defaults()
	dir, err := config.GetConfigDir()
	if err != nil {
		return err
	}
	cfg.SetConfigPath(filepath.Join(dir, "config.yaml"))

	if err = checkWritable(cfg.ConfigPath(), force); err != nil {
		return err
	}
	if err = cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", cfg.ConfigPath())
	return nil
}
