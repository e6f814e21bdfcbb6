package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/rshade/carboncalc/internal/logging"
)

// ProjectDirName is the project-local settings directory.
const ProjectDirName = ".carboncalc"

// ErrNoProject is returned by FindProject when no project document is found.
var ErrNoProject = errors.New("no carboncalc project found")

// projectFileNames are the project document names FindProject looks for, in
// order of preference.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var projectFileNames = []string{"carboncalc.yaml", "carboncalc.yml", "carboncalc.json"}

var (
	resolvedProjectDir   string       //nolint:gochecknoglobals // Set once at startup, read by config loaders
	resolvedProjectDirMu sync.RWMutex //nolint:gochecknoglobals // Protects resolvedProjectDir
)

// SetResolvedProjectDir stores the resolved project directory for use by other config functions.
func SetResolvedProjectDir(dir string) {
	resolvedProjectDirMu.Lock()
	defer resolvedProjectDirMu.Unlock()
	resolvedProjectDir = dir
}

// GetResolvedProjectDir returns the stored resolved project directory.
func GetResolvedProjectDir() string {
	resolvedProjectDirMu.RLock()
	defer resolvedProjectDirMu.RUnlock()
	return resolvedProjectDir
}

// FindProject walks up from startDir looking for a project document and
// returns the directory containing it together with the document path.
func FindProject(startDir string) (string, string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", "", err
	}

	for {
		for _, name := range projectFileNames {
			candidate := filepath.Join(dir, name)
			info, statErr := os.Stat(candidate)
			if statErr == nil && !info.IsDir() {
				return dir, candidate, nil
			}
			if statErr != nil && !os.IsNotExist(statErr) {
				return "", "", statErr
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", ErrNoProject
		}
		dir = parent
	}
}

// FindProjectDocument returns the project document found by walking up from
// startDir, or "" when there is none.
func FindProjectDocument(startDir string) string {
	_, doc, err := FindProject(startDir)
	if err != nil {
		return ""
	}
	return doc
}

// ResolveProjectDir determines the project-local .carboncalc directory.
// It checks, in order, flagValue (--project-dir), CARBONCALC_PROJECT_DIR and a
// FindProject walk-up from startDir. It returns an absolute path, or "" when
// no project is found, and never creates the directory.
func ResolveProjectDir(ctx context.Context, flagValue, startDir string) string {
	if flagValue != "" {
		return toAbsProjectDir(ctx, flagValue)
	}

	if envDir := os.Getenv(EnvProjectDir); envDir != "" {
		return toAbsProjectDir(ctx, envDir)
	}

	projectRoot, _, err := FindProject(startDir)
	if err != nil {
		if !errors.Is(err, ErrNoProject) {
			logger := logging.FromContext(ctx)
			logger.Warn().
				Ctx(ctx).
				Str("component", "config").
				Err(err).
				Str("start_dir", startDir).
				Msg("unexpected error during project discovery")
		}
		return ""
	}

	return toAbsProjectDir(ctx, projectRoot)
}

// NewWithProjectDir loads the user configuration and shallow-merges the
// project-local config.yaml from projectDir on top. Environment overrides
// are applied last. With an empty projectDir it behaves like New.
func NewWithProjectDir(ctx context.Context, projectDir string) *Config {
	cfg := New()
	if projectDir == "" {
		return cfg
	}

	overlayPath := filepath.Join(projectDir, configFileName)
	if _, err := os.Stat(overlayPath); err != nil {
		return cfg
	}

	merged := New()
	if err := ShallowMergeYAML(merged, overlayPath); err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Ctx(ctx).
			Str("component", "config").
			Str("operation", "merge_project_config").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("failed to merge project config, using user config")
		return cfg
	}
	merged.ApplyEnvOverrides()

	return merged
}

// toAbsProjectDir resolves dir and appends .carboncalc unless it already ends there.
func toAbsProjectDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Ctx(ctx).
			Str("component", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}

	if filepath.Base(abs) == ProjectDirName {
		return abs
	}
	return filepath.Join(abs, ProjectDirName)
}
