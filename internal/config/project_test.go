package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carboncalc/internal/config"
)

// writeProjectDocument creates a minimal project document in dir.
func writeProjectDocument(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("materials: []\n"), 0o644))
	return path
}

// isolateHome points the user config directory at an empty temp dir.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvProjectDir, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvOutputFormat, "")
	t.Setenv(config.EnvMinCompleteness, "")
	return home
}

func TestFindProject_WalksUp(t *testing.T) {
	root := t.TempDir()
	doc := writeProjectDocument(t, root, "carboncalc.yaml")
	sub := filepath.Join(root, "site", "phase-2")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	gotRoot, gotDoc, err := config.FindProject(sub)
	require.NoError(t, err)
	assert.Equal(t, root, gotRoot)
	assert.Equal(t, doc, gotDoc)
	assert.Equal(t, doc, config.FindProjectDocument(sub))
}

func TestFindProject_PrefersYAML(t *testing.T) {
	root := t.TempDir()
	writeProjectDocument(t, root, "carboncalc.json")
	want := writeProjectDocument(t, root, "carboncalc.yaml")

	_, got, err := config.FindProject(root)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindProject_NearestWins(t *testing.T) {
	outer := t.TempDir()
	writeProjectDocument(t, outer, "carboncalc.yaml")
	inner := filepath.Join(outer, "annex")
	require.NoError(t, os.MkdirAll(inner, 0o755))
	want := writeProjectDocument(t, inner, "carboncalc.json")

	_, got, err := config.FindProject(inner)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindProject_NoProject(t *testing.T) {
	_, _, err := config.FindProject(t.TempDir())
	require.ErrorIs(t, err, config.ErrNoProject)
	assert.Empty(t, config.FindProjectDocument(t.TempDir()))
}

func TestResolveProjectDir(t *testing.T) {
	ctx := context.Background()

	t.Run("flag", func(t *testing.T) {
		isolateHome(t)
		flagDir := t.TempDir()
		got := config.ResolveProjectDir(ctx, flagDir, "/does/not/matter")
		assert.Equal(t, filepath.Join(flagDir, config.ProjectDirName), got)
	})

	t.Run("flag beats env", func(t *testing.T) {
		isolateHome(t)
		flagDir := t.TempDir()
		t.Setenv(config.EnvProjectDir, t.TempDir())
		got := config.ResolveProjectDir(ctx, flagDir, "")
		assert.Equal(t, filepath.Join(flagDir, config.ProjectDirName), got)
	})

	t.Run("env", func(t *testing.T) {
		isolateHome(t)
		envDir := t.TempDir()
		t.Setenv(config.EnvProjectDir, envDir)
		got := config.ResolveProjectDir(ctx, "", "")
		assert.Equal(t, filepath.Join(envDir, config.ProjectDirName), got)
	})

	t.Run("walk up", func(t *testing.T) {
		isolateHome(t)
		root := t.TempDir()
		writeProjectDocument(t, root, "carboncalc.yml")
		sub := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(sub, 0o755))
		got := config.ResolveProjectDir(ctx, "", sub)
		assert.Equal(t, filepath.Join(root, config.ProjectDirName), got)
	})

	t.Run("no project", func(t *testing.T) {
		isolateHome(t)
		assert.Empty(t, config.ResolveProjectDir(ctx, "", t.TempDir()))
	})

	t.Run("relative flag", func(t *testing.T) {
		isolateHome(t)
		got := config.ResolveProjectDir(ctx, "relative/path", "")
		assert.True(t, filepath.IsAbs(got))
		assert.Equal(t, config.ProjectDirName, filepath.Base(got))
	})

	t.Run("suffix not doubled", func(t *testing.T) {
		isolateHome(t)
		got := config.ResolveProjectDir(ctx, "/site/"+config.ProjectDirName, "")
		assert.Equal(t, "/site/"+config.ProjectDirName, got)
	})
}

func TestSetResolvedProjectDir_RoundTrip(t *testing.T) {
	t.Cleanup(func() { config.SetResolvedProjectDir("") })

	config.SetResolvedProjectDir("/site/.carboncalc")
	assert.Equal(t, "/site/.carboncalc", config.GetResolvedProjectDir())
}

func TestNewWithProjectDir(t *testing.T) {
	ctx := context.Background()

	t.Run("empty project dir", func(t *testing.T) {
		isolateHome(t)
		assert.Equal(t, config.New(), config.NewWithProjectDir(ctx, ""))
	})

	t.Run("missing project config", func(t *testing.T) {
		isolateHome(t)
		cfg := config.NewWithProjectDir(ctx, t.TempDir())
		assert.Equal(t, config.Defaults().Report, cfg.Report)
	})

	t.Run("project overlays user config", func(t *testing.T) {
		home := isolateHome(t)
		require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(`
output:
  default_format: json
  precision: 3
report:
  default_format: basic
  min_completeness: 40
`), 0o600))

		projectDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(projectDir, "config.yaml"), []byte(`
report:
  default_format: comprehensive
  min_completeness: 60
`), 0o600))

		cfg := config.NewWithProjectDir(ctx, projectDir)
		assert.Equal(t, config.OutputFormatJSON, cfg.Output.DefaultFormat, "user section kept")
		assert.Equal(t, 3, cfg.Output.Precision)
		assert.Equal(t, "comprehensive", cfg.Report.DefaultFormat, "project section wins")
		assert.InDelta(t, 60.0, cfg.Report.MinCompleteness, 1e-12)
		assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.ConfigPath())
	})

	t.Run("env beats project config", func(t *testing.T) {
		isolateHome(t)
		projectDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(projectDir, "config.yaml"), []byte(`
logging:
  level: warn
`), 0o600))
		t.Setenv(config.EnvLogLevel, "trace")

		cfg := config.NewWithProjectDir(ctx, projectDir)
		assert.Equal(t, "trace", cfg.Logging.Level)
	})

	t.Run("corrupted project config", func(t *testing.T) {
		isolateHome(t)
		projectDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(projectDir, "config.yaml"), []byte("report: [oops"), 0o600))

		cfg := config.NewWithProjectDir(ctx, projectDir)
		assert.Equal(t, config.Defaults().Report, cfg.Report)
	})
}
