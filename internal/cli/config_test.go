package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carboncalc/internal/config"
)

func TestConfigInit_Project(t *testing.T) {
	_, root := setupCLITest(t)
	projectDir := filepath.Join(root, config.ProjectDirName)

	out, _, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized at")
	assert.Contains(t, out, "Created .gitignore")

	assert.FileExists(t, filepath.Join(projectDir, "config.yaml"))
	gitignore, err := os.ReadFile(filepath.Join(projectDir, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, config.GitignoreContent(), string(gitignore))

	_, _, err = execute(t, "config", "init")
	require.Error(t, err, "an existing file is kept without --force")
	assert.Contains(t, err.Error(), "--force")

	out, _, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)
	assert.NotContains(t, out, "Created .gitignore", "an existing .gitignore is left alone")
}

func TestConfigInit_Global(t *testing.T) {
	home, root := setupCLITest(t)

	out, _, err := execute(t, "config", "init", "--global")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")
	assert.FileExists(t, filepath.Join(home, "config.yaml"))
	assert.NoFileExists(t, filepath.Join(root, config.ProjectDirName, "config.yaml"))

	cfg := config.Defaults()
	cfg.SetConfigPath(filepath.Join(home, "config.yaml"))
	require.NoError(t, cfg.Load())
	assert.Equal(t, config.Defaults().Cost, cfg.Cost)
}

func TestConfigSetGet_Project(t *testing.T) {
	home, root := setupCLITest(t)

	out, _, err := execute(t, "config", "set", "cost.lifespan", "60")
	require.NoError(t, err)
	assert.Contains(t, out, "Set cost.lifespan = 60")
	assert.FileExists(t, filepath.Join(root, config.ProjectDirName, "config.yaml"))
	assert.NoFileExists(t, filepath.Join(home, "config.yaml"))

	out, _, err = execute(t, "config", "get", "cost.lifespan")
	require.NoError(t, err)
	assert.Equal(t, "60\n", out)
}

func TestConfigSetGet_Global(t *testing.T) {
	home, _ := setupCLITest(t)

	_, _, err := execute(t, "config", "set", "output.default_format", "json", "--global")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(home, "config.yaml"))

	out, _, err := execute(t, "config", "get", "output.default_format")
	require.NoError(t, err)
	assert.Equal(t, "json\n", out)
}

func TestConfigSet_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown key", key: "cost.currency", value: "EUR"},
		{name: "invalid output format", key: "output.default_format", value: "xml"},
		{name: "non-numeric lifespan", key: "cost.lifespan", value: "long"},
		{name: "zero lifespan", key: "cost.lifespan", value: "0"},
		{name: "completeness above 100", key: "report.min_completeness", value: "120"},
		{name: "unknown report format", key: "report.default_format", value: "exhaustive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, root := setupCLITest(t)
			_, _, err := execute(t, "config", "set", tt.key, tt.value)
			require.Error(t, err)
			assert.NoFileExists(t, filepath.Join(root, config.ProjectDirName, "config.yaml"))
		})
	}
}

func TestConfigGet_UnknownKey(t *testing.T) {
	setupCLITest(t)

	_, _, err := execute(t, "config", "get", "nope")
	require.ErrorIs(t, err, config.ErrUnknownKey)
}

func TestConfigList(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "config", "list")
	require.NoError(t, err)
	for _, key := range config.Keys() {
		assert.Contains(t, out, key)
	}
	assert.Contains(t, out, "report.min_completeness")
	assert.Contains(t, out, "table")
}

func TestConfigValidate(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "config", "validate", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Configuration details:")
	assert.Contains(t, out, "Lifespan: 50 years")
}

func TestConfigValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		overlay string
	}{
		{name: "bad output format", overlay: "output:\n  default_format: xml\n  precision: 2\n"},
		{name: "negative lifespan", overlay: "cost:\n  discount_rate: 0.05\n  lifespan: -1\n"},
		{name: "malformed yaml", overlay: "output: [unclosed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, root := setupCLITest(t)
			writeProjectConfig(t, root, tt.overlay)

			_, _, err := execute(t, "config", "validate")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "configuration validation failed")
		})
	}
}

func TestConfig_EnvOverridesProject(t *testing.T) {
	_, root := setupCLITest(t)
	writeProjectConfig(t, root, "output:\n  default_format: json\n  precision: 2\n")
	t.Setenv(config.EnvOutputFormat, "table")

	out, _, err := execute(t, "config", "get", "output.default_format")
	require.NoError(t, err)
	assert.Equal(t, "table\n", out)
}
