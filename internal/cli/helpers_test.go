package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/carboncalc/internal/cli"
	"github.com/rshade/carboncalc/internal/config"
)

// siteDocument carries enough data for a report at the default minimum.
const siteDocument = `
schemaVersion: "1.0.0"
materials:
  - name: Ready-mix concrete
    category: structural
    carbonFootprint: 0.13
    quantity: 250000
    unit: kg
    recyclable: false
    recycledContent: 10
    locallySourced: true
  - name: Rebar
    category: structural
    carbonFootprint: 1.9
    quantity: 18000
    unit: kg
    recyclable: true
    recycledContent: 70
    locallySourced: false
  - name: Glulam timber
    category: structural
    carbonFootprint: 0.45
    quantity: 9000
    unit: kg
    recyclable: true
    recycledContent: 0
    locallySourced: true
transport:
  - type: truck
    distance: 80
    weight: 250
    fuelType: diesel
    emissionsFactor: 0.11
    isElectric: false
    routeOptimization: false
  - type: van
    distance: 35
    weight: 2
    fuelType: electric
    emissionsFactor: 0.02
    isElectric: true
    routeOptimization: true
energy:
  - source: grid
    quantity: 42000
    unit: kWh
    emissionsFactor: 0.38
    renewable: false
    smartMonitoring: false
  - source: solar
    quantity: 6000
    unit: kWh
    emissionsFactor: 0.04
    renewable: true
    smartMonitoring: true
options:
  projectName: Harbour Street Library
`

// sparseDocument scores 15.7 on data completeness.
const sparseDocument = `{"materials":[{"name":"Brick"}]}`

// setupCLITest isolates configuration and project discovery for one test.
func setupCLITest(t *testing.T) (home, projectRoot string) {
	t.Helper()
	home = t.TempDir()
	projectRoot = t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvProjectDir, projectRoot)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvOutputFormat, "")
	t.Setenv(config.EnvMinCompleteness, "")
	t.Cleanup(func() {
		config.ResetGlobalConfigForTest()
		config.SetResolvedProjectDir("")
	})
	return home, projectRoot
}

// writeDocument writes content under dir and returns the path.
func writeDocument(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeProjectConfig writes the project-local config.yaml under root.
func writeProjectConfig(t *testing.T, root, content string) string {
	t.Helper()
	dir := filepath.Join(root, config.ProjectDirName)
	require.NoError(t, os.MkdirAll(dir, 0o700))
	return writeDocument(t, dir, "config.yaml", content)
}

// chdir changes the working directory to dir for the duration of the test,
// like testing.T.Chdir (Go 1.24), and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
