package cli_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carboncalc/internal/cli"
	"github.com/rshade/carboncalc/internal/config"
	"github.com/rshade/carboncalc/internal/model"
	"github.com/rshade/carboncalc/internal/report"
)

func TestReport_Table(t *testing.T) {
	_, root := setupCLITest(t)
	doc := writeDocument(t, root, "site.yaml", siteDocument)

	out, _, err := execute(t, "report", doc)
	require.NoError(t, err)

	assert.Contains(t, out, "SUSTAINABILITY REPORT")
	assert.Contains(t, out, "Harbour Street Library")
	assert.Contains(t, out, "CARBON FOOTPRINT")
	assert.Contains(t, out, "t CO2e")
	assert.Contains(t, out, "MATERIALS")
	assert.Contains(t, out, "Ready-mix concrete")
	assert.NotContains(t, out, "LIFECYCLE ASSESSMENT", "detailed reports carry no optional sections")
}

func TestReport_JSONComprehensive(t *testing.T) {
	_, root := setupCLITest(t)
	doc := writeDocument(t, root, "site.yaml", siteDocument)

	out, _, err := execute(t, "report", doc, "--format", "comprehensive", "--output", "json")
	require.NoError(t, err)

	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, model.FormatComprehensive, rep.Metadata.Format)
	assert.Equal(t, "test", rep.Metadata.EngineVersion)
	assert.Equal(t, "Harbour Street Library", rep.Metadata.ProjectName)
	assert.Len(t, rep.Metadata.ReportID, 26)
	assert.Equal(t, len(rep.Suggestions), rep.Metadata.SuggestionsCount)
	assert.Greater(t, rep.TotalCarbonFootprint, 0.0)
	require.NotNil(t, rep.LifeCycleAnalysis)
	assert.Len(t, rep.LifeCycleAnalysis.Stages, 6)
	assert.NotNil(t, rep.CircularEconomy)
	assert.NotNil(t, rep.ImplementationRoadmap)
	assert.NotNil(t, rep.ComplianceDetails)
	assert.Nil(t, rep.CostAnalysis, "no cost parameters in the document")
}

func TestReport_IncludeFlags(t *testing.T) {
	_, root := setupCLITest(t)
	doc := writeDocument(t, root, "site.yaml", siteDocument)

	out, _, err := execute(t, "report", doc, "--format", "basic", "--include-lifecycle", "-o", "json")
	require.NoError(t, err)

	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, model.FormatBasic, rep.Metadata.Format)
	assert.NotNil(t, rep.LifeCycleAnalysis)
	assert.Nil(t, rep.ComplianceDetails)
	assert.Nil(t, rep.Equivalency)
}

func TestReport_FormatFromConfig(t *testing.T) {
	_, root := setupCLITest(t)
	doc := writeDocument(t, root, "site.yaml", siteDocument)
	writeProjectConfig(t, root, "report:\n  default_format: basic\n  min_completeness: 0\n")

	out, _, err := execute(t, "report", doc, "-o", "json")
	require.NoError(t, err)

	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, model.FormatBasic, rep.Metadata.Format)
	assert.Nil(t, rep.Equivalency, "basic reports carry no equivalency")

	out, _, err = execute(t, "report", doc, "-o", "json", "-f", "detailed")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, model.FormatDetailed, rep.Metadata.Format, "the flag beats the config")
}

func TestReport_InsufficientData(t *testing.T) {
	_, root := setupCLITest(t)
	doc := writeDocument(t, root, "sparse.json", sparseDocument)

	out, _, err := execute(t, "report", doc)
	require.Error(t, err)
	require.ErrorIs(t, err, report.ErrInsufficientData)
	assert.Equal(t, cli.ExitCodeInsufficientData, cli.ExitCode(err))
	assert.Contains(t, err.Error(), "below the minimum")
	assert.Empty(t, out, "no report is rendered")
}

func TestReport_MinCompletenessOverrides(t *testing.T) {
	_, root := setupCLITest(t)
	sparse := writeDocument(t, root, "sparse.json", sparseDocument)
	site := writeDocument(t, root, "site.yaml", siteDocument)

	_, _, err := execute(t, "report", sparse, "--min-completeness", "10")
	require.NoError(t, err)

	t.Setenv(config.EnvMinCompleteness, "95")
	config.ResetGlobalConfigForTest()
	_, _, err = execute(t, "report", site)
	require.ErrorIs(t, err, report.ErrInsufficientData)
}

func TestReport_MinCompletenessOutOfRange(t *testing.T) {
	_, root := setupCLITest(t)
	doc := writeDocument(t, root, "site.yaml", siteDocument)

	for _, v := range []string{"150", "-5"} {
		out, _, err := execute(t, "report", doc, "--min-completeness="+v)
		require.ErrorIs(t, err, config.ErrCompletenessRange, v)
		assert.Equal(t, cli.ExitCodeError, cli.ExitCode(err))
		assert.Empty(t, out)
	}

	_, _, err := execute(t, "report", doc, "--min-completeness", "100", "-o", "json")
	require.ErrorIs(t, err, report.ErrInsufficientData, "100 is in range and refuses the document")
}

func TestReport_FindsProjectDocument(t *testing.T) {
	_, root := setupCLITest(t)
	writeDocument(t, root, "carboncalc.yaml", siteDocument)
	chdir(t, root)

	out, _, err := execute(t, "report", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"reportId"`)
}

func TestReport_Errors(t *testing.T) {
	_, root := setupCLITest(t)
	doc := writeDocument(t, root, "site.yaml", siteDocument)

	_, _, err := execute(t, "report", doc, "--format", "exhaustive")
	require.Error(t, err)

	_, _, err = execute(t, "report", doc, "--output", "xml")
	require.Error(t, err)

	_, _, err = execute(t, "report", root+"/missing.yaml")
	require.Error(t, err)
	assert.Equal(t, cli.ExitCodeError, cli.ExitCode(err))

	chdir(t, t.TempDir())
	_, _, err = execute(t, "report")
	require.ErrorIs(t, err, cli.ErrNoInput)
}

func TestReport_CoercionWarningsOnStderr(t *testing.T) {
	_, root := setupCLITest(t)
	doc := writeDocument(t, root, "site.json", `{"materials":[{"name":"Brick","quantity":-3}]}`)

	_, stderr, err := execute(t, "report", doc, "--min-completeness", "0")
	require.NoError(t, err)
	assert.Contains(t, stderr, "materials[0].quantity")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, cli.ExitCode(nil))
	assert.Equal(t, cli.ExitCodeError, cli.ExitCode(errors.New("boom")))

	exitErr := &cli.ExitError{ExitCode: 7, Reason: "custom", Err: report.ErrInsufficientData}
	assert.Equal(t, 7, cli.ExitCode(exitErr))
	assert.Equal(t, 7, cli.ExitCode(errors.Join(errors.New("outer"), exitErr)))
	assert.Equal(t, "custom", exitErr.Error())
	require.ErrorIs(t, exitErr, report.ErrInsufficientData)
}
