package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReportFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ReportFormat
		wantErr bool
	}{
		{in: "", want: FormatDetailed},
		{in: "basic", want: FormatBasic},
		{in: " Detailed ", want: FormatDetailed},
		{in: "COMPREHENSIVE", want: FormatComprehensive},
		{in: "full", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseReportFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported report format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReportOptions_Normalized(t *testing.T) {
	t.Run("empty format defaults to detailed", func(t *testing.T) {
		got := ReportOptions{}.Normalized()
		assert.Equal(t, FormatDetailed, got.Format)
		assert.False(t, got.IncludeLifecycleAnalysis)
	})

	t.Run("comprehensive enables every section", func(t *testing.T) {
		got := ReportOptions{Format: FormatComprehensive}.Normalized()
		assert.True(t, got.IncludeLifecycleAnalysis)
		assert.True(t, got.IncludeCircularEconomy)
		assert.True(t, got.IncludeComplianceDetails)
		assert.True(t, got.IncludeImplementationRoadmap)
		assert.True(t, got.IncludeCostAnalysis)
	})

	t.Run("explicit flags survive", func(t *testing.T) {
		got := ReportOptions{Format: FormatBasic, IncludeCircularEconomy: true}.Normalized()
		assert.Equal(t, FormatBasic, got.Format)
		assert.True(t, got.IncludeCircularEconomy)
		assert.False(t, got.IncludeCostAnalysis)
	})
}

func TestRecordEmissions(t *testing.T) {
	m := Material{CarbonFootprint: 0.5, Quantity: 200}
	assert.InDelta(t, 100.0, m.TotalCarbon(), 1e-9)

	tr := TransportItem{Distance: 100, Weight: 2, EmissionsFactor: 0.1}
	assert.InDelta(t, 20.0, tr.Emissions(), 1e-9)

	e := EnergyItem{Quantity: 1000, EmissionsFactor: 0.4}
	assert.InDelta(t, 400.0, e.Emissions(), 1e-9)

	assert.True(t, IsTrue(Bool(true)))
	assert.False(t, IsTrue(Bool(false)))
	assert.False(t, IsTrue(nil))
}
