package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carboncalc/internal/model"
)

func sampleTransport() []model.TransportItem {
	return []model.TransportItem{
		{
			ID:                "t1",
			Type:              "truck",
			Distance:          100,
			Weight:            10,
			FuelType:          "diesel",
			EmissionsFactor:   0.1,
			Efficiency:        model.Float(0.6),
			RouteOptimization: model.Bool(true),
			MaintenanceStatus: model.String("Good"),
			IdlingTime:        model.Float(2),
		},
		{
			ID:              "t2",
			Type:            "van",
			Distance:        50,
			Weight:          2,
			FuelType:        "electric",
			EmissionsFactor: 0.05,
			IsElectric:      model.Bool(true),
			Efficiency:      model.Float(0.9),
			PeakTime:        model.Bool(true),
		},
		{
			ID:                "t3",
			Type:              "truck",
			Distance:          50,
			Weight:            5,
			FuelType:          "HVO",
			EmissionsFactor:   1.0,
			FrequentStops:     model.Bool(true),
			MaintenanceStatus: model.String("poor"),
		},
	}
}

func TestCalculateTransportMetrics_Empty(t *testing.T) {
	got := CalculateTransportMetrics(nil)

	assert.Equal(t, NewTransportMetrics(), got)
	assert.NotNil(t, got.TransportByType)
	assert.Empty(t, got.TransportByType)
	assert.Zero(t, got.CarbonIntensity)
	assert.Zero(t, got.EfficiencyScore)
}

func TestCalculateTransportMetrics(t *testing.T) {
	got := CalculateTransportMetrics(sampleTransport())

	require.Equal(t, 3, got.TotalTransportItems)
	assert.InDelta(t, 200.0, got.TotalDistance, 1e-9)
	assert.InDelta(t, 17.0, got.TotalWeight, 1e-9)
	// 100×10×0.1 + 50×2×0.05 + 50×5×1.0
	assert.InDelta(t, 100.0+5+250, got.TotalEmissions, 1e-9)
	assert.InDelta(t, 200.0/3, got.AverageDistance, 1e-9)
	assert.Equal(t, map[string]int{"truck": 2, "van": 1}, got.TransportByType)

	// (0.1×100 + 0.05×50 + 1.0×50) / 200
	assert.InDelta(t, 62.5/200, got.CarbonIntensity, 1e-9)

	assert.InDelta(t, 100.0/3, got.ElectricVehiclePercentage, 1e-9)
	// electric van and HVO truck
	assert.InDelta(t, 200.0/3, got.SustainableTransportPercentage, 1e-9)
	assert.InDelta(t, 100.0/3, got.RouteOptimizationRate, 1e-9)
	assert.InDelta(t, 100.0/3, got.MaintenanceComplianceRate, 1e-9)
	assert.InDelta(t, 100.0/3, got.PeakTimePercentage, 1e-9)
	assert.InDelta(t, 100.0/3, got.FrequentStopsPercentage, 1e-9)

	assert.InDelta(t, 0.75, got.AverageEfficiency, 1e-9)
	assert.InDelta(t, 2.0, got.AverageIdlingTime, 1e-9)
	assert.Zero(t, got.AverageOperatingHours)

	want := 0.4*0.75 + 0.3*(100.0/3)/100 + 0.3*(100.0/3)/100
	assert.InDelta(t, want, got.EfficiencyScore, 1e-9)
}

func TestCalculateTransportMetrics_ZeroDistance(t *testing.T) {
	got := CalculateTransportMetrics([]model.TransportItem{{Type: "crane", EmissionsFactor: 2}})

	assert.Zero(t, got.CarbonIntensity)
	assert.Zero(t, got.TotalEmissions)
	assert.Equal(t, 1, got.TotalTransportItems)
}
