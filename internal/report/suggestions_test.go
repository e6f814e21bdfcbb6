package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carboncalc/internal/metrics"
	"github.com/rshade/carboncalc/internal/model"
)

func TestGenerateSuggestions_EmptyFallsBack(t *testing.T) {
	got := GenerateSuggestions(metrics.NewMaterialMetrics(), metrics.NewTransportMetrics(), metrics.NewEnergyMetrics())

	require.Len(t, got, 1)
	assert.Equal(t, FallbackSuggestion, got[0].Text)
	assert.Equal(t, CategoryGeneral, got[0].Category)
}

func TestGenerateSuggestions_NoRuleFiresFallsBack(t *testing.T) {
	e := metrics.CalculateEnergyMetrics([]model.EnergyItem{solarSupply()})

	got := GenerateSuggestions(metrics.NewMaterialMetrics(), metrics.NewTransportMetrics(), e)

	require.Len(t, got, 1)
	assert.Equal(t, FallbackSuggestion, got[0].Text)
}

func TestGenerateSuggestions_BareMaterial(t *testing.T) {
	m := metrics.CalculateMaterialMetrics([]model.Material{
		{Name: "Concrete", Category: "structural", CarbonFootprint: 0.2, Quantity: 100, Unit: "kg"},
	})

	got := GenerateSuggestions(m, metrics.NewTransportMetrics(), metrics.NewEnergyMetrics())

	// recyclable, recycled content, local sourcing and the dominant emitter.
	require.Len(t, got, 4)
	for _, s := range got {
		assert.Equal(t, CategoryMaterials, s.Category)
		assert.InDelta(t, 2.0, s.Weight, 1e-9)
	}
	assert.Contains(t, got[0].Text, "recyclable")
	assert.Contains(t, got[3].Text, "Concrete")
}

func TestGenerateSuggestions_DominantDomainRanksFirst(t *testing.T) {
	// 20 kg from materials against 400 kg from grid energy.
	m := metrics.CalculateMaterialMetrics([]model.Material{
		{Name: "Timber", Category: "finishes", CarbonFootprint: 0.2, Quantity: 100, Unit: "kg"},
	})
	e := metrics.CalculateEnergyMetrics([]model.EnergyItem{
		{Source: "grid", Quantity: 1000, Unit: "kWh", EmissionsFactor: 0.4},
	})

	got := GenerateSuggestions(m, metrics.NewTransportMetrics(), e)

	require.Len(t, got, 7)
	for _, s := range got[:3] {
		assert.Equal(t, CategoryEnergy, s.Category)
	}
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Weight, got[i].Weight)
	}
}

func TestGenerateSuggestions_TransportIdling(t *testing.T) {
	tr := metrics.CalculateTransportMetrics([]model.TransportItem{
		{
			Type:              "truck",
			Distance:          100,
			Weight:            10,
			FuelType:          "diesel",
			EmissionsFactor:   0.1,
			IsElectric:        model.Bool(true),
			RouteOptimization: model.Bool(true),
			IdlingTime:        model.Float(3),
		},
	})

	got := GenerateSuggestions(metrics.NewMaterialMetrics(), tr, metrics.NewEnergyMetrics())

	require.Len(t, got, 1)
	assert.Equal(t, CategoryTransport, got[0].Category)
	assert.Contains(t, got[0].Text, "3.0 hours")
	// Full domain share plus a saturated gap.
	assert.InDelta(t, 2.0, got[0].Weight, 1e-9)
}

func TestSuggestionTexts(t *testing.T) {
	s := []Suggestion{{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"}}

	all, priority := suggestionTexts(s)
	assert.Equal(t, []string{"a", "b", "c", "d"}, all)
	assert.Equal(t, []string{"a", "b", "c"}, priority)

	all, priority = suggestionTexts(s[:1])
	assert.Equal(t, []string{"a"}, all)
	assert.Equal(t, []string{"a"}, priority)
}
