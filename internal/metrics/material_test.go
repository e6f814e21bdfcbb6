package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carboncalc/internal/model"
)

func sampleMaterials() []model.Material {
	return []model.Material{
		{
			ID:              "m1",
			Name:            "Concrete",
			Category:        "structural",
			CarbonFootprint: 0.15,
			Quantity:        1000,
			Unit:            "kg",
			Recyclable:      model.Bool(true),
			RecycledContent: model.Float(20),
			LocallySourced:  model.Bool(true),
			WaterFootprint:  model.Float(2),
			Recyclability:   model.Float(60),
			Lifespan:        model.Float(60),
			Certifications:  []string{"EPD"},
		},
		{
			ID:              "m2",
			Name:            "Steel",
			Category:        "structural",
			CarbonFootprint: 1.85,
			Quantity:        200,
			Unit:            "kg",
			Recyclable:      model.Bool(true),
			RecycledContent: model.Float(60),
			LocallySourced:  model.Bool(false),
			EmbodiedCarbon:  model.Float(370),
			Recyclability:   model.Float(90),
			Lifespan:        model.Float(80),
		},
		{
			ID:               "m3",
			Name:             "Timber",
			Category:         "finishes",
			CarbonFootprint:  0.2,
			Quantity:         50,
			Unit:             "kg",
			Biodegradable:    model.Bool(true),
			RenewableContent: model.Float(100),
		},
	}
}

func TestCalculateMaterialMetrics_Empty(t *testing.T) {
	for _, input := range [][]model.Material{nil, {}} {
		got := CalculateMaterialMetrics(input)

		assert.Equal(t, 0, got.TotalMaterials)
		assert.Zero(t, got.TotalCarbonFootprint)
		assert.Zero(t, got.ResourceEfficiency)
		assert.NotNil(t, got.MaterialsByCategory)
		assert.Empty(t, got.MaterialsByCategory)
		assert.NotNil(t, got.CarbonByCategory)
		assert.NotNil(t, got.TopEmitters)
		assert.Empty(t, got.TopEmitters)
		assert.Nil(t, got.WaterIntensity)
		assert.Nil(t, got.AverageLifespan)
		assert.Equal(t, NewMaterialMetrics(), got)
	}
}

func TestCalculateMaterialMetrics(t *testing.T) {
	got := CalculateMaterialMetrics(sampleMaterials())

	require.Equal(t, 3, got.TotalMaterials)
	// 150 + 370 + 10
	assert.InDelta(t, 530.0, got.TotalCarbonFootprint, 1e-9)
	assert.InDelta(t, (0.15+1.85+0.2)/3, got.AverageCarbonFootprint, 1e-9)
	assert.Equal(t, map[string]int{"structural": 2, "finishes": 1}, got.MaterialsByCategory)
	assert.InDelta(t, 520.0, got.CarbonByCategory["structural"], 1e-9)

	assert.InDelta(t, 200.0/3, got.RecyclablePercentage, 1e-9)
	assert.InDelta(t, 100.0/3, got.LocallySourcedPercentage, 1e-9)
	assert.InDelta(t, 100.0/3, got.BiodegradablePercentage, 1e-9)
	assert.InDelta(t, 100.0/3, got.CertificationCoverage, 1e-9)

	// Partial-data averages only cover materials that report the field.
	assert.InDelta(t, 40.0, got.AverageRecycledContent, 1e-9)
	assert.InDelta(t, 75.0, got.AverageRecyclability, 1e-9)
	assert.InDelta(t, 100.0, got.AverageRenewableContent, 1e-9)
	assert.InDelta(t, 370.0, got.TotalEmbodiedCarbon, 1e-9)
	require.NotNil(t, got.WaterIntensity)
	assert.InDelta(t, 2.0, *got.WaterIntensity, 1e-9)
	require.NotNil(t, got.AverageLifespan)
	assert.InDelta(t, 70.0, *got.AverageLifespan, 1e-9)

	// 0.7 × 40/100 + 0.3 × 33.33/100
	assert.InDelta(t, 0.28+0.1, got.ResourceEfficiency, 1e-9)

	require.Len(t, got.TopEmitters, 3)
	assert.Equal(t, "m2", got.TopEmitters[0].ID)
	assert.Equal(t, "m1", got.TopEmitters[1].ID)
	assert.InDelta(t, 370.0/530*100, got.TopEmitters[0].Share, 1e-9)
}

func TestCalculateMaterialMetrics_PercentagesBounded(t *testing.T) {
	got := CalculateMaterialMetrics(sampleMaterials())

	for name, v := range map[string]float64{
		"recyclable":     got.RecyclablePercentage,
		"locallySourced": got.LocallySourcedPercentage,
		"biodegradable":  got.BiodegradablePercentage,
		"certification":  got.CertificationCoverage,
	} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.LessOrEqual(t, v, 100.0, name)
	}
	assert.LessOrEqual(t, got.ResourceEfficiency, 1.0)
}

func TestCalculateMaterialMetrics_Deterministic(t *testing.T) {
	a := CalculateMaterialMetrics(sampleMaterials())
	b := CalculateMaterialMetrics(sampleMaterials())
	assert.Equal(t, a, b)
}

func TestTopEmitters_TiesKeepInputOrder(t *testing.T) {
	materials := []model.Material{
		{ID: "a", CarbonFootprint: 1, Quantity: 1},
		{ID: "b", CarbonFootprint: 1, Quantity: 1},
		{ID: "c", CarbonFootprint: 1, Quantity: 1},
		{ID: "d", CarbonFootprint: 1, Quantity: 1},
	}
	got := CalculateMaterialMetrics(materials)

	require.Len(t, got.TopEmitters, TopEmitterCount)
	assert.Equal(t, "a", got.TopEmitters[0].ID)
	assert.Equal(t, "b", got.TopEmitters[1].ID)
	assert.Equal(t, "c", got.TopEmitters[2].ID)
	assert.InDelta(t, 25.0, got.TopEmitters[0].Share, 1e-9)
}
