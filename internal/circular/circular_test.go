package circular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carboncalc/internal/model"
)

func ptr(v float64) *float64 { return &v }

// uniform sets every ratio input to v.
func uniform(v float64) Input {
	return Input{
		RecycledContentRatio:   ptr(v),
		RecyclabilityRate:      ptr(v),
		ResourceReuseRate:      ptr(v),
		WasteRecyclingRate:     ptr(v),
		BiodegradableContent:   ptr(v),
		ByproductSynergy:       ptr(v),
		DesignForDisassembly:   ptr(v),
		RepairabilityScore:     ptr(v),
		RenewableMaterialRatio: ptr(v),
	}
}

func TestCalculateCircularEconomyMetrics_Defaults(t *testing.T) {
	got := CalculateCircularEconomyMetrics(Input{})

	assert.InDelta(t, DefaultRecycledContentRatio, got.RecycledContentRatio, 1e-9)
	assert.InDelta(t, DefaultProductLifespan, got.ProductLifespan, 1e-9)
	assert.InDelta(t, 0.6*0.5+0.4*0.3, got.ClosedLoopPotential, 1e-9)
	assert.InDelta(t, 0.3*0.2+0.3*0.5+0.2*0.1+0.1*0.1+0.1*0.05, got.MaterialCircularityIndex, 1e-9)
	assert.InDelta(t, 0.8*0.4+0.2*0.1, got.WasteDiversionRate, 1e-9)
	assert.InDelta(t, 0.5*0.3+0.5*0.4, got.RemanufacturingPotential, 1e-9)
}

func TestCalculateCircularEconomyMetrics_RatiosBounded(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{"all above one", uniform(4)},
		{"all negative", uniform(-2)},
		{"defaults", Input{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateCircularEconomyMetrics(tt.in)
			for name, v := range map[string]float64{
				"recycledContentRatio":     got.RecycledContentRatio,
				"recyclabilityRate":        got.RecyclabilityRate,
				"resourceReuseRate":        got.ResourceReuseRate,
				"wasteRecyclingRate":       got.WasteRecyclingRate,
				"biodegradableContent":     got.BiodegradableContent,
				"byproductSynergy":         got.ByproductSynergy,
				"designForDisassembly":     got.DesignForDisassembly,
				"repairabilityScore":       got.RepairabilityScore,
				"renewableMaterialRatio":   got.RenewableMaterialRatio,
				"closedLoopPotential":      got.ClosedLoopPotential,
				"materialCircularityIndex": got.MaterialCircularityIndex,
				"wasteDiversionRate":       got.WasteDiversionRate,
				"remanufacturingPotential": got.RemanufacturingPotential,
			} {
				assert.GreaterOrEqual(t, v, 0.0, name)
				assert.LessOrEqual(t, v, 1.0, name)
			}
		})
	}
}

func TestCalculateCircularEconomyMetrics_ProductLifespan(t *testing.T) {
	assert.InDelta(t, 80.0, CalculateCircularEconomyMetrics(Input{ProductLifespan: ptr(80)}).ProductLifespan, 1e-9)
	assert.InDelta(t, DefaultProductLifespan,
		CalculateCircularEconomyMetrics(Input{ProductLifespan: ptr(-3)}).ProductLifespan, 1e-9)
}

func TestCalculateMaterialCircularityIndex(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Zero(t, CalculateMaterialCircularityIndex(nil))
	})

	t.Run("quantity weighted", func(t *testing.T) {
		materials := []model.Material{
			{
				Name:             "Recycled steel",
				Quantity:         3,
				RecycledContent:  ptr(100),
				RenewableContent: ptr(0),
				Lifespan:         ptr(100),
				Recyclability:    ptr(100),
			},
			{Name: "Adhesive", Quantity: 1},
		}
		// steel: input 0.7, use 1, output 0.7 -> 0.21+0.2+0.35 = 0.76
		// adhesive: input 0, use 0.5, output 0 -> 0.1
		want := (0.76*3 + 0.1*1) / 4 * 100
		assert.InDelta(t, want, CalculateMaterialCircularityIndex(materials), 1e-9)
	})

	t.Run("recyclable flag and biodegradable", func(t *testing.T) {
		materials := []model.Material{{
			Name:          "Timber",
			Quantity:      2,
			Lifespan:      ptr(25),
			Recyclable:    model.Bool(true),
			Biodegradable: model.Bool(true),
		}}
		// input 0, use 0.5, output 0.7+0.3 = 1 -> 0.1+0.5
		assert.InDelta(t, 60.0, CalculateMaterialCircularityIndex(materials), 1e-9)
	})

	t.Run("bounded", func(t *testing.T) {
		materials := []model.Material{{
			Quantity:         1,
			RecycledContent:  ptr(300),
			RenewableContent: ptr(300),
			Lifespan:         ptr(500),
			Recyclability:    ptr(300),
			Biodegradable:    model.Bool(true),
		}}
		assert.InDelta(t, 100.0, CalculateMaterialCircularityIndex(materials), 1e-9)
	})
}

func TestInputFromMaterials(t *testing.T) {
	assert.Equal(t, Input{}, InputFromMaterials(nil))

	in := InputFromMaterials([]model.Material{
		{RecycledContent: ptr(40), Recyclable: model.Bool(true), Lifespan: ptr(60)},
		{RecycledContent: ptr(20), Recyclable: model.Bool(false), Biodegradable: model.Bool(true)},
	})

	require.NotNil(t, in.RecycledContentRatio)
	assert.InDelta(t, 0.3, *in.RecycledContentRatio, 1e-9)
	require.NotNil(t, in.RecyclabilityRate)
	assert.InDelta(t, 0.5, *in.RecyclabilityRate, 1e-9)
	require.NotNil(t, in.BiodegradableContent)
	assert.InDelta(t, 1.0, *in.BiodegradableContent, 1e-9)
	require.NotNil(t, in.ProductLifespan)
	assert.InDelta(t, 60.0, *in.ProductLifespan, 1e-9)
	assert.Nil(t, in.RenewableMaterialRatio)
	assert.Nil(t, in.ResourceReuseRate)
}

func TestGenerateCircularEconomyRecommendations(t *testing.T) {
	t.Run("defaults fire every rule", func(t *testing.T) {
		got := GenerateCircularEconomyRecommendations(CalculateCircularEconomyMetrics(Input{}))
		require.Len(t, got, len(rules))
		for _, r := range got {
			assert.NotEmpty(t, r.PotentialBenefits)
		}
	})

	t.Run("strong project gets fallback only", func(t *testing.T) {
		got := GenerateCircularEconomyRecommendations(CalculateCircularEconomyMetrics(uniform(1)))
		require.Len(t, got, 1)
		assert.Equal(t, fallbackRecommendation(), got[0])
	})

	t.Run("fallback appended below three", func(t *testing.T) {
		in := uniform(1)
		in.ResourceReuseRate = ptr(0.2)
		got := GenerateCircularEconomyRecommendations(CalculateCircularEconomyMetrics(in))
		require.Len(t, got, 2)
		assert.Equal(t, rules[0].rec.Recommendation, got[0].Recommendation)
		assert.Equal(t, fallbackRecommendation().Recommendation, got[1].Recommendation)
	})

	t.Run("results do not alias the rule table", func(t *testing.T) {
		got := GenerateCircularEconomyRecommendations(CalculateCircularEconomyMetrics(Input{}))
		got[0].PotentialBenefits[0] = "mutated"
		assert.NotEqual(t, "mutated", rules[0].rec.PotentialBenefits[0])
	})
}
