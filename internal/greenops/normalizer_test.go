package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeToKg(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		unit    string
		want    float64
		wantErr error
	}{
		{"kilograms", 42, "kg", 42, nil},
		{"kgCO2e mixed case", 42, "KgCO2e", 42, nil},
		{"grams", 2500, "g", 2.5, nil},
		{"tonnes", 1.5, "tonnes", 1500, nil},
		{"tonne with suffix", 2, "tCO2e", 2000, nil},
		{"pounds", 10, "lbs", 4.53592, nil},
		{"short tons", 1, "short_ton", 907.18474, nil},
		{"padded unit", 3, "  kg ", 3, nil},
		{"zero", 0, "kg", 0, nil},
		{"unknown unit", 1, "gallons", 0, ErrInvalidUnit},
		{"empty unit", 1, "", 0, ErrInvalidUnit},
		{"negative", -1, "kg", 0, ErrNegativeValue},
		{"infinite", math.Inf(1), "kg", 0, ErrCalculationOverflow},
		{"overflow after conversion", math.MaxFloat64, "t", 0, ErrCalculationOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeToKg(tt.value, tt.unit)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestIsRecognizedUnit(t *testing.T) {
	for _, u := range []string{"g", "kg", "t", "tonne", "lb", "pounds", "gCO2e", "short_tons"} {
		assert.True(t, IsRecognizedUnit(u), u)
	}
	for _, u := range []string{"", "m3", "kWh", "co2e"} {
		assert.False(t, IsRecognizedUnit(u), u)
	}
}
