package greenops

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carboncalc/internal/logging"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name          string
		input         CarbonInput
		wantKg        float64
		wantIsEmpty   bool
		wantErr       error
		wantDisplay   string
		wantCompact   string
		wantSeedlings float64
	}{
		{
			name:          "project footprint in kg",
			input:         CarbonInput{Value: 150, Unit: "kg"},
			wantKg:        150,
			wantSeedlings: 2.5,
			wantDisplay:   "Equivalent to driving ~382 miles or growing ~3 tree seedlings for 10 years",
			wantCompact:   "(≈ 382 mi, 3 seedlings)",
		},
		{
			name:          "tonnes normalized",
			input:         CarbonInput{Value: 0.15, Unit: "tCO2e"},
			wantKg:        150,
			wantSeedlings: 2.5,
		},
		{
			name:          "grams normalized",
			input:         CarbonInput{Value: 150000, Unit: "g"},
			wantKg:        150,
			wantSeedlings: 2.5,
		},
		{
			name:        "below threshold is empty",
			input:       CarbonInput{Value: 0.5, Unit: "kg"},
			wantKg:      0.5,
			wantIsEmpty: true,
		},
		{
			name:        "zero is empty",
			input:       CarbonInput{Value: 0, Unit: "kg"},
			wantIsEmpty: true,
		},
		{
			name:        "negative value",
			input:       CarbonInput{Value: -10, Unit: "kg"},
			wantIsEmpty: true,
			wantErr:     ErrNegativeValue,
		},
		{
			name:        "unknown unit",
			input:       CarbonInput{Value: 10, Unit: "furlongs"},
			wantIsEmpty: true,
			wantErr:     ErrInvalidUnit,
		},
		{
			name:        "NaN",
			input:       CarbonInput{Value: math.NaN(), Unit: "kg"},
			wantIsEmpty: true,
			wantErr:     ErrCalculationOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, got.IsEmpty)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIsEmpty, got.IsEmpty)
			assert.InDelta(t, tt.wantKg, got.InputKg, 1e-9)
			if tt.wantIsEmpty {
				assert.Empty(t, got.Results)
				return
			}

			require.Len(t, got.Results, 4)
			assert.Equal(t, EquivalencyMilesDriven, got.Results[0].Type)
			assert.InDelta(t, tt.wantKg/EPAMilesDrivenFactor, got.Results[0].Value, 1e-9)
			assert.InDelta(t, tt.wantSeedlings, got.Results[1].Value, 1e-9)
			assert.Equal(t, EquivalencyGasolineLitres, got.Results[3].Type)
			if tt.wantDisplay != "" {
				assert.Equal(t, tt.wantDisplay, got.DisplayText)
				assert.Equal(t, tt.wantCompact, got.CompactText)
			}
		})
	}
}

func TestCalculate_LargeValuesAbbreviated(t *testing.T) {
	got, err := Calculate(CarbonInput{Value: 1000, Unit: "t"})
	require.NoError(t, err)

	// 1,000,000 kg / 0.393 is ~2.5 million miles.
	assert.Equal(t, "~2.5 million", got.Results[0].FormattedValue)
	assert.Contains(t, got.DisplayText, "~2.5 million miles")
}

func TestForFootprint(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriterLogger(&buf, logging.Config{Level: "warn"})
	ctx := logger.WithContext(context.Background())

	out := ForFootprint(ctx, 530)
	assert.False(t, out.IsEmpty)
	assert.Zero(t, buf.Len())

	out = ForFootprint(ctx, -1)
	assert.True(t, out.IsEmpty)
	assert.Contains(t, buf.String(), "equivalency calculation failed")
	assert.Contains(t, buf.String(), `"component":"greenops"`)
}

func TestEquivalencyType(t *testing.T) {
	assert.Equal(t, "MilesDriven", EquivalencyMilesDriven.String())
	assert.Equal(t, "HomeYears", EquivalencyHomeYears.String())
	assert.Equal(t, "EquivalencyType(42)", EquivalencyType(42).String())

	data, err := json.Marshal(EquivalencyResult{Type: EquivalencyTreeSeedlings})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"TreeSeedlings"`)
}

func TestEquivalencyOutput_JSONRoundTrip(t *testing.T) {
	out := ForFootprint(context.Background(), 1500)
	require.False(t, out.IsEmpty)
	require.NotEmpty(t, out.Results)

	data, err := json.Marshal(out)
	require.NoError(t, err)

	var decoded EquivalencyOutput
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, out, decoded)
}

func TestEquivalencyType_UnmarshalText(t *testing.T) {
	for _, want := range []EquivalencyType{
		EquivalencyMilesDriven,
		EquivalencyTreeSeedlings,
		EquivalencyHomeYears,
		EquivalencyGasolineLitres,
	} {
		var got EquivalencyType
		require.NoError(t, got.UnmarshalText([]byte(want.String())))
		assert.Equal(t, want, got)
	}

	var e EquivalencyType
	err := e.UnmarshalText([]byte("Flights"))
	require.ErrorIs(t, err, ErrUnknownEquivalencyType)

	err = json.Unmarshal([]byte(`{"type":"EquivalencyType(42)"}`), &EquivalencyResult{})
	require.ErrorIs(t, err, ErrUnknownEquivalencyType)
}
