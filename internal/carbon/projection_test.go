package carbon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictFutureSequestration(t *testing.T) {
	current := SequestrationResult{Total: 100, Breakdown: []PlantSequestration{}, FormattedTotal: "100.00 kg CO2/year"}

	tests := []struct {
		name  string
		years int
	}{
		{name: "one year", years: 1},
		{name: "five years", years: 5},
		{name: "thirty years", years: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PredictFutureSequestration(current, tt.years)
			require.NoError(t, err)

			assert.Equal(t, current, got.Current)
			require.Len(t, got.Predictions, tt.years)
			for i, p := range got.Predictions {
				assert.Equal(t, i+1, p.Year)
				want := current.Total * math.Pow(1.05, float64(i+1))
				assert.InDelta(t, want, p.Value, 1e-9)
				assert.Equal(t, FormatKgPerYear(p.Value), p.FormattedValue)
			}

			last := got.Predictions[tt.years-1]
			assert.InDelta(t, current.Total*math.Pow(1.05, float64(tt.years)), last.Value, 1e-9)
		})
	}
}

func TestPredictFutureSequestration_Values(t *testing.T) {
	got, err := PredictFutureSequestration(SequestrationResult{Total: 100}, 2)
	require.NoError(t, err)

	assert.Equal(t, "105.00 kg CO2/year", got.Predictions[0].FormattedValue)
	assert.Equal(t, "110.25 kg CO2/year", got.Predictions[1].FormattedValue)
}

func TestPredictFutureSequestration_ZeroYears(t *testing.T) {
	got, err := PredictFutureSequestration(SequestrationResult{Total: 12.5}, 0)
	require.NoError(t, err)

	assert.NotNil(t, got.Predictions)
	assert.Empty(t, got.Predictions)
	assert.Equal(t, 12.5, got.Current.Total)
}

func TestPredictFutureSequestration_NegativeYears(t *testing.T) {
	_, err := PredictFutureSequestration(SequestrationResult{Total: 1}, -1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYears)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "years", vErr.Field)
}
