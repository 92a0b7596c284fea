package carbon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeOffsetEquivalents(t *testing.T) {
	tests := []struct {
		name          string
		co2           float64
		wantCarMiles  float64
		wantHomeMonth float64
		wantTreeYears float64
		wantFlightHrs float64
	}{
		{
			name:          "one tree-year",
			co2:           22,
			wantCarMiles:  57, // 57.39 rounded
			wantHomeMonth: 0.0528,
			wantTreeYears: 1,
			wantFlightHrs: 0.022312,
		},
		{
			name:          "one car-year",
			co2:           4600,
			wantCarMiles:  12000,
			wantHomeMonth: 11.04,
			wantTreeYears: 209.090909,
			wantFlightHrs: 4.665314,
		},
		{
			name:          "one metric ton",
			co2:           1000,
			wantCarMiles:  2609, // 2608.70 rounded
			wantHomeMonth: 2.4,
			wantTreeYears: 45.454545,
			wantFlightHrs: 1.014199,
		},
		{
			name: "zero",
			co2:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeOffsetEquivalents(tt.co2)

			assert.Equal(t, tt.wantCarMiles, got.CarMiles)
			assert.InDelta(t, tt.wantHomeMonth, got.HomeElectricityMonths, 1e-6)
			assert.InDelta(t, tt.wantTreeYears, got.TreeYears, 1e-6)
			assert.InDelta(t, tt.wantFlightHrs, got.FlightHours, 1e-6)
		})
	}
}

func TestComputeOffsetEquivalents_TreeYearIsExact(t *testing.T) {
	got := ComputeOffsetEquivalents(TreeAbsorptionKgPerYear)
	assert.Equal(t, 1.0, got.TreeYears)
	assert.Equal(t, BaseRate(Tree), TreeAbsorptionKgPerYear)
}

func TestComputeOffsetEquivalents_DisplayText(t *testing.T) {
	got := ComputeOffsetEquivalents(46000)

	assert.Contains(t, got.DisplayText, "Equivalent to driving ~120,000 miles")
	assert.Contains(t, got.DisplayText, "tree-years")
	assert.Contains(t, got.DisplayText, "flight hours")
}

func TestComputeOffsetEquivalents_NonFinite(t *testing.T) {
	got := ComputeOffsetEquivalents(math.NaN())

	assert.True(t, math.IsNaN(got.CarMiles))
	assert.True(t, math.IsNaN(got.TreeYears))
	assert.Empty(t, got.DisplayText)
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 3.0, roundHalfUp(2.5))
	assert.Equal(t, -2.0, roundHalfUp(-2.5))
	assert.Equal(t, 2.0, roundHalfUp(2.49))
	assert.Equal(t, 0.0, roundHalfUp(0))
}
