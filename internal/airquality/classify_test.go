package airquality

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPollutant(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		pollutant PollutantType
		want      Status
	}{
		{name: "pm25 at good cutoff", value: 12, pollutant: PM25, want: Good},
		{name: "pm25 just above good", value: 13, pollutant: PM25, want: Fair},
		{name: "pm25 at fair cutoff", value: 35, pollutant: PM25, want: Fair},
		{name: "pm25 moderate", value: 55, pollutant: PM25, want: Moderate},
		{name: "pm25 poor", value: 150, pollutant: PM25, want: Poor},
		{name: "pm25 very poor", value: 150.01, pollutant: PM25, want: VeryPoor},
		{name: "pm10 good", value: 25, pollutant: PM10, want: Good},
		{name: "pm10 moderate", value: 68, pollutant: PM10, want: Moderate},
		{name: "o3 fair", value: 61, pollutant: O3, want: Fair},
		{name: "o3 very poor", value: 241, pollutant: O3, want: VeryPoor},
		{name: "no2 poor", value: 120, pollutant: NO2, want: Poor},
		{name: "so2 moderate", value: 100, pollutant: SO2, want: Moderate},
		{name: "negative is good", value: -5, pollutant: SO2, want: Good},
		{name: "unknown type uses pm25", value: 13, pollutant: "co", want: Fair},
		{name: "empty type uses pm25", value: 56, pollutant: "", want: Poor},
		{name: "NaN is very poor", value: math.NaN(), pollutant: PM25, want: VeryPoor},
		{name: "+Inf is very poor", value: math.Inf(1), pollutant: NO2, want: VeryPoor},
		{name: "-Inf is good", value: math.Inf(-1), pollutant: NO2, want: Good},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPollutant(tt.value, tt.pollutant))
		})
	}
}

func TestClassifyPollutant_Monotonic(t *testing.T) {
	for _, p := range []PollutantType{PM25, PM10, O3, NO2, SO2, "unknown"} {
		prev := -1
		for v := 0.0; v <= 400; v += 0.25 {
			sev := ClassifyPollutant(v, p).Severity()
			assert.GreaterOrEqual(t, sev, prev, "%s at %v", p, v)
			prev = sev
		}
	}
}

func TestClassifyAQI(t *testing.T) {
	tests := []struct {
		aqi  float64
		want Status
	}{
		{aqi: 0, want: Good},
		{aqi: 1, want: Good},
		{aqi: 1.5, want: Fair},
		{aqi: 2, want: Fair},
		{aqi: 3, want: Moderate},
		{aqi: 4, want: Poor},
		{aqi: 5, want: VeryPoor},
		{aqi: 6, want: VeryPoor},
		{aqi: math.NaN(), want: VeryPoor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyAQI(tt.aqi), "aqi %v", tt.aqi)
	}
}

func TestThresholdsFor(t *testing.T) {
	got, ok := ThresholdsFor(PM10)
	assert.True(t, ok)
	assert.Equal(t, Thresholds{Good: 25, Fair: 50, Moderate: 90, Poor: 250}, got)

	got, ok = ThresholdsFor("nh3")
	assert.False(t, ok)
	assert.Equal(t, Thresholds{Good: 12, Fair: 35, Moderate: 55, Poor: 150}, got)
}

func TestStatus_Severity(t *testing.T) {
	assert.Equal(t, 0, Good.Severity())
	assert.Equal(t, 1, Fair.Severity())
	assert.Equal(t, 2, Moderate.Severity())
	assert.Equal(t, 3, Poor.Severity())
	assert.Equal(t, 4, VeryPoor.Severity())
	assert.Equal(t, 4, Status("bogus").Severity())
}
