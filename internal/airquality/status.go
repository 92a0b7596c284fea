package airquality

// Status is a discrete air quality band.
type Status string

const (
	Good     Status = "good"
	Fair     Status = "fair"
	Moderate Status = "moderate"
	Poor     Status = "poor"
	VeryPoor Status = "very-poor"
)

// Severity ranks s from 0 (good) to 4 (very-poor). Unknown values rank as very-poor.
func (s Status) Severity() int {
	switch s {
	case Good:
		return 0
	case Fair:
		return 1
	case Moderate:
		return 2
	case Poor:
		return 3
	default:
		return 4
	}
}

// PollutantType identifies a pollutant with its own threshold table.
type PollutantType string

const (
	PM25 PollutantType = "pm25"
	PM10 PollutantType = "pm10"
	O3   PollutantType = "o3"
	NO2  PollutantType = "no2"
	SO2  PollutantType = "so2"
)

// Thresholds are the inclusive upper bounds of the first four bands.
type Thresholds struct {
	Good     float64 `json:"good"`
	Fair     float64 `json:"fair"`
	Moderate float64 `json:"moderate"`
	Poor     float64 `json:"poor"`
}

// concentration bands in µg/m³
//
//nolint:gochecknoglobals // read-only lookup table
var thresholds = map[PollutantType]Thresholds{
	PM25: {Good: 12, Fair: 35, Moderate: 55, Poor: 150},
	PM10: {Good: 25, Fair: 50, Moderate: 90, Poor: 250},
	O3:   {Good: 60, Fair: 100, Moderate: 140, Poor: 240},
	NO2:  {Good: 20, Fair: 40, Moderate: 70, Poor: 120},
	SO2:  {Good: 20, Fair: 50, Moderate: 100, Poor: 200},
}

// ThresholdsFor returns the table for t. Unknown types get the PM2.5 table and ok=false.
func ThresholdsFor(t PollutantType) (Thresholds, bool) {
	limits, ok := thresholds[t]
	if !ok {
		return thresholds[PM25], false
	}
	return limits, true
}

// classify places value into the bands of limits.
func (limits Thresholds) classify(value float64) Status {
	switch {
	case value <= limits.Good:
		return Good
	case value <= limits.Fair:
		return Fair
	case value <= limits.Moderate:
		return Moderate
	case value <= limits.Poor:
		return Poor
	default:
		return VeryPoor
	}
}
