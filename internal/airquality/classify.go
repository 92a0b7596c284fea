package airquality

import "github.com/rs/zerolog/log"

// aqiBands maps the 1..5 AQI scale onto the same banding as pollutants.
//
//nolint:gochecknoglobals // read-only lookup table
var aqiBands = Thresholds{Good: 1, Fair: 2, Moderate: 3, Poor: 4}

// ClassifyPollutant returns the status band of a concentration. Unknown
// pollutant types fall back to the PM2.5 thresholds. NaN is very-poor.
func ClassifyPollutant(value float64, t PollutantType) Status {
	limits, ok := ThresholdsFor(t)
	if !ok {
		log.Debug().Str("pollutant", string(t)).Msg("unknown pollutant type, using pm25 thresholds")
	}
	return limits.classify(value)
}

// ClassifyAQI returns the status band of an AQI on the 1..5 scale.
func ClassifyAQI(aqi float64) Status {
	return aqiBands.classify(aqi)
}
