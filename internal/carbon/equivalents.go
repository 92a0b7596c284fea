package carbon

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//nolint:gochecknoglobals // message printer is safe for concurrent use
var printer = message.NewPrinter(language.English)

// ComputeOffsetEquivalents converts co2Amount (kg) into car miles, months of
// home electricity, tree-years and flight hours. Only CarMiles is rounded.
func ComputeOffsetEquivalents(co2Amount float64) OffsetEquivalents {
	eq := OffsetEquivalents{
		CarMiles:              roundHalfUp((co2Amount / CarEmissionsKgPerYear) * CarMilesPerYear),
		HomeElectricityMonths: (co2Amount / HomeElectricityKgPerYear) * MonthsPerYear,
		TreeYears:             co2Amount / TreeAbsorptionKgPerYear,
		FlightHours:           co2Amount / FlightEmissionsKgPerHour,
	}
	eq.DisplayText = displayText(eq)
	return eq
}

// roundHalfUp rounds ties toward positive infinity, so -2.5 becomes -2.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func displayText(eq OffsetEquivalents) string {
	for _, v := range []float64{eq.CarMiles, eq.HomeElectricityMonths, eq.TreeYears, eq.FlightHours} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ""
		}
	}

	return printer.Sprintf(
		"Equivalent to driving ~%d miles, %.1f months of home electricity, %.1f tree-years or %.1f flight hours",
		int64(eq.CarMiles), eq.HomeElectricityMonths, eq.TreeYears, eq.FlightHours,
	)
}
