package carbon

import "math"

// PredictFutureSequestration compounds current.Total at AnnualGrowthRate for
// years 1..years. A zero horizon yields an empty prediction list; a negative
// one is rejected with ErrInvalidYears.
func PredictFutureSequestration(current SequestrationResult, years int) (Projection, error) {
	if years < 0 {
		return Projection{}, &ValidationError{Field: "years", Err: ErrInvalidYears}
	}

	predictions := make([]Prediction, 0, years)
	for i := 1; i <= years; i++ {
		value := current.Total * math.Pow(1+AnnualGrowthRate, float64(i))
		predictions = append(predictions, Prediction{
			Year:           i,
			Value:          value,
			FormattedValue: FormatKgPerYear(value),
		})
	}

	return Projection{
		Current:     current,
		Predictions: predictions,
	}, nil
}
