package carbon

import "math"

// ValidatePlant checks that the numeric attributes of p are usable:
// finite, height and width strictly positive, age not negative.
// The returned error is a *ValidationError.
func ValidatePlant(p Plant) error {
	dims := []struct {
		field string
		value float64
	}{
		{"height", p.Height},
		{"width", p.Width},
	}
	for _, d := range dims {
		if err := checkFinite(d.value); err != nil {
			return &ValidationError{PlantID: p.ID, Field: d.field, Err: err}
		}
		if d.value <= 0 {
			return &ValidationError{PlantID: p.ID, Field: d.field, Err: ErrNotPositive}
		}
	}

	if err := checkFinite(p.Age); err != nil {
		return &ValidationError{PlantID: p.ID, Field: "age", Err: err}
	}
	if p.Age < 0 {
		return &ValidationError{PlantID: p.ID, Field: "age", Err: ErrNegative}
	}
	return nil
}

// NewPlant builds a Plant from optional numeric attributes, as decoded from
// JSON or YAML, and validates it. A nil attribute is ErrMissingField.
func NewPlant(id, name string, t PlantType, species string, height, width, age *float64) (Plant, error) {
	fields := []struct {
		name  string
		value *float64
	}{
		{"height", height},
		{"width", width},
		{"age", age},
	}
	for _, f := range fields {
		if f.value == nil {
			return Plant{}, &ValidationError{PlantID: id, Field: f.name, Err: ErrMissingField}
		}
	}

	p := Plant{
		ID:      id,
		Name:    name,
		Type:    t,
		Height:  *height,
		Width:   *width,
		Age:     *age,
		Species: species,
	}
	if err := ValidatePlant(p); err != nil {
		return Plant{}, err
	}
	return p, nil
}

// ValidatePlants returns the first validation failure in plants.
func ValidatePlants(plants []Plant) error {
	for _, p := range plants {
		if err := ValidatePlant(p); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAmount checks a CO2 mass passed to ComputeOffsetEquivalents.
func ValidateAmount(co2Amount float64) error {
	if err := checkFinite(co2Amount); err != nil {
		return &ValidationError{Field: "co2Amount", Err: err}
	}
	if co2Amount < 0 {
		return &ValidationError{Field: "co2Amount", Err: ErrNegative}
	}
	return nil
}

func checkFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNonFinite
	}
	return nil
}

// ValidateFinite reports a computed value that overflowed or became NaN.
// Inputs that pass ValidatePlant can still overflow, e.g. height 1e200.
func ValidateFinite(field string, v float64) error {
	if err := checkFinite(v); err != nil {
		return &ValidationError{Field: field, Err: err}
	}
	return nil
}

type namedValue struct {
	field string
	value float64
}

func checkAllFinite(values []namedValue) error {
	for _, v := range values {
		if err := ValidateFinite(v.field, v.value); err != nil {
			return err
		}
	}
	return nil
}

func equivalentValues(eq OffsetEquivalents) []namedValue {
	return []namedValue{
		{"carMiles", eq.CarMiles},
		{"homeElectricityMonths", eq.HomeElectricityMonths},
		{"treeYears", eq.TreeYears},
		{"flightHours", eq.FlightHours},
	}
}

// ValidateEquivalents checks every field of eq is finite.
func ValidateEquivalents(eq OffsetEquivalents) error {
	return checkAllFinite(equivalentValues(eq))
}

// ValidateResult checks the total, the equivalents and the projection of one
// computation. Predictions grow monotonically so only the last one is checked.
func ValidateResult(result SequestrationResult, eq OffsetEquivalents, projection Projection) error {
	values := append([]namedValue{{"total", result.Total}}, equivalentValues(eq)...)
	if n := len(projection.Predictions); n > 0 {
		values = append(values, namedValue{"predictions", projection.Predictions[n-1].Value})
	}
	return checkAllFinite(values)
}
