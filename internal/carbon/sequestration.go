package carbon

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// baseRates holds the annual sequestration of a mature plant per type, kg CO2/year.
//
//nolint:gochecknoglobals // read-only lookup table
var baseRates = map[PlantType]float64{
	Tree:      22,
	Shrub:     8,
	Herb:      2,
	Succulent: 1,
	Fern:      3,
	Vine:      4,
}

// speciesFactors holds per-species efficiency multipliers.
//
//nolint:gochecknoglobals // read-only lookup table
var speciesFactors = map[string]float64{
	"Ficus elastica":          1.2, // rubber plant
	"Sansevieria trifasciata": 1.1, // snake plant
	"Chlorophytum comosum":    1.0, // spider plant
	"Spathiphyllum wallisii":  1.3, // peace lily
	"Epipremnum aureum":       1.0, // pothos
	"Aloe barbadensis miller": 0.8, // aloe vera
	"Nephrolepis exaltata":    1.1, // boston fern
}

// BaseRate returns the base rate for t, or DefaultBaseRate for an unknown type.
func BaseRate(t PlantType) float64 {
	if rate, ok := baseRates[t]; ok {
		return rate
	}
	return DefaultBaseRate
}

// SpeciesFactor returns the efficiency multiplier for species, or
// DefaultSpeciesFactor when the species is not in the table.
func SpeciesFactor(species string) float64 {
	if factor, ok := speciesFactors[species]; ok {
		return factor
	}
	return DefaultSpeciesFactor
}

// KnownSpecies lists the species with a dedicated efficiency factor, sorted.
func KnownSpecies() []string {
	return slices.Sorted(maps.Keys(speciesFactors))
}

// SizeMultiplier scales sequestration by canopy footprint.
func SizeMultiplier(height, width float64) float64 {
	return (height * width) / SizeNormalization
}

// AgeFactor ramps linearly from 0 at age 0 to 1 at MaturityAgeYears and stays there.
func AgeFactor(age float64) float64 {
	return math.Min(age/MaturityAgeYears, 1)
}

// ComputePlantSequestration estimates the annual sequestration of a single
// plant in kg CO2/year:
//
//	baseRate × (height × width / 10) × min(age / 10, 1) × speciesFactor
//
// It performs no validation. Non-finite attributes propagate into the
// result as NaN or Inf; call ValidatePlant first when that matters.
func ComputePlantSequestration(p Plant) float64 {
	return BaseRate(p.Type) * SizeMultiplier(p.Height, p.Width) * AgeFactor(p.Age) * SpeciesFactor(p.Species)
}

// ComputeTotalSequestration sums the sequestration of plants and keeps a
// per-plant breakdown in input order.
func ComputeTotalSequestration(plants []Plant) SequestrationResult {
	breakdown := make([]PlantSequestration, 0, len(plants))
	total := 0.0
	for _, p := range plants {
		value := ComputePlantSequestration(p)
		breakdown = append(breakdown, PlantSequestration{
			PlantID:       p.ID,
			PlantName:     p.Name,
			Sequestration: value,
		})
		total += value
	}

	return SequestrationResult{
		Total:          total,
		Breakdown:      breakdown,
		FormattedTotal: FormatKgPerYear(total),
	}
}

// FormatKgPerYear renders v with two decimals and the unit suffix.
func FormatKgPerYear(v float64) string {
	return fmt.Sprintf("%.2f%s", v, UnitSuffix)
}
