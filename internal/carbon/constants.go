package carbon

// Reference constants for offset equivalents. Each equivalent is the input
// mass projected onto one of these real-world averages.
const (
	// CarEmissionsKgPerYear is the annual CO2 output of an average passenger car (4.6 t).
	CarEmissionsKgPerYear = 4600.0

	// CarMilesPerYear is the annual mileage assumed for that car.
	CarMilesPerYear = 12000.0

	// HomeElectricityKgPerYear is the annual CO2 output of average home electricity use.
	HomeElectricityKgPerYear = 5000.0

	// MonthsPerYear converts a fraction of a year into months.
	MonthsPerYear = 12.0

	// TreeAbsorptionKgPerYear is the CO2 absorbed by one mature tree in a year.
	// It equals the tree base rate so that 22 kg is exactly one tree-year.
	TreeAbsorptionKgPerYear = 22.0

	// FlightEmissionsKgPerHour is the CO2 output of an average flight per hour.
	FlightEmissionsKgPerHour = 986.0
)

// Growth model constants.
const (
	// AnnualGrowthRate is the compounding rate applied by PredictFutureSequestration.
	AnnualGrowthRate = 0.05

	// SizeNormalization divides height x width into the size multiplier.
	SizeNormalization = 10.0

	// MaturityAgeYears is the age at which a plant reaches full capacity.
	MaturityAgeYears = 10.0

	// DefaultBaseRate applies to plant types missing from the base rate table.
	DefaultBaseRate = 5.0

	// DefaultSpeciesFactor applies to species missing from the species table.
	DefaultSpeciesFactor = 1.0
)

// UnitSuffix is appended to every formatted sequestration value.
const UnitSuffix = " kg CO2/year"
