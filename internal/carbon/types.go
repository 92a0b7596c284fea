package carbon

// PlantType is the category tag of a plant.
type PlantType string

const (
	Tree      PlantType = "tree"
	Shrub     PlantType = "shrub"
	Herb      PlantType = "herb"
	Succulent PlantType = "succulent"
	Fern      PlantType = "fern"
	Vine      PlantType = "vine"
)

// Plant describes one plant. Height and width are meters, age is years.
type Plant struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Type    PlantType `json:"type"`
	Height  float64   `json:"height"`
	Width   float64   `json:"width"`
	Age     float64   `json:"age"`
	Species string    `json:"species"`
}

// PlantSequestration is one breakdown entry of a SequestrationResult.
type PlantSequestration struct {
	PlantID       string  `json:"plantId"`
	PlantName     string  `json:"plantName"`
	Sequestration float64 `json:"sequestration"`
}

// SequestrationResult is the aggregate over a plant collection, in kg CO2/year.
// Breakdown has one entry per input plant, in input order.
type SequestrationResult struct {
	Total          float64              `json:"total"`
	Breakdown      []PlantSequestration `json:"breakdown"`
	FormattedTotal string               `json:"formattedTotal"`
}

// OffsetEquivalents projects a CO2 mass onto everyday reference frames.
type OffsetEquivalents struct {
	CarMiles              float64 `json:"carMiles"`
	HomeElectricityMonths float64 `json:"homeElectricityMonths"`
	TreeYears             float64 `json:"treeYears"`
	FlightHours           float64 `json:"flightHours"`
	DisplayText           string  `json:"displayText,omitempty"`
}

// Prediction is the projected sequestration for one future year.
type Prediction struct {
	Year           int     `json:"year"`
	Value          float64 `json:"value"`
	FormattedValue string  `json:"formattedValue"`
}

// Projection pairs the current result with its yearly predictions.
type Projection struct {
	Current     SequestrationResult `json:"current"`
	Predictions []Prediction        `json:"predictions"`
}
