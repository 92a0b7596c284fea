package schema

// Location model of a monitored place with cache priority
type Location struct {
	Id       string
	Lat      float64
	Lon      float64
	Priority int
}

// Components pollutant concentrations in µg/m³
type Components struct {
	CO   float64
	NO   float64
	NO2  float64
	O3   float64
	SO2  float64
	PM25 float64
	PM10 float64
	NH3  float64
}

// Reading model of an air quality measurement for a location
type Reading struct {
	LocationId string
	Priority   int
	Lat        float64
	Lon        float64
	AQI        int
	Components Components
	MeasuredAt int64
}
