package airquality

// Description is the human readable meaning of an AQI index.
type Description struct {
	Label       string `json:"label"`
	Implication string `json:"implication"`
}

//nolint:gochecknoglobals // read-only lookup table
var descriptions = map[int]Description{
	1: {Label: "Good", Implication: "Air quality is satisfactory, and air pollution poses little or no risk."},
	2: {Label: "Fair", Implication: "Air quality is acceptable. However, there may be a risk for some people."},
	3: {Label: "Moderate", Implication: "Members of sensitive groups may experience health effects."},
	4: {Label: "Poor", Implication: "Everyone may begin to experience health effects."},
	5: {Label: "Very Poor", Implication: "Health alert: Everyone may experience more serious health effects."},
}

// DescribeAQI returns the description of an integer AQI index in 1..5.
func DescribeAQI(aqi int) (Description, bool) {
	d, ok := descriptions[aqi]
	return d, ok
}
