package airquality

// Metric names a measured quantity an alert can watch.
type Metric string

const (
	MetricPM25  Metric = "pm25"
	MetricPM10  Metric = "pm10"
	MetricOzone Metric = "o3"
	MetricCO2   Metric = "co2"
)

// AlertRule fires when its metric rises above Threshold.
type AlertRule struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Metric    Metric  `json:"metric"`
	Threshold float64 `json:"threshold"`
	Unit      string  `json:"unit"`
	Enabled   bool    `json:"enabled"`
}

// Alert is a triggered rule with the value that triggered it.
type Alert struct {
	Rule  AlertRule `json:"rule"`
	Value float64   `json:"value"`
}

// DefaultAlerts returns the stock alert rules. Ozone is off by default.
func DefaultAlerts() []AlertRule {
	return []AlertRule{
		{ID: 1, Name: "PM2.5 Alert", Metric: MetricPM25, Threshold: 35, Unit: "µg/m³", Enabled: true},
		{ID: 2, Name: "PM10 Alert", Metric: MetricPM10, Threshold: 50, Unit: "µg/m³", Enabled: true},
		{ID: 3, Name: "Ozone Alert", Metric: MetricOzone, Threshold: 70, Unit: "ppb", Enabled: false},
		{ID: 4, Name: "CO₂ Alert", Metric: MetricCO2, Threshold: 450, Unit: "ppm", Enabled: true},
	}
}

// EvaluateAlerts returns the enabled rules whose metric value exceeds the
// threshold, in rule order. Metrics absent from values never trigger.
func EvaluateAlerts(rules []AlertRule, values map[Metric]float64) []Alert {
	triggered := make([]Alert, 0)
	for _, rule := range rules {
		if !rule.Enabled {
			continue
		}
		v, ok := values[rule.Metric]
		if !ok || !(v > rule.Threshold) {
			continue
		}
		triggered = append(triggered, Alert{Rule: rule, Value: v})
	}
	return triggered
}
