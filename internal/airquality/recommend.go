package airquality

// Severity of a health recommendation.
type Severity string

const (
	Safe    Severity = "safe"
	Caution Severity = "caution"
	Warning Severity = "warning"
)

// Recommendation is one piece of health guidance for the current AQI.
type Recommendation struct {
	Kind        string   `json:"kind"`
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Groups      []string `json:"groups"`
}

const (
	exerciseAdvice    = "Light to moderate exercise is safe for most people. Those with respiratory conditions should monitor symptoms and reduce intensity if needed."
	maskAdvice        = "N95 or KN95 masks recommended for sensitive individuals during outdoor activities, especially in high-traffic areas with elevated PM2.5 levels."
	noMaskAdvice      = "Air quality is good, masks not necessary for general population."
	ventilationAdvice = "Indoor air quality is better than outdoor. Keep windows closed during peak pollution hours (8 AM - 12 PM). Use air purifiers if available."
)

// Recommendations returns outdoor, exercise, mask and ventilation guidance for aqi.
func Recommendations(aqi int) []Recommendation {
	outdoor := Recommendation{
		Kind:   "outdoor",
		Groups: []string{"Children", "Elderly", "Respiratory conditions"},
	}
	if d, ok := DescribeAQI(aqi); ok {
		outdoor.Description = d.Implication
	}
	exercise := Recommendation{
		Kind:        "exercise",
		Description: exerciseAdvice,
		Groups:      []string{"Athletes", "Fitness enthusiasts"},
	}
	mask := Recommendation{
		Kind:   "mask",
		Groups: []string{"Sensitive groups"},
	}

	switch {
	case aqi <= 2:
		outdoor.Severity, outdoor.Title = Safe, "Normal Outdoor Activities"
		exercise.Severity, exercise.Title = Safe, "Exercise Precautions"
		mask.Severity, mask.Title, mask.Description = Safe, "Masks Not Required", noMaskAdvice
	case aqi <= 3:
		outdoor.Severity, outdoor.Title = Caution, "Limit Outdoor Activities"
		exercise.Severity, exercise.Title = Caution, "Modify Exercise Routine"
		mask.Severity, mask.Title, mask.Description = Caution, "Consider Wearing Masks", maskAdvice
	default:
		outdoor.Severity, outdoor.Title = Warning, "Avoid Outdoor Activities"
		exercise.Severity, exercise.Title = Caution, "Modify Exercise Routine"
		mask.Severity, mask.Title, mask.Description = Warning, "Consider Wearing Masks", maskAdvice
	}

	return []Recommendation{
		outdoor,
		exercise,
		mask,
		{
			Kind:        "window",
			Severity:    Safe,
			Title:       "Ventilation Guidelines",
			Description: ventilationAdvice,
			Groups:      []string{"All residents"},
		},
	}
}
