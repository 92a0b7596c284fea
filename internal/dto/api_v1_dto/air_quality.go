package api_v1_dto

import (
	"errors"
	"fmt"

	"ecomonitor/internal/airquality"
)

// LocationRequest location with priority
type LocationRequest struct {
	Id       string  `json:"id"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Priority int     `json:"priority"`
}

// AirQualityRequest dto of air quality api
type AirQualityRequest struct {
	Locations []LocationRequest `json:"locations"`
}

// Validate validation of request
func (r AirQualityRequest) Validate() error {
	if r.Locations == nil {
		return errors.New("wrong request, missed locations")
	}
	for _, l := range r.Locations {
		if l.Id == "" {
			return errors.New("wrong request, empty location id")
		}
		if l.Lat < -90 || l.Lat > 90 || l.Lon < -180 || l.Lon > 180 {
			return fmt.Errorf("wrong request, location %q out of range", l.Id)
		}
	}
	return nil
}

// PollutantStatus status of a pollutant value
type PollutantStatus struct {
	Type   string            `json:"type"`
	Value  float64           `json:"value"`
	Status airquality.Status `json:"status"`
}

// Components raw pollutant concentrations in µg/m³
type Components struct {
	CO   float64 `json:"co"`
	NO   float64 `json:"no"`
	NO2  float64 `json:"no2"`
	O3   float64 `json:"o3"`
	SO2  float64 `json:"so2"`
	PM25 float64 `json:"pm25"`
	PM10 float64 `json:"pm10"`
	NH3  float64 `json:"nh3"`
}

// ReadingRow structure for response row
type ReadingRow struct {
	LocationID      string                      `json:"locationId"`
	AQI             int                         `json:"aqi"`
	Status          airquality.Status           `json:"status"`
	Description     string                      `json:"description,omitempty"`
	Implication     string                      `json:"implication,omitempty"`
	Components      Components                  `json:"components"`
	Pollutants      []PollutantStatus           `json:"pollutants"`
	Alerts          []airquality.Alert          `json:"alerts"`
	Recommendations []airquality.Recommendation `json:"recommendations"`
	MeasuredAt      int64                       `json:"measuredAt"`
}

// AirQualityResponse structure for response
type AirQualityResponse struct {
	Rows []ReadingRow `json:"rows"`
}

// PollutantValue raw pollutant value to classify
type PollutantValue struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

// ClassifyRequest dto of classify api
type ClassifyRequest struct {
	Pollutants []PollutantValue `json:"pollutants"`
	AQI        *float64         `json:"aqi"`
}

// Validate validation of request
func (r ClassifyRequest) Validate() error {
	if len(r.Pollutants) == 0 && r.AQI == nil {
		return errors.New("wrong request, nothing to classify")
	}
	return nil
}

// ClassifyResponse structure for response
type ClassifyResponse struct {
	Pollutants []PollutantStatus `json:"pollutants"`
	AQIStatus  airquality.Status `json:"aqiStatus,omitempty"`
}

// ErrorResponse structure for an error
type ErrorResponse struct {
	Error string `json:"error"`
}
