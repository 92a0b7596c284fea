package api_v1_dto

import (
	"errors"
	"fmt"

	"ecomonitor/internal/carbon"
)

// PlantRequest plant descriptor of an api request, numeric fields are required
type PlantRequest struct {
	Id      string   `json:"id"`
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Height  *float64 `json:"height"`
	Width   *float64 `json:"width"`
	Age     *float64 `json:"age"`
	Species string   `json:"species"`
}

// ToModel converts and validates a plant
func (p PlantRequest) ToModel() (carbon.Plant, error) {
	return carbon.NewPlant(p.Id, p.Name, carbon.PlantType(p.Type), p.Species, p.Height, p.Width, p.Age)
}

// ToModels converts a list of plants keeping order
func ToModels(plants []PlantRequest) ([]carbon.Plant, error) {
	result := make([]carbon.Plant, 0, len(plants))
	for _, p := range plants {
		plant, err := p.ToModel()
		if err != nil {
			return nil, err
		}
		result = append(result, plant)
	}
	return result, nil
}

// SequestrationRequest dto of sequestration api
type SequestrationRequest struct {
	Plants []PlantRequest `json:"plants"`
	Years  int            `json:"years"`
}

// Validate validation of request
func (r SequestrationRequest) Validate(maxYears int) error {
	if r.Plants == nil {
		return errors.New("wrong request, missed plants")
	}
	if r.Years < 0 || r.Years > maxYears {
		return fmt.Errorf("wrong request, years must be in [0, %d]", maxYears)
	}
	return nil
}

// SequestrationResponse total, breakdown, equivalents and projection
type SequestrationResponse struct {
	Total          float64                     `json:"total"`
	Breakdown      []carbon.PlantSequestration `json:"breakdown"`
	FormattedTotal string                      `json:"formattedTotal"`
	Equivalents    carbon.OffsetEquivalents    `json:"equivalents"`
	Predictions    []carbon.Prediction         `json:"predictions"`
}

// CollectionRequest named group of plants
type CollectionRequest struct {
	Id     string         `json:"id"`
	Plants []PlantRequest `json:"plants"`
}

// BatchRequest dto of batch sequestration api
type BatchRequest struct {
	Collections []CollectionRequest `json:"collections"`
}

// Validate validation of request
func (r BatchRequest) Validate() error {
	if r.Collections == nil {
		return errors.New("wrong request, missed collections")
	}
	return nil
}

// ToModel converts and validates all collections
func (r BatchRequest) ToModel() ([]carbon.Collection, error) {
	result := make([]carbon.Collection, 0, len(r.Collections))
	for _, c := range r.Collections {
		plants, err := ToModels(c.Plants)
		if err != nil {
			return nil, fmt.Errorf("collection %q: %w", c.Id, err)
		}
		result = append(result, carbon.Collection{ID: c.Id, Plants: plants})
	}
	return result, nil
}

// BatchResponse per collection totals
type BatchResponse struct {
	Collections []carbon.CollectionResult `json:"collections"`
}

// EquivalentsRequest dto of equivalents api
type EquivalentsRequest struct {
	CO2Amount *float64 `json:"co2Amount"`
}

// Validate validation of request
func (r EquivalentsRequest) Validate() error {
	if r.CO2Amount == nil {
		return &carbon.ValidationError{Field: "co2Amount", Err: carbon.ErrMissingField}
	}
	return carbon.ValidateAmount(*r.CO2Amount)
}
