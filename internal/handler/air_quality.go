package handler

import (
	"net/http"
	"time"

	"ecomonitor/internal/airquality"
	"ecomonitor/internal/dto/api_v1_dto"
	"ecomonitor/internal/schema"

	"github.com/rs/zerolog/log"
)

// AirQuality serves POST /api/v1/air-quality
func (h *Handler) AirQuality(w http.ResponseWriter, r *http.Request) {
	var request api_v1_dto.AirQualityRequest
	if !decode(w, r, &request) {
		return
	}

	if err := request.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	reqStart := time.Now()
	result, err := h.readingGetter.Get(ctx, toModel(request.Locations))
	latency := time.Since(reqStart)

	log.Info().Str("latency", latency.String()).Int("locations", len(request.Locations)).Msg("get latency")

	if err != nil {
		log.Error().Err(err).Msg("couldn't get readings")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, api_v1_dto.AirQualityResponse{Rows: convert(result)})
}

// Classify serves POST /api/v1/classify
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	var request api_v1_dto.ClassifyRequest
	if !decode(w, r, &request) {
		return
	}

	if err := request.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	response := api_v1_dto.ClassifyResponse{
		Pollutants: make([]api_v1_dto.PollutantStatus, 0, len(request.Pollutants)),
	}
	for _, p := range request.Pollutants {
		response.Pollutants = append(response.Pollutants, api_v1_dto.PollutantStatus{
			Type:   p.Type,
			Value:  p.Value,
			Status: airquality.ClassifyPollutant(p.Value, airquality.PollutantType(p.Type)),
		})
	}
	if request.AQI != nil {
		response.AQIStatus = airquality.ClassifyAQI(*request.AQI)
	}

	writeJSON(w, http.StatusOK, response)
}

func toModel(locations []api_v1_dto.LocationRequest) []schema.Location {
	result := make([]schema.Location, 0, len(locations))

	for _, val := range locations {
		result = append(result, schema.Location{
			Id:       val.Id,
			Lat:      val.Lat,
			Lon:      val.Lon,
			Priority: val.Priority,
		})
	}
	return result
}

func convert(readings []schema.Reading) []api_v1_dto.ReadingRow {
	rules := airquality.DefaultAlerts()

	result := make([]api_v1_dto.ReadingRow, 0, len(readings))
	for _, reading := range readings {
		row := api_v1_dto.ReadingRow{
			LocationID:      reading.LocationId,
			AQI:             reading.AQI,
			Status:          airquality.ClassifyAQI(float64(reading.AQI)),
			Components:      api_v1_dto.Components(reading.Components),
			Pollutants:      pollutants(reading.Components),
			Recommendations: airquality.Recommendations(reading.AQI),
			MeasuredAt:      reading.MeasuredAt,
			Alerts: airquality.EvaluateAlerts(rules, map[airquality.Metric]float64{
				airquality.MetricPM25:  reading.Components.PM25,
				airquality.MetricPM10:  reading.Components.PM10,
				airquality.MetricOzone: reading.Components.O3,
			}),
		}
		if d, ok := airquality.DescribeAQI(reading.AQI); ok {
			row.Description = d.Label
			row.Implication = d.Implication
		}
		result = append(result, row)
	}
	return result
}

func pollutants(c schema.Components) []api_v1_dto.PollutantStatus {
	values := []struct {
		t airquality.PollutantType
		v float64
	}{
		{airquality.PM25, c.PM25},
		{airquality.PM10, c.PM10},
		{airquality.O3, c.O3},
		{airquality.NO2, c.NO2},
		{airquality.SO2, c.SO2},
	}

	result := make([]api_v1_dto.PollutantStatus, 0, len(values))
	for _, val := range values {
		result = append(result, api_v1_dto.PollutantStatus{
			Type:   string(val.t),
			Value:  val.v,
			Status: airquality.ClassifyPollutant(val.v, val.t),
		})
	}
	return result
}
