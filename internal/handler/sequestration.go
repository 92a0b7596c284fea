package handler

import (
	"fmt"
	"net/http"

	"ecomonitor/internal/carbon"
	"ecomonitor/internal/dto/api_v1_dto"
)

// Sequestration serves POST /api/v1/sequestration
func (h *Handler) Sequestration(w http.ResponseWriter, r *http.Request) {
	var request api_v1_dto.SequestrationRequest
	if !decode(w, r, &request) {
		return
	}

	if err := request.Validate(h.maxYears); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	plants, err := api_v1_dto.ToModels(request.Plants)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	result := carbon.ComputeTotalSequestration(plants)
	projection, err := carbon.PredictFutureSequestration(result, request.Years)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	equivalents := carbon.ComputeOffsetEquivalents(result.Total)
	if err := carbon.ValidateResult(result, equivalents, projection); err != nil {
		writeValidationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api_v1_dto.SequestrationResponse{
		Total:          result.Total,
		Breakdown:      result.Breakdown,
		FormattedTotal: result.FormattedTotal,
		Equivalents:    equivalents,
		Predictions:    projection.Predictions,
	})
}

// SequestrationBatch serves POST /api/v1/sequestration/batch
func (h *Handler) SequestrationBatch(w http.ResponseWriter, r *http.Request) {
	var request api_v1_dto.BatchRequest
	if !decode(w, r, &request) {
		return
	}

	if err := request.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	collections, err := request.ToModel()
	if err != nil {
		writeValidationError(w, err)
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	results, err := carbon.ComputeBatch(ctx, collections, carbon.DefaultBatchConcurrency)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "Request timed out")
		return
	}

	for _, r := range results {
		if err := carbon.ValidateFinite("total", r.Result.Total); err != nil {
			writeValidationError(w, fmt.Errorf("collection %q: %w", r.ID, err))
			return
		}
	}

	writeJSON(w, http.StatusOK, api_v1_dto.BatchResponse{Collections: results})
}

// Equivalents serves POST /api/v1/equivalents
func (h *Handler) Equivalents(w http.ResponseWriter, r *http.Request) {
	var request api_v1_dto.EquivalentsRequest
	if !decode(w, r, &request) {
		return
	}

	if err := request.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	equivalents := carbon.ComputeOffsetEquivalents(*request.CO2Amount)
	if err := carbon.ValidateEquivalents(equivalents); err != nil {
		writeValidationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, equivalents)
}
