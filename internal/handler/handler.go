package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ecomonitor/internal/carbon"
	"ecomonitor/internal/dto/api_v1_dto"

	"github.com/rs/zerolog/log"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	readingGetter  readingGetter
	requestTimeout time.Duration
	maxYears       int
}

func New(readingGetter readingGetter, timeout time.Duration, maxYears int) *Handler {
	return &Handler{
		readingGetter:  readingGetter,
		requestTimeout: timeout,
		maxYears:       maxYears,
	}
}

func (h *Handler) withTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.requestTimeout)
}

// decode reads a POST json body into v, on failure the response is already written
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return false
	}

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// writeJSON encodes v before any header is sent, so an unencodable value
// becomes a 500 instead of a 200 with an empty body
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("couldn't encode response")
		status = http.StatusInternalServerError
		data, _ = json.Marshal(api_v1_dto.ErrorResponse{Error: "Internal server error"})
	}
	w.WriteHeader(status)
	if _, err := w.Write(append(data, '\n')); err != nil {
		log.Error().Err(err).Msg("couldn't write response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, api_v1_dto.ErrorResponse{Error: msg})
}

// writeValidationError answers 400 with the validation message when err is
// a request problem, and 500 otherwise
func writeValidationError(w http.ResponseWriter, err error) {
	var vErr *carbon.ValidationError
	if errors.As(err, &vErr) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	log.Error().Err(err).Msg("unexpected error")
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
