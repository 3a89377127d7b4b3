package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/als-computing/splash-userservice/api/services"
	"github.com/als-computing/splash-userservice/models"
)

// WriteResponse writes a JSON response with a specific status code.
func WriteResponse(w http.ResponseWriter, statusCode int, response interface{}) {
	w.Header().Set("Content-Type", "application/json")

	// We don't want to cache API responses so the client receives the most
	// current facility data
	w.Header().Set("Cache-Control", "max-age=0")

	w.WriteHeader(statusCode)

	if response != nil {
		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
	}
}

// WriteErrResponse maps service errors onto HTTP statuses: unknown users are
// 404, unreachable facility services are 502, anything else is 500.
func WriteErrResponse(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())

	var notFound *services.UserNotFoundError
	var comm *services.CommunicationError

	switch {
	case errors.As(err, &notFound):
		logger.Debug().Err(err).Msg("user not found")
		WriteResponse(w, http.StatusNotFound, models.ErrorResponse{Error: err.Error()})
	case errors.As(err, &comm):
		logger.Error().Err(err).Msg("failed talking to facility service")
		WriteResponse(w, http.StatusBadGateway, models.ErrorResponse{Error: err.Error()})
	default:
		logger.Error().Err(err).Msg("unexpected error")
		WriteResponse(w, http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
	}
}
