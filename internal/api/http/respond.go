package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/logger"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/service"
)

var validate = validator.New()

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFromError(err), errorResponse{Error: err.Error()})
}

// statusFromError maps service errors onto HTTP statuses: missing references
// are 404, lifecycle conflicts 409, rejected input 422, unrecognized import
// content 400.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrVehicleNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrRentalNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrMaintenanceNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrVehicleRented),
		errors.Is(err, domain.ErrRentalCompleted):
		return http.StatusConflict
	case errors.Is(err, service.ErrUnrecognizedImport):
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}

// decodeJSON parses the request body into dst and runs its validation tags.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("invalid request body")
	}
	return validate.Struct(dst)
}
