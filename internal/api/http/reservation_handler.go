package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/service"
)

type ReservationHandler struct {
	svc service.ReservationService
}

func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

type reservationRequest struct {
	VehiclePlate     string `json:"vehiclePlate" validate:"required"`
	CustomerID       int64  `json:"customerId" validate:"required"`
	StartDate        string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate          string `json:"endDate" validate:"required,datetime=2006-01-02"`
	DeliveryLocation string `json:"deliveryLocation"`
	Notes            string `json:"notes"`
	Status           string `json:"status" validate:"omitempty,oneof=active completed cancelled"`
}

func (req *reservationRequest) toDomain() *domain.Reservation {
	return &domain.Reservation{
		VehiclePlate:     req.VehiclePlate,
		CustomerID:       req.CustomerID,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		DeliveryLocation: req.DeliveryLocation,
		Notes:            req.Notes,
		Status:           domain.ReservationStatus(req.Status),
	}
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req reservationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	reservation, err := h.svc.CreateReservation(r.Context(), req.toDomain())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reservation)
}

func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, domain.ErrReservationNotFound)
		return
	}
	var req reservationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res := req.toDomain()
	res.ID = id
	reservation, err := h.svc.UpdateReservation(r.Context(), res)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, domain.ErrReservationNotFound)
		return
	}
	if err := h.svc.DeleteReservation(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.svc.ListReservations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if reservations == nil {
		reservations = []domain.Reservation{}
	}
	writeJSON(w, http.StatusOK, reservations)
}

func (h *ReservationHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/reservations", h.List).Methods("GET")
	router.HandleFunc("/reservations", h.Create).Methods("POST")
	router.HandleFunc("/reservations/{id}", h.Update).Methods("PUT")
	router.HandleFunc("/reservations/{id}", h.Delete).Methods("DELETE")
}
