package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/service"
)

type RentalHandler struct {
	svc service.RentalService
}

func NewRentalHandler(svc service.RentalService) *RentalHandler {
	return &RentalHandler{svc: svc}
}

type startRentalRequest struct {
	VehiclePlate string           `json:"vehiclePlate" validate:"required"`
	CustomerID   int64            `json:"customerId"`
	NewCustomer  *customerRequest `json:"newCustomer"`
	StartDate    string           `json:"startDate" validate:"required,datetime=2006-01-02"`
	StartKm      int              `json:"startKm" validate:"gte=0"`
	Price        float64          `json:"price" validate:"gte=0"`
	PriceType    string           `json:"priceType" validate:"omitempty,oneof=daily monthly"`
}

type checkinRequest struct {
	EndDate string `json:"endDate" validate:"required,datetime=2006-01-02"`
	EndKm   int    `json:"endKm" validate:"gte=0"`
}

type updateRentalRequest struct {
	VehiclePlate string  `json:"vehiclePlate" validate:"required"`
	CustomerID   int64   `json:"customerId" validate:"required"`
	StartDate    string  `json:"startDate" validate:"required,datetime=2006-01-02"`
	StartKm      int     `json:"startKm" validate:"gte=0"`
	Price        float64 `json:"price" validate:"gte=0"`
	PriceType    string  `json:"priceType" validate:"omitempty,oneof=daily monthly"`
	ContractFile string  `json:"contractFile"`
	InvoiceFile  string  `json:"invoiceFile"`
}

func (h *RentalHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	in := service.StartRentalInput{
		VehiclePlate: req.VehiclePlate,
		CustomerID:   req.CustomerID,
		StartDate:    req.StartDate,
		StartKm:      req.StartKm,
		Price:        req.Price,
		PriceType:    domain.PriceType(req.PriceType),
	}
	if req.NewCustomer != nil {
		in.NewCustomer = req.NewCustomer.toDomain()
	}
	rental, err := h.svc.StartRental(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) Checkin(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, domain.ErrRentalNotFound)
		return
	}
	var req checkinRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	rental, err := h.svc.CompleteRental(r.Context(), id, req.EndDate, req.EndKm)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, domain.ErrRentalNotFound)
		return
	}
	rental, err := h.svc.GetRental(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, domain.ErrRentalNotFound)
		return
	}
	var req updateRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	rental, err := h.svc.UpdateRental(r.Context(), &domain.Rental{
		ID:           id,
		VehiclePlate: req.VehiclePlate,
		CustomerID:   req.CustomerID,
		StartDate:    req.StartDate,
		StartKm:      req.StartKm,
		Price:        req.Price,
		PriceType:    domain.PriceType(req.PriceType),
		ContractFile: req.ContractFile,
		InvoiceFile:  req.InvoiceFile,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, domain.ErrRentalNotFound)
		return
	}
	if err := h.svc.DeleteRental(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.svc.ListRentals(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.Rental{}
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/rentals", h.List).Methods("GET")
	router.HandleFunc("/rentals", h.Start).Methods("POST")
	router.HandleFunc("/rentals/{id}", h.Get).Methods("GET")
	router.HandleFunc("/rentals/{id}", h.Update).Methods("PUT")
	router.HandleFunc("/rentals/{id}", h.Delete).Methods("DELETE")
	router.HandleFunc("/rentals/{id}/checkin", h.Checkin).Methods("POST")
}
