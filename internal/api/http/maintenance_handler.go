package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/service"
)

type MaintenanceHandler struct {
	svc service.MaintenanceService
}

func NewMaintenanceHandler(svc service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{svc: svc}
}

type maintenanceRequest struct {
	VehiclePlate        string  `json:"vehiclePlate" validate:"required"`
	MaintenanceDate     string  `json:"maintenanceDate" validate:"required,datetime=2006-01-02"`
	MaintenanceKm       int     `json:"maintenanceKm" validate:"gte=0"`
	Type                string  `json:"type"`
	Cost                float64 `json:"cost" validate:"gte=0"`
	Description         string  `json:"description"`
	NextMaintenanceKm   int     `json:"nextMaintenanceKm" validate:"gte=0"`
	NextMaintenanceDate string  `json:"nextMaintenanceDate" validate:"omitempty,datetime=2006-01-02"`
}

func (req *maintenanceRequest) toDomain() *domain.Maintenance {
	return &domain.Maintenance{
		VehiclePlate:        req.VehiclePlate,
		MaintenanceDate:     req.MaintenanceDate,
		MaintenanceKm:       req.MaintenanceKm,
		Type:                req.Type,
		Cost:                req.Cost,
		Description:         req.Description,
		NextMaintenanceKm:   req.NextMaintenanceKm,
		NextMaintenanceDate: req.NextMaintenanceDate,
	}
}

func (h *MaintenanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req maintenanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	record, err := h.svc.CreateMaintenance(r.Context(), req.toDomain())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (h *MaintenanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, domain.ErrMaintenanceNotFound)
		return
	}
	var req maintenanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	m := req.toDomain()
	m.ID = id
	record, err := h.svc.UpdateMaintenance(r.Context(), m)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *MaintenanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, domain.ErrMaintenanceNotFound)
		return
	}
	if err := h.svc.DeleteMaintenance(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *MaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.ListMaintenance(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if records == nil {
		records = []domain.Maintenance{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *MaintenanceHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/maintenance", h.List).Methods("GET")
	router.HandleFunc("/maintenance", h.Create).Methods("POST")
	router.HandleFunc("/maintenance/{id}", h.Update).Methods("PUT")
	router.HandleFunc("/maintenance/{id}", h.Delete).Methods("DELETE")
}
