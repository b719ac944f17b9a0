package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/service"
)

type VehicleHandler struct {
	svc service.VehicleService
}

func NewVehicleHandler(svc service.VehicleService) *VehicleHandler {
	return &VehicleHandler{svc: svc}
}

type vehicleRequest struct {
	Plate          string `json:"plate" validate:"required"`
	Brand          string `json:"brand"`
	Km             int    `json:"km" validate:"gte=0"`
	Status         string `json:"status" validate:"omitempty,oneof=Müsait Kirada Bakımda"`
	InsuranceDate  string `json:"insuranceDate" validate:"omitempty,datetime=2006-01-02"`
	InspectionDate string `json:"inspectionDate" validate:"omitempty,datetime=2006-01-02"`
	InsuranceFile  string `json:"insuranceFile"`
	InspectionFile string `json:"inspectionFile"`
	LicenseFile    string `json:"licenseFile"`
}

func (req *vehicleRequest) toDomain() *domain.Vehicle {
	return &domain.Vehicle{
		Plate:          req.Plate,
		Brand:          req.Brand,
		Km:             req.Km,
		Status:         domain.VehicleStatus(req.Status),
		InsuranceDate:  req.InsuranceDate,
		InspectionDate: req.InspectionDate,
		InsuranceFile:  req.InsuranceFile,
		InspectionFile: req.InspectionFile,
		LicenseFile:    req.LicenseFile,
	}
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req vehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	vehicle, err := h.svc.CreateVehicle(r.Context(), req.toDomain())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	vehicle, err := h.svc.GetVehicle(r.Context(), mux.Vars(r)["plate"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req vehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	v := req.toDomain()
	v.Plate = mux.Vars(r)["plate"]
	vehicle, err := h.svc.UpdateVehicle(r.Context(), v)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteVehicle(r.Context(), mux.Vars(r)["plate"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	expiring := r.URL.Query().Get("expiring") == "true"
	vehicles, err := h.svc.ListVehicles(r.Context(), query, expiring)
	if err != nil {
		writeError(w, err)
		return
	}
	if vehicles == nil {
		vehicles = []domain.Vehicle{}
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/vehicles", h.List).Methods("GET")
	router.HandleFunc("/vehicles", h.Create).Methods("POST")
	router.HandleFunc("/vehicles/{plate}", h.Get).Methods("GET")
	router.HandleFunc("/vehicles/{plate}", h.Update).Methods("PUT")
	router.HandleFunc("/vehicles/{plate}", h.Delete).Methods("DELETE")
}
