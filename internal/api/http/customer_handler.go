package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/service"
)

type CustomerHandler struct {
	svc service.CustomerService
}

func NewCustomerHandler(svc service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

type customerRequest struct {
	Name          string `json:"name" validate:"required"`
	NationalID    string `json:"tc" validate:"omitempty,len=11,numeric"`
	Phone         string `json:"phone"`
	Email         string `json:"email" validate:"omitempty,email"`
	Address       string `json:"address"`
	LicenseNumber string `json:"licenseNumber"`
	LicenseDate   string `json:"licenseDate" validate:"omitempty,datetime=2006-01-02"`
	IDFile        string `json:"idFile"`
	LicenseFile   string `json:"licenseFile"`
}

func (req *customerRequest) toDomain() *domain.Customer {
	return &domain.Customer{
		Name:          req.Name,
		NationalID:    req.NationalID,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		LicenseNumber: req.LicenseNumber,
		LicenseDate:   req.LicenseDate,
		IDFile:        req.IDFile,
		LicenseFile:   req.LicenseFile,
	}
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	customer, err := h.svc.CreateCustomer(r.Context(), req.toDomain())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, domain.ErrCustomerNotFound)
		return
	}
	customer, err := h.svc.GetCustomer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, domain.ErrCustomerNotFound)
		return
	}
	var req customerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	c := req.toDomain()
	c.ID = id
	customer, err := h.svc.UpdateCustomer(r.Context(), c)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, domain.ErrCustomerNotFound)
		return
	}
	if err := h.svc.DeleteCustomer(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.ListCustomers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	writeJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) RentalHistory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, domain.ErrCustomerNotFound)
		return
	}
	history, err := h.svc.RentalHistory(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if history == nil {
		history = []domain.RentalSummary{}
	}
	writeJSON(w, http.StatusOK, history)
}

func (h *CustomerHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/customers", h.List).Methods("GET")
	router.HandleFunc("/customers", h.Create).Methods("POST")
	router.HandleFunc("/customers/{id}", h.Get).Methods("GET")
	router.HandleFunc("/customers/{id}", h.Update).Methods("PUT")
	router.HandleFunc("/customers/{id}", h.Delete).Methods("DELETE")
	router.HandleFunc("/customers/{id}/rentals", h.RentalHistory).Methods("GET")
}
