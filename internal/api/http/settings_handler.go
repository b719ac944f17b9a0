package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/service"
)

type SettingsHandler struct {
	svc service.SettingsService
}

func NewSettingsHandler(svc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

type themeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

type settingsRequest struct {
	DashboardMetricTotal       bool `json:"db_metric_total"`
	DashboardMetricRented      bool `json:"db_metric_rented"`
	DashboardMetricMaintenance bool `json:"db_metric_maintenance"`
	DashboardMetricIncome      bool `json:"db_metric_income"`
	ReminderDays               int  `json:"reminder_days" validate:"gte=0"`
	VehicleBtnRent             bool `json:"vehicle_btn_rent"`
	VehicleBtnCheckin          bool `json:"vehicle_btn_checkin"`
	VehicleBtnEdit             bool `json:"vehicle_btn_edit"`
	NotifTypeInsurance         bool `json:"notif_type_insurance"`
	NotifTypeInspection        bool `json:"notif_type_inspection"`
	NotifTypeActivity          bool `json:"notif_type_activity"`
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.svc.GetPreferences(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

func (h *SettingsHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.svc.SetTheme(r.Context(), domain.Theme(req.Theme)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	err := h.svc.UpdateSettings(r.Context(), domain.Settings{
		DashboardMetricTotal:       req.DashboardMetricTotal,
		DashboardMetricRented:      req.DashboardMetricRented,
		DashboardMetricMaintenance: req.DashboardMetricMaintenance,
		DashboardMetricIncome:      req.DashboardMetricIncome,
		ReminderDays:               req.ReminderDays,
		VehicleBtnRent:             req.VehicleBtnRent,
		VehicleBtnCheckin:          req.VehicleBtnCheckin,
		VehicleBtnEdit:             req.VehicleBtnEdit,
		NotifTypeInsurance:         req.NotifTypeInsurance,
		NotifTypeInspection:        req.NotifTypeInspection,
		NotifTypeActivity:          req.NotifTypeActivity,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *SettingsHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/preferences", h.Get).Methods("GET")
	router.HandleFunc("/preferences/theme", h.SetTheme).Methods("PUT")
	router.HandleFunc("/preferences/settings", h.UpdateSettings).Methods("PUT")
}
