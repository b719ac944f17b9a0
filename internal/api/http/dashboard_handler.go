package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/service"
)

type DashboardHandler struct {
	svc service.DashboardService
	now func() time.Time
}

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc, now: time.Now}
}

func (h *DashboardHandler) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.FleetCounts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

type incomeResponse struct {
	Month  int     `json:"month"`
	Year   int     `json:"year"`
	Income float64 `json:"income"`
}

// Income defaults to the current month when no month/year parameters are given.
func (h *DashboardHandler) Income(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	month := int(now.Month())
	year := now.Year()
	if v := r.URL.Query().Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "invalid month"})
			return
		}
		month = m
	}
	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "invalid year"})
			return
		}
		year = y
	}
	income, err := h.svc.MonthlyIncome(r.Context(), time.Month(month), year)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, incomeResponse{Month: month, Year: year, Income: income})
}

func (h *DashboardHandler) Reminders(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.svc.UpcomingReminders(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if reminders == nil {
		reminders = []domain.Reminder{}
	}
	writeJSON(w, http.StatusOK, reminders)
}

func (h *DashboardHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/dashboard/counts", h.Counts).Methods("GET")
	router.HandleFunc("/dashboard/income", h.Income).Methods("GET")
	router.HandleFunc("/dashboard/reminders", h.Reminders).Methods("GET")
}
