package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/service"
)

type ActivityHandler struct {
	svc service.ActivityService
}

func NewActivityHandler(svc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	activities, err := h.svc.ListActivities(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if activities == nil {
		activities = []domain.Activity{}
	}
	writeJSON(w, http.StatusOK, activities)
}

func (h *ActivityHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/activities", h.List).Methods("GET")
}
