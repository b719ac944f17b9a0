package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/service"
)

type NotificationHandler struct {
	svc service.NotificationService
}

func NewNotificationHandler(svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) Feed(w http.ResponseWriter, r *http.Request) {
	filter := service.NotificationFilter(r.URL.Query().Get("filter"))
	switch filter {
	case "":
		filter = service.NotificationFilterAll
	case service.NotificationFilterAll, service.NotificationFilterReminders, service.NotificationFilterActivities:
	default:
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "invalid filter"})
		return
	}
	feed, err := h.svc.Feed(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if feed == nil {
		feed = []domain.Notification{}
	}
	writeJSON(w, http.StatusOK, feed)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "invalid notification id"})
		return
	}
	if err := h.svc.MarkRead(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *NotificationHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/notifications", h.Feed).Methods("GET")
	router.HandleFunc("/notifications/{id}/read", h.MarkRead).Methods("POST")
}
