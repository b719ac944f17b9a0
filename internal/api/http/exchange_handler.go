package http

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/service"
)

// Import files are read whole; a full backup of this system is small.
const maxImportSize = 16 << 20

type ExchangeHandler struct {
	svc service.ExchangeService
}

func NewExchangeHandler(svc service.ExchangeService) *ExchangeHandler {
	return &ExchangeHandler{svc: svc}
}

func (h *ExchangeHandler) Export(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Export(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="filo-yedek.json"`)
	writeJSON(w, http.StatusOK, snap)
}

func (h *ExchangeHandler) Import(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "failed to read import file"})
		return
	}
	summary, err := h.svc.Import(r.Context(), data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *ExchangeHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/export", h.Export).Methods("GET")
	router.HandleFunc("/import", h.Import).Methods("POST")
}
