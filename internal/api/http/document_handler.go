package http

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/storage"
)

// DocumentHandler serves the uploaded document blobs (insurance papers,
// contracts, licenses) that entities reference by storage key.
type DocumentHandler struct {
	docs storage.DocumentStorage
}

func NewDocumentHandler(docs storage.DocumentStorage) *DocumentHandler {
	return &DocumentHandler{docs: docs}
}

type uploadResponse struct {
	Key string `json:"key"`
}

func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing file field"})
		return
	}
	defer file.Close()

	key, err := h.docs.Save(header.Filename, file)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to store document"})
		return
	}
	writeJSON(w, http.StatusCreated, uploadResponse{Key: key})
}

func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	file, err := h.docs.Open(key)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "document not found"})
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".pdf":
		contentType = "application/pdf"
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	}
	w.Header().Set("Content-Type", contentType)
	io.Copy(w, file)
}

func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.docs.Delete(mux.Vars(r)["key"]); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *DocumentHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/documents", h.Upload).Methods("POST")
	router.HandleFunc("/documents/{key}", h.Download).Methods("GET")
	router.HandleFunc("/documents/{key}", h.Delete).Methods("DELETE")
}
