package handler

import (
	"net/http"

	"github.com/inioluwa/atelier/internal/service"
)

type ManifestoHandler struct {
	manifestoService *service.ManifestoService
}

func NewManifestoHandler(manifestoService *service.ManifestoService) *ManifestoHandler {
	return &ManifestoHandler{manifestoService: manifestoService}
}

func (h *ManifestoHandler) Get(w http.ResponseWriter, r *http.Request) {
	manifesto, err := h.manifestoService.Get()
	if err != nil {
		handleError(w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, manifesto)
}

func (h *ManifestoHandler) UpdateCoreBelief(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CoreBelief string `json:"core_belief"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.manifestoService.UpdateCoreBelief(req.CoreBelief); err != nil {
		handleError(w, err, http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

func (h *ManifestoHandler) CreatePrinciple(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	principle, err := h.manifestoService.CreatePrinciple(req.Title, req.Description)
	if err != nil {
		handleError(w, err, http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusCreated, principle)
}

func (h *ManifestoHandler) UpdatePrinciple(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	principle, err := h.manifestoService.UpdatePrinciple(r.PathValue("id"), req.Title, req.Description)
	if err != nil {
		handleError(w, err, http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusOK, principle)
}

func (h *ManifestoHandler) DeletePrinciple(w http.ResponseWriter, r *http.Request) {
	if err := h.manifestoService.DeletePrinciple(r.PathValue("id")); err != nil {
		handleError(w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
